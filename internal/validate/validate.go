package validate

import (
	"github.com/go-playground/validator/v10"

	"homekeep/internal/parser"
)

// Validate is the shared validator instance with the inventory-specific
// rules registered.
var Validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("cost", func(fl validator.FieldLevel) bool {
		return parser.IsValidCost(fl.Field().String())
	})
	_ = v.RegisterValidation("isodate", func(fl validator.FieldLevel) bool {
		_, err := parser.ParseISODate(fl.Field().String())
		return err == nil
	})
	return v
}

// Struct runs the shared instance against s.
func Struct(s interface{}) error {
	return Validate.Struct(s)
}
