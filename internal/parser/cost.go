package parser

import (
	"regexp"
	"strconv"
	"strings"
)

// Costs are decimal strings with at most two decimal places; a comma works
// as the separator for locales that use one ("3,50").
var costRegex = regexp.MustCompile(`^(?:\d+(?:[.,]\d{0,2})?|[.,]\d{1,2})$`)

// IsValidCost reports whether input is an acceptable cost string.
func IsValidCost(input string) bool {
	return costRegex.MatchString(strings.TrimSpace(input))
}

// ParseCost converts a cost string to a float64. Anything unparsable counts
// as zero so a single bad row never poisons a spend total.
func ParseCost(input string) float64 {
	s := strings.ReplaceAll(strings.TrimSpace(input), ",", ".")
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}
