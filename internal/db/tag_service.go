package db

import (
	"errors"
	"regexp"
	"strings"

	"gorm.io/gorm"

	"homekeep/internal/models"
)

// Vocabulary identifies one of the three independent tag namespaces.
// Labels are unique within a vocabulary but not across vocabularies.
type Vocabulary string

const (
	VocabRoom      Vocabulary = "room"
	VocabSpot      Vocabulary = "spot"
	VocabDirection Vocabulary = "direction"
)

// ParseVocabulary maps user input to a Vocabulary constant.
func ParseVocabulary(input string) (Vocabulary, error) {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "room", "rooms":
		return VocabRoom, nil
	case "spot", "spots":
		return VocabSpot, nil
	case "direction", "directions":
		return VocabDirection, nil
	}
	return "", &ValidationError{Field: "vocabulary", Reason: "must be room, spot or direction"}
}

// labelColumn is the label column in the vocabulary's own table.
func (v Vocabulary) labelColumn() string {
	switch v {
	case VocabRoom:
		return "room"
	case VocabSpot:
		return "spot"
	default:
		return "direction"
	}
}

// foreignKey is the referencing column on store_items.
func (v Vocabulary) foreignKey() string {
	switch v {
	case VocabRoom:
		return "location_id"
	case VocabSpot:
		return "spot_id"
	default:
		return "direction_id"
	}
}

func (v Vocabulary) model() interface{} {
	switch v {
	case VocabRoom:
		return &models.Location{}
	case VocabSpot:
		return &models.Spot{}
	default:
		return &models.Direction{}
	}
}

// Tag is a vocabulary entry, independent of which table it lives in.
type Tag struct {
	ID    uint
	Label string
}

const maxLabelLen = 15

var innerWhitespace = regexp.MustCompile(`\s+`)

// NormalizeLabel trims, lowercases and collapses inner whitespace to single
// underscores. The result is stable under repeated application.
func NormalizeLabel(raw string) string {
	return innerWhitespace.ReplaceAllString(strings.ToLower(strings.TrimSpace(raw)), "_")
}

// CreateTag normalizes rawLabel and inserts it into the vocabulary.
// The duplicate check runs before the insert so a collision surfaces as a
// DuplicateError rather than a unique-constraint violation.
func CreateTag(vocab Vocabulary, rawLabel string) (*Tag, error) {
	trimmed := strings.TrimSpace(rawLabel)
	if trimmed == "" {
		return nil, &ValidationError{Field: string(vocab), Reason: "cannot be empty"}
	}
	if len(trimmed) > maxLabelLen {
		return nil, &ValidationError{Field: string(vocab), Reason: "exceeds 15 characters"}
	}

	label := NormalizeLabel(rawLabel)

	var count int64
	err := DB.Model(vocab.model()).Where(vocab.labelColumn()+" = ?", label).Count(&count).Error
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, &DuplicateError{Vocabulary: vocab, Label: label}
	}

	switch vocab {
	case VocabRoom:
		row := models.Location{Room: label}
		if err := DB.Create(&row).Error; err != nil {
			return nil, err
		}
		return &Tag{ID: row.ID, Label: row.Room}, nil
	case VocabSpot:
		row := models.Spot{Spot: label}
		if err := DB.Create(&row).Error; err != nil {
			return nil, err
		}
		return &Tag{ID: row.ID, Label: row.Spot}, nil
	default:
		row := models.Direction{Direction: label}
		if err := DB.Create(&row).Error; err != nil {
			return nil, err
		}
		return &Tag{ID: row.ID, Label: row.Direction}, nil
	}
}

// DeleteTag removes a tag unless store items still reference it. The schema
// would null the references on delete, but orphaning items silently is the
// wrong outcome, so the guard runs first.
func DeleteTag(vocab Vocabulary, id uint) error {
	var count int64
	err := DB.Model(&models.StoreItem{}).Where(vocab.foreignKey()+" = ?", id).Count(&count).Error
	if err != nil {
		return err
	}
	if count > 0 {
		return &InUseError{Vocabulary: vocab, Count: count}
	}

	res := DB.Delete(vocab.model(), id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return &NotFoundError{Entity: string(vocab), ID: id}
	}
	return nil
}

// ListTags returns the vocabulary ordered by label, case-insensitive.
func ListTags(vocab Vocabulary) ([]Tag, error) {
	order := vocab.labelColumn() + " COLLATE NOCASE asc"

	var tags []Tag
	switch vocab {
	case VocabRoom:
		var rows []models.Location
		if err := DB.Order(order).Find(&rows).Error; err != nil {
			return nil, err
		}
		for _, r := range rows {
			tags = append(tags, Tag{ID: r.ID, Label: r.Room})
		}
	case VocabSpot:
		var rows []models.Spot
		if err := DB.Order(order).Find(&rows).Error; err != nil {
			return nil, err
		}
		for _, r := range rows {
			tags = append(tags, Tag{ID: r.ID, Label: r.Spot})
		}
	default:
		var rows []models.Direction
		if err := DB.Order(order).Find(&rows).Error; err != nil {
			return nil, err
		}
		for _, r := range rows {
			tags = append(tags, Tag{ID: r.ID, Label: r.Direction})
		}
	}
	return tags, nil
}

// ResolveTag finds the id for a label in the given vocabulary. A label that
// no longer exists yields a ReferenceError, not a silent null.
func ResolveTag(vocab Vocabulary, label string) (uint, error) {
	var tag Tag
	err := DB.Model(vocab.model()).
		Select("id, " + vocab.labelColumn() + " as label").
		Where(vocab.labelColumn()+" = ?", label).
		First(&tag).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, &ReferenceError{Vocabulary: vocab, Label: label}
	}
	if err != nil {
		return 0, err
	}
	return tag.ID, nil
}
