package db

import "fmt"

// ValidationError reports input that fails a schema constraint. It is
// surfaced as a field-level message; nothing retries it.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// DuplicateError reports a tag label that collides with an existing one
// after normalization.
type DuplicateError struct {
	Vocabulary Vocabulary
	Label      string
}

func (e *DuplicateError) Error() string {
	return fmt.Sprintf("%s %q already exists", e.Vocabulary, e.Label)
}

// InUseError blocks deletion of a tag that store items still reference.
type InUseError struct {
	Vocabulary Vocabulary
	Count      int64
}

func (e *InUseError) Error() string {
	switch e.Vocabulary {
	case VocabRoom:
		return "this room has items in it, reassign them to another room first"
	case VocabSpot:
		return "this spot has items associated with it, reassign them to another spot first"
	default:
		return "this direction has items associated with it, reassign them to another direction first"
	}
}

// ReferenceError reports a tag label that no longer resolves to a row,
// usually because the tag was deleted after the caller last listed tags.
type ReferenceError struct {
	Vocabulary Vocabulary
	Label      string
}

func (e *ReferenceError) Error() string {
	return fmt.Sprintf("%s %q may have been deleted, please re-check", e.Vocabulary, e.Label)
}

// NotFoundError reports a mutation aimed at an id that does not exist.
type NotFoundError struct {
	Entity string
	ID     uint
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s #%d not found", e.Entity, e.ID)
}
