package db

import (
	"errors"
	"testing"
)

func TestNormalizeLabel(t *testing.T) {
	cases := []struct {
		raw  string
		want string
	}{
		{"Kitchen", "kitchen"},
		{"  Living Room  ", "living_room"},
		{"TOP   SHELF", "top_shelf"},
		{"under\tsink", "under_sink"},
		{"pantry", "pantry"},
	}

	for _, tc := range cases {
		got := NormalizeLabel(tc.raw)
		if got != tc.want {
			t.Errorf("NormalizeLabel(%q) = %q, want %q", tc.raw, got, tc.want)
		}
		// Normalization must be stable under repeated application.
		if again := NormalizeLabel(got); again != got {
			t.Errorf("NormalizeLabel(%q) not idempotent: %q", got, again)
		}
	}
}

func TestParseVocabulary(t *testing.T) {
	for input, want := range map[string]Vocabulary{
		"room":       VocabRoom,
		"Rooms":      VocabRoom,
		"spot":       VocabSpot,
		"SPOTS":      VocabSpot,
		"direction":  VocabDirection,
		"directions": VocabDirection,
	} {
		got, err := ParseVocabulary(input)
		if err != nil {
			t.Errorf("ParseVocabulary(%q) failed: %v", input, err)
		}
		if got != want {
			t.Errorf("ParseVocabulary(%q) = %q, want %q", input, got, want)
		}
	}

	if _, err := ParseVocabulary("shelf"); err == nil {
		t.Error("Expected error for unknown vocabulary")
	}
}

func TestCreateTag(t *testing.T) {
	setupTestDB(t)

	tag, err := CreateTag(VocabRoom, "  Living Room ")
	if err != nil {
		t.Fatalf("CreateTag failed: %v", err)
	}
	if tag.Label != "living_room" {
		t.Errorf("Expected normalized label living_room, got %q", tag.Label)
	}
	if tag.ID == 0 {
		t.Error("Expected a non-zero id")
	}
}

func TestCreateTagValidation(t *testing.T) {
	setupTestDB(t)

	var verr *ValidationError

	_, err := CreateTag(VocabSpot, "   ")
	if !errors.As(err, &verr) {
		t.Errorf("Expected ValidationError for blank label, got %v", err)
	}

	_, err = CreateTag(VocabSpot, "a label far too long to store")
	if !errors.As(err, &verr) {
		t.Errorf("Expected ValidationError for oversized label, got %v", err)
	}
}

func TestCreateTagDuplicate(t *testing.T) {
	setupTestDB(t)

	mustCreateTag(t, VocabRoom, "kitchen")

	// Differs only in case and padding, so it collides after normalization.
	_, err := CreateTag(VocabRoom, "Kitchen ")
	var derr *DuplicateError
	if !errors.As(err, &derr) {
		t.Fatalf("Expected DuplicateError, got %v", err)
	}
	if derr.Label != "kitchen" {
		t.Errorf("Expected duplicate label kitchen, got %q", derr.Label)
	}

	// Same label in another vocabulary is fine.
	if _, err := CreateTag(VocabSpot, "kitchen"); err != nil {
		t.Errorf("Same label in different vocabulary should succeed, got %v", err)
	}
}

func TestListTagsOrder(t *testing.T) {
	setupTestDB(t)

	mustCreateTag(t, VocabDirection, "top")
	mustCreateTag(t, VocabDirection, "bottom")
	mustCreateTag(t, VocabDirection, "left")

	tags, err := ListTags(VocabDirection)
	if err != nil {
		t.Fatalf("ListTags failed: %v", err)
	}

	want := []string{"bottom", "left", "top"}
	if len(tags) != len(want) {
		t.Fatalf("Expected %d tags, got %d", len(want), len(tags))
	}
	for i, label := range want {
		if tags[i].Label != label {
			t.Errorf("tags[%d] = %q, want %q", i, tags[i].Label, label)
		}
	}
}

func TestDeleteTag(t *testing.T) {
	setupTestDB(t)

	tag := mustCreateTag(t, VocabSpot, "fridge")
	if err := DeleteTag(VocabSpot, tag.ID); err != nil {
		t.Fatalf("DeleteTag failed: %v", err)
	}

	tags, err := ListTags(VocabSpot)
	if err != nil {
		t.Fatalf("ListTags failed: %v", err)
	}
	if len(tags) != 0 {
		t.Errorf("Expected empty vocabulary after delete, got %d tags", len(tags))
	}

	var nferr *NotFoundError
	if err := DeleteTag(VocabSpot, tag.ID); !errors.As(err, &nferr) {
		t.Errorf("Expected NotFoundError on second delete, got %v", err)
	}
}

func TestDeleteTagInUse(t *testing.T) {
	setupTestDB(t)

	room := mustCreateTag(t, VocabRoom, "kitchen")
	draft := validDraft("Milk")
	draft.Room = room.Label
	item := mustCreateItem(t, draft)

	var ierr *InUseError
	if err := DeleteTag(VocabRoom, room.ID); !errors.As(err, &ierr) {
		t.Fatalf("Expected InUseError, got %v", err)
	}

	// The tag must survive a blocked delete.
	if _, err := ResolveTag(VocabRoom, room.Label); err != nil {
		t.Errorf("Tag should still resolve after blocked delete: %v", err)
	}

	// Once the item no longer references the room, the delete goes through.
	if err := UpdateTagsAndAmount(item.ID, item.Amount, "", "", ""); err != nil {
		t.Fatalf("UpdateTagsAndAmount failed: %v", err)
	}
	if err := DeleteTag(VocabRoom, room.ID); err != nil {
		t.Errorf("DeleteTag after reassignment failed: %v", err)
	}
}

func TestResolveTag(t *testing.T) {
	setupTestDB(t)

	tag := mustCreateTag(t, VocabRoom, "garage")

	id, err := ResolveTag(VocabRoom, "garage")
	if err != nil {
		t.Fatalf("ResolveTag failed: %v", err)
	}
	if id != tag.ID {
		t.Errorf("Expected id %d, got %d", tag.ID, id)
	}

	var rerr *ReferenceError
	if _, err := ResolveTag(VocabRoom, "attic"); !errors.As(err, &rerr) {
		t.Errorf("Expected ReferenceError for missing label, got %v", err)
	}
}
