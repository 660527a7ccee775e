package db

import (
	"errors"
	"testing"
)

func TestAddShoppingItem(t *testing.T) {
	setupTestDB(t)

	item, err := AddShoppingItem("Dish soap")
	if err != nil {
		t.Fatalf("AddShoppingItem failed: %v", err)
	}
	if item.ID == 0 {
		t.Error("Expected a non-zero id")
	}
	if item.Done {
		t.Error("New entries start not done")
	}

	var verr *ValidationError
	if _, err := AddShoppingItem(""); !errors.As(err, &verr) {
		t.Errorf("Expected ValidationError for blank name, got %v", err)
	}
}

func TestListShoppingItemsOrder(t *testing.T) {
	setupTestDB(t)

	first, err := AddShoppingItem("Eggs")
	if err != nil {
		t.Fatalf("AddShoppingItem failed: %v", err)
	}
	if _, err := AddShoppingItem("Bread"); err != nil {
		t.Fatalf("AddShoppingItem failed: %v", err)
	}
	if _, err := AddShoppingItem("Milk"); err != nil {
		t.Fatalf("AddShoppingItem failed: %v", err)
	}

	if err := SetShoppingItemDone(first.ID, true); err != nil {
		t.Fatalf("SetShoppingItemDone failed: %v", err)
	}

	items, err := ListShoppingItems()
	if err != nil {
		t.Fatalf("ListShoppingItems failed: %v", err)
	}

	// Open entries first, newest first; the done entry drops to the end.
	want := []string{"Milk", "Bread", "Eggs"}
	if len(items) != len(want) {
		t.Fatalf("Expected %d items, got %d", len(want), len(items))
	}
	for i, name := range want {
		if items[i].Name != name {
			t.Errorf("items[%d] = %q, want %q", i, items[i].Name, name)
		}
	}
	if !items[2].Done {
		t.Error("Expected Eggs to be done")
	}
}

func TestSetShoppingItemDone(t *testing.T) {
	setupTestDB(t)

	item, err := AddShoppingItem("Tea")
	if err != nil {
		t.Fatalf("AddShoppingItem failed: %v", err)
	}

	if err := SetShoppingItemDone(item.ID, true); err != nil {
		t.Fatalf("SetShoppingItemDone failed: %v", err)
	}
	if err := SetShoppingItemDone(item.ID, false); err != nil {
		t.Fatalf("SetShoppingItemDone(false) failed: %v", err)
	}

	items, err := ListShoppingItems()
	if err != nil {
		t.Fatalf("ListShoppingItems failed: %v", err)
	}
	if items[0].Done {
		t.Error("Expected entry to be open again")
	}

	var nferr *NotFoundError
	if err := SetShoppingItemDone(9999, true); !errors.As(err, &nferr) {
		t.Errorf("Expected NotFoundError, got %v", err)
	}
}

func TestRenameShoppingItem(t *testing.T) {
	setupTestDB(t)

	item, err := AddShoppingItem("Suger")
	if err != nil {
		t.Fatalf("AddShoppingItem failed: %v", err)
	}

	if err := RenameShoppingItem(item.ID, "Sugar"); err != nil {
		t.Fatalf("RenameShoppingItem failed: %v", err)
	}

	items, err := ListShoppingItems()
	if err != nil {
		t.Fatalf("ListShoppingItems failed: %v", err)
	}
	if items[0].Name != "Sugar" {
		t.Errorf("Expected Sugar, got %q", items[0].Name)
	}

	var verr *ValidationError
	if err := RenameShoppingItem(item.ID, ""); !errors.As(err, &verr) {
		t.Errorf("Expected ValidationError for blank name, got %v", err)
	}

	var nferr *NotFoundError
	if err := RenameShoppingItem(9999, "Salt"); !errors.As(err, &nferr) {
		t.Errorf("Expected NotFoundError, got %v", err)
	}
}

func TestDeleteShoppingItem(t *testing.T) {
	setupTestDB(t)

	item, err := AddShoppingItem("Napkins")
	if err != nil {
		t.Fatalf("AddShoppingItem failed: %v", err)
	}

	if err := DeleteShoppingItem(item.ID); err != nil {
		t.Fatalf("DeleteShoppingItem failed: %v", err)
	}

	items, err := ListShoppingItems()
	if err != nil {
		t.Fatalf("ListShoppingItems failed: %v", err)
	}
	if len(items) != 0 {
		t.Errorf("Expected empty list, got %d items", len(items))
	}

	var nferr *NotFoundError
	if err := DeleteShoppingItem(item.ID); !errors.As(err, &nferr) {
		t.Errorf("Expected NotFoundError on second delete, got %v", err)
	}
}
