package models

import (
	"encoding/json"
	"testing"
)

func TestItemJSONRoundTrip(t *testing.T) {
	original := Item{
		ID:            "item-1",
		Name:          "Burger",
		Price:         12.99,
		Quantity:      2,
		Owners:        SharedBy("alice", "bob"),
		ManuallyAdded: true,
	}

	data, err := json.Marshal(original)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	var decoded Item
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}

	if decoded.ID != original.ID || decoded.Name != original.Name ||
		decoded.Price != original.Price || decoded.Quantity != original.Quantity ||
		decoded.ManuallyAdded != original.ManuallyAdded {
		t.Errorf("round trip changed fields: %+v -> %+v", original, decoded)
	}
	owners := decoded.Owners.IDs()
	if len(owners) != 2 || owners[0] != "alice" || owners[1] != "bob" {
		t.Errorf("owners = %v, want [alice bob]", owners)
	}
}

func TestItemDecodeDefaults(t *testing.T) {
	// Absent fields take their documented defaults.
	var item Item
	if err := json.Unmarshal([]byte(`{"id":"item-1","name":"Burger","price":12.99}`), &item); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}

	if item.Quantity != 1 {
		t.Errorf("quantity = %d, want 1", item.Quantity)
	}
	if item.ManuallyAdded {
		t.Error("manuallyAdded = true, want false")
	}
	if !item.Owners.IsUnassigned() {
		t.Errorf("owners = %v, want unassigned", item.Owners.IDs())
	}
}

func TestOwnership(t *testing.T) {
	var unassigned Ownership
	if !unassigned.IsUnassigned() || unassigned.Count() != 0 {
		t.Error("zero value must be unassigned")
	}

	single := OwnedBy("alice")
	if single.IsUnassigned() || single.Count() != 1 || !single.Contains("alice") {
		t.Errorf("single ownership broken: %v", single.IDs())
	}

	shared := SharedBy("alice", "bob", "alice")
	if shared.Count() != 2 {
		t.Errorf("duplicates not collapsed: %v", shared.IDs())
	}

	if got := shared.Without("alice"); got.Count() != 1 || !got.Contains("bob") {
		t.Errorf("Without(alice) = %v, want [bob]", got.IDs())
	}
	if got := single.Without("alice"); !got.IsUnassigned() {
		t.Errorf("removing the sole owner must unassign, got %v", got.IDs())
	}
}

func TestPerOwnerPrice(t *testing.T) {
	item := Item{Name: "Pizza", Price: 10.0, Quantity: 2}
	if got := item.PerOwnerPrice(); got != 0 {
		t.Errorf("unassigned per-owner price = %v, want 0", got)
	}

	item.Owners = OwnedBy("alice")
	if got := item.PerOwnerPrice(); got != 20.0 {
		t.Errorf("single-owner price = %v, want 20.0", got)
	}

	item.Owners = SharedBy("alice", "bob")
	if got := item.PerOwnerPrice(); got != 10.0 {
		t.Errorf("shared per-owner price = %v, want 10.0", got)
	}
}
