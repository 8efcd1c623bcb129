package models

import (
	"encoding/json"
	"strings"

	"github.com/google/uuid"
)

// Ownership records which participants an item belongs to. The zero value is
// "unassigned"; use OwnedBy or SharedBy to construct the other variants.
type Ownership struct {
	ids []string
}

// OwnedBy returns an ownership held by a single participant.
func OwnedBy(participantID string) Ownership {
	return Ownership{ids: []string{participantID}}
}

// SharedBy returns an ownership split evenly among the given participants.
// Duplicate IDs are collapsed.
func SharedBy(participantIDs ...string) Ownership {
	seen := make(map[string]bool, len(participantIDs))
	var ids []string
	for _, id := range participantIDs {
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		ids = append(ids, id)
	}
	return Ownership{ids: ids}
}

// IsUnassigned reports whether no participant owns the item.
func (o Ownership) IsUnassigned() bool { return len(o.ids) == 0 }

// Count returns the number of owners.
func (o Ownership) Count() int { return len(o.ids) }

// Contains reports whether the given participant is among the owners.
func (o Ownership) Contains(participantID string) bool {
	for _, id := range o.ids {
		if id == participantID {
			return true
		}
	}
	return false
}

// IDs returns a copy of the owner IDs, in assignment order.
func (o Ownership) IDs() []string {
	if len(o.ids) == 0 {
		return nil
	}
	out := make([]string, len(o.ids))
	copy(out, o.ids)
	return out
}

// Without returns the ownership with the given participant removed.
// Removing the sole owner yields an unassigned ownership.
func (o Ownership) Without(participantID string) Ownership {
	var ids []string
	for _, id := range o.ids {
		if id != participantID {
			ids = append(ids, id)
		}
	}
	return Ownership{ids: ids}
}

// Item represents a single line item on a bill.
type Item struct {
	// ID is the unique identifier for the item (UUID format).
	ID string

	// Name is the item description as extracted or entered (e.g., "Burger").
	Name string

	// Price is the unit price of the item.
	Price float64

	// Quantity is the number of units; always >= 1.
	Quantity int

	// Owners records which participants the item is assigned to.
	Owners Ownership

	// ManuallyAdded is true when the item was entered by a user rather than
	// extracted from receipt text.
	ManuallyAdded bool
}

// NewItem creates an item with a fresh UUID and a normalized quantity.
func NewItem(name string, price float64, quantity int) Item {
	if quantity < 1 {
		quantity = 1
	}
	return Item{
		ID:       uuid.New().String(),
		Name:     strings.TrimSpace(name),
		Price:    price,
		Quantity: quantity,
	}
}

// LineTotal returns price multiplied by quantity.
func (i Item) LineTotal() float64 {
	return i.Price * float64(i.Quantity)
}

// PerOwnerPrice returns each owner's share of the line total, or 0 when
// the item is unassigned.
func (i Item) PerOwnerPrice() float64 {
	if i.Owners.IsUnassigned() {
		return 0
	}
	return i.LineTotal() / float64(i.Owners.Count())
}

// itemJSON is the wire shape for Item. AssignedTo is a list so both
// single-owner and shared-owner bills round-trip; absence means unassigned.
type itemJSON struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Price         float64  `json:"price"`
	Quantity      *int     `json:"quantity,omitempty"`
	AssignedTo    []string `json:"assignedTo,omitempty"`
	ManuallyAdded *bool    `json:"manuallyAdded,omitempty"`
}

// MarshalJSON implements json.Marshaler.
func (i Item) MarshalJSON() ([]byte, error) {
	qty := i.Quantity
	manual := i.ManuallyAdded
	return json.Marshal(itemJSON{
		ID:            i.ID,
		Name:          i.Name,
		Price:         i.Price,
		Quantity:      &qty,
		AssignedTo:    i.Owners.IDs(),
		ManuallyAdded: &manual,
	})
}

// UnmarshalJSON implements json.Unmarshaler, applying the decode defaults:
// quantity 1, not manually added, unassigned.
func (i *Item) UnmarshalJSON(data []byte) error {
	var wire itemJSON
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	i.ID = wire.ID
	i.Name = wire.Name
	i.Price = wire.Price
	i.Quantity = 1
	if wire.Quantity != nil && *wire.Quantity >= 1 {
		i.Quantity = *wire.Quantity
	}
	i.Owners = SharedBy(wire.AssignedTo...)
	i.ManuallyAdded = wire.ManuallyAdded != nil && *wire.ManuallyAdded
	return nil
}
