package models

import (
	"time"

	"github.com/google/uuid"
)

// Bill represents a receipt being split among participants.
type Bill struct {
	// ID is the unique identifier for the bill (UUID format).
	ID string `json:"id"`

	// Items are the structured receipt lines, in extraction/entry order.
	Items []Item `json:"items"`

	// Participants are the people splitting the bill, unique by ID.
	Participants []Participant `json:"participants"`

	// TaxPercent is the tax rate applied to the subtotal (percentage, not currency).
	TaxPercent float64 `json:"taxAmount"`

	// TipPercent is the tip rate applied to the subtotal (percentage, not currency).
	TipPercent float64 `json:"tipAmount"`

	// CreatedAt is when the bill was created.
	CreatedAt time.Time `json:"date"`

	// Version increments on every mutation so callers can detect change.
	// It is not part of the persisted wire shape.
	Version uint64 `json:"-"`
}

// NewBill creates an empty bill with the given settings applied: default tax
// and tip percentages plus a copy of the default participants.
func NewBill(settings Settings) *Bill {
	bill := &Bill{
		ID:         uuid.New().String(),
		TaxPercent: settings.DefaultTaxPercent,
		TipPercent: settings.DefaultTipPercent,
		CreatedAt:  time.Now().UTC(),
	}
	for _, p := range settings.DefaultParticipants {
		bill.Participants = append(bill.Participants, Participant{
			ID:    p.ID,
			Name:  p.Name,
			Color: NormalizeColor(p.Color),
		})
	}
	return bill
}

// Subtotal is the sum of price x quantity over all items, assigned or not.
func (b *Bill) Subtotal() float64 {
	var sum float64
	for _, item := range b.Items {
		sum += item.LineTotal()
	}
	return sum
}

// TaxTotal is the currency amount of tax on the whole bill.
func (b *Bill) TaxTotal() float64 {
	return b.Subtotal() * b.TaxPercent / 100
}

// TipTotal is the currency amount of tip on the whole bill.
func (b *Bill) TipTotal() float64 {
	return b.Subtotal() * b.TipPercent / 100
}

// FinalTotal is subtotal plus tax plus tip.
func (b *Bill) FinalTotal() float64 {
	return b.Subtotal() + b.TaxTotal() + b.TipTotal()
}

// AddItem appends an item to the bill.
func (b *Bill) AddItem(item Item) {
	b.Items = append(b.Items, item)
	b.Version++
}

// RemoveItem deletes the item with the given ID. It reports whether an item
// was removed.
func (b *Bill) RemoveItem(itemID string) bool {
	for i, item := range b.Items {
		if item.ID == itemID {
			b.Items = append(b.Items[:i], b.Items[i+1:]...)
			b.Version++
			return true
		}
	}
	return false
}

// AddParticipant adds a participant unless one with the same ID already exists.
func (b *Bill) AddParticipant(p Participant) bool {
	for _, existing := range b.Participants {
		if existing.ID == p.ID {
			return false
		}
	}
	p.Color = NormalizeColor(p.Color)
	b.Participants = append(b.Participants, p)
	b.Version++
	return true
}

// RemoveParticipant deletes a participant and cascades to their items: items
// owned solely by the participant revert to unassigned, shared items lose just
// that owner. Items are never deleted by participant removal.
func (b *Bill) RemoveParticipant(participantID string) bool {
	idx := -1
	for i, p := range b.Participants {
		if p.ID == participantID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return false
	}
	for i := range b.Items {
		if b.Items[i].Owners.Contains(participantID) {
			b.Items[i].Owners = b.Items[i].Owners.Without(participantID)
		}
	}
	b.Participants = append(b.Participants[:idx], b.Participants[idx+1:]...)
	b.Version++
	return true
}

// Participant returns the participant with the given ID, if present.
func (b *Bill) Participant(participantID string) (Participant, bool) {
	for _, p := range b.Participants {
		if p.ID == participantID {
			return p, true
		}
	}
	return Participant{}, false
}

// Assign sets an item's ownership. Every referenced participant must be on the
// bill; unknown IDs make the assignment a no-op.
func (b *Bill) Assign(itemID string, owners Ownership) bool {
	for _, id := range owners.IDs() {
		if _, ok := b.Participant(id); !ok {
			return false
		}
	}
	for i := range b.Items {
		if b.Items[i].ID == itemID {
			b.Items[i].Owners = owners
			b.Version++
			return true
		}
	}
	return false
}

// Unassign clears an item's ownership.
func (b *Bill) Unassign(itemID string) bool {
	return b.Assign(itemID, Ownership{})
}

// SetTaxPercent updates the tax rate. Values outside 0-100 are ignored.
func (b *Bill) SetTaxPercent(percent float64) {
	if percent < 0 || percent > 100 {
		return
	}
	b.TaxPercent = percent
	b.Version++
}

// SetTipPercent updates the tip rate. Values outside 0-100 are ignored.
func (b *Bill) SetTipPercent(percent float64) {
	if percent < 0 || percent > 100 {
		return
	}
	b.TipPercent = percent
	b.Version++
}

// UnassignedItems returns the items with no owner.
func (b *Bill) UnassignedItems() []Item {
	var out []Item
	for _, item := range b.Items {
		if item.Owners.IsUnassigned() {
			out = append(out, item)
		}
	}
	return out
}

// ItemsFor returns the items a participant owns, solely or shared.
func (b *Bill) ItemsFor(participantID string) []Item {
	var out []Item
	for _, item := range b.Items {
		if item.Owners.Contains(participantID) {
			out = append(out, item)
		}
	}
	return out
}
