// Package calculator implements the allocation engine: pure, synchronous
// functions that distribute a bill's subtotal, tax, and tip across
// participants in proportion to the items they own. The package defines its
// own input types so it can be tested in complete isolation; the service
// layer converts from the domain models.
package calculator

import "errors"

// Split-readiness failures. These are user-facing messages surfaced once per
// split attempt, not internal faults.
var (
	ErrNoItems         = errors.New("no items to split")
	ErrNoParticipants  = errors.New("no participants to split between")
	ErrUnassignedItems = errors.New("some items are not assigned to anyone")
)

// Item is one bill line as the engine sees it.
type Item struct {
	Name     string
	Price    float64 // unit price
	Quantity int
	Owners   []string // participant IDs; empty means unassigned
}

// lineTotal is price times quantity, with quantity clamped to at least 1.
func (i Item) lineTotal() float64 {
	qty := i.Quantity
	if qty < 1 {
		qty = 1
	}
	return i.Price * float64(qty)
}

// Share is one participant's calculated portion of the bill.
type Share struct {
	// RawShare is the participant's item-ownership subtotal before tax/tip.
	RawShare float64

	// Tax and Tip are the participant's proportional slices of the bill-wide
	// tax and tip amounts.
	Tax float64
	Tip float64

	// Total is RawShare + Tax + Tip with the rounding mode applied. Rounding
	// happens here and nowhere else, so the sum of totals may differ from the
	// bill's final total by up to a cent per participant.
	Total float64
}

// Subtotal sums price times quantity over all items, assigned or not.
func Subtotal(items []Item) float64 {
	var sum float64
	for _, item := range items {
		sum += item.lineTotal()
	}
	return sum
}

// ValidateSplit checks whether a bill is ready to be split. It returns one of
// the split-readiness errors, or nil when allocation may proceed. Unassigned
// items block the split: silently ignoring their value would misstate every
// share.
func ValidateSplit(items []Item, participants []string) error {
	if len(items) == 0 {
		return ErrNoItems
	}
	if len(participants) == 0 {
		return ErrNoParticipants
	}
	for _, item := range items {
		if len(item.Owners) == 0 {
			return ErrUnassignedItems
		}
	}
	return nil
}

// CalculateShares computes every participant's share of the bill. Tax and tip
// are percentages of the subtotal and are distributed in proportion to each
// participant's raw share. Items shared by several owners are divided evenly
// among them.
//
// A zero subtotal makes the proportion undefined; the guard returns each raw
// share unmodified (necessarily 0) instead of dividing by zero. Unassigned
// items inflate the subtotal, and with it the tax/tip base, but contribute to
// no one's raw share; callers who want that surfaced run ValidateSplit first.
func CalculateShares(items []Item, participants []string, taxPercent, tipPercent float64, mode RoundingMode) map[string]*Share {
	shares := make(map[string]*Share, len(participants))
	for _, p := range participants {
		shares[p] = &Share{}
	}

	for _, item := range items {
		if len(item.Owners) == 0 {
			continue
		}
		perOwner := item.lineTotal() / float64(len(item.Owners))
		for _, owner := range item.Owners {
			if share, ok := shares[owner]; ok {
				share.RawShare += perOwner
			}
		}
	}

	subtotal := Subtotal(items)
	taxTotal := subtotal * taxPercent / 100
	tipTotal := subtotal * tipPercent / 100

	for _, share := range shares {
		if subtotal > 0 {
			proportion := share.RawShare / subtotal
			share.Tax = proportion * taxTotal
			share.Tip = proportion * tipTotal
		}
		share.Total = mode.Apply(share.RawShare + share.Tax + share.Tip)
	}
	return shares
}
