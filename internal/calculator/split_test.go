package calculator

import (
	"errors"
	"math"
	"testing"
)

func TestCalculateShares(t *testing.T) {
	tests := []struct {
		name         string
		items        []Item
		participants []string
		taxPercent   float64
		tipPercent   float64
		mode         RoundingMode
		validateFunc func(t *testing.T, shares map[string]*Share)
	}{
		{
			name: "two-person split with proportional tax and tip",
			items: []Item{
				{Name: "Burger", Price: 12.99, Quantity: 1, Owners: []string{"alice"}},
				{Name: "Fries", Price: 4.99, Quantity: 1, Owners: []string{"bob"}},
			},
			participants: []string{"alice", "bob"},
			taxPercent:   8,
			tipPercent:   15,
			mode:         RoundNone,
			validateFunc: func(t *testing.T, shares map[string]*Share) {
				// subtotal = 17.98, tax = 1.4384, tip = 2.697
				// alice: raw 12.99, proportion 0.7225 -> total 12.99 + 0.7225*4.1354 = 15.978
				// bob: raw 4.99, proportion 0.2775 -> total 4.99 + 0.2775*4.1354 = 6.138
				alice := shares["alice"]
				if math.Abs(alice.RawShare-12.99) > 0.001 {
					t.Errorf("alice raw share = %v, want 12.99", alice.RawShare)
				}
				if math.Abs(alice.Tax-1.0392) > 0.001 {
					t.Errorf("alice tax = %v, want ~1.0392", alice.Tax)
				}
				if math.Abs(alice.Total-15.978) > 0.001 {
					t.Errorf("alice total = %v, want ~15.978", alice.Total)
				}

				bob := shares["bob"]
				if math.Abs(bob.RawShare-4.99) > 0.001 {
					t.Errorf("bob raw share = %v, want 4.99", bob.RawShare)
				}
				if math.Abs(bob.Total-6.138) > 0.001 {
					t.Errorf("bob total = %v, want ~6.138", bob.Total)
				}

				// Unrounded shares sum to the final total exactly.
				finalTotal := 17.98 * 1.23
				if math.Abs(alice.Total+bob.Total-finalTotal) > 1e-9 {
					t.Errorf("share sum = %v, want %v", alice.Total+bob.Total, finalTotal)
				}
			},
		},
		{
			name: "shared item divides evenly among owners",
			items: []Item{
				{Name: "Pizza", Price: 20.0, Quantity: 1, Owners: []string{"alice", "bob"}},
				{Name: "Salad", Price: 10.0, Quantity: 1, Owners: []string{"alice"}},
			},
			participants: []string{"alice", "bob"},
			taxPercent:   10,
			tipPercent:   0,
			mode:         RoundNone,
			validateFunc: func(t *testing.T, shares map[string]*Share) {
				// alice: 10 + 10 = 20, tax 2; bob: 10, tax 1
				if math.Abs(shares["alice"].Total-22.0) > 0.001 {
					t.Errorf("alice total = %v, want 22.0", shares["alice"].Total)
				}
				if math.Abs(shares["bob"].Total-11.0) > 0.001 {
					t.Errorf("bob total = %v, want 11.0", shares["bob"].Total)
				}
			},
		},
		{
			name: "quantity multiplies the raw share",
			items: []Item{
				{Name: "Soda", Price: 2.50, Quantity: 3, Owners: []string{"alice"}},
			},
			participants: []string{"alice"},
			taxPercent:   0,
			tipPercent:   0,
			mode:         RoundNone,
			validateFunc: func(t *testing.T, shares map[string]*Share) {
				if math.Abs(shares["alice"].RawShare-7.50) > 0.001 {
					t.Errorf("alice raw share = %v, want 7.50", shares["alice"].RawShare)
				}
			},
		},
		{
			name: "zero subtotal never divides",
			items: []Item{
				{Name: "Freebie", Price: 0, Quantity: 1, Owners: []string{"alice"}},
				{Name: "Comp", Price: 0, Quantity: 2, Owners: []string{"bob"}},
			},
			participants: []string{"alice", "bob"},
			taxPercent:   8,
			tipPercent:   15,
			mode:         RoundNearest,
			validateFunc: func(t *testing.T, shares map[string]*Share) {
				for id, share := range shares {
					if share.Total != 0 {
						t.Errorf("%s total = %v, want 0", id, share.Total)
					}
					if math.IsNaN(share.Total) || math.IsNaN(share.Tax) {
						t.Errorf("%s produced NaN", id)
					}
				}
			},
		},
		{
			name: "unassigned items inflate the base but belong to nobody",
			items: []Item{
				{Name: "Burger", Price: 10.0, Quantity: 1, Owners: []string{"alice"}},
				{Name: "Mystery", Price: 10.0, Quantity: 1},
			},
			participants: []string{"alice"},
			taxPercent:   10,
			tipPercent:   0,
			mode:         RoundNone,
			validateFunc: func(t *testing.T, shares map[string]*Share) {
				// subtotal 20, tax 2; alice proportion 0.5 -> tax share 1
				alice := shares["alice"]
				if math.Abs(alice.RawShare-10.0) > 0.001 {
					t.Errorf("alice raw share = %v, want 10.0", alice.RawShare)
				}
				if math.Abs(alice.Tax-1.0) > 0.001 {
					t.Errorf("alice tax = %v, want 1.0", alice.Tax)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			shares := CalculateShares(tt.items, tt.participants, tt.taxPercent, tt.tipPercent, tt.mode)
			if len(shares) != len(tt.participants) {
				t.Fatalf("got %d shares, want %d", len(shares), len(tt.participants))
			}
			tt.validateFunc(t, shares)
		})
	}
}

func TestConservation(t *testing.T) {
	// With every item assigned, raw shares sum back to the subtotal.
	items := []Item{
		{Name: "Burger", Price: 12.99, Quantity: 1, Owners: []string{"alice"}},
		{Name: "Pizza", Price: 21.50, Quantity: 1, Owners: []string{"alice", "bob", "carol"}},
		{Name: "Soda", Price: 2.99, Quantity: 2, Owners: []string{"bob"}},
		{Name: "Wings", Price: 9.75, Quantity: 1, Owners: []string{"bob", "carol"}},
	}
	participants := []string{"alice", "bob", "carol"}

	shares := CalculateShares(items, participants, 0, 0, RoundNone)

	var rawSum float64
	for _, share := range shares {
		rawSum += share.RawShare
	}
	if math.Abs(rawSum-Subtotal(items)) > 1e-9 {
		t.Errorf("raw share sum = %v, want subtotal %v", rawSum, Subtotal(items))
	}
}

func TestBoundedRoundingDrift(t *testing.T) {
	items := []Item{
		{Name: "Burger", Price: 12.99, Quantity: 1, Owners: []string{"alice"}},
		{Name: "Fries", Price: 4.99, Quantity: 1, Owners: []string{"bob"}},
		{Name: "Shake", Price: 6.33, Quantity: 1, Owners: []string{"carol"}},
	}
	participants := []string{"alice", "bob", "carol"}
	const taxPercent, tipPercent = 8.25, 17.5

	subtotal := Subtotal(items)
	finalTotal := subtotal * (1 + taxPercent/100 + tipPercent/100)

	for _, mode := range []RoundingMode{RoundNone, RoundUp, RoundDown, RoundNearest} {
		t.Run(mode.String(), func(t *testing.T) {
			shares := CalculateShares(items, participants, taxPercent, tipPercent, mode)
			var sum float64
			for _, share := range shares {
				sum += share.Total
			}
			bound := 0.01*float64(len(participants)) + 1e-9
			if drift := math.Abs(sum - finalTotal); drift > bound {
				t.Errorf("mode %s: drift %v exceeds bound %v", mode, drift, bound)
			}
		})
	}
}

func TestValidateSplit(t *testing.T) {
	assigned := Item{Name: "Burger", Price: 10, Quantity: 1, Owners: []string{"alice"}}
	unassigned := Item{Name: "Fries", Price: 5, Quantity: 1}

	tests := []struct {
		name         string
		items        []Item
		participants []string
		wantErr      error
	}{
		{"ready", []Item{assigned}, []string{"alice"}, nil},
		{"no items", nil, []string{"alice"}, ErrNoItems},
		{"no participants", []Item{assigned}, nil, ErrNoParticipants},
		{"unassigned items remain", []Item{assigned, unassigned, assigned}, []string{"alice"}, ErrUnassignedItems},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateSplit(tt.items, tt.participants)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateSplit() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
