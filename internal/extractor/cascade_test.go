package extractor

import (
	"math"
	"testing"
)

func TestCascadeExtract(t *testing.T) {
	tests := []struct {
		name      string
		lines     []string
		wantName  string
		wantPrice float64
		wantQty   int
	}{
		{
			name:      "name then trailing price",
			lines:     []string{"Burger 12.99"},
			wantName:  "Burger",
			wantPrice: 12.99,
			wantQty:   1,
		},
		{
			name:      "dollar sign prefix",
			lines:     []string{"Club Sandwich $8.75"},
			wantName:  "Club Sandwich",
			wantPrice: 8.75,
			wantQty:   1,
		},
		{
			name:      "thousands separator",
			lines:     []string{"Catering Platter 1,250.00"},
			wantName:  "Catering Platter",
			wantPrice: 1250.00,
			wantQty:   1,
		},
		{
			name:      "price on the following line",
			lines:     []string{"Pad Thai", "$11.50"},
			wantName:  "Pad Thai",
			wantPrice: 11.50,
			wantQty:   1,
		},
		{
			name:      "quantity times name at unit price",
			lines:     []string{"2 x Soda @ 2.99"},
			wantName:  "Soda",
			wantPrice: 2.99,
			wantQty:   2,
		},
		{
			name:      "quantity without at-sign",
			lines:     []string{"3 x Taco 3.50"},
			wantName:  "Taco",
			wantPrice: 3.50,
			wantQty:   3,
		},
		{
			name:      "parenthesized quantity with line total",
			lines:     []string{"Dumplings (4) 12.00"},
			wantName:  "Dumplings",
			wantPrice: 3.00,
			wantQty:   4,
		},
	}

	var cascade Cascade
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items := cascade.Extract(tt.lines)
			if len(items) != 1 {
				t.Fatalf("Extract(%v) produced %d items, want 1", tt.lines, len(items))
			}
			item := items[0]
			if item.Name != tt.wantName {
				t.Errorf("name = %q, want %q", item.Name, tt.wantName)
			}
			if math.Abs(item.Price-tt.wantPrice) > 0.001 {
				t.Errorf("price = %v, want %v", item.Price, tt.wantPrice)
			}
			if item.Quantity != tt.wantQty {
				t.Errorf("quantity = %d, want %d", item.Quantity, tt.wantQty)
			}
		})
	}
}

func TestCascadeRejects(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
	}{
		{"no price", []string{"Just some words"}},
		{"zero price", []string{"Freebie 0.00"}},
		{"too many decimals", []string{"Oddity 1.999"}},
		{"name too short after price removal", []string{"ab 4.99"}},
		{"price-only line with no name above", []string{"$4.99"}},
	}

	var cascade Cascade
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if items := cascade.Extract(tt.lines); len(items) != 0 {
				t.Errorf("Extract(%v) = %v, want none", tt.lines, items)
			}
		})
	}
}

func TestCascadeFirstMatchWins(t *testing.T) {
	// A line matching the plain name+price pattern must not also be consumed
	// by the pair pattern with the line below it.
	var cascade Cascade
	items := cascade.Extract([]string{"Burger 12.99", "Fries 4.99"})
	if len(items) != 2 {
		t.Fatalf("got %d items, want 2", len(items))
	}
	if items[0].Name != "Burger" || items[1].Name != "Fries" {
		t.Errorf("items = [%s, %s], want [Burger, Fries]", items[0].Name, items[1].Name)
	}
}

func TestCascadePairConsumesPriceLine(t *testing.T) {
	var cascade Cascade
	items := cascade.Extract([]string{"Pad Thai", "11.50", "Spring Rolls", "6.25"})
	if len(items) != 2 {
		t.Fatalf("got %d items, want 2", len(items))
	}
	if items[0].Name != "Pad Thai" || items[1].Name != "Spring Rolls" {
		t.Errorf("unexpected items: %v", items)
	}
}
