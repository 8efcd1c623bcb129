package extractor

import (
	"math"
	"testing"
)

func TestExtractProximity(t *testing.T) {
	t.Run("name on the same line", func(t *testing.T) {
		items := extractProximity([]string{"Pad Thai 11.50"})
		if len(items) != 1 {
			t.Fatalf("got %d items, want 1", len(items))
		}
		if items[0].Name != "Pad Thai" || math.Abs(items[0].Price-11.50) > 0.001 {
			t.Errorf("got (%s, %v), want (Pad Thai, 11.50)", items[0].Name, items[0].Price)
		}
	})

	t.Run("names ending in a separator character survive intact", func(t *testing.T) {
		items := extractProximity([]string{"Trail Mix 4.50"})
		if len(items) != 1 {
			t.Fatalf("got %d items, want 1", len(items))
		}
		if items[0].Name != "Trail Mix" {
			t.Errorf("name = %q, want Trail Mix", items[0].Name)
		}
	})

	t.Run("dangling separators next to the price are dropped", func(t *testing.T) {
		items := extractProximity([]string{"Soda @ 2.99"})
		if len(items) != 1 {
			t.Fatalf("got %d items, want 1", len(items))
		}
		if items[0].Name != "Soda" {
			t.Errorf("name = %q, want Soda", items[0].Name)
		}
	})

	t.Run("name from a preceding line", func(t *testing.T) {
		items := extractProximity([]string{"Green Curry", "", "$9.95"})
		if len(items) != 1 {
			t.Fatalf("got %d items, want 1", len(items))
		}
		if items[0].Name != "Green Curry" {
			t.Errorf("name = %q, want Green Curry", items[0].Name)
		}
	})

	t.Run("window stops after three lines", func(t *testing.T) {
		items := extractProximity([]string{"Green Curry", "--", "--", "--", "$9.95"})
		if len(items) != 0 {
			t.Errorf("got %v, want none: name is outside the window", items)
		}
	})

	t.Run("price lines never serve as names", func(t *testing.T) {
		items := extractProximity([]string{"$4.20", "$9.95"})
		if len(items) != 0 {
			t.Errorf("got %v, want none", items)
		}
	})

	t.Run("out-of-range prices are not prices", func(t *testing.T) {
		items := extractProximity([]string{"Party Tray 1500.00", "Sticker 0.25"})
		if len(items) != 0 {
			t.Errorf("got %v, want none", items)
		}
	})

	t.Run("noise lines are skipped entirely", func(t *testing.T) {
		items := extractProximity([]string{"SUBTOTAL $45.20"})
		if len(items) != 0 {
			t.Errorf("got %v, want none", items)
		}
	})
}

func TestExtractFuzzy(t *testing.T) {
	t.Run("permissive number and name pairing", func(t *testing.T) {
		items := extractFuzzy([]string{"Mystery Plate 7"})
		if len(items) != 1 {
			t.Fatalf("got %d items, want 1", len(items))
		}
		if items[0].Name != "Mystery Plate" || math.Abs(items[0].Price-7) > 0.001 {
			t.Errorf("got (%s, %v)", items[0].Name, items[0].Price)
		}
	})

	t.Run("no proximity search", func(t *testing.T) {
		items := extractFuzzy([]string{"Green Curry", "$9.95"})
		if len(items) != 0 {
			t.Errorf("got %v, want none: fuzzy never borrows a neighboring name", items)
		}
	})

	t.Run("strict range", func(t *testing.T) {
		for _, line := range []string{"Fancy Bottle 250.00", "Penny Candy 0.75"} {
			if items := extractFuzzy([]string{line}); len(items) != 0 {
				t.Errorf("extractFuzzy(%q) = %v, want none", line, items)
			}
		}
	})

	t.Run("never fabricates without a number", func(t *testing.T) {
		if items := extractFuzzy([]string{"chef's special of the day"}); len(items) != 0 {
			t.Errorf("got %v, want none", items)
		}
	})
}
