package extractor

import (
	"strings"

	"github.com/divvyup/backend/internal/models"
)

// Price ranges for the fallback tiers. Proximity accepts anything a receipt
// could plausibly charge; fuzzy narrows further because it has no context to
// lean on and favors precision over recall.
const (
	proximityMinPrice = 0.50
	proximityMaxPrice = 999.99
	fuzzyMinPrice     = 1.00
	fuzzyMaxPrice     = 100.00

	// proximityWindow is how many preceding lines are searched for a name.
	proximityWindow = 3
)

// extractProximity detects a price anywhere in a line and pairs it with a
// plausible name from the same line or one of the preceding lines, nearest
// first. Prices with no name candidate in the window are discarded.
func extractProximity(lines []string) []models.Item {
	var items []models.Item
	for i, line := range lines {
		line = strings.TrimSpace(line)
		if len(line) < minLineLength || IsNoise(line) {
			continue
		}
		price, matched, ok := findPrice(line, proximityMinPrice, proximityMaxPrice)
		if !ok {
			continue
		}
		if name, ok := nameNearPrice(lines, i, line, matched); ok {
			items = append(items, models.NewItem(name, price, 1))
		}
	}
	return items
}

// nameNearPrice tries the price's own line first (with the price substring
// stripped), then walks backward through the window. A candidate line must
// not be noise, must be longer than two characters, and, when it is a
// different line, must not itself contain a price.
func nameNearPrice(lines []string, index int, priceLine, matched string) (string, bool) {
	if name, ok := stripPrice(priceLine, matched); ok && !IsNoise(name) {
		return name, true
	}
	for i := index - 1; i >= 0 && i >= index-proximityWindow; i-- {
		candidate := strings.TrimSpace(lines[i])
		if len(candidate) < minNameLength || IsNoise(candidate) || containsPrice(candidate) {
			continue
		}
		return candidate, true
	}
	return "", false
}

// extractFuzzy is the last resort: a strict price range and no proximity
// search. It never fabricates an item from a line containing no number.
func extractFuzzy(lines []string) []models.Item {
	var items []models.Item
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if len(line) < minLineLength || IsNoise(line) {
			continue
		}
		price, matched, ok := findPrice(line, fuzzyMinPrice, fuzzyMaxPrice)
		if !ok {
			continue
		}
		if name, ok := stripPrice(line, matched); ok {
			items = append(items, models.NewItem(name, price, 1))
		}
	}
	return items
}

// stripPrice removes the matched price substring from the line and reports
// whether what remains is long enough to be a name. Only separator tokens
// left dangling next to the price are dropped; a name that happens to end in
// "x" or "-" keeps every character.
func stripPrice(line, matched string) (string, bool) {
	idx := strings.Index(line, matched)
	if idx < 0 {
		return "", false
	}
	before := dropSeparatorToken(strings.Fields(line[:idx]), true)
	after := dropSeparatorToken(strings.Fields(line[idx+len(matched):]), false)
	name := strings.TrimSpace(strings.Join(append(before, after...), " "))
	if len(name) < minNameLength {
		return "", false
	}
	return name, true
}

// dropSeparatorToken removes a lone "@", "-", "x", or "$" standing where the
// price used to be: the last token before it or the first token after it.
func dropSeparatorToken(fields []string, trailing bool) []string {
	if len(fields) == 0 {
		return fields
	}
	i := 0
	if trailing {
		i = len(fields) - 1
	}
	switch fields[i] {
	case "@", "-", "x", "X", "$":
		if trailing {
			return fields[:i]
		}
		return fields[1:]
	}
	return fields
}
