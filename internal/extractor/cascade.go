package extractor

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/divvyup/backend/internal/models"
)

// The cascade's structural matchers, in fixed priority order. The first
// pattern that matches a line wins and the rest are skipped for that line.
//
// The name character class intentionally excludes '@' and 'x'-as-separator
// contexts so quantity lines fall through to the quantity patterns instead of
// being swallowed whole by the plain name+price pattern.
var (
	// NAME $PRICE. Parentheses are kept out of the name class so that
	// parenthesized-quantity lines fall through to nameQtyTotalRe, and the
	// price must be whitespace-separated so a malformed decimal can never be
	// split between name and price.
	namePriceRe = regexp.MustCompile(`^([A-Za-z][A-Za-z0-9\s\-&+.']*?)\s+\$?(\d[\d,]*(?:\.\d{1,2})?)$`)

	// A name-only line; pairs with a price-only line immediately below.
	nameOnlyRe  = regexp.MustCompile(`^[A-Za-z][A-Za-z\s\-&+.']*$`)
	priceOnlyRe = regexp.MustCompile(`^\$?(\d[\d,]*(?:\.\d{1,2})?)$`)

	// QTY x NAME @ PRICE — the matched price is a unit price.
	qtyNamePriceRe = regexp.MustCompile(`^(\d+)\s*[xX]\s*([A-Za-z][A-Za-z0-9\s\-&+.'()]*?)(?:\s+|\s*@\s*)\$?(\d[\d,]*(?:\.\d{1,2})?)$`)

	// NAME (QTY) PRICE — the matched price is a line total.
	nameQtyTotalRe = regexp.MustCompile(`^([A-Za-z][A-Za-z0-9\s\-&+.'()]*?)\s*\((\d+)\)\s*\$?(\d[\d,]*(?:\.\d{1,2})?)$`)
)

// minNameLength rejects names that are too short to be real item descriptions
// once the price substring is gone.
const minNameLength = 3

func cleanName(s string) (string, bool) {
	name := strings.TrimSpace(s)
	if len(name) < minNameLength {
		return "", false
	}
	return name, true
}

// Cascade applies the structural matchers line by line. Numeric parse
// failures are treated as a non-match, never as an error; the walk simply
// moves on.
type Cascade struct{}

// Extract runs the cascade over the already-classified lines and returns the
// items in line order. The name-then-price two-line form consumes both lines.
func (Cascade) Extract(lines []string) []models.Item {
	var items []models.Item
	for i := 0; i < len(lines); i++ {
		if item, ok := matchLine(lines[i]); ok {
			items = append(items, item)
			continue
		}
		if i+1 < len(lines) {
			if item, ok := matchLinePair(lines[i], lines[i+1]); ok {
				items = append(items, item)
				i++ // the price line is spent
			}
		}
	}
	return items
}

// matchLine tries the single-line patterns in priority order.
func matchLine(line string) (models.Item, bool) {
	if m := namePriceRe.FindStringSubmatch(line); m != nil {
		return buildItem(m[1], m[2], 1, false)
	}
	if m := qtyNamePriceRe.FindStringSubmatch(line); m != nil {
		qty, err := strconv.Atoi(m[1])
		if err != nil || qty < 1 {
			return models.Item{}, false
		}
		return buildItem(m[2], m[3], qty, false)
	}
	if m := nameQtyTotalRe.FindStringSubmatch(line); m != nil {
		qty, err := strconv.Atoi(m[2])
		if err != nil || qty < 1 {
			return models.Item{}, false
		}
		return buildItem(m[1], m[3], qty, true)
	}
	return models.Item{}, false
}

// matchLinePair handles an item name with its price on the following line.
func matchLinePair(line, next string) (models.Item, bool) {
	if !nameOnlyRe.MatchString(line) {
		return models.Item{}, false
	}
	m := priceOnlyRe.FindStringSubmatch(next)
	if m == nil {
		return models.Item{}, false
	}
	return buildItem(line, m[1], 1, false)
}

// buildItem assembles an item from matched groups. When priceIsTotal is set
// the matched amount covers the whole quantity and is divided down to a unit
// price.
func buildItem(rawName, rawPrice string, qty int, priceIsTotal bool) (models.Item, bool) {
	name, ok := cleanName(rawName)
	if !ok {
		return models.Item{}, false
	}
	price, ok := parsePrice(rawPrice)
	if !ok {
		return models.Item{}, false
	}
	if priceIsTotal {
		price /= float64(qty)
	}
	return models.NewItem(name, price, qty), true
}
