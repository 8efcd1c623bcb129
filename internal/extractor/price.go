package extractor

import (
	"regexp"
	"strconv"
	"strings"
)

// priceToken matches a dollar amount anywhere in a line: optional $, optional
// thousands separators, at most two decimal digits.
var priceToken = regexp.MustCompile(`\$?(\d{1,3}(?:,\d{3})+|\d+)(\.\d{1,2})?`)

// parsePrice converts a matched amount to a float. It strips a leading $ and
// thousands separators and rejects anything with more than two decimal digits
// or a value of zero or lower.
func parsePrice(s string) (float64, bool) {
	s = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(s), "$"))
	s = strings.ReplaceAll(s, ",", "")
	if dot := strings.IndexByte(s, '.'); dot >= 0 && len(s)-dot-1 > 2 {
		return 0, false
	}
	price, err := strconv.ParseFloat(s, 64)
	if err != nil || price <= 0 {
		return 0, false
	}
	return price, true
}

// findPrice returns the first amount in the line that parses and falls within
// [min, max], along with the exact substring that matched. Out-of-range
// amounts are treated as not being prices at all.
func findPrice(line string, min, max float64) (float64, string, bool) {
	for _, loc := range priceToken.FindAllString(line, -1) {
		price, ok := parsePrice(loc)
		if !ok {
			continue
		}
		if price < min || price > max {
			return 0, "", false
		}
		return price, loc, true
	}
	return 0, "", false
}

// containsPrice reports whether any parseable amount appears in the line.
func containsPrice(line string) bool {
	for _, loc := range priceToken.FindAllString(line, -1) {
		if _, ok := parsePrice(loc); ok {
			return true
		}
	}
	return false
}
