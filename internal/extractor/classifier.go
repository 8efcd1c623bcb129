package extractor

import (
	"regexp"
	"strings"
)

// noisePatterns exclude receipt lines that can never be items: totals and
// check metadata, payment methods, dates/times, and address blocks. The sets
// are deliberately narrow: a non-item line that slips through is recovered by
// a failed price match downstream, but a real item classified as noise is
// gone for good.
var noisePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(subtotal|total|tax|tip|receipt|thank\s+you|server|table|check|bill)`),
	regexp.MustCompile(`(?i)(change|cash|card|credit|debit|visa|mastercard|amex|balance|due|paid)`),
	regexp.MustCompile(`(?i)(date|time)`),
	regexp.MustCompile(`\d{1,2}[/\-]\d{1,2}[/\-]\d{2,4}`),
	regexp.MustCompile(`\d{1,2}:\d{2}\s*(?i:am|pm)?`),
	regexp.MustCompile(`(?i)(phone|address|street|city|state|zip)`),
}

// IsNoise reports whether a line is structurally excluded from item
// extraction. Noise lines are dropped before any extraction attempt and never
// re-examined by later tiers.
func IsNoise(line string) bool {
	for _, re := range noisePatterns {
		if re.MatchString(line) {
			return true
		}
	}
	return false
}

// minLineLength is the shortest line worth examining; anything shorter cannot
// hold a name and a price.
const minLineLength = 3

// usableLines trims every line and drops blanks, fragments shorter than
// minLineLength, and noise. Order is preserved.
func usableLines(lines []string) []string {
	var out []string
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if len(trimmed) < minLineLength || IsNoise(trimmed) {
			continue
		}
		out = append(out, trimmed)
	}
	return out
}
