package models

// Settings holds user defaults consumed when a new bill is created. They are
// not re-validated by the extraction or allocation engines.
type Settings struct {
	// DefaultTaxPercent is applied to new bills (percentage).
	DefaultTaxPercent float64 `json:"defaultTaxPercent"`

	// DefaultTipPercent is applied to new bills (percentage).
	DefaultTipPercent float64 `json:"defaultTipPercent"`

	// CurrencyCode is display-only; amounts are currency-agnostic.
	CurrencyCode string `json:"currencyCode"`

	// RoundingMode selects how final per-participant shares are rounded:
	// "none", "up", "down", or "nearest".
	RoundingMode string `json:"roundingMode"`

	// SaveHistory controls whether completed bills are persisted.
	SaveHistory bool `json:"saveHistory"`

	// DefaultParticipants are added to every new bill.
	DefaultParticipants []Participant `json:"defaultParticipants"`
}

// DefaultSettings returns the out-of-the-box defaults.
func DefaultSettings() Settings {
	return Settings{
		DefaultTaxPercent: 8.0,
		DefaultTipPercent: 15.0,
		CurrencyCode:      "USD",
		RoundingMode:      "nearest",
		SaveHistory:       true,
	}
}
