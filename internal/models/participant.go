package models

import "github.com/google/uuid"

// participantColors is the fixed palette for participant badges. The color is
// display-only and carries no meaning for extraction or allocation.
var participantColors = map[string]bool{
	"blue":   true,
	"green":  true,
	"red":    true,
	"orange": true,
	"purple": true,
	"pink":   true,
	"teal":   true,
	"indigo": true,
}

// DefaultParticipantColor is used when a color is missing or not in the palette.
const DefaultParticipantColor = "blue"

// NormalizeColor maps unknown color names onto the default.
func NormalizeColor(color string) string {
	if participantColors[color] {
		return color
	}
	return DefaultParticipantColor
}

// Participant represents one person splitting a bill.
type Participant struct {
	// ID is the unique identifier for the participant (UUID format).
	ID string `json:"id"`

	// Name is the display name of the participant.
	Name string `json:"name"`

	// Color is the badge color, one of the fixed palette.
	Color string `json:"colorTag"`
}

// NewParticipant creates a participant with a fresh UUID and a normalized color.
func NewParticipant(name, color string) Participant {
	return Participant{
		ID:    uuid.New().String(),
		Name:  name,
		Color: NormalizeColor(color),
	}
}
