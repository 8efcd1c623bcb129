package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/divvyup/backend/internal/models"
)

// SaveSettings persists the user defaults as a single JSON payload.
func (s *SQLiteStore) SaveSettings(ctx context.Context, settings models.Settings) error {
	payload, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("failed to encode settings: %w", err)
	}
	_, err = s.db.ExecContext(ctx,
		"INSERT INTO settings (id, payload) VALUES (1, ?) ON CONFLICT(id) DO UPDATE SET payload = excluded.payload",
		string(payload),
	)
	if err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	return nil
}

// LoadSettings returns the persisted defaults, falling back to the built-in
// defaults when nothing has been saved yet or the payload does not decode.
func (s *SQLiteStore) LoadSettings(ctx context.Context) (models.Settings, error) {
	var payload string
	err := s.db.QueryRowContext(ctx, "SELECT payload FROM settings WHERE id = 1").Scan(&payload)
	if err == sql.ErrNoRows {
		return models.DefaultSettings(), nil
	}
	if err != nil {
		return models.Settings{}, fmt.Errorf("failed to load settings: %w", err)
	}

	var settings models.Settings
	if err := json.Unmarshal([]byte(payload), &settings); err != nil {
		return models.DefaultSettings(), nil
	}
	return settings, nil
}
