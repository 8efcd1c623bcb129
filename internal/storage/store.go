// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"
	"errors"

	"github.com/divvyup/backend/internal/models"
)

// ErrNotFound is returned when a requested bill does not exist.
var ErrNotFound = errors.New("bill not found")

// Store defines the interface for bill and settings persistence. The
// abstraction allows swapping storage backends without changing the service
// layer, and keeps the core free of any global storage state.
type Store interface {
	// SaveBill persists a bill, replacing any existing bill with the same ID.
	// A missing ID or CreatedAt is populated by the store.
	SaveBill(ctx context.Context, bill *models.Bill) error

	// GetBill retrieves a bill by ID. Returns ErrNotFound if absent.
	GetBill(ctx context.Context, billID string) (*models.Bill, error)

	// ListBills returns all saved bills, newest first.
	ListBills(ctx context.Context) ([]*models.Bill, error)

	// DeleteBill removes a bill. Returns ErrNotFound if absent.
	DeleteBill(ctx context.Context, billID string) error

	// SaveSettings persists the user defaults.
	SaveSettings(ctx context.Context, settings models.Settings) error

	// LoadSettings returns the persisted defaults, or models.DefaultSettings
	// when none have been saved yet.
	LoadSettings(ctx context.Context) (models.Settings, error)

	// Close releases any resources held by the store.
	Close() error
}
