package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/divvyup/backend/internal/models"
	"github.com/divvyup/backend/internal/storage"
)

// SaveBill persists a bill, replacing any existing bill with the same ID.
// The whole bill graph is rewritten in one transaction so a partial write can
// never be observed.
func (s *SQLiteStore) SaveBill(ctx context.Context, bill *models.Bill) error {
	if bill.ID == "" {
		bill.ID = uuid.New().String()
	}
	if bill.CreatedAt.IsZero() {
		bill.CreatedAt = time.Now().UTC()
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	// Replacing the bill row cascades to participants, items, and owners.
	if _, err := tx.ExecContext(ctx, "DELETE FROM bills WHERE id = ?", bill.ID); err != nil {
		return fmt.Errorf("failed to clear existing bill: %w", err)
	}

	_, err = tx.ExecContext(ctx,
		"INSERT INTO bills (id, tax_percent, tip_percent, created_at) VALUES (?, ?, ?, ?)",
		bill.ID, bill.TaxPercent, bill.TipPercent, bill.CreatedAt.Unix(),
	)
	if err != nil {
		return fmt.Errorf("failed to insert bill: %w", err)
	}

	for _, p := range bill.Participants {
		_, err = tx.ExecContext(ctx,
			"INSERT INTO participants (bill_id, id, name, color) VALUES (?, ?, ?, ?)",
			bill.ID, p.ID, p.Name, p.Color,
		)
		if err != nil {
			return fmt.Errorf("failed to insert participant: %w", err)
		}
	}

	for i := range bill.Items {
		item := &bill.Items[i]
		if item.ID == "" {
			item.ID = uuid.New().String()
		}

		_, err = tx.ExecContext(ctx,
			"INSERT INTO items (id, bill_id, name, price, quantity, manually_added) VALUES (?, ?, ?, ?, ?, ?)",
			item.ID, bill.ID, item.Name, item.Price, item.Quantity, item.ManuallyAdded,
		)
		if err != nil {
			return fmt.Errorf("failed to insert item: %w", err)
		}

		for _, owner := range item.Owners.IDs() {
			_, err = tx.ExecContext(ctx,
				"INSERT INTO item_owners (item_id, participant_id) VALUES (?, ?)",
				item.ID, owner,
			)
			if err != nil {
				return fmt.Errorf("failed to insert item owner: %w", err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// GetBill retrieves a bill by ID, including all items, owners, and participants.
func (s *SQLiteStore) GetBill(ctx context.Context, billID string) (*models.Bill, error) {
	bill := &models.Bill{}
	var createdAt int64
	err := s.db.QueryRowContext(ctx,
		"SELECT id, tax_percent, tip_percent, created_at FROM bills WHERE id = ?",
		billID,
	).Scan(&bill.ID, &bill.TaxPercent, &bill.TipPercent, &createdAt)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("%w: %s", storage.ErrNotFound, billID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get bill: %w", err)
	}
	bill.CreatedAt = time.Unix(createdAt, 0).UTC()

	if err := s.loadParticipants(ctx, bill); err != nil {
		return nil, err
	}
	if err := s.loadItems(ctx, bill); err != nil {
		return nil, err
	}
	return bill, nil
}

func (s *SQLiteStore) loadParticipants(ctx context.Context, bill *models.Bill) error {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, name, color FROM participants WHERE bill_id = ? ORDER BY rowid",
		bill.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to get participants: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var p models.Participant
		if err := rows.Scan(&p.ID, &p.Name, &p.Color); err != nil {
			return fmt.Errorf("failed to scan participant: %w", err)
		}
		bill.Participants = append(bill.Participants, p)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("failed to iterate participants: %w", err)
	}
	return nil
}

func (s *SQLiteStore) loadItems(ctx context.Context, bill *models.Bill) error {
	itemRows, err := s.db.QueryContext(ctx,
		"SELECT id, name, price, quantity, manually_added FROM items WHERE bill_id = ? ORDER BY rowid",
		bill.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to get items: %w", err)
	}
	defer itemRows.Close()

	for itemRows.Next() {
		var item models.Item
		if err := itemRows.Scan(&item.ID, &item.Name, &item.Price, &item.Quantity, &item.ManuallyAdded); err != nil {
			return fmt.Errorf("failed to scan item: %w", err)
		}

		ownerRows, err := s.db.QueryContext(ctx,
			"SELECT participant_id FROM item_owners WHERE item_id = ? ORDER BY rowid",
			item.ID,
		)
		if err != nil {
			return fmt.Errorf("failed to get item owners: %w", err)
		}

		var owners []string
		for ownerRows.Next() {
			var owner string
			if err := ownerRows.Scan(&owner); err != nil {
				ownerRows.Close()
				return fmt.Errorf("failed to scan item owner: %w", err)
			}
			owners = append(owners, owner)
		}
		ownerRows.Close()
		if err := ownerRows.Err(); err != nil {
			return fmt.Errorf("failed to iterate item owners: %w", err)
		}
		item.Owners = models.SharedBy(owners...)

		bill.Items = append(bill.Items, item)
	}
	if err := itemRows.Err(); err != nil {
		return fmt.Errorf("failed to iterate items: %w", err)
	}
	return nil
}

// ListBills returns all saved bills, newest first.
func (s *SQLiteStore) ListBills(ctx context.Context) ([]*models.Bill, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id FROM bills ORDER BY created_at DESC, id",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list bills: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan bill id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate bills: %w", err)
	}

	bills := make([]*models.Bill, 0, len(ids))
	for _, id := range ids {
		bill, err := s.GetBill(ctx, id)
		if err != nil {
			return nil, err
		}
		bills = append(bills, bill)
	}
	return bills, nil
}

// DeleteBill removes a bill and everything hanging off it.
func (s *SQLiteStore) DeleteBill(ctx context.Context, billID string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM bills WHERE id = ?", billID)
	if err != nil {
		return fmt.Errorf("failed to delete bill: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: %s", storage.ErrNotFound, billID)
	}
	return nil
}
