// Package service exposes the extraction pipeline and allocation engine over
// connect RPC, backed by a storage.Store.
package service

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"connectrpc.com/connect"

	"github.com/divvyup/backend/internal/calculator"
	"github.com/divvyup/backend/internal/extractor"
	"github.com/divvyup/backend/internal/models"
	"github.com/divvyup/backend/internal/storage"
)

// ErrScanInFlight is returned when a second scan is requested for a bill
// whose extraction run has not finished. Runs are never queued: interleaving
// partial item lists is exactly what the single-writer rule forbids.
var ErrScanInFlight = errors.New("a scan is already running for this bill")

// BillService implements the bill RPC surface.
type BillService struct {
	store storage.Store

	mu       sync.Mutex
	scanning map[string]bool // bill IDs with an extraction run in flight
}

// NewBillService creates a BillService with the given storage backend.
func NewBillService(store storage.Store) *BillService {
	return &BillService{
		store:    store,
		scanning: make(map[string]bool),
	}
}

// beginScan marks a bill as having an extraction run in flight.
func (s *BillService) beginScan(billID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.scanning[billID] {
		return ErrScanInFlight
	}
	s.scanning[billID] = true
	return nil
}

func (s *BillService) endScan(billID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.scanning, billID)
}

// ScanReceipt runs the extraction pipeline over recognized receipt text and
// appends the resulting items to the bill. With no bill ID the scan targets a
// fresh bill created from the saved settings. The bill is persisted when the
// save-history setting is on.
func (s *BillService) ScanReceipt(ctx context.Context, req *connect.Request[ScanReceiptRequest]) (*connect.Response[ScanReceiptResponse], error) {
	if req.Msg.Text == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, errors.New("text must not be empty"))
	}

	settings, err := s.store.LoadSettings(ctx)
	if err != nil {
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	var bill *models.Bill
	if req.Msg.BillID != "" {
		bill, err = s.store.GetBill(ctx, req.Msg.BillID)
		if errors.Is(err, storage.ErrNotFound) {
			return nil, connect.NewError(connect.CodeNotFound, err)
		}
		if err != nil {
			return nil, connect.NewError(connect.CodeInternal, err)
		}
	} else {
		bill = models.NewBill(settings)
	}

	if err := s.beginScan(bill.ID); err != nil {
		return nil, connect.NewError(connect.CodeAborted, err)
	}
	defer s.endScan(bill.ID)

	pipeline := extractor.NewPipeline()
	items, err := pipeline.Run(ctx, req.Msg.Text)
	if err != nil {
		// Cancellation or collaborator failure: partial results are discarded
		// and the bill is left untouched.
		code := connect.CodeCanceled
		if errors.Is(err, context.DeadlineExceeded) {
			code = connect.CodeDeadlineExceeded
		}
		return nil, connect.NewError(code, err)
	}
	for _, item := range items {
		bill.AddItem(item)
	}

	if settings.SaveHistory {
		if err := s.store.SaveBill(ctx, bill); err != nil {
			return nil, connect.NewError(connect.CodeInternal, err)
		}
	}

	stats := pipeline.Stats()
	slog.Info("receipt scanned",
		"bill_id", bill.ID,
		"tier", stats.Tier,
		"items", stats.ItemsExtracted,
	)
	return connect.NewResponse(&ScanReceiptResponse{
		Bill: bill,
		Stats: ScanStats{
			LinesProcessed: stats.LinesProcessed,
			ItemsExtracted: stats.ItemsExtracted,
			Tier:           stats.Tier,
			DurationMillis: stats.Elapsed.Milliseconds(),
		},
	}), nil
}

// SplitBill validates split-readiness and returns every participant's share.
// Validation failures carry the user-facing message and never partial totals.
func (s *BillService) SplitBill(ctx context.Context, req *connect.Request[SplitBillRequest]) (*connect.Response[SplitBillResponse], error) {
	bill, err := s.resolveBill(ctx, req.Msg.BillID, req.Msg.Bill)
	if err != nil {
		return nil, err
	}

	items := make([]calculator.Item, len(bill.Items))
	for i, item := range bill.Items {
		items[i] = calculator.Item{
			Name:     item.Name,
			Price:    item.Price,
			Quantity: item.Quantity,
			Owners:   item.Owners.IDs(),
		}
	}
	participantIDs := make([]string, len(bill.Participants))
	for i, p := range bill.Participants {
		participantIDs[i] = p.ID
	}

	if err := calculator.ValidateSplit(items, participantIDs); err != nil {
		return nil, connect.NewError(connect.CodeFailedPrecondition, err)
	}

	mode := req.Msg.RoundingMode
	if mode == "" {
		settings, err := s.store.LoadSettings(ctx)
		if err != nil {
			return nil, connect.NewError(connect.CodeInternal, err)
		}
		mode = settings.RoundingMode
	}

	shares := calculator.CalculateShares(items, participantIDs, bill.TaxPercent, bill.TipPercent, calculator.ParseRoundingMode(mode))

	resp := &SplitBillResponse{
		Subtotal:   bill.Subtotal(),
		TaxTotal:   bill.TaxTotal(),
		TipTotal:   bill.TipTotal(),
		FinalTotal: bill.FinalTotal(),
	}
	for _, p := range bill.Participants {
		share := shares[p.ID]
		resp.Shares = append(resp.Shares, ParticipantShare{
			ParticipantID: p.ID,
			Name:          p.Name,
			RawShare:      share.RawShare,
			Tax:           share.Tax,
			Tip:           share.Tip,
			Total:         share.Total,
		})
	}
	return connect.NewResponse(resp), nil
}

// resolveBill fetches the bill by ID, or accepts the inline bill.
func (s *BillService) resolveBill(ctx context.Context, billID string, inline *models.Bill) (*models.Bill, error) {
	if billID != "" {
		bill, err := s.store.GetBill(ctx, billID)
		if errors.Is(err, storage.ErrNotFound) {
			return nil, connect.NewError(connect.CodeNotFound, err)
		}
		if err != nil {
			return nil, connect.NewError(connect.CodeInternal, err)
		}
		return bill, nil
	}
	if inline == nil {
		return nil, connect.NewError(connect.CodeInvalidArgument, errors.New("either billId or bill is required"))
	}
	return inline, nil
}
