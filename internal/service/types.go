package service

import (
	"net/http"

	"connectrpc.com/connect"

	"github.com/divvyup/backend/internal/models"
)

// Procedure paths for the bill service. Kept in the generated-handler naming
// style so clients and interceptors can address procedures uniformly.
const (
	BillServicePath = "/divvyup.v1.BillService/"

	ScanReceiptProcedure    = BillServicePath + "ScanReceipt"
	SplitBillProcedure      = BillServicePath + "SplitBill"
	SaveBillProcedure       = BillServicePath + "SaveBill"
	GetBillProcedure        = BillServicePath + "GetBill"
	ListBillsProcedure      = BillServicePath + "ListBills"
	DeleteBillProcedure     = BillServicePath + "DeleteBill"
	GetSettingsProcedure    = BillServicePath + "GetSettings"
	UpdateSettingsProcedure = BillServicePath + "UpdateSettings"
)

// ScanReceiptRequest carries recognized OCR text from the collaborator
// boundary: one UTF-8 string, newline-separated lines. BillID is optional; a
// missing ID scans into a fresh bill built from the saved settings.
type ScanReceiptRequest struct {
	BillID string `json:"billId,omitempty"`
	Text   string `json:"text"`
}

// ScanStats summarizes one extraction run.
type ScanStats struct {
	LinesProcessed int    `json:"linesProcessed"`
	ItemsExtracted int    `json:"itemsExtracted"`
	Tier           string `json:"tier"`
	DurationMillis int64  `json:"durationMillis"`
}

type ScanReceiptResponse struct {
	Bill  *models.Bill `json:"bill"`
	Stats ScanStats    `json:"stats"`
}

// SplitBillRequest addresses a saved bill by ID, or carries the bill inline
// for callers that have not persisted yet. RoundingMode overrides the saved
// settings when present.
type SplitBillRequest struct {
	BillID       string       `json:"billId,omitempty"`
	Bill         *models.Bill `json:"bill,omitempty"`
	RoundingMode string       `json:"roundingMode,omitempty"`
}

// ParticipantShare is one participant's final portion of the bill.
type ParticipantShare struct {
	ParticipantID string  `json:"participantId"`
	Name          string  `json:"name"`
	RawShare      float64 `json:"rawShare"`
	Tax           float64 `json:"tax"`
	Tip           float64 `json:"tip"`
	Total         float64 `json:"total"`
}

type SplitBillResponse struct {
	Subtotal   float64            `json:"subtotal"`
	TaxTotal   float64            `json:"taxTotal"`
	TipTotal   float64            `json:"tipTotal"`
	FinalTotal float64            `json:"finalTotal"`
	Shares     []ParticipantShare `json:"shares"`
}

type SaveBillRequest struct {
	Bill *models.Bill `json:"bill"`
}

type SaveBillResponse struct {
	Bill *models.Bill `json:"bill"`
}

type GetBillRequest struct {
	BillID string `json:"billId"`
}

type GetBillResponse struct {
	Bill *models.Bill `json:"bill"`
}

type ListBillsRequest struct{}

type ListBillsResponse struct {
	Bills []*models.Bill `json:"bills"`
}

type DeleteBillRequest struct {
	BillID string `json:"billId"`
}

type DeleteBillResponse struct{}

type GetSettingsRequest struct{}

type GetSettingsResponse struct {
	Settings models.Settings `json:"settings"`
}

type UpdateSettingsRequest struct {
	Settings models.Settings `json:"settings"`
}

type UpdateSettingsResponse struct {
	Settings models.Settings `json:"settings"`
}

// NewBillServiceHandler mounts every bill service procedure under the service
// path prefix, mirroring the shape of generated connect handlers.
func NewBillServiceHandler(svc *BillService, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = append([]connect.HandlerOption{connect.WithCodec(jsonCodec{})}, opts...)
	mux := http.NewServeMux()
	mux.Handle(ScanReceiptProcedure, connect.NewUnaryHandler(ScanReceiptProcedure, svc.ScanReceipt, opts...))
	mux.Handle(SplitBillProcedure, connect.NewUnaryHandler(SplitBillProcedure, svc.SplitBill, opts...))
	mux.Handle(SaveBillProcedure, connect.NewUnaryHandler(SaveBillProcedure, svc.SaveBill, opts...))
	mux.Handle(GetBillProcedure, connect.NewUnaryHandler(GetBillProcedure, svc.GetBill, opts...))
	mux.Handle(ListBillsProcedure, connect.NewUnaryHandler(ListBillsProcedure, svc.ListBills, opts...))
	mux.Handle(DeleteBillProcedure, connect.NewUnaryHandler(DeleteBillProcedure, svc.DeleteBill, opts...))
	mux.Handle(GetSettingsProcedure, connect.NewUnaryHandler(GetSettingsProcedure, svc.GetSettings, opts...))
	mux.Handle(UpdateSettingsProcedure, connect.NewUnaryHandler(UpdateSettingsProcedure, svc.UpdateSettings, opts...))
	return BillServicePath, mux
}
