package service

import (
	"context"
	"errors"

	"connectrpc.com/connect"

	"github.com/divvyup/backend/internal/storage"
)

// SaveBill persists a bill, replacing any bill with the same ID.
func (s *BillService) SaveBill(ctx context.Context, req *connect.Request[SaveBillRequest]) (*connect.Response[SaveBillResponse], error) {
	if req.Msg.Bill == nil {
		return nil, connect.NewError(connect.CodeInvalidArgument, errors.New("bill is required"))
	}
	if err := s.store.SaveBill(ctx, req.Msg.Bill); err != nil {
		return nil, connect.NewError(connect.CodeInternal, err)
	}
	return connect.NewResponse(&SaveBillResponse{Bill: req.Msg.Bill}), nil
}

// GetBill retrieves a saved bill by ID.
func (s *BillService) GetBill(ctx context.Context, req *connect.Request[GetBillRequest]) (*connect.Response[GetBillResponse], error) {
	bill, err := s.store.GetBill(ctx, req.Msg.BillID)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, connect.NewError(connect.CodeNotFound, err)
	}
	if err != nil {
		return nil, connect.NewError(connect.CodeInternal, err)
	}
	return connect.NewResponse(&GetBillResponse{Bill: bill}), nil
}

// ListBills returns all saved bills, newest first.
func (s *BillService) ListBills(ctx context.Context, req *connect.Request[ListBillsRequest]) (*connect.Response[ListBillsResponse], error) {
	bills, err := s.store.ListBills(ctx)
	if err != nil {
		return nil, connect.NewError(connect.CodeInternal, err)
	}
	return connect.NewResponse(&ListBillsResponse{Bills: bills}), nil
}

// DeleteBill removes a saved bill.
func (s *BillService) DeleteBill(ctx context.Context, req *connect.Request[DeleteBillRequest]) (*connect.Response[DeleteBillResponse], error) {
	err := s.store.DeleteBill(ctx, req.Msg.BillID)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, connect.NewError(connect.CodeNotFound, err)
	}
	if err != nil {
		return nil, connect.NewError(connect.CodeInternal, err)
	}
	return connect.NewResponse(&DeleteBillResponse{}), nil
}

// GetSettings returns the persisted user defaults.
func (s *BillService) GetSettings(ctx context.Context, req *connect.Request[GetSettingsRequest]) (*connect.Response[GetSettingsResponse], error) {
	settings, err := s.store.LoadSettings(ctx)
	if err != nil {
		return nil, connect.NewError(connect.CodeInternal, err)
	}
	return connect.NewResponse(&GetSettingsResponse{Settings: settings}), nil
}

// UpdateSettings persists new user defaults.
func (s *BillService) UpdateSettings(ctx context.Context, req *connect.Request[UpdateSettingsRequest]) (*connect.Response[UpdateSettingsResponse], error) {
	if err := s.store.SaveSettings(ctx, req.Msg.Settings); err != nil {
		return nil, connect.NewError(connect.CodeInternal, err)
	}
	return connect.NewResponse(&UpdateSettingsResponse{Settings: req.Msg.Settings}), nil
}
