// Package service exposes the ledger over Connect RPC and plain HTTP.
package service

import (
	"context"
	"errors"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/mmynk/billease/internal/ledger"
	"github.com/mmynk/billease/pkg/api"
)

// LedgerService implements the Connect LedgerService.
// Every mutating RPC responds with the full state so clients never hold stale balances.
type LedgerService struct {
	api.UnimplementedLedgerServiceHandler
	ledger *ledger.Ledger
}

// NewLedgerService creates a LedgerService backed by l.
func NewLedgerService(l *ledger.Ledger) *LedgerService {
	return &LedgerService{ledger: l}
}

// GetState returns the active group's view.
func (s *LedgerService) GetState(ctx context.Context, req *connect.Request[api.GetStateRequest]) (*connect.Response[api.GetStateResponse], error) {
	return connect.NewResponse(&api.GetStateResponse{State: s.state()}), nil
}

// AddParticipant creates a participant in the active group.
func (s *LedgerService) AddParticipant(ctx context.Context, req *connect.Request[api.AddParticipantRequest]) (*connect.Response[api.AddParticipantResponse], error) {
	slog.Info("AddParticipant request received", "name", req.Msg.Name)

	p, err := s.ledger.AddParticipant(ctx, req.Msg.Name)
	if err != nil {
		return nil, toConnectError(err)
	}

	participant := toAPIParticipant(p)
	return connect.NewResponse(&api.AddParticipantResponse{
		Participant: &participant,
		State:       s.state(),
	}), nil
}

// AddGroup creates a group and makes it active.
func (s *LedgerService) AddGroup(ctx context.Context, req *connect.Request[api.AddGroupRequest]) (*connect.Response[api.AddGroupResponse], error) {
	slog.Info("AddGroup request received",
		"name", req.Msg.Name,
		"members_count", len(req.Msg.Members),
	)

	g, err := s.ledger.AddGroup(ctx, ledger.GroupInput{
		Name:        req.Msg.Name,
		Description: req.Msg.Description,
		Members:     req.Msg.Members,
	})
	if err != nil {
		return nil, toConnectError(err)
	}

	group := toAPIGroup(g)
	return connect.NewResponse(&api.AddGroupResponse{
		Group: &group,
		State: s.state(),
	}), nil
}

// SetCurrentGroup switches the active group. Unknown ids leave it unchanged.
func (s *LedgerService) SetCurrentGroup(ctx context.Context, req *connect.Request[api.SetCurrentGroupRequest]) (*connect.Response[api.SetCurrentGroupResponse], error) {
	if err := s.ledger.SetCurrentGroup(ctx, req.Msg.GroupID); err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&api.SetCurrentGroupResponse{State: s.state()}), nil
}

// AddExpense records an expense in the active group.
func (s *LedgerService) AddExpense(ctx context.Context, req *connect.Request[api.AddExpenseRequest]) (*connect.Response[api.AddExpenseResponse], error) {
	slog.Info("AddExpense request received",
		"description", req.Msg.Description,
		"amount", req.Msg.Amount,
		"split_type", req.Msg.SplitType,
		"splits_count", len(req.Msg.Splits),
	)

	e, err := s.ledger.AddExpense(ctx, fromAPIExpense(req.Msg))
	if err != nil {
		return nil, toConnectError(err)
	}

	expense := toAPIExpense(e)
	return connect.NewResponse(&api.AddExpenseResponse{
		Expense: &expense,
		State:   s.state(),
	}), nil
}

// DeleteExpense removes an expense by id.
func (s *LedgerService) DeleteExpense(ctx context.Context, req *connect.Request[api.DeleteExpenseRequest]) (*connect.Response[api.DeleteExpenseResponse], error) {
	if err := s.ledger.DeleteExpense(ctx, req.Msg.ExpenseID); err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&api.DeleteExpenseResponse{State: s.state()}), nil
}

// SettleUp clears the active group's expenses.
func (s *LedgerService) SettleUp(ctx context.Context, req *connect.Request[api.SettleUpRequest]) (*connect.Response[api.SettleUpResponse], error) {
	cleared, err := s.ledger.SettleUp(ctx)
	if err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&api.SettleUpResponse{
		Cleared:        cleared,
		AlreadySettled: cleared == 0,
		State:          s.state(),
	}), nil
}

// GetSummary aggregates the active group's spending by category.
func (s *LedgerService) GetSummary(ctx context.Context, req *connect.Request[api.GetSummaryRequest]) (*connect.Response[api.GetSummaryResponse], error) {
	return connect.NewResponse(toAPISummary(s.ledger.Summary())), nil
}

func (s *LedgerService) state() *api.State {
	return toAPIState(s.ledger.Snapshot())
}

// toConnectError maps ledger errors to Connect codes.
func toConnectError(err error) error {
	switch {
	case errors.Is(err, ledger.ErrValidation):
		return connect.NewError(connect.CodeInvalidArgument, err)
	case errors.Is(err, ledger.ErrExpenseNotFound):
		return connect.NewError(connect.CodeNotFound, err)
	default:
		slog.Error("Ledger operation failed", "error", err)
		return connect.NewError(connect.CodeInternal, err)
	}
}
