package api

import (
	context "context"
	errors "errors"
	http "net/http"
	strings "strings"

	connect "connectrpc.com/connect"
)

// LedgerServiceName is the fully-qualified name of the LedgerService service.
const LedgerServiceName = "billease.v1.LedgerService"

// These constants are the fully-qualified names of the RPCs defined in this package. They're
// exposed at runtime as Spec.Procedure and as the final two segments of the HTTP route.
const (
	LedgerServiceGetStateProcedure        = "/billease.v1.LedgerService/GetState"
	LedgerServiceAddParticipantProcedure  = "/billease.v1.LedgerService/AddParticipant"
	LedgerServiceAddGroupProcedure        = "/billease.v1.LedgerService/AddGroup"
	LedgerServiceSetCurrentGroupProcedure = "/billease.v1.LedgerService/SetCurrentGroup"
	LedgerServiceAddExpenseProcedure      = "/billease.v1.LedgerService/AddExpense"
	LedgerServiceDeleteExpenseProcedure   = "/billease.v1.LedgerService/DeleteExpense"
	LedgerServiceSettleUpProcedure        = "/billease.v1.LedgerService/SettleUp"
	LedgerServiceGetSummaryProcedure      = "/billease.v1.LedgerService/GetSummary"
)

// LedgerServiceClient is a client for the billease.v1.LedgerService service.
type LedgerServiceClient interface {
	GetState(context.Context, *connect.Request[GetStateRequest]) (*connect.Response[GetStateResponse], error)
	AddParticipant(context.Context, *connect.Request[AddParticipantRequest]) (*connect.Response[AddParticipantResponse], error)
	AddGroup(context.Context, *connect.Request[AddGroupRequest]) (*connect.Response[AddGroupResponse], error)
	SetCurrentGroup(context.Context, *connect.Request[SetCurrentGroupRequest]) (*connect.Response[SetCurrentGroupResponse], error)
	AddExpense(context.Context, *connect.Request[AddExpenseRequest]) (*connect.Response[AddExpenseResponse], error)
	DeleteExpense(context.Context, *connect.Request[DeleteExpenseRequest]) (*connect.Response[DeleteExpenseResponse], error)
	SettleUp(context.Context, *connect.Request[SettleUpRequest]) (*connect.Response[SettleUpResponse], error)
	GetSummary(context.Context, *connect.Request[GetSummaryRequest]) (*connect.Response[GetSummaryResponse], error)
}

// NewLedgerServiceClient constructs a client for the billease.v1.LedgerService service. Messages
// are sent with JSONCodec unless opts override it.
//
// The URL supplied here should be the base URL for the Connect server (for example,
// http://api.acme.com or https://acme.com/grpc).
func NewLedgerServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) LedgerServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = append([]connect.ClientOption{connect.WithCodec(JSONCodec{})}, opts...)
	return &ledgerServiceClient{
		getState:        connect.NewClient[GetStateRequest, GetStateResponse](httpClient, baseURL+LedgerServiceGetStateProcedure, opts...),
		addParticipant:  connect.NewClient[AddParticipantRequest, AddParticipantResponse](httpClient, baseURL+LedgerServiceAddParticipantProcedure, opts...),
		addGroup:        connect.NewClient[AddGroupRequest, AddGroupResponse](httpClient, baseURL+LedgerServiceAddGroupProcedure, opts...),
		setCurrentGroup: connect.NewClient[SetCurrentGroupRequest, SetCurrentGroupResponse](httpClient, baseURL+LedgerServiceSetCurrentGroupProcedure, opts...),
		addExpense:      connect.NewClient[AddExpenseRequest, AddExpenseResponse](httpClient, baseURL+LedgerServiceAddExpenseProcedure, opts...),
		deleteExpense:   connect.NewClient[DeleteExpenseRequest, DeleteExpenseResponse](httpClient, baseURL+LedgerServiceDeleteExpenseProcedure, opts...),
		settleUp:        connect.NewClient[SettleUpRequest, SettleUpResponse](httpClient, baseURL+LedgerServiceSettleUpProcedure, opts...),
		getSummary:      connect.NewClient[GetSummaryRequest, GetSummaryResponse](httpClient, baseURL+LedgerServiceGetSummaryProcedure, opts...),
	}
}

// ledgerServiceClient implements LedgerServiceClient.
type ledgerServiceClient struct {
	getState        *connect.Client[GetStateRequest, GetStateResponse]
	addParticipant  *connect.Client[AddParticipantRequest, AddParticipantResponse]
	addGroup        *connect.Client[AddGroupRequest, AddGroupResponse]
	setCurrentGroup *connect.Client[SetCurrentGroupRequest, SetCurrentGroupResponse]
	addExpense      *connect.Client[AddExpenseRequest, AddExpenseResponse]
	deleteExpense   *connect.Client[DeleteExpenseRequest, DeleteExpenseResponse]
	settleUp        *connect.Client[SettleUpRequest, SettleUpResponse]
	getSummary      *connect.Client[GetSummaryRequest, GetSummaryResponse]
}

func (c *ledgerServiceClient) GetState(ctx context.Context, req *connect.Request[GetStateRequest]) (*connect.Response[GetStateResponse], error) {
	return c.getState.CallUnary(ctx, req)
}

func (c *ledgerServiceClient) AddParticipant(ctx context.Context, req *connect.Request[AddParticipantRequest]) (*connect.Response[AddParticipantResponse], error) {
	return c.addParticipant.CallUnary(ctx, req)
}

func (c *ledgerServiceClient) AddGroup(ctx context.Context, req *connect.Request[AddGroupRequest]) (*connect.Response[AddGroupResponse], error) {
	return c.addGroup.CallUnary(ctx, req)
}

func (c *ledgerServiceClient) SetCurrentGroup(ctx context.Context, req *connect.Request[SetCurrentGroupRequest]) (*connect.Response[SetCurrentGroupResponse], error) {
	return c.setCurrentGroup.CallUnary(ctx, req)
}

func (c *ledgerServiceClient) AddExpense(ctx context.Context, req *connect.Request[AddExpenseRequest]) (*connect.Response[AddExpenseResponse], error) {
	return c.addExpense.CallUnary(ctx, req)
}

func (c *ledgerServiceClient) DeleteExpense(ctx context.Context, req *connect.Request[DeleteExpenseRequest]) (*connect.Response[DeleteExpenseResponse], error) {
	return c.deleteExpense.CallUnary(ctx, req)
}

func (c *ledgerServiceClient) SettleUp(ctx context.Context, req *connect.Request[SettleUpRequest]) (*connect.Response[SettleUpResponse], error) {
	return c.settleUp.CallUnary(ctx, req)
}

func (c *ledgerServiceClient) GetSummary(ctx context.Context, req *connect.Request[GetSummaryRequest]) (*connect.Response[GetSummaryResponse], error) {
	return c.getSummary.CallUnary(ctx, req)
}

// LedgerServiceHandler is an implementation of the billease.v1.LedgerService service.
type LedgerServiceHandler interface {
	GetState(context.Context, *connect.Request[GetStateRequest]) (*connect.Response[GetStateResponse], error)
	AddParticipant(context.Context, *connect.Request[AddParticipantRequest]) (*connect.Response[AddParticipantResponse], error)
	AddGroup(context.Context, *connect.Request[AddGroupRequest]) (*connect.Response[AddGroupResponse], error)
	SetCurrentGroup(context.Context, *connect.Request[SetCurrentGroupRequest]) (*connect.Response[SetCurrentGroupResponse], error)
	AddExpense(context.Context, *connect.Request[AddExpenseRequest]) (*connect.Response[AddExpenseResponse], error)
	DeleteExpense(context.Context, *connect.Request[DeleteExpenseRequest]) (*connect.Response[DeleteExpenseResponse], error)
	SettleUp(context.Context, *connect.Request[SettleUpRequest]) (*connect.Response[SettleUpResponse], error)
	GetSummary(context.Context, *connect.Request[GetSummaryRequest]) (*connect.Response[GetSummaryResponse], error)
}

// NewLedgerServiceHandler builds an HTTP handler from the service implementation. It returns the
// path on which to mount the handler and the handler itself.
//
// By default, handlers support the Connect, gRPC, and gRPC-Web protocols with JSONCodec.
func NewLedgerServiceHandler(svc LedgerServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = append([]connect.HandlerOption{connect.WithCodec(JSONCodec{})}, opts...)
	getStateHandler := connect.NewUnaryHandler(LedgerServiceGetStateProcedure, svc.GetState, opts...)
	addParticipantHandler := connect.NewUnaryHandler(LedgerServiceAddParticipantProcedure, svc.AddParticipant, opts...)
	addGroupHandler := connect.NewUnaryHandler(LedgerServiceAddGroupProcedure, svc.AddGroup, opts...)
	setCurrentGroupHandler := connect.NewUnaryHandler(LedgerServiceSetCurrentGroupProcedure, svc.SetCurrentGroup, opts...)
	addExpenseHandler := connect.NewUnaryHandler(LedgerServiceAddExpenseProcedure, svc.AddExpense, opts...)
	deleteExpenseHandler := connect.NewUnaryHandler(LedgerServiceDeleteExpenseProcedure, svc.DeleteExpense, opts...)
	settleUpHandler := connect.NewUnaryHandler(LedgerServiceSettleUpProcedure, svc.SettleUp, opts...)
	getSummaryHandler := connect.NewUnaryHandler(LedgerServiceGetSummaryProcedure, svc.GetSummary, opts...)
	return "/billease.v1.LedgerService/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case LedgerServiceGetStateProcedure:
			getStateHandler.ServeHTTP(w, r)
		case LedgerServiceAddParticipantProcedure:
			addParticipantHandler.ServeHTTP(w, r)
		case LedgerServiceAddGroupProcedure:
			addGroupHandler.ServeHTTP(w, r)
		case LedgerServiceSetCurrentGroupProcedure:
			setCurrentGroupHandler.ServeHTTP(w, r)
		case LedgerServiceAddExpenseProcedure:
			addExpenseHandler.ServeHTTP(w, r)
		case LedgerServiceDeleteExpenseProcedure:
			deleteExpenseHandler.ServeHTTP(w, r)
		case LedgerServiceSettleUpProcedure:
			settleUpHandler.ServeHTTP(w, r)
		case LedgerServiceGetSummaryProcedure:
			getSummaryHandler.ServeHTTP(w, r)
		default:
			http.NotFound(w, r)
		}
	})
}

// UnimplementedLedgerServiceHandler returns CodeUnimplemented from all methods.
type UnimplementedLedgerServiceHandler struct{}

func (UnimplementedLedgerServiceHandler) GetState(context.Context, *connect.Request[GetStateRequest]) (*connect.Response[GetStateResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("billease.v1.LedgerService.GetState is not implemented"))
}

func (UnimplementedLedgerServiceHandler) AddParticipant(context.Context, *connect.Request[AddParticipantRequest]) (*connect.Response[AddParticipantResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("billease.v1.LedgerService.AddParticipant is not implemented"))
}

func (UnimplementedLedgerServiceHandler) AddGroup(context.Context, *connect.Request[AddGroupRequest]) (*connect.Response[AddGroupResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("billease.v1.LedgerService.AddGroup is not implemented"))
}

func (UnimplementedLedgerServiceHandler) SetCurrentGroup(context.Context, *connect.Request[SetCurrentGroupRequest]) (*connect.Response[SetCurrentGroupResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("billease.v1.LedgerService.SetCurrentGroup is not implemented"))
}

func (UnimplementedLedgerServiceHandler) AddExpense(context.Context, *connect.Request[AddExpenseRequest]) (*connect.Response[AddExpenseResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("billease.v1.LedgerService.AddExpense is not implemented"))
}

func (UnimplementedLedgerServiceHandler) DeleteExpense(context.Context, *connect.Request[DeleteExpenseRequest]) (*connect.Response[DeleteExpenseResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("billease.v1.LedgerService.DeleteExpense is not implemented"))
}

func (UnimplementedLedgerServiceHandler) SettleUp(context.Context, *connect.Request[SettleUpRequest]) (*connect.Response[SettleUpResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("billease.v1.LedgerService.SettleUp is not implemented"))
}

func (UnimplementedLedgerServiceHandler) GetSummary(context.Context, *connect.Request[GetSummaryRequest]) (*connect.Response[GetSummaryResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("billease.v1.LedgerService.GetSummary is not implemented"))
}
