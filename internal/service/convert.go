package service

import (
	"github.com/mmynk/billease/internal/calculator"
	"github.com/mmynk/billease/internal/categories"
	"github.com/mmynk/billease/internal/ledger"
	"github.com/mmynk/billease/internal/models"
	"github.com/mmynk/billease/pkg/api"
)

func toAPIState(s ledger.Snapshot) *api.State {
	state := &api.State{
		CurrentGroup: toAPIGroup(s.CurrentGroup),
		Groups:       make([]api.Group, len(s.Groups)),
		Participants: toAPIParticipants(s.Participants),
		Members:      toAPIParticipants(s.Members),
		Expenses:     make([]api.Expense, len(s.Expenses)),
		NetBalances:  make([]api.MemberBalance, len(s.NetBalances)),
		Balances:     make([]api.Balance, len(s.Balances)),
	}
	for i, g := range s.Groups {
		state.Groups[i] = toAPIGroup(g)
	}
	for i, e := range s.Expenses {
		state.Expenses[i] = toAPIExpense(e)
	}
	for i, b := range s.NetBalances {
		state.NetBalances[i] = api.MemberBalance{
			ParticipantID: b.ParticipantID,
			NetBalance:    b.NetBalance,
			TotalPaid:     b.TotalPaid,
			TotalShare:    b.TotalShare,
		}
	}
	for i, b := range s.Balances {
		state.Balances[i] = api.Balance{From: b.From, To: b.To, Amount: b.Amount}
	}
	return state
}

func toAPIParticipant(p models.Participant) api.Participant {
	return api.Participant{ID: p.ID, Name: p.Name, Color: p.Color}
}

func toAPIParticipants(ps []models.Participant) []api.Participant {
	out := make([]api.Participant, len(ps))
	for i, p := range ps {
		out[i] = toAPIParticipant(p)
	}
	return out
}

func toAPIGroup(g models.Group) api.Group {
	members := g.Members
	if members == nil {
		members = []string{}
	}
	return api.Group{
		ID:          g.ID,
		Name:        g.Name,
		Description: g.Description,
		Members:     members,
		CreatedAt:   g.CreatedAt,
	}
}

func toAPIExpense(e models.Expense) api.Expense {
	splits := make([]api.Split, len(e.Splits))
	for i, s := range e.Splits {
		splits[i] = api.Split{ParticipantID: s.ParticipantID, Amount: s.Amount, Percentage: s.Percentage}
	}
	return api.Expense{
		ID:            e.ID,
		Description:   e.Description,
		Amount:        e.Amount,
		PaidBy:        e.PaidBy,
		Date:          e.Date,
		Category:      string(e.Category),
		CategoryLabel: categories.Label(e.Category),
		SplitType:     string(e.SplitType),
		Splits:        splits,
		GroupID:       e.GroupID,
		Notes:         e.Notes,
	}
}

func fromAPIExpense(req *api.AddExpenseRequest) ledger.ExpenseInput {
	in := ledger.ExpenseInput{
		Description: req.Description,
		Amount:      req.Amount,
		PaidBy:      req.PaidBy,
		Category:    models.Category(req.Category),
		SplitType:   models.SplitType(req.SplitType),
		Splits:      make([]models.Split, len(req.Splits)),
		Notes:       req.Notes,
	}
	if req.Date != nil {
		in.Date = *req.Date
	}
	for i, s := range req.Splits {
		in.Splits[i] = models.Split{ParticipantID: s.ParticipantID, Amount: s.Amount, Percentage: s.Percentage}
	}
	return in
}

func toAPISummary(s calculator.Summary) *api.GetSummaryResponse {
	resp := &api.GetSummaryResponse{
		Total:      s.Total,
		Count:      s.Count,
		Average:    s.Average,
		Categories: make([]api.CategoryStat, len(s.Categories)),
	}
	for i, c := range s.Categories {
		info := categories.Lookup(c.Category)
		resp.Categories[i] = api.CategoryStat{
			Category:   string(c.Category),
			Label:      info.Label,
			Color:      info.Color,
			Icon:       info.Icon,
			Total:      c.Total,
			Count:      c.Count,
			Percentage: c.Percentage,
		}
	}
	return resp
}
