package calculator

import (
	"math"
	"sort"

	"github.com/mmynk/billease/internal/models"
)

// MemberBalance represents the balance information for one group member.
type MemberBalance struct {
	ParticipantID string  `json:"participantId"`
	NetBalance    float64 `json:"netBalance"` // Positive = owed money, Negative = owes money
	TotalPaid     float64 `json:"totalPaid"`  // Sum of expense amounts this member paid
	TotalShare    float64 `json:"totalShare"` // Sum of this member's own resolved shares
}

// NetBalances folds a group's expenses into one balance per member, in member order.
//
// Algorithm:
//   - Every member starts at zero
//   - For each split whose participant is not the payer, the share moves from the
//     participant (negative) to the payer (positive)
//   - A transfer is applied only when both sides are members, so shares owed by or
//     to someone outside the member list are dropped and the sum stays zero
//
// Expense order does not matter.
func NetBalances(members []string, expenses []models.Expense) []MemberBalance {
	balances := make([]MemberBalance, len(members))
	index := make(map[string]int, len(members))
	for i, id := range members {
		balances[i] = MemberBalance{ParticipantID: id}
		index[id] = i
	}

	for _, expense := range expenses {
		payer, payerIsMember := index[expense.PaidBy]
		if payerIsMember {
			balances[payer].TotalPaid += expense.Amount
		}

		for _, share := range ResolveShares(expense) {
			debtor, ok := index[share.ParticipantID]
			if !ok {
				continue
			}
			balances[debtor].TotalShare += share.Amount

			// Self-payment nets to zero
			if share.ParticipantID == expense.PaidBy || !payerIsMember {
				continue
			}
			balances[debtor].NetBalance -= share.Amount
			balances[payer].NetBalance += share.Amount
		}
	}

	return balances
}

// BalanceMap indexes member balances by participant ID.
func BalanceMap(balances []MemberBalance) map[string]float64 {
	m := make(map[string]float64, len(balances))
	for _, b := range balances {
		m[b.ParticipantID] = b.NetBalance
	}
	return m
}

type position struct {
	id        string
	remaining float64
}

// Settle reduces net balances to a list of transfers that zeroes every balance.
//
// Greedy algorithm: match the largest creditor with the largest debtor, transfer
// the smaller of the two outstanding amounts, and advance whichever side is
// exhausted. Balances within Tolerance of zero are treated as settled. Ties keep
// the input order, so the output is deterministic for a given member order.
//
// The result is not guaranteed to have the fewest possible transfers, but it never
// has more than (non-zero balances - 1).
func Settle(balances []MemberBalance) []models.Balance {
	var creditors, debtors []position
	for _, b := range balances {
		if b.NetBalance > Tolerance {
			creditors = append(creditors, position{id: b.ParticipantID, remaining: b.NetBalance})
		} else if b.NetBalance < -Tolerance {
			debtors = append(debtors, position{id: b.ParticipantID, remaining: b.NetBalance})
		}
	}

	sort.SliceStable(creditors, func(a, b int) bool { return creditors[a].remaining > creditors[b].remaining })
	sort.SliceStable(debtors, func(a, b int) bool { return debtors[a].remaining < debtors[b].remaining })

	transfers := make([]models.Balance, 0, len(creditors)+len(debtors))
	i, j := 0, 0
	for i < len(creditors) && j < len(debtors) {
		amount := math.Min(creditors[i].remaining, math.Abs(debtors[j].remaining))

		if amount > Tolerance { // Avoid floating point noise
			transfers = append(transfers, models.Balance{
				From:   debtors[j].id,
				To:     creditors[i].id,
				Amount: amount,
			})
		}

		creditors[i].remaining -= amount
		debtors[j].remaining += amount

		if math.Abs(creditors[i].remaining) < Tolerance {
			i++
		}
		if math.Abs(debtors[j].remaining) < Tolerance {
			j++
		}
	}

	return transfers
}

// CalculateGroupBalances computes member balances and the settlement transfers for
// a group in one pass.
func CalculateGroupBalances(members []string, expenses []models.Expense) ([]MemberBalance, []models.Balance) {
	net := NetBalances(members, expenses)
	return net, Settle(net)
}
