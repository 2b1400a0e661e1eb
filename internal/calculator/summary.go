package calculator

import (
	"sort"

	"github.com/mmynk/billease/internal/models"
)

// CategoryStat is the spending total for one category.
type CategoryStat struct {
	Category   models.Category `json:"category"`
	Total      float64         `json:"total"`
	Count      int             `json:"count"`
	Percentage float64         `json:"percentage"` // Share of the overall total, 0-100
}

// Summary aggregates spending over a set of expenses.
type Summary struct {
	Total      float64        `json:"total"`
	Count      int            `json:"count"`
	Average    float64        `json:"average"`
	Categories []CategoryStat `json:"categories"` // Sorted by total, largest first
}

// Summarize computes totals per category. Categories without expenses are omitted.
func Summarize(expenses []models.Expense) Summary {
	summary := Summary{Count: len(expenses)}

	byCategory := make(map[models.Category]*CategoryStat)
	var order []models.Category
	for _, e := range expenses {
		summary.Total += e.Amount
		stat, ok := byCategory[e.Category]
		if !ok {
			stat = &CategoryStat{Category: e.Category}
			byCategory[e.Category] = stat
			order = append(order, e.Category)
		}
		stat.Total += e.Amount
		stat.Count++
	}

	if summary.Count > 0 {
		summary.Average = summary.Total / float64(summary.Count)
	}

	denominator := summary.Total
	if denominator == 0 {
		denominator = 1
	}
	summary.Categories = make([]CategoryStat, 0, len(order))
	for _, c := range order {
		stat := byCategory[c]
		stat.Percentage = stat.Total / denominator * 100
		summary.Categories = append(summary.Categories, *stat)
	}
	sort.SliceStable(summary.Categories, func(i, j int) bool {
		return summary.Categories[i].Total > summary.Categories[j].Total
	})

	return summary
}
