package calculator

import (
	"math"
	"testing"

	"github.com/mmynk/billease/internal/models"
)

func TestSummarize(t *testing.T) {
	expenses := []models.Expense{
		{Amount: 30, Category: models.CategoryFood},
		{Amount: 120, Category: models.CategoryRent},
		{Amount: 50, Category: models.CategoryFood},
	}

	summary := Summarize(expenses)

	if summary.Count != 3 {
		t.Errorf("count = %d, want 3", summary.Count)
	}
	if math.Abs(summary.Total-200) > 0.01 {
		t.Errorf("total = %v, want 200", summary.Total)
	}
	if math.Abs(summary.Average-66.67) > 0.01 {
		t.Errorf("average = %v, want 66.67", summary.Average)
	}

	if len(summary.Categories) != 2 {
		t.Fatalf("expected 2 categories, got %d", len(summary.Categories))
	}
	rent, food := summary.Categories[0], summary.Categories[1]
	if rent.Category != models.CategoryRent || food.Category != models.CategoryFood {
		t.Errorf("categories not sorted by total: %+v", summary.Categories)
	}
	if food.Count != 2 || math.Abs(food.Total-80) > 0.01 {
		t.Errorf("food = %+v, want 2 expenses totalling 80", food)
	}
	if math.Abs(rent.Percentage-60) > 0.01 || math.Abs(food.Percentage-40) > 0.01 {
		t.Errorf("percentages = %v, %v, want 60, 40", rent.Percentage, food.Percentage)
	}
}

func TestSummarize_Empty(t *testing.T) {
	summary := Summarize(nil)
	if summary.Total != 0 || summary.Count != 0 || summary.Average != 0 {
		t.Errorf("unexpected summary: %+v", summary)
	}
	if len(summary.Categories) != 0 {
		t.Errorf("expected no categories, got %d", len(summary.Categories))
	}
}
