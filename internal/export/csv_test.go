package export

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/billease/internal/models"
)

func TestWriteCSV(t *testing.T) {
	participants := []models.Participant{
		{ID: "p1", Name: "Alice"},
		{ID: "p2", Name: "Bob"},
	}
	expenses := []models.Expense{
		{
			Description: `Dinner at "Luigi's"`,
			Amount:      90,
			PaidBy:      "p1",
			Date:        time.Date(2025, 3, 14, 19, 30, 0, 0, time.UTC),
			Category:    models.CategoryFood,
			SplitType:   models.SplitEqual,
			Notes:       "birthday, dessert included",
		},
		{
			Description: "Taxi",
			Amount:      12.345,
			PaidBy:      "gone",
			Date:        time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC),
			Category:    models.CategoryTransport,
			SplitType:   models.SplitExact,
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, expenses, participants))

	lines := strings.Split(buf.String(), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "Date,Description,Category,Amount,Paid By,Split Type,Notes", lines[0])
	assert.Equal(t, `"2025-03-14","Dinner at ""Luigi's""","Food & Dining","$90.00","Alice","equal","birthday, dessert included"`, lines[1])
	assert.Equal(t, `"2025-03-15","Taxi","Transport","$12.35","Unknown","exact",""`, lines[2])

	// Output is valid CSV
	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	assert.Equal(t, `Dinner at "Luigi's"`, records[1][1])
}

func TestWriteCSV_NoExpenses(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, nil, nil))
	assert.Equal(t, "Date,Description,Category,Amount,Paid By,Split Type,Notes", buf.String())
}

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		amount float64
		want   string
	}{
		{0, "$0.00"},
		{5, "$5.00"},
		{33.333333, "$33.33"},
		{0.125, "$0.13"},
		{1234.5, "$1234.50"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatAmount(tt.amount))
		})
	}
}

func TestFilename(t *testing.T) {
	now := time.Date(2025, 1, 2, 23, 0, 0, 0, time.UTC)

	assert.Equal(t, "My-Expenses-expenses-2025-01-02.csv", Filename("My Expenses", now))
	assert.Equal(t, "Trip-to-Rome-expenses-2025-01-02.csv", Filename("Trip  to\tRome", now))
}
