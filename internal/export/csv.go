// Package export renders a group's expenses as a downloadable CSV file.
package export

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mmynk/billease/internal/categories"
	"github.com/mmynk/billease/internal/models"
)

const dateLayout = "2006-01-02"

// ContentType is the media type of WriteCSV output.
const ContentType = "text/csv"

var header = []string{"Date", "Description", "Category", "Amount", "Paid By", "Split Type", "Notes"}

var whitespace = regexp.MustCompile(`\s+`)

// WriteCSV writes one row per expense, in the given order, after a header row.
// Every data cell is double-quoted. The payer is shown by name, or "Unknown" when
// the ID does not match any participant.
func WriteCSV(w io.Writer, expenses []models.Expense, participants []models.Participant) error {
	names := make(map[string]string, len(participants))
	for _, p := range participants {
		names[p.ID] = p.Name
	}

	bw := bufio.NewWriter(w)
	bw.WriteString(strings.Join(header, ","))

	for _, e := range expenses {
		payer, ok := names[e.PaidBy]
		if !ok {
			payer = "Unknown"
		}

		row := []string{
			e.Date.Format(dateLayout),
			e.Description,
			categories.Label(e.Category),
			FormatAmount(e.Amount),
			payer,
			string(e.SplitType),
			e.Notes,
		}
		for i, cell := range row {
			row[i] = quote(cell)
		}

		bw.WriteByte('\n')
		bw.WriteString(strings.Join(row, ","))
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to write csv: %w", err)
	}
	return nil
}

// FormatAmount renders a currency amount as $X.XX, rounding half away from zero.
func FormatAmount(amount float64) string {
	return "$" + decimal.NewFromFloat(amount).StringFixed(2)
}

// Filename returns "<group-name>-expenses-<yyyy-MM-dd>.csv" with runs of whitespace
// in the group name replaced by a dash.
func Filename(groupName string, now time.Time) string {
	return fmt.Sprintf("%s-expenses-%s.csv", whitespace.ReplaceAllString(groupName, "-"), now.Format(dateLayout))
}

func quote(cell string) string {
	return `"` + strings.ReplaceAll(cell, `"`, `""`) + `"`
}
