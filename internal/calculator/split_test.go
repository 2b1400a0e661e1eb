package calculator

import (
	"errors"
	"math"
	"testing"

	"github.com/mmynk/billease/internal/models"
)

func ptr(v float64) *float64 { return &v }

func equalSplits(ids ...string) []models.Split {
	splits := make([]models.Split, len(ids))
	for i, id := range ids {
		splits[i] = models.Split{ParticipantID: id}
	}
	return splits
}

func TestValidateSplits(t *testing.T) {
	tests := []struct {
		name      string
		amount    float64
		splitType models.SplitType
		splits    []models.Split
		wantErr   error
	}{
		{
			name:      "equal split accepted",
			amount:    90,
			splitType: models.SplitEqual,
			splits:    equalSplits("alice", "bob", "charlie"),
		},
		{
			name:      "exact split summing to total accepted",
			amount:    100,
			splitType: models.SplitExact,
			splits: []models.Split{
				{ParticipantID: "alice", Amount: ptr(40)},
				{ParticipantID: "bob", Amount: ptr(35)},
				{ParticipantID: "charlie", Amount: ptr(25)},
			},
		},
		{
			name:      "exact split short by one rejected",
			amount:    100,
			splitType: models.SplitExact,
			splits: []models.Split{
				{ParticipantID: "alice", Amount: ptr(40)},
				{ParticipantID: "bob", Amount: ptr(35)},
				{ParticipantID: "charlie", Amount: ptr(24)},
			},
			wantErr: ErrSplitTotalMismatch,
		},
		{
			name:      "exact split within tolerance accepted",
			amount:    100,
			splitType: models.SplitExact,
			splits: []models.Split{
				{ParticipantID: "alice", Amount: ptr(33.33)},
				{ParticipantID: "bob", Amount: ptr(33.33)},
				{ParticipantID: "charlie", Amount: ptr(33.335)},
			},
		},
		{
			name:      "exact split missing amount rejected",
			amount:    10,
			splitType: models.SplitExact,
			splits: []models.Split{
				{ParticipantID: "alice", Amount: ptr(10)},
				{ParticipantID: "bob"},
			},
			wantErr: ErrMissingSplitAmount,
		},
		{
			name:      "exact split negative amount rejected",
			amount:    10,
			splitType: models.SplitExact,
			splits: []models.Split{
				{ParticipantID: "alice", Amount: ptr(15)},
				{ParticipantID: "bob", Amount: ptr(-5)},
			},
			wantErr: ErrNegativeSplit,
		},
		{
			name:      "percentage split summing to 100 accepted",
			amount:    100,
			splitType: models.SplitPercentage,
			splits: []models.Split{
				{ParticipantID: "alice", Percentage: ptr(50)},
				{ParticipantID: "bob", Percentage: ptr(30)},
				{ParticipantID: "charlie", Percentage: ptr(20)},
			},
		},
		{
			name:      "percentage split summing to 90 rejected",
			amount:    100,
			splitType: models.SplitPercentage,
			splits: []models.Split{
				{ParticipantID: "alice", Percentage: ptr(50)},
				{ParticipantID: "bob", Percentage: ptr(40)},
			},
			wantErr: ErrPercentageMismatch,
		},
		{
			name:      "percentage above 100 rejected",
			amount:    100,
			splitType: models.SplitPercentage,
			splits: []models.Split{
				{ParticipantID: "alice", Percentage: ptr(120)},
				{ParticipantID: "bob", Percentage: ptr(-20)},
			},
			wantErr: ErrPercentageOutOfRange,
		},
		{
			name:      "percentage missing rejected",
			amount:    100,
			splitType: models.SplitPercentage,
			splits:    equalSplits("alice"),
			wantErr:   ErrMissingPercentage,
		},
		{
			name:      "no splits rejected",
			amount:    100,
			splitType: models.SplitEqual,
			wantErr:   ErrNoSplits,
		},
		{
			name:      "zero amount rejected",
			amount:    0,
			splitType: models.SplitEqual,
			splits:    equalSplits("alice"),
			wantErr:   ErrNonPositiveAmount,
		},
		{
			name:      "duplicate participant rejected",
			amount:    20,
			splitType: models.SplitEqual,
			splits:    equalSplits("alice", "alice"),
			wantErr:   ErrDuplicateParticipant,
		},
		{
			name:      "unknown split type rejected",
			amount:    20,
			splitType: models.SplitType("shares"),
			splits:    equalSplits("alice"),
			wantErr:   ErrUnknownSplitType,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateSplits(tt.amount, tt.splitType, tt.splits)
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("ValidateSplits() error = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateSplits() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestResolveShares(t *testing.T) {
	tests := []struct {
		name    string
		expense models.Expense
		want    []float64
	}{
		{
			name: "equal split of 90 across three",
			expense: models.Expense{
				Amount:    90,
				SplitType: models.SplitEqual,
				Splits:    equalSplits("alice", "bob", "charlie"),
			},
			want: []float64{30, 30, 30},
		},
		{
			name: "exact split used verbatim",
			expense: models.Expense{
				Amount:    100,
				SplitType: models.SplitExact,
				Splits: []models.Split{
					{ParticipantID: "alice", Amount: ptr(40)},
					{ParticipantID: "bob", Amount: ptr(35)},
					{ParticipantID: "charlie", Amount: ptr(25)},
				},
			},
			want: []float64{40, 35, 25},
		},
		{
			name: "exact split not reconciling is still resolved",
			expense: models.Expense{
				Amount:    100,
				SplitType: models.SplitExact,
				Splits: []models.Split{
					{ParticipantID: "alice", Amount: ptr(40)},
					{ParticipantID: "bob", Amount: ptr(35)},
					{ParticipantID: "charlie", Amount: ptr(24)},
				},
			},
			want: []float64{40, 35, 24},
		},
		{
			name: "percentage split",
			expense: models.Expense{
				Amount:    100,
				SplitType: models.SplitPercentage,
				Splits: []models.Split{
					{ParticipantID: "alice", Percentage: ptr(50)},
					{ParticipantID: "bob", Percentage: ptr(30)},
					{ParticipantID: "charlie", Percentage: ptr(20)},
				},
			},
			want: []float64{50, 30, 20},
		},
		{
			name: "equal split leaves residual cents",
			expense: models.Expense{
				Amount:    100,
				SplitType: models.SplitEqual,
				Splits:    equalSplits("alice", "bob", "charlie"),
			},
			want: []float64{33.33, 33.33, 33.33},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			shares := ResolveShares(tt.expense)
			if len(shares) != len(tt.want) {
				t.Fatalf("got %d shares, want %d", len(shares), len(tt.want))
			}
			for i, share := range shares {
				if share.ParticipantID != tt.expense.Splits[i].ParticipantID {
					t.Errorf("share %d participant = %s, want %s", i, share.ParticipantID, tt.expense.Splits[i].ParticipantID)
				}
				if math.Abs(share.Amount-tt.want[i]) > 0.01 {
					t.Errorf("share %d amount = %v, want %v", i, share.Amount, tt.want[i])
				}
			}
		})
	}
}

func TestResolveShares_NoSplits(t *testing.T) {
	shares := ResolveShares(models.Expense{Amount: 10, SplitType: models.SplitEqual})
	if len(shares) != 0 {
		t.Errorf("expected no shares, got %d", len(shares))
	}
}
