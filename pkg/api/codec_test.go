package api

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONCodec(t *testing.T) {
	codec := JSONCodec{}
	assert.Equal(t, "json", codec.Name())

	date := time.Date(2025, 4, 1, 10, 0, 0, 0, time.UTC)
	pct := 50.0
	in := &AddExpenseRequest{
		Description: "Dinner",
		Amount:      80,
		PaidBy:      "a",
		Date:        &date,
		SplitType:   "percentage",
		Splits:      []Split{{ParticipantID: "a", Percentage: &pct}, {ParticipantID: "b", Percentage: &pct}},
	}

	data, err := codec.Marshal(in)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"paidBy":"a"`)
	assert.NotContains(t, string(data), `"notes"`)

	var out AddExpenseRequest
	require.NoError(t, codec.Unmarshal(data, &out))
	assert.Equal(t, *in, out)
}

func TestJSONCodec_EmptyBody(t *testing.T) {
	var req GetStateRequest
	assert.NoError(t, JSONCodec{}.Unmarshal(nil, &req))
}

func TestJSONCodec_Malformed(t *testing.T) {
	var req AddParticipantRequest
	assert.Error(t, JSONCodec{}.Unmarshal([]byte(`{"name":`), &req))
}
