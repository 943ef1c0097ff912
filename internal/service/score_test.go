package service

import (
	"advisoryboard/internal/model"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLeadingScore(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		want  int
		found bool
	}{
		{"digit then newline", "7\nGreat idea because...", 7, true},
		{"ten", "10\nStrong tech fit", 10, true},
		{"no leading digit", "Great idea, I'd say 7/10", 0, false},
		{"leading whitespace trimmed", "  \n 4\nRisky.", 4, true},
		{"digit run followed by text", "8/10 overall", 8, true},
		{"zero is out of range", "0\nNo.", 0, false},
		{"above range", "15\nAmazing", 0, false},
		{"leading zeros", "07\nOk", 7, true},
		{"overflowing digit run", "99999999999999999999999\nx", 0, false},
		{"empty", "", 0, false},
		{"markdown before score", "**7**\nBold", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseLeadingScore(tt.text)
			assert.Equal(t, tt.found, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAggregate(t *testing.T) {
	score, status := aggregate([]model.PersonaResult{{Persona: "A"}, {Persona: "B"}})
	assert.Nil(t, score)
	assert.Equal(t, model.AggregateUnavailable, status)

	score, status = aggregate([]model.PersonaResult{
		{Score: intPtr(7)},
		{Score: intPtr(8)},
		{Score: intPtr(8)},
		{},
	})
	// 23 / 3 = 7.666...
	assert.Equal(t, model.AggregateAvailable, status)
	assert.Equal(t, 7.7, *score)
}
