package service

import (
	"advisoryboard/internal/model"
	"math"
	"strconv"
	"strings"
)

const (
	MinScore = 1
	MaxScore = 10
)

// ParseLeadingScore returns the integer formed by the digits at the very
// start of the trimmed text. Text that does not start with a digit, or
// whose leading number falls outside [MinScore, MaxScore], has no score.
func ParseLeadingScore(text string) (int, bool) {
	text = strings.TrimSpace(text)

	end := 0
	for end < len(text) && text[end] >= '0' && text[end] <= '9' {
		end++
	}
	if end == 0 {
		return 0, false
	}

	n, err := strconv.Atoi(text[:end])
	if err != nil || n < MinScore || n > MaxScore {
		return 0, false
	}
	return n, true
}

// aggregate returns the mean of present scores rounded to one decimal
func aggregate(results []model.PersonaResult) (*float64, model.AggregateStatus) {
	sum, count := 0, 0
	for _, r := range results {
		if r.HasScore() {
			sum += *r.Score
			count++
		}
	}
	if count == 0 {
		return nil, model.AggregateUnavailable
	}

	mean := math.Round(float64(sum)/float64(count)*10) / 10
	return &mean, model.AggregateAvailable
}
