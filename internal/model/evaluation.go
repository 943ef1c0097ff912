package model

import "time"

// ErrorResponseText replaces the response of a persona whose call failed
const ErrorResponseText = "Error generating response."

// AggregateStatus tells whether an aggregate score could be computed
type AggregateStatus string

const (
	AggregateAvailable   AggregateStatus = "available"
	AggregateUnavailable AggregateStatus = "unavailable"
)

// EvaluationRequest is the request body for submitting an idea
type EvaluationRequest struct {
	Idea string `json:"idea"`
}

// GenerationRequest is one persona's call to the generation provider
type GenerationRequest struct {
	Persona           string
	SystemInstruction string
	UserMessage       string
}

// PersonaResult is one persona's answer. Score is nil when absent.
type PersonaResult struct {
	Persona  string `json:"persona" bson:"persona"`
	Response string `json:"response" bson:"response"`
	Score    *int   `json:"score" bson:"score"`
}

// HasScore reports whether a score was parsed
func (r PersonaResult) HasScore() bool {
	return r.Score != nil
}

// EvaluationReport is the ordered result of one fan-out
type EvaluationReport struct {
	Results         []PersonaResult `json:"responses" bson:"responses"`
	AggregateScore  *float64        `json:"aggregateScore" bson:"aggregateScore"`
	AggregateStatus AggregateStatus `json:"aggregateStatus" bson:"aggregateStatus"`
}

// EvaluationRecord is a stored report owned by a user
type EvaluationRecord struct {
	ID         string           `json:"id" bson:"_id"`
	UserID     string           `json:"userId" bson:"userId"`
	Idea       string           `json:"idea" bson:"idea"`
	Report     EvaluationReport `json:"report" bson:"report"`
	DurationMS int64            `json:"durationMs" bson:"durationMs"`
	CreatedAt  time.Time        `json:"createdAt" bson:"createdAt"`
}

// EvaluationResponse is returned by POST /v1/evaluations
type EvaluationResponse struct {
	ID string `json:"id"`
	EvaluationReport
	DurationMS int64 `json:"durationMs"`
}
