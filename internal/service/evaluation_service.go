package service

import (
	"advisoryboard/internal/model"
	"advisoryboard/internal/persona"
	"advisoryboard/internal/repository"
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	DefaultHistoryLimit = 20
	MaxHistoryLimit     = 100
)

var ErrEvaluationNotFound = errors.New("evaluation not found")

// EvaluationService runs evaluations for users and keeps their history
type EvaluationService struct {
	aggregator  *Aggregator
	repo        repository.EvaluationRepo
	broadcaster Broadcaster
	logger      *zap.Logger
	now         func() time.Time
}

// NewEvaluationService creates a new evaluation service
func NewEvaluationService(aggregator *Aggregator, repo repository.EvaluationRepo, logger *zap.Logger) *EvaluationService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &EvaluationService{
		aggregator: aggregator,
		repo:       repo,
		logger:     logger,
		now:        time.Now,
	}
}

// SetBroadcaster sets the WebSocket broadcaster
func (s *EvaluationService) SetBroadcaster(b Broadcaster) {
	s.broadcaster = b
}

// Personas returns the persona set evaluations run against
func (s *EvaluationService) Personas() *persona.Set {
	return s.aggregator.Personas()
}

// Evaluate runs the aggregator without storing anything
func (s *EvaluationService) Evaluate(ctx context.Context, idea string) (*model.EvaluationReport, error) {
	return s.aggregator.Evaluate(ctx, idea)
}

// Submit evaluates an idea for a user, stores the record and notifies the
// user's open sockets. A storage failure is logged; the report is still returned.
func (s *EvaluationService) Submit(ctx context.Context, userID, idea string) (*model.EvaluationRecord, error) {
	start := s.now()
	report, err := s.aggregator.Evaluate(ctx, idea)
	if err != nil {
		return nil, err
	}

	record := &model.EvaluationRecord{
		ID:         uuid.New().String(),
		UserID:     userID,
		Idea:       strings.TrimSpace(idea),
		Report:     *report,
		DurationMS: s.now().Sub(start).Milliseconds(),
		CreatedAt:  start.UTC(),
	}

	if err := s.repo.Save(ctx, record); err != nil {
		s.logger.Error("Failed to store evaluation",
			zap.String("user_id", userID),
			zap.String("evaluation_id", record.ID),
			zap.Error(err))
	}

	if s.broadcaster != nil {
		s.broadcaster.BroadcastToUser(userID, MsgEvaluationCompleted, record)
	}

	s.logger.Info("Evaluation completed",
		zap.String("user_id", userID),
		zap.String("evaluation_id", record.ID),
		zap.String("aggregate_status", string(report.AggregateStatus)),
		zap.Int64("duration_ms", record.DurationMS))

	return record, nil
}

// List returns the user's most recent evaluations, newest first
func (s *EvaluationService) List(ctx context.Context, userID string, limit int) ([]model.EvaluationRecord, error) {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	if limit > MaxHistoryLimit {
		limit = MaxHistoryLimit
	}
	return s.repo.ListByUser(ctx, userID, limit)
}

// Get returns one of the user's evaluations
func (s *EvaluationService) Get(ctx context.Context, userID, id string) (*model.EvaluationRecord, error) {
	record, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if record == nil || record.UserID != userID {
		return nil, ErrEvaluationNotFound
	}
	return record, nil
}
