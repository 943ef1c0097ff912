package service

import (
	"advisoryboard/internal/model"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestEvaluationService(t *testing.T) (*EvaluationService, *fakeEvaluationRepo, *fakeBroadcaster) {
	t.Helper()
	repo := newFakeEvaluationRepo()
	b := &fakeBroadcaster{}
	p := &scriptedProvider{replies: houseplantReplies()}
	svc := NewEvaluationService(newTestAggregator(t, p, time.Second), repo, zap.NewNop())
	svc.SetBroadcaster(b)
	return svc, repo, b
}

func TestSubmitStoresAndBroadcasts(t *testing.T) {
	svc, repo, b := newTestEvaluationService(t)

	record, err := svc.Submit(context.Background(), "user-1", "  A subscription box for rare houseplants ")
	require.NoError(t, err)
	assert.NotEmpty(t, record.ID)
	assert.Equal(t, "A subscription box for rare houseplants", record.Idea)
	require.NotNil(t, record.Report.AggregateScore)
	assert.Equal(t, 7.5, *record.Report.AggregateScore)

	stored, err := repo.GetByID(context.Background(), record.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, "user-1", stored.UserID)

	require.Len(t, b.sent, 1)
	assert.Equal(t, "user-1", b.sent[0].userID)
	assert.Equal(t, MsgEvaluationCompleted, b.sent[0].msgType)
}

func TestSubmitInvalidInput(t *testing.T) {
	svc, repo, b := newTestEvaluationService(t)

	_, err := svc.Submit(context.Background(), "user-1", " ")
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Empty(t, repo.records)
	assert.Empty(t, b.sent)
}

func TestSubmitSurvivesStorageFailure(t *testing.T) {
	svc, repo, _ := newTestEvaluationService(t)
	repo.saveErr = errStorage

	record, err := svc.Submit(context.Background(), "user-1", "Rare houseplants")
	require.NoError(t, err)
	assert.Len(t, record.Report.Results, 5)
}

func TestHistoryIsScopedPerUser(t *testing.T) {
	svc, repo, _ := newTestEvaluationService(t)
	ctx := context.Background()
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	for i, owner := range []string{"alice", "alice", "bob"} {
		require.NoError(t, repo.Save(ctx, &model.EvaluationRecord{
			ID:        owner + string(rune('a'+i)),
			UserID:    owner,
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}))
	}

	list, err := svc.List(ctx, "alice", 0)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "aliceb", list[0].ID)

	list, err = svc.List(ctx, "alice", 1)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	_, err = svc.Get(ctx, "alice", "bobc")
	assert.ErrorIs(t, err, ErrEvaluationNotFound)

	_, err = svc.Get(ctx, "alice", "missing")
	assert.ErrorIs(t, err, ErrEvaluationNotFound)

	rec, err := svc.Get(ctx, "bob", "bobc")
	require.NoError(t, err)
	assert.Equal(t, "bob", rec.UserID)
}

func TestEvaluateDoesNotPersist(t *testing.T) {
	svc, repo, b := newTestEvaluationService(t)

	report, err := svc.Evaluate(context.Background(), "Rare houseplants")
	require.NoError(t, err)
	assert.Len(t, report.Results, 5)
	assert.Empty(t, repo.records)
	assert.Empty(t, b.sent)
	assert.Equal(t, 5, svc.Personas().Len())
}
