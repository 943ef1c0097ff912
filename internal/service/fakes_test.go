package service

import (
	"advisoryboard/internal/model"
	"advisoryboard/internal/repository"
	"context"
	"errors"
	"sort"
	"sync"
	"time"
)

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[string]*model.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*model.User{}}
}

func (r *fakeUserRepo) Create(ctx context.Context, user *model.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[user.Username]; ok {
		return repository.ErrDuplicateUser
	}
	u := *user
	r.users[user.Username] = &u
	return nil
}

func (r *fakeUserRepo) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if u, ok := r.users[username]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, nil
}

func (r *fakeUserRepo) GetByID(ctx context.Context, id string) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.ID == id {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

type fakeTokenCache struct {
	mu      sync.Mutex
	revoked map[string]time.Time
}

func newFakeTokenCache() *fakeTokenCache {
	return &fakeTokenCache{revoked: map[string]time.Time{}}
}

func (c *fakeTokenCache) Revoke(ctx context.Context, tokenID string, expiresAt time.Time) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.revoked[tokenID] = expiresAt
	return nil
}

func (c *fakeTokenCache) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.revoked[tokenID]
	return ok, nil
}

type fakeEvaluationRepo struct {
	mu      sync.Mutex
	records map[string]model.EvaluationRecord
	saveErr error
}

func newFakeEvaluationRepo() *fakeEvaluationRepo {
	return &fakeEvaluationRepo{records: map[string]model.EvaluationRecord{}}
}

func (r *fakeEvaluationRepo) Save(ctx context.Context, record *model.EvaluationRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.saveErr != nil {
		return r.saveErr
	}
	r.records[record.ID] = *record
	return nil
}

func (r *fakeEvaluationRepo) GetByID(ctx context.Context, id string) (*model.EvaluationRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if rec, ok := r.records[id]; ok {
		return &rec, nil
	}
	return nil, nil
}

func (r *fakeEvaluationRepo) ListByUser(ctx context.Context, userID string, limit int) ([]model.EvaluationRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []model.EvaluationRecord{}
	for _, rec := range r.records {
		if rec.UserID == userID {
			out = append(out, rec)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

type broadcast struct {
	userID  string
	msgType string
	payload interface{}
}

type fakeBroadcaster struct {
	mu   sync.Mutex
	sent []broadcast
}

func (b *fakeBroadcaster) BroadcastToUser(userID string, msgType string, payload interface{}) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.sent = append(b.sent, broadcast{userID: userID, msgType: msgType, payload: payload})
}

var errStorage = errors.New("storage offline")
