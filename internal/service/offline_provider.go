package service

import (
	"advisoryboard/internal/model"
	"context"
	"fmt"
	"hash/fnv"
	"strings"
)

const offlineExcerptLen = 60

// OfflineProvider answers without calling any API. Replies are
// deterministic for a given persona and idea so runs are reproducible.
type OfflineProvider struct{}

func NewOfflineProvider() *OfflineProvider {
	return &OfflineProvider{}
}

func (p *OfflineProvider) Generate(ctx context.Context, req model.GenerationRequest) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	idea := extractIdea(req.UserMessage)
	h := fnv.New32a()
	h.Write([]byte(req.Persona))
	h.Write([]byte{0})
	h.Write([]byte(idea))
	score := int(h.Sum32()%MaxScore) + MinScore

	return fmt.Sprintf("%d\n%s offline review of: %s", score, req.Persona, truncateRunes(idea, offlineExcerptLen)), nil
}

func (p *OfflineProvider) Name() string {
	return "offline"
}

func extractIdea(userMessage string) string {
	idea := strings.TrimPrefix(userMessage, ideaPreamble)
	idea = strings.TrimSuffix(idea, ideaClosing)
	return strings.TrimSpace(idea)
}
