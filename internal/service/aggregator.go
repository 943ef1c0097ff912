package service

import (
	"advisoryboard/internal/model"
	"advisoryboard/internal/persona"
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

var ErrInvalidInput = errors.New("no business idea provided")

// ScoreInstruction is appended to every persona prompt so the reply can be scored
const ScoreInstruction = "Begin your reply with a single integer score from 1 to 10 on its own line, " +
	"with no other characters on that line, followed by a line break and then your expert opinion, " +
	"including key risks and opportunities."

const (
	ideaPreamble = "A startup founder submits this business idea:\n\n"
	ideaClosing  = "\n\nProvide your expert opinion."
)

const logExcerptLen = 100

// Aggregator asks every persona about one idea concurrently and combines
// the answers into a single ordered report. A failing persona degrades
// only its own entry.
type Aggregator struct {
	provider    Provider
	personas    *persona.Set
	callTimeout time.Duration
	logger      *zap.Logger
}

// NewAggregator creates an aggregator. callTimeout bounds each persona
// call separately; zero means only the caller's context applies.
func NewAggregator(provider Provider, personas *persona.Set, callTimeout time.Duration, logger *zap.Logger) (*Aggregator, error) {
	if provider == nil {
		return nil, errors.New("aggregator: provider is required")
	}
	if personas == nil || personas.Len() == 0 {
		return nil, persona.ErrEmptySet
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Aggregator{
		provider:    provider,
		personas:    personas,
		callTimeout: callTimeout,
		logger:      logger,
	}, nil
}

// Personas returns the configured persona set
func (a *Aggregator) Personas() *persona.Set {
	return a.personas
}

// Evaluate runs one generation per persona and waits for all of them.
// The only error it returns is ErrInvalidInput, before any provider call.
func (a *Aggregator) Evaluate(ctx context.Context, idea string) (*model.EvaluationReport, error) {
	idea = strings.TrimSpace(idea)
	if idea == "" {
		return nil, ErrInvalidInput
	}

	personas := a.personas.All()
	results := make([]model.PersonaResult, len(personas))

	var eg errgroup.Group
	for i, p := range personas {
		eg.Go(func() error {
			results[i] = a.ask(ctx, p, idea)
			return nil
		})
	}
	_ = eg.Wait()

	score, status := aggregate(results)
	return &model.EvaluationReport{
		Results:         results,
		AggregateScore:  score,
		AggregateStatus: status,
	}, nil
}

// BuildRequest assembles the provider request for one persona
func BuildRequest(p persona.Persona, idea string) model.GenerationRequest {
	return model.GenerationRequest{
		Persona:           p.Name,
		SystemInstruction: p.Prompt + "\n\n" + ScoreInstruction,
		UserMessage:       ideaPreamble + idea + ideaClosing,
	}
}

func (a *Aggregator) ask(ctx context.Context, p persona.Persona, idea string) model.PersonaResult {
	callCtx := ctx
	if a.callTimeout > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(ctx, a.callTimeout)
		defer cancel()
	}

	start := time.Now()
	text, err := a.generate(callCtx, BuildRequest(p, idea))
	if err != nil {
		a.logger.Warn("Error generating response",
			zap.String("persona", p.Name),
			zap.String("provider", a.provider.Name()),
			zap.Duration("duration", time.Since(start)),
			zap.Error(err))
		return model.PersonaResult{Persona: p.Name, Response: model.ErrorResponseText}
	}

	result := model.PersonaResult{Persona: p.Name, Response: text}
	if score, ok := ParseLeadingScore(text); ok {
		result.Score = &score
	}

	excerpt := truncateRunes(text, logExcerptLen)
	a.logger.Debug("Persona responded",
		zap.String("persona", p.Name),
		zap.Intp("score", result.Score),
		zap.Duration("duration", time.Since(start)),
		zap.String("excerpt", excerpt))

	return result
}

// generate returns when the provider answers or the call context ends,
// whichever comes first, so a provider that ignores cancellation cannot
// hold the batch past its deadline.
func (a *Aggregator) generate(ctx context.Context, req model.GenerationRequest) (string, error) {
	type reply struct {
		text string
		err  error
	}
	done := make(chan reply, 1)

	go func() {
		defer func() {
			if r := recover(); r != nil {
				done <- reply{err: fmt.Errorf("provider panic: %v", r)}
			}
		}()
		text, err := a.provider.Generate(ctx, req)
		done <- reply{text: text, err: err}
	}()

	select {
	case r := <-done:
		if r.err != nil {
			return "", r.err
		}
		if strings.TrimSpace(r.text) == "" {
			return "", ErrEmptyGeneration
		}
		return r.text, nil
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

// truncateRunes cuts s to at most n runes, marking the cut with "...".
func truncateRunes(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n]) + "..."
}
