package service

//go:generate go tool mockgen -destination=mocks/provider_mock.go -package=mocks advisoryboard/internal/service Provider

import (
	"advisoryboard/internal/model"
	"context"
	"errors"
)

var ErrEmptyGeneration = errors.New("provider returned an empty response")

// Provider generates one text reply for one persona request
type Provider interface {
	Generate(ctx context.Context, req model.GenerationRequest) (string, error)
	Name() string
}
