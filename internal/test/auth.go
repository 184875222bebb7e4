package test

import (
	"time"

	"github.com/polkiloo/printshop/internal/domain/model"
	pkgAuth "github.com/polkiloo/printshop/internal/pkg/auth"
)

// StrategyStub issues and parses tokens via function overrides.
type StrategyStub struct {
	IssueFn func(model.Caller, time.Duration) (string, error)
	ParseFn func(string) (model.Caller, error)
}

// IssueToken returns deterministic tokens for tests.
func (s StrategyStub) IssueToken(caller model.Caller, ttl time.Duration) (string, error) {
	if s.IssueFn != nil {
		return s.IssueFn(caller, ttl)
	}
	return "token", nil
}

// ParseToken parses previously issued token strings.
func (s StrategyStub) ParseToken(token string) (model.Caller, error) {
	if s.ParseFn != nil {
		return s.ParseFn(token)
	}
	return model.Caller{ID: 1, Role: model.RoleAdmin}, nil
}

// CallerResolverStub implements middleware caller resolution contract.
type CallerResolverStub struct {
	Caller model.Caller
	Err    error
	Tokens []string
}

// ResolveCaller returns the configured caller, recording the token it was given.
func (s *CallerResolverStub) ResolveCaller(token string) (model.Caller, error) {
	s.Tokens = append(s.Tokens, token)
	if s.Err != nil {
		return model.Caller{}, s.Err
	}
	if token == "" {
		return model.Caller{}, nil
	}
	return s.Caller, nil
}

var _ pkgAuth.Strategy = StrategyStub{}
