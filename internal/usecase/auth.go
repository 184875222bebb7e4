package usecase

import (
	"strings"
	"time"

	"github.com/polkiloo/printshop/internal/domain/model"
	pkgAuth "github.com/polkiloo/printshop/internal/pkg/auth"
)

// AuthUseCase turns bearer tokens into caller assertions and back.
type AuthUseCase struct {
	tokens pkgAuth.Strategy
}

// NewAuthUseCase constructs AuthUseCase.
func NewAuthUseCase(strategy pkgAuth.Strategy) *AuthUseCase {
	return &AuthUseCase{tokens: strategy}
}

// ResolveCaller parses token into a caller. An empty token yields an anonymous
// caller; permission checks are left to the operations themselves.
func (u *AuthUseCase) ResolveCaller(token string) (model.Caller, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return model.Caller{}, nil
	}
	return u.tokens.ParseToken(token)
}

// IssueToken signs a caller assertion valid for ttl.
func (u *AuthUseCase) IssueToken(caller model.Caller, ttl time.Duration) (string, error) {
	if !caller.Authenticated() {
		return "", pkgAuth.ErrInvalidToken
	}
	return u.tokens.IssueToken(caller, ttl)
}
