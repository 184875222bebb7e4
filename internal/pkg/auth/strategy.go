package auth

import (
	"errors"
	"time"

	"github.com/polkiloo/printshop/internal/domain/model"
)

var ErrInvalidToken = errors.New("invalid auth token")

// Strategy issues and verifies caller assertions.
type Strategy interface {
	IssueToken(caller model.Caller, ttl time.Duration) (string, error)
	ParseToken(token string) (model.Caller, error)
}

type Options struct {
	TTL time.Duration
}
