package errors

import (
	stdErrors "errors"
	"fmt"
	"testing"
)

func TestSentinelErrors(t *testing.T) {
	cases := []struct {
		name string
		err  error
	}{
		{"not found", ErrNotFound},
		{"unauthorized", ErrUnauthorized},
		{"invalid action", ErrInvalidAction},
		{"invalid transition", ErrInvalidTransition},
		{"conflict", ErrConflict},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if !stdErrors.Is(tc.err, tc.err) {
				t.Fatalf("expected error to match itself: %v", tc.err)
			}
		})
	}
}

func TestKindOf(t *testing.T) {
	cases := []struct {
		err  error
		kind Kind
	}{
		{ErrNotFound, KindNotFound},
		{fmt.Errorf("%w: order 7", ErrNotFound), KindNotFound},
		{fmt.Errorf("%w: anonymous", ErrUnauthorized), KindUnauthorized},
		{fmt.Errorf("%w: \"prev\"", ErrInvalidAction), KindInvalidAction},
		{fmt.Errorf("%w: COMPLETED", ErrInvalidTransition), KindInvalidTransition},
		{fmt.Errorf("advance: %w", fmt.Errorf("%w: changed", ErrConflict)), KindConflict},
		{stdErrors.New("db down"), KindInternal},
		{nil, KindInternal},
	}

	for _, tc := range cases {
		if got := KindOf(tc.err); got != tc.kind {
			t.Fatalf("KindOf(%v) = %s, want %s", tc.err, got, tc.kind)
		}
	}
}
