package kafka

import (
	"context"
	"testing"

	"go.uber.org/fx/fxtest"

	"github.com/polkiloo/printshop/internal/config"
	testhelpers "github.com/polkiloo/printshop/internal/test"
)

func TestNewPublisherWithoutBrokersIsNop(t *testing.T) {
	publisher, err := newPublisher(publisherParams{Config: &config.Config{}, Logger: testLogger()})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := publisher.(NopPublisher); !ok {
		t.Fatalf("expected nop publisher, got %T", publisher)
	}
}

func TestRegisterLifecycleClosesPublisher(t *testing.T) {
	stub := &testhelpers.PublisherStub{}
	lc := fxtest.NewLifecycle(t)
	registerLifecycle(lc, stub)

	lc.RequireStart()
	lc.RequireStop()

	if !stub.Closed {
		t.Fatal("expected publisher to be closed on stop")
	}
}

func TestRegisterLifecyclePropagatesCloseError(t *testing.T) {
	stub := &testhelpers.PublisherStub{CloseErr: context.DeadlineExceeded}
	lc := fxtest.NewLifecycle(t)
	registerLifecycle(lc, stub)

	lc.RequireStart()
	if err := lc.Stop(context.Background()); err == nil {
		t.Fatal("expected close error")
	}
}
