package worker

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/polkiloo/printshop/internal/domain/model"
	testhelpers "github.com/polkiloo/printshop/internal/test"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

func change(n int64) model.StatusChange {
	return model.StatusChange{
		EventID:     "evt",
		OrderID:     n,
		OrderNumber: "PS",
		From:        model.OrderStatusPaid,
		To:          model.OrderStatusProcessing,
		Action:      model.ActionNext,
	}
}

func TestNewEventDispatcherDefaults(t *testing.T) {
	d := NewEventDispatcher(&testhelpers.PublisherStub{}, 0, 0, 0, testLogger())
	if d.workers != 1 {
		t.Fatalf("expected workers default to 1, got %d", d.workers)
	}
	if d.buffer != 1 {
		t.Fatalf("expected buffer default to workers, got %d", d.buffer)
	}
	if d.publishTimeout != 5*time.Second {
		t.Fatalf("expected default publish timeout, got %s", d.publishTimeout)
	}
}

func TestEventDispatcherPublishesChanges(t *testing.T) {
	publisher := &testhelpers.PublisherStub{Notify: make(chan model.StatusChange, 4)}
	d := NewEventDispatcher(publisher, 2, 4, time.Second, testLogger())

	d.Start(context.Background())
	d.Enqueue(change(1))
	d.Enqueue(change(2))

	deadline := time.After(500 * time.Millisecond)
	for received := 0; received < 2; {
		select {
		case <-publisher.Notify:
			received++
		case <-deadline:
			t.Fatal("timeout waiting for publish")
		}
	}

	d.Stop()
	if publisher.Count() != 2 {
		t.Fatalf("expected 2 published changes, got %d", publisher.Count())
	}
}

func TestEventDispatcherDrainsQueueOnStop(t *testing.T) {
	publisher := &testhelpers.PublisherStub{}
	d := NewEventDispatcher(publisher, 1, 8, time.Second, testLogger())

	d.Start(context.Background())
	for i := int64(1); i <= 5; i++ {
		d.Enqueue(change(i))
	}
	d.Stop()

	if publisher.Count() != 5 {
		t.Fatalf("expected queued changes to be delivered before stop returns, got %d", publisher.Count())
	}
}

func TestEventDispatcherDropsWhenNotRunning(t *testing.T) {
	publisher := &testhelpers.PublisherStub{}
	d := NewEventDispatcher(publisher, 1, 1, time.Second, testLogger())

	d.Enqueue(change(1))

	d.Start(context.Background())
	d.Stop()
	d.Enqueue(change(2))

	if publisher.Count() != 0 {
		t.Fatalf("expected no publishes, got %d", publisher.Count())
	}
}

func TestEventDispatcherDropsWhenQueueFull(t *testing.T) {
	block := make(chan model.StatusChange)
	publisher := &testhelpers.PublisherStub{Notify: block}
	d := NewEventDispatcher(publisher, 1, 1, time.Second, testLogger())
	d.Start(context.Background())

	d.Enqueue(change(1))
	// wait until the worker holds the first change
	deadline := time.After(500 * time.Millisecond)
	for publisher.Count() == 0 {
		select {
		case <-deadline:
			t.Fatal("timeout waiting for worker")
		case <-time.After(time.Millisecond):
		}
	}

	d.Enqueue(change(2))
	d.Enqueue(change(3))

	done := make(chan struct{})
	go func() {
		defer close(done)
		d.Stop()
	}()
	for {
		select {
		case <-block:
			continue
		case <-done:
		}
		break
	}

	if publisher.Count() != 2 {
		t.Fatalf("expected one queued change to be dropped, got %d published", publisher.Count())
	}
}

func TestEventDispatcherSurvivesPublishErrors(t *testing.T) {
	publisher := &testhelpers.PublisherStub{Err: errors.New("broker down")}
	d := NewEventDispatcher(publisher, 1, 2, time.Second, testLogger())

	d.Start(context.Background())
	d.Enqueue(change(1))
	d.Enqueue(change(2))
	d.Stop()

	if publisher.Count() != 0 {
		t.Fatalf("expected failed publishes to be discarded, got %d", publisher.Count())
	}
}

func TestEventDispatcherRestart(t *testing.T) {
	publisher := &testhelpers.PublisherStub{}
	d := NewEventDispatcher(publisher, 1, 2, time.Second, testLogger())

	d.Start(context.Background())
	d.Start(context.Background())
	d.Enqueue(change(1))
	d.Stop()
	d.Stop()

	d.Start(context.Background())
	d.Enqueue(change(2))
	d.Stop()

	if publisher.Count() != 2 {
		t.Fatalf("expected 2 published changes across restarts, got %d", publisher.Count())
	}
}
