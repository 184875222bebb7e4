package test

import (
	"context"
	"sync"

	"github.com/polkiloo/printshop/internal/domain/model"
)

// NotifierStub records enqueued status changes.
type NotifierStub struct {
	mu      sync.Mutex
	Changes []model.StatusChange
}

// Enqueue stores the change.
func (n *NotifierStub) Enqueue(change model.StatusChange) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.Changes = append(n.Changes, change)
}

// Recorded returns a snapshot of stored changes.
func (n *NotifierStub) Recorded() []model.StatusChange {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]model.StatusChange(nil), n.Changes...)
}

// PublisherStub records published status changes or fails with Err.
type PublisherStub struct {
	mu        sync.Mutex
	Err       error
	Published []model.StatusChange
	Closed    bool
	CloseErr  error
	Notify    chan model.StatusChange
}

// Publish records change unless Err is set.
func (p *PublisherStub) Publish(_ context.Context, change model.StatusChange) error {
	p.mu.Lock()
	if p.Err != nil {
		p.mu.Unlock()
		return p.Err
	}
	p.Published = append(p.Published, change)
	p.mu.Unlock()
	if p.Notify != nil {
		p.Notify <- change
	}
	return nil
}

// Close marks the publisher closed.
func (p *PublisherStub) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.Closed = true
	return p.CloseErr
}

// Count returns number of published changes.
func (p *PublisherStub) Count() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.Published)
}
