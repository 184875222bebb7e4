package worker

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/polkiloo/printshop/internal/domain/model"
)

// Publisher exposes the subset of the event adapter required by the dispatcher.
type Publisher interface {
	Publish(ctx context.Context, change model.StatusChange) error
}

// EventDispatcher delivers status changes to the publisher from a bounded queue
// served by a pool of workers. Enqueue never blocks the caller.
type EventDispatcher struct {
	publisher      Publisher
	workers        int
	buffer         int
	publishTimeout time.Duration
	logger         *slog.Logger

	jobs    chan model.StatusChange
	wg      sync.WaitGroup
	cancel  context.CancelFunc
	mu      sync.RWMutex
	running bool
}

// NewEventDispatcher constructs the dispatcher worker pool.
func NewEventDispatcher(publisher Publisher, workers, buffer int, publishTimeout time.Duration, logger *slog.Logger) *EventDispatcher {
	if workers <= 0 {
		workers = 1
	}
	if buffer <= 0 {
		buffer = workers
	}
	if publishTimeout <= 0 {
		publishTimeout = 5 * time.Second
	}
	return &EventDispatcher{
		publisher:      publisher,
		workers:        workers,
		buffer:         buffer,
		publishTimeout: publishTimeout,
		logger:         logger,
	}
}

// Start launches background delivery.
func (d *EventDispatcher) Start(ctx context.Context) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.running {
		return
	}

	runCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	d.cancel = cancel
	d.jobs = make(chan model.StatusChange, d.buffer)
	d.running = true

	for i := 0; i < d.workers; i++ {
		d.wg.Add(1)
		go d.worker(runCtx, d.jobs)
	}
}

// Stop drains queued changes and waits for all workers to finish.
func (d *EventDispatcher) Stop() {
	d.mu.Lock()
	if !d.running {
		d.mu.Unlock()
		return
	}
	d.running = false
	close(d.jobs)
	cancel := d.cancel
	d.cancel = nil
	d.mu.Unlock()

	d.wg.Wait()
	cancel()
}

// Enqueue schedules change for delivery. The change is dropped when the
// dispatcher is stopped or the queue is full.
func (d *EventDispatcher) Enqueue(change model.StatusChange) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if !d.running {
		d.logger.Warn("status change dropped, dispatcher not running",
			slog.String("order", change.OrderNumber),
			slog.String("event_id", change.EventID),
		)
		return
	}

	select {
	case d.jobs <- change:
	default:
		d.logger.Warn("status change dropped, queue full",
			slog.String("order", change.OrderNumber),
			slog.String("event_id", change.EventID),
			slog.Int("capacity", cap(d.jobs)),
		)
	}
}

func (d *EventDispatcher) worker(ctx context.Context, jobs <-chan model.StatusChange) {
	defer d.wg.Done()
	for change := range jobs {
		d.deliver(ctx, change)
	}
}

func (d *EventDispatcher) deliver(ctx context.Context, change model.StatusChange) {
	ctx, cancel := context.WithTimeout(ctx, d.publishTimeout)
	defer cancel()

	if err := d.publisher.Publish(ctx, change); err != nil {
		d.logger.Error("publish status change failed",
			slog.String("order", change.OrderNumber),
			slog.String("event_id", change.EventID),
			slog.String("status", string(change.To)),
			slog.String("error", err.Error()),
		)
	}
}
