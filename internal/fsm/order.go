package fsm

import (
	"context"
	"fmt"
	"sync"

	"github.com/looplab/fsm"

	domainErrors "github.com/polkiloo/printshop/internal/domain/errors"
	"github.com/polkiloo/printshop/internal/domain/model"
)

// OrderStateMachine validates order status transitions. A single instance is
// shared between requests; every call resets the machine to the given state.
type OrderStateMachine struct {
	fsm *fsm.FSM
	mu  sync.Mutex
}

// NewOrderStateMachine builds the machine from Progression: "next" moves each
// status to its successor, "cancel" moves any non-terminal status to CANCELLED.
func NewOrderStateMachine() *OrderStateMachine {
	var events fsm.Events
	for _, src := range Progression {
		dst, ok := Next(src)
		if !ok {
			continue
		}
		events = append(events,
			fsm.EventDesc{Name: string(model.ActionNext), Src: []string{string(src)}, Dst: string(dst)},
			fsm.EventDesc{Name: string(model.ActionCancel), Src: []string{string(src)}, Dst: string(model.OrderStatusCancelled)},
		)
	}

	return &OrderStateMachine{
		fsm: fsm.NewFSM(string(model.OrderStatusPending), events, fsm.Callbacks{}),
	}
}

// Transition returns the status reached by applying action to current. A done
// context is returned as is, never as a refused transition.
func (osm *OrderStateMachine) Transition(ctx context.Context, current model.OrderStatus, action model.Action) (model.OrderStatus, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if !Valid(current) {
		return "", fmt.Errorf("%w: unknown order status %q", domainErrors.ErrInvalidTransition, current)
	}

	osm.mu.Lock()
	defer osm.mu.Unlock()
	osm.fsm.SetState(string(current))
	if !osm.fsm.Can(string(action)) {
		return "", fmt.Errorf("%w: cannot %s order in %s state", domainErrors.ErrInvalidTransition, action, current)
	}
	if err := osm.fsm.Event(ctx, string(action)); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return "", ctxErr
		}
		return "", fmt.Errorf("apply %s to %s: %w", action, current, err)
	}
	return model.OrderStatus(osm.fsm.Current()), nil
}

// AvailableActions lists actions accepted from current.
func (osm *OrderStateMachine) AvailableActions(current model.OrderStatus) []model.Action {
	if IsTerminal(current) || !Valid(current) {
		return nil
	}

	osm.mu.Lock()
	defer osm.mu.Unlock()
	osm.fsm.SetState(string(current))
	names := osm.fsm.AvailableTransitions()
	actions := make([]model.Action, 0, len(names))
	for _, name := range names {
		actions = append(actions, model.Action(name))
	}
	return actions
}
