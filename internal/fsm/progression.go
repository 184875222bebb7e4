package fsm

import "github.com/polkiloo/printshop/internal/domain/model"

// Progression is the fixed forward order of non-cancelled statuses.
var Progression = []model.OrderStatus{
	model.OrderStatusPending,
	model.OrderStatusPaid,
	model.OrderStatusProcessing,
	model.OrderStatusPrinting,
	model.OrderStatusReady,
	model.OrderStatusCompleted,
}

var successors = buildSuccessors(Progression)

func buildSuccessors(seq []model.OrderStatus) map[model.OrderStatus]model.OrderStatus {
	next := make(map[model.OrderStatus]model.OrderStatus, len(seq))
	for i := 0; i+1 < len(seq); i++ {
		next[seq[i]] = seq[i+1]
	}
	return next
}

// Next returns the single successor of status in the progression.
func Next(status model.OrderStatus) (model.OrderStatus, bool) {
	next, ok := successors[status]
	return next, ok
}

// Valid reports whether status belongs to the lifecycle.
func Valid(status model.OrderStatus) bool {
	if status == model.OrderStatusCancelled {
		return true
	}
	for _, s := range Progression {
		if s == status {
			return true
		}
	}
	return false
}

// IsTerminal reports whether no action can move status any further.
func IsTerminal(status model.OrderStatus) bool {
	return status == model.OrderStatusCompleted || status == model.OrderStatusCancelled
}
