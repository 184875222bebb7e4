package model

import "time"

// OrderStatus describes print job lifecycle.
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "PENDING"
	OrderStatusPaid       OrderStatus = "PAID"
	OrderStatusProcessing OrderStatus = "PROCESSING"
	OrderStatusPrinting   OrderStatus = "PRINTING"
	OrderStatusReady      OrderStatus = "READY"
	OrderStatusCompleted  OrderStatus = "COMPLETED"
	OrderStatusCancelled  OrderStatus = "CANCELLED"
)

// Priority affects dashboard ordering only.
type Priority string

const (
	PriorityUrgent Priority = "URGENT"
	PriorityHigh   Priority = "HIGH"
	PriorityNormal Priority = "NORMAL"
)

// Rank returns the sort position used by the admin dashboard, lower first.
func (p Priority) Rank() int {
	switch p {
	case PriorityUrgent:
		return 1
	case PriorityHigh:
		return 2
	case PriorityNormal:
		return 3
	default:
		return 4
	}
}

// Order describes a customer's print job.
type Order struct {
	ID                  int64
	UserID              int64
	Number              string
	Status              OrderStatus
	Priority            Priority
	TotalPrice          float64
	TotalFiles          int
	TotalPages          int
	CreatedAt           time.Time
	EstimatedCompletion *time.Time
	UpdatedAt           time.Time
}

// Transition is the outcome of a successful status change.
type Transition struct {
	Order *Order
	From  OrderStatus
	To    OrderStatus
}
