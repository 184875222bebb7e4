package model

import "time"

// StatusChange is published after an order status has been persisted.
type StatusChange struct {
	EventID     string      `json:"event_id"`
	OrderID     int64       `json:"order_id"`
	OrderNumber string      `json:"order_number"`
	From        OrderStatus `json:"from"`
	To          OrderStatus `json:"to"`
	Action      Action      `json:"action"`
	ActorID     int64       `json:"actor_id"`
	OccurredAt  time.Time   `json:"occurred_at"`
}
