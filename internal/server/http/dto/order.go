package dto

import "time"

// AdvanceStatusRequest is the dashboard payload for a status change.
type AdvanceStatusRequest struct {
	OrderID int64  `json:"order_id"`
	Action  string `json:"action"`
}

// ActionRequest carries the action when the order id is part of the path.
type ActionRequest struct {
	Action string `json:"action"`
}

// AdvanceStatusResponse reports a successful status change.
type AdvanceStatusResponse struct {
	Success        bool   `json:"success"`
	Status         string `json:"status"`
	PreviousStatus string `json:"previous_status"`
	OrderNumber    string `json:"order_number"`
	Message        string `json:"message"`
}

// ErrorResponse reports a failed request.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Code    string `json:"code"`
	Error   string `json:"error"`
}

// OrderResponse describes an order row for the admin dashboard.
type OrderResponse struct {
	ID                  int64      `json:"id"`
	Number              string     `json:"order_number"`
	UserID              int64      `json:"user_id"`
	Status              string     `json:"status"`
	Priority            string     `json:"priority"`
	PriorityRank        int        `json:"priority_rank"`
	TotalPrice          float64    `json:"total_price"`
	TotalFiles          int        `json:"total_files"`
	TotalPages          int        `json:"total_pages"`
	CreatedAt           time.Time  `json:"created_at"`
	EstimatedCompletion *time.Time `json:"estimated_completion,omitempty"`
	UpdatedAt           time.Time  `json:"updated_at"`
	AvailableActions    []string   `json:"available_actions"`
}

// HealthResponse reports service health.
type HealthResponse struct {
	Status string `json:"status"`
}
