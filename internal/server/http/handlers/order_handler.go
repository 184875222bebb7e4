package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/printshop/internal/domain/model"
	"github.com/polkiloo/printshop/internal/server/http/dto"
)

// OrderHandler manages admin order endpoints.
type OrderHandler struct {
	facade OrderFacade
}

// NewOrderHandler constructs OrderHandler.
func NewOrderHandler(facade OrderFacade) *OrderHandler {
	return &OrderHandler{facade: facade}
}

// Advance handles POST /api/admin/orders/status.
func (h *OrderHandler) Advance(c *gin.Context) {
	var req dto.AdvanceStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBadRequest(c, "malformed request body")
		return
	}
	h.advance(c, req.OrderID, req.Action)
}

// AdvanceByID handles POST /api/admin/orders/:id/status.
func (h *OrderHandler) AdvanceByID(c *gin.Context) {
	id, ok := pathOrderID(c)
	if !ok {
		return
	}
	var req dto.ActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBadRequest(c, "malformed request body")
		return
	}
	h.advance(c, id, req.Action)
}

// Get handles GET /api/admin/orders/:id.
func (h *OrderHandler) Get(c *gin.Context) {
	id, ok := pathOrderID(c)
	if !ok {
		return
	}
	order, actions, err := h.facade.Order(c.Request.Context(), id, CurrentCaller(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toOrderResponse(order, actions))
}

func (h *OrderHandler) advance(c *gin.Context, orderID int64, action string) {
	transition, err := h.facade.AdvanceOrder(c.Request.Context(), orderID, action, CurrentCaller(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.AdvanceStatusResponse{
		Success:        true,
		Status:         string(transition.To),
		PreviousStatus: string(transition.From),
		OrderNumber:    transition.Order.Number,
		Message:        fmt.Sprintf("order %s moved from %s to %s", transition.Order.Number, transition.From, transition.To),
	})
}

func pathOrderID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		writeBadRequest(c, "order id must be an integer")
		return 0, false
	}
	return id, true
}

func toOrderResponse(order *model.Order, actions []model.Action) dto.OrderResponse {
	available := make([]string, 0, len(actions))
	for _, a := range actions {
		available = append(available, string(a))
	}
	return dto.OrderResponse{
		ID:                  order.ID,
		Number:              order.Number,
		UserID:              order.UserID,
		Status:              string(order.Status),
		Priority:            string(order.Priority),
		PriorityRank:        order.Priority.Rank(),
		TotalPrice:          order.TotalPrice,
		TotalFiles:          order.TotalFiles,
		TotalPages:          order.TotalPages,
		CreatedAt:           order.CreatedAt,
		EstimatedCompletion: order.EstimatedCompletion,
		UpdatedAt:           order.UpdatedAt,
		AvailableActions:    available,
	}
}
