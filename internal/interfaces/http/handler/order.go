package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	orderingapp "github.com/RaminduDJay/supply-chain-management/internal/application/ordering"
	"github.com/RaminduDJay/supply-chain-management/internal/domain/ordering"
	"github.com/RaminduDJay/supply-chain-management/internal/interfaces/http/dto"
	"github.com/RaminduDJay/supply-chain-management/internal/interfaces/http/middleware"
)

// OrderHandler handles order lifecycle HTTP requests
type OrderHandler struct {
	BaseHandler
	orderService *orderingapp.OrderService
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(orderService *orderingapp.OrderService) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
	}
}

// ListOrdersRequest represents query parameters for listing orders
type ListOrdersRequest struct {
	dto.ListRequest
	StoreID string `form:"store_id" binding:"omitempty,uuid"`
	Status  string `form:"status" binding:"omitempty,oneof=pending confirmed assigned_train in_transit_rail at_warehouse assigned_truck out_for_delivery delivered cancelled returned"`
	City    string `form:"city"`
	From    string `form:"from" binding:"omitempty,datetime=2006-01-02"`
	To      string `form:"to" binding:"omitempty,datetime=2006-01-02"`
}

// UpdateOrderStatusRequest moves an order along its delivery pipeline
type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pending confirmed assigned_train in_transit_rail at_warehouse assigned_truck out_for_delivery delivered cancelled returned"`
}

// BulkUpdateStatusRequest moves several orders to the same status
type BulkUpdateStatusRequest struct {
	OrderIDs []string `json:"order_ids" binding:"required,min=1,max=100,dive,uuid"`
	Status   string   `json:"status" binding:"required,oneof=pending confirmed assigned_train in_transit_rail at_warehouse assigned_truck out_for_delivery delivered cancelled returned"`
}

// CancelOrderRequest represents an order cancellation
type CancelOrderRequest struct {
	Reason string `json:"reason" binding:"required,max=500"`
}

// ReturnOrderRequest records a failed delivery
type ReturnOrderRequest struct {
	Reason string `json:"reason" binding:"required,max=500"`
}

// AssignScheduleRequest books an order onto a transport schedule
type AssignScheduleRequest struct {
	ScheduleID string `json:"schedule_id" binding:"required,uuid"`
}

// ListMine returns the authenticated customer's orders
func (h *OrderHandler) ListMine(c *gin.Context) {
	claims := middleware.GetJWTClaims(c)
	if claims == nil {
		h.Unauthorized(c, "Authentication required")
		return
	}
	customerID, err := claims.GetCustomerUUID()
	if err != nil || customerID == nil {
		h.Forbidden(c, "Customer account required")
		return
	}

	var req ListOrdersRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.ValidationError(c, err)
		return
	}
	req.Normalize()

	input := orderingapp.ListOrdersInput{
		CustomerID: customerID,
		Status:     req.Status,
		Page:       req.Page,
		PageSize:   req.PageSize,
	}
	h.list(c, input)
}

// List returns a page of orders for staff. Store managers see their own
// store's orders; the router binds that scope.
func (h *OrderHandler) List(c *gin.Context) {
	var req ListOrdersRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.ValidationError(c, err)
		return
	}
	req.Normalize()

	input := orderingapp.ListOrdersInput{
		Status:   req.Status,
		City:     req.City,
		Page:     req.Page,
		PageSize: req.PageSize,
	}

	if req.StoreID != "" {
		storeID, err := uuid.Parse(req.StoreID)
		if err != nil {
			h.BadRequest(c, "Invalid store ID")
			return
		}
		input.StoreID = &storeID
	}
	// Store managers are always scoped to their own store
	if storeID := middleware.GetJWTStoreID(c); storeID != "" {
		id, err := uuid.Parse(storeID)
		if err == nil {
			input.StoreID = &id
		}
	}

	if req.From != "" {
		from, _ := time.Parse("2006-01-02", req.From)
		input.From = &from
	}
	if req.To != "" {
		to, _ := time.Parse("2006-01-02", req.To)
		to = to.Add(24*time.Hour - time.Nanosecond)
		input.To = &to
	}

	h.list(c, input)
}

func (h *OrderHandler) list(c *gin.Context, input orderingapp.ListOrdersInput) {
	result, err := h.orderService.ListOrders(c.Request.Context(), input)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	orders := make([]OrderResponse, 0, len(result.Orders))
	for _, o := range result.Orders {
		orders = append(orders, newOrderResponse(o))
	}

	h.SuccessWithMeta(c, orders, result.Total, result.Page, result.PageSize)
}

// GetByID returns a single order
func (h *OrderHandler) GetByID(c *gin.Context) {
	id, ok := h.parseIDParam(c)
	if !ok {
		return
	}

	info, err := h.orderService.GetOrder(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	// Customers may only read their own orders
	if customerID := middleware.GetJWTCustomerID(c); customerID != "" && customerID != info.CustomerID.String() {
		h.NotFound(c, "Order not found")
		return
	}

	h.Success(c, newOrderResponse(*info))
}

// GetByNumber returns a single order by its order number
func (h *OrderHandler) GetByNumber(c *gin.Context) {
	number := c.Param("order_number")
	if number == "" {
		h.BadRequest(c, "Order number is required")
		return
	}

	info, err := h.orderService.GetOrderByNumber(c.Request.Context(), number)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, newOrderResponse(*info))
}

// CountByStatus returns order counts per pipeline status
func (h *OrderHandler) CountByStatus(c *gin.Context) {
	counts, err := h.orderService.CountByStatus(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	out := make(map[string]int64, len(counts))
	for status, n := range counts {
		out[string(status)] = n
	}

	h.Success(c, out)
}

// Confirm accepts a pending order, deducting stock
func (h *OrderHandler) Confirm(c *gin.Context) {
	id, ok := h.parseIDParam(c)
	if !ok {
		return
	}

	info, err := h.orderService.ConfirmOrder(c.Request.Context(), id, h.actorID(c))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, newOrderResponse(*info))
}

// AssignTrain books a confirmed order onto a train schedule
func (h *OrderHandler) AssignTrain(c *gin.Context) {
	id, ok := h.parseIDParam(c)
	if !ok {
		return
	}

	scheduleID, ok := h.bindScheduleID(c)
	if !ok {
		return
	}

	info, err := h.orderService.AssignTrain(c.Request.Context(), orderingapp.AssignTrainInput{
		OrderID:    id,
		ScheduleID: scheduleID,
		ActorID:    h.actorID(c),
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, newOrderResponse(*info))
}

// AssignTruck books a warehoused order onto a truck schedule
func (h *OrderHandler) AssignTruck(c *gin.Context) {
	id, ok := h.parseIDParam(c)
	if !ok {
		return
	}

	scheduleID, ok := h.bindScheduleID(c)
	if !ok {
		return
	}

	info, err := h.orderService.AssignTruck(c.Request.Context(), orderingapp.AssignTruckInput{
		OrderID:    id,
		ScheduleID: scheduleID,
		ActorID:    h.actorID(c),
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, newOrderResponse(*info))
}

// UpdateStatus moves an order along its delivery pipeline
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	id, ok := h.parseIDParam(c)
	if !ok {
		return
	}

	var req UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.ValidationError(c, err)
		return
	}

	info, err := h.orderService.UpdateStatus(c.Request.Context(), orderingapp.UpdateStatusInput{
		OrderID: id,
		Status:  ordering.OrderStatus(req.Status),
		ActorID: h.actorID(c),
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, newOrderResponse(*info))
}

// BulkUpdateStatus moves several orders to the same status, reporting
// per-order outcomes.
func (h *OrderHandler) BulkUpdateStatus(c *gin.Context) {
	var req BulkUpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.ValidationError(c, err)
		return
	}

	orderIDs := make([]uuid.UUID, 0, len(req.OrderIDs))
	for _, raw := range req.OrderIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			h.BadRequest(c, "Invalid order ID: "+raw)
			return
		}
		orderIDs = append(orderIDs, id)
	}

	result, err := h.orderService.BulkUpdateStatus(c.Request.Context(), orderingapp.BulkUpdateStatusInput{
		OrderIDs: orderIDs,
		Status:   ordering.OrderStatus(req.Status),
		ActorID:  h.actorID(c),
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	failed := make(map[string]string, len(result.Failed))
	for id, reason := range result.Failed {
		failed[id.String()] = reason
	}

	h.Success(c, gin.H{
		"updated": result.Updated,
		"failed":  failed,
	})
}

// Cancel cancels an order, restoring stock and releasing transport
// capacity where already booked.
func (h *OrderHandler) Cancel(c *gin.Context) {
	id, ok := h.parseIDParam(c)
	if !ok {
		return
	}

	var req CancelOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.ValidationError(c, err)
		return
	}

	// Customers may only cancel their own orders
	if customerID := middleware.GetJWTCustomerID(c); customerID != "" {
		existing, err := h.orderService.GetOrder(c.Request.Context(), id)
		if err != nil {
			h.HandleError(c, err)
			return
		}
		if existing.CustomerID.String() != customerID {
			h.NotFound(c, "Order not found")
			return
		}
	}

	info, err := h.orderService.CancelOrder(c.Request.Context(), orderingapp.CancelOrderInput{
		OrderID: id,
		Reason:  req.Reason,
		ActorID: h.actorID(c),
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, newOrderResponse(*info))
}

// Return records a failed delivery, restoring stock
func (h *OrderHandler) Return(c *gin.Context) {
	id, ok := h.parseIDParam(c)
	if !ok {
		return
	}

	var req ReturnOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.ValidationError(c, err)
		return
	}

	info, err := h.orderService.ReturnOrder(c.Request.Context(), orderingapp.ReturnOrderInput{
		OrderID: id,
		Reason:  req.Reason,
		ActorID: h.actorID(c),
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, newOrderResponse(*info))
}

func (h *OrderHandler) bindScheduleID(c *gin.Context) (uuid.UUID, bool) {
	var req AssignScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.ValidationError(c, err)
		return uuid.Nil, false
	}
	scheduleID, err := uuid.Parse(req.ScheduleID)
	if err != nil {
		h.BadRequest(c, "Invalid schedule ID")
		return uuid.Nil, false
	}
	return scheduleID, true
}
