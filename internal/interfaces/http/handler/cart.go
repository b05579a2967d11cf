package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	orderingapp "github.com/RaminduDJay/supply-chain-management/internal/application/ordering"
	"github.com/RaminduDJay/supply-chain-management/internal/interfaces/http/middleware"
)

// CartHandler handles the authenticated customer's shopping cart
type CartHandler struct {
	BaseHandler
	cartService     *orderingapp.CartService
	checkoutService *orderingapp.CheckoutService
}

// NewCartHandler creates a new cart handler
func NewCartHandler(cartService *orderingapp.CartService, checkoutService *orderingapp.CheckoutService) *CartHandler {
	return &CartHandler{
		cartService:     cartService,
		checkoutService: checkoutService,
	}
}

// AddCartItemRequest represents the request body for adding a cart line
type AddCartItemRequest struct {
	ItemID   string `json:"item_id" binding:"required,uuid"`
	Quantity int    `json:"quantity" binding:"required,min=1"`
}

// UpdateCartItemRequest represents a quantity change on a cart line
type UpdateCartItemRequest struct {
	Quantity int `json:"quantity" binding:"required,min=1"`
}

// CheckoutRequest represents the request body for placing an order.
// The required date must be at least seven days out; the checkout
// service enforces the exact lead time.
type CheckoutRequest struct {
	RouteID         string    `json:"route_id" binding:"required,uuid"`
	DeliveryAddress string    `json:"delivery_address" binding:"required,max=500"`
	DeliveryCity    string    `json:"delivery_city" binding:"required,max=100"`
	RequiredDate    time.Time `json:"required_date" binding:"required"`
	Remark          string    `json:"remark" binding:"max=1000"`
}

// Get returns the customer's current cart
func (h *CartHandler) Get(c *gin.Context) {
	customerID, ok := h.customerID(c)
	if !ok {
		return
	}

	info, err := h.cartService.GetCart(c.Request.Context(), customerID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, newCartResponse(*info))
}

// AddItem adds an item to the cart or increases its quantity
func (h *CartHandler) AddItem(c *gin.Context) {
	customerID, ok := h.customerID(c)
	if !ok {
		return
	}

	var req AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.ValidationError(c, err)
		return
	}

	itemID, err := uuid.Parse(req.ItemID)
	if err != nil {
		h.BadRequest(c, "Invalid item ID")
		return
	}

	info, err := h.cartService.AddItem(c.Request.Context(), orderingapp.AddCartItemInput{
		CustomerID: customerID,
		ItemID:     itemID,
		Quantity:   req.Quantity,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, newCartResponse(*info))
}

// UpdateItem changes the quantity of a cart line
func (h *CartHandler) UpdateItem(c *gin.Context) {
	customerID, ok := h.customerID(c)
	if !ok {
		return
	}

	itemID, err := uuid.Parse(c.Param("item_id"))
	if err != nil {
		h.BadRequest(c, "Invalid item ID")
		return
	}

	var req UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.ValidationError(c, err)
		return
	}

	info, err := h.cartService.UpdateItemQuantity(c.Request.Context(), orderingapp.UpdateCartItemInput{
		CustomerID: customerID,
		ItemID:     itemID,
		Quantity:   req.Quantity,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, newCartResponse(*info))
}

// RemoveItem deletes a cart line
func (h *CartHandler) RemoveItem(c *gin.Context) {
	customerID, ok := h.customerID(c)
	if !ok {
		return
	}

	itemID, err := uuid.Parse(c.Param("item_id"))
	if err != nil {
		h.BadRequest(c, "Invalid item ID")
		return
	}

	info, err := h.cartService.RemoveItem(c.Request.Context(), customerID, itemID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, newCartResponse(*info))
}

// Clear empties the cart
func (h *CartHandler) Clear(c *gin.Context) {
	customerID, ok := h.customerID(c)
	if !ok {
		return
	}

	info, err := h.cartService.ClearCart(c.Request.Context(), customerID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, newCartResponse(*info))
}

// Checkout turns the cart into a placed order
func (h *CartHandler) Checkout(c *gin.Context) {
	customerID, ok := h.customerID(c)
	if !ok {
		return
	}

	var req CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.ValidationError(c, err)
		return
	}

	routeID, err := uuid.Parse(req.RouteID)
	if err != nil {
		h.BadRequest(c, "Invalid route ID")
		return
	}

	info, err := h.checkoutService.Checkout(c.Request.Context(), orderingapp.CheckoutInput{
		CustomerID:      customerID,
		RouteID:         routeID,
		DeliveryAddress: req.DeliveryAddress,
		DeliveryCity:    req.DeliveryCity,
		RequiredDate:    req.RequiredDate,
		Remark:          req.Remark,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, newOrderResponse(*info))
}

func (h *CartHandler) customerID(c *gin.Context) (uuid.UUID, bool) {
	claims := middleware.GetJWTClaims(c)
	if claims == nil {
		h.Unauthorized(c, "Authentication required")
		return uuid.Nil, false
	}
	customerID, err := claims.GetCustomerUUID()
	if err != nil || customerID == nil {
		h.Forbidden(c, "Customer account required")
		return uuid.Nil, false
	}
	return *customerID, true
}
