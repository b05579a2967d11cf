package handler

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	customerapp "github.com/RaminduDJay/supply-chain-management/internal/application/customer"
	"github.com/RaminduDJay/supply-chain-management/internal/domain/customer"
	"github.com/RaminduDJay/supply-chain-management/internal/interfaces/http/dto"
	"github.com/RaminduDJay/supply-chain-management/internal/interfaces/http/middleware"
)

// CustomerHandler handles customer profile HTTP requests
type CustomerHandler struct {
	BaseHandler
	customerService *customerapp.CustomerService
}

// NewCustomerHandler creates a new customer handler
func NewCustomerHandler(customerService *customerapp.CustomerService) *CustomerHandler {
	return &CustomerHandler{
		customerService: customerService,
	}
}

// CustomerResponse represents a customer profile in API responses
type CustomerResponse struct {
	ID               uuid.UUID `json:"id"`
	Name             string    `json:"name"`
	Type             string    `json:"type"`
	Status           string    `json:"status"`
	ContactName      string    `json:"contact_name,omitempty"`
	Phone            string    `json:"phone,omitempty"`
	Email            string    `json:"email,omitempty"`
	Address          string    `json:"address,omitempty"`
	City             string    `json:"city"`
	CreditLimit      string    `json:"credit_limit"`
	DiscountRate     string    `json:"discount_rate"`
	MinOrderQuantity int       `json:"min_order_quantity"`
	Notes            string    `json:"notes,omitempty"`
}

func newCustomerResponse(info customerapp.CustomerInfo) CustomerResponse {
	return CustomerResponse{
		ID:               info.ID,
		Name:             info.Name,
		Type:             info.Type,
		Status:           info.Status,
		ContactName:      info.ContactName,
		Phone:            info.Phone,
		Email:            info.Email,
		Address:          info.Address,
		City:             info.City,
		CreditLimit:      info.CreditLimit.StringFixed(2),
		DiscountRate:     info.DiscountRate.String(),
		MinOrderQuantity: info.MinOrderQuantity,
		Notes:            info.Notes,
	}
}

// UpdateCustomerRequest represents profile fields a customer may change
type UpdateCustomerRequest struct {
	Name        string `json:"name" binding:"required,max=200"`
	ContactName string `json:"contact_name" binding:"max=200"`
	Phone       string `json:"phone" binding:"max=20"`
	Email       string `json:"email" binding:"omitempty,email"`
	Address     string `json:"address" binding:"max=500"`
	City        string `json:"city" binding:"required,max=100"`
}

// ChangeCustomerTypeRequest moves a customer to a different pricing tier
type ChangeCustomerTypeRequest struct {
	Type string `json:"type" binding:"required,oneof=end retail wholesale"`
}

// SetCreditLimitRequest represents a credit limit change
type SetCreditLimitRequest struct {
	CreditLimit decimal.Decimal `json:"credit_limit" binding:"required"`
}

// ListCustomersRequest represents query parameters for listing customers
type ListCustomersRequest struct {
	dto.ListRequest
	Keyword string `form:"keyword"`
	Type    string `form:"type" binding:"omitempty,oneof=end retail wholesale"`
	Status  string `form:"status" binding:"omitempty,oneof=active inactive suspended"`
	City    string `form:"city"`
}

// GetProfile returns the authenticated customer's own profile
func (h *CustomerHandler) GetProfile(c *gin.Context) {
	customerID, ok := h.customerIDFromClaims(c)
	if !ok {
		return
	}

	info, err := h.customerService.GetCustomer(c.Request.Context(), customerID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, newCustomerResponse(*info))
}

// UpdateProfile updates the authenticated customer's own profile
func (h *CustomerHandler) UpdateProfile(c *gin.Context) {
	customerID, ok := h.customerIDFromClaims(c)
	if !ok {
		return
	}

	var req UpdateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.ValidationError(c, err)
		return
	}

	info, err := h.customerService.UpdateCustomer(c.Request.Context(), customerapp.UpdateCustomerInput{
		CustomerID:  customerID,
		Name:        req.Name,
		ContactName: req.ContactName,
		Phone:       req.Phone,
		Email:       req.Email,
		Address:     req.Address,
		City:        req.City,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, newCustomerResponse(*info))
}

// List returns a page of customers for staff review
func (h *CustomerHandler) List(c *gin.Context) {
	var req ListCustomersRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.ValidationError(c, err)
		return
	}
	req.Normalize()

	result, err := h.customerService.ListCustomers(c.Request.Context(), customerapp.ListCustomersInput{
		Keyword:  req.Keyword,
		Type:     req.Type,
		Status:   req.Status,
		City:     req.City,
		Page:     req.Page,
		PageSize: req.PageSize,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	customers := make([]CustomerResponse, 0, len(result.Customers))
	for _, ci := range result.Customers {
		customers = append(customers, newCustomerResponse(ci))
	}

	h.SuccessWithMeta(c, customers, result.Total, result.Page, result.PageSize)
}

// GetByID returns a single customer profile
func (h *CustomerHandler) GetByID(c *gin.Context) {
	id, ok := h.parseIDParam(c)
	if !ok {
		return
	}

	info, err := h.customerService.GetCustomer(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, newCustomerResponse(*info))
}

// ChangeType moves a customer to a different pricing tier
func (h *CustomerHandler) ChangeType(c *gin.Context) {
	id, ok := h.parseIDParam(c)
	if !ok {
		return
	}

	var req ChangeCustomerTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.ValidationError(c, err)
		return
	}

	info, err := h.customerService.ChangeCustomerType(c.Request.Context(), customerapp.ChangeCustomerTypeInput{
		CustomerID: id,
		NewType:    customer.CustomerType(req.Type),
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, newCustomerResponse(*info))
}

// SetCreditLimit changes a customer's credit limit
func (h *CustomerHandler) SetCreditLimit(c *gin.Context) {
	id, ok := h.parseIDParam(c)
	if !ok {
		return
	}

	var req SetCreditLimitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.ValidationError(c, err)
		return
	}

	err := h.customerService.SetCreditLimit(c.Request.Context(), customerapp.SetCreditLimitInput{
		CustomerID:  id,
		CreditLimit: req.CreditLimit,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, gin.H{"message": "Credit limit updated"})
}

// Suspend blocks a customer from placing orders
func (h *CustomerHandler) Suspend(c *gin.Context) {
	h.mutate(c, h.customerService.SuspendCustomer)
}

// Activate restores a suspended or deactivated customer
func (h *CustomerHandler) Activate(c *gin.Context) {
	h.mutate(c, h.customerService.ActivateCustomer)
}

// Deactivate closes a customer account
func (h *CustomerHandler) Deactivate(c *gin.Context) {
	h.mutate(c, h.customerService.DeactivateCustomer)
}

func (h *CustomerHandler) mutate(c *gin.Context, fn func(ctx context.Context, id uuid.UUID) error) {
	id, ok := h.parseIDParam(c)
	if !ok {
		return
	}

	if err := fn(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, gin.H{"message": "Updated"})
}

func (h *CustomerHandler) customerIDFromClaims(c *gin.Context) (uuid.UUID, bool) {
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
