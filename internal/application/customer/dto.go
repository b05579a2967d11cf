package customer

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/RaminduDJay/supply-chain-management/internal/domain/customer"
)

// CustomerInfo contains customer data exposed to API clients
type CustomerInfo struct {
	ID               uuid.UUID
	Name             string
	Type             string
	Status           string
	ContactName      string
	Phone            string
	Email            string
	Address          string
	City             string
	CreditLimit      decimal.Decimal
	DiscountRate     decimal.Decimal
	MinOrderQuantity int
	Notes            string
}

// NewCustomerInfo maps a customer aggregate to its API representation
func NewCustomerInfo(c *customer.Customer) CustomerInfo {
	return CustomerInfo{
		ID:               c.ID,
		Name:             c.Name,
		Type:             string(c.Type),
		Status:           string(c.Status),
		ContactName:      c.ContactName,
		Phone:            c.Phone,
		Email:            c.Email,
		Address:          c.Address,
		City:             c.City,
		CreditLimit:      c.CreditLimit,
		DiscountRate:     c.Type.DiscountRate(),
		MinOrderQuantity: c.Type.MinOrderQuantity(),
		Notes:            c.Notes,
	}
}

// UpdateCustomerInput contains profile fields a customer may change
type UpdateCustomerInput struct {
	CustomerID  uuid.UUID
	Name        string
	ContactName string
	Phone       string
	Email       string
	Address     string
	City        string
}

// ChangeCustomerTypeInput moves a customer to a different pricing tier
type ChangeCustomerTypeInput struct {
	CustomerID uuid.UUID
	NewType    customer.CustomerType
}

// SetCreditLimitInput contains a credit limit change
type SetCreditLimitInput struct {
	CustomerID  uuid.UUID
	CreditLimit decimal.Decimal
}

// ListCustomersInput contains filter and pagination options
type ListCustomersInput struct {
	Keyword  string
	Type     string
	Status   string
	City     string
	Page     int
	PageSize int
}

// ListCustomersResult contains a page of customers
type ListCustomersResult struct {
	Customers []CustomerInfo
	Total     int64
	Page      int
	PageSize  int
}
