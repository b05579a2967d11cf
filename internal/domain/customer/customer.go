package customer

import (
	"regexp"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/RaminduDJay/supply-chain-management/internal/domain/shared"
)

// CustomerStatus represents the status of a customer profile
type CustomerStatus string

const (
	CustomerStatusActive    CustomerStatus = "active"
	CustomerStatusInactive  CustomerStatus = "inactive"
	CustomerStatusSuspended CustomerStatus = "suspended" // Suspended due to credit issues
)

// CustomerType determines pricing terms. Wholesale buyers get deeper
// discounts in exchange for larger minimum order quantities.
type CustomerType string

const (
	CustomerTypeEnd       CustomerType = "end"       // End consumer
	CustomerTypeRetail    CustomerType = "retail"    // Retail shop
	CustomerTypeWholesale CustomerType = "wholesale" // Wholesale buyer
)

// DefaultCreditLimit is the credit limit assigned to new customers.
var DefaultCreditLimit = decimal.NewFromInt(10000)

// DiscountRate returns the fractional discount applied to this
// customer type's order totals.
func (t CustomerType) DiscountRate() decimal.Decimal {
	switch t {
	case CustomerTypeRetail:
		return decimal.NewFromFloat(0.05)
	case CustomerTypeWholesale:
		return decimal.NewFromFloat(0.15)
	default:
		return decimal.Zero
	}
}

// MinOrderQuantity returns the smallest per-item quantity this
// customer type may order.
func (t CustomerType) MinOrderQuantity() int {
	switch t {
	case CustomerTypeRetail:
		return 10
	case CustomerTypeWholesale:
		return 50
	default:
		return 1
	}
}

// IsValid reports whether the type is one of the known customer types.
func (t CustomerType) IsValid() bool {
	switch t {
	case CustomerTypeEnd, CustomerTypeRetail, CustomerTypeWholesale:
		return true
	}
	return false
}

// Customer represents a buyer profile.
// It is the aggregate root for customer-related operations.
type Customer struct {
	shared.BaseAggregateRoot
	Name        string
	Type        CustomerType
	Status      CustomerStatus
	ContactName string
	Phone       string
	Email       string
	Address     string
	City        string
	CreditLimit decimal.Decimal
	Notes       string
}

// NewCustomer creates a new customer with required fields
func NewCustomer(name string, customerType CustomerType) (*Customer, error) {
	if err := validateCustomerName(name); err != nil {
		return nil, err
	}
	if !customerType.IsValid() {
		return nil, shared.NewDomainError("INVALID_CUSTOMER_TYPE", "Unknown customer type")
	}

	customer := &Customer{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              strings.TrimSpace(name),
		Type:              customerType,
		Status:            CustomerStatusActive,
		CreditLimit:       DefaultCreditLimit,
	}

	customer.AddDomainEvent(NewCustomerCreatedEvent(customer))

	return customer, nil
}

// Update updates the customer's name
func (c *Customer) Update(name string) error {
	if err := validateCustomerName(name); err != nil {
		return err
	}

	c.Name = strings.TrimSpace(name)
	c.UpdatedAt = time.Now()
	c.IncrementVersion()

	return nil
}

// SetContact sets the customer's contact information
func (c *Customer) SetContact(contactName, phone, email string) error {
	if contactName != "" && len(contactName) > 100 {
		return shared.NewDomainError("INVALID_CONTACT_NAME", "Contact name cannot exceed 100 characters")
	}
	if phone != "" {
		if err := validatePhone(phone); err != nil {
			return err
		}
	}
	if email != "" {
		if err := validateEmail(email); err != nil {
			return err
		}
	}

	c.ContactName = contactName
	c.Phone = phone
	c.Email = email
	c.UpdatedAt = time.Now()
	c.IncrementVersion()

	return nil
}

// SetAddress sets the customer's delivery address
func (c *Customer) SetAddress(address, city string) error {
	if address != "" && len(address) > 500 {
		return shared.NewDomainError("INVALID_ADDRESS", "Address cannot exceed 500 characters")
	}
	if city != "" && len(city) > 100 {
		return shared.NewDomainError("INVALID_CITY", "City cannot exceed 100 characters")
	}

	c.Address = address
	c.City = city
	c.UpdatedAt = time.Now()
	c.IncrementVersion()

	return nil
}

// ChangeType moves the customer to a different pricing tier
func (c *Customer) ChangeType(newType CustomerType) error {
	if !newType.IsValid() {
		return shared.NewDomainError("INVALID_CUSTOMER_TYPE", "Unknown customer type")
	}
	if c.Type == newType {
		return nil
	}

	oldType := c.Type
	c.Type = newType
	c.UpdatedAt = time.Now()
	c.IncrementVersion()

	c.AddDomainEvent(NewCustomerTypeChangedEvent(c, oldType, newType))

	return nil
}

// SetCreditLimit sets the customer's credit limit
func (c *Customer) SetCreditLimit(limit decimal.Decimal) error {
	if limit.IsNegative() {
		return shared.NewDomainError("INVALID_CREDIT_LIMIT", "Credit limit cannot be negative")
	}

	c.CreditLimit = limit
	c.UpdatedAt = time.Now()
	c.IncrementVersion()

	return nil
}

// SetNotes sets free-form notes about the customer
func (c *Customer) SetNotes(notes string) {
	c.Notes = notes
	c.UpdatedAt = time.Now()
	c.IncrementVersion()
}

// Activate activates the customer
func (c *Customer) Activate() error {
	if c.Status == CustomerStatusActive {
		return shared.NewDomainError("ALREADY_ACTIVE", "Customer is already active")
	}

	c.Status = CustomerStatusActive
	c.UpdatedAt = time.Now()
	c.IncrementVersion()

	return nil
}

// Deactivate deactivates the customer
func (c *Customer) Deactivate() error {
	if c.Status == CustomerStatusInactive {
		return shared.NewDomainError("ALREADY_INACTIVE", "Customer is already inactive")
	}

	c.Status = CustomerStatusInactive
	c.UpdatedAt = time.Now()
	c.IncrementVersion()

	return nil
}

// Suspend suspends the customer, blocking new orders
func (c *Customer) Suspend() error {
	if c.Status == CustomerStatusSuspended {
		return shared.NewDomainError("ALREADY_SUSPENDED", "Customer is already suspended")
	}

	c.Status = CustomerStatusSuspended
	c.UpdatedAt = time.Now()
	c.IncrementVersion()

	return nil
}

// IsActive returns true if customer is active
func (c *Customer) IsActive() bool {
	return c.Status == CustomerStatusActive
}

// CanPlaceOrders returns true if the customer may check out a cart
func (c *Customer) CanPlaceOrders() bool {
	return c.Status == CustomerStatusActive
}

// Validation functions

func validateCustomerName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Customer name cannot be empty")
	}
	if len(name) > 200 {
		return shared.NewDomainError("INVALID_NAME", "Customer name cannot exceed 200 characters")
	}
	return nil
}

func validatePhone(phone string) error {
	if len(phone) > 50 {
		return shared.NewDomainError("INVALID_PHONE", "Phone cannot exceed 50 characters")
	}
	phoneRegex := regexp.MustCompile(`^[0-9+\-() ]+$`)
	if !phoneRegex.MatchString(phone) {
		return shared.NewDomainError("INVALID_PHONE", "Invalid phone format")
	}
	return nil
}

func validateEmail(email string) error {
	if len(email) > 200 {
		return shared.NewDomainError("INVALID_EMAIL", "Email cannot exceed 200 characters")
	}
	emailRegex := regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	if !emailRegex.MatchString(email) {
		return shared.NewDomainError("INVALID_EMAIL", "Invalid email format")
	}
	return nil
}
