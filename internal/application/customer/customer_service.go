package customer

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/RaminduDJay/supply-chain-management/internal/domain/customer"
	"github.com/RaminduDJay/supply-chain-management/internal/domain/shared"
)

// CustomerService handles customer profile management. Type and credit
// limit changes are main manager operations, profile edits are open to
// the account owner.
type CustomerService struct {
	customerRepo customer.CustomerRepository
	publisher    shared.EventPublisher
	logger       *zap.Logger
}

// NewCustomerService creates a new customer service
func NewCustomerService(customerRepo customer.CustomerRepository, publisher shared.EventPublisher, logger *zap.Logger) *CustomerService {
	return &CustomerService{
		customerRepo: customerRepo,
		publisher:    publisher,
		logger:       logger,
	}
}

// GetCustomer returns a single customer by ID
func (s *CustomerService) GetCustomer(ctx context.Context, id uuid.UUID) (*CustomerInfo, error) {
	c, err := s.findCustomer(ctx, id)
	if err != nil {
		return nil, err
	}
	info := NewCustomerInfo(c)
	return &info, nil
}

// ListCustomers returns a page of customers matching the filter
func (s *CustomerService) ListCustomers(ctx context.Context, input ListCustomersInput) (*ListCustomersResult, error) {
	filter := customer.NewCustomerFilter()
	filter.Keyword = input.Keyword
	filter.City = input.City
	if input.Type != "" {
		ct := customer.CustomerType(input.Type)
		if !ct.IsValid() {
			return nil, shared.NewDomainError("INVALID_CUSTOMER_TYPE", "Unknown customer type")
		}
		filter.Type = &ct
	}
	if input.Status != "" {
		status := customer.CustomerStatus(input.Status)
		filter.Status = &status
	}
	if input.Page > 0 {
		filter.Page = input.Page
	}
	if input.PageSize > 0 {
		filter.PageSize = input.PageSize
	}

	customers, total, err := s.customerRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}

	infos := make([]CustomerInfo, 0, len(customers))
	for _, c := range customers {
		infos = append(infos, NewCustomerInfo(c))
	}

	return &ListCustomersResult{
		Customers: infos,
		Total:     total,
		Page:      filter.Page,
		PageSize:  filter.PageSize,
	}, nil
}

// UpdateCustomer changes a customer's profile fields
func (s *CustomerService) UpdateCustomer(ctx context.Context, input UpdateCustomerInput) (*CustomerInfo, error) {
	c, err := s.findCustomer(ctx, input.CustomerID)
	if err != nil {
		return nil, err
	}

	if input.Name != "" {
		if err := c.Update(input.Name); err != nil {
			return nil, err
		}
	}
	if input.ContactName != "" || input.Phone != "" || input.Email != "" {
		if err := c.SetContact(input.ContactName, input.Phone, input.Email); err != nil {
			return nil, err
		}
	}
	if input.Address != "" {
		if err := c.SetAddress(input.Address, input.City); err != nil {
			return nil, err
		}
	}

	if err := s.saveCustomer(ctx, c); err != nil {
		return nil, err
	}

	info := NewCustomerInfo(c)
	return &info, nil
}

// ChangeCustomerType moves a customer to a different pricing tier.
// The new discount rate applies to orders placed after the change.
func (s *CustomerService) ChangeCustomerType(ctx context.Context, input ChangeCustomerTypeInput) (*CustomerInfo, error) {
	c, err := s.findCustomer(ctx, input.CustomerID)
	if err != nil {
		return nil, err
	}

	oldType := c.Type
	if err := c.ChangeType(input.NewType); err != nil {
		return nil, err
	}
	if err := s.saveCustomer(ctx, c); err != nil {
		return nil, err
	}

	s.logger.Info("Customer type changed",
		zap.String("customer_id", c.ID.String()),
		zap.String("old_type", string(oldType)),
		zap.String("new_type", string(c.Type)))

	info := NewCustomerInfo(c)
	return &info, nil
}

// SetCreditLimit changes a customer's credit limit
func (s *CustomerService) SetCreditLimit(ctx context.Context, input SetCreditLimitInput) error {
	return s.mutateCustomer(ctx, input.CustomerID, func(c *customer.Customer) error {
		return c.SetCreditLimit(input.CreditLimit)
	})
}

// SuspendCustomer blocks a customer from placing orders
func (s *CustomerService) SuspendCustomer(ctx context.Context, id uuid.UUID) error {
	return s.mutateCustomer(ctx, id, func(c *customer.Customer) error { return c.Suspend() })
}

// ActivateCustomer lifts a suspension or reactivates an inactive customer
func (s *CustomerService) ActivateCustomer(ctx context.Context, id uuid.UUID) error {
	return s.mutateCustomer(ctx, id, func(c *customer.Customer) error { return c.Activate() })
}

// DeactivateCustomer marks a customer inactive
func (s *CustomerService) DeactivateCustomer(ctx context.Context, id uuid.UUID) error {
	return s.mutateCustomer(ctx, id, func(c *customer.Customer) error { return c.Deactivate() })
}

func (s *CustomerService) findCustomer(ctx context.Context, id uuid.UUID) (*customer.Customer, error) {
	c, err := s.customerRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("CUSTOMER_NOT_FOUND", "Customer not found")
		}
		return nil, err
	}
	return c, nil
}

func (s *CustomerService) saveCustomer(ctx context.Context, c *customer.Customer) error {
	if err := s.customerRepo.Update(ctx, c); err != nil {
		s.logger.Error("Failed to update customer", zap.Error(err))
		return err
	}
	events := c.GetDomainEvents()
	if s.publisher != nil && len(events) > 0 {
		if err := s.publisher.Publish(ctx, events...); err != nil {
			s.logger.Error("Failed to publish domain events", zap.Error(err))
		}
	}
	c.ClearDomainEvents()
	return nil
}

func (s *CustomerService) mutateCustomer(ctx context.Context, id uuid.UUID, fn func(*customer.Customer) error) error {
	c, err := s.findCustomer(ctx, id)
	if err != nil {
		return err
	}
	if err := fn(c); err != nil {
		return err
	}
	return s.saveCustomer(ctx, c)
}
