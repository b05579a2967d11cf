package customer

import (
	"github.com/RaminduDJay/supply-chain-management/internal/domain/shared"
)

// Aggregate type constant for Customer
const AggregateTypeCustomer = "Customer"

// Customer domain event types
const (
	EventTypeCustomerCreated     = "CustomerCreated"
	EventTypeCustomerTypeChanged = "CustomerTypeChanged"
)

// CustomerCreatedEvent is published when a customer profile is created
type CustomerCreatedEvent struct {
	shared.BaseDomainEvent
	Name string       `json:"name"`
	Type CustomerType `json:"type"`
}

// NewCustomerCreatedEvent creates a new CustomerCreatedEvent
func NewCustomerCreatedEvent(customer *Customer) *CustomerCreatedEvent {
	return &CustomerCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeCustomerCreated, AggregateTypeCustomer, customer.ID),
		Name:            customer.Name,
		Type:            customer.Type,
	}
}

// CustomerTypeChangedEvent is published when a customer moves pricing tiers
type CustomerTypeChangedEvent struct {
	shared.BaseDomainEvent
	OldType CustomerType `json:"old_type"`
	NewType CustomerType `json:"new_type"`
}

// NewCustomerTypeChangedEvent creates a new CustomerTypeChangedEvent
func NewCustomerTypeChangedEvent(customer *Customer, oldType, newType CustomerType) *CustomerTypeChangedEvent {
	return &CustomerTypeChangedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeCustomerTypeChanged, AggregateTypeCustomer, customer.ID),
		OldType:         oldType,
		NewType:         newType,
	}
}
