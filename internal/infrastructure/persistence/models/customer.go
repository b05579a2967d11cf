package models

import (
	"github.com/shopspring/decimal"

	"github.com/RaminduDJay/supply-chain-management/internal/domain/customer"
)

// CustomerModel is the persistence model for the Customer aggregate.
type CustomerModel struct {
	AggregateModel
	Name        string                  `gorm:"type:varchar(200);not null"`
	Type        customer.CustomerType   `gorm:"type:varchar(20);not null;default:'end'"`
	Status      customer.CustomerStatus `gorm:"type:varchar(20);not null;default:'active'"`
	ContactName string                  `gorm:"type:varchar(100)"`
	Phone       string                  `gorm:"type:varchar(50);index"`
	Email       string                  `gorm:"type:varchar(200);index"`
	Address     string                  `gorm:"type:text"`
	City        string                  `gorm:"type:varchar(100);index"`
	CreditLimit decimal.Decimal         `gorm:"type:decimal(18,2);not null;default:0"`
	Notes       string                  `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (CustomerModel) TableName() string {
	return "customers"
}

// ToDomain converts the persistence model to a domain Customer aggregate.
func (m *CustomerModel) ToDomain() *customer.Customer {
	return &customer.Customer{
		BaseAggregateRoot: m.ToDomainAggregateRoot(),
		Name:              m.Name,
		Type:              m.Type,
		Status:            m.Status,
		ContactName:       m.ContactName,
		Phone:             m.Phone,
		Email:             m.Email,
		Address:           m.Address,
		City:              m.City,
		CreditLimit:       m.CreditLimit,
		Notes:             m.Notes,
	}
}

// FromDomain populates the persistence model from a domain Customer aggregate.
func (m *CustomerModel) FromDomain(c *customer.Customer) {
	m.FromDomainAggregateRoot(c.BaseAggregateRoot)
	m.Name = c.Name
	m.Type = c.Type
	m.Status = c.Status
	m.ContactName = c.ContactName
	m.Phone = c.Phone
	m.Email = c.Email
	m.Address = c.Address
	m.City = c.City
	m.CreditLimit = c.CreditLimit
	m.Notes = c.Notes
}

// CustomerModelFromDomain creates a new persistence model from a domain Customer aggregate.
func CustomerModelFromDomain(c *customer.Customer) *CustomerModel {
	m := &CustomerModel{}
	m.FromDomain(c)
	return m
}
