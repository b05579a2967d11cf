package inventory

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/RaminduDJay/supply-chain-management/internal/domain/shared"
)

// StoreStatus represents the operational status of a store
type StoreStatus string

const (
	StoreStatusActive   StoreStatus = "active"
	StoreStatusInactive StoreStatus = "inactive"
)

// Store represents a regional distribution store. Each store sits on
// the rail line, holds a warehouse, and runs truck routes to the
// cities it serves.
type Store struct {
	shared.BaseAggregateRoot
	Name      string
	City      string
	Address   string
	Phone     string
	RailKM    decimal.Decimal // Rail distance from the central warehouse
	Status    StoreStatus
	ManagerID *uuid.UUID
}

// NewStore creates a new store
func NewStore(name, city string, railKM decimal.Decimal) (*Store, error) {
	if strings.TrimSpace(name) == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Store name cannot be empty")
	}
	if strings.TrimSpace(city) == "" {
		return nil, shared.NewDomainError("INVALID_CITY", "Store city cannot be empty")
	}
	if railKM.IsNegative() {
		return nil, shared.NewDomainError("INVALID_DISTANCE", "Rail distance cannot be negative")
	}

	return &Store{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              strings.TrimSpace(name),
		City:              strings.TrimSpace(city),
		RailKM:            railKM,
		Status:            StoreStatusActive,
	}, nil
}

// Update updates the store's basic information
func (s *Store) Update(name, address, phone string) error {
	if strings.TrimSpace(name) == "" {
		return shared.NewDomainError("INVALID_NAME", "Store name cannot be empty")
	}

	s.Name = strings.TrimSpace(name)
	s.Address = address
	s.Phone = phone
	s.UpdatedAt = time.Now()
	s.IncrementVersion()

	return nil
}

// AssignManager records the store manager's user account
func (s *Store) AssignManager(managerID uuid.UUID) error {
	if managerID == uuid.Nil {
		return shared.NewDomainError("INVALID_MANAGER", "Manager ID cannot be empty")
	}

	s.ManagerID = &managerID
	s.UpdatedAt = time.Now()
	s.IncrementVersion()

	return nil
}

// Deactivate takes the store out of service
func (s *Store) Deactivate() error {
	if s.Status == StoreStatusInactive {
		return shared.NewDomainError("ALREADY_INACTIVE", "Store is already inactive")
	}

	s.Status = StoreStatusInactive
	s.UpdatedAt = time.Now()
	s.IncrementVersion()

	return nil
}

// Activate returns the store to service
func (s *Store) Activate() error {
	if s.Status == StoreStatusActive {
		return shared.NewDomainError("ALREADY_ACTIVE", "Store is already active")
	}

	s.Status = StoreStatusActive
	s.UpdatedAt = time.Now()
	s.IncrementVersion()

	return nil
}

// IsActive returns true if the store is in service
func (s *Store) IsActive() bool {
	return s.Status == StoreStatusActive
}
