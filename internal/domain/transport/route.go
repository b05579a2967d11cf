package transport

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/RaminduDJay/supply-chain-management/internal/domain/ordering"
	"github.com/RaminduDJay/supply-chain-management/internal/domain/shared"
)

// RouteStatus represents the status of a delivery route
type RouteStatus string

const (
	RouteStatusActive   RouteStatus = "active"
	RouteStatusInactive RouteStatus = "inactive"
)

// Route represents a truck delivery route run by a store. The route's
// class and distance drive the shipping cost of orders delivered on
// it, and its estimated hours count against driver weekly limits.
type Route struct {
	shared.BaseAggregateRoot
	StoreID        uuid.UUID
	Name           string
	Class          ordering.RouteClass
	DistanceKM     decimal.Decimal
	EstimatedHours decimal.Decimal // Hours one run of the route takes
	Status         RouteStatus
}

// NewRoute creates a new delivery route for a store
func NewRoute(storeID uuid.UUID, name string, class ordering.RouteClass, distanceKM, estimatedHours decimal.Decimal) (*Route, error) {
	if storeID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_STORE", "Store ID cannot be empty")
	}
	if strings.TrimSpace(name) == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Route name cannot be empty")
	}
	if !class.IsValid() {
		return nil, shared.NewDomainError("INVALID_ROUTE_CLASS", "Unknown route class")
	}
	if !distanceKM.IsPositive() {
		return nil, shared.NewDomainError("INVALID_DISTANCE", "Route distance must be positive")
	}
	if !estimatedHours.IsPositive() {
		return nil, shared.NewDomainError("INVALID_HOURS", "Estimated hours must be positive")
	}

	return &Route{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		StoreID:           storeID,
		Name:              strings.TrimSpace(name),
		Class:             class,
		DistanceKM:        distanceKM,
		EstimatedHours:    estimatedHours,
		Status:            RouteStatusActive,
	}, nil
}

// Update updates the route's parameters
func (r *Route) Update(name string, class ordering.RouteClass, distanceKM, estimatedHours decimal.Decimal) error {
	if strings.TrimSpace(name) == "" {
		return shared.NewDomainError("INVALID_NAME", "Route name cannot be empty")
	}
	if !class.IsValid() {
		return shared.NewDomainError("INVALID_ROUTE_CLASS", "Unknown route class")
	}
	if !distanceKM.IsPositive() {
		return shared.NewDomainError("INVALID_DISTANCE", "Route distance must be positive")
	}
	if !estimatedHours.IsPositive() {
		return shared.NewDomainError("INVALID_HOURS", "Estimated hours must be positive")
	}

	r.Name = strings.TrimSpace(name)
	r.Class = class
	r.DistanceKM = distanceKM
	r.EstimatedHours = estimatedHours
	r.UpdatedAt = time.Now()
	r.IncrementVersion()

	return nil
}

// Deactivate takes the route out of service
func (r *Route) Deactivate() error {
	if r.Status == RouteStatusInactive {
		return shared.NewDomainError("ALREADY_INACTIVE", "Route is already inactive")
	}

	r.Status = RouteStatusInactive
	r.UpdatedAt = time.Now()
	r.IncrementVersion()

	return nil
}

// Activate returns the route to service
func (r *Route) Activate() error {
	if r.Status == RouteStatusActive {
		return shared.NewDomainError("ALREADY_ACTIVE", "Route is already active")
	}

	r.Status = RouteStatusActive
	r.UpdatedAt = time.Now()
	r.IncrementVersion()

	return nil
}

// IsActive returns true if the route is in service
func (r *Route) IsActive() bool {
	return r.Status == RouteStatusActive
}
