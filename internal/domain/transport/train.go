package transport

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/RaminduDJay/supply-chain-management/internal/domain/shared"
	"github.com/RaminduDJay/supply-chain-management/internal/domain/shared/valueobject"
)

// VehicleStatus represents the operational status of a train or truck
type VehicleStatus string

const (
	VehicleStatusActive      VehicleStatus = "active"
	VehicleStatusMaintenance VehicleStatus = "maintenance"
	VehicleStatusRetired     VehicleStatus = "retired"
)

// Train represents a cargo train running from the central warehouse
// to the regional stores.
type Train struct {
	shared.BaseAggregateRoot
	Name           string
	CapacityWeight decimal.Decimal // kg
	CapacityVolume decimal.Decimal // cubic meters
	Status         VehicleStatus
}

// NewTrain creates a new train
func NewTrain(name string, capacityWeight, capacityVolume decimal.Decimal) (*Train, error) {
	if strings.TrimSpace(name) == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Train name cannot be empty")
	}
	if !capacityWeight.IsPositive() {
		return nil, shared.NewDomainError("INVALID_CAPACITY", "Capacity weight must be positive")
	}
	if !capacityVolume.IsPositive() {
		return nil, shared.NewDomainError("INVALID_CAPACITY", "Capacity volume must be positive")
	}

	return &Train{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              strings.TrimSpace(name),
		CapacityWeight:    capacityWeight,
		CapacityVolume:    capacityVolume,
		Status:            VehicleStatusActive,
	}, nil
}

// Capacity returns the train's cargo capacity as a load
func (t *Train) Capacity() valueobject.Load {
	load, _ := valueobject.NewLoad(t.CapacityWeight, t.CapacityVolume, 0)
	return load
}

// SendToMaintenance takes the train out of scheduling
func (t *Train) SendToMaintenance() error {
	if t.Status != VehicleStatusActive {
		return shared.NewDomainError("NOT_ACTIVE", "Only active trains can be sent to maintenance")
	}

	t.Status = VehicleStatusMaintenance
	t.UpdatedAt = time.Now()
	t.IncrementVersion()

	return nil
}

// ReturnToService brings the train back from maintenance
func (t *Train) ReturnToService() error {
	if t.Status != VehicleStatusMaintenance {
		return shared.NewDomainError("NOT_IN_MAINTENANCE", "Train is not in maintenance")
	}

	t.Status = VehicleStatusActive
	t.UpdatedAt = time.Now()
	t.IncrementVersion()

	return nil
}

// Retire permanently removes the train from the fleet
func (t *Train) Retire() error {
	if t.Status == VehicleStatusRetired {
		return shared.NewDomainError("ALREADY_RETIRED", "Train is already retired")
	}

	t.Status = VehicleStatusRetired
	t.UpdatedAt = time.Now()
	t.IncrementVersion()

	return nil
}

// IsAvailable returns true if the train can be scheduled
func (t *Train) IsAvailable() bool {
	return t.Status == VehicleStatusActive
}
