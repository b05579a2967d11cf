package transport

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/RaminduDJay/supply-chain-management/internal/domain/shared"
	"github.com/RaminduDJay/supply-chain-management/internal/domain/shared/valueobject"
)

// Truck represents a delivery truck owned by a regional store.
type Truck struct {
	shared.BaseAggregateRoot
	StoreID        uuid.UUID
	PlateNumber    string
	CapacityWeight decimal.Decimal // kg
	CapacityVolume decimal.Decimal // cubic meters
	Status         VehicleStatus
}

// NewTruck registers a truck at a store
func NewTruck(storeID uuid.UUID, plateNumber string, capacityWeight, capacityVolume decimal.Decimal) (*Truck, error) {
	if storeID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_STORE", "Store ID cannot be empty")
	}
	plateNumber = strings.ToUpper(strings.TrimSpace(plateNumber))
	if plateNumber == "" {
		return nil, shared.NewDomainError("INVALID_PLATE", "Plate number cannot be empty")
	}
	if len(plateNumber) > 20 {
		return nil, shared.NewDomainError("INVALID_PLATE", "Plate number cannot exceed 20 characters")
	}
	if !capacityWeight.IsPositive() {
		return nil, shared.NewDomainError("INVALID_CAPACITY", "Capacity weight must be positive")
	}
	if !capacityVolume.IsPositive() {
		return nil, shared.NewDomainError("INVALID_CAPACITY", "Capacity volume must be positive")
	}

	return &Truck{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		StoreID:           storeID,
		PlateNumber:       plateNumber,
		CapacityWeight:    capacityWeight,
		CapacityVolume:    capacityVolume,
		Status:            VehicleStatusActive,
	}, nil
}

// Capacity returns the truck's cargo capacity as a load
func (t *Truck) Capacity() valueobject.Load {
	load, _ := valueobject.NewLoad(t.CapacityWeight, t.CapacityVolume, 0)
	return load
}

// SendToMaintenance takes the truck out of scheduling
func (t *Truck) SendToMaintenance() error {
	if t.Status != VehicleStatusActive {
		return shared.NewDomainError("NOT_ACTIVE", "Only active trucks can be sent to maintenance")
	}

	t.Status = VehicleStatusMaintenance
	t.UpdatedAt = time.Now()
	t.IncrementVersion()

	return nil
}

// ReturnToService brings the truck back from maintenance
func (t *Truck) ReturnToService() error {
	if t.Status != VehicleStatusMaintenance {
		return shared.NewDomainError("NOT_IN_MAINTENANCE", "Truck is not in maintenance")
	}

	t.Status = VehicleStatusActive
	t.UpdatedAt = time.Now()
	t.IncrementVersion()

	return nil
}

// Retire permanently removes the truck from the fleet
func (t *Truck) Retire() error {
	if t.Status == VehicleStatusRetired {
		return shared.NewDomainError("ALREADY_RETIRED", "Truck is already retired")
	}

	t.Status = VehicleStatusRetired
	t.UpdatedAt = time.Now()
	t.IncrementVersion()

	return nil
}

// IsAvailable returns true if the truck can be scheduled
func (t *Truck) IsAvailable() bool {
	return t.Status == VehicleStatusActive
}
