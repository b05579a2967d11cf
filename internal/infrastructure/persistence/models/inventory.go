package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/RaminduDJay/supply-chain-management/internal/domain/inventory"
)

// StoreModel is the persistence model for the Store aggregate.
type StoreModel struct {
	AggregateModel
	Name      string                `gorm:"type:varchar(200);not null"`
	City      string                `gorm:"type:varchar(100);not null;index"`
	Address   string                `gorm:"type:text"`
	Phone     string                `gorm:"type:varchar(50)"`
	RailKM    decimal.Decimal       `gorm:"type:decimal(10,2);not null"`
	Status    inventory.StoreStatus `gorm:"type:varchar(20);not null;default:'active'"`
	ManagerID *uuid.UUID            `gorm:"type:uuid;index"`
}

// TableName returns the table name for GORM
func (StoreModel) TableName() string {
	return "stores"
}

// ToDomain converts the persistence model to a domain Store aggregate.
func (m *StoreModel) ToDomain() *inventory.Store {
	return &inventory.Store{
		BaseAggregateRoot: m.ToDomainAggregateRoot(),
		Name:              m.Name,
		City:              m.City,
		Address:           m.Address,
		Phone:             m.Phone,
		RailKM:            m.RailKM,
		Status:            m.Status,
		ManagerID:         m.ManagerID,
	}
}

// FromDomain populates the persistence model from a domain Store aggregate.
func (m *StoreModel) FromDomain(s *inventory.Store) {
	m.FromDomainAggregateRoot(s.BaseAggregateRoot)
	m.Name = s.Name
	m.City = s.City
	m.Address = s.Address
	m.Phone = s.Phone
	m.RailKM = s.RailKM
	m.Status = s.Status
	m.ManagerID = s.ManagerID
}

// StoreModelFromDomain creates a new persistence model from a domain Store aggregate.
func StoreModelFromDomain(s *inventory.Store) *StoreModel {
	m := &StoreModel{}
	m.FromDomain(s)
	return m
}

// StoreInventoryModel is the persistence model for a store-item stock record.
type StoreInventoryModel struct {
	AggregateModel
	StoreID      uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_store_item,priority:1"`
	ItemID       uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_store_item,priority:2"`
	Quantity     int       `gorm:"not null;default:0"`
	ReorderLevel int       `gorm:"not null;default:0"`
}

// TableName returns the table name for GORM
func (StoreInventoryModel) TableName() string {
	return "store_inventories"
}

// ToDomain converts the persistence model to a domain StoreInventory aggregate.
func (m *StoreInventoryModel) ToDomain() *inventory.StoreInventory {
	return &inventory.StoreInventory{
		BaseAggregateRoot: m.ToDomainAggregateRoot(),
		StoreID:           m.StoreID,
		ItemID:            m.ItemID,
		Quantity:          m.Quantity,
		ReorderLevel:      m.ReorderLevel,
	}
}

// FromDomain populates the persistence model from a domain StoreInventory aggregate.
func (m *StoreInventoryModel) FromDomain(si *inventory.StoreInventory) {
	m.FromDomainAggregateRoot(si.BaseAggregateRoot)
	m.StoreID = si.StoreID
	m.ItemID = si.ItemID
	m.Quantity = si.Quantity
	m.ReorderLevel = si.ReorderLevel
}

// StoreInventoryModelFromDomain creates a new persistence model from a domain StoreInventory aggregate.
func StoreInventoryModelFromDomain(si *inventory.StoreInventory) *StoreInventoryModel {
	m := &StoreInventoryModel{}
	m.FromDomain(si)
	return m
}

// StockMovementModel is the persistence model for a stock movement record.
type StockMovementModel struct {
	ID            uuid.UUID              `gorm:"type:uuid;primary_key"`
	StoreID       uuid.UUID              `gorm:"type:uuid;not null;index:idx_movement_store_item,priority:1"`
	ItemID        uuid.UUID              `gorm:"type:uuid;not null;index:idx_movement_store_item,priority:2"`
	Type          inventory.MovementType `gorm:"type:varchar(20);not null"`
	Quantity      int                    `gorm:"not null"`
	QuantityAfter int                    `gorm:"not null"`
	Reference     string                 `gorm:"type:varchar(100);index"`
	ActorID       *uuid.UUID             `gorm:"type:uuid"`
	CreatedAt     time.Time              `gorm:"not null;index"`
}

// TableName returns the table name for GORM
func (StockMovementModel) TableName() string {
	return "stock_movements"
}

// ToDomain converts the persistence model to a domain StockMovement record.
func (m *StockMovementModel) ToDomain() *inventory.StockMovement {
	return &inventory.StockMovement{
		ID:            m.ID,
		StoreID:       m.StoreID,
		ItemID:        m.ItemID,
		Type:          m.Type,
		Quantity:      m.Quantity,
		QuantityAfter: m.QuantityAfter,
		Reference:     m.Reference,
		ActorID:       m.ActorID,
		CreatedAt:     m.CreatedAt,
	}
}

// StockMovementModelFromDomain creates a new persistence model from a domain StockMovement record.
func StockMovementModelFromDomain(sm *inventory.StockMovement) *StockMovementModel {
	return &StockMovementModel{
		ID:            sm.ID,
		StoreID:       sm.StoreID,
		ItemID:        sm.ItemID,
		Type:          sm.Type,
		Quantity:      sm.Quantity,
		QuantityAfter: sm.QuantityAfter,
		Reference:     sm.Reference,
		ActorID:       sm.ActorID,
		CreatedAt:     sm.CreatedAt,
	}
}
