package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/RaminduDJay/supply-chain-management/internal/domain/ordering"
	"github.com/RaminduDJay/supply-chain-management/internal/domain/transport"
)

// TrainModel is the persistence model for the Train aggregate.
type TrainModel struct {
	AggregateModel
	Name           string                  `gorm:"type:varchar(100);not null;uniqueIndex"`
	CapacityWeight decimal.Decimal         `gorm:"type:decimal(12,3);not null"`
	CapacityVolume decimal.Decimal         `gorm:"type:decimal(12,4);not null"`
	Status         transport.VehicleStatus `gorm:"type:varchar(20);not null;default:'active'"`
}

// TableName returns the table name for GORM
func (TrainModel) TableName() string {
	return "trains"
}

// ToDomain converts the persistence model to a domain Train aggregate.
func (m *TrainModel) ToDomain() *transport.Train {
	return &transport.Train{
		BaseAggregateRoot: m.ToDomainAggregateRoot(),
		Name:              m.Name,
		CapacityWeight:    m.CapacityWeight,
		CapacityVolume:    m.CapacityVolume,
		Status:            m.Status,
	}
}

// FromDomain populates the persistence model from a domain Train aggregate.
func (m *TrainModel) FromDomain(t *transport.Train) {
	m.FromDomainAggregateRoot(t.BaseAggregateRoot)
	m.Name = t.Name
	m.CapacityWeight = t.CapacityWeight
	m.CapacityVolume = t.CapacityVolume
	m.Status = t.Status
}

// TrainModelFromDomain creates a new persistence model from a domain Train aggregate.
func TrainModelFromDomain(t *transport.Train) *TrainModel {
	m := &TrainModel{}
	m.FromDomain(t)
	return m
}

// TrainScheduleModel is the persistence model for the TrainSchedule aggregate.
type TrainScheduleModel struct {
	AggregateModel
	TrainID        uuid.UUID                `gorm:"type:uuid;not null;index"`
	StoreID        uuid.UUID                `gorm:"type:uuid;not null;index"`
	DepartureAt    time.Time                `gorm:"not null;index"`
	CapacityWeight decimal.Decimal          `gorm:"type:decimal(12,3);not null"`
	CapacityVolume decimal.Decimal          `gorm:"type:decimal(12,4);not null"`
	CapacityItems  int                      `gorm:"not null;default:0"`
	ReservedWeight decimal.Decimal          `gorm:"type:decimal(12,3);not null;default:0"`
	ReservedVolume decimal.Decimal          `gorm:"type:decimal(12,4);not null;default:0"`
	ReservedItems  int                      `gorm:"not null;default:0"`
	OrderCount     int                      `gorm:"not null;default:0"`
	Status         transport.ScheduleStatus `gorm:"type:varchar(20);not null;default:'scheduled'"`
	DepartedAt     *time.Time
	CompletedAt    *time.Time
}

// TableName returns the table name for GORM
func (TrainScheduleModel) TableName() string {
	return "train_schedules"
}

// ToDomain converts the persistence model to a domain TrainSchedule aggregate.
func (m *TrainScheduleModel) ToDomain() *transport.TrainSchedule {
	return &transport.TrainSchedule{
		BaseAggregateRoot: m.ToDomainAggregateRoot(),
		TrainID:           m.TrainID,
		StoreID:           m.StoreID,
		DepartureAt:       m.DepartureAt,
		CapacityWeight:    m.CapacityWeight,
		CapacityVolume:    m.CapacityVolume,
		CapacityItems:     m.CapacityItems,
		ReservedWeight:    m.ReservedWeight,
		ReservedVolume:    m.ReservedVolume,
		ReservedItems:     m.ReservedItems,
		OrderCount:        m.OrderCount,
		Status:            m.Status,
		DepartedAt:        m.DepartedAt,
		CompletedAt:       m.CompletedAt,
	}
}

// FromDomain populates the persistence model from a domain TrainSchedule aggregate.
func (m *TrainScheduleModel) FromDomain(s *transport.TrainSchedule) {
	m.FromDomainAggregateRoot(s.BaseAggregateRoot)
	m.TrainID = s.TrainID
	m.StoreID = s.StoreID
	m.DepartureAt = s.DepartureAt
	m.CapacityWeight = s.CapacityWeight
	m.CapacityVolume = s.CapacityVolume
	m.CapacityItems = s.CapacityItems
	m.ReservedWeight = s.ReservedWeight
	m.ReservedVolume = s.ReservedVolume
	m.ReservedItems = s.ReservedItems
	m.OrderCount = s.OrderCount
	m.Status = s.Status
	m.DepartedAt = s.DepartedAt
	m.CompletedAt = s.CompletedAt
}

// TrainScheduleModelFromDomain creates a new persistence model from a domain TrainSchedule aggregate.
func TrainScheduleModelFromDomain(s *transport.TrainSchedule) *TrainScheduleModel {
	m := &TrainScheduleModel{}
	m.FromDomain(s)
	return m
}

// TruckModel is the persistence model for the Truck aggregate.
type TruckModel struct {
	AggregateModel
	StoreID        uuid.UUID               `gorm:"type:uuid;not null;index"`
	PlateNumber    string                  `gorm:"type:varchar(20);not null;uniqueIndex"`
	CapacityWeight decimal.Decimal         `gorm:"type:decimal(12,3);not null"`
	CapacityVolume decimal.Decimal         `gorm:"type:decimal(12,4);not null"`
	Status         transport.VehicleStatus `gorm:"type:varchar(20);not null;default:'active'"`
}

// TableName returns the table name for GORM
func (TruckModel) TableName() string {
	return "trucks"
}

// ToDomain converts the persistence model to a domain Truck aggregate.
func (m *TruckModel) ToDomain() *transport.Truck {
	return &transport.Truck{
		BaseAggregateRoot: m.ToDomainAggregateRoot(),
		StoreID:           m.StoreID,
		PlateNumber:       m.PlateNumber,
		CapacityWeight:    m.CapacityWeight,
		CapacityVolume:    m.CapacityVolume,
		Status:            m.Status,
	}
}

// FromDomain populates the persistence model from a domain Truck aggregate.
func (m *TruckModel) FromDomain(t *transport.Truck) {
	m.FromDomainAggregateRoot(t.BaseAggregateRoot)
	m.StoreID = t.StoreID
	m.PlateNumber = t.PlateNumber
	m.CapacityWeight = t.CapacityWeight
	m.CapacityVolume = t.CapacityVolume
	m.Status = t.Status
}

// TruckModelFromDomain creates a new persistence model from a domain Truck aggregate.
func TruckModelFromDomain(t *transport.Truck) *TruckModel {
	m := &TruckModel{}
	m.FromDomain(t)
	return m
}

// TruckScheduleModel is the persistence model for the TruckSchedule aggregate.
type TruckScheduleModel struct {
	AggregateModel
	TruckID        uuid.UUID                `gorm:"type:uuid;not null;index"`
	StoreID        uuid.UUID                `gorm:"type:uuid;not null;index"`
	RouteID        uuid.UUID                `gorm:"type:uuid;not null;index"`
	DriverID       uuid.UUID                `gorm:"type:uuid;not null;index"`
	AssistantID    uuid.UUID                `gorm:"type:uuid;not null;index"`
	DepartureAt    time.Time                `gorm:"not null;index"`
	Hours          decimal.Decimal          `gorm:"type:decimal(6,2);not null"`
	CapacityWeight decimal.Decimal          `gorm:"type:decimal(12,3);not null"`
	CapacityVolume decimal.Decimal          `gorm:"type:decimal(12,4);not null"`
	CapacityItems  int                      `gorm:"not null;default:0"`
	ReservedWeight decimal.Decimal          `gorm:"type:decimal(12,3);not null;default:0"`
	ReservedVolume decimal.Decimal          `gorm:"type:decimal(12,4);not null;default:0"`
	ReservedItems  int                      `gorm:"not null;default:0"`
	OrderCount     int                      `gorm:"not null;default:0"`
	Status         transport.ScheduleStatus `gorm:"type:varchar(20);not null;default:'scheduled'"`
	DepartedAt     *time.Time
	CompletedAt    *time.Time
}

// TableName returns the table name for GORM
func (TruckScheduleModel) TableName() string {
	return "truck_schedules"
}

// ToDomain converts the persistence model to a domain TruckSchedule aggregate.
func (m *TruckScheduleModel) ToDomain() *transport.TruckSchedule {
	return &transport.TruckSchedule{
		BaseAggregateRoot: m.ToDomainAggregateRoot(),
		TruckID:           m.TruckID,
		StoreID:           m.StoreID,
		RouteID:           m.RouteID,
		DriverID:          m.DriverID,
		AssistantID:       m.AssistantID,
		DepartureAt:       m.DepartureAt,
		Hours:             m.Hours,
		CapacityWeight:    m.CapacityWeight,
		CapacityVolume:    m.CapacityVolume,
		CapacityItems:     m.CapacityItems,
		ReservedWeight:    m.ReservedWeight,
		ReservedVolume:    m.ReservedVolume,
		ReservedItems:     m.ReservedItems,
		OrderCount:        m.OrderCount,
		Status:            m.Status,
		DepartedAt:        m.DepartedAt,
		CompletedAt:       m.CompletedAt,
	}
}

// FromDomain populates the persistence model from a domain TruckSchedule aggregate.
func (m *TruckScheduleModel) FromDomain(s *transport.TruckSchedule) {
	m.FromDomainAggregateRoot(s.BaseAggregateRoot)
	m.TruckID = s.TruckID
	m.StoreID = s.StoreID
	m.RouteID = s.RouteID
	m.DriverID = s.DriverID
	m.AssistantID = s.AssistantID
	m.DepartureAt = s.DepartureAt
	m.Hours = s.Hours
	m.CapacityWeight = s.CapacityWeight
	m.CapacityVolume = s.CapacityVolume
	m.CapacityItems = s.CapacityItems
	m.ReservedWeight = s.ReservedWeight
	m.ReservedVolume = s.ReservedVolume
	m.ReservedItems = s.ReservedItems
	m.OrderCount = s.OrderCount
	m.Status = s.Status
	m.DepartedAt = s.DepartedAt
	m.CompletedAt = s.CompletedAt
}

// TruckScheduleModelFromDomain creates a new persistence model from a domain TruckSchedule aggregate.
func TruckScheduleModelFromDomain(s *transport.TruckSchedule) *TruckScheduleModel {
	m := &TruckScheduleModel{}
	m.FromDomain(s)
	return m
}

// RouteModel is the persistence model for the Route aggregate.
type RouteModel struct {
	AggregateModel
	StoreID        uuid.UUID             `gorm:"type:uuid;not null;index"`
	Name           string                `gorm:"type:varchar(200);not null"`
	Class          ordering.RouteClass   `gorm:"type:varchar(20);not null;default:'local'"`
	DistanceKM     decimal.Decimal       `gorm:"type:decimal(10,2);not null"`
	EstimatedHours decimal.Decimal       `gorm:"type:decimal(6,2);not null"`
	Status         transport.RouteStatus `gorm:"type:varchar(20);not null;default:'active'"`
}

// TableName returns the table name for GORM
func (RouteModel) TableName() string {
	return "routes"
}

// ToDomain converts the persistence model to a domain Route aggregate.
func (m *RouteModel) ToDomain() *transport.Route {
	return &transport.Route{
		BaseAggregateRoot: m.ToDomainAggregateRoot(),
		StoreID:           m.StoreID,
		Name:              m.Name,
		Class:             m.Class,
		DistanceKM:        m.DistanceKM,
		EstimatedHours:    m.EstimatedHours,
		Status:            m.Status,
	}
}

// FromDomain populates the persistence model from a domain Route aggregate.
func (m *RouteModel) FromDomain(r *transport.Route) {
	m.FromDomainAggregateRoot(r.BaseAggregateRoot)
	m.StoreID = r.StoreID
	m.Name = r.Name
	m.Class = r.Class
	m.DistanceKM = r.DistanceKM
	m.EstimatedHours = r.EstimatedHours
	m.Status = r.Status
}

// RouteModelFromDomain creates a new persistence model from a domain Route aggregate.
func RouteModelFromDomain(r *transport.Route) *RouteModel {
	m := &RouteModel{}
	m.FromDomain(r)
	return m
}

// TransportStaffModel is the persistence model for the TransportStaff aggregate.
type TransportStaffModel struct {
	AggregateModel
	StoreID     uuid.UUID             `gorm:"type:uuid;not null;index"`
	Name        string                `gorm:"type:varchar(200);not null"`
	Role        transport.StaffRole   `gorm:"type:varchar(20);not null"`
	Phone       string                `gorm:"type:varchar(50)"`
	WeeklyHours decimal.Decimal       `gorm:"type:decimal(6,2);not null;default:0"`
	Status      transport.StaffStatus `gorm:"type:varchar(20);not null;default:'active'"`
}

// TableName returns the table name for GORM
func (TransportStaffModel) TableName() string {
	return "transport_staff"
}

// ToDomain converts the persistence model to a domain TransportStaff aggregate.
func (m *TransportStaffModel) ToDomain() *transport.TransportStaff {
	return &transport.TransportStaff{
		BaseAggregateRoot: m.ToDomainAggregateRoot(),
		StoreID:           m.StoreID,
		Name:              m.Name,
		Role:              m.Role,
		Phone:             m.Phone,
		WeeklyHours:       m.WeeklyHours,
		Status:            m.Status,
	}
}

// FromDomain populates the persistence model from a domain TransportStaff aggregate.
func (m *TransportStaffModel) FromDomain(s *transport.TransportStaff) {
	m.FromDomainAggregateRoot(s.BaseAggregateRoot)
	m.StoreID = s.StoreID
	m.Name = s.Name
	m.Role = s.Role
	m.Phone = s.Phone
	m.WeeklyHours = s.WeeklyHours
	m.Status = s.Status
}

// TransportStaffModelFromDomain creates a new persistence model from a domain TransportStaff aggregate.
func TransportStaffModelFromDomain(s *transport.TransportStaff) *TransportStaffModel {
	m := &TransportStaffModel{}
	m.FromDomain(s)
	return m
}
