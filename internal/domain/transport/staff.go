package transport

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/RaminduDJay/supply-chain-management/internal/domain/shared"
)

// StaffRole distinguishes drivers from driver assistants. Union rules
// cap drivers at 40 hours a week and assistants at 60.
type StaffRole string

const (
	StaffRoleDriver    StaffRole = "driver"
	StaffRoleAssistant StaffRole = "assistant"
)

// IsValid checks if the staff role is known
func (r StaffRole) IsValid() bool {
	return r == StaffRoleDriver || r == StaffRoleAssistant
}

// MaxWeeklyHours returns the weekly working hour cap for the role
func (r StaffRole) MaxWeeklyHours() decimal.Decimal {
	if r == StaffRoleAssistant {
		return decimal.NewFromInt(60)
	}
	return decimal.NewFromInt(40)
}

// StaffStatus represents the employment status of transport staff
type StaffStatus string

const (
	StaffStatusActive   StaffStatus = "active"
	StaffStatusOnLeave  StaffStatus = "on_leave"
	StaffStatusInactive StaffStatus = "inactive"
)

// TransportStaff represents a driver or driver assistant employed at
// a store. Weekly hours accumulate as truck runs are scheduled and
// reset at the start of each week.
type TransportStaff struct {
	shared.BaseAggregateRoot
	StoreID     uuid.UUID
	Name        string
	Role        StaffRole
	Phone       string
	WeeklyHours decimal.Decimal
	Status      StaffStatus
}

// NewTransportStaff hires a driver or assistant at a store
func NewTransportStaff(storeID uuid.UUID, name string, role StaffRole) (*TransportStaff, error) {
	if storeID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_STORE", "Store ID cannot be empty")
	}
	if strings.TrimSpace(name) == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Staff name cannot be empty")
	}
	if !role.IsValid() {
		return nil, shared.NewDomainError("INVALID_ROLE", "Unknown staff role")
	}

	return &TransportStaff{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		StoreID:           storeID,
		Name:              strings.TrimSpace(name),
		Role:              role,
		WeeklyHours:       decimal.Zero,
		Status:            StaffStatusActive,
	}, nil
}

// RemainingHours returns how many hours the member can still work
// this week
func (s *TransportStaff) RemainingHours() decimal.Decimal {
	remaining := s.Role.MaxWeeklyHours().Sub(s.WeeklyHours)
	if remaining.IsNegative() {
		return decimal.Zero
	}
	return remaining
}

// CanWork returns true if the member can take on the given hours
// without breaking the weekly cap
func (s *TransportStaff) CanWork(hours decimal.Decimal) bool {
	if s.Status != StaffStatusActive {
		return false
	}
	return s.WeeklyHours.Add(hours).LessThanOrEqual(s.Role.MaxWeeklyHours())
}

// AddHours books hours against the member's weekly allowance
func (s *TransportStaff) AddHours(hours decimal.Decimal) error {
	if !hours.IsPositive() {
		return shared.NewDomainError("INVALID_HOURS", "Hours must be positive")
	}
	if s.Status != StaffStatusActive {
		return shared.NewDomainError("STAFF_UNAVAILABLE", "Staff member is not active")
	}
	if !s.CanWork(hours) {
		return shared.ErrWeeklyHoursExceeded
	}

	s.WeeklyHours = s.WeeklyHours.Add(hours)
	s.UpdatedAt = time.Now()
	s.IncrementVersion()

	return nil
}

// ReleaseHours returns hours from a cancelled truck run
func (s *TransportStaff) ReleaseHours(hours decimal.Decimal) error {
	if !hours.IsPositive() {
		return shared.NewDomainError("INVALID_HOURS", "Hours must be positive")
	}

	s.WeeklyHours = s.WeeklyHours.Sub(hours)
	if s.WeeklyHours.IsNegative() {
		s.WeeklyHours = decimal.Zero
	}
	s.UpdatedAt = time.Now()
	s.IncrementVersion()

	return nil
}

// ResetWeeklyHours zeroes the counter at the start of a new week
func (s *TransportStaff) ResetWeeklyHours() {
	s.WeeklyHours = decimal.Zero
	s.UpdatedAt = time.Now()
	s.IncrementVersion()
}

// SetOnLeave marks the member as on leave
func (s *TransportStaff) SetOnLeave() error {
	if s.Status != StaffStatusActive {
		return shared.NewDomainError("NOT_ACTIVE", "Only active staff can go on leave")
	}

	s.Status = StaffStatusOnLeave
	s.UpdatedAt = time.Now()
	s.IncrementVersion()

	return nil
}

// ReturnFromLeave marks the member as back at work
func (s *TransportStaff) ReturnFromLeave() error {
	if s.Status != StaffStatusOnLeave {
		return shared.NewDomainError("NOT_ON_LEAVE", "Staff member is not on leave")
	}

	s.Status = StaffStatusActive
	s.UpdatedAt = time.Now()
	s.IncrementVersion()

	return nil
}

// Deactivate ends the member's employment
func (s *TransportStaff) Deactivate() error {
	if s.Status == StaffStatusInactive {
		return shared.NewDomainError("ALREADY_INACTIVE", "Staff member is already inactive")
	}

	s.Status = StaffStatusInactive
	s.UpdatedAt = time.Now()
	s.IncrementVersion()

	return nil
}
