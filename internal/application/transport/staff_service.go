package transport

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/RaminduDJay/supply-chain-management/internal/domain/inventory"
	"github.com/RaminduDJay/supply-chain-management/internal/domain/shared"
	"github.com/RaminduDJay/supply-chain-management/internal/domain/transport"
)

// StaffService manages drivers and driver assistants
type StaffService struct {
	staffRepo transport.StaffRepository
	storeRepo inventory.StoreRepository
	logger    *zap.Logger
}

// NewStaffService creates a new staff service
func NewStaffService(
	staffRepo transport.StaffRepository,
	storeRepo inventory.StoreRepository,
	logger *zap.Logger,
) *StaffService {
	return &StaffService{
		staffRepo: staffRepo,
		storeRepo: storeRepo,
		logger:    logger,
	}
}

// HireStaff hires a driver or assistant at a store
func (s *StaffService) HireStaff(ctx context.Context, input HireStaffInput) (*StaffInfo, error) {
	if _, err := s.storeRepo.FindByID(ctx, input.StoreID); err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("STORE_NOT_FOUND", "Store not found")
		}
		return nil, err
	}

	staff, err := transport.NewTransportStaff(input.StoreID, input.Name, transport.StaffRole(input.Role))
	if err != nil {
		return nil, err
	}
	staff.Phone = input.Phone

	if err := s.staffRepo.Create(ctx, staff); err != nil {
		s.logger.Error("Failed to hire staff", zap.Error(err))
		return nil, err
	}

	s.logger.Info("Staff hired",
		zap.String("staff_id", staff.ID.String()),
		zap.String("role", string(staff.Role)),
		zap.String("store_id", staff.StoreID.String()))

	info := NewStaffInfo(staff)
	return &info, nil
}

// GetStaff returns a staff member by ID
func (s *StaffService) GetStaff(ctx context.Context, id uuid.UUID) (*StaffInfo, error) {
	staff, err := s.findStaff(ctx, id)
	if err != nil {
		return nil, err
	}
	info := NewStaffInfo(staff)
	return &info, nil
}

// ListStaffByStore returns all transport staff at a store
func (s *StaffService) ListStaffByStore(ctx context.Context, storeID uuid.UUID) ([]StaffInfo, error) {
	members, err := s.staffRepo.FindByStore(ctx, storeID)
	if err != nil {
		return nil, err
	}
	infos := make([]StaffInfo, 0, len(members))
	for _, member := range members {
		infos = append(infos, NewStaffInfo(member))
	}
	return infos, nil
}

// ListAvailableStaff returns active staff of a role at a store with
// weekly hours remaining, for crew selection when planning a run.
func (s *StaffService) ListAvailableStaff(ctx context.Context, storeID uuid.UUID, role string) ([]StaffInfo, error) {
	staffRole := transport.StaffRole(role)
	if !staffRole.IsValid() {
		return nil, shared.NewDomainError("INVALID_ROLE", "Unknown staff role")
	}

	members, err := s.staffRepo.FindAvailableByStore(ctx, storeID, staffRole)
	if err != nil {
		return nil, err
	}
	infos := make([]StaffInfo, 0, len(members))
	for _, member := range members {
		infos = append(infos, NewStaffInfo(member))
	}
	return infos, nil
}

// SetStaffOnLeave marks a staff member as on leave
func (s *StaffService) SetStaffOnLeave(ctx context.Context, id uuid.UUID) (*StaffInfo, error) {
	return s.mutateStaff(ctx, id, func(m *transport.TransportStaff) error { return m.SetOnLeave() })
}

// ReturnStaffFromLeave marks a staff member as back at work
func (s *StaffService) ReturnStaffFromLeave(ctx context.Context, id uuid.UUID) (*StaffInfo, error) {
	return s.mutateStaff(ctx, id, func(m *transport.TransportStaff) error { return m.ReturnFromLeave() })
}

// DeactivateStaff ends a staff member's employment
func (s *StaffService) DeactivateStaff(ctx context.Context, id uuid.UUID) (*StaffInfo, error) {
	return s.mutateStaff(ctx, id, func(m *transport.TransportStaff) error { return m.Deactivate() })
}

// ResetWeeklyHours zeroes every staff member's weekly hour counter.
// The weekly scheduler calls this at the start of each week.
func (s *StaffService) ResetWeeklyHours(ctx context.Context) (int64, error) {
	affected, err := s.staffRepo.ResetAllWeeklyHours(ctx)
	if err != nil {
		s.logger.Error("Failed to reset weekly hours", zap.Error(err))
		return 0, err
	}

	s.logger.Info("Weekly hours reset", zap.Int64("staff_affected", affected))
	return affected, nil
}

func (s *StaffService) findStaff(ctx context.Context, id uuid.UUID) (*transport.TransportStaff, error) {
	staff, err := s.staffRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("STAFF_NOT_FOUND", "Staff member not found")
		}
		return nil, err
	}
	return staff, nil
}

func (s *StaffService) mutateStaff(ctx context.Context, id uuid.UUID, fn func(*transport.TransportStaff) error) (*StaffInfo, error) {
	staff, err := s.findStaff(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := fn(staff); err != nil {
		return nil, err
	}
	if err := s.staffRepo.Update(ctx, staff); err != nil {
		s.logger.Error("Failed to update staff", zap.Error(err))
		return nil, err
	}
	info := NewStaffInfo(staff)
	return &info, nil
}
