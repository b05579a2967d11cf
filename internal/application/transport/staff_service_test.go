package transport

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"github.com/RaminduDJay/supply-chain-management/internal/domain/shared"
	"github.com/RaminduDJay/supply-chain-management/internal/domain/transport"
)

func TestStaffService_HireStaff(t *testing.T) {
	staffRepo := new(MockStaffRepository)
	storeRepo := new(MockStoreRepository)
	service := NewStaffService(staffRepo, storeRepo, zap.NewNop())

	store := activeStore(t)
	storeRepo.On("FindByID", mock.Anything, store.ID).Return(store, nil)
	staffRepo.On("Create", mock.Anything, mock.AnythingOfType("*transport.TransportStaff")).Return(nil)

	info, err := service.HireStaff(context.Background(), HireStaffInput{
		StoreID: store.ID,
		Name:    "Nimal Jayasuriya",
		Role:    string(transport.StaffRoleDriver),
		Phone:   "+94771234567",
	})

	assert.NoError(t, err)
	assert.Equal(t, string(transport.StaffRoleDriver), info.Role)
	assert.True(t, info.WeeklyHours.IsZero())
	assert.True(t, info.RemainingHours.Equal(decimal.NewFromInt(40)))
}

func TestStaffService_HireStaff_UnknownRole(t *testing.T) {
	staffRepo := new(MockStaffRepository)
	storeRepo := new(MockStoreRepository)
	service := NewStaffService(staffRepo, storeRepo, zap.NewNop())

	store := activeStore(t)
	storeRepo.On("FindByID", mock.Anything, store.ID).Return(store, nil)

	_, err := service.HireStaff(context.Background(), HireStaffInput{
		StoreID: store.ID,
		Name:    "Nimal Jayasuriya",
		Role:    "conductor",
	})

	var domainErr *shared.DomainError
	assert.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "INVALID_ROLE", domainErr.Code)
	staffRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestStaffService_ListAvailableStaff_ValidatesRole(t *testing.T) {
	service := NewStaffService(new(MockStaffRepository), new(MockStoreRepository), zap.NewNop())

	_, err := service.ListAvailableStaff(context.Background(), activeStore(t).ID, "porter")

	var domainErr *shared.DomainError
	assert.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "INVALID_ROLE", domainErr.Code)
}

func TestStaffService_LeaveCycle(t *testing.T) {
	staffRepo := new(MockStaffRepository)
	service := NewStaffService(staffRepo, new(MockStoreRepository), zap.NewNop())

	member, err := transport.NewTransportStaff(activeStore(t).ID, "Kasun Silva", transport.StaffRoleAssistant)
	assert.NoError(t, err)

	staffRepo.On("FindByID", mock.Anything, member.ID).Return(member, nil)
	staffRepo.On("Update", mock.Anything, member).Return(nil)

	info, err := service.SetStaffOnLeave(context.Background(), member.ID)
	assert.NoError(t, err)
	assert.Equal(t, string(transport.StaffStatusOnLeave), info.Status)

	info, err = service.ReturnStaffFromLeave(context.Background(), member.ID)
	assert.NoError(t, err)
	assert.Equal(t, string(transport.StaffStatusActive), info.Status)
}

func TestStaffService_ResetWeeklyHours(t *testing.T) {
	staffRepo := new(MockStaffRepository)
	service := NewStaffService(staffRepo, new(MockStoreRepository), zap.NewNop())

	staffRepo.On("ResetAllWeeklyHours", mock.Anything).Return(int64(14), nil)

	affected, err := service.ResetWeeklyHours(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, int64(14), affected)
}
