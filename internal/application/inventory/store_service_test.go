package inventory

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	identitydomain "github.com/RaminduDJay/supply-chain-management/internal/domain/identity"
	"github.com/RaminduDJay/supply-chain-management/internal/domain/inventory"
	"github.com/RaminduDJay/supply-chain-management/internal/domain/shared"
)

func newTestStore(t *testing.T) *inventory.Store {
	t.Helper()
	store, err := inventory.NewStore("Galle Regional", "Galle", decimal.NewFromInt(116))
	assert.NoError(t, err)
	store.ClearDomainEvents()
	return store
}

func TestStoreService_CreateStore(t *testing.T) {
	storeRepo := new(MockStoreRepository)
	service := NewStoreService(storeRepo, new(MockUserRepository), zap.NewNop())

	storeRepo.On("FindByCity", mock.Anything, "Galle").Return(nil, shared.ErrNotFound)
	storeRepo.On("Create", mock.Anything, mock.AnythingOfType("*inventory.Store")).Return(nil)

	info, err := service.CreateStore(context.Background(), CreateStoreInput{
		Name:    "Galle Regional",
		City:    "Galle",
		Address: "12 Wakwella Road",
		Phone:   "+94912234567",
		RailKM:  decimal.NewFromInt(116),
	})

	assert.NoError(t, err)
	assert.Equal(t, "Galle", info.City)
	assert.Equal(t, "12 Wakwella Road", info.Address)
	storeRepo.AssertExpectations(t)
}

func TestStoreService_CreateStore_CityAlreadyServed(t *testing.T) {
	storeRepo := new(MockStoreRepository)
	service := NewStoreService(storeRepo, new(MockUserRepository), zap.NewNop())

	storeRepo.On("FindByCity", mock.Anything, "Galle").Return(newTestStore(t), nil)

	_, err := service.CreateStore(context.Background(), CreateStoreInput{
		Name:   "Galle South",
		City:   "Galle",
		RailKM: decimal.NewFromInt(118),
	})

	var domainErr *shared.DomainError
	assert.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "CITY_ALREADY_SERVED", domainErr.Code)
	storeRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestStoreService_AssignManager(t *testing.T) {
	storeRepo := new(MockStoreRepository)
	userRepo := new(MockUserRepository)
	service := NewStoreService(storeRepo, userRepo, zap.NewNop())

	store := newTestStore(t)
	manager, err := identitydomain.NewUser("galle.manager", "Str0ngPass!", identitydomain.RoleStoreManager)
	assert.NoError(t, err)
	manager.ClearDomainEvents()

	userRepo.On("FindByID", mock.Anything, manager.ID).Return(manager, nil)
	userRepo.On("Update", mock.Anything, manager).Return(nil)
	storeRepo.On("FindByID", mock.Anything, store.ID).Return(store, nil)
	storeRepo.On("Update", mock.Anything, store).Return(nil)

	info, err := service.AssignManager(context.Background(), store.ID, manager.ID)

	assert.NoError(t, err)
	assert.Equal(t, &manager.ID, info.ManagerID)
	assert.Equal(t, &store.ID, manager.StoreID)
}

func TestStoreService_AssignManager_RejectsNonManager(t *testing.T) {
	storeRepo := new(MockStoreRepository)
	userRepo := new(MockUserRepository)
	service := NewStoreService(storeRepo, userRepo, zap.NewNop())

	customerUser, err := identitydomain.NewUser("some.customer", "Str0ngPass!", identitydomain.RoleCustomer)
	assert.NoError(t, err)

	userRepo.On("FindByID", mock.Anything, customerUser.ID).Return(customerUser, nil)

	_, err = service.AssignManager(context.Background(), uuid.New(), customerUser.ID)

	var domainErr *shared.DomainError
	assert.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "NOT_STORE_MANAGER", domainErr.Code)
}

func TestStoreService_DeactivateStore(t *testing.T) {
	storeRepo := new(MockStoreRepository)
	service := NewStoreService(storeRepo, new(MockUserRepository), zap.NewNop())

	store := newTestStore(t)
	storeRepo.On("FindByID", mock.Anything, store.ID).Return(store, nil)
	storeRepo.On("Update", mock.Anything, store).Return(nil)

	info, err := service.DeactivateStore(context.Background(), store.ID)

	assert.NoError(t, err)
	assert.Equal(t, string(inventory.StoreStatusInactive), info.Status)
	assert.False(t, store.IsActive())
}
