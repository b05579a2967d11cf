package inventory

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/RaminduDJay/supply-chain-management/internal/domain/identity"
	"github.com/RaminduDJay/supply-chain-management/internal/domain/inventory"
	"github.com/RaminduDJay/supply-chain-management/internal/domain/shared"
)

// StoreService manages the store network
type StoreService struct {
	storeRepo inventory.StoreRepository
	userRepo  identity.UserRepository
	logger    *zap.Logger
}

// NewStoreService creates a new store service
func NewStoreService(
	storeRepo inventory.StoreRepository,
	userRepo identity.UserRepository,
	logger *zap.Logger,
) *StoreService {
	return &StoreService{
		storeRepo: storeRepo,
		userRepo:  userRepo,
		logger:    logger,
	}
}

// CreateStore opens a new regional store
func (s *StoreService) CreateStore(ctx context.Context, input CreateStoreInput) (*StoreInfo, error) {
	existing, err := s.storeRepo.FindByCity(ctx, input.City)
	if err != nil && !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, shared.NewDomainError("CITY_ALREADY_SERVED", "A store already serves this city")
	}

	store, err := inventory.NewStore(input.Name, input.City, input.RailKM)
	if err != nil {
		return nil, err
	}
	if input.Address != "" || input.Phone != "" {
		if err := store.Update(input.Name, input.Address, input.Phone); err != nil {
			return nil, err
		}
	}

	if err := s.storeRepo.Create(ctx, store); err != nil {
		s.logger.Error("Failed to create store", zap.Error(err))
		return nil, err
	}

	s.logger.Info("Store created",
		zap.String("store_id", store.ID.String()),
		zap.String("city", store.City))

	info := NewStoreInfo(store)
	return &info, nil
}

// GetStore returns a store by ID
func (s *StoreService) GetStore(ctx context.Context, id uuid.UUID) (*StoreInfo, error) {
	store, err := s.findStore(ctx, id)
	if err != nil {
		return nil, err
	}
	info := NewStoreInfo(store)
	return &info, nil
}

// ListStores returns all stores
func (s *StoreService) ListStores(ctx context.Context) ([]StoreInfo, error) {
	stores, err := s.storeRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	infos := make([]StoreInfo, 0, len(stores))
	for _, store := range stores {
		infos = append(infos, NewStoreInfo(store))
	}
	return infos, nil
}

// UpdateStore changes a store's contact details
func (s *StoreService) UpdateStore(ctx context.Context, input UpdateStoreInput) (*StoreInfo, error) {
	return s.mutateStore(ctx, input.StoreID, func(store *inventory.Store) error {
		return store.Update(input.Name, input.Address, input.Phone)
	})
}

// AssignManager puts a store manager in charge of a store. The user
// must hold the store manager role.
func (s *StoreService) AssignManager(ctx context.Context, storeID, userID uuid.UUID) (*StoreInfo, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("USER_NOT_FOUND", "User not found")
		}
		return nil, err
	}
	if user.Role != identity.RoleStoreManager {
		return nil, shared.NewDomainError("NOT_STORE_MANAGER", "Only store managers can be assigned to a store")
	}

	info, err := s.mutateStore(ctx, storeID, func(store *inventory.Store) error {
		return store.AssignManager(userID)
	})
	if err != nil {
		return nil, err
	}

	if err := user.AssignStore(storeID); err != nil {
		return nil, err
	}
	if err := s.userRepo.Update(ctx, user); err != nil {
		s.logger.Error("Failed to link manager to store", zap.Error(err))
		return nil, err
	}
	return info, nil
}

// ActivateStore reopens a store
func (s *StoreService) ActivateStore(ctx context.Context, id uuid.UUID) (*StoreInfo, error) {
	return s.mutateStore(ctx, id, func(store *inventory.Store) error {
		return store.Activate()
	})
}

// DeactivateStore closes a store
func (s *StoreService) DeactivateStore(ctx context.Context, id uuid.UUID) (*StoreInfo, error) {
	return s.mutateStore(ctx, id, func(store *inventory.Store) error {
		return store.Deactivate()
	})
}

func (s *StoreService) findStore(ctx context.Context, id uuid.UUID) (*inventory.Store, error) {
	store, err := s.storeRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("STORE_NOT_FOUND", "Store not found")
		}
		return nil, err
	}
	return store, nil
}

func (s *StoreService) mutateStore(ctx context.Context, id uuid.UUID, fn func(*inventory.Store) error) (*StoreInfo, error) {
	store, err := s.findStore(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := fn(store); err != nil {
		return nil, err
	}
	if err := s.storeRepo.Update(ctx, store); err != nil {
		s.logger.Error("Failed to update store", zap.Error(err))
		return nil, err
	}
	info := NewStoreInfo(store)
	return &info, nil
}
