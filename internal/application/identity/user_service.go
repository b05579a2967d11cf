package identity

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/RaminduDJay/supply-chain-management/internal/domain/identity"
	"github.com/RaminduDJay/supply-chain-management/internal/domain/inventory"
	"github.com/RaminduDJay/supply-chain-management/internal/domain/shared"
)

// UserService handles staff account administration. Only main managers
// reach these operations, the HTTP layer enforces the role.
type UserService struct {
	userRepo  identity.UserRepository
	storeRepo inventory.StoreRepository
	publisher shared.EventPublisher
	logger    *zap.Logger
}

// NewUserService creates a new user administration service
func NewUserService(
	userRepo identity.UserRepository,
	storeRepo inventory.StoreRepository,
	publisher shared.EventPublisher,
	logger *zap.Logger,
) *UserService {
	return &UserService{
		userRepo:  userRepo,
		storeRepo: storeRepo,
		publisher: publisher,
		logger:    logger,
	}
}

// CreateStaff creates a store manager or main manager account
func (s *UserService) CreateStaff(ctx context.Context, input CreateStaffInput) (*UserInfo, error) {
	if !input.Role.IsStaff() {
		return nil, shared.NewDomainError("INVALID_ROLE", "Staff accounts must have a staff role")
	}

	exists, err := s.userRepo.ExistsByUsername(ctx, input.Username)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("USERNAME_TAKEN", "Username is already in use")
	}

	user, err := identity.NewUser(input.Username, input.Password, input.Role)
	if err != nil {
		return nil, err
	}
	if input.Email != "" {
		if err := user.SetEmail(input.Email); err != nil {
			return nil, err
		}
	}

	if input.Role == identity.RoleStoreManager {
		if input.StoreID == nil {
			return nil, shared.NewDomainError("STORE_REQUIRED", "Store managers must be assigned to a store")
		}
		if _, err := s.storeRepo.FindByID(ctx, *input.StoreID); err != nil {
			if errors.Is(err, shared.ErrNotFound) {
				return nil, shared.NewDomainError("STORE_NOT_FOUND", "Store not found")
			}
			return nil, err
		}
		if err := user.AssignStore(*input.StoreID); err != nil {
			return nil, err
		}
	}

	// First login requires a password of the account owner's own choosing
	user.ForcePasswordChange()

	if err := s.userRepo.Create(ctx, user); err != nil {
		s.logger.Error("Failed to create staff account", zap.Error(err))
		return nil, err
	}

	s.publishEvents(ctx, user.GetDomainEvents())
	user.ClearDomainEvents()

	s.logger.Info("Staff account created",
		zap.String("username", user.Username),
		zap.String("role", user.Role.String()))

	info := NewUserInfo(user)
	return &info, nil
}

// GetUser returns a single account by ID
func (s *UserService) GetUser(ctx context.Context, id uuid.UUID) (*UserInfo, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("USER_NOT_FOUND", "User not found")
		}
		return nil, err
	}
	info := NewUserInfo(user)
	return &info, nil
}

// ListUsers returns a page of accounts matching the filter
func (s *UserService) ListUsers(ctx context.Context, input ListUsersInput) (*ListUsersResult, error) {
	filter := identity.NewUserFilter().
		WithKeyword(input.Keyword).
		WithPagination(input.Page, input.PageSize)
	if input.Role != "" {
		role := identity.Role(input.Role)
		if !role.IsValid() {
			return nil, shared.NewDomainError("INVALID_ROLE", "Unknown role")
		}
		filter = filter.WithRole(role)
	}
	if input.Status != "" {
		filter = filter.WithStatus(identity.UserStatus(input.Status))
	}

	users, total, err := s.userRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}

	infos := make([]UserInfo, 0, len(users))
	for _, u := range users {
		infos = append(infos, NewUserInfo(u))
	}

	return &ListUsersResult{
		Users:    infos,
		Total:    total,
		Page:     filter.Page,
		PageSize: filter.PageSize,
	}, nil
}

// ActivateUser re-enables a deactivated account
func (s *UserService) ActivateUser(ctx context.Context, id uuid.UUID) error {
	return s.mutateUser(ctx, id, func(u *identity.User) error { return u.Activate() })
}

// DeactivateUser disables an account. The owner cannot log in until
// the account is activated again.
func (s *UserService) DeactivateUser(ctx context.Context, id uuid.UUID) error {
	return s.mutateUser(ctx, id, func(u *identity.User) error { return u.Deactivate() })
}

// UnlockUser clears a login failure lock before it expires
func (s *UserService) UnlockUser(ctx context.Context, id uuid.UUID) error {
	return s.mutateUser(ctx, id, func(u *identity.User) error { return u.Unlock() })
}

// ResetPassword sets a temporary password on an account. The owner is
// forced to change it at next login.
func (s *UserService) ResetPassword(ctx context.Context, input ResetPasswordInput) error {
	return s.mutateUser(ctx, input.UserID, func(u *identity.User) error {
		if err := u.SetPassword(input.NewPassword); err != nil {
			return err
		}
		u.ForcePasswordChange()
		return nil
	})
}

// AssignStore moves a store manager to a different store
func (s *UserService) AssignStore(ctx context.Context, userID, storeID uuid.UUID) error {
	if _, err := s.storeRepo.FindByID(ctx, storeID); err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return shared.NewDomainError("STORE_NOT_FOUND", "Store not found")
		}
		return err
	}
	return s.mutateUser(ctx, userID, func(u *identity.User) error { return u.AssignStore(storeID) })
}

// DeleteUser removes an account permanently
func (s *UserService) DeleteUser(ctx context.Context, id uuid.UUID) error {
	if _, err := s.userRepo.FindByID(ctx, id); err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return shared.NewDomainError("USER_NOT_FOUND", "User not found")
		}
		return err
	}
	if err := s.userRepo.Delete(ctx, id); err != nil {
		s.logger.Error("Failed to delete user", zap.Error(err))
		return err
	}
	s.logger.Info("User deleted", zap.String("user_id", id.String()))
	return nil
}

func (s *UserService) mutateUser(ctx context.Context, id uuid.UUID, fn func(*identity.User) error) error {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return shared.NewDomainError("USER_NOT_FOUND", "User not found")
		}
		return err
	}

	if err := fn(user); err != nil {
		return err
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		s.logger.Error("Failed to update user", zap.Error(err))
		return err
	}

	s.publishEvents(ctx, user.GetDomainEvents())
	user.ClearDomainEvents()
	return nil
}

func (s *UserService) publishEvents(ctx context.Context, events []shared.DomainEvent) {
	if s.publisher == nil || len(events) == 0 {
		return
	}
	if err := s.publisher.Publish(ctx, events...); err != nil {
		s.logger.Error("Failed to publish domain events", zap.Error(err))
	}
}
