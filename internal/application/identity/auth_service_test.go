package identity

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/RaminduDJay/supply-chain-management/internal/domain/customer"
	"github.com/RaminduDJay/supply-chain-management/internal/domain/identity"
	"github.com/RaminduDJay/supply-chain-management/internal/domain/shared"
	"github.com/RaminduDJay/supply-chain-management/internal/infrastructure/auth"
	"github.com/RaminduDJay/supply-chain-management/internal/infrastructure/config"
)

// MockUserRepository is a mock implementation of identity.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *identity.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Update(ctx context.Context, user *identity.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*identity.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.User), args.Error(1)
}

func (m *MockUserRepository) FindByUsername(ctx context.Context, username string) (*identity.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*identity.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.User), args.Error(1)
}

func (m *MockUserRepository) FindAll(ctx context.Context, filter identity.UserFilter) ([]*identity.User, int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]*identity.User), args.Get(1).(int64), args.Error(2)
}

func (m *MockUserRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	args := m.Called(ctx, username)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// MockCustomerRepository is a mock implementation of customer.CustomerRepository
type MockCustomerRepository struct {
	mock.Mock
}

func (m *MockCustomerRepository) Create(ctx context.Context, c *customer.Customer) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCustomerRepository) Update(ctx context.Context, c *customer.Customer) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCustomerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCustomerRepository) FindByID(ctx context.Context, id uuid.UUID) (*customer.Customer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*customer.Customer), args.Error(1)
}

func (m *MockCustomerRepository) FindByEmail(ctx context.Context, email string) (*customer.Customer, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*customer.Customer), args.Error(1)
}

func (m *MockCustomerRepository) FindAll(ctx context.Context, filter customer.CustomerFilter) ([]*customer.Customer, int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]*customer.Customer), args.Get(1).(int64), args.Error(2)
}

func (m *MockCustomerRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func newTestAuthService(userRepo *MockUserRepository, customerRepo *MockCustomerRepository) *AuthService {
	jwtService := auth.NewJWTService(config.JWTConfig{
		Secret:          "test-secret-key-for-auth-service",
		Issuer:          "scm-test",
		AccessTokenTTL:  15 * time.Minute,
		RefreshTokenTTL: 24 * time.Hour,
	})
	return NewAuthService(
		userRepo,
		customerRepo,
		jwtService,
		auth.NewInMemoryTokenBlacklist(),
		nil,
		config.AuthConfig{MaxLoginAttempts: 3, LockDuration: 15 * time.Minute},
		zap.NewNop(),
	)
}

func newActiveUser(t *testing.T, username, password string, role identity.Role) *identity.User {
	t.Helper()
	user, err := identity.NewUser(username, password, role)
	require.NoError(t, err)
	return user
}

func TestAuthService_Login_Success(t *testing.T) {
	userRepo := new(MockUserRepository)
	customerRepo := new(MockCustomerRepository)
	svc := newTestAuthService(userRepo, customerRepo)

	user := newActiveUser(t, "nimal", "Str0ngPass!", identity.RoleMainManager)
	userRepo.On("FindByUsername", mock.Anything, "nimal").Return(user, nil)
	userRepo.On("Update", mock.Anything, user).Return(nil)

	result, err := svc.Login(context.Background(), LoginInput{
		Username: "nimal",
		Password: "Str0ngPass!",
		IP:       "10.0.0.5",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, result.AccessToken)
	assert.NotEmpty(t, result.RefreshToken)
	assert.Equal(t, "Bearer", result.TokenType)
	assert.Equal(t, "nimal", result.User.Username)
	assert.Equal(t, "main_manager", result.User.Role)
	assert.Equal(t, "10.0.0.5", user.LastLoginIP)
	userRepo.AssertExpectations(t)
}

func TestAuthService_Login_UnknownUsername(t *testing.T) {
	userRepo := new(MockUserRepository)
	svc := newTestAuthService(userRepo, new(MockCustomerRepository))

	userRepo.On("FindByUsername", mock.Anything, "ghost").Return(nil, shared.ErrNotFound)

	_, err := svc.Login(context.Background(), LoginInput{Username: "ghost", Password: "whatever"})

	require.Error(t, err)
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "INVALID_CREDENTIALS", domainErr.Code)
}

func TestAuthService_Login_WrongPasswordLocksAfterMaxAttempts(t *testing.T) {
	userRepo := new(MockUserRepository)
	svc := newTestAuthService(userRepo, new(MockCustomerRepository))

	user := newActiveUser(t, "kamal", "Str0ngPass!", identity.RoleStoreManager)
	userRepo.On("FindByUsername", mock.Anything, "kamal").Return(user, nil)
	userRepo.On("Update", mock.Anything, user).Return(nil)

	for i := 0; i < 2; i++ {
		_, err := svc.Login(context.Background(), LoginInput{Username: "kamal", Password: "wrong"})
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_CREDENTIALS", domainErr.Code)
	}

	// Third failure hits the limit
	_, err := svc.Login(context.Background(), LoginInput{Username: "kamal", Password: "wrong"})
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "ACCOUNT_LOCKED", domainErr.Code)
	assert.True(t, user.IsLocked())
}

func TestAuthService_Login_LockedAccount(t *testing.T) {
	userRepo := new(MockUserRepository)
	svc := newTestAuthService(userRepo, new(MockCustomerRepository))

	user := newActiveUser(t, "sunil", "Str0ngPass!", identity.RoleCustomer)
	require.NoError(t, user.Lock(time.Hour))
	userRepo.On("FindByUsername", mock.Anything, "sunil").Return(user, nil)

	_, err := svc.Login(context.Background(), LoginInput{Username: "sunil", Password: "Str0ngPass!"})

	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "ACCOUNT_LOCKED", domainErr.Code)
}

func TestAuthService_RefreshToken_RotatesPair(t *testing.T) {
	userRepo := new(MockUserRepository)
	svc := newTestAuthService(userRepo, new(MockCustomerRepository))

	user := newActiveUser(t, "nimal", "Str0ngPass!", identity.RoleMainManager)
	userRepo.On("FindByUsername", mock.Anything, "nimal").Return(user, nil)
	userRepo.On("Update", mock.Anything, user).Return(nil)
	userRepo.On("FindByID", mock.Anything, user.ID).Return(user, nil)

	login, err := svc.Login(context.Background(), LoginInput{Username: "nimal", Password: "Str0ngPass!"})
	require.NoError(t, err)

	refreshed, err := svc.RefreshToken(context.Background(), RefreshTokenInput{RefreshToken: login.RefreshToken})
	require.NoError(t, err)
	assert.NotEmpty(t, refreshed.AccessToken)
	assert.NotEmpty(t, refreshed.RefreshToken)

	// The rotated-out refresh token is no longer usable
	_, err = svc.RefreshToken(context.Background(), RefreshTokenInput{RefreshToken: login.RefreshToken})
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "TOKEN_REVOKED", domainErr.Code)
}

func TestAuthService_RefreshToken_Invalid(t *testing.T) {
	svc := newTestAuthService(new(MockUserRepository), new(MockCustomerRepository))

	_, err := svc.RefreshToken(context.Background(), RefreshTokenInput{RefreshToken: "not-a-jwt"})

	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "TOKEN_INVALID", domainErr.Code)
}

func TestAuthService_Logout_RevokesRefreshToken(t *testing.T) {
	userRepo := new(MockUserRepository)
	svc := newTestAuthService(userRepo, new(MockCustomerRepository))

	user := newActiveUser(t, "nimal", "Str0ngPass!", identity.RoleMainManager)
	userRepo.On("FindByUsername", mock.Anything, "nimal").Return(user, nil)
	userRepo.On("Update", mock.Anything, user).Return(nil)

	login, err := svc.Login(context.Background(), LoginInput{Username: "nimal", Password: "Str0ngPass!"})
	require.NoError(t, err)

	err = svc.Logout(context.Background(), LogoutInput{
		UserID:       user.ID,
		RefreshToken: login.RefreshToken,
	})
	require.NoError(t, err)

	_, err = svc.RefreshToken(context.Background(), RefreshTokenInput{RefreshToken: login.RefreshToken})
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "TOKEN_REVOKED", domainErr.Code)
}

func TestAuthService_RegisterCustomer_Success(t *testing.T) {
	userRepo := new(MockUserRepository)
	customerRepo := new(MockCustomerRepository)
	svc := newTestAuthService(userRepo, customerRepo)

	userRepo.On("ExistsByUsername", mock.Anything, "dilani").Return(false, nil)
	customerRepo.On("Create", mock.Anything, mock.AnythingOfType("*customer.Customer")).Return(nil)
	userRepo.On("Create", mock.Anything, mock.AnythingOfType("*identity.User")).Return(nil)

	result, err := svc.RegisterCustomer(context.Background(), RegisterCustomerInput{
		Username:     "dilani",
		Password:     "Str0ngPass!",
		Name:         "Dilani Perera",
		CustomerType: customer.CustomerTypeRetail,
		City:         "Kandy",
		Address:      "12 Temple Road",
	})

	require.NoError(t, err)
	assert.Equal(t, "dilani", result.User.Username)
	assert.Equal(t, "customer", result.User.Role)
	require.NotNil(t, result.User.CustomerID)
	assert.Equal(t, result.Customer.ID, *result.User.CustomerID)
	assert.Equal(t, string(customer.CustomerTypeRetail), result.Customer.Type)
	userRepo.AssertExpectations(t)
	customerRepo.AssertExpectations(t)
}

func TestAuthService_RegisterCustomer_UsernameTaken(t *testing.T) {
	userRepo := new(MockUserRepository)
	svc := newTestAuthService(userRepo, new(MockCustomerRepository))

	userRepo.On("ExistsByUsername", mock.Anything, "dilani").Return(true, nil)

	_, err := svc.RegisterCustomer(context.Background(), RegisterCustomerInput{
		Username:     "dilani",
		Password:     "Str0ngPass!",
		Name:         "Dilani Perera",
		CustomerType: customer.CustomerTypeEnd,
	})

	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "USERNAME_TAKEN", domainErr.Code)
}

func TestAuthService_RegisterCustomer_RollsBackProfileOnUserFailure(t *testing.T) {
	userRepo := new(MockUserRepository)
	customerRepo := new(MockCustomerRepository)
	svc := newTestAuthService(userRepo, customerRepo)

	userRepo.On("ExistsByUsername", mock.Anything, "dilani").Return(false, nil)
	customerRepo.On("Create", mock.Anything, mock.AnythingOfType("*customer.Customer")).Return(nil)
	userRepo.On("Create", mock.Anything, mock.AnythingOfType("*identity.User")).Return(assert.AnError)
	customerRepo.On("Delete", mock.Anything, mock.AnythingOfType("uuid.UUID")).Return(nil)

	_, err := svc.RegisterCustomer(context.Background(), RegisterCustomerInput{
		Username:     "dilani",
		Password:     "Str0ngPass!",
		Name:         "Dilani Perera",
		CustomerType: customer.CustomerTypeWholesale,
	})

	require.Error(t, err)
	customerRepo.AssertCalled(t, "Delete", mock.Anything, mock.AnythingOfType("uuid.UUID"))
}

func TestAuthService_ChangePassword(t *testing.T) {
	userRepo := new(MockUserRepository)
	svc := newTestAuthService(userRepo, new(MockCustomerRepository))

	user := newActiveUser(t, "nimal", "OldPass123!", identity.RoleStoreManager)
	userRepo.On("FindByID", mock.Anything, user.ID).Return(user, nil)
	userRepo.On("Update", mock.Anything, user).Return(nil)

	err := svc.ChangePassword(context.Background(), ChangePasswordInput{
		UserID:      user.ID,
		OldPassword: "OldPass123!",
		NewPassword: "NewPass456!",
	})

	require.NoError(t, err)
	assert.True(t, user.VerifyPassword("NewPass456!"))
	assert.False(t, user.VerifyPassword("OldPass123!"))
}

func TestAuthService_ChangePassword_WrongOldPassword(t *testing.T) {
	userRepo := new(MockUserRepository)
	svc := newTestAuthService(userRepo, new(MockCustomerRepository))

	user := newActiveUser(t, "nimal", "OldPass123!", identity.RoleStoreManager)
	userRepo.On("FindByID", mock.Anything, user.ID).Return(user, nil)

	err := svc.ChangePassword(context.Background(), ChangePasswordInput{
		UserID:      user.ID,
		OldPassword: "wrong",
		NewPassword: "NewPass456!",
	})

	require.Error(t, err)
	assert.True(t, user.VerifyPassword("OldPass123!"))
}
