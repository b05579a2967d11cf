package identity

import (
	"time"

	"github.com/google/uuid"

	"github.com/RaminduDJay/supply-chain-management/internal/domain/customer"
	"github.com/RaminduDJay/supply-chain-management/internal/domain/identity"
)

// LoginInput contains login request data
type LoginInput struct {
	Username string
	Password string
	IP       string
}

// LoginResult contains successful login response data
type LoginResult struct {
	AccessToken           string
	RefreshToken          string
	AccessTokenExpiresAt  time.Time
	RefreshTokenExpiresAt time.Time
	TokenType             string
	User                  UserInfo
}

// UserInfo contains the account data exposed to API clients
type UserInfo struct {
	ID                 uuid.UUID
	Username           string
	Email              string
	Role               string
	Status             string
	CustomerID         *uuid.UUID
	StoreID            *uuid.UUID
	MustChangePassword bool
	LastLoginAt        *time.Time
}

// NewUserInfo maps a user aggregate to its API representation
func NewUserInfo(user *identity.User) UserInfo {
	return UserInfo{
		ID:                 user.ID,
		Username:           user.Username,
		Email:              user.Email,
		Role:               user.Role.String(),
		Status:             string(user.Status),
		CustomerID:         user.CustomerID,
		StoreID:            user.StoreID,
		MustChangePassword: user.MustChangePassword,
		LastLoginAt:        user.LastLoginAt,
	}
}

// RefreshTokenInput contains token refresh request data
type RefreshTokenInput struct {
	RefreshToken string
}

// RefreshTokenResult contains the new token pair
type RefreshTokenResult struct {
	AccessToken           string
	RefreshToken          string
	AccessTokenExpiresAt  time.Time
	RefreshTokenExpiresAt time.Time
	TokenType             string
}

// LogoutInput contains logout request data. AccessJTI and RefreshJTI
// identify the tokens to revoke.
type LogoutInput struct {
	UserID        uuid.UUID
	AccessJTI     string
	AccessTTL     time.Duration
	RefreshToken  string
	EverywhereAll bool // revoke every session the user holds
}

// RegisterCustomerInput contains self-service registration data.
// The customer type determines discount rate and minimum order size.
type RegisterCustomerInput struct {
	Username     string
	Password     string
	Email        string
	Name         string
	CustomerType customer.CustomerType
	Phone        string
	Address      string
	City         string
}

// RegisterCustomerResult contains the created account and profile
type RegisterCustomerResult struct {
	User     UserInfo
	Customer CustomerInfo
}

// CustomerInfo contains customer profile data exposed to API clients
type CustomerInfo struct {
	ID          uuid.UUID
	Name        string
	Type        string
	Status      string
	ContactName string
	Phone       string
	Email       string
	Address     string
	City        string
	CreditLimit string
}

// NewCustomerInfo maps a customer aggregate to its API representation
func NewCustomerInfo(c *customer.Customer) CustomerInfo {
	return CustomerInfo{
		ID:          c.ID,
		Name:        c.Name,
		Type:        string(c.Type),
		Status:      string(c.Status),
		ContactName: c.ContactName,
		Phone:       c.Phone,
		Email:       c.Email,
		Address:     c.Address,
		City:        c.City,
		CreditLimit: c.CreditLimit.StringFixed(2),
	}
}

// ChangePasswordInput contains password change request data
type ChangePasswordInput struct {
	UserID      uuid.UUID
	OldPassword string
	NewPassword string
}

// CreateStaffInput contains data for creating a staff account.
// StoreID is required for store managers.
type CreateStaffInput struct {
	Username string
	Password string
	Email    string
	Role     identity.Role
	StoreID  *uuid.UUID
}

// ListUsersInput contains filter and pagination options for listing users
type ListUsersInput struct {
	Keyword  string
	Role     string
	Status   string
	Page     int
	PageSize int
}

// ListUsersResult contains a page of users
type ListUsersResult struct {
	Users    []UserInfo
	Total    int64
	Page     int
	PageSize int
}

// ResetPasswordInput contains an administrative password reset.
// The account owner must change the password at next login.
type ResetPasswordInput struct {
	UserID      uuid.UUID
	NewPassword string
}
