package handler

import (
	"time"

	"github.com/google/uuid"

	identityapp "github.com/RaminduDJay/supply-chain-management/internal/application/identity"
)

// LoginRequest represents the request body for user login
type LoginRequest struct {
	Username string `json:"username" binding:"required,min=3,max=100"`
	Password string `json:"password" binding:"required,min=8,max=128"`
}

// RefreshTokenRequest represents the request body for token refresh
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// LogoutRequest represents the request body for logout. Everywhere
// revokes every session the user holds, not just the current one.
type LogoutRequest struct {
	RefreshToken string `json:"refresh_token"`
	Everywhere   bool   `json:"everywhere"`
}

// ChangePasswordRequest represents the request body for password change
type ChangePasswordRequest struct {
	OldPassword string `json:"old_password" binding:"required"`
	NewPassword string `json:"new_password" binding:"required,min=8,max=128"`
}

// RegisterRequest represents the request body for customer self-registration
type RegisterRequest struct {
	Username     string `json:"username" binding:"required,min=3,max=100"`
	Password     string `json:"password" binding:"required,min=8,max=128"`
	Email        string `json:"email" binding:"required,email"`
	Name         string `json:"name" binding:"required,max=200"`
	CustomerType string `json:"customer_type" binding:"required,oneof=end retail wholesale"`
	Phone        string `json:"phone" binding:"max=20"`
	Address      string `json:"address" binding:"max=500"`
	City         string `json:"city" binding:"required,max=100"`
}

// TokenResponse represents the token data in auth responses
type TokenResponse struct {
	AccessToken           string    `json:"access_token"`
	RefreshToken          string    `json:"refresh_token"`
	AccessTokenExpiresAt  time.Time `json:"access_token_expires_at"`
	RefreshTokenExpiresAt time.Time `json:"refresh_token_expires_at"`
	TokenType             string    `json:"token_type"`
}

// UserResponse represents account data in API responses
type UserResponse struct {
	ID                 uuid.UUID  `json:"id"`
	Username           string     `json:"username"`
	Email              string     `json:"email,omitempty"`
	Role               string     `json:"role"`
	Status             string     `json:"status"`
	CustomerID         *uuid.UUID `json:"customer_id,omitempty"`
	StoreID            *uuid.UUID `json:"store_id,omitempty"`
	MustChangePassword bool       `json:"must_change_password"`
	LastLoginAt        *time.Time `json:"last_login_at,omitempty"`
}

func newUserResponse(u identityapp.UserInfo) UserResponse {
	return UserResponse{
		ID:                 u.ID,
		Username:           u.Username,
		Email:              u.Email,
		Role:               u.Role,
		Status:             u.Status,
		CustomerID:         u.CustomerID,
		StoreID:            u.StoreID,
		MustChangePassword: u.MustChangePassword,
		LastLoginAt:        u.LastLoginAt,
	}
}

// LoginResponse represents the response body for successful login
type LoginResponse struct {
	Token TokenResponse `json:"token"`
	User  UserResponse  `json:"user"`
}

// RefreshTokenResponse represents the response body for token refresh
type RefreshTokenResponse struct {
	Token TokenResponse `json:"token"`
}

// CustomerProfileResponse represents a customer profile in API responses
type CustomerProfileResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Type        string    `json:"type"`
	Status      string    `json:"status"`
	ContactName string    `json:"contact_name,omitempty"`
	Phone       string    `json:"phone,omitempty"`
	Email       string    `json:"email,omitempty"`
	Address     string    `json:"address,omitempty"`
	City        string    `json:"city"`
	CreditLimit string    `json:"credit_limit"`
}

func newCustomerProfileResponse(ci identityapp.CustomerInfo) CustomerProfileResponse {
	return CustomerProfileResponse{
		ID:          ci.ID,
		Name:        ci.Name,
		Type:        ci.Type,
		Status:      ci.Status,
		ContactName: ci.ContactName,
		Phone:       ci.Phone,
		Email:       ci.Email,
		Address:     ci.Address,
		City:        ci.City,
		CreditLimit: ci.CreditLimit,
	}
}

// RegisterResponse represents the response body for customer registration
type RegisterResponse struct {
	User     UserResponse            `json:"user"`
	Customer CustomerProfileResponse `json:"customer"`
}
