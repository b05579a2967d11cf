package dto

import (
	"net/http"
	"strings"
)

// Transport-level error codes. Domain errors keep their own codes
// (STORE_NOT_FOUND, INSUFFICIENT_STOCK, ...) and are mapped to HTTP
// statuses by GetHTTPStatus.
const (
	ErrCodeInternal        = "INTERNAL_ERROR"
	ErrCodeValidation      = "VALIDATION_ERROR"
	ErrCodeBadRequest      = "BAD_REQUEST"
	ErrCodeUnauthorized    = "UNAUTHORIZED"
	ErrCodeForbidden       = "FORBIDDEN"
	ErrCodeNotFound        = "NOT_FOUND"
	ErrCodeConflict        = "CONFLICT"
	ErrCodeTooManyRequests = "TOO_MANY_REQUESTS"
	ErrCodePayloadTooLarge = "PAYLOAD_TOO_LARGE"
)

// domainErrorHTTPStatus maps domain error codes whose status cannot be
// derived from the code's shape.
var domainErrorHTTPStatus = map[string]int{
	// Authentication and account state
	"INVALID_CREDENTIALS":  http.StatusUnauthorized,
	"TOKEN_EXPIRED":        http.StatusUnauthorized,
	"TOKEN_INVALID":        http.StatusUnauthorized,
	"TOKEN_REVOKED":        http.StatusUnauthorized,
	"ACCOUNT_LOCKED":       http.StatusForbidden,
	"ACCOUNT_DEACTIVATED":  http.StatusForbidden,
	"PASSWORD_MISMATCH":    http.StatusUnprocessableEntity,
	"WEAK_PASSWORD":        http.StatusUnprocessableEntity,
	"MUST_CHANGE_PASSWORD": http.StatusForbidden,

	// Uniqueness conflicts
	"USERNAME_TAKEN":      http.StatusConflict,
	"EMAIL_TAKEN":         http.StatusConflict,
	"ITEM_CODE_TAKEN":     http.StatusConflict,
	"PLATE_TAKEN":         http.StatusConflict,
	"CITY_ALREADY_SERVED": http.StatusConflict,
	"ALREADY_EXISTS":      http.StatusConflict,

	// State machine violations
	"INVALID_STATE":        http.StatusUnprocessableEntity,
	"INVALID_TRANSITION":   http.StatusUnprocessableEntity,
	"CONCURRENCY_CONFLICT": http.StatusConflict,
	"INVALID_INPUT":        http.StatusBadRequest,

	// Generic codes raised across contexts
	ErrCodeBadRequest:   http.StatusBadRequest,
	ErrCodeValidation:   http.StatusBadRequest,
	ErrCodeNotFound:     http.StatusNotFound,
	ErrCodeConflict:     http.StatusConflict,
	ErrCodeUnauthorized: http.StatusUnauthorized,
	ErrCodeForbidden:    http.StatusForbidden,
	ErrCodeInternal:     http.StatusInternalServerError,
}

// GetHTTPStatus resolves an error code to an HTTP status. Codes not in
// the explicit map fall back on naming conventions: *_NOT_FOUND is 404,
// INVALID_* request shapes are 400, everything else is a business rule
// violation and maps to 422.
func GetHTTPStatus(code string) int {
	if status, ok := domainErrorHTTPStatus[code]; ok {
		return status
	}
	if strings.HasSuffix(code, "_NOT_FOUND") {
		return http.StatusNotFound
	}
	if strings.HasPrefix(code, "INVALID_") {
		return http.StatusBadRequest
	}
	if code == "" {
		return http.StatusInternalServerError
	}
	return http.StatusUnprocessableEntity
}
