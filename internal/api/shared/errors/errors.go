package errors

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/0xHoneyJar/loa-freeside-sub007/internal/domain"
)

// ErrorCode represents a standardized error code
type ErrorCode string

const (
	// Client errors (4xx)
	ErrCodeBadRequest       ErrorCode = "bad_request"
	ErrCodeNotFound         ErrorCode = "not_found"
	ErrCodeValidationFailed ErrorCode = "validation_failed"
	ErrCodeUnauthorized     ErrorCode = "unauthorized"
	ErrCodeForbidden        ErrorCode = "forbidden"

	// Ledger errors
	ErrCodeInsufficientBalance       ErrorCode = "insufficient_balance"
	ErrCodeReservationNotActive      ErrorCode = "reservation_not_active"
	ErrCodeActualCostExceedsReserved ErrorCode = "actual_cost_exceeds_reserved"
	ErrCodeFinalizationConflict      ErrorCode = "finalization_conflict"
	ErrCodeAccountMismatch           ErrorCode = "account_mismatch"
	ErrCodeDailyCapExceeded          ErrorCode = "daily_cap_exceeded"
	ErrCodeCampaignBudgetExceeded    ErrorCode = "campaign_budget_exceeded"
	ErrCodeGrantAlreadyIssued        ErrorCode = "grant_already_issued"
	ErrCodeDuplicateSourceRef        ErrorCode = "duplicate_source_ref"

	// Server errors (5xx)
	ErrCodeInternalError ErrorCode = "internal_error"
	ErrCodeDatabaseError ErrorCode = "database_error"
	ErrCodeServiceError  ErrorCode = "service_error"
)

// APIError represents a structured API error that carries error code and details
type APIError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Details string    `json:"details,omitempty"`
	// Cause is the underlying error; logged, never serialized
	Cause error `json:"-"`
}

func (e *APIError) Error() string {
	jsonErr, _ := json.Marshal(e)
	return string(jsonErr)
}

func (e *APIError) Unwrap() error {
	return e.Cause
}

// StatusCode returns the HTTP status of the error code
func (e *APIError) StatusCode() int {
	switch e.Code {
	case ErrCodeBadRequest:
		return http.StatusBadRequest
	case ErrCodeValidationFailed, ErrCodeActualCostExceedsReserved:
		return http.StatusUnprocessableEntity
	case ErrCodeNotFound:
		return http.StatusNotFound
	case ErrCodeUnauthorized:
		return http.StatusUnauthorized
	case ErrCodeForbidden, ErrCodeAccountMismatch:
		return http.StatusForbidden
	case ErrCodeInsufficientBalance, ErrCodeCampaignBudgetExceeded:
		return http.StatusPaymentRequired
	case ErrCodeReservationNotActive, ErrCodeFinalizationConflict, ErrCodeGrantAlreadyIssued, ErrCodeDuplicateSourceRef:
		return http.StatusConflict
	case ErrCodeDailyCapExceeded:
		return http.StatusTooManyRequests
	case ErrCodeServiceError:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// domainErrors maps ledger sentinels to API errors; the first match wins
var domainErrors = []struct {
	target error
	code   ErrorCode
}{
	{domain.ErrInvalidAmount, ErrCodeValidationFailed},
	{domain.ErrInvalidArgument, ErrCodeValidationFailed},
	{domain.ErrInvalidEntityType, ErrCodeValidationFailed},
	{domain.ErrAccountNotFound, ErrCodeNotFound},
	{domain.ErrReservationNotFound, ErrCodeNotFound},
	{domain.ErrCampaignNotFound, ErrCodeNotFound},
	{domain.ErrDLQEntryNotFound, ErrCodeNotFound},
	{domain.ErrInsufficientBalance, ErrCodeInsufficientBalance},
	{domain.ErrReservationNotActive, ErrCodeReservationNotActive},
	{domain.ErrActualCostExceedsReserved, ErrCodeActualCostExceedsReserved},
	{domain.ErrFinalizationConflict, ErrCodeFinalizationConflict},
	{domain.ErrAccountMismatch, ErrCodeAccountMismatch},
	{domain.ErrDailyCapExceeded, ErrCodeDailyCapExceeded},
	{domain.ErrCampaignBudgetExceeded, ErrCodeCampaignBudgetExceeded},
	{domain.ErrGrantAlreadyIssued, ErrCodeGrantAlreadyIssued},
	{domain.ErrDuplicateSourceRef, ErrCodeDuplicateSourceRef},
}

// FromError converts any error into an APIError.
// Ledger errors keep their message; anything else becomes an opaque internal error.
func FromError(err error) *APIError {
	if err == nil {
		return nil
	}

	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr
	}

	for _, m := range domainErrors {
		if errors.Is(err, m.target) {
			return &APIError{Code: m.code, Message: err.Error(), Cause: err}
		}
	}

	return &APIError{Code: ErrCodeInternalError, Message: "Internal server error", Cause: err}
}

// Error constructors for common error types
func NewBadRequestError(message string, details ...string) *APIError {
	return &APIError{
		Code:    ErrCodeBadRequest,
		Message: message,
		Details: strings.Join(details, ", "),
	}
}

func NewNotFoundError(message string, details ...string) *APIError {
	return &APIError{
		Code:    ErrCodeNotFound,
		Message: message,
		Details: strings.Join(details, ", "),
	}
}

func NewValidationError(details ...string) *APIError {
	return &APIError{
		Code:    ErrCodeValidationFailed,
		Message: "Validation failed",
		Details: strings.Join(details, ", "),
	}
}

func NewUnauthorizedError(message string, details ...string) *APIError {
	return &APIError{
		Code:    ErrCodeUnauthorized,
		Message: message,
		Details: strings.Join(details, ", "),
	}
}

func NewForbiddenError(message string, details ...string) *APIError {
	return &APIError{
		Code:    ErrCodeForbidden,
		Message: message,
		Details: strings.Join(details, ", "),
	}
}

func NewInternalError(message string, details ...string) *APIError {
	return &APIError{
		Code:    ErrCodeInternalError,
		Message: message,
		Details: strings.Join(details, ", "),
	}
}

func NewDatabaseError(message string, details ...string) *APIError {
	return &APIError{
		Code:    ErrCodeDatabaseError,
		Message: message,
		Details: strings.Join(details, ", "),
	}
}
