package apperror

import (
	"fmt"
	"net/http"
)

// AppError is a structured error that maps to HTTP responses.
type AppError struct {
	Code       string `json:"error_code"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`
	Err        error  `json:"-"` // Wrapped internal error (not exposed to client)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError.
func New(code string, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap wraps an internal error with an AppError.
func Wrap(code string, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// ---- Access Control (ACL) ----

func ErrAccessDenied() *AppError {
	return New("ACL_001", "You don't have access rights.", http.StatusForbidden)
}

// ErrMissingRole mirrors the AccessControl revert text. Both arguments are
// expected in lowercase 0x-hex.
func ErrMissingRole(account, role string) *AppError {
	return New("ACL_002",
		fmt.Sprintf("AccessControl: account %s is missing role %s", account, role),
		http.StatusForbidden)
}

func ErrRenounceForOther() *AppError {
	return New("ACL_003", "AccessControl: can only renounce roles for self", http.StatusForbidden)
}

func ErrUnknownRole() *AppError {
	return New("ACL_004", "Unknown role", http.StatusNotFound)
}

// ---- Tax Registry (TAX) ----

func ErrInvalidRecipient() *AppError {
	return New("TAX_001", "Invalid recipient address.", http.StatusUnprocessableEntity)
}

func ErrIdentifierNotFound() *AppError {
	return New("TAX_002", "ID does not exist.", http.StatusNotFound)
}

func ErrInvalidPercentage() *AppError {
	return New("TAX_003", "Tax percentage must be between 0 and 100", http.StatusBadRequest)
}

func ErrTaxCapExceeded(limit uint8) *AppError {
	return New("TAX_004", fmt.Sprintf("Total tax percentage exceeds %d", limit), http.StatusUnprocessableEntity)
}

// ---- Token Ledger (TOK) ----

func ErrInsufficientBalance() *AppError {
	return New("TOK_001", "ERC20: transfer amount exceeds balance", http.StatusUnprocessableEntity)
}

func ErrInvalidAmount() *AppError {
	return New("TOK_002", "Invalid amount", http.StatusBadRequest)
}

func ErrInvalidAddress() *AppError {
	return New("TOK_003", "Invalid address", http.StatusBadRequest)
}

func ErrInsufficientAllowance() *AppError {
	return New("TOK_004", "ERC20: insufficient allowance", http.StatusUnprocessableEntity)
}

func ErrAlreadyDeployed() *AppError {
	return New("TOK_005", "Token already deployed", http.StatusConflict)
}

func ErrNotDeployed() *AppError {
	return New("TOK_006", "Token not deployed", http.StatusServiceUnavailable)
}

func ErrNotFound(entity string) *AppError {
	return New("TOK_007", fmt.Sprintf("%s not found", entity), http.StatusNotFound)
}

// ---- Authentication (AUTH) ----

func ErrChallengeNotFound() *AppError {
	return New("AUTH_001", "Sign-in challenge not found or expired", http.StatusUnauthorized)
}

func ErrInvalidSignature() *AppError {
	return New("AUTH_002", "Invalid signature", http.StatusUnauthorized)
}

func ErrInvalidToken() *AppError {
	return New("AUTH_003", "Invalid or expired token", http.StatusUnauthorized)
}

// ---- Rate Limiting (RATE) ----

func ErrRateLimitExceeded() *AppError {
	return New("RATE_001", "Rate limit exceeded", http.StatusTooManyRequests)
}

// ---- System & Infrastructure (SYS) ----

func ErrDatabaseError(err error) *AppError {
	return Wrap("SYS_001", "Internal database error", http.StatusInternalServerError, err)
}

func ErrLockTimeout(err error) *AppError {
	return Wrap("SYS_002", "Lock acquisition timeout", http.StatusServiceUnavailable, err)
}

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap("SYS_001", "Internal server error", http.StatusInternalServerError, err)
}

// Validation returns a request validation error.
func Validation(message string) *AppError {
	return New("REQ_001", message, http.StatusBadRequest)
}
