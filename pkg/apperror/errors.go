package apperror

import (
	"errors"
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

// As extracts an *AppError from anywhere in the error chain.
func As(err error) (*AppError, bool) {
	var appErr *AppError
	ok := errors.As(err, &appErr)
	return appErr, ok
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

// ---- Ledger Business Logic (LED) ----

func ErrWalletNotFound() *AppError {
	return New("LED_001", "Wallet not found", http.StatusNotFound)
}

func ErrWalletLocked() *AppError {
	return New("LED_002", "Wallet is locked", http.StatusLocked)
}

func ErrInsufficientBalance() *AppError {
	return New("LED_003", "Insufficient balance in wallet", http.StatusPaymentRequired)
}

// ErrWalletBusy indicates the wallet row lock could not be acquired in time.
// The one transient error in the taxonomy; callers retry with backoff.
func ErrWalletBusy() *AppError {
	return New("LED_004", "Wallet is busy, retry later", http.StatusServiceUnavailable)
}

func ErrEscrowAlreadySettled() *AppError {
	return New("LED_005", "Escrow has already been released or refunded", http.StatusConflict)
}

func ErrDuplicateTransactionRef() *AppError {
	return New("LED_006", "Transaction reference already recorded", http.StatusConflict)
}

func ErrEscrowNotFound() *AppError {
	return New("LED_007", "No escrow hold found for this escrow id", http.StatusNotFound)
}

func ErrInvalidAmount() *AppError {
	return New("LED_008", "Invalid amount", http.StatusBadRequest)
}

func ErrEntryNotFound() *AppError {
	return New("LED_009", "Ledger entry not found", http.StatusNotFound)
}

func ErrEntryNotReversible() *AppError {
	return New("LED_010", "Only confirmed entries can be reversed", http.StatusConflict)
}

// ---- Audit & Verification (AUD) ----

func ErrChainIntegrityViolation(detail string) *AppError {
	return New("AUD_001", fmt.Sprintf("Chain integrity violation: %s", detail), http.StatusConflict)
}

func ErrReconciliationMismatch() *AppError {
	return New("AUD_002", "Wallet balance does not match ledger history", http.StatusConflict)
}

// ---- System & Infrastructure (SYS) ----

func ErrDatabaseError(err error) *AppError {
	return Wrap("SYS_001", "Internal database error", http.StatusInternalServerError, err)
}

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap("SYS_001", "Internal server error", http.StatusInternalServerError, err)
}

// Validation returns a LED_008-style validation error.
func Validation(message string) *AppError {
	return New("LED_008", message, http.StatusBadRequest)
}
