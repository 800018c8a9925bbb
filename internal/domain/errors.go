package domain

import "errors"

// Caller mistakes. These are surfaced as-is and never retried.
var (
	ErrInvalidAmount      = errors.New("amount must be positive")
	ErrAmountTooLarge     = errors.New("amount exceeds the allowed maximum")
	ErrDescriptionTooLong = errors.New("description is too long")
	ErrInvalidPercentage  = errors.New("percentage must be between 1 and 100")
	ErrInvalidLoanTerms   = errors.New("invalid loan terms")
	ErrInvalidName        = errors.New("name must contain only letters and digits")
	ErrInvalidEmail       = errors.New("invalid email format")
	ErrWeakPassword       = errors.New("password must be at least 8 characters with upper, lower, digit and special characters")

	ErrUserExists         = errors.New("email already registered")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNoActiveLoan       = errors.New("no active loan to repay")

	ErrInsufficientFunds = errors.New("insufficient balance")
	ErrAccountBlocked    = errors.New("account has an overdue loan")
)

// IsValidationError reports whether err belongs to the validation family,
// rejected before any write happens.
func IsValidationError(err error) bool {
	for _, target := range []error{
		ErrInvalidAmount, ErrAmountTooLarge, ErrDescriptionTooLong,
		ErrInvalidPercentage, ErrInvalidLoanTerms,
		ErrInvalidName, ErrInvalidEmail, ErrWeakPassword,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
