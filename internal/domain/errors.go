package domain

import (
	"errors"
	"fmt"
)

var (
	ErrValidation               = errors.New("invalid input")
	ErrProductNotFound          = errors.New("product not found")
	ErrNegativeStock            = fmt.Errorf("%w: stock cannot be negative", ErrValidation)
	ErrStateNotFound            = errors.New("state not found")
	ErrNotAuthenticated         = errors.New("not authenticated")
	ErrNotAdmin                 = errors.New("admin access required")
	ErrPaymentMethodUnavailable = errors.New("payment method is not available")
	ErrCheckoutInProgress       = errors.New("checkout already in progress")
	ErrPasswordConfirmation     = fmt.Errorf("%w: passwords do not match", ErrValidation)
)

func validationError(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

