package application

import (
	"errors"

	"github.com/oksasatya/go-ecommerce-api/internal/domain/repository"
)

// Error taxonomy surfaced to handlers. Handlers map these to statuses and
// safe messages; anything else is a server fault logged with detail.
var (
	ErrDuplicateEmail      = repository.ErrDuplicateEmail
	ErrUserNotFound        = errors.New("user not found")
	ErrProductNotFound     = errors.New("product not found")
	ErrCartItemNotFound    = errors.New("cart item not found")
	ErrInvalidCredentials  = errors.New("invalid email or password")
	ErrInvalidOrExpiredOTP = errors.New("invalid or expired OTP")
	ErrInvalidResetTicket  = errors.New("invalid or expired reset ticket")
)
