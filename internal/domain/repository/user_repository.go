package repository

import (
	"time"

	"github.com/oksasatya/go-ecommerce-api/internal/domain/entity"
)

// UserRepository defines the interface for user-related database operations.
// Lookups return (nil, nil) when no record exists; callers decide the
// HTTP-equivalent response.
type UserRepository interface {
	Create(u *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)
	Update(u *entity.User) error
	UpdatePassword(id, passwordHash string) error
	SetRefreshToken(id, token string) error
	SetResetOTP(id, otp string, expiry time.Time) error

	// ConsumeEmailOTP atomically clears the verification OTP pair and flips
	// verify_email when the stored code is valid for the candidate at now.
	// Validity is exactly helpers.OTPValid: string-equal code, now strictly
	// before expiry. It returns the updated user, or (nil, nil) when no row
	// matched; code mismatch and expiry are indistinguishable.
	ConsumeEmailOTP(email, otp string, now time.Time) (*entity.User, error)

	// ConsumeResetOTP atomically clears the reset OTP pair under the same
	// helpers.OTPValid condition and reports whether a row matched.
	ConsumeResetOTP(email, otp string, now time.Time) (bool, error)
}
