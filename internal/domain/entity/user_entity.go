package entity

import (
	"time"
)

// User is the aggregate root for the credential/profile domain.
// Password always holds a bcrypt hash; plaintext never persists.
//
// The OTP pairs are pointers because each code and its expiry are set
// together and cleared together — one of them populated alone is a bug.
type User struct {
	ID        string
	Email     string
	Password  string
	Name      string
	Mobile    string
	AvatarURL string

	// Email verification
	OTP           *string
	OTPExpires    *time.Time
	VerifyEmail   bool

	// Password reset
	ForgetPasswordOTP    *string
	ForgetPasswordExpiry *time.Time

	// Last issued refresh token, stored for auditability only.
	RefreshToken *string

	CreatedAt time.Time
	UpdatedAt time.Time
}
