package helpers

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"time"
)

// OTPTTL is the validity window for every one-time code issued by the API,
// both email verification and password reset.
const OTPTTL = 10 * time.Minute

// GenOTPCode generates a secure random 6-digit OTP code as a zero-padded string
func GenOTPCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}

// NewOTP returns a fresh code together with its expiry.
func NewOTP(now time.Time) (string, time.Time, error) {
	code, err := GenOTPCode()
	if err != nil {
		return "", time.Time{}, err
	}
	return code, now.Add(OTPTTL), nil
}

// OTPValid is the canonical validity rule for one-time codes: candidate must
// string-equal the stored code and now must be strictly before the expiry.
// The postgres consumers enforce this same condition inside their conditional
// UPDATEs; fakes and tests use this function directly. A mismatch and an
// expired code are indistinguishable to the caller.
func OTPValid(stored string, expiry time.Time, candidate string, now time.Time) bool {
	if stored == "" || candidate == "" {
		return false
	}
	return stored == candidate && now.Before(expiry)
}
