package helpers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenOTPCode(t *testing.T) {
	for i := 0; i < 50; i++ {
		code, err := GenOTPCode()
		require.NoError(t, err)
		require.Len(t, code, 6)
		for _, r := range code {
			assert.True(t, r >= '0' && r <= '9', "non-digit in OTP: %q", code)
		}
	}
}

func TestNewOTP(t *testing.T) {
	now := time.Now()
	code, expiry, err := NewOTP(now)
	require.NoError(t, err)
	assert.Len(t, code, 6)
	assert.Equal(t, now.Add(OTPTTL), expiry)
}

func TestOTPValid(t *testing.T) {
	now := time.Now()
	expiry := now.Add(OTPTTL)

	assert.True(t, OTPValid("042137", expiry, "042137", now))
	assert.True(t, OTPValid("042137", expiry, "042137", expiry.Add(-time.Second)))

	// exactly at expiry is too late
	assert.False(t, OTPValid("042137", expiry, "042137", expiry))
	assert.False(t, OTPValid("042137", expiry, "042137", expiry.Add(time.Second)))

	assert.False(t, OTPValid("042137", expiry, "042138", now))
	assert.False(t, OTPValid("", expiry, "", now))
	assert.False(t, OTPValid("042137", expiry, "", now))
	assert.False(t, OTPValid("", expiry, "042137", now))
}
