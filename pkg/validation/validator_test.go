package validation

import (
	"testing"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,pwd"`
	OTP      string `json:"otp" binding:"required,otp"`
}

func TestToDetails(t *testing.T) {
	Init()
	v, ok := binding.Validator.Engine().(*validator.Validate)
	require.True(t, ok)

	err := v.Struct(sampleRequest{Email: "bad", Password: "short", OTP: "12x456"})
	require.Error(t, err)

	details := ToDetails(err)
	assert.Equal(t, "must be a valid email", details["email"])
	assert.Equal(t, "min length 8", details["password"])
	assert.Equal(t, "must be a 6-digit code", details["otp"])
}

func TestToDetailsNil(t *testing.T) {
	assert.Nil(t, ToDetails(nil))
}

func TestToDetailsValid(t *testing.T) {
	Init()
	v, ok := binding.Validator.Engine().(*validator.Validate)
	require.True(t, ok)

	err := v.Struct(sampleRequest{Email: "a@b.test", Password: "longenough", OTP: "123456"})
	assert.NoError(t, err)
}
