package application

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/go-ecommerce-api/internal/domain/entity"
	repo "github.com/oksasatya/go-ecommerce-api/internal/domain/repository"
	"github.com/oksasatya/go-ecommerce-api/pkg/helpers"
)

// memUserRepo mirrors the postgres implementation's contract: lookups return
// (nil, nil) on no row, OTP consumption is conditional on match-and-not-expired.
type memUserRepo struct {
	byID map[string]*entity.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{byID: map[string]*entity.User{}}
}

func (m *memUserRepo) Create(u *entity.User) error {
	for _, x := range m.byID {
		if x.Email == u.Email {
			return repo.ErrDuplicateEmail
		}
	}
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	u.CreatedAt = time.Now()
	u.UpdatedAt = u.CreatedAt
	cp := *u
	m.byID[u.ID] = &cp
	return nil
}

func (m *memUserRepo) GetByID(id string) (*entity.User, error) {
	u, ok := m.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (m *memUserRepo) GetByEmail(email string) (*entity.User, error) {
	for _, u := range m.byID {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *memUserRepo) Update(u *entity.User) error {
	stored, ok := m.byID[u.ID]
	if !ok {
		return nil
	}
	stored.Name = u.Name
	stored.Email = u.Email
	stored.Mobile = u.Mobile
	stored.Password = u.Password
	stored.UpdatedAt = time.Now()
	return nil
}

func (m *memUserRepo) UpdatePassword(id, passwordHash string) error {
	if u, ok := m.byID[id]; ok {
		u.Password = passwordHash
	}
	return nil
}

func (m *memUserRepo) SetRefreshToken(id, token string) error {
	if u, ok := m.byID[id]; ok {
		u.RefreshToken = &token
	}
	return nil
}

func (m *memUserRepo) SetResetOTP(id, otp string, expiry time.Time) error {
	if u, ok := m.byID[id]; ok {
		u.ForgetPasswordOTP = &otp
		u.ForgetPasswordExpiry = &expiry
	}
	return nil
}

func (m *memUserRepo) ConsumeEmailOTP(email, otp string, now time.Time) (*entity.User, error) {
	for _, u := range m.byID {
		if u.Email != email || u.OTP == nil || u.OTPExpires == nil {
			continue
		}
		if !helpers.OTPValid(*u.OTP, *u.OTPExpires, otp, now) {
			continue
		}
		u.OTP = nil
		u.OTPExpires = nil
		u.VerifyEmail = true
		cp := *u
		return &cp, nil
	}
	return nil, nil
}

func (m *memUserRepo) ConsumeResetOTP(email, otp string, now time.Time) (bool, error) {
	for _, u := range m.byID {
		if u.Email != email || u.ForgetPasswordOTP == nil || u.ForgetPasswordExpiry == nil {
			continue
		}
		if !helpers.OTPValid(*u.ForgetPasswordOTP, *u.ForgetPasswordExpiry, otp, now) {
			continue
		}
		u.ForgetPasswordOTP = nil
		u.ForgetPasswordExpiry = nil
		return true, nil
	}
	return false, nil
}

func newTestAuthService(t *testing.T) (*AuthService, *memUserRepo) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	jwt, err := helpers.NewJWTManager("test-access", "test-refresh", time.Hour, 24*time.Hour)
	require.NoError(t, err)

	r := newMemUserRepo()
	return NewAuthService(r, jwt, rdb, nil, nil, false), r
}

func TestRegister(t *testing.T) {
	svc, r := newTestAuthService(t)
	ctx := context.Background()

	u, pair, err := svc.Register(ctx, "Alice", "alice@example.com", "password123")
	require.NoError(t, err)
	require.NotNil(t, u)
	assert.NotEmpty(t, u.ID)
	assert.False(t, u.VerifyEmail)
	require.NotNil(t, u.OTP)
	assert.Len(t, *u.OTP, 6)
	require.NotNil(t, u.OTPExpires)
	assert.NotEmpty(t, pair.AccessToken)
	assert.NotEmpty(t, pair.RefreshToken)

	// password is stored hashed
	stored, err := r.GetByEmail("alice@example.com")
	require.NoError(t, err)
	assert.NotEqual(t, "password123", stored.Password)
	assert.True(t, helpers.CompareHashAndPassword(stored.Password, "password123"))
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, _ := newTestAuthService(t)
	ctx := context.Background()

	_, _, err := svc.Register(ctx, "Alice", "alice@example.com", "password123")
	require.NoError(t, err)

	_, _, err = svc.Register(ctx, "Alice Again", "alice@example.com", "otherpassword")
	assert.ErrorIs(t, err, ErrDuplicateEmail)
}

func TestLogin(t *testing.T) {
	svc, _ := newTestAuthService(t)
	ctx := context.Background()

	u, _, err := svc.Register(ctx, "Alice", "alice@example.com", "password123")
	require.NoError(t, err)

	got, pair, err := svc.Login(ctx, "alice@example.com", "password123")
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)
	assert.NotEmpty(t, pair.AccessToken)

	// unverified accounts may log in, the flag is just reported
	assert.False(t, got.VerifyEmail)
}

func TestLoginBadCredentials(t *testing.T) {
	svc, _ := newTestAuthService(t)
	ctx := context.Background()

	_, _, err := svc.Register(ctx, "Alice", "alice@example.com", "password123")
	require.NoError(t, err)

	_, _, err = svc.Login(ctx, "alice@example.com", "wrongpassword")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	// unknown email fails with the same error
	_, _, err = svc.Login(ctx, "nobody@example.com", "password123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestVerifyEmail(t *testing.T) {
	svc, _ := newTestAuthService(t)
	ctx := context.Background()

	u, _, err := svc.Register(ctx, "Alice", "alice@example.com", "password123")
	require.NoError(t, err)
	code := *u.OTP

	verified, pair, err := svc.VerifyEmail(ctx, "alice@example.com", code)
	require.NoError(t, err)
	assert.True(t, verified.VerifyEmail)
	assert.Nil(t, verified.OTP)
	assert.NotEmpty(t, pair.AccessToken)

	// the code is consumed, replay fails
	_, _, err = svc.VerifyEmail(ctx, "alice@example.com", code)
	assert.ErrorIs(t, err, ErrInvalidOrExpiredOTP)
}

func TestVerifyEmailWrongCode(t *testing.T) {
	svc, _ := newTestAuthService(t)
	ctx := context.Background()

	u, _, err := svc.Register(ctx, "Alice", "alice@example.com", "password123")
	require.NoError(t, err)

	wrong := "000000"
	if *u.OTP == wrong {
		wrong = "000001"
	}
	_, _, err = svc.VerifyEmail(ctx, "alice@example.com", wrong)
	assert.ErrorIs(t, err, ErrInvalidOrExpiredOTP)

	_, _, err = svc.VerifyEmail(ctx, "nobody@example.com", *u.OTP)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestForgotPasswordFlow(t *testing.T) {
	svc, r := newTestAuthService(t)
	ctx := context.Background()

	_, _, err := svc.Register(ctx, "Alice", "alice@example.com", "password123")
	require.NoError(t, err)

	require.NoError(t, svc.ForgotPassword(ctx, "alice@example.com"))
	stored, err := r.GetByEmail("alice@example.com")
	require.NoError(t, err)
	require.NotNil(t, stored.ForgetPasswordOTP)
	code := *stored.ForgetPasswordOTP

	ticket, err := svc.VerifyForgotPasswordOTP(ctx, "alice@example.com", code)
	require.NoError(t, err)
	require.NotEmpty(t, ticket)

	require.NoError(t, svc.ResetPassword(ctx, "alice@example.com", ticket, "newpassword1"))

	_, _, err = svc.Login(ctx, "alice@example.com", "password123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	_, _, err = svc.Login(ctx, "alice@example.com", "newpassword1")
	assert.NoError(t, err)
}

func TestForgotPasswordUnknownEmail(t *testing.T) {
	svc, _ := newTestAuthService(t)
	err := svc.ForgotPassword(context.Background(), "nobody@example.com")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestVerifyForgotPasswordOTPWrongCode(t *testing.T) {
	svc, r := newTestAuthService(t)
	ctx := context.Background()

	_, _, err := svc.Register(ctx, "Alice", "alice@example.com", "password123")
	require.NoError(t, err)
	require.NoError(t, svc.ForgotPassword(ctx, "alice@example.com"))

	stored, err := r.GetByEmail("alice@example.com")
	require.NoError(t, err)
	wrong := "000000"
	if *stored.ForgetPasswordOTP == wrong {
		wrong = "000001"
	}

	_, err = svc.VerifyForgotPasswordOTP(ctx, "alice@example.com", wrong)
	assert.ErrorIs(t, err, ErrInvalidOrExpiredOTP)

	// the correct code still works, a failed attempt does not consume it
	ticket, err := svc.VerifyForgotPasswordOTP(ctx, "alice@example.com", *stored.ForgetPasswordOTP)
	require.NoError(t, err)
	assert.NotEmpty(t, ticket)
}

func TestResetOTPSingleUse(t *testing.T) {
	svc, r := newTestAuthService(t)
	ctx := context.Background()

	_, _, err := svc.Register(ctx, "Alice", "alice@example.com", "password123")
	require.NoError(t, err)
	require.NoError(t, svc.ForgotPassword(ctx, "alice@example.com"))

	stored, err := r.GetByEmail("alice@example.com")
	require.NoError(t, err)
	code := *stored.ForgetPasswordOTP

	_, err = svc.VerifyForgotPasswordOTP(ctx, "alice@example.com", code)
	require.NoError(t, err)

	_, err = svc.VerifyForgotPasswordOTP(ctx, "alice@example.com", code)
	assert.ErrorIs(t, err, ErrInvalidOrExpiredOTP)
}

func TestResetTicketSingleUse(t *testing.T) {
	svc, r := newTestAuthService(t)
	ctx := context.Background()

	_, _, err := svc.Register(ctx, "Alice", "alice@example.com", "password123")
	require.NoError(t, err)
	require.NoError(t, svc.ForgotPassword(ctx, "alice@example.com"))

	stored, err := r.GetByEmail("alice@example.com")
	require.NoError(t, err)
	ticket, err := svc.VerifyForgotPasswordOTP(ctx, "alice@example.com", *stored.ForgetPasswordOTP)
	require.NoError(t, err)

	require.NoError(t, svc.ResetPassword(ctx, "alice@example.com", ticket, "newpassword1"))

	err = svc.ResetPassword(ctx, "alice@example.com", ticket, "anotherpassword")
	assert.ErrorIs(t, err, ErrInvalidResetTicket)
}

func TestResetTicketBoundToEmail(t *testing.T) {
	svc, r := newTestAuthService(t)
	ctx := context.Background()

	_, _, err := svc.Register(ctx, "Alice", "alice@example.com", "password123")
	require.NoError(t, err)
	_, _, err = svc.Register(ctx, "Bob", "bob@example.com", "password123")
	require.NoError(t, err)

	require.NoError(t, svc.ForgotPassword(ctx, "alice@example.com"))
	stored, err := r.GetByEmail("alice@example.com")
	require.NoError(t, err)
	ticket, err := svc.VerifyForgotPasswordOTP(ctx, "alice@example.com", *stored.ForgetPasswordOTP)
	require.NoError(t, err)

	err = svc.ResetPassword(ctx, "bob@example.com", ticket, "stolenpassword")
	assert.ErrorIs(t, err, ErrInvalidResetTicket)
}

func TestResetPasswordBogusTicket(t *testing.T) {
	svc, _ := newTestAuthService(t)
	err := svc.ResetPassword(context.Background(), "alice@example.com", "no-such-ticket", "newpassword1")
	assert.ErrorIs(t, err, ErrInvalidResetTicket)
}

func TestResetPasswordRedisDownIsServerFault(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	jwt, err := helpers.NewJWTManager("test-access", "test-refresh", time.Hour, 24*time.Hour)
	require.NoError(t, err)
	svc := NewAuthService(newMemUserRepo(), jwt, rdb, nil, nil, false)

	mr.Close()

	// a dead ticket store must not read as a bad ticket
	err = svc.ResetPassword(context.Background(), "alice@example.com", "some-ticket", "newpassword1")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidResetTicket)
}

func TestRefresh(t *testing.T) {
	svc, _ := newTestAuthService(t)
	ctx := context.Background()

	u, pair, err := svc.Register(ctx, "Alice", "alice@example.com", "password123")
	require.NoError(t, err)

	got, next, err := svc.Refresh(ctx, pair.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)
	assert.NotEmpty(t, next.AccessToken)
	assert.NotEmpty(t, next.RefreshToken)
}

func TestRefreshRejectsBadToken(t *testing.T) {
	svc, _ := newTestAuthService(t)
	ctx := context.Background()

	_, _, err := svc.Refresh(ctx, "garbage")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	// access tokens cannot be used as refresh tokens
	_, pair, err := svc.Register(ctx, "Alice", "alice@example.com", "password123")
	require.NoError(t, err)
	_, _, err = svc.Refresh(ctx, pair.AccessToken)
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
