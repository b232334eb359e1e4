package application

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-ecommerce-api/internal/domain/entity"
	repo "github.com/oksasatya/go-ecommerce-api/internal/domain/repository"
	"github.com/oksasatya/go-ecommerce-api/pkg/helpers"
	"github.com/oksasatya/go-ecommerce-api/pkg/mailer"
)

const resetTicketTTL = 15 * time.Minute

func resetTicketKey(t string) string { return "pwd:reset:ticket:" + t }

// AuthService orchestrates the credential lifecycle: registration, email
// verification, login, token refresh and password reset. All emails go out
// through the queue; delivery is best-effort and never rolls back a
// committed write.
type AuthService struct {
	Repo        repo.UserRepository
	JWT         *helpers.JWTManager
	Redis       *redis.Client
	Pub         *helpers.RabbitPublisher
	Logger      *logrus.Logger
	MailEnabled bool
}

func NewAuthService(r repo.UserRepository, jwt *helpers.JWTManager, rdb *redis.Client, pub *helpers.RabbitPublisher, logger *logrus.Logger, mailEnabled bool) *AuthService {
	return &AuthService{Repo: r, JWT: jwt, Redis: rdb, Pub: pub, Logger: logger, MailEnabled: mailEnabled}
}

type TokenPair struct {
	AccessToken        string
	AccessTokenExpiry  time.Time
	RefreshToken       string
	RefreshTokenExpiry time.Time
}

// IssueTokens generates an access/refresh pair and records the refresh token
// on the user row for auditability. A failed audit write is logged, not fatal.
func (s *AuthService) IssueTokens(ctx context.Context, u *entity.User) (TokenPair, error) {
	access, aexp, err := s.JWT.GenerateAccessToken(u.ID)
	if err != nil {
		return TokenPair{}, err
	}
	refresh, rexp, err := s.JWT.GenerateRefreshToken(u.ID)
	if err != nil {
		return TokenPair{}, err
	}
	if err := s.Repo.SetRefreshToken(u.ID, refresh); err != nil && s.Logger != nil {
		s.Logger.WithError(err).WithField("user_id", u.ID).Warn("store refresh token failed")
	}
	return TokenPair{AccessToken: access, AccessTokenExpiry: aexp, RefreshToken: refresh, RefreshTokenExpiry: rexp}, nil
}

// Register creates a pending-verification user with a fresh OTP and issues
// tokens. The duplicate check is the insert itself, so concurrent
// registrations for one email race on the unique index and the loser gets
// ErrDuplicateEmail.
func (s *AuthService) Register(ctx context.Context, name, email, password string) (*entity.User, TokenPair, error) {
	hash, err := helpers.HashPassword(password)
	if err != nil {
		return nil, TokenPair{}, err
	}
	code, expiry, err := helpers.NewOTP(time.Now())
	if err != nil {
		return nil, TokenPair{}, err
	}

	u := &entity.User{
		Email:      email,
		Password:   hash,
		Name:       name,
		OTP:        &code,
		OTPExpires: &expiry,
	}
	if err := s.Repo.Create(u); err != nil {
		return nil, TokenPair{}, err
	}

	pair, err := s.IssueTokens(ctx, u)
	if err != nil {
		return nil, TokenPair{}, err
	}

	s.enqueueEmail(ctx, email, "Verify Your Email - OTP",
		fmt.Sprintf("Your OTP for account verification is: %s. It will expire in 10 minutes.", code))

	return u, pair, nil
}

// Login authenticates by email/password. Unknown email and wrong password
// return the same error so responses never reveal which one it was.
// Unverified accounts may log in; the response carries verify_email so the
// client can prompt for verification.
func (s *AuthService) Login(ctx context.Context, email, password string) (*entity.User, TokenPair, error) {
	u, err := s.Repo.GetByEmail(email)
	if err != nil {
		return nil, TokenPair{}, err
	}
	if u == nil || !helpers.CompareHashAndPassword(u.Password, password) {
		return nil, TokenPair{}, ErrInvalidCredentials
	}
	pair, err := s.IssueTokens(ctx, u)
	if err != nil {
		return nil, TokenPair{}, err
	}
	return u, pair, nil
}

// VerifyEmail consumes the registration OTP. The repository clears the OTP
// pair and flips verify_email in one conditional update, so a replayed or
// expired code fails identically to a wrong one.
func (s *AuthService) VerifyEmail(ctx context.Context, email, otp string) (*entity.User, TokenPair, error) {
	existing, err := s.Repo.GetByEmail(email)
	if err != nil {
		return nil, TokenPair{}, err
	}
	if existing == nil {
		return nil, TokenPair{}, ErrUserNotFound
	}

	u, err := s.Repo.ConsumeEmailOTP(email, otp, time.Now())
	if err != nil {
		return nil, TokenPair{}, err
	}
	if u == nil {
		return nil, TokenPair{}, ErrInvalidOrExpiredOTP
	}

	pair, err := s.IssueTokens(ctx, u)
	if err != nil {
		return nil, TokenPair{}, err
	}
	return u, pair, nil
}

// ForgotPassword stores a fresh reset OTP and queues the email. The caller
// responds success once the OTP is persisted; delivery is not awaited.
func (s *AuthService) ForgotPassword(ctx context.Context, email string) error {
	u, err := s.Repo.GetByEmail(email)
	if err != nil {
		return err
	}
	if u == nil {
		return ErrUserNotFound
	}
	code, expiry, err := helpers.NewOTP(time.Now())
	if err != nil {
		return err
	}
	if err := s.Repo.SetResetOTP(u.ID, code, expiry); err != nil {
		return err
	}

	s.enqueueEmail(ctx, u.Email, "Password Reset OTP",
		fmt.Sprintf("Your OTP is %s. It will expire in 10 minutes.", code))
	return nil
}

// VerifyForgotPasswordOTP consumes the reset OTP and mints a single-use
// ticket that ResetPassword requires, binding the two steps together.
func (s *AuthService) VerifyForgotPasswordOTP(ctx context.Context, email, otp string) (string, error) {
	u, err := s.Repo.GetByEmail(email)
	if err != nil {
		return "", err
	}
	if u == nil {
		return "", ErrUserNotFound
	}

	ok, err := s.Repo.ConsumeResetOTP(email, otp, time.Now())
	if err != nil {
		return "", err
	}
	if !ok {
		return "", ErrInvalidOrExpiredOTP
	}

	ticket, err := genToken(32)
	if err != nil {
		return "", err
	}
	if err := s.Redis.Set(ctx, resetTicketKey(ticket), email, resetTicketTTL).Err(); err != nil {
		return "", err
	}
	return ticket, nil
}

// ResetPassword redeems the ticket and rehashes the password. GETDEL makes
// the ticket single-use even under concurrent submissions. Only a missing
// key means a bad ticket; any other Redis failure is a server fault.
func (s *AuthService) ResetPassword(ctx context.Context, email, ticket, newPassword string) error {
	owner, err := s.Redis.GetDel(ctx, resetTicketKey(ticket)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return ErrInvalidResetTicket
		}
		return err
	}
	if owner == "" || owner != email {
		return ErrInvalidResetTicket
	}

	u, err := s.Repo.GetByEmail(email)
	if err != nil {
		return err
	}
	if u == nil {
		return ErrUserNotFound
	}

	hash, err := helpers.HashPassword(newPassword)
	if err != nil {
		return err
	}
	return s.Repo.UpdatePassword(u.ID, hash)
}

// Refresh exchanges a valid refresh token for a new pair.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*entity.User, TokenPair, error) {
	claims, err := s.JWT.ParseRefreshToken(refreshToken)
	if err != nil {
		return nil, TokenPair{}, ErrInvalidCredentials
	}
	u, err := s.Repo.GetByID(claims.UserID)
	if err != nil {
		return nil, TokenPair{}, err
	}
	if u == nil {
		return nil, TokenPair{}, ErrInvalidCredentials
	}
	pair, err := s.IssueTokens(ctx, u)
	if err != nil {
		return nil, TokenPair{}, err
	}
	return u, pair, nil
}

func (s *AuthService) enqueueEmail(ctx context.Context, to, subject, text string) {
	if !s.MailEnabled || s.Pub == nil {
		return
	}
	job := mailer.EmailJob{To: to, Subject: subject, Text: text}
	if err := s.Pub.PublishJSON(ctx, job); err != nil && s.Logger != nil {
		s.Logger.WithError(err).WithField("to", to).Warn("failed to enqueue email")
	}
}

func genToken(n int) (string, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
