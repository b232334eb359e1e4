package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/oksasatya/go-ecommerce-api/internal/domain/entity"
	"github.com/oksasatya/go-ecommerce-api/internal/domain/repository"
)

const uniqueViolation = "23505"

const userColumns = `id, email, password_hash, name, mobile, avatar_url,
	otp, otp_expires, verify_email,
	forget_password_otp, forget_password_expiry,
	refresh_token, created_at, updated_at`

type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

func scanUser(row pgx.Row) (*entity.User, error) {
	u := &entity.User{}
	err := row.Scan(&u.ID, &u.Email, &u.Password, &u.Name, &u.Mobile, &u.AvatarURL,
		&u.OTP, &u.OTPExpires, &u.VerifyEmail,
		&u.ForgetPasswordOTP, &u.ForgetPasswordExpiry,
		&u.RefreshToken, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return u, nil
}

func (r *UserRepository) Create(u *entity.User) error {
	ctx := context.Background()
	row := r.pool.QueryRow(ctx, `
		INSERT INTO users (email, password_hash, name, mobile, avatar_url, otp, otp_expires)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at
	`, u.Email, u.Password, u.Name, u.Mobile, u.AvatarURL, u.OTP, u.OTPExpires)

	if err := row.Scan(&u.ID, &u.CreatedAt, &u.UpdatedAt); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return repository.ErrDuplicateEmail
		}
		return err
	}
	return nil
}

func (r *UserRepository) GetByID(id string) (*entity.User, error) {
	row := r.pool.QueryRow(context.Background(),
		`SELECT `+userColumns+` FROM users WHERE id = $1`, id)
	return scanUser(row)
}

func (r *UserRepository) GetByEmail(email string) (*entity.User, error) {
	row := r.pool.QueryRow(context.Background(),
		`SELECT `+userColumns+` FROM users WHERE email = $1`, email)
	return scanUser(row)
}

func (r *UserRepository) Update(u *entity.User) error {
	ctx := context.Background()
	u.UpdatedAt = time.Now()

	res, err := r.pool.Exec(ctx, `
		UPDATE users
		SET email = $1, password_hash = $2, name = $3, mobile = $4, avatar_url = $5, updated_at = $6
		WHERE id = $7
	`, u.Email, u.Password, u.Name, u.Mobile, u.AvatarURL, u.UpdatedAt, u.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return repository.ErrDuplicateEmail
		}
		return err
	}
	if res.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *UserRepository) UpdatePassword(id, passwordHash string) error {
	res, err := r.pool.Exec(context.Background(), `
		UPDATE users SET password_hash = $1, updated_at = now() WHERE id = $2
	`, passwordHash, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *UserRepository) SetRefreshToken(id, token string) error {
	_, err := r.pool.Exec(context.Background(), `
		UPDATE users SET refresh_token = $1, updated_at = now() WHERE id = $2
	`, token, id)
	return err
}

func (r *UserRepository) SetResetOTP(id, otp string, expiry time.Time) error {
	res, err := r.pool.Exec(context.Background(), `
		UPDATE users
		SET forget_password_otp = $1, forget_password_expiry = $2, updated_at = now()
		WHERE id = $3
	`, otp, expiry, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// ConsumeEmailOTP is a compare-and-set: the WHERE clause re-checks the code
// and expiry so concurrent submissions of the same OTP cannot both win.
func (r *UserRepository) ConsumeEmailOTP(email, otp string, now time.Time) (*entity.User, error) {
	row := r.pool.QueryRow(context.Background(), `
		UPDATE users
		SET otp = NULL, otp_expires = NULL, verify_email = TRUE, updated_at = now()
		WHERE email = $1 AND otp = $2 AND otp_expires > $3
		RETURNING `+userColumns, email, otp, now)
	return scanUser(row)
}

func (r *UserRepository) ConsumeResetOTP(email, otp string, now time.Time) (bool, error) {
	res, err := r.pool.Exec(context.Background(), `
		UPDATE users
		SET forget_password_otp = NULL, forget_password_expiry = NULL, updated_at = now()
		WHERE email = $1 AND forget_password_otp = $2 AND forget_password_expiry > $3
	`, email, otp, now)
	if err != nil {
		return false, err
	}
	return res.RowsAffected() == 1, nil
}

var _ repository.UserRepository = (*UserRepository)(nil)
