package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spookymotion/signup-api/internal/domain/entity"
	"github.com/spookymotion/signup-api/internal/domain/repository"
)

// Postgres unique_violation
const uniqueViolationCode = "23505"

type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

// Save upserts the aggregate keyed by id. A fresh insert that collides with
// another record's email trips the unique index on email, which is the only
// thing that actually enforces uniqueness under concurrent registrations;
// that violation surfaces as entity.ErrEmailAlreadyExists.
func (r *UserRepository) Save(ctx context.Context, u *entity.User) error {
	var codeValue *string
	var codeExpiresAt *time.Time
	if c := u.ActivationCode(); c != nil {
		v := c.Value()
		exp := c.ExpiresAt()
		codeValue = &v
		codeExpiresAt = &exp
	}

	_, err := r.pool.Exec(ctx, `
		INSERT INTO users (id, email, password_hash, is_active, activation_code, code_expires_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (id) DO UPDATE SET
			email = EXCLUDED.email,
			password_hash = EXCLUDED.password_hash,
			is_active = EXCLUDED.is_active,
			activation_code = EXCLUDED.activation_code,
			code_expires_at = EXCLUDED.code_expires_at,
			updated_at = EXCLUDED.updated_at
	`, u.ID(), u.Email().String(), u.PasswordHash(), u.IsActive(), codeValue, codeExpiresAt, u.CreatedAt(), u.UpdatedAt())
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return entity.ErrEmailAlreadyExists
		}
		return fmt.Errorf("save user: %w", err)
	}
	return nil
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*entity.User, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT id, email, password_hash, is_active, activation_code, code_expires_at, created_at, updated_at
		FROM users
		WHERE id = $1
	`, id)
	return scanUser(row)
}

func (r *UserRepository) FindByEmail(ctx context.Context, email entity.Email) (*entity.User, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT id, email, password_hash, is_active, activation_code, code_expires_at, created_at, updated_at
		FROM users
		WHERE email = $1
	`, email.String())
	return scanUser(row)
}

func scanUser(row pgx.Row) (*entity.User, error) {
	var (
		id, emailRaw, passwordHash string
		isActive                   bool
		codeValue                  *string
		codeExpiresAt              *time.Time
		createdAt, updatedAt       time.Time
	)
	if err := row.Scan(&id, &emailRaw, &passwordHash, &isActive, &codeValue, &codeExpiresAt, &createdAt, &updatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entity.ErrUserNotFound
		}
		return nil, fmt.Errorf("scan user: %w", err)
	}

	email, err := entity.NewEmail(emailRaw)
	if err != nil {
		return nil, fmt.Errorf("stored email %q: %w", emailRaw, err)
	}

	var code *entity.ActivationCode
	if codeValue != nil && codeExpiresAt != nil {
		c := entity.RehydrateActivationCode(*codeValue, *codeExpiresAt)
		code = &c
	}

	return entity.RehydrateUser(id, email, passwordHash, isActive, code, createdAt, updatedAt), nil
}

var _ repository.UserRepository = (*UserRepository)(nil)
