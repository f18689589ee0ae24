package userinfra

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Abraxas-365/recruitboard/pkg/iam/user"
	"github.com/Abraxas-365/recruitboard/pkg/kernel"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

// PostgresUserRepository implements user.UserRepository using PostgreSQL
type PostgresUserRepository struct {
	db *sqlx.DB
}

// NewPostgresUserRepository creates a new PostgreSQL user repository
func NewPostgresUserRepository(db *sqlx.DB) *PostgresUserRepository {
	return &PostgresUserRepository{db: db}
}

type userModel struct {
	ID           string         `db:"id"`
	Email        string         `db:"email"`
	DisplayName  string         `db:"display_name"`
	PhotoURL     *string        `db:"photo_url"`
	PasswordHash string         `db:"password_hash"`
	Scopes       pq.StringArray `db:"scopes"`
	Active       bool           `db:"active"`
	CreatedAt    time.Time      `db:"created_at"`
	UpdatedAt    time.Time      `db:"updated_at"`
}

func (m *userModel) toEntity() *user.User {
	return &user.User{
		ID:           kernel.UserID(m.ID),
		Email:        kernel.Email(m.Email),
		DisplayName:  kernel.DisplayName(m.DisplayName),
		PhotoURL:     m.PhotoURL,
		PasswordHash: m.PasswordHash,
		Scopes:       []string(m.Scopes),
		Active:       m.Active,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func fromEntity(u *user.User) *userModel {
	return &userModel{
		ID:           u.ID.String(),
		Email:        string(u.Email),
		DisplayName:  string(u.DisplayName),
		PhotoURL:     u.PhotoURL,
		PasswordHash: u.PasswordHash,
		Scopes:       pq.StringArray(u.Scopes),
		Active:       u.Active,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}

const userColumns = `id, email, display_name, photo_url, password_hash, scopes, active, created_at, updated_at`

// Create inserts a new user
func (r *PostgresUserRepository) Create(ctx context.Context, u *user.User) error {
	query := `INSERT INTO users (` + userColumns + `)
		VALUES (:id, :email, :display_name, :photo_url, :password_hash, :scopes, :active, :created_at, :updated_at)`

	if _, err := r.db.NamedExecContext(ctx, query, fromEntity(u)); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" { // unique_violation
			return user.ErrUserAlreadyExists().WithDetail("email", string(u.Email))
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// FindByID retrieves a user by ID
func (r *PostgresUserRepository) FindByID(ctx context.Context, id kernel.UserID) (*user.User, error) {
	var model userModel
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	if err := r.db.GetContext(ctx, &model, query, id.String()); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, user.ErrUserNotFound().WithDetail("user_id", id.String())
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return model.toEntity(), nil
}

// FindByEmail retrieves a user by email
func (r *PostgresUserRepository) FindByEmail(ctx context.Context, email kernel.Email) (*user.User, error) {
	var model userModel
	query := `SELECT ` + userColumns + ` FROM users WHERE lower(email) = lower($1)`
	if err := r.db.GetContext(ctx, &model, query, string(email)); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, user.ErrUserNotFound()
		}
		return nil, fmt.Errorf("find user by email: %w", err)
	}
	return model.toEntity(), nil
}
