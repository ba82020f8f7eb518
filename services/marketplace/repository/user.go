package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgconn"

	"github.com/homeconnect/backend/internal/pkg/models"
	"github.com/homeconnect/backend/services/marketplace"
)

const pgUniqueViolation = "23505"

// CreateUser persists a new user. The MSISDN column is unique.
func (r *MarketplaceRepository) CreateUser(ctx context.Context, user *models.User) error {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now
	user.IsActive = true

	query := `
		INSERT INTO users (id, msisdn, fullname, role, bio, city, password_hash, created_at, updated_at, is_active)
		VALUES (:id, :msisdn, :fullname, :role, :bio, :city, :password_hash, :created_at, :updated_at, :is_active)`

	if _, err := r.db.NamedExecContext(ctx, query, user); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return marketplace.ErrUserExists
		}
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// GetUserByMSISDN retrieves a user by phone number
func (r *MarketplaceRepository) GetUserByMSISDN(ctx context.Context, msisdn string) (*models.User, error) {
	var user models.User
	query := `
		SELECT id, msisdn, fullname, role, bio, city, password_hash, created_at, updated_at, is_active
		FROM users
		WHERE msisdn = $1`

	err := r.db.GetContext(ctx, &user, query, msisdn)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, marketplace.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user by msisdn: %w", err)
	}
	return &user, nil
}

// DeactivateUser marks a user inactive. The row is kept so payment and
// request history stays intact.
func (r *MarketplaceRepository) DeactivateUser(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE users SET is_active = false, updated_at = $1 WHERE id = $2`

	result, err := r.db.ExecContext(ctx, query, time.Now(), id)
	if err != nil {
		return fmt.Errorf("failed to deactivate user: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return marketplace.ErrUserNotFound
	}
	return nil
}

// GetUserByID retrieves a user by id, attaching the provider profile for
// provider users
func (r *MarketplaceRepository) GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	var user models.User
	query := `
		SELECT id, msisdn, fullname, role, bio, city, password_hash, created_at, updated_at, is_active
		FROM users
		WHERE id = $1`

	err := r.db.GetContext(ctx, &user, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, marketplace.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user by id: %w", err)
	}

	if user.Role == models.RoleProvider {
		profile, err := r.GetProviderProfile(ctx, user.ID)
		if err != nil && !errors.Is(err, marketplace.ErrProviderNotFound) {
			return nil, err
		}
		user.Provider = profile
	}

	return &user, nil
}
