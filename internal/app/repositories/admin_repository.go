package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/grupoidi/deptoweb/internal/app/models"
	"github.com/grupoidi/deptoweb/internal/db"
)

// AdminRepository handles database operations for admin accounts
type AdminRepository struct {
	db *db.PostgresDB
}

// NewAdminRepository creates a new admin repository
func NewAdminRepository(database *db.PostgresDB) *AdminRepository {
	return &AdminRepository{db: database}
}

// Create inserts a new admin account and fills in its assigned id
func (r *AdminRepository) Create(ctx context.Context, admin *models.Admin) error {
	query := `
		INSERT INTO admins (username, password_hash, created_at)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	err := r.db.Pool.QueryRow(ctx, query, admin.Username, admin.PasswordHash, admin.CreatedAt).Scan(&admin.ID)
	if err != nil {
		return fmt.Errorf("error creating admin: %w", err)
	}

	return nil
}

// GetByUsername retrieves an admin by username; returns (nil, nil) when absent
func (r *AdminRepository) GetByUsername(ctx context.Context, username string) (*models.Admin, error) {
	query := `SELECT id, username, password_hash, created_at FROM admins WHERE username = $1`

	var admin models.Admin
	err := r.db.Pool.QueryRow(ctx, query, username).Scan(
		&admin.ID,
		&admin.Username,
		&admin.PasswordHash,
		&admin.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error retrieving admin: %w", err)
	}

	return &admin, nil
}

// Count returns the number of admin accounts
func (r *AdminRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM admins`).Scan(&count); err != nil {
		return 0, fmt.Errorf("error counting admins: %w", err)
	}
	return count, nil
}
