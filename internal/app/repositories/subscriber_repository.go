package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/grupoidi/deptoweb/internal/app/models"
	"github.com/grupoidi/deptoweb/internal/db"
)

// SubscriberRepository handles database operations for blog subscribers
type SubscriberRepository struct {
	db *db.PostgresDB
}

// NewSubscriberRepository creates a new subscriber repository
func NewSubscriberRepository(database *db.PostgresDB) *SubscriberRepository {
	return &SubscriberRepository{db: database}
}

// Create inserts a new subscriber and fills in its assigned id.
// The email column carries a unique constraint; duplicate inserts surface
// as a unique violation for the caller to map.
func (r *SubscriberRepository) Create(ctx context.Context, subscriber *models.Subscriber) error {
	query := `
		INSERT INTO subscribers (email, created_at)
		VALUES ($1, $2)
		RETURNING id
	`

	err := r.db.Pool.QueryRow(ctx, query, subscriber.Email, subscriber.CreatedAt).Scan(&subscriber.ID)
	if err != nil {
		return fmt.Errorf("error creating subscriber: %w", err)
	}

	return nil
}

// GetByEmail retrieves a subscriber by email; returns (nil, nil) when absent
func (r *SubscriberRepository) GetByEmail(ctx context.Context, email string) (*models.Subscriber, error) {
	query := `SELECT id, email, created_at FROM subscribers WHERE email = $1`

	var subscriber models.Subscriber
	err := r.db.Pool.QueryRow(ctx, query, email).Scan(&subscriber.ID, &subscriber.Email, &subscriber.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error retrieving subscriber: %w", err)
	}

	return &subscriber, nil
}

// GetAll retrieves all subscribers ordered by signup time
func (r *SubscriberRepository) GetAll(ctx context.Context, offset, limit int) ([]*models.Subscriber, error) {
	query := `
		SELECT id, email, created_at
		FROM subscribers
		ORDER BY created_at, id
		OFFSET $1 LIMIT $2
	`

	rows, err := r.db.Pool.Query(ctx, query, offset, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var subscribers []*models.Subscriber
	for rows.Next() {
		var subscriber models.Subscriber
		if err := rows.Scan(&subscriber.ID, &subscriber.Email, &subscriber.CreatedAt); err != nil {
			return nil, err
		}
		subscribers = append(subscribers, &subscriber)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return subscribers, nil
}

// ListEmails retrieves every subscriber email
func (r *SubscriberRepository) ListEmails(ctx context.Context) ([]string, error) {
	rows, err := r.db.Pool.Query(ctx, `SELECT email FROM subscribers ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var emails []string
	for rows.Next() {
		var email string
		if err := rows.Scan(&email); err != nil {
			return nil, err
		}
		emails = append(emails, email)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return emails, nil
}

// DeleteByEmail removes a subscriber by email
func (r *SubscriberRepository) DeleteByEmail(ctx context.Context, email string) error {
	cmdTag, err := r.db.Pool.Exec(ctx, `DELETE FROM subscribers WHERE email = $1`, email)
	if err != nil {
		return fmt.Errorf("error deleting subscriber: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrNoRowsAffected
	}

	return nil
}
