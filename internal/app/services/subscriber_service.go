package services

import (
	"context"
	"time"

	"github.com/grupoidi/deptoweb/internal/app/models"
	"github.com/grupoidi/deptoweb/internal/pkg/apperrors"
	"github.com/grupoidi/deptoweb/internal/pkg/dberrors"
)

// SubscriberRepository is the persistence surface the subscription list needs
type SubscriberRepository interface {
	Create(ctx context.Context, subscriber *models.Subscriber) error
	GetByEmail(ctx context.Context, email string) (*models.Subscriber, error)
	GetAll(ctx context.Context, offset, limit int) ([]*models.Subscriber, error)
	ListEmails(ctx context.Context) ([]string, error)
	DeleteByEmail(ctx context.Context, email string) error
}

// SubscriberService manages the blog notification recipient list
type SubscriberService struct {
	subscriberRepo SubscriberRepository
}

// NewSubscriberService creates a new subscriber service
func NewSubscriberService(subscriberRepo SubscriberRepository) *SubscriberService {
	return &SubscriberService{subscriberRepo: subscriberRepo}
}

// Subscribe registers an email for blog notifications. Subscribing an email
// twice is a conflict.
func (s *SubscriberService) Subscribe(ctx context.Context, email string) (*models.Subscriber, error) {
	existing, err := s.subscriberRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperrors.ErrEmailAlreadyExists
	}

	subscriber := &models.Subscriber{
		Email:     email,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.subscriberRepo.Create(ctx, subscriber); err != nil {
		// concurrent subscribe of the same email hits the unique index
		if dberrors.IsUniqueViolation(err) {
			return nil, apperrors.ErrEmailAlreadyExists
		}
		return nil, err
	}

	return subscriber, nil
}

// Unsubscribe removes an email from the recipient list
func (s *SubscriberService) Unsubscribe(ctx context.Context, email string) error {
	existing, err := s.subscriberRepo.GetByEmail(ctx, email)
	if err != nil {
		return err
	}
	if existing == nil {
		return apperrors.NewResourceNotFoundError("el email no está suscripto")
	}

	return s.subscriberRepo.DeleteByEmail(ctx, email)
}

// ListSubscribers retrieves the recipient list with pagination
func (s *SubscriberService) ListSubscribers(ctx context.Context, offset, limit int) ([]*models.Subscriber, error) {
	return s.subscriberRepo.GetAll(ctx, offset, limit)
}
