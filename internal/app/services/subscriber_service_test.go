package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grupoidi/deptoweb/internal/app/models"
	"github.com/grupoidi/deptoweb/internal/pkg/apperrors"
)

type fakeSubscriberRepo struct {
	subscribers map[string]*models.Subscriber
	nextID      int64
}

func newFakeSubscriberRepo() *fakeSubscriberRepo {
	return &fakeSubscriberRepo{subscribers: make(map[string]*models.Subscriber)}
}

func (f *fakeSubscriberRepo) Create(_ context.Context, subscriber *models.Subscriber) error {
	f.nextID++
	subscriber.ID = f.nextID
	f.subscribers[subscriber.Email] = subscriber
	return nil
}

func (f *fakeSubscriberRepo) GetByEmail(_ context.Context, email string) (*models.Subscriber, error) {
	return f.subscribers[email], nil
}

func (f *fakeSubscriberRepo) GetAll(_ context.Context, offset, limit int) ([]*models.Subscriber, error) {
	out := make([]*models.Subscriber, 0, len(f.subscribers))
	for _, s := range f.subscribers {
		out = append(out, s)
	}
	return out, nil
}

func (f *fakeSubscriberRepo) ListEmails(_ context.Context) ([]string, error) {
	out := make([]string, 0, len(f.subscribers))
	for email := range f.subscribers {
		out = append(out, email)
	}
	return out, nil
}

func (f *fakeSubscriberRepo) DeleteByEmail(_ context.Context, email string) error {
	delete(f.subscribers, email)
	return nil
}

func TestSubscribeStoresEmail(t *testing.T) {
	svc := NewSubscriberService(newFakeSubscriberRepo())

	subscriber, err := svc.Subscribe(context.Background(), "ana@example.com")
	require.NoError(t, err)
	assert.Equal(t, "ana@example.com", subscriber.Email)
	assert.NotZero(t, subscriber.ID)
}

func TestSubscribeDuplicateConflicts(t *testing.T) {
	svc := NewSubscriberService(newFakeSubscriberRepo())
	ctx := context.Background()

	_, err := svc.Subscribe(ctx, "ana@example.com")
	require.NoError(t, err)

	_, err = svc.Subscribe(ctx, "ana@example.com")
	assert.ErrorIs(t, err, apperrors.ErrEmailAlreadyExists)
}

func TestUnsubscribeUnknownEmail(t *testing.T) {
	svc := NewSubscriberService(newFakeSubscriberRepo())

	err := svc.Unsubscribe(context.Background(), "nadie@example.com")
	assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)
}

func TestUnsubscribeRemovesEmail(t *testing.T) {
	repo := newFakeSubscriberRepo()
	svc := NewSubscriberService(repo)
	ctx := context.Background()

	_, err := svc.Subscribe(ctx, "ana@example.com")
	require.NoError(t, err)

	require.NoError(t, svc.Unsubscribe(ctx, "ana@example.com"))
	assert.Empty(t, repo.subscribers)
}
