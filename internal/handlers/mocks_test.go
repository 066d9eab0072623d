package handlers

import (
	"context"

	"portfolio-api/internal/models"
	"portfolio-api/internal/notify"
	"portfolio-api/internal/repository"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/v2/bson"
)

type MockCollaborationStore struct {
	mock.Mock
}

func (m *MockCollaborationStore) Create(ctx context.Context, c *models.Collaboration) error {
	args := m.Called(ctx, c)
	if args.Error(0) == nil {
		c.ID = bson.NewObjectID()
	}
	return args.Error(0)
}

type MockGuestbookStore struct {
	mock.Mock
}

func (m *MockGuestbookStore) Create(ctx context.Context, entry *models.GuestbookEntry) error {
	args := m.Called(ctx, entry)
	if args.Error(0) == nil {
		entry.ID = bson.NewObjectID()
	}
	return args.Error(0)
}

func (m *MockGuestbookStore) List(ctx context.Context, opts repository.ListOptions) ([]models.GuestbookEntry, error) {
	args := m.Called(ctx, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.GuestbookEntry), args.Error(1)
}

type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) Notify(ctx context.Context, n notify.Notification) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}
