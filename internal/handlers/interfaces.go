package handlers

import (
	"context"

	"portfolio-api/internal/models"
	"portfolio-api/internal/repository"
)

type CollaborationStore interface {
	Create(ctx context.Context, c *models.Collaboration) error
}

type GuestbookStore interface {
	Create(ctx context.Context, entry *models.GuestbookEntry) error
	List(ctx context.Context, opts repository.ListOptions) ([]models.GuestbookEntry, error)
}
