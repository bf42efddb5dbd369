package service

import (
	"context"
	"time"

	"github.com/contacthub/backend/internal/model"
	"github.com/contacthub/backend/internal/repository"
)

// opTimeout bounds pool acquisition plus the database round-trip for a
// single store operation, so a stalled connection surfaces as a store
// failure instead of blocking the request forever.
const opTimeout = 5 * time.Second

// contactServiceImpl is the production implementation of ContactService.
type contactServiceImpl struct {
	repo repository.ContactRepository
}

// NewContactService creates a ContactService backed by the given repository.
func NewContactService(repo repository.ContactRepository) ContactService {
	return &contactServiceImpl{repo: repo}
}

func (s *contactServiceImpl) Create(ctx context.Context, c *model.Contact) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()
	return s.repo.Create(ctx, c)
}

func (s *contactServiceImpl) List(ctx context.Context) ([]*model.Contact, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()
	return s.repo.List(ctx)
}

func (s *contactServiceImpl) Delete(ctx context.Context, id int64) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()
	return s.repo.Delete(ctx, id)
}
