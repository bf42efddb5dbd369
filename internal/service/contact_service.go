package service

import (
	"context"

	"github.com/contacthub/backend/internal/model"
)

// ContactService defines the business logic for contact records.
type ContactService interface {
	// Create stores a new contact. The c.ID and c.CreatedAt fields will be
	// populated by the implementation.
	Create(ctx context.Context, c *model.Contact) error

	// List returns every contact, most recent first.
	List(ctx context.Context) ([]*model.Contact, error)

	// Delete removes the contact with the given id. Missing ids succeed.
	Delete(ctx context.Context, id int64) error
}
