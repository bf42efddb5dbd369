package repository

import (
	"context"
	"fmt"

	"github.com/contacthub/backend/internal/model"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ContactRepository defines the persistence interface for contact records.
// It is the sole owner of the contacts table; every read and write of
// persisted state goes through it.
type ContactRepository interface {
	EnsureSchema(ctx context.Context) error
	Create(ctx context.Context, c *model.Contact) error
	List(ctx context.Context) ([]*model.Contact, error)
	Delete(ctx context.Context, id int64) error
}

// PgContactRepository is the PostgreSQL implementation of ContactRepository.
type PgContactRepository struct {
	pool *pgxpool.Pool
}

// NewPgContactRepository creates a PgContactRepository backed by the given pool.
func NewPgContactRepository(pool *pgxpool.Pool) *PgContactRepository {
	return &PgContactRepository{pool: pool}
}

// Ensure PgContactRepository implements ContactRepository at compile time.
var _ ContactRepository = (*PgContactRepository)(nil)

const createContactsTable = `
CREATE TABLE IF NOT EXISTS contacts (
	id BIGSERIAL PRIMARY KEY,
	name VARCHAR(255) NOT NULL,
	email VARCHAR(255) NOT NULL,
	phone VARCHAR(50),
	subject VARCHAR(255) NOT NULL,
	message TEXT NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
)`

// EnsureSchema creates the contacts table if it does not exist.
// Safe to run on every startup; an existing table is left untouched.
func (r *PgContactRepository) EnsureSchema(ctx context.Context) error {
	if _, err := r.pool.Exec(ctx, createContactsTable); err != nil {
		return fmt.Errorf("ensure contacts table: %w", err)
	}
	return nil
}

// Create inserts a new contacts row and populates c.ID and c.CreatedAt
// from the database RETURNING clause. A nil Phone is stored as SQL NULL.
func (r *PgContactRepository) Create(ctx context.Context, c *model.Contact) error {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO contacts (name, email, phone, subject, message)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, created_at`,
		c.Name, c.Email, c.Phone, c.Subject, c.Message,
	).Scan(&c.ID, &c.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert contact: %w", err)
	}
	return nil
}

// List returns every contact, most recent first. Equal timestamps fall
// back to descending id so the order stays deterministic.
func (r *PgContactRepository) List(ctx context.Context) ([]*model.Contact, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, name, email, phone, subject, message, created_at
		 FROM contacts
		 ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, fmt.Errorf("list contacts: %w", err)
	}
	defer rows.Close()

	var contacts []*model.Contact
	for rows.Next() {
		var c model.Contact
		if err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.Subject, &c.Message, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan contact: %w", err)
		}
		contacts = append(contacts, &c)
	}
	return contacts, rows.Err()
}

// Delete removes the contact with the given id if present. Deleting a
// missing id is not an error — the operation ensures absence rather than
// asserting presence.
func (r *PgContactRepository) Delete(ctx context.Context, id int64) error {
	if _, err := r.pool.Exec(ctx, `DELETE FROM contacts WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete contact: %w", err)
	}
	return nil
}
