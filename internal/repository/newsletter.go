// Package repository contains data access layer abstractions.
// Implementations live in the sqlite and postgres subpackages.
package repository

import (
	"context"

	"newsletterapi/internal/model"
)

// NewsletterRepository defines data access for newsletters using SQL queries only.
// No business logic here, strictly persistence operations.
type NewsletterRepository interface {
	// Create inserts a new newsletter row. The caller provides title, body and timestamps;
	// the store assigns the ID. Returns the stored newsletter.
	Create(ctx context.Context, n *model.Newsletter) (*model.Newsletter, error)

	// FindByID returns a newsletter by its ID, or sql.ErrNoRows when none matches.
	FindByID(ctx context.Context, id int64) (*model.Newsletter, error)

	// List returns every newsletter in insertion (ID) order.
	List(ctx context.Context) ([]model.Newsletter, error)
}
