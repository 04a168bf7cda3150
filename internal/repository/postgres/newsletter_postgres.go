package postgres

import (
	"context"
	"database/sql"

	"newsletterapi/internal/model"
	"newsletterapi/internal/repository"
)

// NewsletterPostgres is a PostgreSQL implementation of repository.NewsletterRepository.
// It uses database/sql with parameterized queries and contains no business logic.
type NewsletterPostgres struct {
	db *sql.DB
}

// NewNewsletterPostgres creates a new NewsletterPostgres repository.
func NewNewsletterPostgres(db *sql.DB) *NewsletterPostgres {
	return &NewsletterPostgres{db: db}
}

var _ repository.NewsletterRepository = (*NewsletterPostgres)(nil)

// Create inserts a new newsletter row and returns the stored record.
func (r *NewsletterPostgres) Create(ctx context.Context, n *model.Newsletter) (*model.Newsletter, error) {
	const q = `
		INSERT INTO newsletters (title, body, created_at, updated_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id, title, body, created_at, updated_at
	`
	row := r.db.QueryRowContext(ctx, q,
		n.Title,
		n.Body,
		n.CreatedAt,
		n.UpdatedAt,
	)
	var out model.Newsletter
	if err := row.Scan(
		&out.ID,
		&out.Title,
		&out.Body,
		&out.CreatedAt,
		&out.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &out, nil
}

// FindByID fetches a single newsletter by its ID.
func (r *NewsletterPostgres) FindByID(ctx context.Context, id int64) (*model.Newsletter, error) {
	const q = `
		SELECT id, title, body, created_at, updated_at
		FROM newsletters
		WHERE id = $1
	`
	var n model.Newsletter
	if err := r.db.QueryRowContext(ctx, q, id).Scan(
		&n.ID,
		&n.Title,
		&n.Body,
		&n.CreatedAt,
		&n.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &n, nil
}

// List returns all newsletters ordered by ID.
func (r *NewsletterPostgres) List(ctx context.Context) ([]model.Newsletter, error) {
	const q = `
		SELECT id, title, body, created_at, updated_at
		FROM newsletters
		ORDER BY id ASC
	`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Newsletter, 0)
	for rows.Next() {
		var n model.Newsletter
		if err := rows.Scan(
			&n.ID,
			&n.Title,
			&n.Body,
			&n.CreatedAt,
			&n.UpdatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, n)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
