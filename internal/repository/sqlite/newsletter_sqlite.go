package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"newsletterapi/internal/model"
	"newsletterapi/internal/repository"
)

// timeLayout is how timestamps are written to TEXT/DATETIME columns.
const timeLayout = time.RFC3339Nano

// readLayouts are accepted when scanning timestamps back, covering values
// written by this package and by SQLite's CURRENT_TIMESTAMP default.
var readLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02 15:04:05.999999999-07:00",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02 15:04:05",
}

// NewsletterSQLite is a SQLite implementation of repository.NewsletterRepository.
type NewsletterSQLite struct {
	db *sql.DB
}

// NewNewsletterSQLite creates a new NewsletterSQLite repository.
func NewNewsletterSQLite(db *sql.DB) *NewsletterSQLite {
	return &NewsletterSQLite{db: db}
}

var _ repository.NewsletterRepository = (*NewsletterSQLite)(nil)

// Create inserts a new newsletter row. The ID comes from the rowid assigned by SQLite.
func (r *NewsletterSQLite) Create(ctx context.Context, n *model.Newsletter) (*model.Newsletter, error) {
	const q = `
		INSERT INTO newsletters (title, body, created_at, updated_at)
		VALUES (?, ?, ?, ?)
	`
	res, err := r.db.ExecContext(ctx, q,
		n.Title,
		n.Body,
		n.CreatedAt.UTC().Format(timeLayout),
		n.UpdatedAt.UTC().Format(timeLayout),
	)
	if err != nil {
		return nil, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}

	out := *n
	out.ID = id
	return &out, nil
}

// FindByID fetches a single newsletter by its ID.
func (r *NewsletterSQLite) FindByID(ctx context.Context, id int64) (*model.Newsletter, error) {
	const q = `
		SELECT id, title, body, created_at, updated_at
		FROM newsletters
		WHERE id = ?
	`
	var n model.Newsletter
	if err := r.db.QueryRowContext(ctx, q, id).Scan(
		&n.ID,
		&n.Title,
		&n.Body,
		timestamp{&n.CreatedAt},
		timestamp{&n.UpdatedAt},
	); err != nil {
		return nil, err
	}
	return &n, nil
}

// List returns all newsletters ordered by ID.
func (r *NewsletterSQLite) List(ctx context.Context) ([]model.Newsletter, error) {
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
			timestamp{&n.CreatedAt},
			timestamp{&n.UpdatedAt},
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

// timestamp scans a SQLite column into a time.Time. The driver hands back
// either a parsed time.Time (DATETIME columns) or the raw text.
type timestamp struct {
	t *time.Time
}

func (ts timestamp) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*ts.t = time.Time{}
		return nil
	case time.Time:
		*ts.t = v.UTC()
		return nil
	case string:
		return ts.parse(v)
	case []byte:
		return ts.parse(string(v))
	default:
		return fmt.Errorf("unsupported timestamp type %T", src)
	}
}

func (ts timestamp) parse(s string) error {
	for _, layout := range readLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			*ts.t = t.UTC()
			return nil
		}
	}
	return fmt.Errorf("unrecognized timestamp %q", s)
}
