package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"newsletterapi/internal/model"
	"newsletterapi/internal/repository"
)

var (
	ErrMissingRequiredField = errors.New("missing required field")
	ErrInvalidID            = errors.New("id must be a non-negative integer")
	ErrNotFound             = errors.New("newsletter not found")
)

// MissingFieldError names the required field that was absent. It matches
// ErrMissingRequiredField with errors.Is.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("%s is required", e.Field)
}

func (e *MissingFieldError) Is(target error) bool {
	return target == ErrMissingRequiredField
}

// CreateInput carries the submitted form values. A nil pointer means the
// field was not submitted at all; an empty string is a valid value.
type CreateInput struct {
	Title *string
	Body  *string
}

// NewsletterService defines the use cases for handling newsletters.
type NewsletterService interface {
	// List returns every newsletter in insertion order.
	List(ctx context.Context) ([]model.Newsletter, error)

	// Create validates the input and stores a new newsletter.
	Create(ctx context.Context, in CreateInput) (*model.Newsletter, error)

	// Get returns a single newsletter by its ID.
	Get(ctx context.Context, id int64) (*model.Newsletter, error)
}

type newsletterService struct {
	repo repository.NewsletterRepository
	now  func() time.Time
}

// NewNewsletterService constructs a new NewsletterService.
func NewNewsletterService(repo repository.NewsletterRepository) NewsletterService {
	return &newsletterService{repo: repo, now: time.Now}
}

func (s *newsletterService) List(ctx context.Context) ([]model.Newsletter, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []model.Newsletter{}
	}
	return items, nil
}

func (s *newsletterService) Create(ctx context.Context, in CreateInput) (*model.Newsletter, error) {
	if in.Title == nil {
		return nil, &MissingFieldError{Field: "title"}
	}
	if in.Body == nil {
		return nil, &MissingFieldError{Field: "body"}
	}

	now := s.now().UTC()
	stored, err := s.repo.Create(ctx, &model.Newsletter{
		Title:     *in.Title,
		Body:      *in.Body,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		return nil, fmt.Errorf("save newsletter: %w", err)
	}
	return stored, nil
}

func (s *newsletterService) Get(ctx context.Context, id int64) (*model.Newsletter, error) {
	if id < 0 {
		return nil, ErrInvalidID
	}
	n, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return n, nil
}
