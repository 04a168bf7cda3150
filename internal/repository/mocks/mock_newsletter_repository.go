package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"newsletterapi/internal/model"
	"newsletterapi/internal/repository"
)

type MockNewsletterRepository struct {
	mock.Mock
}

var _ repository.NewsletterRepository = (*MockNewsletterRepository)(nil)

func (m *MockNewsletterRepository) Create(ctx context.Context, n *model.Newsletter) (*model.Newsletter, error) {
	args := m.Called(ctx, n)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Newsletter), args.Error(1)
}

func (m *MockNewsletterRepository) FindByID(ctx context.Context, id int64) (*model.Newsletter, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Newsletter), args.Error(1)
}

func (m *MockNewsletterRepository) List(ctx context.Context) ([]model.Newsletter, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Newsletter), args.Error(1)
}
