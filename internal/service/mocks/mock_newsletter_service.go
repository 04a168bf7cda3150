package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"newsletterapi/internal/model"
	"newsletterapi/internal/service"
)

type MockNewsletterService struct {
	mock.Mock
}

var _ service.NewsletterService = (*MockNewsletterService)(nil)

func (m *MockNewsletterService) List(ctx context.Context) ([]model.Newsletter, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Newsletter), args.Error(1)
}

func (m *MockNewsletterService) Create(ctx context.Context, in service.CreateInput) (*model.Newsletter, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Newsletter), args.Error(1)
}

func (m *MockNewsletterService) Get(ctx context.Context, id int64) (*model.Newsletter, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Newsletter), args.Error(1)
}
