package mocks

import (
	"context"

	"artikled/internal/model"
	"artikled/internal/service"

	"github.com/stretchr/testify/mock"
)

type MockArticleService struct {
	mock.Mock
}

func (m *MockArticleService) Create(ctx context.Context, title, body string, uploads []service.MediaUpload) (*model.Article, error) {
	args := m.Called(ctx, title, body, uploads)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Article), args.Error(1)
}

func (m *MockArticleService) Get(ctx context.Context, id int64) (*model.Article, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Article), args.Error(1)
}

func (m *MockArticleService) List(ctx context.Context) ([]model.ArticleSummary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ArticleSummary), args.Error(1)
}

func (m *MockArticleService) Update(ctx context.Context, id int64, title, body string) error {
	args := m.Called(ctx, id, title, body)
	return args.Error(0)
}

func (m *MockArticleService) ReplaceMedia(ctx context.Context, id int64, up service.MediaUpload) error {
	args := m.Called(ctx, id, up)
	return args.Error(0)
}

func (m *MockArticleService) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
