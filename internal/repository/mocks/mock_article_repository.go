package mocks

import (
	"context"

	"artikled/internal/model"

	"github.com/stretchr/testify/mock"
)

type MockArticleRepository struct {
	mock.Mock
}

func (m *MockArticleRepository) Create(ctx context.Context, a *model.Article) (*model.Article, error) {
	args := m.Called(ctx, a)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Article), args.Error(1)
}

func (m *MockArticleRepository) FindByID(ctx context.Context, id int64) (*model.Article, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Article), args.Error(1)
}

func (m *MockArticleRepository) List(ctx context.Context) ([]model.ArticleSummary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ArticleSummary), args.Error(1)
}

func (m *MockArticleRepository) Update(ctx context.Context, id int64, title, body string, bumpTime int64) error {
	args := m.Called(ctx, id, title, body, bumpTime)
	return args.Error(0)
}

func (m *MockArticleRepository) ReplaceMedia(ctx context.Context, id int64, newPath string) error {
	args := m.Called(ctx, id, newPath)
	return args.Error(0)
}

func (m *MockArticleRepository) Exists(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockArticleRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
