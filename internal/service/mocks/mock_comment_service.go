package mocks

import (
	"context"

	"artikled/internal/model"

	"github.com/stretchr/testify/mock"
)

type MockCommentService struct {
	mock.Mock
}

func (m *MockCommentService) Create(ctx context.Context, articleID int64, text string) (*model.Comment, error) {
	args := m.Called(ctx, articleID, text)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Comment), args.Error(1)
}

func (m *MockCommentService) ListForArticle(ctx context.Context, articleID int64) ([]model.Comment, error) {
	args := m.Called(ctx, articleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Comment), args.Error(1)
}

func (m *MockCommentService) Delete(ctx context.Context, commentID int64) (int64, bool, error) {
	args := m.Called(ctx, commentID)
	return args.Get(0).(int64), args.Bool(1), args.Error(2)
}
