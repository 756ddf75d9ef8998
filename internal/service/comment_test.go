package service

import (
	"context"
	"errors"
	"testing"

	"artikled/internal/model"
	repoMocks "artikled/internal/repository/mocks"

	"github.com/stretchr/testify/assert"
)

func TestCommentService_Create(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name       string
		articleID  int64
		text       string
		setupMocks func(mArticles *repoMocks.MockArticleRepository, mComments *repoMocks.MockCommentRepository)
		wantErr    error
	}{
		{
			name:      "happy path - insert bumps parent",
			articleID: 3,
			text:      "hi",
			setupMocks: func(mArticles *repoMocks.MockArticleRepository, mComments *repoMocks.MockCommentRepository) {
				mArticles.On("Exists", ctx, int64(3)).Return(true, nil)
				mComments.On("Create", ctx, int64(3), "hi", int64(1700000200)).Return(int64(11), nil)
			},
		},
		{
			name:       "validation - empty text",
			articleID:  3,
			text:       "  ",
			setupMocks: func(mArticles *repoMocks.MockArticleRepository, mComments *repoMocks.MockCommentRepository) {},
			wantErr:    ErrValidation,
		},
		{
			name:      "article does not exist",
			articleID: 99,
			text:      "hi",
			setupMocks: func(mArticles *repoMocks.MockArticleRepository, mComments *repoMocks.MockCommentRepository) {
				mArticles.On("Exists", ctx, int64(99)).Return(false, nil)
			},
			wantErr: ErrNotFound,
		},
		{
			name:      "existence check failure",
			articleID: 3,
			text:      "hi",
			setupMocks: func(mArticles *repoMocks.MockArticleRepository, mComments *repoMocks.MockCommentRepository) {
				mArticles.On("Exists", ctx, int64(3)).Return(false, errors.New("db down"))
			},
			wantErr: errors.New("check article: db down"),
		},
		{
			name:      "insert failure",
			articleID: 3,
			text:      "hi",
			setupMocks: func(mArticles *repoMocks.MockArticleRepository, mComments *repoMocks.MockCommentRepository) {
				mArticles.On("Exists", ctx, int64(3)).Return(true, nil)
				mComments.On("Create", ctx, int64(3), "hi", int64(1700000200)).Return(int64(0), errors.New("deadlock"))
			},
			wantErr: errors.New("store comment: deadlock"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fixNow(t, 1700000200)

			mArticles := new(repoMocks.MockArticleRepository)
			mComments := new(repoMocks.MockCommentRepository)
			svc := NewCommentService(mArticles, mComments)

			tt.setupMocks(mArticles, mComments)

			c, err := svc.Create(ctx, tt.articleID, tt.text)

			if tt.wantErr != nil {
				if errors.Is(tt.wantErr, ErrValidation) || errors.Is(tt.wantErr, ErrNotFound) {
					assert.ErrorIs(t, err, tt.wantErr)
				} else {
					assert.Error(t, err)
					assert.Contains(t, err.Error(), tt.wantErr.Error())
				}
				assert.Nil(t, c)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, int64(11), c.ID)
				assert.Equal(t, tt.articleID, c.ArticleID)
				assert.Equal(t, tt.text, c.Text)
			}

			mArticles.AssertExpectations(t)
			mComments.AssertExpectations(t)
		})
	}
}

func TestCommentService_ListForArticle(t *testing.T) {
	ctx := context.Background()

	mComments := new(repoMocks.MockCommentRepository)
	mComments.On("ListForArticle", ctx, int64(3)).Return([]model.Comment{
		{ID: 1, ArticleID: 3, Text: "first"},
		{ID: 2, ArticleID: 3, Text: "second"},
	}, nil)
	svc := NewCommentService(new(repoMocks.MockArticleRepository), mComments)

	items, err := svc.ListForArticle(ctx, 3)

	assert.NoError(t, err)
	assert.Len(t, items, 2)
	assert.Equal(t, "first", items[0].Text)
}

func TestCommentService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("resolves owning article", func(t *testing.T) {
		mComments := new(repoMocks.MockCommentRepository)
		mComments.On("Delete", ctx, int64(11)).Return(int64(3), true, nil)
		svc := NewCommentService(new(repoMocks.MockArticleRepository), mComments)

		articleID, found, err := svc.Delete(ctx, 11)

		assert.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, int64(3), articleID)
	})

	t.Run("already gone is not an error", func(t *testing.T) {
		mComments := new(repoMocks.MockCommentRepository)
		mComments.On("Delete", ctx, int64(99)).Return(int64(0), false, nil)
		svc := NewCommentService(new(repoMocks.MockArticleRepository), mComments)

		_, found, err := svc.Delete(ctx, 99)

		assert.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("repository failure", func(t *testing.T) {
		mComments := new(repoMocks.MockCommentRepository)
		mComments.On("Delete", ctx, int64(11)).Return(int64(0), false, errors.New("db down"))
		svc := NewCommentService(new(repoMocks.MockArticleRepository), mComments)

		_, _, err := svc.Delete(ctx, 11)

		assert.Error(t, err)
		mComments.AssertExpectations(t)
	})
}
