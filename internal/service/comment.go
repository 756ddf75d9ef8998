package service

import (
	"context"
	"fmt"
	"strings"

	"artikled/internal/model"
	"artikled/internal/repository"
)

// CommentService defines the use cases for handling comments.
type CommentService interface {
	// Create inserts a comment and bumps the parent article to the top of the
	// listing. Fails with ErrNotFound if the article does not exist.
	Create(ctx context.Context, articleID int64, text string) (*model.Comment, error)

	// ListForArticle returns the article's comments in insertion order.
	ListForArticle(ctx context.Context, articleID int64) ([]model.Comment, error)

	// Delete removes a comment and resolves the owning article for the
	// caller's redirect. found is false when the comment was already gone;
	// that case is treated as already satisfied, not as an error.
	Delete(ctx context.Context, commentID int64) (articleID int64, found bool, err error)
}

type commentService struct {
	articles repository.ArticleRepository
	comments repository.CommentRepository
}

// NewCommentService constructs a new CommentService.
func NewCommentService(articles repository.ArticleRepository, comments repository.CommentRepository) CommentService {
	return &commentService{articles: articles, comments: comments}
}

func (s *commentService) Create(ctx context.Context, articleID int64, text string) (*model.Comment, error) {
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("%w: comment text is required", ErrValidation)
	}

	exists, err := s.articles.Exists(ctx, articleID)
	if err != nil {
		return nil, fmt.Errorf("check article: %w", err)
	}
	if !exists {
		return nil, ErrNotFound
	}

	id, err := s.comments.Create(ctx, articleID, text, timeNow().Unix())
	if err != nil {
		return nil, fmt.Errorf("store comment: %w", err)
	}
	return &model.Comment{ID: id, ArticleID: articleID, Text: text}, nil
}

func (s *commentService) ListForArticle(ctx context.Context, articleID int64) ([]model.Comment, error) {
	items, err := s.comments.ListForArticle(ctx, articleID)
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}
	return items, nil
}

func (s *commentService) Delete(ctx context.Context, commentID int64) (int64, bool, error) {
	articleID, found, err := s.comments.Delete(ctx, commentID)
	if err != nil {
		return 0, false, fmt.Errorf("delete comment: %w", err)
	}
	return articleID, found, nil
}
