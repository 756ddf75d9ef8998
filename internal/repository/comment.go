package repository

import (
	"context"

	"artikled/internal/model"
)

// CommentRepository defines data access for comments.
type CommentRepository interface {
	// Create inserts a comment and bumps the parent article's bump_time in one
	// transaction. Returns the assigned comment ID.
	Create(ctx context.Context, articleID int64, text string, bumpTime int64) (int64, error)

	// ListForArticle returns the article's comments in insertion order.
	ListForArticle(ctx context.Context, articleID int64) ([]model.Comment, error)

	// Delete resolves the owning article ID and removes the comment in one
	// transaction. found is false if the comment was already gone; that is not
	// an error, the caller treats it as already satisfied.
	Delete(ctx context.Context, commentID int64) (articleID int64, found bool, err error)
}
