package repository

import (
	"context"

	"artikled/internal/model"
)

// ArticleRepository defines data access for articles and their media references
// using SQL queries only. No business logic here — strictly persistence operations.
type ArticleRepository interface {
	// Create inserts a new article row plus one media row per path, in one
	// transaction, and returns the stored article with its assigned ID.
	// MediaPaths must be non-empty; the service layer validates that.
	Create(ctx context.Context, a *model.Article) (*model.Article, error)

	// FindByID returns an article with its media paths resolved.
	// Returns sql.ErrNoRows if the article does not exist.
	FindByID(ctx context.Context, id int64) (*model.Article, error)

	// List returns all article summaries ordered by bump_time descending.
	// Recomputed per call; no caching.
	List(ctx context.Context) ([]model.ArticleSummary, error)

	// Update sets title, body and bump_time. Returns sql.ErrNoRows if the
	// article does not exist.
	Update(ctx context.Context, id int64, title, body string, bumpTime int64) error

	// ReplaceMedia deletes all media rows for the article and inserts exactly
	// one new row, atomically. Existing media is never left half-replaced.
	ReplaceMedia(ctx context.Context, id int64, newPath string) error

	// Exists reports whether an article row exists.
	Exists(ctx context.Context, id int64) (bool, error)

	// Delete removes the article's media rows, its comments and the article
	// row itself in one transaction. Returns nil if the row did not exist.
	Delete(ctx context.Context, id int64) error
}
