package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"artikled/internal/model"
	"artikled/internal/repository"
)

// CommentPostgres is a PostgreSQL implementation of repository.CommentRepository.
type CommentPostgres struct {
	db *sql.DB
}

// NewCommentPostgres creates a new CommentPostgres repository.
func NewCommentPostgres(db *sql.DB) *CommentPostgres {
	return &CommentPostgres{db: db}
}

var _ repository.CommentRepository = (*CommentPostgres)(nil)

// Create inserts the comment and bumps the parent article in one transaction.
// Both succeed or neither persists.
func (r *CommentPostgres) Create(ctx context.Context, articleID int64, text string, bumpTime int64) (int64, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	const qInsert = `
		INSERT INTO comments (article_id, comment)
		VALUES ($1, $2)
		RETURNING id
	`
	var id int64
	if err := tx.QueryRowContext(ctx, qInsert, articleID, text).Scan(&id); err != nil {
		return 0, err
	}

	const qBump = `UPDATE articles SET bump_time = $1 WHERE id = $2`
	if _, err := tx.ExecContext(ctx, qBump, bumpTime, articleID); err != nil {
		return 0, err
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit: %w", err)
	}
	return id, nil
}

// ListForArticle returns the article's comments in insertion order.
func (r *CommentPostgres) ListForArticle(ctx context.Context, articleID int64) ([]model.Comment, error) {
	const q = `SELECT id, article_id, comment FROM comments WHERE article_id = $1 ORDER BY id`
	rows, err := r.db.QueryContext(ctx, q, articleID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Comment, 0)
	for rows.Next() {
		var c model.Comment
		if err := rows.Scan(&c.ID, &c.ArticleID, &c.Text); err != nil {
			return nil, err
		}
		items = append(items, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// Delete resolves the owning article and removes the comment in one transaction.
// A comment that vanished between lookup and delete reports found=false rather
// than an error; deletion is then already satisfied.
func (r *CommentPostgres) Delete(ctx context.Context, commentID int64) (int64, bool, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, false, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	var articleID int64
	err = tx.QueryRowContext(ctx, `SELECT article_id FROM comments WHERE id = $1`, commentID).Scan(&articleID)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM comments WHERE id = $1`, commentID); err != nil {
		return 0, false, err
	}

	if err := tx.Commit(); err != nil {
		return 0, false, fmt.Errorf("commit: %w", err)
	}
	return articleID, true, nil
}
