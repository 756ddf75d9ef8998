package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"artikled/internal/model"
	"artikled/internal/repository"
)

// ArticlePostgres is a PostgreSQL implementation of repository.ArticleRepository.
// It uses database/sql with parameterized queries and contains no business logic.
type ArticlePostgres struct {
	db *sql.DB
}

// NewArticlePostgres creates a new ArticlePostgres repository.
func NewArticlePostgres(db *sql.DB) *ArticlePostgres {
	return &ArticlePostgres{db: db}
}

var _ repository.ArticleRepository = (*ArticlePostgres)(nil)

// Create inserts the article row and its media rows in one transaction.
func (r *ArticlePostgres) Create(ctx context.Context, a *model.Article) (*model.Article, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	const qArticle = `
		INSERT INTO articles (title, body, bump_time)
		VALUES ($1, $2, $3)
		RETURNING id
	`
	var id int64
	if err := tx.QueryRowContext(ctx, qArticle, a.Title, a.Body, a.BumpTime).Scan(&id); err != nil {
		return nil, err
	}

	const qMedia = `INSERT INTO article_media (article_id, media_path) VALUES ($1, $2)`
	for _, p := range a.MediaPaths {
		if _, err := tx.ExecContext(ctx, qMedia, id, p); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}

	out := *a
	out.ID = id
	return &out, nil
}

// FindByID fetches a single article and its media paths.
func (r *ArticlePostgres) FindByID(ctx context.Context, id int64) (*model.Article, error) {
	const qArticle = `
		SELECT id, title, body, bump_time
		FROM articles
		WHERE id = $1
	`
	var a model.Article
	row := r.db.QueryRowContext(ctx, qArticle, id)
	if err := row.Scan(&a.ID, &a.Title, &a.Body, &a.BumpTime); err != nil {
		return nil, err
	}

	const qMedia = `SELECT media_path FROM article_media WHERE article_id = $1 ORDER BY id`
	rows, err := r.db.QueryContext(ctx, qMedia, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var p string
		if err := rows.Scan(&p); err != nil {
			return nil, err
		}
		a.MediaPaths = append(a.MediaPaths, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &a, nil
}

// List returns summaries of all articles, most recently bumped first.
func (r *ArticlePostgres) List(ctx context.Context) ([]model.ArticleSummary, error) {
	const q = `SELECT id, title FROM articles ORDER BY bump_time DESC, id DESC`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.ArticleSummary, 0)
	for rows.Next() {
		var s model.ArticleSummary
		if err := rows.Scan(&s.ID, &s.Title); err != nil {
			return nil, err
		}
		items = append(items, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// Update sets title, body and bump_time for an existing article.
func (r *ArticlePostgres) Update(ctx context.Context, id int64, title, body string, bumpTime int64) error {
	const q = `UPDATE articles SET title = $1, body = $2, bump_time = $3 WHERE id = $4`
	res, err := r.db.ExecContext(ctx, q, title, body, bumpTime, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// ReplaceMedia swaps the article's media set for a single new path, atomically.
func (r *ArticlePostgres) ReplaceMedia(ctx context.Context, id int64, newPath string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM article_media WHERE article_id = $1`, id); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, `INSERT INTO article_media (article_id, media_path) VALUES ($1, $2)`, id, newPath); err != nil {
		return err
	}

	return tx.Commit()
}

// Exists reports whether an article row exists.
func (r *ArticlePostgres) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM articles WHERE id = $1)`, id).Scan(&exists)
	return exists, err
}

// Delete removes media, comments and the article row in one transaction.
// It does not return an error if the article did not exist.
func (r *ArticlePostgres) Delete(ctx context.Context, id int64) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM article_media WHERE article_id = $1`, id); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM comments WHERE article_id = $1`, id); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM articles WHERE id = $1`, id); err != nil {
		return err
	}

	return tx.Commit()
}
