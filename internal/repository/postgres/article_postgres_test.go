package postgres

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"artikled/internal/model"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestArticlePostgres_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewArticlePostgres(db)
	ctx := context.Background()

	t.Run("inserts article and media in one tx", func(t *testing.T) {
		a := &model.Article{
			Title:      "hello",
			Body:       "world",
			BumpTime:   1700000000,
			MediaPaths: []string{"/uploads/article_a.png", "/uploads/article_b.png"},
		}

		mock.ExpectBegin()
		mock.ExpectQuery("INSERT INTO articles").
			WithArgs(a.Title, a.Body, a.BumpTime).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))
		mock.ExpectExec("INSERT INTO article_media").
			WithArgs(int64(7), "/uploads/article_a.png").
			WillReturnResult(sqlmock.NewResult(1, 1))
		mock.ExpectExec("INSERT INTO article_media").
			WithArgs(int64(7), "/uploads/article_b.png").
			WillReturnResult(sqlmock.NewResult(2, 1))
		mock.ExpectCommit()

		got, err := repo.Create(ctx, a)

		assert.NoError(t, err)
		assert.Equal(t, int64(7), got.ID)
		assert.Equal(t, a.MediaPaths, got.MediaPaths)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("media insert failure rolls back the article row", func(t *testing.T) {
		a := &model.Article{
			Title:      "hello",
			Body:       "world",
			BumpTime:   1700000000,
			MediaPaths: []string{"/uploads/article_a.png"},
		}

		mock.ExpectBegin()
		mock.ExpectQuery("INSERT INTO articles").
			WithArgs(a.Title, a.Body, a.BumpTime).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(8))
		mock.ExpectExec("INSERT INTO article_media").
			WithArgs(int64(8), "/uploads/article_a.png").
			WillReturnError(errors.New("disk full"))
		mock.ExpectRollback()

		got, err := repo.Create(ctx, a)

		assert.Error(t, err)
		assert.Nil(t, got)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestArticlePostgres_FindByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewArticlePostgres(db)
	ctx := context.Background()

	t.Run("found with media", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM articles WHERE id = ?").
			WithArgs(int64(3)).
			WillReturnRows(sqlmock.NewRows([]string{"id", "title", "body", "bump_time"}).
				AddRow(3, "t", "b", 1700000000))
		mock.ExpectQuery("SELECT media_path FROM article_media").
			WithArgs(int64(3)).
			WillReturnRows(sqlmock.NewRows([]string{"media_path"}).
				AddRow("/uploads/article_x.png"))

		a, err := repo.FindByID(ctx, 3)

		assert.NoError(t, err)
		assert.Equal(t, int64(3), a.ID)
		assert.Equal(t, []string{"/uploads/article_x.png"}, a.MediaPaths)
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM articles WHERE id = ?").
			WithArgs(int64(99)).
			WillReturnError(sql.ErrNoRows)

		a, err := repo.FindByID(ctx, 99)

		assert.ErrorIs(t, err, sql.ErrNoRows)
		assert.Nil(t, a)
	})
}

func TestArticlePostgres_List(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewArticlePostgres(db)
	ctx := context.Background()

	mock.ExpectQuery("SELECT id, title FROM articles ORDER BY bump_time DESC").
		WillReturnRows(sqlmock.NewRows([]string{"id", "title"}).
			AddRow(2, "newer").
			AddRow(1, "older"))

	items, err := repo.List(ctx)

	assert.NoError(t, err)
	assert.Len(t, items, 2)
	assert.Equal(t, "newer", items[0].Title)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestArticlePostgres_Update(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewArticlePostgres(db)
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		mock.ExpectExec("UPDATE articles SET title").
			WithArgs("T2", "B2", int64(1700000100), int64(5)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.Update(ctx, 5, "T2", "B2", 1700000100)

		assert.NoError(t, err)
	})

	t.Run("missing article maps to ErrNoRows", func(t *testing.T) {
		mock.ExpectExec("UPDATE articles SET title").
			WithArgs("T2", "B2", int64(1700000100), int64(99)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.Update(ctx, 99, "T2", "B2", 1700000100)

		assert.ErrorIs(t, err, sql.ErrNoRows)
	})
}

func TestArticlePostgres_ReplaceMedia(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewArticlePostgres(db)
	ctx := context.Background()

	t.Run("delete-all then insert-one in a tx", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec("DELETE FROM article_media WHERE article_id = ?").
			WithArgs(int64(5)).
			WillReturnResult(sqlmock.NewResult(0, 2))
		mock.ExpectExec("INSERT INTO article_media").
			WithArgs(int64(5), "/uploads/article_new.png").
			WillReturnResult(sqlmock.NewResult(3, 1))
		mock.ExpectCommit()

		err := repo.ReplaceMedia(ctx, 5, "/uploads/article_new.png")

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("insert failure rolls back the delete", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec("DELETE FROM article_media WHERE article_id = ?").
			WithArgs(int64(5)).
			WillReturnResult(sqlmock.NewResult(0, 2))
		mock.ExpectExec("INSERT INTO article_media").
			WithArgs(int64(5), "/uploads/article_new.png").
			WillReturnError(errors.New("constraint"))
		mock.ExpectRollback()

		err := repo.ReplaceMedia(ctx, 5, "/uploads/article_new.png")

		assert.Error(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestArticlePostgres_Exists(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewArticlePostgres(db)
	ctx := context.Background()

	mock.ExpectQuery("SELECT EXISTS").
		WithArgs(int64(4)).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	ok, err := repo.Exists(ctx, 4)

	assert.NoError(t, err)
	assert.True(t, ok)
}

func TestArticlePostgres_Delete(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewArticlePostgres(db)
	ctx := context.Background()

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM article_media WHERE article_id = ?").
		WithArgs(int64(6)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("DELETE FROM comments WHERE article_id = ?").
		WithArgs(int64(6)).
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectExec("DELETE FROM articles WHERE id = ?").
		WithArgs(int64(6)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err = repo.Delete(ctx, 6)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
