package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"artikled/internal/model"
	"artikled/internal/repository"
	"artikled/internal/storage"
)

var timeNow = time.Now

// mediaURLExpiry bounds the lifetime of signed media links on backends that
// sign them. The local backend returns stable paths and ignores it.
const mediaURLExpiry = 24 * time.Hour

// MediaUpload carries one uploaded media payload through the service layer.
type MediaUpload struct {
	Filename    string
	ContentType string
	Size        int64
	Reader      io.Reader
}

// ArticleService defines the use cases for handling articles and their media.
type ArticleService interface {
	// Create stores every upload, then inserts the article with its media
	// references. An article must carry at least one media file at creation.
	Create(ctx context.Context, title, body string, uploads []MediaUpload) (*model.Article, error)

	// Get returns a single article with its media paths resolved.
	Get(ctx context.Context, id int64) (*model.Article, error)

	// List returns all article summaries, most recently bumped first.
	List(ctx context.Context) ([]model.ArticleSummary, error)

	// Update applies new title and body and refreshes bump_time, resurfacing
	// the article the same way a new comment does.
	Update(ctx context.Context, id int64, title, body string) error

	// ReplaceMedia stores the upload and swaps the article's entire media set
	// for that single new reference.
	ReplaceMedia(ctx context.Context, id int64, up MediaUpload) error

	// Delete removes the article together with its media references and
	// comments.
	Delete(ctx context.Context, id int64) error
}

// articleService is a concrete implementation of ArticleService.
type articleService struct {
	store storage.Storage
	repo  repository.ArticleRepository
}

// NewArticleService constructs a new ArticleService.
func NewArticleService(store storage.Storage, repo repository.ArticleRepository) ArticleService {
	return &articleService{store: store, repo: repo}
}

func (s *articleService) Create(ctx context.Context, title, body string, uploads []MediaUpload) (*model.Article, error) {
	if strings.TrimSpace(title) == "" || strings.TrimSpace(body) == "" {
		return nil, fmt.Errorf("%w: title and body are required", ErrValidation)
	}
	if len(uploads) == 0 {
		return nil, fmt.Errorf("%w: media file is required", ErrValidation)
	}

	paths := make([]string, 0, len(uploads))
	for _, up := range uploads {
		key, err := s.storeUpload(ctx, up)
		if err != nil {
			return nil, err
		}
		paths = append(paths, key)
	}

	a := &model.Article{
		Title:      title,
		Body:       body,
		BumpTime:   timeNow().Unix(),
		MediaPaths: paths,
	}
	stored, err := s.repo.Create(ctx, a)
	if err != nil {
		return nil, fmt.Errorf("store article: %w", err)
	}
	if err := s.resolveMediaURLs(ctx, stored); err != nil {
		return nil, err
	}
	return stored, nil
}

func (s *articleService) Get(ctx context.Context, id int64) (*model.Article, error) {
	a, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("fetch article: %w", err)
	}
	if err := s.resolveMediaURLs(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *articleService) List(ctx context.Context) ([]model.ArticleSummary, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list articles: %w", err)
	}
	return items, nil
}

func (s *articleService) Update(ctx context.Context, id int64, title, body string) error {
	if strings.TrimSpace(title) == "" || strings.TrimSpace(body) == "" {
		return fmt.Errorf("%w: title and body are required", ErrValidation)
	}
	err := s.repo.Update(ctx, id, title, body, timeNow().Unix())
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return fmt.Errorf("update article: %w", err)
	}
	return nil
}

func (s *articleService) ReplaceMedia(ctx context.Context, id int64, up MediaUpload) error {
	key, err := s.storeUpload(ctx, up)
	if err != nil {
		return err
	}
	if err := s.repo.ReplaceMedia(ctx, id, key); err != nil {
		return fmt.Errorf("replace media: %w", err)
	}
	return nil
}

func (s *articleService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete article: %w", err)
	}
	return nil
}

// resolveMediaURLs swaps the article's stored media keys for URLs a client
// can fetch: the local backend yields stable paths under the static upload
// route, the S3-compatible backend yields presigned URLs. Keys stay in the
// database; only the outgoing representation carries URLs.
func (s *articleService) resolveMediaURLs(ctx context.Context, a *model.Article) error {
	if len(a.MediaPaths) == 0 {
		return nil
	}
	urls := make([]string, 0, len(a.MediaPaths))
	for _, key := range a.MediaPaths {
		u, err := s.store.PresignGet(ctx, key, mediaURLExpiry)
		if err != nil {
			return fmt.Errorf("resolve media url: %w", err)
		}
		urls = append(urls, u)
	}
	a.MediaPaths = urls
	return nil
}

// storeUpload writes the payload and returns its stored key. On failure the
// key is never handed to the repository, so a half-written object stays
// unlinked.
func (s *articleService) storeUpload(ctx context.Context, up MediaUpload) (string, error) {
	if up.Reader == nil {
		return "", fmt.Errorf("%w: media payload is empty", ErrValidation)
	}
	key := storage.MediaKey(up.Filename)
	_, err := s.store.Put(ctx, key, up.Reader, storage.PutObjectOptions{
		Size:        up.Size,
		ContentType: up.ContentType,
		Metadata: map[string]string{
			"original-filename": up.Filename,
		},
	})
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrStorageWrite, err)
	}
	return key, nil
}
