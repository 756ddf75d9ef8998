package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"time"

	"artikled/internal/config"
)

// localStorage implements the Storage interface on the local filesystem,
// rooted at a fixed upload directory. It is safe for concurrent use; the
// filesystem serializes writes to the same key (last write wins).
type localStorage struct {
	root    string
	baseURL string
}

// NewLocal creates a filesystem-backed storage rooted at cfg.UploadDir.
// The root is created if absent; creation is idempotent.
func NewLocal(cfg config.StorageConfig) (Storage, error) {
	if cfg.UploadDir == "" {
		return nil, fmt.Errorf("upload dir is required")
	}
	if err := os.MkdirAll(cfg.UploadDir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &localStorage{root: cfg.UploadDir, baseURL: cfg.BaseURL}, nil
}

// objectPath joins the key under the root. Keys are single path segments by
// construction (MediaKey); Base is a second line of defense for callers that
// hand in raw keys.
func (l *localStorage) objectPath(key string) string {
	return filepath.Join(l.root, filepath.Base(filepath.FromSlash(key)))
}

// Put writes the payload to disk. On any failure the error is returned and the
// caller must not link the key into the data model; a partial file may remain
// on disk but is unreferenced.
func (l *localStorage) Put(ctx context.Context, key string, r io.Reader, opt PutObjectOptions) (ObjectInfo, error) {
	if err := ctx.Err(); err != nil {
		return ObjectInfo{}, err
	}
	// Tolerate the root having been removed since startup.
	if err := os.MkdirAll(l.root, 0o755); err != nil {
		return ObjectInfo{}, fmt.Errorf("create upload dir: %w", err)
	}

	p := l.objectPath(key)
	f, err := os.Create(p)
	if err != nil {
		return ObjectInfo{}, fmt.Errorf("create file: %w", err)
	}

	n, err := io.Copy(f, r)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return ObjectInfo{}, fmt.Errorf("write file: %w", err)
	}

	return ObjectInfo{
		Key:          key,
		Size:         n,
		ContentType:  opt.ContentType,
		LastModified: time.Now(),
		Metadata:     opt.Metadata,
	}, nil
}

// Get opens the stored file for streaming reads.
func (l *localStorage) Get(ctx context.Context, key string) (io.ReadCloser, ObjectInfo, error) {
	if err := ctx.Err(); err != nil {
		return nil, ObjectInfo{}, err
	}
	p := l.objectPath(key)
	f, err := os.Open(p)
	if err != nil {
		return nil, ObjectInfo{}, err
	}
	st, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, ObjectInfo{}, err
	}
	return f, ObjectInfo{
		Key:          key,
		Size:         st.Size(),
		LastModified: st.ModTime(),
	}, nil
}

// Delete removes the stored file. A missing file is not an error.
func (l *localStorage) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	err := os.Remove(l.objectPath(key))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// PresignGet returns the public URL path for the key. Local files are served
// by the static file layer, so no signing is involved and expiry is ignored.
func (l *localStorage) PresignGet(ctx context.Context, key string, expiry time.Duration) (string, error) {
	return path.Join(l.baseURL, path.Base(key)), nil
}
