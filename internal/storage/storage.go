package storage

import (
	"context"
	"io"
	"strings"
	"time"
)

// Package storage contains the media storage abstraction and its backends.
// The local backend writes under a fixed upload root on disk; the minio
// backend targets any S3-compatible object store. Key construction is shared
// so the path-traversal guarantees hold for every backend.

// MediaKeyPrefix disambiguates article uploads from other features sharing
// the same upload area.
const MediaKeyPrefix = "article_"

// PutObjectOptions define optional parameters for storing media.
// Size should be the exact number of bytes if known; if unknown, set to -1 and
// the implementation will buffer/chunk as supported by the backend.
type PutObjectOptions struct {
	Size        int64
	ContentType string
	Metadata    map[string]string
}

// ObjectInfo contains basic information about a stored object.
type ObjectInfo struct {
	Key          string
	Size         int64
	ETag         string
	ContentType  string
	LastModified time.Time
	Metadata     map[string]string
}

// Storage stores media payloads under opaque keys.
// Writes are all-or-nothing from the caller's perspective: on error, the
// returned reference must not be persisted into the data model. A partially
// written object may remain in the backend but is never linked.
type Storage interface {
	// Put stores an object under the given key using the provided reader and options.
	Put(ctx context.Context, key string, r io.Reader, opt PutObjectOptions) (ObjectInfo, error)
	// Get retrieves an object's content as a streaming reader alongside its info.
	Get(ctx context.Context, key string) (io.ReadCloser, ObjectInfo, error)
	// Delete removes an object by key.
	Delete(ctx context.Context, key string) error
	// PresignGet returns a URL that can be used to fetch the object without credentials.
	PresignGet(ctx context.Context, key string, expiry time.Duration) (string, error)
}

// MediaKey builds the stored key for an uploaded media file: the sanitized
// client filename behind the fixed article prefix. Two uploads with the same
// sanitized name map to the same key and the later one overwrites the earlier
// file; that is an accepted, documented risk of the design.
func MediaKey(suggestedName string) string {
	return MediaKeyPrefix + SanitizeFilename(suggestedName)
}

// SanitizeFilename reduces a client-supplied filename to a single safe path
// segment. Directory components (both separator styles), traversal sequences
// and characters outside [A-Za-z0-9._-] never survive, so the result can be
// joined under the upload root without escaping it.
func SanitizeFilename(name string) string {
	if i := strings.LastIndexAny(name, `/\`); i >= 0 {
		name = name[i+1:]
	}

	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z',
			r >= 'A' && r <= 'Z',
			r >= '0' && r <= '9',
			r == '-', r == '_', r == '.':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}

	// Trimming edge dots collapses "." / ".." and hidden-file prefixes.
	s := strings.Trim(b.String(), ".")
	if s == "" {
		s = "file"
	}
	return s
}
