package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// FileStore persists assets onto the local filesystem. It is the development
// and test backend, and the fallback target when the remote host is unusable.
type FileStore struct {
	basePath string
	baseURL  string
}

// NewFileStore initializes a FileStore rooted at basePath. Stored names
// resolve to baseURL + "/" + name.
func NewFileStore(basePath, baseURL string) (*FileStore, error) {
	basePath = strings.TrimSpace(basePath)
	if basePath == "" {
		return nil, errors.New("storage: base path is required")
	}
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, fmt.Errorf("storage: ensure base path: %w", err)
	}
	return &FileStore{basePath: basePath, baseURL: strings.TrimRight(baseURL, "/")}, nil
}

// BasePath returns the configured root directory.
func (s *FileStore) BasePath() string {
	if s == nil {
		return ""
	}
	return s.basePath
}

// Save persists the content at the given relative name and returns the
// canonicalized storage name. Names are cleaned to prevent directory traversal.
func (s *FileStore) Save(ctx context.Context, name string, content io.Reader) (string, error) {
	if s == nil {
		return "", errors.New("storage: no store configured")
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}
	cleanKey, err := sanitizeKey(name)
	if err != nil {
		return "", err
	}
	data, err := io.ReadAll(content)
	if err != nil {
		return "", fmt.Errorf("storage: read content: %w", err)
	}
	fullPath := filepath.Join(s.basePath, filepath.FromSlash(cleanKey))
	if err := os.MkdirAll(filepath.Dir(fullPath), 0o755); err != nil {
		return "", fmt.Errorf("storage: ensure directory: %w", err)
	}
	if err := os.WriteFile(fullPath, data, 0o644); err != nil {
		return "", fmt.Errorf("storage: write file: %w", err)
	}
	return cleanKey, nil
}

// Delete removes the named file. Missing files count as deleted.
func (s *FileStore) Delete(ctx context.Context, name string) bool {
	if s == nil {
		return false
	}
	cleanKey, err := sanitizeKey(name)
	if err != nil {
		return false
	}
	err = os.Remove(filepath.Join(s.basePath, filepath.FromSlash(cleanKey)))
	return err == nil || os.IsNotExist(err)
}

// Exists reports whether the named file is present on disk.
func (s *FileStore) Exists(ctx context.Context, name string) bool {
	if s == nil {
		return false
	}
	cleanKey, err := sanitizeKey(name)
	if err != nil {
		return false
	}
	_, err = os.Stat(filepath.Join(s.basePath, filepath.FromSlash(cleanKey)))
	return err == nil
}

// URL resolves a stored name to a fetchable URL. Absolute URLs pass through
// unchanged.
func (s *FileStore) URL(name string) string {
	if name == "" {
		return ""
	}
	if strings.HasPrefix(name, "http://") || strings.HasPrefix(name, "https://") {
		return name
	}
	return s.baseURL + "/" + strings.TrimLeft(name, "/")
}

// Size returns the stored file's size in bytes, or 0 when it cannot be read.
func (s *FileStore) Size(ctx context.Context, name string) int64 {
	if s == nil {
		return 0
	}
	cleanKey, err := sanitizeKey(name)
	if err != nil {
		return 0
	}
	info, err := os.Stat(filepath.Join(s.basePath, filepath.FromSlash(cleanKey)))
	if err != nil {
		return 0
	}
	return info.Size()
}

// ModTime returns the stored file's modification time.
func (s *FileStore) ModTime(ctx context.Context, name string) (time.Time, error) {
	if s == nil {
		return time.Time{}, errors.New("storage: no store configured")
	}
	cleanKey, err := sanitizeKey(name)
	if err != nil {
		return time.Time{}, err
	}
	info, err := os.Stat(filepath.Join(s.basePath, filepath.FromSlash(cleanKey)))
	if err != nil {
		return time.Time{}, fmt.Errorf("storage: stat file: %w", err)
	}
	return info.ModTime(), nil
}

// CreatedTime is not portably available from the filesystem.
func (s *FileStore) CreatedTime(ctx context.Context, name string) (time.Time, error) {
	return time.Time{}, ErrUnsupported
}

// sanitizeKey normalizes a key and prevents escaping the storage root.
func sanitizeKey(key string) (string, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return "", errors.New("storage: key is required")
	}
	key = strings.ReplaceAll(key, "\\", "/")
	key = strings.TrimPrefix(key, "./")
	key = strings.TrimLeft(key, "/")
	cleaned := filepath.Clean(key)
	cleaned = strings.ReplaceAll(cleaned, "\\", "/")
	if cleaned == "." || strings.HasPrefix(cleaned, "../") {
		return "", errors.New("storage: invalid key")
	}
	return cleaned, nil
}

var _ Storage = (*FileStore)(nil)
