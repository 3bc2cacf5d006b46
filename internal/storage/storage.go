package storage

import (
	"context"
	"errors"
	"io"
	"time"
)

// ErrUnsupported signals a query the backing store cannot answer. Callers get
// this instead of fabricated values.
var ErrUnsupported = errors.New("storage: operation not supported")

// ErrUnavailable wraps failures to reach or be accepted by the remote host.
var ErrUnavailable = errors.New("storage: remote host unavailable")

// Storage persists uploaded media and resolves stored names back to URLs.
//
// Save returns the storage name under which the content was persisted; a
// changed file is a new Save with a new generated name, never an update in
// place. Delete reports success as a bool and never returns an error: a
// failed remote delete must not block the caller's own record deletion.
type Storage interface {
	Save(ctx context.Context, name string, content io.Reader) (string, error)
	Delete(ctx context.Context, name string) bool
	Exists(ctx context.Context, name string) bool
	URL(name string) string
	Size(ctx context.Context, name string) int64
	ModTime(ctx context.Context, name string) (time.Time, error)
	CreatedTime(ctx context.Context, name string) (time.Time, error)
}
