package storage

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Load when nothing has been saved under the
// storage key yet.
var ErrNotFound = errors.New("document not found")

// Backend stores the serialized document under a single key. Every Save
// overwrites the whole value; there are no partial writes.
type Backend interface {
	Load(ctx context.Context) ([]byte, error)
	Save(ctx context.Context, data []byte) error
	Close() error
}
