package storage

import (
	"context"

	"github.com/cockroachdb/errors"
)

var ErrDoesNotExist = errors.New("does not exist")

// System is the read side of a storage backend holding window documents.
type System interface {
	// Read returns the document stored under key, or ErrDoesNotExist.
	Read(ctx context.Context, key string) ([]byte, error)

	// GetKeysWithPrefix lists every key starting with prefix, sorted.
	GetKeysWithPrefix(ctx context.Context, prefix string) ([]string, error)
}
