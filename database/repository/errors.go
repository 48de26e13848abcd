package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
)

var (
	// ErrNotFound is returned when no document matches.
	ErrNotFound = errors.New("document not found")
	// ErrDuplicateKey is returned when a unique index rejects a write.
	ErrDuplicateKey = errors.New("duplicate key")
	// ErrVersionMismatch is returned when a compare-and-set write finds the
	// document changed since it was read.
	ErrVersionMismatch = errors.New("document was modified concurrently")
)

// Translate maps driver errors onto the repository sentinels.
func Translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, mongo.ErrNoDocuments):
		return ErrNotFound
	case mongo.IsDuplicateKeyError(err):
		return errors.Join(ErrDuplicateKey, err)
	}
	return err
}

// WithTimeout bounds a single store call.
func WithTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithTimeout(ctx, d)
}

// Indexer is implemented by every repository that owns Mongo indexes.
type Indexer interface {
	EnsureIndexes(ctx context.Context) error
}

// EnsureIndexes runs each indexer in turn and stops at the first failure.
func EnsureIndexes(ctx context.Context, indexers ...Indexer) error {
	for _, ix := range indexers {
		if err := ix.EnsureIndexes(ctx); err != nil {
			return err
		}
	}
	return nil
}
