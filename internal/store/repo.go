package store

import (
	"context"
	"time"
)

// DefaultKey is the key the application state is saved under.
const DefaultKey = "data"

// Snapshot is one saved version of a blob.
type Snapshot struct {
	ID        int64
	Key       string
	Timestamp time.Time
	Data      []byte
}

// SnapshotRepo keeps a short history of opaque blobs per key.
type SnapshotRepo interface {
	// Save stores a new snapshot for key.
	Save(ctx context.Context, key string, data []byte) error

	// Latest returns the most recent snapshot for key, or nil if none exist.
	Latest(ctx context.Context, key string) (*Snapshot, error)

	// List returns every snapshot for key, newest first.
	List(ctx context.Context, key string) ([]Snapshot, error)

	// Prune deletes all but the N most recent snapshots for key.
	Prune(ctx context.Context, key string, keep int) error
}

// Backend is an open storage backend.
type Backend interface {
	SnapshotRepo() SnapshotRepo
	Close() error
}
