package store

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"time"

	bolt "go.etcd.io/bbolt"
)

// bucketSnapshots holds one nested bucket per snapshot key.
const bucketSnapshots = "snapshots"

// errShortRecord is returned when a stored value is too short to hold a
// timestamp.
var errShortRecord = errors.New("snapshot record too short")

// BoltStore is the bbolt backend. Each key gets a bucket whose entries are
// keyed by sequence number; values are an 8-byte unix millis timestamp
// followed by the blob.
type BoltStore struct {
	db *bolt.DB
}

var _ Backend = (*BoltStore)(nil)

// OpenBolt opens (creating if needed) the bbolt database at path.
func OpenBolt(path string) (*BoltStore, error) {
	db, err := bolt.Open(path, 0o644, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("open bolt database: %w", err)
	}
	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucketSnapshots))
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("initialize snapshot bucket: %w", err)
	}
	return &BoltStore{db: db}, nil
}

// Close closes the database.
func (s *BoltStore) Close() error {
	return s.db.Close()
}

// SnapshotRepo returns a SnapshotRepo backed by this store.
func (s *BoltStore) SnapshotRepo() SnapshotRepo {
	return &boltSnapshotRepo{db: s.db}
}

type boltSnapshotRepo struct {
	db *bolt.DB
}

func (r *boltSnapshotRepo) Save(_ context.Context, key string, data []byte) error {
	err := r.db.Update(func(tx *bolt.Tx) error {
		b, err := tx.Bucket([]byte(bucketSnapshots)).CreateBucketIfNotExists([]byte(key))
		if err != nil {
			return err
		}
		seq, err := b.NextSequence()
		if err != nil {
			return err
		}
		return b.Put(marshalSeq(seq), marshalRecord(time.Now(), data))
	})
	if err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	return nil
}

func (r *boltSnapshotRepo) Latest(_ context.Context, key string) (*Snapshot, error) {
	var snap *Snapshot
	err := r.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucketSnapshots)).Bucket([]byte(key))
		if b == nil {
			return nil
		}
		k, v := b.Cursor().Last()
		if k == nil {
			return nil
		}
		s, err := unmarshalRecord(key, k, v)
		if err != nil {
			return err
		}
		snap = &s
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("query latest snapshot: %w", err)
	}
	return snap, nil
}

func (r *boltSnapshotRepo) List(_ context.Context, key string) ([]Snapshot, error) {
	var out []Snapshot
	err := r.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucketSnapshots)).Bucket([]byte(key))
		if b == nil {
			return nil
		}
		c := b.Cursor()
		for k, v := c.Last(); k != nil; k, v = c.Prev() {
			s, err := unmarshalRecord(key, k, v)
			if err != nil {
				return err
			}
			out = append(out, s)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("list snapshots: %w", err)
	}
	return out, nil
}

func (r *boltSnapshotRepo) Prune(_ context.Context, key string, keep int) error {
	err := r.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucketSnapshots)).Bucket([]byte(key))
		if b == nil {
			return nil
		}
		// Collect first; deleting while iterating skips entries.
		var stale [][]byte
		c := b.Cursor()
		n := 0
		for k, _ := c.Last(); k != nil; k, _ = c.Prev() {
			n++
			if n > keep {
				stale = append(stale, append([]byte(nil), k...))
			}
		}
		for _, k := range stale {
			if err := b.Delete(k); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("prune snapshots: %w", err)
	}
	return nil
}

func marshalSeq(seq uint64) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, seq)
	return b
}

func unmarshalSeq(key []byte) uint64 {
	return binary.BigEndian.Uint64(key)
}

func marshalRecord(ts time.Time, data []byte) []byte {
	b := make([]byte, 8+len(data))
	binary.BigEndian.PutUint64(b, uint64(ts.UnixMilli()))
	copy(b[8:], data)
	return b
}

func unmarshalRecord(key string, k, v []byte) (Snapshot, error) {
	if len(v) < 8 {
		return Snapshot{}, errShortRecord
	}
	data := make([]byte, len(v)-8)
	copy(data, v[8:])
	return Snapshot{
		ID:        int64(unmarshalSeq(k)),
		Key:       key,
		Timestamp: time.UnixMilli(int64(binary.BigEndian.Uint64(v))),
		Data:      data,
	}, nil
}
