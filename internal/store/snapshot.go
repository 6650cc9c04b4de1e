package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	entsql "entgo.io/ent/dialect/sql"
)

const snapshotsTable = "snapshots"

// snapshotRepo implements SnapshotRepo on SQLite.
type snapshotRepo struct {
	db *sql.DB
	b  *entsql.DialectBuilder
}

func (r *snapshotRepo) Save(ctx context.Context, key string, data []byte) error {
	query, args := r.b.Insert(snapshotsTable).
		Columns("key", "timestamp", "data").
		Values(key, time.Now().UnixMilli(), data).
		Query()
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	return nil
}

func (r *snapshotRepo) Latest(ctx context.Context, key string) (*Snapshot, error) {
	snaps, err := r.query(ctx, key, 1)
	if err != nil {
		return nil, fmt.Errorf("query latest snapshot: %w", err)
	}
	if len(snaps) == 0 {
		return nil, nil
	}
	return &snaps[0], nil
}

func (r *snapshotRepo) List(ctx context.Context, key string) ([]Snapshot, error) {
	snaps, err := r.query(ctx, key, 0)
	if err != nil {
		return nil, fmt.Errorf("list snapshots: %w", err)
	}
	return snaps, nil
}

func (r *snapshotRepo) Prune(ctx context.Context, key string, keep int) error {
	// Find the ID threshold: the newest snapshot that falls outside keep.
	query, args := r.b.Select("id").
		From(r.b.Table(snapshotsTable)).
		Where(entsql.EQ("key", key)).
		OrderBy(entsql.Desc("id")).
		Limit(1).
		Offset(keep).
		Query()

	var threshold int64
	err := r.db.QueryRowContext(ctx, query, args...).Scan(&threshold)
	if err == sql.ErrNoRows {
		return nil // fewer than keep snapshots exist
	}
	if err != nil {
		return fmt.Errorf("query snapshots for prune: %w", err)
	}

	query, args = r.b.Delete(snapshotsTable).
		Where(entsql.And(entsql.EQ("key", key), entsql.LTE("id", threshold))).
		Query()
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("prune snapshots: %w", err)
	}
	return nil
}

// query returns snapshots for key, newest first. limit 0 means all.
func (r *snapshotRepo) query(ctx context.Context, key string, limit int) ([]Snapshot, error) {
	sel := r.b.Select("id", "key", "timestamp", "data").
		From(r.b.Table(snapshotsTable)).
		Where(entsql.EQ("key", key)).
		OrderBy(entsql.Desc("id"))
	if limit > 0 {
		sel = sel.Limit(limit)
	}
	query, args := sel.Query()

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Snapshot
	for rows.Next() {
		var (
			s  Snapshot
			ms int64
		)
		if err := rows.Scan(&s.ID, &s.Key, &ms, &s.Data); err != nil {
			return nil, err
		}
		s.Timestamp = time.UnixMilli(ms)
		out = append(out, s)
	}
	return out, rows.Err()
}
