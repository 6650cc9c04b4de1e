package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"

	// Pure Go SQLite driver (no CGO).
	_ "modernc.org/sqlite"
)

// Backend names accepted by OpenBackend.
const (
	BackendSQLite = "sqlite"
	BackendBolt   = "bolt"
)

// Store is the SQLite backend.
type Store struct {
	db *sql.DB
	b  *entsql.DialectBuilder
}

var _ Backend = (*Store)(nil)

// OpenBackend opens the named backend at path.
func OpenBackend(name, path string) (Backend, error) {
	switch strings.ToLower(name) {
	case "", BackendSQLite:
		return Open(path)
	case BackendBolt:
		return OpenBolt(path)
	}
	return nil, fmt.Errorf("unknown store backend %q", name)
}

// Open creates a new Store connected to the SQLite database at dsn.
// It applies recommended pragmas and creates the schema.
func Open(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply pragmas: %w", err)
	}

	s := &Store{db: db, b: entsql.Dialect(dialect.SQLite)}
	if err := s.migrate(context.Background()); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return s, nil
}

// DB returns the underlying *sql.DB for raw queries.
func (s *Store) DB() *sql.DB {
	return s.db
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// SnapshotRepo returns a SnapshotRepo backed by this store.
func (s *Store) SnapshotRepo() SnapshotRepo {
	return &snapshotRepo{db: s.db, b: s.b}
}

func (s *Store) migrate(ctx context.Context) error {
	query, args := s.b.CreateTable(snapshotsTable).
		IfNotExists().
		Columns(
			s.b.Column("id").Type("integer").Attr("PRIMARY KEY AUTOINCREMENT"),
			s.b.Column("key").Type("text").Attr("NOT NULL"),
			s.b.Column("timestamp").Type("integer").Attr("NOT NULL"),
			s.b.Column("data").Type("blob").Attr("NOT NULL"),
		).
		Query()
	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("create %s: %w", snapshotsTable, err)
	}
	_, err := s.db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS snapshots_key_id ON snapshots (key, id)`)
	if err != nil {
		return fmt.Errorf("create snapshot index: %w", err)
	}
	return nil
}

// applyPragmas configures SQLite for optimal single-user performance.
func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA foreign_keys = ON",
		"PRAGMA synchronous = NORMAL",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return fmt.Errorf("%s: %w", p, err)
		}
	}
	return nil
}

// DefaultDBPath resolves the database file path in priority order:
// 1. EFORM_DB environment variable
// 2. $XDG_DATA_HOME/eform/eform.db
// 3. ~/.local/share/eform/eform.db
func DefaultDBPath() (string, error) {
	if p := os.Getenv("EFORM_DB"); p != "" {
		return p, EnsureDir(p)
	}

	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}

	p := filepath.Join(dataHome, "eform", "eform.db")
	return p, EnsureDir(p)
}

// EnsureDir creates the parent directory of path if it doesn't exist.
func EnsureDir(path string) error {
	dir := filepath.Dir(path)
	return os.MkdirAll(dir, 0o755)
}
