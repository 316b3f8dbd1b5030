// Package storage persists game scores and per-round records.
// SQLite (modernc.org/sqlite, no CGO) is the default backend; a postgres://
// DSN switches to PostgreSQL through lib/pq for shared server deployments.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	_ "github.com/lib/pq"  // PostgreSQL driver
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Dialect identifies the SQL backend behind a Store.
type Dialect string

const (
	SQLite   Dialect = "sqlite"
	Postgres Dialect = "postgres"
)

// sqliteTimeLayout is how SQLite's CURRENT_TIMESTAMP renders.
const sqliteTimeLayout = "2006-01-02 15:04:05"

// Store manages the database connection for scores and rounds.
type Store struct {
	db      *sql.DB
	dialect Dialect
}

// IsPostgresDSN reports whether dsn names a PostgreSQL database.
func IsPostgresDSN(dsn string) bool {
	return strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://")
}

// Open connects to the database named by dsn and runs migrations.
// A postgres:// or postgresql:// URL opens PostgreSQL; anything else is a
// SQLite file path, where a leading ~ expands to the home directory and
// missing parent directories are created.
func Open(dsn string) (*Store, error) {
	if IsPostgresDSN(dsn) {
		return open(Postgres, "postgres", dsn)
	}

	if dsn != "" && dsn[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dsn = filepath.Join(home, dsn[1:])
	}

	dir := filepath.Dir(dsn)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	return open(SQLite, "sqlite", dsn)
}

func open(dialect Dialect, driver, dsn string) (*Store, error) {
	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db, dialect: dialect}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// Dialect returns the backend in use.
func (s *Store) Dialect() Dialect {
	return s.dialect
}

// migrate creates the schema if it doesn't exist.
func (s *Store) migrate() error {
	id, ts := "INTEGER PRIMARY KEY AUTOINCREMENT", "DATETIME"
	if s.dialect == Postgres {
		id, ts = "BIGSERIAL PRIMARY KEY", "TIMESTAMP"
	}

	schema := `
		CREATE TABLE IF NOT EXISTS scores (
			id ` + id + `,
			game_id TEXT NOT NULL,
			score INTEGER NOT NULL,
			created_at ` + ts + ` DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_scores_game_id ON scores(game_id);
		CREATE INDEX IF NOT EXISTS idx_scores_top ON scores(game_id, score DESC);

		CREATE TABLE IF NOT EXISTS rounds (
			id ` + id + `,
			session_id TEXT NOT NULL,
			game_id TEXT NOT NULL,
			round INTEGER NOT NULL,
			attack INTEGER NOT NULL DEFAULT 0,
			defence INTEGER NOT NULL DEFAULT 0,
			opponent_attack INTEGER NOT NULL DEFAULT 0,
			opponent_defence INTEGER NOT NULL DEFAULT 0,
			best_multiplier INTEGER NOT NULL DEFAULT 0,
			matches INTEGER NOT NULL DEFAULT 0,
			forced_shuffles INTEGER NOT NULL DEFAULT 0,
			won BOOLEAN NOT NULL DEFAULT FALSE,
			created_at ` + ts + ` DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_rounds_session ON rounds(session_id, round);
		CREATE INDEX IF NOT EXISTS idx_rounds_game_id ON rounds(game_id);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// rebind rewrites ? placeholders as $1, $2, ... for PostgreSQL.
func (s *Store) rebind(query string) string {
	if s.dialect != Postgres {
		return query
	}
	var sb strings.Builder
	sb.Grow(len(query) + 8)
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			sb.WriteByte('$')
			sb.WriteString(strconv.Itoa(n))
			continue
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

// insert runs an INSERT and returns the new row ID.
// PostgreSQL has no LastInsertId, so the ID comes back through RETURNING.
func (s *Store) insert(query string, args ...any) (int64, error) {
	if s.dialect == Postgres {
		var id int64
		if err := s.db.QueryRow(s.rebind(query)+" RETURNING id", args...).Scan(&id); err != nil {
			return 0, err
		}
		return id, nil
	}

	result, err := s.db.Exec(query, args...)
	if err != nil {
		return 0, err
	}
	return result.LastInsertId()
}

func (s *Store) query(query string, args ...any) (*sql.Rows, error) {
	return s.db.Query(s.rebind(query), args...)
}

func (s *Store) queryRow(query string, args ...any) *sql.Row {
	return s.db.QueryRow(s.rebind(query), args...)
}

func (s *Store) exec(query string, args ...any) (sql.Result, error) {
	return s.db.Exec(s.rebind(query), args...)
}

// parseTime converts a scanned timestamp. PostgreSQL yields time.Time,
// SQLite may yield the CURRENT_TIMESTAMP text form.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse(sqliteTimeLayout, t); err == nil {
			return parsed
		}
	case []byte:
		if parsed, err := time.Parse(sqliteTimeLayout, string(t)); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
