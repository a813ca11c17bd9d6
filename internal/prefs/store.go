package prefs

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"

	// Pure Go SQLite driver (no CGO).
	_ "modernc.org/sqlite"
)

const table = "preferences"

// Store persists Preferences in SQLite.
type Store struct {
	db  *sql.DB
	drv *entsql.Driver
	now func() time.Time
}

// Open connects to the SQLite database at dsn, applies pragmas and creates
// the preferences table if needed.
func Open(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply pragmas: %w", err)
	}

	s := &Store{
		db:  db,
		drv: entsql.OpenDB(dialect.SQLite, db),
		now: time.Now,
	}
	if err := s.migrate(context.Background()); err != nil {
		s.Close()
		return nil, fmt.Errorf("auto-migrate: %w", err)
	}
	return s, nil
}

// schema is applied on every open. ent's builder has no DDL support
// outside the generated client, so the statement is written out.
const schema = `CREATE TABLE IF NOT EXISTS ` + table + ` (
	key        TEXT     NOT NULL PRIMARY KEY,
	value      TEXT     NOT NULL,
	updated_at DATETIME NOT NULL
)`

func (s *Store) migrate(ctx context.Context) error {
	return s.drv.Exec(ctx, schema, []any{}, nil)
}

// DB returns the underlying *sql.DB for raw queries.
func (s *Store) DB() *sql.DB {
	return s.db
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.drv.Close()
}

// Load returns the stored preferences. Missing keys and values that are no
// longer valid fall back to the defaults.
func (s *Store) Load(ctx context.Context) (Preferences, error) {
	raw, err := s.All(ctx)
	if err != nil {
		return Preferences{}, err
	}
	p := Defaults()
	for k, v := range raw {
		if next, err := p.With(k, v); err == nil {
			p = next
		}
	}
	return p, nil
}

// All returns every stored key-value pair.
func (s *Store) All(ctx context.Context) (map[string]string, error) {
	query, args := entsql.Dialect(dialect.SQLite).
		Select("key", "value").
		From(entsql.Table(table)).
		Query()

	var rows entsql.Rows
	if err := s.drv.Query(ctx, query, args, &rows); err != nil {
		return nil, fmt.Errorf("query preferences: %w", err)
	}
	defer rows.Close()

	out := make(map[string]string)
	for rows.Next() {
		var k, v string
		if err := rows.Scan(&k, &v); err != nil {
			return nil, fmt.Errorf("scan preference: %w", err)
		}
		out[k] = v
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate preferences: %w", err)
	}
	return out, nil
}

// Save writes every field of p.
func (s *Store) Save(ctx context.Context, p Preferences) error {
	for k, v := range p.pairs() {
		if err := s.put(ctx, k, v); err != nil {
			return err
		}
	}
	return nil
}

// Set validates and stores a single key, returning the resulting preferences.
func (s *Store) Set(ctx context.Context, key, value string) (Preferences, error) {
	cur, err := s.Load(ctx)
	if err != nil {
		return Preferences{}, err
	}
	next, err := cur.With(key, value)
	if err != nil {
		return cur, err
	}
	if err := s.put(ctx, key, next.pairs()[key]); err != nil {
		return cur, err
	}
	return next, nil
}

func (s *Store) put(ctx context.Context, key, value string) error {
	query, args := entsql.Dialect(dialect.SQLite).
		Insert(table).
		Columns("key", "value", "updated_at").
		Values(key, value, s.now().UTC()).
		OnConflict(
			entsql.ConflictColumns("key"),
			entsql.ResolveWithNewValues(),
		).
		Query()
	if err := s.drv.Exec(ctx, query, args, nil); err != nil {
		return fmt.Errorf("save preference %s: %w", key, err)
	}
	return nil
}

// applyPragmas configures SQLite for a single local user.
func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA synchronous = NORMAL",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return fmt.Errorf("%s: %w", p, err)
		}
	}
	return nil
}
