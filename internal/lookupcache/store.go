package lookupcache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"hoarder/internal/textutil"
)

// Entry is one cached lookup answer.
type Entry struct {
	Query       string
	Title       string
	ReleaseDate string
	FetchedAt   time.Time
}

// Store persists title lookup answers in SQLite.
type Store struct {
	db   *sql.DB
	path string
	ttl  time.Duration
	now  func() time.Time
}

// Option configures a Store.
type Option func(*Store)

// WithClock overrides the time source used for freshness checks.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		if now != nil {
			s.now = now
		}
	}
}

// Open creates or connects to the cache database at path. A ttl of zero keeps
// entries forever.
func Open(ctx context.Context, path string, ttl time.Duration, opts ...Option) (*Store, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, errors.New("lookup cache path required")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create cache directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	// One connection serializes writers from parallel workers inside the
	// process; busy_timeout covers other processes sharing the file.
	db.SetMaxOpenConns(1)

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.ExecContext(ctx, pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	store := &Store{db: db, path: path, ttl: ttl, now: time.Now}
	for _, opt := range opts {
		opt(store)
	}
	if err := store.initSchema(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	return store, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Get returns the fresh entry for query, if any.
func (s *Store) Get(ctx context.Context, query string) (Entry, bool, error) {
	var (
		entry   Entry
		fetched string
	)
	err := s.db.QueryRowContext(ctx,
		"SELECT query, title, release_date, fetched_at FROM title_lookups WHERE query = ?",
		normalizeQuery(query),
	).Scan(&entry.Query, &entry.Title, &entry.ReleaseDate, &fetched)
	if errors.Is(err, sql.ErrNoRows) {
		return Entry{}, false, nil
	}
	if err != nil {
		return Entry{}, false, fmt.Errorf("read cache entry: %w", err)
	}
	entry.FetchedAt, err = time.Parse(time.RFC3339Nano, fetched)
	if err != nil {
		return Entry{}, false, fmt.Errorf("parse cache timestamp %q: %w", fetched, err)
	}
	if s.ttl > 0 && s.now().Sub(entry.FetchedAt) > s.ttl {
		return Entry{}, false, nil
	}
	return entry, true, nil
}

// Put stores or refreshes the answer for query.
func (s *Store) Put(ctx context.Context, query, title, releaseDate string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO title_lookups (query, title, release_date, fetched_at)
         VALUES (?, ?, ?, ?)
         ON CONFLICT(query) DO UPDATE SET
            title = excluded.title,
            release_date = excluded.release_date,
            fetched_at = excluded.fetched_at`,
		normalizeQuery(query),
		title,
		releaseDate,
		s.now().UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("write cache entry: %w", err)
	}
	return nil
}

// Len returns the number of stored entries, fresh or not.
func (s *Store) Len(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(1) FROM title_lookups").Scan(&n); err != nil {
		return 0, fmt.Errorf("count cache entries: %w", err)
	}
	return n, nil
}

func normalizeQuery(query string) string {
	return strings.ToLower(textutil.CollapseWhitespace(query))
}
