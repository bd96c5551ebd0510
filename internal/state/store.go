// Package state persists a per-application build log: one record per
// compilation pass plus the rendered page paths and content hashes, so the
// CLI can report what changed between passes.
package state

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"time"

	_ "modernc.org/sqlite"
)

// PassRecord describes one completed compilation pass.
type PassRecord struct {
	ID         string
	App        string
	StartedAt  time.Time
	DurationMS int64
	Pages      int
	Status     string // success | failed
}

// RenderedPage is one output file of a pass.
type RenderedPage struct {
	Path string
	Hash string // sha256 of rendered content
}

// Store is a SQLite-backed build log.
type Store struct {
	db *sql.DB
	mu sync.RWMutex
}

// NewStore opens (and initializes) the build log at dbPath.
// Use ":memory:" for an in-memory database.
func NewStore(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	store := &Store{db: db}
	if err := store.initialize(); err != nil {
		_ = db.Close() // Best effort cleanup on initialization error
		return nil, fmt.Errorf("initialize schema: %w", err)
	}
	return store, nil
}

func (s *Store) initialize() error {
	schema := `
	CREATE TABLE IF NOT EXISTS passes (
		id TEXT PRIMARY KEY,
		app TEXT NOT NULL,
		started_at INTEGER NOT NULL,
		duration_ms INTEGER NOT NULL,
		pages INTEGER NOT NULL,
		status TEXT NOT NULL
	);
	CREATE TABLE IF NOT EXISTS pass_pages (
		pass_id TEXT NOT NULL,
		path TEXT NOT NULL,
		hash TEXT NOT NULL,
		PRIMARY KEY (pass_id, path)
	);
	CREATE INDEX IF NOT EXISTS idx_passes_app ON passes(app, started_at);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// RecordPass stores one pass and its rendered pages atomically.
func (s *Store) RecordPass(ctx context.Context, rec PassRecord, pages []RenderedPage) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	_, err = tx.ExecContext(ctx,
		"INSERT INTO passes (id, app, started_at, duration_ms, pages, status) VALUES (?, ?, ?, ?, ?, ?)",
		rec.ID, rec.App, rec.StartedAt.Unix(), rec.DurationMS, rec.Pages, rec.Status,
	)
	if err != nil {
		return fmt.Errorf("insert pass: %w", err)
	}

	for _, page := range pages {
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO pass_pages (pass_id, path, hash) VALUES (?, ?, ?)",
			rec.ID, page.Path, page.Hash,
		); err != nil {
			return fmt.Errorf("insert page %s: %w", page.Path, err)
		}
	}

	return tx.Commit()
}

// LastPass returns the most recent successful pass for an app, or nil when
// the app has never been built.
func (s *Store) LastPass(ctx context.Context, app string) (*PassRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	row := s.db.QueryRowContext(ctx,
		"SELECT id, app, started_at, duration_ms, pages, status FROM passes WHERE app = ? AND status = 'success' ORDER BY started_at DESC, rowid DESC LIMIT 1",
		app,
	)

	var rec PassRecord
	var started int64
	err := row.Scan(&rec.ID, &rec.App, &started, &rec.DurationMS, &rec.Pages, &rec.Status)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query last pass: %w", err)
	}
	rec.StartedAt = time.Unix(started, 0)
	return &rec, nil
}

// PassPages returns the rendered pages of one pass, ordered by path.
func (s *Store) PassPages(ctx context.Context, passID string) ([]RenderedPage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx,
		"SELECT path, hash FROM pass_pages WHERE pass_id = ? ORDER BY path",
		passID,
	)
	if err != nil {
		return nil, fmt.Errorf("query pass pages: %w", err)
	}
	defer rows.Close()

	var pages []RenderedPage
	for rows.Next() {
		var p RenderedPage
		if err := rows.Scan(&p.Path, &p.Hash); err != nil {
			return nil, fmt.Errorf("scan page: %w", err)
		}
		pages = append(pages, p)
	}
	return pages, rows.Err()
}

// ChangedSince diffs the given pages against the last successful pass of the
// app. It returns the paths that are new or whose content hash changed, plus
// the paths that disappeared.
func (s *Store) ChangedSince(ctx context.Context, app string, current []RenderedPage) (changed, removed []string, err error) {
	last, err := s.LastPass(ctx, app)
	if err != nil {
		return nil, nil, err
	}
	if last == nil {
		for _, p := range current {
			changed = append(changed, p.Path)
		}
		return changed, nil, nil
	}

	previous, err := s.PassPages(ctx, last.ID)
	if err != nil {
		return nil, nil, err
	}

	prevHashes := make(map[string]string, len(previous))
	for _, p := range previous {
		prevHashes[p.Path] = p.Hash
	}

	seen := make(map[string]struct{}, len(current))
	for _, p := range current {
		seen[p.Path] = struct{}{}
		if prevHashes[p.Path] != p.Hash {
			changed = append(changed, p.Path)
		}
	}
	for _, p := range previous {
		if _, ok := seen[p.Path]; !ok {
			removed = append(removed, p.Path)
		}
	}
	return changed, removed, nil
}
