package cache

import (
	"database/sql"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// Store is a local list cache backed by SQLite. Cached pages are keyed
// by (tag, key); invalidating a tag drops every page under it.
type Store struct {
	db  *sql.DB
	ttl time.Duration
}

// Open opens (creating if needed) the cache database. An empty path
// defaults to the user config directory.
func Open(path string) (*Store, error) {
	if path == "" {
		cfgDir, err := os.UserConfigDir()
		if err != nil {
			return nil, err
		}
		path = filepath.Join(cfgDir, "SiteModels", "cache.sqlite")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	s := &Store{db: db, ttl: 5 * time.Minute}
	if err := s.migrate(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

func (s *Store) migrate() error {
	_, err := s.db.Exec(`
CREATE TABLE IF NOT EXISTS list_cache (
    tag        TEXT NOT NULL,
    key        TEXT NOT NULL,
    payload    BLOB NOT NULL,
    created_at INTEGER NOT NULL,
    PRIMARY KEY (tag, key)
);`)
	return err
}

// Get returns the cached payload, or false when absent or expired.
// A nil store misses every lookup.
func (s *Store) Get(tag, key string) ([]byte, bool) {
	if s == nil || s.db == nil {
		return nil, false
	}
	var payload []byte
	var createdAt int64
	err := s.db.QueryRow(
		`SELECT payload, created_at FROM list_cache WHERE tag = ? AND key = ?`,
		tag, key,
	).Scan(&payload, &createdAt)
	if err != nil {
		return nil, false
	}
	if time.Since(time.Unix(createdAt, 0)) > s.ttl {
		_, _ = s.db.Exec(`DELETE FROM list_cache WHERE tag = ? AND key = ?`, tag, key)
		return nil, false
	}
	return payload, true
}

// Set stores a payload under (tag, key).
func (s *Store) Set(tag, key string, payload []byte) {
	if s == nil || s.db == nil {
		return
	}
	_, _ = s.db.Exec(
		`INSERT OR REPLACE INTO list_cache (tag, key, payload, created_at) VALUES (?, ?, ?, ?)`,
		tag, key, payload, time.Now().Unix(),
	)
}

// Invalidate drops every cached page under the given tags.
func (s *Store) Invalidate(tags ...string) {
	if s == nil || s.db == nil {
		return
	}
	for _, tag := range tags {
		_, _ = s.db.Exec(`DELETE FROM list_cache WHERE tag = ?`, tag)
	}
}
