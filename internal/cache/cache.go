// Package cache persists formatted posts keyed by normalized topic, plus a
// log of generation runs. Backed by a local sqlite database.
package cache

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

type Cache struct {
	readDB  *sql.DB
	writeDB *sql.DB
}

func Open(dbPath string) (*Cache, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("creating cache dir: %w", err)
	}

	writeDB, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening write db: %w", err)
	}
	writeDB.SetMaxOpenConns(1)

	readDB, err := sql.Open("sqlite", dbPath)
	if err != nil {
		writeDB.Close()
		return nil, fmt.Errorf("opening read db: %w", err)
	}

	c := &Cache{readDB: readDB, writeDB: writeDB}
	if err := c.init(); err != nil {
		c.Close()
		return nil, err
	}
	return c, nil
}

func (c *Cache) init() error {
	_, err := c.writeDB.Exec(`
		CREATE TABLE IF NOT EXISTS posts (
			key          TEXT PRIMARY KEY,
			topic        TEXT NOT NULL,
			document     TEXT NOT NULL,
			generated_at DATETIME NOT NULL
		);

		CREATE TABLE IF NOT EXISTS runs (
			id          INTEGER PRIMARY KEY AUTOINCREMENT,
			topic       TEXT NOT NULL,
			cache_hit   INTEGER NOT NULL,
			ok          INTEGER NOT NULL,
			error       TEXT NOT NULL DEFAULT '',
			duration_ms INTEGER NOT NULL,
			created_at  DATETIME NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_runs_created ON runs(created_at DESC);

		CREATE TABLE IF NOT EXISTS meta (
			key   TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);
	`)
	if err != nil {
		return fmt.Errorf("initializing schema: %w", err)
	}
	return nil
}

func (c *Cache) Close() error {
	var errs []error
	if c.readDB != nil {
		errs = append(errs, c.readDB.Close())
	}
	if c.writeDB != nil {
		errs = append(errs, c.writeDB.Close())
	}
	for _, e := range errs {
		if e != nil {
			return e
		}
	}
	return nil
}

// Key normalizes a topic into its cache key: lowercased, whitespace runs
// collapsed to single dashes. Idempotent, so Key(Key(t)) == Key(t).
func Key(topic string) string {
	return strings.ToLower(strings.Join(strings.Fields(topic), "-"))
}

// Get returns the cached document for a topic. A miss is a normal outcome,
// reported via the bool, not an error.
func (c *Cache) Get(topic string) (string, bool, error) {
	var doc string
	err := c.readDB.QueryRow("SELECT document FROM posts WHERE key = ?", Key(topic)).Scan(&doc)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("querying post: %w", err)
	}
	return doc, true, nil
}

// Put stores a document under the topic's normalized key. Last write wins.
func (c *Cache) Put(topic, document string) error {
	_, err := c.writeDB.Exec(`
		INSERT INTO posts (key, topic, document, generated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET
			topic = excluded.topic,
			document = excluded.document,
			generated_at = excluded.generated_at
	`, Key(topic), topic, document, time.Now())
	if err != nil {
		return fmt.Errorf("storing post %q: %w", Key(topic), err)
	}
	return nil
}

// Entry is one cached post, without its document body.
type Entry struct {
	Key         string
	Topic       string
	GeneratedAt time.Time
}

// Posts lists cached posts, most recently generated first.
func (c *Cache) Posts() ([]Entry, error) {
	rows, err := c.readDB.Query("SELECT key, topic, generated_at FROM posts ORDER BY generated_at DESC")
	if err != nil {
		return nil, fmt.Errorf("querying posts: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.Key, &e.Topic, &e.GeneratedAt); err != nil {
			return nil, fmt.Errorf("scanning post: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Delete removes the cached post for a topic. Returns whether one existed.
func (c *Cache) Delete(topic string) (bool, error) {
	res, err := c.writeDB.Exec("DELETE FROM posts WHERE key = ?", Key(topic))
	if err != nil {
		return false, fmt.Errorf("deleting post: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// DeleteAll empties the post cache and returns how many entries it removed.
func (c *Cache) DeleteAll() (int64, error) {
	res, err := c.writeDB.Exec("DELETE FROM posts")
	if err != nil {
		return 0, fmt.Errorf("clearing posts: %w", err)
	}
	return res.RowsAffected()
}

// Stats returns the number of cached posts and the database size on disk.
func (c *Cache) Stats(dbPath string) (int, int64, error) {
	var count int
	if err := c.readDB.QueryRow("SELECT COUNT(*) FROM posts").Scan(&count); err != nil {
		return 0, 0, err
	}
	info, err := os.Stat(dbPath)
	if err != nil {
		return count, 0, err
	}
	return count, info.Size(), nil
}
