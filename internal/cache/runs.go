package cache

import (
	"fmt"
	"time"
)

// Run records one Produce invocation for the run log. The log is an
// opaque sink: pipeline correctness never depends on it.
type Run struct {
	ID        int64
	Topic     string
	CacheHit  bool
	OK        bool
	Error     string
	Duration  time.Duration
	CreatedAt time.Time
}

func (c *Cache) LogRun(r Run) error {
	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now()
	}
	_, err := c.writeDB.Exec(`
		INSERT INTO runs (topic, cache_hit, ok, error, duration_ms, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, r.Topic, boolToInt(r.CacheHit), boolToInt(r.OK), r.Error, r.Duration.Milliseconds(), r.CreatedAt)
	if err != nil {
		return fmt.Errorf("logging run: %w", err)
	}
	return nil
}

// RecentRuns returns the newest runs, up to limit.
func (c *Cache) RecentRuns(limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := c.readDB.Query(`
		SELECT id, topic, cache_hit, ok, error, duration_ms, created_at
		FROM runs ORDER BY created_at DESC, id DESC LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var (
			r          Run
			hit, ok    int
			durationMS int64
		)
		if err := rows.Scan(&r.ID, &r.Topic, &hit, &ok, &r.Error, &durationMS, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning run: %w", err)
		}
		r.CacheHit = hit != 0
		r.OK = ok != 0
		r.Duration = time.Duration(durationMS) * time.Millisecond
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
