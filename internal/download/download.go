// Package download writes generated posts out as markdown files.
package download

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Filename returns the timestamped name for a saved post.
func Filename(now time.Time) string {
	return fmt.Sprintf("blog_post_%s.md", now.Format("20060102_150405"))
}

// Save writes a document into dir under a timestamped name and returns
// the full path.
func Save(dir, document string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating output dir: %w", err)
	}
	path := filepath.Join(dir, Filename(time.Now()))
	if err := os.WriteFile(path, []byte(document), 0o644); err != nil {
		return "", fmt.Errorf("saving post: %w", err)
	}
	return path, nil
}
