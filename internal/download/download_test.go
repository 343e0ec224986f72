package download

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestFilename(t *testing.T) {
	now := time.Date(2026, 8, 27, 14, 30, 5, 0, time.UTC)
	got := Filename(now)
	if got != "blog_post_20260827_143005.md" {
		t.Errorf("Filename = %q", got)
	}
}

func TestSave(t *testing.T) {
	dir := t.TempDir()
	path, err := Save(dir, "## Post\ncontent")
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if filepath.Dir(path) != dir {
		t.Errorf("saved outside dir: %s", path)
	}
	if !strings.HasPrefix(filepath.Base(path), "blog_post_") || !strings.HasSuffix(path, ".md") {
		t.Errorf("unexpected filename: %s", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading saved file: %v", err)
	}
	if string(data) != "## Post\ncontent" {
		t.Errorf("saved content = %q", data)
	}
}

func TestSaveCreatesDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "out")
	if _, err := Save(dir, "doc"); err != nil {
		t.Fatalf("Save into missing dir: %v", err)
	}
}
