package workflow

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/soulspace/soulscribe/internal/cache"
)

type fakeGenerator struct {
	calls    int
	response string
	err      error
}

func (f *fakeGenerator) Generate(ctx context.Context, topic string) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	return f.response, nil
}

const fakeResponse = `## Breath and Calm
### The Soul Space Perspective
Breathing slows the mind.
### Understanding the Science
Vagal tone increases with slow exhalation.
### Traditional Wisdom Meets Modern Research
Ancient and modern agree.
### Practical Applications
- Practice 5 minutes daily
### Key Takeaways
- Slow breath, calm mind
### Scientific References
1. Smith 2020

Namaste,
The Model`

func testDB(t *testing.T) *cache.Cache {
	t.Helper()
	db, err := cache.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("opening test db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestProduceGeneratesAndFormats(t *testing.T) {
	gen := &fakeGenerator{response: fakeResponse}
	p := New(gen, testDB(t))

	doc, err := p.Produce(context.Background(), "breath work", true)
	if err != nil {
		t.Fatalf("produce: %v", err)
	}
	if gen.calls != 1 {
		t.Errorf("expected 1 generator call, got %d", gen.calls)
	}
	if !strings.HasPrefix(doc, "## Breath and Calm") {
		t.Errorf("doc not canonical: %q", doc[:min(len(doc), 40)])
	}
	if !strings.Contains(doc, "- Practice 5 minutes daily") {
		t.Error("doc missing application bullet")
	}
	if !strings.HasSuffix(doc, "Founder, Soul Space") {
		t.Error("doc missing canonical signature")
	}
	// The model's own sign-off must not survive canonicalization.
	if strings.Contains(doc, "The Model") {
		t.Error("model sign-off leaked into document")
	}
}

// Two cached calls in a row: the second must not touch the generator even
// if the generator would fail.
func TestProduceCacheHitSkipsGenerator(t *testing.T) {
	db := testDB(t)
	gen := &fakeGenerator{response: fakeResponse}
	p := New(gen, db)

	first, err := p.Produce(context.Background(), "breath work", true)
	if err != nil {
		t.Fatalf("first produce: %v", err)
	}

	gen.err = errors.New("generator must not be called")
	second, err := p.Produce(context.Background(), "breath work", true)
	if err != nil {
		t.Fatalf("second produce: %v", err)
	}
	if second != first {
		t.Error("cache hit returned a different document")
	}
	if gen.calls != 1 {
		t.Errorf("expected generator untouched on hit, got %d calls", gen.calls)
	}
}

// Bypassing the cache on read still writes the result through.
func TestProduceBypassStillWrites(t *testing.T) {
	db := testDB(t)
	gen := &fakeGenerator{response: fakeResponse}
	p := New(gen, db)

	first, err := p.Produce(context.Background(), "breath work", false)
	if err != nil {
		t.Fatalf("bypass produce: %v", err)
	}

	second, err := p.Produce(context.Background(), "breath work", true)
	if err != nil {
		t.Fatalf("cached produce: %v", err)
	}
	if second != first {
		t.Error("expected cached document from bypass run")
	}
	if gen.calls != 1 {
		t.Errorf("expected 1 generator call total, got %d", gen.calls)
	}
}

func TestProduceBypassRegenerates(t *testing.T) {
	db := testDB(t)
	gen := &fakeGenerator{response: fakeResponse}
	p := New(gen, db)

	p.Produce(context.Background(), "breath work", true)
	p.Produce(context.Background(), "breath work", false)
	if gen.calls != 2 {
		t.Errorf("expected bypass to regenerate, got %d calls", gen.calls)
	}
}

func TestProduceGenerationFailureNotCached(t *testing.T) {
	db := testDB(t)
	gen := &fakeGenerator{err: errors.New("api down")}
	p := New(gen, db)

	_, err := p.Produce(context.Background(), "breath work", true)
	if err == nil {
		t.Fatal("expected error from failing generator")
	}
	if !strings.Contains(err.Error(), "api down") {
		t.Errorf("error should describe the failure, got %v", err)
	}

	_, ok, _ := db.Get("breath work")
	if ok {
		t.Error("failed generation must not be cached")
	}
}

func TestProduceEmptyResponseIsFailure(t *testing.T) {
	db := testDB(t)
	gen := &fakeGenerator{response: ""}
	p := New(gen, db)

	_, err := p.Produce(context.Background(), "breath work", true)
	if err == nil {
		t.Fatal("expected error for empty response")
	}
	if !strings.Contains(err.Error(), "empty response") {
		t.Errorf("error should name the empty response, got %v", err)
	}

	_, ok, _ := db.Get("breath work")
	if ok {
		t.Error("empty response must not be cached")
	}
}

func TestProduceNilGenerator(t *testing.T) {
	p := New(nil, testDB(t))
	_, err := p.Produce(context.Background(), "breath work", true)
	if err == nil {
		t.Fatal("expected error when AI is not configured")
	}
}

func TestProduceLogsRuns(t *testing.T) {
	db := testDB(t)
	gen := &fakeGenerator{response: fakeResponse}
	p := New(gen, db)

	p.Produce(context.Background(), "breath work", true) // miss + generate
	p.Produce(context.Background(), "breath work", true) // hit

	runs, err := db.RecentRuns(10)
	if err != nil {
		t.Fatalf("RecentRuns: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("expected 2 runs logged, got %d", len(runs))
	}

	var hits int
	for _, r := range runs {
		if !r.OK {
			t.Errorf("unexpected failed run: %+v", r)
		}
		if r.CacheHit {
			hits++
		}
	}
	if hits != 1 {
		t.Errorf("expected exactly 1 cache-hit run, got %d", hits)
	}
}
