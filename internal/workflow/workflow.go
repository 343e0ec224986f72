// Package workflow runs the generate-parse-format-cache pipeline for one
// topic at a time.
package workflow

import (
	"context"
	"fmt"
	"time"

	"github.com/soulspace/soulscribe/internal/ai"
	"github.com/soulspace/soulscribe/internal/article"
	"github.com/soulspace/soulscribe/internal/cache"
)

// Pipeline produces canonical documents for topics, consulting and
// populating the cache around a single generation call.
type Pipeline struct {
	gen ai.Generator
	db  *cache.Cache
}

func New(gen ai.Generator, db *cache.Cache) *Pipeline {
	return &Pipeline{gen: gen, db: db}
}

// Produce returns the canonical document for a topic.
//
// With useCache set, a cached document is returned as-is and the generator
// is not invoked. Otherwise the generator is called exactly once; its
// response is parsed and reformatted, and the result written through to
// the cache regardless of useCache. Generation failures are returned to
// the caller, never cached, never retried here.
func (p *Pipeline) Produce(ctx context.Context, topic string, useCache bool) (string, error) {
	start := time.Now()

	if useCache {
		doc, ok, err := p.db.Get(topic)
		if err != nil {
			return "", fmt.Errorf("reading cache: %w", err)
		}
		if ok {
			p.logRun(topic, true, true, "", start)
			return doc, nil
		}
	}

	if p.gen == nil {
		err := fmt.Errorf("AI not configured (set ai.provider and SOULSCRIBE_AI_KEY)")
		p.logRun(topic, false, false, err.Error(), start)
		return "", err
	}

	raw, err := p.gen.Generate(ctx, topic)
	if err != nil {
		err = fmt.Errorf("generating post about %q: %w", topic, err)
		p.logRun(topic, false, false, err.Error(), start)
		return "", err
	}
	if raw == "" {
		err = fmt.Errorf("generating post about %q: empty response", topic)
		p.logRun(topic, false, false, err.Error(), start)
		return "", err
	}

	doc := article.Format(article.Parse(raw))

	if err := p.db.Put(topic, doc); err != nil {
		return "", fmt.Errorf("caching post: %w", err)
	}

	p.logRun(topic, false, true, "", start)
	return doc, nil
}

// logRun is best-effort: the run log is a sink, not a dependency.
func (p *Pipeline) logRun(topic string, hit, ok bool, errMsg string, start time.Time) {
	p.db.LogRun(cache.Run{
		Topic:    topic,
		CacheHit: hit,
		OK:       ok,
		Error:    errMsg,
		Duration: time.Since(start),
	})
}
