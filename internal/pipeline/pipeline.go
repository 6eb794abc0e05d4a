// Package pipeline orchestrates the retrieval-enrichment-aggregation flow:
// query -> cache -> retrieve -> enrich -> score/aggregate -> narrate -> cache.
package pipeline

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/paperscope/paperscope/internal/aggregate"
	"github.com/paperscope/paperscope/internal/arxiv"
	"github.com/paperscope/paperscope/internal/cache"
	"github.com/paperscope/paperscope/internal/enrich"
	"github.com/paperscope/paperscope/internal/llm"
	"github.com/paperscope/paperscope/internal/model"
	"github.com/paperscope/paperscope/internal/narrative"
	"github.com/paperscope/paperscope/internal/score"
	"github.com/paperscope/paperscope/internal/store"
)

// Input validation errors, the pipeline's only hard-stop conditions. All
// later stage failures degrade instead of aborting.
var (
	ErrEmptyQuery        = errors.New("query must not be empty")
	ErrInvalidMaxResults = errors.New("max results must be positive")
)

// Pipeline wires the stages together. All stages are pure transformations
// over the paper sequence except the cache and the two external calls.
type Pipeline struct {
	client   *arxiv.Client
	enricher *enrich.Engine
	scorer   *score.Scorer
	agg      *aggregate.Engine
	narrator *narrative.Generator
	cache    *cache.LayeredStore // nil when caching disabled
	sink     *store.Store        // nil when persistence disabled
	cfg      *model.Config
}

// Options controls one pipeline invocation.
type Options struct {
	DaysBack   int
	MaxResults int
	Aggregate  bool
	Narrate    bool
	NoCache    bool
}

// New creates a pipeline from configuration. A misconfigured generative
// provider degrades to fallback narration with a warning; a misconfigured
// citation source degrades to unknown counts.
func New(cfg *model.Config) (*Pipeline, error) {
	provider, err := llm.NewProvider(cfg.LLM)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: LLM provider unavailable, narration falls back: %v\n", err)
		provider = nil
	}

	citations, err := enrich.NewCitationSource(cfg.Citations)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: citation source unavailable, counts stay unknown: %v\n", err)
		citations = enrich.DisabledCitations{}
	}

	var resultCache *cache.LayeredStore
	if cfg.Cache.Enabled {
		resultCache = cache.NewLayeredStore(cfg.Cache.MemoryTTL, cfg.Cache.Dir, cfg.Cache.ExpiryDays)
	}

	var sink *store.Store
	if cfg.Storage.Path != "" {
		sink, err = store.Open(cfg.Storage.Path)
		if err != nil {
			return nil, fmt.Errorf("open storage: %w", err)
		}
	}

	return &Pipeline{
		client:   arxiv.NewClient(cfg.Arxiv),
		enricher: enrich.NewEngine(cfg.Venues, citations),
		scorer:   score.NewScorer(),
		agg:      aggregate.NewEngine(),
		narrator: narrative.NewGenerator(provider, cfg.Narrative),
		cache:    resultCache,
		sink:     sink,
		cfg:      cfg,
	}, nil
}

// Close releases pipeline resources.
func (p *Pipeline) Close() error {
	if p.sink != nil {
		return p.sink.Close()
	}
	return nil
}

// Run executes one full invocation for a search query.
func (p *Pipeline) Run(ctx context.Context, query string, opts Options) (*model.Result, error) {
	if query == "" {
		return nil, ErrEmptyQuery
	}
	if opts.MaxResults < 0 {
		return nil, ErrInvalidMaxResults
	}
	if opts.MaxResults == 0 {
		opts.MaxResults = p.cfg.Arxiv.MaxResults
	}
	if opts.DaysBack <= 0 {
		opts.DaysBack = p.cfg.Arxiv.DaysBack
	}

	key := cache.Key("search", query, strconv.Itoa(opts.DaysBack))

	if p.cache != nil && !opts.NoCache {
		if data, found := p.cache.Get(key); found {
			var result model.Result
			if err := json.Unmarshal(data, &result); err == nil {
				result.FromCache = true
				return &result, nil
			}
			// Corrupt entry: drop it and fall through to a fresh run.
			p.cache.Delete(key)
		}
	}

	papers := p.client.Search(ctx, query, opts.MaxResults)
	papers = p.enricher.EnrichAll(ctx, papers)
	papers = p.scorer.SortAndRank(papers)

	result := &model.Result{
		Query:  query,
		Papers: papers,
	}
	if opts.Aggregate {
		result.Aggregates = p.agg.Aggregate(papers)
	}
	if opts.Narrate {
		result.Trajectory = p.narrator.Summarize(ctx, papers, p.cfg.Narrative.MaxLength)
		if opts.Aggregate && len(result.Aggregates) > 0 {
			summaries := p.narrator.QuarterlySummaries(ctx, p.agg.GroupByQuarter(papers), p.cfg.Narrative.QuarterlyMaxLength)
			for i := range result.Aggregates {
				result.Aggregates[i].Summary = summaries[result.Aggregates[i].Quarter]
			}
		}
	}

	if p.cache != nil && !opts.NoCache && len(papers) > 0 {
		if data, err := json.MarshalIndent(result, "", "  "); err == nil {
			p.cache.Set(key, data)
		}
	}

	p.persist(ctx, query, papers)
	return result, nil
}

// GetPaper fetches and enriches a single paper by arXiv id. Returns nil when
// the paper is unknown or the feed is unreachable.
func (p *Pipeline) GetPaper(ctx context.Context, id string) *model.Paper {
	paper := p.client.GetByID(ctx, id)
	if paper == nil {
		return nil
	}
	enriched := p.scorer.Apply(p.enricher.Enrich(ctx, *paper))
	return &enriched
}

// Score ranks already-fetched papers.
func (p *Pipeline) Score(papers []model.Paper) []model.Paper {
	return p.scorer.SortAndRank(papers)
}

// Aggregate buckets already-fetched papers by quarter.
func (p *Pipeline) Aggregate(papers []model.Paper) []model.QuarterlyAggregate {
	return p.agg.Aggregate(papers)
}

// Summarize narrates already-fetched papers.
func (p *Pipeline) Summarize(ctx context.Context, papers []model.Paper, maxLength int) string {
	return p.narrator.Summarize(ctx, papers, maxLength)
}

// CacheStats reports the persistent cache state.
func (p *Pipeline) CacheStats() cache.Stats {
	if p.cache == nil {
		return cache.Stats{}
	}
	return p.cache.Stats()
}

// ClearCache empties the result cache.
func (p *Pipeline) ClearCache() bool {
	if p.cache == nil {
		return true
	}
	return p.cache.Clear()
}

// persist writes the batch to the optional sink. Sink failures are logged
// and ignored; persistence never fails a run.
func (p *Pipeline) persist(ctx context.Context, query string, papers []model.Paper) {
	if p.sink == nil {
		return
	}
	if err := p.sink.SavePapers(ctx, query, papers); err != nil {
		fmt.Fprintf(os.Stderr, "warning: persisting papers failed: %v\n", err)
	}
	if err := p.sink.RecordSearch(ctx, query, len(papers)); err != nil {
		fmt.Fprintf(os.Stderr, "warning: recording search failed: %v\n", err)
	}
}
