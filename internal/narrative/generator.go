// Package narrative produces human-readable trend summaries, preferring the
// generative provider and degrading to a deterministic statistical template.
package narrative

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/paperscope/paperscope/internal/llm"
	"github.com/paperscope/paperscope/internal/model"
)

const abstractDigestLen = 150

// Generator builds trajectory and quarterly summaries. A nil provider means
// the generative capability is disabled; every summary then comes from the
// statistical fallback.
type Generator struct {
	provider llm.Provider
	cfg      model.NarrativeConfig
}

// NewGenerator creates a generator.
func NewGenerator(provider llm.Provider, cfg model.NarrativeConfig) *Generator {
	if cfg.RecentWindow <= 0 {
		cfg.RecentWindow = 25
	}
	return &Generator{provider: provider, cfg: cfg}
}

// Enabled reports whether a generative provider is configured.
func (g *Generator) Enabled() bool {
	return g.provider != nil
}

// Summarize produces the trajectory summary for a paper set, bounded to
// maxLength characters. It returns "" only when the input is empty; for any
// non-empty input the statistical fallback guarantees a result even when the
// provider fails.
func (g *Generator) Summarize(ctx context.Context, papers []model.Paper, maxLength int) string {
	if len(papers) == 0 {
		return ""
	}
	if maxLength <= 0 {
		maxLength = g.cfg.MaxLength
	}

	prompt := g.buildTrajectoryPrompt(papers, maxLength)

	if g.provider != nil {
		text, err := g.provider.Generate(ctx, prompt)
		if err != nil {
			fmt.Fprintf(os.Stderr, "narrative: %s generation failed, using fallback: %v\n", g.provider.Name(), err)
		} else {
			return truncate(text, maxLength)
		}
	}

	return truncate(statisticalFallback(papers), maxLength)
}

// QuarterlySummaries produces a short digest per quarter. The Unknown bucket
// is skipped. Provider failures degrade to a one-line statistical summary.
func (g *Generator) QuarterlySummaries(ctx context.Context, quarters map[string][]model.Paper, maxLength int) map[string]string {
	if maxLength <= 0 {
		maxLength = g.cfg.QuarterlyMaxLength
	}

	summaries := make(map[string]string, len(quarters))
	for quarter, bucket := range quarters {
		if quarter == model.UnknownQuarter || len(bucket) == 0 {
			continue
		}
		summaries[quarter] = g.quarterSummary(ctx, quarter, bucket, maxLength)
	}
	return summaries
}

func (g *Generator) quarterSummary(ctx context.Context, quarter string, papers []model.Paper, maxLength int) string {
	venues := distinctVenues(papers, 3)
	venueLabel := "academic venues"
	if len(venues) > 0 {
		venueLabel = strings.Join(venues, ", ")
	}

	if g.provider != nil {
		var b strings.Builder
		fmt.Fprintf(&b, "Summarize the research progress of %s based on these %d papers published that quarter (main venues: %s).\n\nTitles:\n",
			quarter, len(papers), venueLabel)
		for i, p := range papers {
			if i == 15 {
				break
			}
			fmt.Fprintf(&b, "%d. %s\n", i+1, p.Title)
		}
		fmt.Fprintf(&b, "\nWithin %d characters, describe the quarter's research hotspots, novel directions, application advances, and trends worth watching.\n", maxLength)

		text, err := g.provider.Generate(ctx, b.String())
		if err == nil {
			return truncate(text, maxLength)
		}
		fmt.Fprintf(os.Stderr, "narrative: quarterly summary for %s failed, using fallback: %v\n", quarter, err)
	}

	return truncate(fmt.Sprintf("%s: %d papers, mainly published at %s", quarter, len(papers), venueLabel), maxLength)
}

// buildTrajectoryPrompt assembles the structured prompt: totals, time span,
// top venues among the most recent papers, and a numbered digest of each of
// those papers' title plus a truncated abstract.
func (g *Generator) buildTrajectoryPrompt(papers []model.Paper, maxLength int) string {
	recent := mostRecentFirst(papers)
	if len(recent) > g.cfg.RecentWindow {
		recent = recent[:g.cfg.RecentWindow]
	}

	venues := distinctVenues(recent, 3)
	venueLabel := "various academic journals and conferences"
	if len(venues) > 0 {
		venueLabel = strings.Join(venues, ", ")
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Write a research-trajectory report for an academic field based on the following %d papers.\n\n", len(papers))
	fmt.Fprintf(&b, "Overview:\n- Total papers: %d\n- Time span: %s\n- Main venues: %s\n\n", len(papers), timeSpanLabel(papers), venueLabel)
	b.WriteString("Most recent papers first:\n")
	for i, p := range recent {
		fmt.Fprintf(&b, "\n%d. %q\n   Abstract: %s\n", i+1, p.Title, truncate(p.Abstract, abstractDigestLen))
	}
	fmt.Fprintf(&b, "\nWithin %d characters, produce a report covering:\n", maxLength)
	b.WriteString("1. Research hotspots: the field's current main directions\n")
	b.WriteString("2. Key advances: the important breakthroughs of recent years\n")
	b.WriteString("3. Technique trends: methods that are developing quickly\n")
	b.WriteString("4. Future outlook: where the field is likely headed\n")
	b.WriteString("\nKeep the language clear and avoid excessive jargon.")
	return b.String()
}

// mostRecentFirst returns a copy sorted by the raw published string
// descending. ISO-8601 strings sort chronologically, and papers without a
// timestamp sink to the end.
func mostRecentFirst(papers []model.Paper) []model.Paper {
	sorted := make([]model.Paper, len(papers))
	copy(sorted, papers)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Published > sorted[j].Published
	})
	return sorted
}

// timeSpanLabel derives a label like "2021-2024" from the parsable
// publication years.
func timeSpanLabel(papers []model.Paper) string {
	minYear, maxYear := 0, 0
	for _, p := range papers {
		published, ok := p.PublishedTime()
		if !ok {
			continue
		}
		year := published.Year()
		if minYear == 0 || year < minYear {
			minYear = year
		}
		if year > maxYear {
			maxYear = year
		}
	}

	switch {
	case minYear == 0:
		return "recent years"
	case minYear == maxYear:
		return fmt.Sprintf("%d", minYear)
	default:
		return fmt.Sprintf("%d-%d", minYear, maxYear)
	}
}

// distinctVenues returns up to limit venue names in first-seen order.
func distinctVenues(papers []model.Paper, limit int) []string {
	seen := make(map[string]bool)
	var venues []string
	for _, p := range papers {
		if p.Venue == "" || seen[p.Venue] {
			continue
		}
		seen[p.Venue] = true
		venues = append(venues, p.Venue)
		if len(venues) == limit {
			break
		}
	}
	return venues
}

// truncate bounds a string to max runes.
func truncate(s string, max int) string {
	if max <= 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
