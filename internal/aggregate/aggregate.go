// Package aggregate groups papers into quarterly trend buckets.
package aggregate

import (
	"fmt"
	"sort"

	"github.com/paperscope/paperscope/internal/model"
)

const (
	topVenueLimit    = 3
	sampleTitleLimit = 3
)

// Engine computes quarterly aggregates. It is a pure transformation over the
// paper sequence; no I/O, no shared state.
type Engine struct{}

// NewEngine creates an aggregation engine.
func NewEngine() *Engine {
	return &Engine{}
}

// GroupByQuarter partitions papers by publication quarter. Papers whose
// timestamp is missing or unparseable land in the reserved Unknown bucket.
// Within a bucket, input order is preserved.
func (e *Engine) GroupByQuarter(papers []model.Paper) map[string][]model.Paper {
	quarters := make(map[string][]model.Paper)
	for _, p := range papers {
		label := model.UnknownQuarter
		if published, ok := p.PublishedTime(); ok {
			quarter := (int(published.Month())-1)/3 + 1
			label = fmt.Sprintf("%d-Q%d", published.Year(), quarter)
		}
		quarters[label] = append(quarters[label], p)
	}
	return quarters
}

// Aggregate buckets papers by quarter and computes per-bucket statistics.
// The Unknown bucket is excluded from the output. Buckets are emitted in
// descending label order; quarter digits are single characters, so
// lexicographic ordering coincides with chronological ordering. That
// coincidence is an invariant of the label format.
func (e *Engine) Aggregate(papers []model.Paper) []model.QuarterlyAggregate {
	quarters := e.GroupByQuarter(papers)

	labels := make([]string, 0, len(quarters))
	for label := range quarters {
		if label == model.UnknownQuarter {
			continue
		}
		labels = append(labels, label)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(labels)))

	aggregates := make([]model.QuarterlyAggregate, 0, len(labels))
	for _, label := range labels {
		bucket := quarters[label]
		aggregates = append(aggregates, model.QuarterlyAggregate{
			Quarter:      label,
			PaperCount:   len(bucket),
			Papers:       bucket,
			TopVenues:    topVenues(bucket),
			SampleTitles: sampleTitles(bucket),
		})
	}
	return aggregates
}

// topVenues returns up to 3 venue names by descending frequency, ties broken
// by first-seen order.
func topVenues(papers []model.Paper) []string {
	counts := make(map[string]int)
	var order []string
	for _, p := range papers {
		if p.Venue == "" {
			continue
		}
		if _, seen := counts[p.Venue]; !seen {
			order = append(order, p.Venue)
		}
		counts[p.Venue]++
	}

	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})

	if len(order) > topVenueLimit {
		order = order[:topVenueLimit]
	}
	return order
}

// sampleTitles returns the first 3 titles in the bucket's existing order.
func sampleTitles(papers []model.Paper) []string {
	titles := make([]string, 0, sampleTitleLimit)
	for _, p := range papers {
		if len(titles) == sampleTitleLimit {
			break
		}
		titles = append(titles, p.Title)
	}
	return titles
}
