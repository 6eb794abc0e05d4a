package narrative

import (
	"fmt"
	"sort"
	"strings"

	"github.com/paperscope/paperscope/internal/model"
)

const (
	keywordMinLen      = 5
	keywordTitleSample = 30
	keywordLimit       = 5
	fallbackVenueLimit = 3
)

// statisticalFallback synthesizes a trend summary from the data alone:
// venue-frequency ranking, per-year publication counts, and term-frequency
// keywords over titles. Pure computation over already-validated records; it
// never fails and always returns a non-empty string for non-empty input.
func statisticalFallback(papers []model.Paper) string {
	var b strings.Builder

	b.WriteString("[Research Overview]\n\n")
	fmt.Fprintf(&b, "The field produced %d papers over the analyzed window.\n", len(papers))

	if venues := venueFrequency(papers); len(venues) > 0 {
		parts := make([]string, 0, fallbackVenueLimit)
		for i, v := range venues {
			if i == fallbackVenueLimit {
				break
			}
			parts = append(parts, fmt.Sprintf("%s (%d papers)", v.name, v.count))
		}
		fmt.Fprintf(&b, "Main venues: %s.\n", strings.Join(parts, ", "))
	}

	if years, counts := yearDistribution(papers); len(years) > 0 {
		parts := make([]string, 0, len(years))
		for _, y := range years {
			parts = append(parts, fmt.Sprintf("%d (%d papers)", y, counts[y]))
		}
		fmt.Fprintf(&b, "\n[Yearly Distribution]\n%s\n", strings.Join(parts, ", "))
	}

	if keywords := titleKeywords(papers); len(keywords) > 0 {
		fmt.Fprintf(&b, "\n[Trending Terms]\n%s\n", strings.Join(keywords, ", "))
	}

	return b.String()
}

type venueCount struct {
	name  string
	count int
}

func venueFrequency(papers []model.Paper) []venueCount {
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

	ranked := make([]venueCount, 0, len(order))
	for _, name := range order {
		ranked = append(ranked, venueCount{name: name, count: counts[name]})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].count > ranked[j].count
	})
	return ranked
}

func yearDistribution(papers []model.Paper) ([]int, map[int]int) {
	counts := make(map[int]int)
	for _, p := range papers {
		if published, ok := p.PublishedTime(); ok {
			counts[published.Year()]++
		}
	}

	years := make([]int, 0, len(counts))
	for y := range counts {
		years = append(years, y)
	}
	sort.Ints(years)
	return years, counts
}

// titleKeywords extracts the most frequent title tokens longer than the
// minimum length, after stripping surrounding punctuation.
func titleKeywords(papers []model.Paper) []string {
	counts := make(map[string]int)
	var order []string

	sample := papers
	if len(sample) > keywordTitleSample {
		sample = sample[:keywordTitleSample]
	}
	for _, p := range sample {
		for _, word := range strings.Fields(strings.ToLower(p.Title)) {
			word = strings.Trim(word, "()[]{},.;:?!\"'")
			if len(word) < keywordMinLen {
				continue
			}
			if _, seen := counts[word]; !seen {
				order = append(order, word)
			}
			counts[word]++
		}
	}

	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})
	if len(order) > keywordLimit {
		order = order[:keywordLimit]
	}
	return order
}
