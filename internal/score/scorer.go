// Package score computes the bounded, explainable authority score and ranks
// papers by it.
package score

import (
	"fmt"
	"sort"
	"time"

	"github.com/paperscope/paperscope/internal/model"
)

// Point weights for the additive scheme. Each signal is evaluated
// independently per paper; there is no cross-paper normalization.
const (
	pointsCCFA       = 30
	pointsTopJournal = 25

	pointsCitationsHigh = 30 // >= 100 citations
	pointsCitationsMid  = 15 // 10-99
	pointsCitationsLow  = 5  // 1-9

	pointsThisYear  = 15
	pointsLastYear  = 10
	pointsRecentish = 5 // 2-3 years ago

	maxScore = 100
)

// Level thresholds, checked in order.
const (
	levelTopMin  = 85
	levelHighMin = 70
	levelMidMin  = 50
)

// Assessment is the scoring outcome for one paper.
type Assessment struct {
	Score   int
	Level   model.AuthorityLevel
	Reasons []string
	Badges  []string
}

// Scorer computes authority scores. The clock is injectable so recency
// points are testable.
type Scorer struct {
	now func() time.Time
}

// NewScorer creates a scorer using the wall clock.
func NewScorer() *Scorer {
	return &Scorer{now: time.Now}
}

// NewScorerAt creates a scorer with a fixed clock.
func NewScorerAt(now time.Time) *Scorer {
	return &Scorer{now: func() time.Time { return now }}
}

// Score computes the assessment for a single paper from its enriched fields.
func (s *Scorer) Score(p model.Paper) Assessment {
	return s.score(p, false)
}

// ScoreFlagged computes the assessment treating the paper as published at a
// CCF-A venue regardless of table hits, for callers that already know.
func (s *Scorer) ScoreFlagged(p model.Paper, topVenue bool) Assessment {
	return s.score(p, topVenue)
}

func (s *Scorer) score(p model.Paper, topVenueFlag bool) Assessment {
	var a Assessment

	// Venue signal: CCF-A dominates; a flagged top journal outside the CCF
	// lists (Nature, Science) earns slightly less.
	switch {
	case p.CCFGrade == model.CCFGradeA || topVenueFlag:
		a.Score += pointsCCFA
		a.Reasons = append(a.Reasons, fmt.Sprintf("CCF-A venue (+%d)", pointsCCFA))
		a.Badges = append(a.Badges, "CCF-A")
	case p.IsPrestigious:
		a.Score += pointsTopJournal
		a.Reasons = append(a.Reasons, fmt.Sprintf("top-tier journal (+%d)", pointsTopJournal))
		a.Badges = append(a.Badges, "Top Journal")
	}

	// Citation signal. Unknown counts score nothing: unknown is not zero,
	// but it earns no points either.
	if p.CitationCount != nil {
		switch c := *p.CitationCount; {
		case c >= 100:
			a.Score += pointsCitationsHigh
			a.Reasons = append(a.Reasons, fmt.Sprintf("%d citations (+%d)", c, pointsCitationsHigh))
			a.Badges = append(a.Badges, "Highly Cited")
		case c >= 10:
			a.Score += pointsCitationsMid
			a.Reasons = append(a.Reasons, fmt.Sprintf("%d citations (+%d)", c, pointsCitationsMid))
		case c >= 1:
			a.Score += pointsCitationsLow
			a.Reasons = append(a.Reasons, fmt.Sprintf("%d citations (+%d)", c, pointsCitationsLow))
		}
	}

	// Recency signal, by calendar year.
	if published, ok := p.PublishedTime(); ok {
		switch age := s.now().Year() - published.Year(); {
		case age <= 0:
			a.Score += pointsThisYear
			a.Reasons = append(a.Reasons, fmt.Sprintf("published this year (+%d)", pointsThisYear))
			a.Badges = append(a.Badges, "Recent")
		case age == 1:
			a.Score += pointsLastYear
			a.Reasons = append(a.Reasons, fmt.Sprintf("published last year (+%d)", pointsLastYear))
		case age <= 3:
			a.Score += pointsRecentish
			a.Reasons = append(a.Reasons, fmt.Sprintf("published %d years ago (+%d)", age, pointsRecentish))
		}
	}

	if a.Score > maxScore {
		a.Score = maxScore
	}
	a.Level = levelFor(a.Score)
	return a
}

// Apply scores a paper and returns a copy with the authority fields set.
func (s *Scorer) Apply(p model.Paper) model.Paper {
	a := s.Score(p)
	p.AuthorityScore = a.Score
	p.AuthorityLevel = a.Level
	p.ScoreReasons = a.Reasons
	p.Badges = a.Badges
	return p
}

// ApplyAll scores a batch, preserving order.
func (s *Scorer) ApplyAll(papers []model.Paper) []model.Paper {
	out := make([]model.Paper, 0, len(papers))
	for _, p := range papers {
		out = append(out, s.Apply(p))
	}
	return out
}

// SortAndRank scores every paper and returns a new slice ordered by
// (authority score desc, citation count desc with unknown as 0). The sort is
// stable: ties keep their input order.
func (s *Scorer) SortAndRank(papers []model.Paper) []model.Paper {
	ranked := s.ApplyAll(papers)

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].AuthorityScore != ranked[j].AuthorityScore {
			return ranked[i].AuthorityScore > ranked[j].AuthorityScore
		}
		return ranked[i].Citations() > ranked[j].Citations()
	})
	return ranked
}

func levelFor(score int) model.AuthorityLevel {
	switch {
	case score >= levelTopMin:
		return model.LevelTop
	case score >= levelHighMin:
		return model.LevelHigh
	case score >= levelMidMin:
		return model.LevelMid
	default:
		return model.LevelBaseline
	}
}
