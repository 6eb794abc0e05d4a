package score

import (
	"testing"
	"time"

	"github.com/paperscope/paperscope/internal/model"
)

func intPtr(v int) *int { return &v }

func fixedScorer() *Scorer {
	// Fixed clock so recency points are deterministic
	return NewScorerAt(time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC))
}

func TestScorer_CVPRScenario(t *testing.T) {
	scorer := fixedScorer()

	p := model.Paper{
		Title:         "Something something CVPR something",
		Published:     "2024-03-01T00:00:00Z",
		Venue:         "CVPR",
		VenueType:     model.VenueConference,
		CCFGrade:      model.CCFGradeA,
		IsPrestigious: true,
		CitationCount: intPtr(120),
	}

	a := scorer.Score(p)

	// 30 (CCF-A) + 30 (citations >= 100) + 15 (this year) = 75
	if a.Score != 75 {
		t.Errorf("Expected score 75, got %d", a.Score)
	}
	if a.Level != model.LevelHigh {
		t.Errorf("Expected level %q, got %q", model.LevelHigh, a.Level)
	}
	if len(a.Reasons) != 3 {
		t.Errorf("Expected 3 reasons, got %d: %v", len(a.Reasons), a.Reasons)
	}
}

func TestScorer_ScoreBounds(t *testing.T) {
	scorer := fixedScorer()

	cases := []model.Paper{
		{},
		{Published: "not-a-date"},
		{CCFGrade: model.CCFGradeA, IsPrestigious: true, CitationCount: intPtr(100000), Published: "2024-01-01T00:00:00Z"},
		{IsPrestigious: true, CitationCount: intPtr(50), Published: "2023-06-01T00:00:00Z"},
	}

	for i, p := range cases {
		a := scorer.Score(p)
		if a.Score < 0 || a.Score > 100 {
			t.Errorf("case %d: score %d out of [0,100]", i, a.Score)
		}
		if a.Level == "" {
			t.Errorf("case %d: level not set", i)
		}
	}
}

func TestScorer_UnknownCitationsScoreNothing(t *testing.T) {
	scorer := fixedScorer()

	unknown := scorer.Score(model.Paper{Published: "2024-02-01T00:00:00Z"})
	zero := scorer.Score(model.Paper{Published: "2024-02-01T00:00:00Z", CitationCount: intPtr(0)})

	if unknown.Score != zero.Score {
		t.Errorf("unknown citations scored %d, zero citations scored %d; both should earn no citation points",
			unknown.Score, zero.Score)
	}
}

func TestScorer_CitationBands(t *testing.T) {
	scorer := fixedScorer()

	cases := []struct {
		citations int
		want      int
	}{
		{0, 0},
		{1, 5},
		{9, 5},
		{10, 15},
		{99, 15},
		{100, 30},
		{5000, 30},
	}

	for _, tc := range cases {
		a := scorer.Score(model.Paper{CitationCount: intPtr(tc.citations)})
		if a.Score != tc.want {
			t.Errorf("citations=%d: expected %d points, got %d", tc.citations, tc.want, a.Score)
		}
	}
}

func TestScorer_RecencyBands(t *testing.T) {
	scorer := fixedScorer()

	cases := []struct {
		published string
		want      int
	}{
		{"2024-01-01T00:00:00Z", 15},
		{"2023-12-31T00:00:00Z", 10},
		{"2022-01-01T00:00:00Z", 5},
		{"2021-06-01T00:00:00Z", 5},
		{"2020-06-01T00:00:00Z", 0},
		{"", 0},
		{"garbage", 0},
	}

	for _, tc := range cases {
		a := scorer.Score(model.Paper{Published: tc.published})
		if a.Score != tc.want {
			t.Errorf("published=%q: expected %d points, got %d", tc.published, tc.want, a.Score)
		}
	}
}

func TestScorer_ScoreFlagged(t *testing.T) {
	scorer := fixedScorer()

	a := scorer.ScoreFlagged(model.Paper{}, true)
	if a.Score != 30 {
		t.Errorf("Expected flagged top venue to earn 30, got %d", a.Score)
	}
}

func TestScorer_Levels(t *testing.T) {
	cases := []struct {
		score int
		want  model.AuthorityLevel
	}{
		{100, model.LevelTop},
		{85, model.LevelTop},
		{84, model.LevelHigh},
		{70, model.LevelHigh},
		{69, model.LevelMid},
		{50, model.LevelMid},
		{49, model.LevelBaseline},
		{0, model.LevelBaseline},
	}

	for _, tc := range cases {
		if got := levelFor(tc.score); got != tc.want {
			t.Errorf("levelFor(%d) = %q, want %q", tc.score, got, tc.want)
		}
	}
}

func TestSortAndRank_Ordering(t *testing.T) {
	scorer := fixedScorer()

	papers := []model.Paper{
		{ID: "low", Published: "2020-01-01T00:00:00Z"},
		{ID: "high", CCFGrade: model.CCFGradeA, CitationCount: intPtr(200), Published: "2024-01-01T00:00:00Z"},
		{ID: "mid", CitationCount: intPtr(50), Published: "2024-01-01T00:00:00Z"},
	}

	ranked := scorer.SortAndRank(papers)

	got := []string{ranked[0].ID, ranked[1].ID, ranked[2].ID}
	want := []string{"high", "mid", "low"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("rank order = %v, want %v", got, want)
		}
	}
}

func TestSortAndRank_Stable(t *testing.T) {
	scorer := fixedScorer()

	// Identical score and citation count: input order must be preserved
	papers := []model.Paper{
		{ID: "a", CitationCount: intPtr(10), Published: "2024-01-01T00:00:00Z"},
		{ID: "b", CitationCount: intPtr(10), Published: "2024-02-01T00:00:00Z"},
		{ID: "c", CitationCount: intPtr(10), Published: "2024-03-01T00:00:00Z"},
	}

	ranked := scorer.SortAndRank(papers)
	for i, want := range []string{"a", "b", "c"} {
		if ranked[i].ID != want {
			t.Errorf("position %d: got %s, want %s (stable sort violated)", i, ranked[i].ID, want)
		}
	}
}

func TestSortAndRank_UnknownCitationsRankAsZero(t *testing.T) {
	scorer := fixedScorer()

	papers := []model.Paper{
		{ID: "unknown"},
		{ID: "cited", CitationCount: intPtr(3)},
	}

	ranked := scorer.SortAndRank(papers)
	if ranked[0].ID != "cited" {
		t.Errorf("Expected paper with 3 citations to outrank the unknown-citation paper, got %s first", ranked[0].ID)
	}
}

func TestSortAndRank_DoesNotMutateInput(t *testing.T) {
	scorer := fixedScorer()

	papers := []model.Paper{
		{ID: "a"},
		{ID: "b", CCFGrade: model.CCFGradeA},
	}

	_ = scorer.SortAndRank(papers)
	if papers[0].ID != "a" || papers[1].ID != "b" {
		t.Error("SortAndRank mutated the input slice order")
	}
}
