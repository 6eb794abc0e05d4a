package narrative

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/paperscope/paperscope/internal/model"
)

// mockProvider implements llm.Provider for testing
type mockProvider struct {
	response string
	err      error
	prompts  []string
}

func (m *mockProvider) Name() string { return "mock" }

func (m *mockProvider) Generate(ctx context.Context, prompt string) (string, error) {
	m.prompts = append(m.prompts, prompt)
	if m.err != nil {
		return "", m.err
	}
	return m.response, nil
}

func (m *mockProvider) IsAvailable(ctx context.Context) bool { return m.err == nil }

func testConfig() model.NarrativeConfig {
	return model.NarrativeConfig{MaxLength: 500, QuarterlyMaxLength: 300, RecentWindow: 25}
}

func samplePapers() []model.Paper {
	return []model.Paper{
		{ID: "1", Title: "Diffusion transformers for video", Venue: "CVPR", Published: "2024-03-01T00:00:00Z", Abstract: "We study diffusion transformers."},
		{ID: "2", Title: "Scaling diffusion models", Venue: "NeurIPS", Published: "2023-11-01T00:00:00Z", Abstract: "Scaling laws for diffusion."},
		{ID: "3", Title: "Diffusion models survey", Published: "2022-05-01T00:00:00Z", Abstract: "A survey."},
	}
}

func TestSummarize_EmptyInputIsAbsent(t *testing.T) {
	gen := NewGenerator(&mockProvider{response: "text"}, testConfig())

	if got := gen.Summarize(context.Background(), nil, 500); got != "" {
		t.Errorf("Expected absent summary for empty input, got %q", got)
	}
}

func TestSummarize_UsesProvider(t *testing.T) {
	provider := &mockProvider{response: "The field is converging on diffusion."}
	gen := NewGenerator(provider, testConfig())

	got := gen.Summarize(context.Background(), samplePapers(), 500)
	if got != provider.response {
		t.Errorf("Expected provider text, got %q", got)
	}

	if len(provider.prompts) != 1 {
		t.Fatalf("Expected exactly one provider call, got %d", len(provider.prompts))
	}
	prompt := provider.prompts[0]
	for _, want := range []string{"3 papers", "2022-2024", "CVPR", "Research hotspots", "Future outlook", "500 characters"} {
		if !strings.Contains(prompt, want) {
			t.Errorf("Prompt missing %q:\n%s", want, prompt)
		}
	}
}

func TestSummarize_FallbackOnProviderFailure(t *testing.T) {
	gen := NewGenerator(&mockProvider{err: errors.New("timeout")}, testConfig())

	got := gen.Summarize(context.Background(), samplePapers(), 500)
	if got == "" {
		t.Fatal("Fallback must produce a non-empty summary for non-empty input")
	}
	if !strings.Contains(got, "3 papers") {
		t.Errorf("Expected statistical fallback content, got %q", got)
	}
}

func TestSummarize_NoProviderMeansFallback(t *testing.T) {
	gen := NewGenerator(nil, testConfig())

	got := gen.Summarize(context.Background(), samplePapers(), 500)
	if got == "" {
		t.Fatal("Expected fallback summary with no provider configured")
	}
	if !strings.Contains(got, "CVPR") {
		t.Errorf("Expected venue ranking in fallback, got %q", got)
	}
}

func TestSummarize_BoundedLength(t *testing.T) {
	long := strings.Repeat("x", 2000)
	gen := NewGenerator(&mockProvider{response: long}, testConfig())

	got := gen.Summarize(context.Background(), samplePapers(), 100)
	if len([]rune(got)) > 100 {
		t.Errorf("Expected summary bounded to 100 characters, got %d", len([]rune(got)))
	}
}

func TestSummarize_SingleDigestPaper(t *testing.T) {
	gen := NewGenerator(nil, testConfig())

	papers := []model.Paper{{ID: "1", Title: "Tiny"}}
	if got := gen.Summarize(context.Background(), papers, 500); got == "" {
		t.Error("Fallback must handle minimal inputs")
	}
}

func TestQuarterlySummaries_SkipsUnknown(t *testing.T) {
	gen := NewGenerator(nil, testConfig())

	quarters := map[string][]model.Paper{
		"2024-Q1":            {{ID: "1", Title: "a", Venue: "ICML"}},
		model.UnknownQuarter: {{ID: "2", Title: "b"}},
	}

	summaries := gen.QuarterlySummaries(context.Background(), quarters, 300)

	if _, ok := summaries[model.UnknownQuarter]; ok {
		t.Error("Unknown bucket must not be summarized")
	}
	summary, ok := summaries["2024-Q1"]
	if !ok || summary == "" {
		t.Fatalf("Expected summary for 2024-Q1, got %q", summary)
	}
	if !strings.Contains(summary, "1 papers") || !strings.Contains(summary, "ICML") {
		t.Errorf("Unexpected fallback quarterly summary: %q", summary)
	}
}

func TestStatisticalFallback_Sections(t *testing.T) {
	got := statisticalFallback(samplePapers())

	for _, section := range []string{"[Research Overview]", "[Yearly Distribution]", "[Trending Terms]"} {
		if !strings.Contains(got, section) {
			t.Errorf("Fallback missing section %s:\n%s", section, got)
		}
	}
	// "diffusion" appears in all three titles and is longer than the token minimum
	if !strings.Contains(got, "diffusion") {
		t.Errorf("Expected trending term 'diffusion', got:\n%s", got)
	}
}

func TestTimeSpanLabel(t *testing.T) {
	if got := timeSpanLabel(samplePapers()); got != "2022-2024" {
		t.Errorf("timeSpanLabel = %q, want 2022-2024", got)
	}
	if got := timeSpanLabel([]model.Paper{{Published: "2024-01-01T00:00:00Z"}}); got != "2024" {
		t.Errorf("timeSpanLabel = %q, want 2024", got)
	}
	if got := timeSpanLabel([]model.Paper{{Published: "garbage"}}); got != "recent years" {
		t.Errorf("timeSpanLabel = %q, want 'recent years'", got)
	}
}

func TestMostRecentFirst(t *testing.T) {
	papers := samplePapers()
	sorted := mostRecentFirst(papers)

	if sorted[0].ID != "1" || sorted[2].ID != "3" {
		t.Errorf("Expected most-recent-first order, got %s, %s, %s", sorted[0].ID, sorted[1].ID, sorted[2].ID)
	}
	if papers[0].ID != "1" {
		t.Error("mostRecentFirst mutated its input")
	}
}
