package enrich

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/paperscope/paperscope/internal/model"
)

// CitationSource looks up how often a paper has been cited. Implementations
// report absence (false) rather than errors; an unknown count is never zero.
type CitationSource interface {
	Name() string
	Count(ctx context.Context, p model.Paper) (int, bool)
}

// NewCitationSource selects a source from configuration. An empty provider
// name means citation counts stay unknown.
func NewCitationSource(cfg model.CitationsConfig) (CitationSource, error) {
	switch cfg.Provider {
	case "serpapi":
		return NewScholarCitations(cfg)
	case "":
		return DisabledCitations{}, nil
	default:
		return nil, fmt.Errorf("unknown citation provider: %s (supported: serpapi)", cfg.Provider)
	}
}

// DisabledCitations is the default source: every lookup reports unknown.
type DisabledCitations struct{}

// Name returns the source identifier.
func (DisabledCitations) Name() string { return "disabled" }

// Count always reports unknown.
func (DisabledCitations) Count(context.Context, model.Paper) (int, bool) {
	return 0, false
}

// ScholarCitations fetches citation counts from Google Scholar through the
// SerpAPI search endpoint, memoizing results in memory.
type ScholarCitations struct {
	endpoint   string
	apiKey     string
	httpClient *http.Client
	memo       *gocache.Cache
}

// NewScholarCitations creates a SerpAPI-backed source.
func NewScholarCitations(cfg model.CitationsConfig) (*ScholarCitations, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("serpapi API key is required")
	}

	ttl := cfg.TTL
	if ttl == 0 {
		ttl = 7 * 24 * time.Hour
	}

	return &ScholarCitations{
		endpoint:   cfg.Endpoint,
		apiKey:     cfg.APIKey,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		memo:       gocache.New(ttl, time.Hour),
	}, nil
}

// Name returns the source identifier.
func (s *ScholarCitations) Name() string { return "serpapi" }

// Count looks up the citation count by paper title. Failures are logged and
// reported as unknown; they never abort enrichment.
func (s *ScholarCitations) Count(ctx context.Context, p model.Paper) (int, bool) {
	memoKey := "citations:" + p.ID
	if cached, found := s.memo.Get(memoKey); found {
		return cached.(int), true
	}

	count, ok := s.fetch(ctx, p.Title)
	if !ok {
		return 0, false
	}

	s.memo.SetDefault(memoKey, count)
	return count, true
}

// scholarResponse is the subset of the SerpAPI result we care about.
type scholarResponse struct {
	OrganicResults []struct {
		InlineLinks struct {
			CitedBy struct {
				Total *int `json:"total"`
			} `json:"cited_by"`
		} `json:"inline_links"`
	} `json:"organic_results"`
}

func (s *ScholarCitations) fetch(ctx context.Context, title string) (int, bool) {
	params := url.Values{}
	params.Set("q", title)
	params.Set("engine", "google_scholar")
	params.Set("api_key", s.apiKey)
	params.Set("hl", "en")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return 0, false
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		fmt.Fprintf(os.Stderr, "citations: lookup %q failed: %v\n", title, err)
		return 0, false
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		fmt.Fprintf(os.Stderr, "citations: lookup %q returned status %d\n", title, resp.StatusCode)
		return 0, false
	}

	var parsed scholarResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return 0, false
	}

	if len(parsed.OrganicResults) == 0 || parsed.OrganicResults[0].InlineLinks.CitedBy.Total == nil {
		return 0, false
	}
	return *parsed.OrganicResults[0].InlineLinks.CitedBy.Total, true
}
