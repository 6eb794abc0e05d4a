package arxiv

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"strings"

	"github.com/mmcdole/gofeed"
	"golang.org/x/time/rate"

	"github.com/paperscope/paperscope/internal/model"
)

// Client queries the arXiv Atom API and normalizes entries into Paper
// records. Failures never surface as errors from Search: callers treat an
// empty result as the only failure signal.
type Client struct {
	baseURL    string
	httpClient *http.Client
	parser     *gofeed.Parser
	limiter    *rate.Limiter
	userAgent  string
}

// NewClient creates a retrieval client from configuration.
func NewClient(cfg model.ArxivConfig) *Client {
	rps := cfg.RequestsPerSecond
	if rps <= 0 {
		rps = 1.0 / 3.0
	}

	return &Client{
		baseURL: cfg.BaseURL,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		parser:    gofeed.NewParser(),
		limiter:   rate.NewLimiter(rate.Limit(rps), 1),
		userAgent: cfg.UserAgent,
	}
}

// Search runs a single feed request sorted by submission date descending and
// returns the parsed papers. On any transport or protocol failure it logs and
// returns an empty slice; it never paginates or retries.
func (c *Client) Search(ctx context.Context, query string, maxResults int) []model.Paper {
	if maxResults <= 0 {
		maxResults = 100
	}

	params := url.Values{}
	params.Set("search_query", "all:"+query)
	params.Set("start", "0")
	params.Set("max_results", strconv.Itoa(maxResults))
	params.Set("sortBy", "submittedDate")
	params.Set("sortOrder", "descending")

	feed, err := c.fetch(ctx, params)
	if err != nil {
		fmt.Fprintf(os.Stderr, "arxiv: search %q failed: %v\n", query, err)
		return []model.Paper{}
	}

	papers := make([]model.Paper, 0, len(feed.Items))
	for _, item := range feed.Items {
		papers = append(papers, parseItem(item))
	}
	return papers
}

// GetByID fetches a single paper by its arXiv identifier. Returns nil when
// the paper does not exist or the feed is unreachable.
func (c *Client) GetByID(ctx context.Context, id string) *model.Paper {
	params := url.Values{}
	params.Set("search_query", "arxiv:"+id)
	params.Set("max_results", "1")

	feed, err := c.fetch(ctx, params)
	if err != nil {
		fmt.Fprintf(os.Stderr, "arxiv: fetch %s failed: %v\n", id, err)
		return nil
	}

	if len(feed.Items) == 0 {
		return nil
	}
	paper := parseItem(feed.Items[0])
	return &paper
}

func (c *Client) fetch(ctx context.Context, params url.Values) (*gofeed.Feed, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status: %d %s", resp.StatusCode, resp.Status)
	}

	feed, err := c.parser.Parse(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parse feed: %w", err)
	}
	return feed, nil
}

// parseItem converts one feed entry into a Paper. Malformed sub-fields
// default to empty values; a single bad entry never fails the batch.
func parseItem(item *gofeed.Item) model.Paper {
	id := extractID(item.GUID)

	var authors []string
	for _, a := range item.Authors {
		if name := strings.TrimSpace(a.Name); name != "" {
			authors = append(authors, name)
		}
	}

	return model.Paper{
		ID:         id,
		Title:      strings.TrimSpace(item.Title),
		Authors:    authors,
		Abstract:   strings.TrimSpace(item.Description),
		Published:  item.Published,
		Categories: primaryCategory(item),
		URL:        item.GUID,
		PDFURL:     pdfURL(id),
	}
}

// extractID pulls the arXiv ID from the entry's canonical URL
// (e.g. "http://arxiv.org/abs/2301.12345v1" -> "2301.12345v1").
func extractID(idURL string) string {
	const delim = "/abs/"
	if idx := strings.Index(idURL, delim); idx >= 0 {
		return idURL[idx+len(delim):]
	}
	return idURL
}

// pdfURL derives the PDF location from the ID. The feed's own link list is
// ignored on purpose: the template is stable, the links are not.
func pdfURL(id string) string {
	if id == "" {
		return ""
	}
	return "https://arxiv.org/pdf/" + id + ".pdf"
}

// primaryCategory reads the arxiv:primary_category extension, falling back
// to the first plain category term.
func primaryCategory(item *gofeed.Item) string {
	if ns, ok := item.Extensions["arxiv"]; ok {
		if exts, ok := ns["primary_category"]; ok && len(exts) > 0 {
			if term, ok := exts[0].Attrs["term"]; ok {
				return term
			}
		}
	}
	if len(item.Categories) > 0 {
		return item.Categories[0]
	}
	return ""
}
