package model

import "time"

// VenueType distinguishes conferences from journals
type VenueType string

const (
	VenueConference VenueType = "conference"
	VenueJournal    VenueType = "journal"
)

// CCFGrade is the tiered venue-quality classification
type CCFGrade string

const (
	CCFGradeA    CCFGrade = "A"
	CCFGradeB    CCFGrade = "B"
	CCFGradeC    CCFGrade = "C"
	CCFGradeNone CCFGrade = "N/A"
)

// AuthorityLevel buckets the 0-100 authority score
type AuthorityLevel string

const (
	LevelTop      AuthorityLevel = "top"
	LevelHigh     AuthorityLevel = "high"
	LevelMid      AuthorityLevel = "mid"
	LevelBaseline AuthorityLevel = "baseline"
)

// Paper represents one retrieved arXiv work, progressively filled in by the
// pipeline stages: retrieval sets the bibliographic fields, enrichment the
// venue/citation fields, scoring the authority fields.
type Paper struct {
	ID       string   `json:"arxiv_id"`           // e.g. "2301.12345"
	Title    string   `json:"title"`
	Authors  []string `json:"authors"`
	Abstract string   `json:"summary"`

	// Published is the raw ISO-8601 timestamp from the feed. It may be empty
	// or unparseable; use PublishedTime to get the parsed form.
	Published  string `json:"published"`
	Categories string `json:"categories"`
	URL        string `json:"url"`
	PDFURL     string `json:"pdf_url"`

	// Venue fields stay at their zero values when no known venue matched.
	// An empty Venue means "not detected"; a detected venue is never empty.
	Venue         string    `json:"venue,omitempty"`
	VenueType     VenueType `json:"venue_type,omitempty"`
	CCFGrade      CCFGrade  `json:"ccf_grade,omitempty"`
	IsPrestigious bool      `json:"is_prestigious,omitempty"`

	// CitationCount is nil when unknown. Unknown is not zero: a paper with no
	// citation data must not be treated as uncited.
	CitationCount *int `json:"citation_count,omitempty"`

	AuthorityScore int            `json:"authority_score"`
	AuthorityLevel AuthorityLevel `json:"authority_level,omitempty"`
	ScoreReasons   []string       `json:"score_reasons,omitempty"`
	Badges         []string       `json:"badges,omitempty"`
}

// publishedLayouts are the timestamp formats the arXiv feed has been observed
// to emit. RFC3339 covers the Atom form.
var publishedLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// PublishedTime parses the raw published timestamp. ok is false when the
// field is empty or unparseable.
func (p *Paper) PublishedTime() (time.Time, bool) {
	if p.Published == "" {
		return time.Time{}, false
	}
	for _, layout := range publishedLayouts {
		if t, err := time.Parse(layout, p.Published); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// Citations returns the citation count with unknown mapped to 0, for
// contexts (ranking) that need a total order.
func (p *Paper) Citations() int {
	if p.CitationCount == nil {
		return 0
	}
	return *p.CitationCount
}
