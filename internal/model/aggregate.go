package model

// UnknownQuarter is the reserved bucket for papers whose published timestamp
// is missing or unparseable. It never appears in aggregate output.
const UnknownQuarter = "Unknown"

// QuarterlyAggregate summarizes one quarter bucket of papers.
type QuarterlyAggregate struct {
	Quarter      string   `json:"quarter"` // "YYYY-Qn"
	PaperCount   int      `json:"paper_count"`
	Papers       []Paper  `json:"papers"`
	TopVenues    []string `json:"top_venues"`    // up to 3, by descending frequency
	SampleTitles []string `json:"sample_titles"` // first 3 titles in bucket order
	Summary      string   `json:"summary,omitempty"`
}

// Result is the complete outcome of one pipeline invocation. It is the value
// cached between runs and returned to the caller.
type Result struct {
	Query      string               `json:"query"`
	Papers     []Paper              `json:"papers"`
	Aggregates []QuarterlyAggregate `json:"aggregates,omitempty"`
	Trajectory string               `json:"trajectory,omitempty"`
	FromCache  bool                 `json:"from_cache"`
}
