package model

import "time"

// Config holds all paperscope configuration
type Config struct {
	Arxiv     ArxivConfig     `yaml:"arxiv"`
	Cache     CacheConfig     `yaml:"cache"`
	LLM       LLMConfig       `yaml:"llm"`
	Citations CitationsConfig `yaml:"citations"`
	Narrative NarrativeConfig `yaml:"narrative"`
	Storage   StorageConfig   `yaml:"storage"`
	Venues    VenueTables     `yaml:"venues"`
	Output    OutputConfig    `yaml:"output"`
}

// ArxivConfig controls the retrieval client
type ArxivConfig struct {
	BaseURL    string        `yaml:"base_url"`
	MaxResults int           `yaml:"max_results"`
	DaysBack   int           `yaml:"days_back"`
	Timeout    time.Duration `yaml:"timeout"`
	UserAgent  string        `yaml:"user_agent"`

	// RequestsPerSecond paces calls to the arXiv API. arXiv asks clients to
	// wait about 3 seconds between requests.
	RequestsPerSecond float64 `yaml:"requests_per_second"`
}

// CacheConfig controls the result cache
type CacheConfig struct {
	Enabled    bool          `yaml:"enabled"`
	Dir        string        `yaml:"dir"`
	ExpiryDays int           `yaml:"expiry_days"`
	MemoryTTL  time.Duration `yaml:"memory_ttl"`
}

// LLMConfig holds generative-provider configuration
type LLMConfig struct {
	// Provider name: "openai", "ollama", "". Empty disables the provider and
	// the narrative generator runs on its statistical fallback only.
	Provider  string `yaml:"provider"`
	Model     string `yaml:"model"`
	APIKey    string `yaml:"-"` // from environment, never serialized
	BaseURL   string `yaml:"base_url"`
	Timeout   int    `yaml:"timeout"` // seconds
	MaxTokens int    `yaml:"max_tokens"`
}

// CitationsConfig controls the optional citation-count source
type CitationsConfig struct {
	// Provider: "serpapi" or "". Empty means citation counts stay unknown.
	Provider string        `yaml:"provider"`
	APIKey   string        `yaml:"-"`
	Endpoint string        `yaml:"endpoint"`
	TTL      time.Duration `yaml:"ttl"`
	Timeout  time.Duration `yaml:"timeout"`
}

// NarrativeConfig bounds the trajectory and quarterly summaries
type NarrativeConfig struct {
	MaxLength          int `yaml:"max_length"`
	QuarterlyMaxLength int `yaml:"quarterly_max_length"`

	// RecentWindow is how many most-recent papers feed the prompt digest.
	RecentWindow int `yaml:"recent_window"`
}

// StorageConfig controls the optional SQLite sink. An empty path disables it.
type StorageConfig struct {
	Path string `yaml:"path"`
}

// OutputConfig controls CLI output behavior
type OutputConfig struct {
	Verbose bool `yaml:"verbose"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Arxiv: ArxivConfig{
			BaseURL:           "https://export.arxiv.org/api/query",
			MaxResults:        100,
			DaysBack:          365 * 5,
			Timeout:           30 * time.Second,
			UserAgent:         "paperscope/0.1 (+https://github.com/paperscope/paperscope)",
			RequestsPerSecond: 1.0 / 3.0,
		},
		Cache: CacheConfig{
			Enabled:    true,
			Dir:        "./cache",
			ExpiryDays: 30,
			MemoryTTL:  10 * time.Minute,
		},
		LLM: LLMConfig{
			Provider:  "",
			Model:     "",
			Timeout:   30,
			MaxTokens: 1000,
		},
		Citations: CitationsConfig{
			Provider: "",
			Endpoint: "https://serpapi.com/search",
			TTL:      7 * 24 * time.Hour,
			Timeout:  10 * time.Second,
		},
		Narrative: NarrativeConfig{
			MaxLength:          500,
			QuarterlyMaxLength: 300,
			RecentWindow:       25,
		},
		Storage: StorageConfig{},
		Venues:  DefaultVenueTables(),
	}
}
