package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/paperscope/paperscope/internal/model"
	"github.com/paperscope/paperscope/internal/pipeline"
)

var (
	daysBack    int
	maxResults  int
	withAgg     bool
	withNarrate bool
	noCache     bool
	outJSON     string
	dbPath      string
	llmProvider string
	llmModel    string
	llmBaseURL  string
	citProvider string
	runTimeout  time.Duration
)

// searchCmd represents the search command
var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search arXiv and produce a scored, aggregated, narrated result set",
	Long: `Search runs the full pipeline for a query:
- Retrieve recent papers from the arXiv feed
- Detect venue and CCF grade, optionally look up citation counts
- Score and rank papers by authority
- Bucket papers into quarterly aggregates
- Generate a trajectory summary (LLM when configured, statistical otherwise)

Results are cached on disk; repeated queries inside the cache TTL are served
from cache.

Example:
  paperscope search "diffusion models"
  paperscope search "graph neural networks" --max 50 --llm openai --llm-model gpt-4o-mini
  paperscope search "slam" --no-cache --json result.json`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

func init() {
	rootCmd.AddCommand(searchCmd)

	searchCmd.Flags().IntVar(&daysBack, "days-back", 365*5, "search window in days")
	searchCmd.Flags().IntVar(&maxResults, "max", 100, "maximum number of papers")
	searchCmd.Flags().BoolVar(&withAgg, "aggregate", true, "compute quarterly aggregates")
	searchCmd.Flags().BoolVar(&withNarrate, "narrate", true, "generate trajectory summary")
	searchCmd.Flags().BoolVar(&noCache, "no-cache", false, "bypass the result cache")
	searchCmd.Flags().StringVar(&outJSON, "json", "", "write result JSON to file (default: stdout)")
	searchCmd.Flags().StringVar(&dbPath, "db", "", "persist papers to a SQLite database at this path")
	searchCmd.Flags().StringVar(&llmProvider, "llm", "", "LLM provider for the narrative (openai, qwen, ollama)")
	searchCmd.Flags().StringVar(&llmModel, "llm-model", "", "LLM model name")
	searchCmd.Flags().StringVar(&llmBaseURL, "llm-base-url", "", "custom OpenAI-compatible endpoint")
	searchCmd.Flags().StringVar(&citProvider, "citations", "", "citation source (serpapi); empty leaves counts unknown")
	searchCmd.Flags().DurationVar(&runTimeout, "timeout", 5*time.Minute, "overall run timeout")
}

func runSearch(cmd *cobra.Command, args []string) error {
	query := args[0]

	cfg := buildConfig()
	p, err := pipeline.New(cfg)
	if err != nil {
		return fmt.Errorf("create pipeline: %w", err)
	}
	defer p.Close()

	ctx, cancel := context.WithTimeout(context.Background(), runTimeout)
	defer cancel()

	if verbose {
		fmt.Fprintf(os.Stderr, "Searching: %s (max %d, %d days back)\n", query, maxResults, daysBack)
	}

	result, err := p.Run(ctx, query, pipeline.Options{
		DaysBack:   daysBack,
		MaxResults: maxResults,
		Aggregate:  withAgg,
		Narrate:    withNarrate,
		NoCache:    noCache,
	})
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "✓ %d papers (from cache: %v)\n", len(result.Papers), result.FromCache)
		if withAgg {
			fmt.Fprintf(os.Stderr, "✓ %d quarterly buckets\n", len(result.Aggregates))
		}
	}

	return writeJSON(result, outJSON)
}

// buildConfig assembles the run configuration from defaults, flags, and
// environment. API keys come from the environment only.
func buildConfig() *model.Config {
	cfg := model.DefaultConfig()
	cfg.Output.Verbose = verbose
	cfg.Storage.Path = dbPath

	if llmProvider != "" {
		cfg.LLM.Provider = llmProvider
		cfg.LLM.Model = llmModel
		cfg.LLM.BaseURL = llmBaseURL
		switch llmProvider {
		case "openai", "qwen":
			cfg.LLM.APIKey = os.Getenv("OPENAI_API_KEY")
		case "ollama":
			if baseURL := os.Getenv("OLLAMA_BASE_URL"); baseURL != "" && cfg.LLM.BaseURL == "" {
				cfg.LLM.BaseURL = baseURL
			}
		}
	}

	if citProvider != "" {
		cfg.Citations.Provider = citProvider
		cfg.Citations.APIKey = os.Getenv("SERPAPI_KEY")
	}

	return cfg
}

func writeJSON(v interface{}, path string) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal result: %w", err)
	}

	if path == "" {
		fmt.Println(string(data))
		return nil
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	if verbose {
		fmt.Fprintf(os.Stderr, "✓ Wrote %s\n", path)
	}
	return nil
}
