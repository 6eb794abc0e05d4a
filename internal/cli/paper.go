package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/paperscope/paperscope/internal/pipeline"
)

var paperJSON string

// paperCmd represents the paper command
var paperCmd = &cobra.Command{
	Use:   "paper <arxiv-id>",
	Short: "Fetch a single paper by arXiv identifier",
	Long: `Fetch one paper's metadata by its arXiv identifier, enriched and scored.

Example:
  paperscope paper 2301.12345`,
	Args: cobra.ExactArgs(1),
	RunE: runPaper,
}

func init() {
	rootCmd.AddCommand(paperCmd)
	paperCmd.Flags().StringVar(&paperJSON, "json", "", "write paper JSON to file (default: stdout)")
}

func runPaper(cmd *cobra.Command, args []string) error {
	id := args[0]

	p, err := pipeline.New(buildConfig())
	if err != nil {
		return fmt.Errorf("create pipeline: %w", err)
	}
	defer p.Close()

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	paper := p.GetPaper(ctx, id)
	if paper == nil {
		return fmt.Errorf("paper not found: %s", id)
	}

	return writeJSON(paper, paperJSON)
}
