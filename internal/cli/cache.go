package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/paperscope/paperscope/internal/cache"
	"github.com/paperscope/paperscope/internal/model"
)

// cacheCmd represents the cache command group
var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Inspect and manage the result cache",
}

var cacheStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show cache entry count and total size",
	RunE: func(cmd *cobra.Command, args []string) error {
		stats := diskStore().Stats()
		fmt.Printf("entries: %d\n", stats.EntryCount)
		fmt.Printf("size:    %.2f MB\n", float64(stats.TotalSize)/(1024*1024))
		return nil
	},
}

var cacheClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all cached results",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !diskStore().Clear() {
			return fmt.Errorf("clearing cache failed")
		}
		fmt.Println("cache cleared")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(cacheCmd)
	cacheCmd.AddCommand(cacheStatsCmd)
	cacheCmd.AddCommand(cacheClearCmd)
}

func diskStore() *cache.DiskStore {
	cfg := model.DefaultConfig().Cache
	return cache.NewDiskStore(cfg.Dir, cfg.ExpiryDays)
}
