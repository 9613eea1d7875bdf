package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/Srushti24695/tonalize/internal/analysis"
	"github.com/Srushti24695/tonalize/internal/imagedecode"
)

// Version is the application version.
const Version = "0.1.0"

var (
	similarityThreshold float64
	cacheCapacity       int
	maxDimension        int
)

var rootCmd = &cobra.Command{
	Use:     "tonalize",
	Short:   "Skin undertone and seasonal color palette analysis",
	Version: Version,
}

// Execute runs the CLI with a context that cancels on SIGINT or SIGTERM.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rootCmd.SetVersionTemplate(`{{printf "%s\n" .Version}}`)

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().Float64Var(&similarityThreshold, "similarity-threshold", 0, "override the signature similarity threshold for cache hits")
	rootCmd.PersistentFlags().IntVar(&cacheCapacity, "cache-capacity", 0, "override the consistency cache capacity")
	rootCmd.PersistentFlags().IntVar(&maxDimension, "max-dimension", imagedecode.DefaultMaxDimension, "downscale images so neither side exceeds this")
}

// newAnalyzer builds an analyzer from the default tuning plus any
// persistent flag overrides.
func newAnalyzer() *analysis.Analyzer {
	cfg := analysis.DefaultConfig()
	if similarityThreshold > 0 {
		cfg.Cache.SimilarityThreshold = similarityThreshold
	}
	if cacheCapacity > 0 {
		cfg.Cache.Capacity = cacheCapacity
	}
	return analysis.NewAnalyzer(&cfg, nil)
}
