package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Srushti24695/tonalize/internal/analysis"
)

var paletteCmd = &cobra.Command{
	Use:   "palette <season>",
	Short: "Print the reference palette for a season as JSON",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		season := analysis.Season(strings.ToLower(args[0]))
		if !analysis.ValidSeason(season) {
			return fmt.Errorf("unknown season %q (expected one of %v)", args[0], analysis.Seasons())
		}

		best, neutral, avoid := analysis.PaletteColors(season)
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(map[string]interface{}{
			"season":         season,
			"best_colors":    best,
			"neutral_colors": neutral,
			"avoid_colors":   avoid,
		})
	},
}

func init() {
	rootCmd.AddCommand(paletteCmd)
}
