package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Srushti24695/tonalize/internal/imagedecode"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <image>",
	Short: "Analyze a single image and print the palette result as JSON",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAnalyze(args[0])
	},
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	decoder := imagedecode.NewDecoder(maxDimension)
	buf, err := decoder.Decode(data)
	if err != nil {
		return fmt.Errorf("failed to decode %s: %w", path, err)
	}

	result := newAnalyzer().Analyze(buf)

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}
