package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/Srushti24695/tonalize/internal/analysis"
	"github.com/Srushti24695/tonalize/internal/imagedecode"
)

var batchWorkers int

var batchCmd = &cobra.Command{
	Use:   "batch <directory>",
	Short: "Analyze every image in a directory with parallel workers",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runBatch(args[0])
	},
}

func init() {
	batchCmd.Flags().IntVarP(&batchWorkers, "workers", "w", 4, "number of parallel analysis workers")
	rootCmd.AddCommand(batchCmd)
}

var imageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

type batchResult struct {
	Path   string          `json:"path"`
	Result analysis.Result `json:"result,omitempty"`
	Err    string          `json:"error,omitempty"`
}

func runBatch(dir string) error {
	if batchWorkers < 1 {
		batchWorkers = 1
	}

	paths, err := collectImagePaths(dir)
	if err != nil {
		return err
	}
	if len(paths) == 0 {
		return fmt.Errorf("no images found under %s", dir)
	}

	fmt.Fprintf(os.Stderr, "Analyzing %d images with %d workers\n", len(paths), batchWorkers)

	bar := progressbar.NewOptions(len(paths),
		progressbar.OptionSetDescription("tonalize batch"),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionShowCount(),
	)

	decoder := imagedecode.NewDecoder(maxDimension)
	analyzer := newAnalyzer()

	tasks := make(chan string, batchWorkers)
	results := make(chan batchResult, batchWorkers*2)

	var wg sync.WaitGroup
	for i := 0; i < batchWorkers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for path := range tasks {
				results <- analyzeFile(decoder, analyzer, path)
				bar.Add(1) //nolint:errcheck
			}
		}()
	}

	collected := make([]batchResult, 0, len(paths))
	collectDone := make(chan struct{})
	go func() {
		for res := range results {
			collected = append(collected, res)
		}
		close(collectDone)
	}()

	for _, path := range paths {
		tasks <- path
	}
	close(tasks)
	wg.Wait()
	close(results)
	<-collectDone

	bar.Finish() //nolint:errcheck
	fmt.Fprintln(os.Stderr)

	sort.Slice(collected, func(i, j int) bool { return collected[i].Path < collected[j].Path })

	enc := json.NewEncoder(os.Stdout)
	for _, res := range collected {
		if err := enc.Encode(res); err != nil {
			return err
		}
	}

	printBatchSummary(collected)
	return nil
}

func analyzeFile(decoder *imagedecode.Decoder, analyzer *analysis.Analyzer, path string) batchResult {
	data, err := os.ReadFile(path)
	if err != nil {
		return batchResult{Path: path, Err: err.Error()}
	}
	buf, err := decoder.Decode(data)
	if err != nil {
		return batchResult{Path: path, Err: err.Error()}
	}
	return batchResult{Path: path, Result: analyzer.Analyze(buf)}
}

func collectImagePaths(dir string) ([]string, error) {
	var paths []string
	err := filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if imageExtensions[strings.ToLower(filepath.Ext(path))] {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk %s: %w", dir, err)
	}
	sort.Strings(paths)
	return paths, nil
}

func printBatchSummary(results []batchResult) {
	seasons := make(map[analysis.Season]int)
	undertones := make(map[analysis.Undertone]int)
	failures := 0
	faces := 0

	for _, res := range results {
		if res.Err != "" {
			failures++
			continue
		}
		seasons[res.Result.Season]++
		undertones[res.Result.Undertone]++
		if res.Result.FaceDetected {
			faces++
		}
	}

	fmt.Fprintf(os.Stderr, "\nBatch summary: %d images, %d faces detected, %d failures\n", len(results), faces, failures)
	for _, season := range analysis.Seasons() {
		if seasons[season] > 0 {
			fmt.Fprintf(os.Stderr, "  %-7s %d\n", season, seasons[season])
		}
	}
	for _, tone := range []analysis.Undertone{analysis.UndertoneWarm, analysis.UndertoneCool, analysis.UndertoneNeutral} {
		if undertones[tone] > 0 {
			fmt.Fprintf(os.Stderr, "  %-7s %d\n", tone, undertones[tone])
		}
	}
}
