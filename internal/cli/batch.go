package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/tripod-nlp/tripod/internal/pipeline"
	"github.com/tripod-nlp/tripod/internal/worker"
)

var (
	concurrency  int
	outputDir    string
	batchTimeout time.Duration
)

// batchCmd represents the batch command
var batchCmd = &cobra.Command{
	Use:   "batch <listfile>",
	Short: "Extract triples from multiple documents in parallel",
	Long: `Batch reads document paths from a list file (one per line, #-comments
allowed) and extracts them concurrently. Each document gets its own
JSON and Markdown report in the output directory; documents unchanged
since the previous run are answered from the report cache.

Example:
  tripod batch corpus.txt
  tripod batch corpus.txt --concurrency 8 --output-dir ./reports`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().IntVar(&concurrency, "concurrency", runtime.NumCPU(), "number of concurrent workers")
	batchCmd.Flags().StringVar(&outputDir, "output-dir", "./tripod-reports", "output directory for reports")
	batchCmd.Flags().DurationVar(&batchTimeout, "timeout", 10*time.Minute, "total timeout for batch processing")

	batchCmd.Flags().IntVar(&sentenceWorkers, "sentence-workers", 1, "sentences tagged in parallel per document")
	batchCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable report and tagging caches")
	batchCmd.Flags().StringVar(&cacheDir, "cache-dir", "", "disk cache directory (default: ~/.tripod/cache)")
	batchCmd.Flags().BoolVar(&noFooter, "no-footer", false, "disable footer in Markdown reports")

	batchCmd.Flags().BoolVar(&llmEnabled, "llm", false, "enable LLM summary generation")
	batchCmd.Flags().StringVar(&llmProvider, "llm-provider", "openai", "LLM provider (openai, ollama)")
	batchCmd.Flags().StringVar(&llmModel, "llm-model", "", "LLM model name")
	batchCmd.Flags().StringVar(&httpProxy, "http-proxy", "", "HTTP proxy for the LLM client")
	batchCmd.Flags().StringVar(&httpsProxy, "https-proxy", "", "HTTPS proxy for the LLM client")
}

func runBatch(cmd *cobra.Command, args []string) error {
	listFile := args[0]
	ctx, cancel := context.WithTimeout(context.Background(), batchTimeout)
	defer cancel()

	paths, err := worker.ReadFileList(listFile)
	if err != nil {
		return err
	}
	if len(paths) == 0 {
		return fmt.Errorf("no document paths in %s", listFile)
	}

	cfg, err := buildConfig()
	if err != nil {
		return err
	}
	cfg.Concurrency.Workers = concurrency

	p, err := pipeline.NewPipeline(cfg)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	fmt.Fprintf(os.Stderr, "Processing %d documents with %d workers...\n", len(paths), concurrency)

	processor := worker.NewBatchProcessor(p, concurrency)
	results := processor.ProcessFiles(ctx, paths)

	// Stable report order regardless of worker scheduling.
	sort.Slice(results, func(i, j int) bool { return results[i].Path < results[j].Path })

	failed := 0
	for _, result := range results {
		if result.Error != nil {
			failed++
			fmt.Fprintf(os.Stderr, "✗ %s: %v\n", result.Path, result.Error)
			continue
		}

		base := strings.TrimSuffix(filepath.Base(result.Path), filepath.Ext(result.Path))
		jsonPath := filepath.Join(outputDir, base+".json")
		mdPath := filepath.Join(outputDir, base+".md")

		if err := p.RenderReport(result.Report, jsonPath, mdPath, verbose); err != nil {
			failed++
			fmt.Fprintf(os.Stderr, "✗ %s: %v\n", result.Path, err)
			continue
		}

		fmt.Fprintf(os.Stderr, "✓ %s: %d triples\n", result.Path, result.Report.Stats.TripleCount)
	}

	fmt.Fprintf(os.Stderr, "\nDone: %d ok, %d failed\n", len(results)-failed, failed)
	if failed > 0 {
		return fmt.Errorf("%d of %d documents failed", failed, len(results))
	}
	return nil
}
