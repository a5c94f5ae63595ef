package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/tripod-nlp/tripod/internal/model"
	"github.com/tripod-nlp/tripod/internal/pipeline"
)

var (
	outJSON         string
	outMD           string
	timeout         time.Duration
	noCache         bool
	cacheDir        string
	noFooter        bool
	sentenceWorkers int
	llmEnabled      bool
	llmProvider     string
	llmModel        string
	httpProxy       string
	httpsProxy      string
)

// extractCmd represents the extract command
var extractCmd = &cobra.Command{
	Use:   "extract <file|->",
	Short: "Extract triples from a single document",
	Long: `Extract reads one document (plain text, or .html/.htm reduced to its
visible text; "-" reads stdin), splits it into sentences, tags each
sentence and applies the four pattern rules:

  SVO    core verb with noun runs on both sides        (confidence 0.8)
  PREP   verb + prepositional phrase                   (confidence 0.7)
  APPOS  copula, relation normalized to 是             (confidence 0.9)
  ATT    attributive 的 linking modifier and head      (confidence 0.85)

The result is deduplicated and ranked by confidence.

Example:
  tripod extract article.txt
  tripod extract article.txt --json report.json --md report.md
  cat article.txt | tripod extract - --json -
  tripod extract article.txt --llm --llm-provider ollama`,
	Args: cobra.ExactArgs(1),
	RunE: runExtract,
}

func init() {
	rootCmd.AddCommand(extractCmd)

	// Output flags
	extractCmd.Flags().StringVar(&outJSON, "json", "report.json", "output JSON path")
	extractCmd.Flags().StringVar(&outMD, "md", "", "output Markdown path (optional)")
	extractCmd.Flags().BoolVar(&noFooter, "no-footer", false, "disable footer in Markdown reports")

	// Processing flags
	extractCmd.Flags().DurationVar(&timeout, "timeout", time.Minute, "overall extraction timeout")
	extractCmd.Flags().IntVar(&sentenceWorkers, "sentence-workers", 1, "sentences tagged in parallel (output stays deterministic)")
	extractCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable report and tagging caches")
	extractCmd.Flags().StringVar(&cacheDir, "cache-dir", "", "disk cache directory (default: ~/.tripod/cache)")

	// LLM flags
	extractCmd.Flags().BoolVar(&llmEnabled, "llm", false, "enable LLM summary generation")
	extractCmd.Flags().StringVar(&llmProvider, "llm-provider", "openai", "LLM provider (openai, ollama)")
	extractCmd.Flags().StringVar(&llmModel, "llm-model", "", "LLM model name")
	extractCmd.Flags().StringVar(&httpProxy, "http-proxy", "", "HTTP proxy for the LLM client")
	extractCmd.Flags().StringVar(&httpsProxy, "https-proxy", "", "HTTPS proxy for the LLM client")
}

// buildConfig assembles the runtime configuration from flags.
func buildConfig() (*model.Config, error) {
	cfg := model.DefaultConfig()
	cfg.Concurrency.Sentences = sentenceWorkers
	cfg.Cache.Enabled = !noCache
	cfg.Cache.Dir = cacheDir
	if cfg.Cache.Dir == "" {
		cfg.Cache.Dir = defaultCacheDir()
	}
	cfg.Output.Verbose = verbose
	cfg.Output.IncludeFooter = !noFooter

	if llmEnabled {
		cfg.LLM.Provider = llmProvider
		cfg.LLM.Model = llmModel
		cfg.LLM.HTTPProxy = httpProxy
		cfg.LLM.HTTPSProxy = httpsProxy

		switch llmProvider {
		case "openai":
			cfg.LLM.APIKey = os.Getenv("OPENAI_API_KEY")
			if cfg.LLM.APIKey == "" {
				return nil, fmt.Errorf("OPENAI_API_KEY environment variable not set")
			}
		case "ollama":
			if baseURL := os.Getenv("OLLAMA_BASE_URL"); baseURL != "" {
				cfg.LLM.BaseURL = baseURL
			}
		}
	}

	return cfg, nil
}

func runExtract(cmd *cobra.Command, args []string) error {
	path := args[0]
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	cfg, err := buildConfig()
	if err != nil {
		return err
	}

	p, err := pipeline.NewPipeline(cfg)
	if err != nil {
		return err
	}

	result, err := p.ExtractFile(ctx, path)
	if err != nil {
		return err
	}

	if verbose || outJSON == "" {
		fmt.Print(pipeline.NewRenderer(false).Summary(result.Report))
	}

	return p.RenderReport(result.Report, outJSON, outMD, verbose)
}
