package llm

import (
	"context"
	"fmt"

	"github.com/tripod-nlp/tripod/internal/model"
)

// Summarizer wraps a provider and enforces entity grounding on its output.
type Summarizer struct {
	provider Provider
	config   Config
}

// NewSummarizer builds a summarizer; it returns an error when the
// configured provider cannot be constructed, and a disabled summarizer
// when no provider is configured.
func NewSummarizer(config Config) (*Summarizer, error) {
	provider, err := NewProvider(config)
	if err != nil {
		return nil, err
	}
	return &Summarizer{provider: provider, config: config}, nil
}

// IsEnabled reports whether a provider is configured.
func (s *Summarizer) IsEnabled() bool {
	return s != nil && s.provider != nil
}

// GenerateSummary asks the provider for a summary of the report's triples.
// Entities quoted by the model that are not in the triple list are
// recorded as warnings; the summary is kept, clearly marked. A disabled
// summarizer returns (nil, nil).
func (s *Summarizer) GenerateSummary(ctx context.Context, report model.Report) (*model.LLMSummary, error) {
	if !s.IsEnabled() {
		return nil, nil
	}
	if len(report.Triples) == 0 {
		return nil, nil // Nothing to summarize
	}

	entities := EntityAllowlist(report)

	resp, err := s.provider.Summarize(ctx, SummarizeRequest{
		Report:    report,
		Entities:  entities,
		Model:     s.config.Model,
		MaxTokens: s.config.MaxTokens,
	})
	if err != nil {
		return nil, err
	}

	summary := &model.LLMSummary{
		Enabled:   true,
		Provider:  s.provider.Name(),
		Model:     resp.Model,
		SummaryMD: resp.Summary,
	}

	for _, leak := range CheckEntityLeaks(resp.Summary, entities) {
		summary.Warnings = append(summary.Warnings,
			fmt.Sprintf("summary mentions entity not present in triples: %s", leak))
	}

	return summary, nil
}
