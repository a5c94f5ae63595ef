// Package llm generates an optional natural-language summary of an
// extraction report. The summary is decoration: it never affects
// extraction, deduplication, ranking or stats, and it is disabled unless a
// provider is configured.
package llm

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/tripod-nlp/tripod/internal/model"
)

// Provider defines the interface for LLM providers.
type Provider interface {
	// Name returns the provider name.
	Name() string

	// Summarize generates a summary of the triple list with strict
	// entity grounding.
	Summarize(ctx context.Context, req SummarizeRequest) (*SummarizeResponse, error)
}

// SummarizeRequest contains the input for summarization.
type SummarizeRequest struct {
	// Report is the extraction report to summarize.
	Report model.Report

	// Entities is the STRICT allowlist of entity names the model may
	// quote. Quoting anything else is treated as hallucination.
	Entities []string

	// Model overrides the configured model when non-empty.
	Model string

	// MaxTokens limits the response length.
	MaxTokens int
}

// SummarizeResponse contains the model's output.
type SummarizeResponse struct {
	Summary    string
	Model      string
	TokensUsed int
}

// Config holds LLM provider configuration.
type Config struct {
	Provider   string // "openai", "ollama" or "" (disabled)
	Model      string
	APIKey     string
	BaseURL    string
	Timeout    int // seconds
	MaxTokens  int
	HTTPProxy  string
	HTTPSProxy string
}

// BuildPrompt constructs the summarization prompt. The model is told to
// quote entity names with 「」 so leaked names can be detected afterwards.
func BuildPrompt(report model.Report, entities []string) string {
	var triples strings.Builder
	for _, t := range report.Triples {
		fmt.Fprintf(&triples, "- (%s, %s, %s) [%s, %.2f]\n",
			t.Subject, t.Relation, t.Object, t.Rule, t.Confidence)
	}

	return fmt.Sprintf(`You are summarizing the output of a rule-based Chinese triple extractor. The triples below are the ONLY facts available.

CRITICAL RULES:
1. Mention ONLY entities from this allowed list, and wrap every entity name you mention in 「」:
%s

2. Do not add facts, dates or numbers that are not in the triple list.
3. If the triples are sparse or low-confidence, say so explicitly.
4. Describe what was EXTRACTED, not what is true. Use phrases like:
   - "The text states that..."
   - "According to the extracted triples..."
5. Write the summary in Chinese, as Markdown, at most three short paragraphs.

Extracted triples (%d, confidence-ranked):
%s`, "「"+strings.Join(entities, "」、「")+"」", len(report.Triples), triples.String())
}

// quotedEntity matches the 「...」 spans the prompt asks the model to use.
var quotedEntity = regexp.MustCompile(`「([^」]+)」`)

// CheckEntityLeaks returns every quoted entity in the summary that is not
// on the allowlist.
func CheckEntityLeaks(summary string, entities []string) []string {
	allowed := make(map[string]bool, len(entities))
	for _, e := range entities {
		allowed[e] = true
	}

	var leaks []string
	seen := make(map[string]bool)
	for _, m := range quotedEntity.FindAllStringSubmatch(summary, -1) {
		name := strings.TrimSpace(m[1])
		if name == "" || allowed[name] || seen[name] {
			continue
		}
		seen[name] = true
		leaks = append(leaks, name)
	}
	return leaks
}

// EntityAllowlist collects the distinct subjects and objects of a report
// in first-appearance order.
func EntityAllowlist(report model.Report) []string {
	var entities []string
	seen := make(map[string]bool)
	for _, t := range report.Triples {
		for _, e := range []string{t.Subject, t.Object} {
			if !seen[e] {
				seen[e] = true
				entities = append(entities, e)
			}
		}
	}
	return entities
}
