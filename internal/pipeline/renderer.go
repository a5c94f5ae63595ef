package pipeline

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/tripod-nlp/tripod/internal/model"
)

// Renderer writes reports as JSON and Markdown.
type Renderer struct {
	includeFooter bool
}

// NewRenderer creates a renderer.
func NewRenderer(includeFooter bool) *Renderer {
	return &Renderer{includeFooter: includeFooter}
}

// RenderJSON writes the report as indented JSON.
func (r *Renderer) RenderJSON(report *model.Report, path string) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	return os.WriteFile(path, append(data, '\n'), 0o644)
}

// RenderMarkdown writes a human-readable report.
func (r *Renderer) RenderMarkdown(report *model.Report, path string) error {
	return os.WriteFile(path, []byte(r.Markdown(report)), 0o644)
}

// Markdown builds the Markdown body of a report.
func (r *Renderer) Markdown(report *model.Report) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Triple Extraction Report: %s\n\n", report.Source)
	fmt.Fprintf(&b, "- Extracted: %s\n", report.ExtractedAt.Format("2006-01-02 15:04:05 UTC"))
	fmt.Fprintf(&b, "- Sentences: %d\n", report.Sentences)
	fmt.Fprintf(&b, "- Triples: %d\n", report.Stats.TripleCount)
	fmt.Fprintf(&b, "- Coverage: %.0f%%\n", report.Stats.Coverage*100)
	fmt.Fprintf(&b, "- Mean confidence: %.2f\n\n", report.Stats.MeanConfidence)

	if len(report.Triples) > 0 {
		b.WriteString("## Triples\n\n")
		b.WriteString("| # | Subject | Relation | Object | Types | Confidence | Rule |\n")
		b.WriteString("|---|---------|----------|--------|-------|------------|------|\n")
		for i, t := range report.Triples {
			fmt.Fprintf(&b, "| %d | %s | %s | %s | %s → %s | %.2f | %s |\n",
				i+1, t.Subject, t.Relation, t.Object,
				t.SubjectType, t.ObjectType, t.Confidence, t.Rule)
		}
		b.WriteString("\n")
	}

	if len(report.Stats.ByRule) > 0 {
		b.WriteString("## Rule breakdown\n\n")
		rules := make([]string, 0, len(report.Stats.ByRule))
		for rule := range report.Stats.ByRule {
			rules = append(rules, string(rule))
		}
		sort.Strings(rules)
		for _, rule := range rules {
			fmt.Fprintf(&b, "- %s: %d\n", rule, report.Stats.ByRule[model.RuleKind(rule)])
		}
		b.WriteString("\n")
	}

	if len(report.Stats.Signals) > 0 {
		b.WriteString("## Signals\n\n")
		for _, s := range report.Stats.Signals {
			fmt.Fprintf(&b, "- **%s** (%s): %s\n", s.Type, s.Severity, s.Description)
		}
		b.WriteString("\n")
	}

	if len(report.Findings) > 0 {
		b.WriteString("## Findings\n\n")
		for _, f := range report.Findings {
			fmt.Fprintf(&b, "- %s\n", f)
		}
		b.WriteString("\n")
	}

	if report.LLM != nil && report.LLM.Enabled {
		b.WriteString("## LLM summary (informational only)\n\n")
		fmt.Fprintf(&b, "_Provider: %s, model: %s. The summary never affects extraction or ranking._\n\n",
			report.LLM.Provider, report.LLM.Model)
		b.WriteString(report.LLM.SummaryMD)
		b.WriteString("\n\n")
		for _, w := range report.LLM.Warnings {
			fmt.Fprintf(&b, "> ⚠ %s\n", w)
		}
	}

	if r.includeFooter {
		b.WriteString("---\n")
		b.WriteString("Generated by tripod — offline rule-based triple extraction. ")
		b.WriteString("Confidence values are fixed per rule, not learned.\n")
	}

	return b.String()
}

// Summary prints a terse stdout listing for interactive runs.
func (r *Renderer) Summary(report *model.Report) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s: %d sentences, %d triples\n", report.Source, report.Sentences, report.Stats.TripleCount)
	for i, t := range report.Triples {
		fmt.Fprintf(&b, "%2d. (%s, %s, %s)  %s→%s  %.2f %s\n",
			i+1, t.Subject, t.Relation, t.Object,
			t.SubjectType, t.ObjectType, t.Confidence, t.Rule)
	}
	return b.String()
}
