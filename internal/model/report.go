package model

import "time"

// Report is the complete extraction result for one document.
type Report struct {
	Source      string    `json:"source"`       // File name or "-" for stdin
	ExtractedAt time.Time `json:"extracted_at"` // When the extraction ran
	Sentences   int       `json:"sentences"`    // Valid sentences after normalization

	Triples []Triple `json:"triples"` // Deduplicated, confidence-descending

	Stats    Stats    `json:"stats"`              // Diagnostic breakdown, never affects triples
	Findings []string `json:"findings,omitempty"` // Invariant violations, empty on a healthy run

	LLM *LLMSummary `json:"llm,omitempty"` // Optional LLM summary (separate, never affects extraction)
}

// Stats is the transparent diagnostic breakdown of an extraction run.
type Stats struct {
	TripleCount    int                `json:"triple_count"`
	ByRule         map[RuleKind]int   `json:"by_rule"`
	ByType         map[EntityType]int `json:"by_type"` // Subject and object types counted together
	MeanConfidence float64            `json:"mean_confidence"`
	Coverage       float64            `json:"coverage"` // Sentences with at least one candidate / total
	Signals        []Signal           `json:"signals,omitempty"`
}

// Signal is one diagnostic observation about the extraction run.
type Signal struct {
	Type        SignalType     `json:"type"`
	Severity    SignalSeverity `json:"severity"`
	Description string         `json:"description"`
}

// SignalType classifies the diagnostic signal.
type SignalType string

const (
	SignalNoTriples       SignalType = "no_triples"       // Nothing matched any pattern
	SignalLowCoverage     SignalType = "low_coverage"     // Most sentences produced no candidates
	SignalRuleDominance   SignalType = "rule_dominance"   // One rule produced nearly all triples
	SignalUntypedEntities SignalType = "untyped_entities" // Many endpoints classified as generic ENTITY
)

// SignalSeverity indicates the importance of the signal.
type SignalSeverity string

const (
	SeverityInfo    SignalSeverity = "info"
	SeverityWarning SignalSeverity = "warning"
)

// LLMSummary contains the optional LLM-generated summary.
// It never affects extraction, ranking or stats and is clearly separated.
type LLMSummary struct {
	Enabled   bool     `json:"enabled"`
	Provider  string   `json:"provider,omitempty"`
	Model     string   `json:"model,omitempty"`
	SummaryMD string   `json:"summary_md,omitempty"`
	Warnings  []string `json:"warnings,omitempty"`
}
