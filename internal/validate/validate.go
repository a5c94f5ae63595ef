// Package validate checks the structural invariants of an aggregated
// triple list. Violations indicate a bug in the rule engine or aggregator,
// so they are surfaced as report findings rather than silently dropped.
package validate

import (
	"fmt"

	"github.com/tripod-nlp/tripod/internal/model"
)

// Finding describes one invariant violation.
type Finding struct {
	Index  int    // Position in the triple list
	Detail string // Human-readable description
}

func (f Finding) String() string {
	return fmt.Sprintf("triple %d: %s", f.Index, f.Detail)
}

// Check verifies an aggregated triple list:
//   - subject and object are non-empty
//   - confidence equals the rule's table value
//   - no (subject, relation, object) key appears twice
//   - the list is ordered by confidence, descending
//
// A nil return means the list is healthy.
func Check(triples []model.Triple) []Finding {
	var findings []Finding

	seen := make(map[string]int, len(triples))
	for i, t := range triples {
		if t.Subject == "" {
			findings = append(findings, Finding{i, "empty subject"})
		}
		if t.Object == "" {
			findings = append(findings, Finding{i, "empty object"})
		}

		if want := model.RuleConfidence(t.Rule); t.Confidence != want {
			findings = append(findings, Finding{
				i, fmt.Sprintf("confidence %.2f does not match rule %s (%.2f)", t.Confidence, t.Rule, want),
			})
		}

		if first, dup := seen[t.Key()]; dup {
			findings = append(findings, Finding{
				i, fmt.Sprintf("duplicate of triple %d: (%s, %s, %s)", first, t.Subject, t.Relation, t.Object),
			})
		} else {
			seen[t.Key()] = i
		}

		if i > 0 && triples[i-1].Confidence < t.Confidence {
			findings = append(findings, Finding{i, "out of confidence order"})
		}
	}

	return findings
}

// Strings renders findings for report embedding.
func Strings(findings []Finding) []string {
	if len(findings) == 0 {
		return nil
	}
	out := make([]string, len(findings))
	for i, f := range findings {
		out[i] = f.String()
	}
	return out
}
