// Package stats derives the diagnostic breakdown of a finished extraction.
// Diagnostics are transparent and read-only: they never modify triples,
// their order or their confidences.
package stats

import (
	"fmt"

	"github.com/tripod-nlp/tripod/internal/extract"
	"github.com/tripod-nlp/tripod/internal/model"
)

// Calculate computes counts, distribution and signals for a result.
func Calculate(res *extract.Result) model.Stats {
	s := model.Stats{
		TripleCount: len(res.Triples),
		ByRule:      make(map[model.RuleKind]int),
		ByType:      make(map[model.EntityType]int),
	}

	var confidenceSum float64
	for _, t := range res.Triples {
		s.ByRule[t.Rule]++
		s.ByType[t.SubjectType]++
		s.ByType[t.ObjectType]++
		confidenceSum += t.Confidence
	}

	if len(res.Triples) > 0 {
		s.MeanConfidence = confidenceSum / float64(len(res.Triples))
	}
	if res.Sentences > 0 {
		s.Coverage = float64(res.Covered) / float64(res.Sentences)
	}

	s.Signals = signals(res, s)
	return s
}

func signals(res *extract.Result, s model.Stats) []model.Signal {
	var out []model.Signal

	if res.Sentences > 0 && len(res.Triples) == 0 {
		out = append(out, model.Signal{
			Type:        model.SignalNoTriples,
			Severity:    model.SeverityWarning,
			Description: fmt.Sprintf("no pattern matched any of %d sentences", res.Sentences),
		})
		return out
	}

	if res.Sentences >= 4 && s.Coverage < 0.5 {
		out = append(out, model.Signal{
			Type:     model.SignalLowCoverage,
			Severity: model.SeverityWarning,
			Description: fmt.Sprintf("only %d of %d sentences produced candidates (%.0f%%)",
				res.Covered, res.Sentences, s.Coverage*100),
		})
	}

	if len(res.Triples) >= 5 {
		for rule, count := range s.ByRule {
			if float64(count) >= 0.9*float64(len(res.Triples)) {
				out = append(out, model.Signal{
					Type:        model.SignalRuleDominance,
					Severity:    model.SeverityInfo,
					Description: fmt.Sprintf("rule %s produced %d of %d triples", rule, count, len(res.Triples)),
				})
			}
		}
	}

	endpoints := 2 * len(res.Triples)
	if endpoints > 0 {
		generic := s.ByType[model.EntityGeneric]
		if float64(generic) >= 0.7*float64(endpoints) {
			out = append(out, model.Signal{
				Type:        model.SignalUntypedEntities,
				Severity:    model.SeverityInfo,
				Description: fmt.Sprintf("%d of %d endpoints have no keyword type", generic, endpoints),
			})
		}
	}

	return out
}
