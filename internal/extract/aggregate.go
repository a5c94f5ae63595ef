package extract

import (
	"sort"

	"github.com/tripod-nlp/tripod/internal/model"
)

// Aggregate deduplicates triples by (subject, relation, object) and orders
// them by confidence, highest first. The first-constructed instance of a
// key wins, keeping its type, confidence and rule provenance. The sort is
// stable, so equal confidences preserve construction order, and running
// Aggregate over its own output is a no-op.
func Aggregate(triples []model.Triple) []model.Triple {
	seen := make(map[string]bool, len(triples))
	unique := make([]model.Triple, 0, len(triples))

	for _, t := range triples {
		key := t.Key()
		if seen[key] {
			continue
		}
		seen[key] = true
		unique = append(unique, t)
	}

	sort.SliceStable(unique, func(i, j int) bool {
		return unique[i].Confidence > unique[j].Confidence
	})

	return unique
}
