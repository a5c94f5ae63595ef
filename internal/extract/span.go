package extract

import (
	"strings"

	"github.com/tripod-nlp/tripod/internal/model"
)

// isEntityTag reports whether a POS tag marks a noun-like token. The "n"
// prefix covers common nouns and the nr/ns/nt subtypes as well as nz, the
// tag carried by registered domain vocabulary.
func isEntityTag(tag string) bool {
	return strings.HasPrefix(tag, "n")
}

// spanBefore collects the contiguous noun-like run ending closest before
// the anchor, concatenated in sentence order. Non-entity tokens between
// the anchor and the run are skipped; once the run has started, the first
// non-entity token terminates the scan. Returns false when no entity token
// exists before the anchor.
func spanBefore(tokens []model.Token, anchor int) (string, bool) {
	var parts []string
	for i := anchor - 1; i >= 0; i-- {
		if isEntityTag(tokens[i].Tag) {
			parts = append(parts, tokens[i].Surface)
		} else if len(parts) > 0 {
			break
		}
	}
	if len(parts) == 0 {
		return "", false
	}
	// Collected back-to-front; restore sentence order.
	var b strings.Builder
	for i := len(parts) - 1; i >= 0; i-- {
		b.WriteString(parts[i])
	}
	return b.String(), true
}

// spanAfter is the forward mirror of spanBefore, collecting the noun-like
// run starting closest after the anchor.
func spanAfter(tokens []model.Token, anchor int) (string, bool) {
	var b strings.Builder
	found := false
	for i := anchor + 1; i < len(tokens); i++ {
		if isEntityTag(tokens[i].Tag) {
			b.WriteString(tokens[i].Surface)
			found = true
		} else if found {
			break
		}
	}
	if !found {
		return "", false
	}
	return b.String(), true
}
