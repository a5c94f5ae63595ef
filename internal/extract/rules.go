package extract

import (
	"strings"

	"github.com/tripod-nlp/tripod/internal/model"
)

// rule is one syntactic pattern over a tagged sentence. Rules share no
// state and do not consume tokens: one token may trigger several rules.
type rule interface {
	Kind() model.RuleKind
	Apply(tokens []model.Token) []model.Triple
}

// rulesFor returns the rules in their fixed application order. The order
// does not change the final ranking, but keeps candidate construction
// order, and with it dedup tie-breaks, deterministic.
func rulesFor(lex Lexicon) []rule {
	return []rule{
		svoRule{lex: lex},
		prepRule{lex: lex},
		apposRule{lex: lex},
		attRule{},
	}
}

// newTriple fills in endpoint types and the rule-determined confidence.
// Callers guarantee non-empty subject and object.
func newTriple(subject, relation, object string, kind model.RuleKind) model.Triple {
	return model.Triple{
		Subject:     subject,
		Relation:    relation,
		Object:      object,
		SubjectType: ClassifyEntity(subject),
		ObjectType:  ClassifyEntity(object),
		Confidence:  model.RuleConfidence(kind),
		Rule:        kind,
	}
}

// svoRule emits (subject, verb, object) for every core verb with noun runs
// on both sides.
type svoRule struct {
	lex Lexicon
}

func (r svoRule) Kind() model.RuleKind { return model.RuleSVO }

func (r svoRule) Apply(tokens []model.Token) []model.Triple {
	var out []model.Triple
	for i, tok := range tokens {
		if !r.lex.CoreVerbs[tok.Surface] || !strings.HasPrefix(tok.Tag, "v") {
			continue
		}
		subject, ok := spanBefore(tokens, i)
		if !ok {
			continue
		}
		object, ok := spanAfter(tokens, i)
		if !ok {
			continue
		}
		out = append(out, newTriple(subject, tok.Surface, object, model.RuleSVO))
	}
	return out
}

// prepRule handles verb + prepositional phrase: the relation is the verb
// surface immediately followed by the preposition surface, the object is
// the noun run after the preposition, and the subject is the noun run
// before the governing verb.
type prepRule struct {
	lex Lexicon
}

func (r prepRule) Kind() model.RuleKind { return model.RulePREP }

func (r prepRule) Apply(tokens []model.Token) []model.Triple {
	var out []model.Triple
	for i, tok := range tokens {
		if !r.lex.Prepositions[tok.Surface] || tok.Tag != "p" {
			continue
		}

		verb, ok := findVerbBefore(tokens, i, r.lex)
		if !ok {
			continue
		}
		object, ok := spanAfter(tokens, i)
		if !ok {
			continue
		}

		// The subject is anchored at the first occurrence of the verb
		// surface in the sentence. When the same verb also appears in an
		// earlier, unrelated clause this picks the wrong anchor; the
		// behavior is kept because downstream consumers compare against
		// it.
		verbIndex := findWordIndex(tokens, verb)
		if verbIndex < 0 {
			continue
		}
		subject, ok := spanBefore(tokens, verbIndex)
		if !ok {
			continue
		}

		out = append(out, newTriple(subject, verb+tok.Surface, object, model.RulePREP))
	}
	return out
}

// findVerbBefore scans backward from the anchor for the nearest core verb.
func findVerbBefore(tokens []model.Token, anchor int, lex Lexicon) (string, bool) {
	for i := anchor - 1; i >= 0; i-- {
		if strings.HasPrefix(tokens[i].Tag, "v") && lex.CoreVerbs[tokens[i].Surface] {
			return tokens[i].Surface, true
		}
	}
	return "", false
}

// findWordIndex returns the first index whose surface equals word, or -1.
func findWordIndex(tokens []model.Token, word string) int {
	for i, tok := range tokens {
		if tok.Surface == word {
			return i
		}
	}
	return -1
}

// apposRule handles copular constructions. Whichever relation verb
// triggered the match, the relation is normalized to the literal 是.
type apposRule struct {
	lex Lexicon
}

func (r apposRule) Kind() model.RuleKind { return model.RuleAPPOS }

func (r apposRule) Apply(tokens []model.Token) []model.Triple {
	var out []model.Triple
	for i, tok := range tokens {
		if !r.lex.RelationVerbs[tok.Surface] || tok.Tag != "v" {
			continue
		}
		subject, ok := spanBefore(tokens, i)
		if !ok {
			continue
		}
		object, ok := spanAfter(tokens, i)
		if !ok {
			continue
		}
		out = append(out, newTriple(subject, "是", object, model.RuleAPPOS))
	}
	return out
}

// attRule handles the attributive 的 construction, linking a modifier to
// its head noun ("X的Y").
type attRule struct{}

func (r attRule) Kind() model.RuleKind { return model.RuleATT }

func (r attRule) Apply(tokens []model.Token) []model.Triple {
	var out []model.Triple
	for i, tok := range tokens {
		if tok.Surface != "的" || tok.Tag != "uj" {
			continue
		}
		modifier, ok := spanBefore(tokens, i)
		if !ok {
			continue
		}
		head, ok := spanAfter(tokens, i)
		if !ok {
			continue
		}
		out = append(out, newTriple(modifier, "的", head, model.RuleATT))
	}
	return out
}
