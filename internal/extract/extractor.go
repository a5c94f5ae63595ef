// Package extract implements the pattern-matching core: text
// normalization, the entity span finder, the four syntactic rules and the
// aggregator that turns per-sentence candidates into a ranked triple list.
package extract

import (
	"context"
	"sync"

	"github.com/tripod-nlp/tripod/internal/model"
	"github.com/tripod-nlp/tripod/internal/seg"
)

// Extractor turns raw text into a ranked, deduplicated triple list.
type Extractor struct {
	tagger          seg.Tagger
	rules           []rule
	sentenceWorkers int
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithSentenceWorkers enables bounded parallel sentence processing.
// Sentences are independent; results are merged back in sentence order, so
// the output is byte-identical to a sequential run.
func WithSentenceWorkers(n int) Option {
	return func(e *Extractor) {
		if n > 1 {
			e.sentenceWorkers = n
		}
	}
}

// NewExtractor builds an extractor around a tagger and a lexicon. The
// lexicon is copied into the rule set at construction and never consulted
// mutably afterwards.
func NewExtractor(tagger seg.Tagger, lex Lexicon, opts ...Option) *Extractor {
	e := &Extractor{
		tagger:          tagger,
		rules:           rulesFor(lex),
		sentenceWorkers: 1,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Result is the outcome of one document extraction.
type Result struct {
	Triples   []model.Triple // Deduplicated, confidence-descending
	Sentences int            // Valid sentences after normalization
	Covered   int            // Sentences that produced at least one candidate
}

// ExtractText runs the full normalize → tag → rules → aggregate flow.
// Empty or noise-only input yields an empty result, not an error; the only
// error path is context cancellation.
func (e *Extractor) ExtractText(ctx context.Context, text string) (*Result, error) {
	sentences := SplitSentences(text)
	if len(sentences) == 0 {
		return &Result{}, nil
	}

	perSentence := make([][]model.Triple, len(sentences))

	if e.sentenceWorkers > 1 {
		if err := e.extractParallel(ctx, sentences, perSentence); err != nil {
			return nil, err
		}
	} else {
		for i, sentence := range sentences {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			perSentence[i] = e.extractSentence(sentence)
		}
	}

	// Flatten in sentence order: construction order is sentence index,
	// then rule order, then token position, which fixes dedup winners.
	var all []model.Triple
	covered := 0
	for _, candidates := range perSentence {
		if len(candidates) > 0 {
			covered++
		}
		all = append(all, candidates...)
	}

	return &Result{
		Triples:   Aggregate(all),
		Sentences: len(sentences),
		Covered:   covered,
	}, nil
}

// extractSentence applies every rule to one tagged sentence in fixed
// order.
func (e *Extractor) extractSentence(sentence string) []model.Triple {
	tokens := e.tagger.Tag(sentence)
	if len(tokens) == 0 {
		return nil
	}

	var out []model.Triple
	for _, r := range e.rules {
		out = append(out, r.Apply(tokens)...)
	}
	return out
}

// extractParallel fills perSentence with a bounded number of goroutines.
// Each slot is written by exactly one goroutine, indexed by sentence.
func (e *Extractor) extractParallel(ctx context.Context, sentences []string, perSentence [][]model.Triple) error {
	sem := make(chan struct{}, e.sentenceWorkers)
	var wg sync.WaitGroup

	for i, sentence := range sentences {
		if err := ctx.Err(); err != nil {
			break
		}

		wg.Add(1)
		sem <- struct{}{}
		go func(i int, sentence string) {
			defer wg.Done()
			defer func() { <-sem }()
			perSentence[i] = e.extractSentence(sentence)
		}(i, sentence)
	}

	wg.Wait()
	return ctx.Err()
}
