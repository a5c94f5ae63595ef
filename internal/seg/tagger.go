// Package seg wraps the Chinese word-segmentation and POS-tagging engine
// behind a small interface so the extraction core can be tested without a
// dictionary.
//
// Tag vocabulary follows the jieba conventions: "v*" verb-like, "n*"
// noun-like (nr person, ns place, nt institution, nz other proper noun),
// "p" preposition, "uj" the structural particle 的.
package seg

import (
	"fmt"

	"github.com/go-ego/gse"
	"github.com/go-ego/gse/hmm/pos"

	"github.com/tripod-nlp/tripod/internal/model"
)

// Tagger segments a sentence and assigns a part-of-speech tag to each word.
type Tagger interface {
	Tag(sentence string) []model.Token
}

// VocabEntry is one domain term registered into the segmenter with a
// forced POS tag, applied before any tagging occurs.
type VocabEntry struct {
	Term string
	Tag  string
}

// GseTagger is the gse-backed Tagger. The segmenter is initialized once at
// construction and read-only afterwards; one instance is safe for
// sequential and read-parallel use.
type GseTagger struct {
	seg gse.Segmenter
	pos pos.Segmenter
}

// NewGseTagger loads the built-in Chinese dictionary and registers the
// given vocabulary. Failure here is fatal for the caller: without a
// dictionary nothing can be tagged, so the error is surfaced at startup
// rather than tolerated per sentence.
func NewGseTagger(vocab []VocabEntry) (*GseTagger, error) {
	t := &GseTagger{}

	if err := t.seg.LoadDict(); err != nil {
		return nil, fmt.Errorf("load segmenter dictionary: %w", err)
	}

	for _, v := range vocab {
		if err := t.seg.AddToken(v.Term, 100, v.Tag); err != nil {
			return nil, fmt.Errorf("register vocabulary term %q: %w", v.Term, err)
		}
	}

	t.pos.WithGse(t.seg)
	return t, nil
}

// Tag returns the (surface, tag) tokens of the sentence in text order.
func (t *GseTagger) Tag(sentence string) []model.Token {
	segs := t.pos.Cut(sentence, true)

	tokens := make([]model.Token, 0, len(segs))
	for _, s := range segs {
		if s.Text == "" {
			continue
		}
		tokens = append(tokens, model.Token{Surface: s.Text, Tag: s.Pos})
	}
	return tokens
}
