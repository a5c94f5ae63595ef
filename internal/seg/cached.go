package seg

import (
	"encoding/json"
	"time"

	"github.com/tripod-nlp/tripod/internal/cache"
	"github.com/tripod-nlp/tripod/internal/model"
)

// CachedTagger memoizes Tag results keyed by sentence content. News corpora
// repeat boilerplate sentences (agency lines, statement lead-ins), and
// HMM tagging dominates extraction time.
type CachedTagger struct {
	inner Tagger
	store cache.Cache
	ttl   time.Duration
}

// NewCachedTagger wraps inner with memoization through store.
func NewCachedTagger(inner Tagger, store cache.Cache, ttl time.Duration) *CachedTagger {
	return &CachedTagger{inner: inner, store: store, ttl: ttl}
}

// Tag returns the cached token sequence when present, delegating to the
// wrapped tagger otherwise. Cache failures fall through to the tagger.
func (t *CachedTagger) Tag(sentence string) []model.Token {
	key := cache.Key("tag", sentence)

	if data, found := t.store.Get(key); found {
		var tokens []model.Token
		if err := json.Unmarshal(data, &tokens); err == nil {
			return tokens
		}
	}

	tokens := t.inner.Tag(sentence)

	if data, err := json.Marshal(tokens); err == nil {
		_ = t.store.Set(key, data, t.ttl)
	}
	return tokens
}
