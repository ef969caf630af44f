package memory

import (
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/patrickmn/go-cache"
)

// EmbeddingCache memoizes query-text embeddings so repeated retrievals over
// the same text (a common pattern when a grader re-runs a comparison) skip
// the embedding gateway round trip. Entries are keyed by content hash, not by
// raw text, to keep key sizes bounded.
type EmbeddingCache struct {
	cache *cache.Cache
}

func NewEmbeddingCache() *EmbeddingCache {
	// Embeddings for a fixed model are deterministic, so a long TTL is safe;
	// the hour cap just bounds memory on busy instances.
	c := cache.New(1*time.Hour, 10*time.Minute)
	return &EmbeddingCache{
		cache: c,
	}
}

func key(text string) string {
	sum := sha256.Sum256([]byte(text))
	return hex.EncodeToString(sum[:])
}

func (r *EmbeddingCache) Set(text string, embedding []float32) {
	r.cache.Set(key(text), embedding, cache.DefaultExpiration)
}

func (r *EmbeddingCache) Get(text string) ([]float32, bool) {
	if x, found := r.cache.Get(key(text)); found {
		return x.([]float32), true
	}
	return nil, false
}
