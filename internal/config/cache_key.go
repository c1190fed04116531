package config

import (
	"fmt"
)

type CacheKeyStruct struct{}

func NewCacheKeyStruct() *CacheKeyStruct {
	return &CacheKeyStruct{}
}

// SectionPoolKey returns the cache key for a section's eligible question
// pool, partitioned by session subject (quiz or flashcard). Class-wide pools
// are composed from section pools, so only section keys exist.
func (r *CacheKeyStruct) SectionPoolKey(sectionID, subject string) string {
	return fmt.Sprintf("pool:%s:%s", sectionID, subject)
}

// ScoredMarkerKey returns the idempotency-marker key recording that a
// resolvable session token has already been scored once.
func (r *CacheKeyStruct) ScoredMarkerKey(token string) string {
	return fmt.Sprintf("scored:%s", token)
}

var CacheKey = NewCacheKeyStruct()
