// File path: internal/kb/store.go
package kb

import (
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/Artzzx/lootforge/internal/common"
)

const profileCacheSize = 128

// Store owns the process-wide knowledge data: the mandatory build-profile
// dataset, the optional recommendation dataset, and an LRU cache of resolved
// profiles. Loading is lazy and happens at most once until Reset. The loaded
// documents are read-only, so concurrent compiles share them without
// locking; only the load itself and the cache are synchronized.
type Store struct {
	kbPath  string
	recPath string

	mu        sync.Mutex
	loaded    bool
	loadErr   error
	knowledge *KnowledgeBase
	recs      *Recommendations

	cache *lru.Cache[string, *ResolvedProfile]
}

// NewStore builds a store over the given dataset paths. Nothing is read
// until the first query.
func NewStore(kbPath, recPath string) *Store {
	cache, _ := lru.New[string, *ResolvedProfile](profileCacheSize)
	return &Store{kbPath: kbPath, recPath: recPath, cache: cache}
}

// NewStoreFromData wraps already-parsed documents; used by tests and by
// callers that source knowledge data elsewhere.
func NewStoreFromData(knowledge *KnowledgeBase, recs *Recommendations) *Store {
	cache, _ := lru.New[string, *ResolvedProfile](profileCacheSize)
	if recs == nil {
		recs = &Recommendations{Builds: map[string]RecBuild{}}
	}
	return &Store{loaded: true, knowledge: knowledge, recs: recs, cache: cache}
}

// ensureLoaded loads both datasets on first use. A knowledge-base failure is
// sticky and fatal for every subsequent query; a recommendation failure is
// absorbed by the loader.
func (s *Store) ensureLoaded() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.loaded {
		return s.loadErr
	}
	s.loaded = true
	s.knowledge, s.loadErr = LoadKnowledgeBase(s.kbPath)
	if s.loadErr != nil {
		return s.loadErr
	}
	s.recs = LoadRecommendations(s.recPath)
	return nil
}

// KnowledgeBase returns the loaded build-profile dataset.
func (s *Store) KnowledgeBase() (*KnowledgeBase, error) {
	if err := s.ensureLoaded(); err != nil {
		return nil, err
	}
	return s.knowledge, nil
}

// Recommendations returns the loaded recommendation dataset, which may be
// empty when the optional file was absent.
func (s *Store) Recommendations() (*Recommendations, error) {
	if err := s.ensureLoaded(); err != nil {
		return nil, err
	}
	return s.recs, nil
}

// Resolve runs the matcher for the query, serving repeated lookups from the
// profile cache. The returned profile is shared and must not be mutated.
func (s *Store) Resolve(q Query) (*ResolvedProfile, error) {
	if err := s.ensureLoaded(); err != nil {
		return nil, err
	}
	key := q.CacheKey()
	if cached, ok := s.cache.Get(key); ok {
		common.Logger().Debug("kb: profile cache hit", "key", key)
		return cached, nil
	}
	profile := Match(s.knowledge, s.recs, q)
	s.cache.Add(key, profile)
	return profile, nil
}

// Reset drops loaded data and cached profiles so the next query reloads from
// disk. Intended for tests and dataset refreshes.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loaded = false
	s.loadErr = nil
	s.knowledge = nil
	s.recs = nil
	s.cache.Purge()
}
