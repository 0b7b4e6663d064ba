package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/hamed0406/servicecheck/internal/domain"
)

// Store keeps the latest result per target name. Names are not required
// to be unique, so a later result for the same name replaces the earlier
// one.
type Store struct {
	mu      sync.RWMutex
	results map[string]domain.Result
}

func New() *Store {
	return &Store{results: make(map[string]domain.Result)}
}

func (s *Store) Put(ctx context.Context, r domain.Result) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.results[r.Target.Name] = r
	return nil
}

func (s *Store) Latest(ctx context.Context) ([]domain.Result, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Result, 0, len(s.results))
	for _, r := range s.results {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Target.Name < out[j].Target.Name })
	return out, nil
}
