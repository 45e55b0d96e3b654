// File: internal/profile/search.go
package profile

import (
	"context"
	"strings"
)

// Searcher finds profiles matching a free-text query.
type Searcher interface {
	Search(ctx context.Context, query string) ([]Summary, error)
}

// MemorySearcher matches case-insensitive substrings over the catalog.
type MemorySearcher struct {
	store *Store
}

func NewMemorySearcher(store *Store) *MemorySearcher {
	return &MemorySearcher{store: store}
}

// Search returns matches in catalog order. An empty query matches everything.
func (m *MemorySearcher) Search(_ context.Context, query string) ([]Summary, error) {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return m.store.List(), nil
	}
	out := []Summary{}
	for _, e := range m.store.Entries() {
		if matches(e.Profile, q) {
			out = append(out, e.summary())
		}
	}
	return out, nil
}

func matches(p Profile, q string) bool {
	fields := []string{p.Profile.Name, p.Profile.Title, p.Profile.Subtitle, p.Profile.Summary}
	for _, g := range p.SpecGroups {
		for _, s := range g.Specs {
			fields = append(fields, s.Value)
		}
	}
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), q) {
			return true
		}
	}
	return false
}
