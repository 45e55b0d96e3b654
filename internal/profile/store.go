// File: internal/profile/store.go
package profile

import (
	"fmt"

	"github.com/gosimple/slug"
)

// Store is the read-only profile catalog. It is built once at startup and is safe for
// concurrent use since nothing mutates it afterwards.
type Store struct {
	entries     []Entry
	bySlug      map[string]int
	defaultSlug string
}

// NewStore validates the catalog and builds the store.
func NewStore(entries []Entry, defaultSlug string) (*Store, error) {
	if len(entries) == 0 {
		return nil, fmt.Errorf("profile catalog is empty")
	}
	s := &Store{
		entries:     make([]Entry, len(entries)),
		bySlug:      make(map[string]int, len(entries)),
		defaultSlug: defaultSlug,
	}
	copy(s.entries, entries)

	for i, e := range s.entries {
		if e.Slug == "" || !slug.IsSlug(e.Slug) {
			return nil, fmt.Errorf("profile slug %q is not URL-safe", e.Slug)
		}
		if _, dup := s.bySlug[e.Slug]; dup {
			return nil, fmt.Errorf("duplicate profile slug %q", e.Slug)
		}
		for _, section := range e.Profile.StorySections {
			if section.Align != AlignLeft && section.Align != AlignRight {
				return nil, fmt.Errorf("profile %q: story section %q has invalid align %q", e.Slug, section.Title, section.Align)
			}
		}
		if err := ValidateTheme(e.Theme.Merge(DefaultTheme())); err != nil {
			return nil, fmt.Errorf("profile %q: %w", e.Slug, err)
		}
		s.bySlug[e.Slug] = i
	}

	if _, ok := s.bySlug[defaultSlug]; !ok {
		return nil, fmt.Errorf("default profile slug %q is not in the catalog", defaultSlug)
	}
	return s, nil
}

// Get looks a profile up by its exact slug.
func (s *Store) Get(slug string) (Profile, bool) {
	i, ok := s.bySlug[slug]
	if !ok {
		return Profile{}, false
	}
	return s.entries[i].Profile, true
}

// List returns one summary per profile in catalog order.
func (s *Store) List() []Summary {
	out := make([]Summary, len(s.entries))
	for i, e := range s.entries {
		out[i] = e.summary()
	}
	return out
}

// Resolve returns the requested profile, or the default one with fellBack set.
func (s *Store) Resolve(slug string) (p Profile, fellBack bool) {
	if p, ok := s.Get(slug); ok {
		return p, false
	}
	p, _ = s.Get(s.defaultSlug)
	return p, true
}

// Slugs returns all slugs in catalog order.
func (s *Store) Slugs() []string {
	out := make([]string, len(s.entries))
	for i, e := range s.entries {
		out[i] = e.Slug
	}
	return out
}

// Theme returns the catalog theme of slug: DefaultTheme with the entry's overrides.
func (s *Store) Theme(slug string) (Theme, bool) {
	i, ok := s.bySlug[slug]
	if !ok {
		return Theme{}, false
	}
	return s.entries[i].Theme.Merge(DefaultTheme()), true
}

func (s *Store) DefaultSlug() string { return s.defaultSlug }

// Entries returns a copy of the catalog, used by search backends and index sync.
func (s *Store) Entries() []Entry {
	out := make([]Entry, len(s.entries))
	copy(out, s.entries)
	return out
}
