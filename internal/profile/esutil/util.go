package esutil

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"teeup_backend/internal/profile"
)

// ProfileToElasticsearchDoc converts a catalog entry to its Elasticsearch document.
func ProfileToElasticsearchDoc(e *profile.Entry) (string, error) {
	if e == nil {
		return "", errors.New("profile entry cannot be nil")
	}
	if e.Slug == "" {
		return "", errors.New("profile entry has no slug")
	}

	p := e.Profile
	highlights := make([]string, 0, len(p.Highlights))
	for _, h := range p.Highlights {
		highlights = append(highlights, strings.Join([]string{h.Label, h.Value, h.Detail}, " "))
	}
	var specValues []string
	for _, g := range p.SpecGroups {
		for _, s := range g.Specs {
			specValues = append(specValues, s.Value)
		}
	}
	testimonials := make([]string, 0, len(p.Testimonials))
	for _, t := range p.Testimonials {
		testimonials = append(testimonials, t.Quote)
	}

	doc := map[string]interface{}{
		"slug":         e.Slug,
		"name":         p.Profile.Name,
		"title":        p.Profile.Title,
		"subtitle":     p.Profile.Subtitle,
		"summary":      p.Profile.Summary,
		"hero_image":   p.Profile.HeroImage,
		"highlights":   highlights,
		"spec_values":  specValues,
		"testimonials": testimonials,
	}

	docBytes, err := json.Marshal(doc)
	if err != nil {
		return "", fmt.Errorf("error marshalling profile to JSON for ES: %w", err)
	}
	return string(docBytes), nil
}

// BuildBulkBody renders the NDJSON body of a bulk index request for the entries.
// Entries that fail conversion are skipped and reported by slug.
func BuildBulkBody(index string, entries []profile.Entry) (body string, indexed []string, failed map[string]error) {
	var b strings.Builder
	failed = make(map[string]error)
	for i := range entries {
		e := &entries[i]
		docJSON, err := ProfileToElasticsearchDoc(e)
		if err != nil {
			failed[e.Slug] = err
			continue
		}
		fmt.Fprintf(&b, `{ "index" : { "_index" : "%s", "_id" : "%s" } }%s`, index, e.Slug, "\n")
		b.WriteString(docJSON)
		b.WriteString("\n")
		indexed = append(indexed, e.Slug)
	}
	return b.String(), indexed, failed
}
