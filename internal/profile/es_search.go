// File: internal/profile/es_search.go
package profile

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"

	platformElasticsearch "teeup_backend/internal/platform/elasticsearch"

	"github.com/elastic/go-elasticsearch/v8/esapi"
	"go.uber.org/zap"
)

// ESSearcher queries the profiles index. Hits are mapped back onto the store so
// responses never contain stale catalog copy.
type ESSearcher struct {
	client *platformElasticsearch.ESClientWrapper
	store  *Store
	logger *zap.Logger
}

func NewESSearcher(client *platformElasticsearch.ESClientWrapper, store *Store, logger *zap.Logger) *ESSearcher {
	return &ESSearcher{client: client, store: store, logger: logger}
}

// ProvideSearcher picks Elasticsearch when a client is configured, memory otherwise.
func ProvideSearcher(client *platformElasticsearch.ESClientWrapper, store *Store, logger *zap.Logger) Searcher {
	if client == nil {
		return NewMemorySearcher(store)
	}
	return NewESSearcher(client, store, logger.Named("ProfileSearch"))
}

type esSearchResponse struct {
	Hits struct {
		Hits []struct {
			ID     string `json:"_id"`
			Source struct {
				Slug string `json:"slug"`
			} `json:"_source"`
		} `json:"hits"`
	} `json:"hits"`
}

func (s *ESSearcher) Search(ctx context.Context, query string) ([]Summary, error) {
	q := strings.TrimSpace(query)
	if q == "" {
		return s.store.List(), nil
	}

	body := map[string]interface{}{
		"size": len(s.store.Slugs()),
		"query": map[string]interface{}{
			"multi_match": map[string]interface{}{
				"query":  q,
				"fields": []string{"name^3", "title^2", "subtitle", "summary", "highlights", "spec_values", "testimonials"},
			},
		},
	}
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(body); err != nil {
		return nil, fmt.Errorf("encode profile search query: %w", err)
	}

	res, err := esapi.SearchRequest{
		Index: []string{platformElasticsearch.ProfilesIndexName},
		Body:  &buf,
	}.Do(ctx, s.client.Client)
	if err != nil {
		s.logger.Error("Profile search request failed", zap.Error(err))
		return nil, fmt.Errorf("profile search: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		s.logger.Error("Profile search returned an error", zap.String("status", res.Status()))
		return nil, fmt.Errorf("profile search: status %s", res.Status())
	}

	var parsed esSearchResponse
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("decode profile search response: %w", err)
	}

	index := make(map[string]Summary)
	for _, sum := range s.store.List() {
		index[sum.Slug] = sum
	}
	out := []Summary{}
	for _, hit := range parsed.Hits.Hits {
		slug := hit.Source.Slug
		if slug == "" {
			slug = hit.ID
		}
		if sum, ok := index[slug]; ok {
			out = append(out, sum)
		} else {
			s.logger.Warn("Search hit for unknown profile; index may be stale", zap.String("slug", slug))
		}
	}
	return out, nil
}
