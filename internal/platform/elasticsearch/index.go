package elasticsearch

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/elastic/go-elasticsearch/v8/esapi"
	"go.uber.org/zap"
)

const ProfilesIndexName = "profiles"

// ProfilesMapping returns the JSON mapping of the profiles index.
func ProfilesMapping() (string, error) {
	text := map[string]interface{}{"type": "text"}
	mapping := map[string]interface{}{
		"mappings": map[string]interface{}{
			"properties": map[string]interface{}{
				"slug":         map[string]interface{}{"type": "keyword"},
				"name":         map[string]interface{}{"type": "text", "fields": map[string]interface{}{"keyword": map[string]interface{}{"type": "keyword", "ignore_above": 256}}},
				"title":        text,
				"subtitle":     text,
				"summary":      text,
				"hero_image":   map[string]interface{}{"type": "keyword", "index": false},
				"highlights":   text,
				"spec_values":  text,
				"testimonials": text,
			},
		},
	}
	mappingBytes, err := json.Marshal(mapping)
	if err != nil {
		return "", fmt.Errorf("error marshalling profiles mapping to JSON: %w", err)
	}
	return string(mappingBytes), nil
}

// EnsureProfilesIndex creates the profiles index if it does not already exist.
func EnsureProfilesIndex(ctx context.Context, client *ESClientWrapper, logger *zap.Logger) error {
	mappingJSON, err := ProfilesMapping()
	if err != nil {
		return err
	}
	return ensureIndex(ctx, client, ProfilesIndexName, mappingJSON, logger)
}

func ensureIndex(ctx context.Context, client *ESClientWrapper, index, mappingJSON string, logger *zap.Logger) error {
	log := logger.Named("elasticsearch_index_setup").With(zap.String("index_name", index))

	res, err := esapi.IndicesExistsRequest{Index: []string{index}}.Do(ctx, client.Client)
	if err != nil {
		log.Error("Error checking if index exists", zap.Error(err))
		return fmt.Errorf("error checking if index %s exists: %w", index, err)
	}
	res.Body.Close()

	if res.StatusCode == http.StatusOK {
		log.Info("Index already exists")
		return nil
	}
	if res.StatusCode != http.StatusNotFound {
		log.Error("Unexpected status checking index", zap.String("status", res.Status()))
		return fmt.Errorf("error checking if index %s exists: status %s", index, res.Status())
	}

	createRes, err := esapi.IndicesCreateRequest{
		Index: index,
		Body:  strings.NewReader(mappingJSON),
	}.Do(ctx, client.Client)
	if err != nil {
		log.Error("Error creating index", zap.Error(err))
		return fmt.Errorf("error creating index %s: %w", index, err)
	}
	defer createRes.Body.Close()

	if createRes.IsError() {
		var errorBody map[string]interface{}
		if err := decodeJSON(createRes.Body, &errorBody); err != nil {
			log.Error("Failed to parse index creation error response body", zap.Error(err), zap.String("status", createRes.Status()))
		} else {
			log.Error("Failed to create index", zap.String("status", createRes.Status()), zap.Any("error_details", errorBody))
		}
		return fmt.Errorf("failed to create index %s: status %s", index, createRes.Status())
	}

	log.Info("Index created successfully")
	return nil
}
