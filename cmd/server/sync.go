package main

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	platformElasticsearch "teeup_backend/internal/platform/elasticsearch"
	"teeup_backend/internal/profile"
	"teeup_backend/internal/profile/esutil"

	"github.com/elastic/go-elasticsearch/v8/esapi"
	"go.uber.org/zap"
)

type bulkResponse struct {
	Errors bool `json:"errors"`
	Items  []struct {
		Index struct {
			ID     string                 `json:"_id"`
			Status int                    `json:"status"`
			Error  map[string]interface{} `json:"error,omitempty"`
		} `json:"index"`
	} `json:"items"`
}

// runProfileSync indexes every catalog entry into the profiles index in batches.
func runProfileSync(
	ctx context.Context,
	store *profile.Store,
	esClient *platformElasticsearch.ESClientWrapper,
	logger *zap.Logger,
	batchSize int,
	esRefresh string,
) error {
	if batchSize <= 0 {
		return fmt.Errorf("batch size must be positive, got %d", batchSize)
	}
	entries := store.Entries()
	logger.Info("Starting profile synchronization to Elasticsearch...",
		zap.Int("profiles", len(entries)),
		zap.Int("batchSize", batchSize),
		zap.String("esRefreshPolicy", esRefresh),
	)

	totalSynced, totalFailed := 0, 0
	for start, batchNumber := 0, 1; start < len(entries); start, batchNumber = start+batchSize, batchNumber+1 {
		end := start + batchSize
		if end > len(entries) {
			end = len(entries)
		}

		body, indexed, failed := esutil.BuildBulkBody(platformElasticsearch.ProfilesIndexName, entries[start:end])
		for slug, err := range failed {
			logger.Error("Failed to convert profile to Elasticsearch document", zap.String("slug", slug), zap.Error(err))
		}
		totalFailed += len(failed)
		if len(indexed) == 0 {
			logger.Info("No documents to index in current batch.", zap.Int("batchNumber", batchNumber))
			continue
		}

		synced, batchFailed := sendBulk(ctx, esClient, logger, body, indexed, esRefresh, batchNumber)
		totalSynced += synced
		totalFailed += batchFailed
		logger.Info("Batch processed.",
			zap.Int("batchNumber", batchNumber),
			zap.Int("syncedInBatch", synced),
			zap.Int("failedInBatch", batchFailed),
		)
	}

	logger.Info("Profile synchronization process finished.",
		zap.Int("totalProfilesSynced", totalSynced),
		zap.Int("totalProfilesFailed", totalFailed),
	)
	if totalFailed > 0 {
		return fmt.Errorf("%d profiles failed to sync", totalFailed)
	}
	return nil
}

func sendBulk(
	ctx context.Context,
	esClient *platformElasticsearch.ESClientWrapper,
	logger *zap.Logger,
	body string,
	indexed []string,
	esRefresh string,
	batchNumber int,
) (synced, failed int) {
	req := esapi.BulkRequest{
		Body:    strings.NewReader(body),
		Refresh: esRefresh,
	}
	res, err := req.Do(ctx, esClient.Client)
	if err != nil {
		logger.Error("Failed to send bulk request to Elasticsearch", zap.Error(err), zap.Int("batchNumber", batchNumber))
		return 0, len(indexed)
	}
	defer res.Body.Close()

	if res.IsError() {
		logger.Error("Elasticsearch bulk request returned an error", zap.String("status", res.Status()), zap.Int("batchNumber", batchNumber))
	}

	var parsed bulkResponse
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		logger.Error("Failed to parse Elasticsearch bulk response body", zap.Error(err), zap.Int("batchNumber", batchNumber))
		return 0, len(indexed)
	}
	if res.IsError() && len(parsed.Items) == 0 {
		return 0, len(indexed)
	}

	for _, item := range parsed.Items {
		if item.Index.Error != nil {
			logger.Error("Failed to index document in bulk batch",
				zap.String("slug", item.Index.ID),
				zap.Any("error", item.Index.Error),
				zap.Int("status", item.Index.Status),
			)
			failed++
			continue
		}
		synced++
	}
	if missing := len(indexed) - len(parsed.Items); missing > 0 {
		logger.Warn("Bulk response is missing items for indexed documents", zap.Int("missing", missing), zap.Int("batchNumber", batchNumber))
		failed += missing
	}
	return synced, failed
}
