package elasticsearch

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/elastic/elastic-transport-go/v8/elastictransport"
	"github.com/elastic/go-elasticsearch/v8"
	"go.uber.org/zap"

	"teeup_backend/internal/config"
)

// ESClientWrapper wraps the elasticsearch.Client.
// This can help Wire disambiguate types, especially from external modules.
type ESClientWrapper struct {
	*elasticsearch.Client
}

// ZapLogger is an adapter from zap.Logger to elastictransport.Logger.
type ZapLogger struct {
	logger *zap.Logger
}

var _ elastictransport.Logger = (*ZapLogger)(nil)

// LogRoundTrip prints the request-response metrics.
func (l *ZapLogger) LogRoundTrip(req *http.Request, res *http.Response, err error, start time.Time, dur time.Duration) error {
	var statusCode int
	if res != nil {
		statusCode = res.StatusCode
	}

	l.logger.Debug("Elasticsearch RoundTrip",
		zap.String("method", req.Method),
		zap.String("url", req.URL.String()),
		zap.Int("status_code", statusCode),
		zap.Duration("duration", dur),
		zap.Error(err),
	)
	return nil
}

// RequestBodyEnabled makes the client pass a copy of request body to the logger.
func (l *ZapLogger) RequestBodyEnabled() bool { return false }

// ResponseBodyEnabled makes the client pass a copy of response body to the logger.
func (l *ZapLogger) ResponseBodyEnabled() bool { return false }

// NewClient creates the Elasticsearch client wrapper and pings the cluster.
// An empty ELASTICSEARCH_URL is not an error: it returns (nil, nil) and callers fall back
// to in-memory search.
func NewClient(cfg *config.Config, logger *zap.Logger) (*ESClientWrapper, error) {
	if cfg.ElasticsearchURL == "" {
		logger.Info("ELASTICSEARCH_URL is not configured; profile search uses the in-memory backend.")
		return nil, nil
	}

	esClient, err := newRawClient(elasticsearch.Config{Addresses: []string{cfg.ElasticsearchURL}}, logger)
	if err != nil {
		return nil, err
	}

	res, err := esClient.Info()
	if err != nil {
		logger.Error("Error pinging Elasticsearch", zap.Error(err))
		return nil, fmt.Errorf("esClient.Info: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		var e map[string]interface{}
		if err := decodeJSON(res.Body, &e); err != nil {
			logger.Error("Error decoding Elasticsearch error response", zap.Error(err), zap.String("status", res.Status()))
			return nil, fmt.Errorf("error decoding Elasticsearch error response: %s", res.Status())
		}
		logger.Error("Elasticsearch client initialization error", zap.String("status", res.Status()), zap.Any("error_details", e))
		return nil, fmt.Errorf("elasticsearch client initialization error: %s", res.Status())
	}

	logger.Info("Elasticsearch client initialized and connected successfully", zap.String("url", cfg.ElasticsearchURL), zap.String("es_version", elasticsearch.Version))
	return &ESClientWrapper{Client: esClient}, nil
}

// NewClientWithTransport builds a wrapper over a custom transport without pinging.
// Used by tests and tools that already know the cluster is reachable.
func NewClientWithTransport(transport http.RoundTripper, logger *zap.Logger) (*ESClientWrapper, error) {
	esClient, err := newRawClient(elasticsearch.Config{
		Addresses: []string{"http://localhost:9200"},
		Transport: transport,
	}, logger)
	if err != nil {
		return nil, err
	}
	return &ESClientWrapper{Client: esClient}, nil
}

func newRawClient(esCfg elasticsearch.Config, logger *zap.Logger) (*elasticsearch.Client, error) {
	esCfg.Logger = &ZapLogger{logger: logger.Named("elasticsearch_client")}
	// Retry on 429 TooManyRequests and 502/503/504.
	esCfg.RetryOnStatus = []int{502, 503, 504, 429}
	esCfg.RetryBackoff = func(i int) time.Duration {
		return time.Duration(i) * 100 * time.Millisecond
	}
	esCfg.MaxRetries = 5

	esClient, err := elasticsearch.NewClient(esCfg)
	if err != nil {
		logger.Error("Error creating Elasticsearch client", zap.Error(err))
		return nil, fmt.Errorf("elasticsearch.NewClient: %w", err)
	}
	return esClient, nil
}

func decodeJSON(body io.Reader, target interface{}) error {
	if body == nil {
		return fmt.Errorf("response body is nil")
	}
	raw, err := io.ReadAll(body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}
	if err := json.Unmarshal(raw, target); err != nil {
		return fmt.Errorf("failed to decode JSON response (body: %s): %w", string(raw), err)
	}
	return nil
}
