// Package feed pulls normalized market pair records from the odds
// comparison service, one category at a time.
package feed

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	json "github.com/goccy/go-json"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/polymix/polymix/pkg/types"
)

// Feed fetches the pair records currently listed for one category.
type Feed interface {
	Fetch(ctx context.Context, category string) ([]types.MarketPairRecord, error)
}

// Client is an HTTP client for the odds feed.
type Client struct {
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
	logger     *zap.Logger
}

// ClientConfig holds feed client configuration.
type ClientConfig struct {
	BaseURL        string
	Timeout        time.Duration
	RequestsPerSec float64
	Logger         *zap.Logger
}

// NewClient creates a new feed client.
func NewClient(cfg *ClientConfig) *Client {
	return &Client{
		baseURL: cfg.BaseURL,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		limiter: rate.NewLimiter(rate.Limit(cfg.RequestsPerSec), 1),
		logger:  cfg.Logger,
	}
}

// feedResponse is the upstream envelope around pair records.
type feedResponse struct {
	Success bool                     `json:"success"`
	Sport   string                   `json:"sport"`
	Error   string                   `json:"error"`
	Games   []types.MarketPairRecord `json:"games"`
}

// Fetch retrieves pair records for a category from /api/odds/<category>.
// Any transport, status or decode failure is wrapped in
// types.FeedUnavailable so callers can degrade per category.
func (c *Client) Fetch(ctx context.Context, category string) ([]types.MarketPairRecord, error) {
	err := c.limiter.Wait(ctx)
	if err != nil {
		return nil, &types.FeedUnavailable{Category: category, Err: err}
	}

	requestURL := fmt.Sprintf("%s/api/odds/%s", c.baseURL, category)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, &types.FeedUnavailable{Category: category, Err: fmt.Errorf("create request: %w", err)}
	}
	req.Header.Set("Accept", "application/json")

	c.logger.Debug("feed-fetching",
		zap.String("category", category),
		zap.String("url", requestURL))

	FetchesTotal.WithLabelValues(category).Inc()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		FetchErrorsTotal.WithLabelValues(category).Inc()
		return nil, &types.FeedUnavailable{Category: category, Err: fmt.Errorf("do request: %w", err)}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		FetchErrorsTotal.WithLabelValues(category).Inc()
		body, _ := io.ReadAll(resp.Body)
		return nil, &types.FeedUnavailable{
			Category: category,
			Err:      fmt.Errorf("unexpected status code %d: %s", resp.StatusCode, string(body)),
		}
	}

	var payload feedResponse
	err = json.NewDecoder(resp.Body).Decode(&payload)
	if err != nil {
		FetchErrorsTotal.WithLabelValues(category).Inc()
		return nil, &types.FeedUnavailable{Category: category, Err: fmt.Errorf("decode response: %w", err)}
	}

	if !payload.Success {
		FetchErrorsTotal.WithLabelValues(category).Inc()
		return nil, &types.FeedUnavailable{
			Category: category,
			Err:      fmt.Errorf("upstream error: %s", payload.Error),
		}
	}

	records := payload.Games
	for i := range records {
		if records[i].Category == "" {
			records[i].Category = category
		}
		if records[i].GameKey == "" {
			records[i].GameKey = types.NormalizeGameKey(records[i].AwayCode, records[i].HomeCode)
		}
	}

	RecordsFetchedTotal.WithLabelValues(category).Add(float64(len(records)))
	c.logger.Debug("feed-fetched",
		zap.String("category", category),
		zap.Int("records", len(records)))

	return records, nil
}
