package raw365

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/gambizardonkick/aetricrewardsdata/internal/upstream"
	"github.com/gambizardonkick/aetricrewardsdata/pkg/contracts"
	"github.com/gambizardonkick/aetricrewardsdata/pkg/models"
)

const (
	defaultBaseURL  = "https://api.raw365.gg"
	leaderboardPath = "/affiliates/leaderboard"
	userAgent       = "aetricrewardsdata/1.0 (Aetric Rewards Leaderboards)"
	timeout         = 10 * time.Second
)

// Client implements the AffiliateAdapter interface for the Raw365 affiliate
// leaderboard API. Unlike Rainbet, the window is sent as full ISO-8601
// instants (start/end).
type Client struct {
	apiKey    string
	baseURL   string
	requester *upstream.Requester
}

// Ensure Client implements AffiliateAdapter
var _ contracts.AffiliateAdapter = (*Client)(nil)

// NewClient creates a new Raw365 client with an injected API key and an
// optional base URL override.
func NewClient(apiKey, baseURL string) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		apiKey:    apiKey,
		baseURL:   strings.TrimRight(baseURL, "/"),
		requester: upstream.NewRequester(timeout, userAgent),
	}
}

// FetchWagers retrieves referred-user wager totals for the given window.
func (c *Client) FetchWagers(ctx context.Context, window models.TimeWindow) ([]models.WagerRecord, error) {
	params := url.Values{}
	params.Set("start", window.Start.UTC().Format(time.RFC3339))
	params.Set("end", window.End.UTC().Format(time.RFC3339))
	params.Set("key", c.apiKey)

	fullURL := fmt.Sprintf("%s%s?%s", c.baseURL, leaderboardPath, params.Encode())

	body, err := c.requester.Get(ctx, fullURL)
	if err != nil {
		return nil, fmt.Errorf("fetch leaderboard failed: %w", err)
	}

	var apiResp resultsResponse
	if err := json.Unmarshal(body, &apiResp); err != nil {
		return nil, fmt.Errorf("parse leaderboard response: %s: %w", err, contracts.ErrMalformedPayload)
	}
	if apiResp.Results == nil {
		return nil, fmt.Errorf("results field missing: %w", contracts.ErrMalformedPayload)
	}

	records := make([]models.WagerRecord, 0, len(apiResp.Results))
	for _, row := range apiResp.Results {
		records = append(records, models.WagerRecord{
			Identifier: row.Username,
			Amount:     row.Wager,
		})
	}
	return records, nil
}

// API response structures matching the Raw365 leaderboard JSON format

type resultsResponse struct {
	Results []result `json:"results"`
}

type result struct {
	Username string  `json:"username"`
	Wager    float64 `json:"wager"`
}
