package rainbet

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/gambizardonkick/aetricrewardsdata/internal/upstream"
	"github.com/gambizardonkick/aetricrewardsdata/pkg/contracts"
	"github.com/gambizardonkick/aetricrewardsdata/pkg/models"
)

const (
	defaultBaseURL = "https://services.rainbet.com"
	affiliatesPath = "/v1/external/affiliates"
	userAgent      = "aetricrewardsdata/1.0 (Aetric Rewards Leaderboards)"
	dateFormat     = "2006-01-02"
	timeout        = 10 * time.Second
)

// Client implements the AffiliateAdapter interface for the Rainbet external
// affiliates API. The window is sent at date granularity (start_at/end_at).
type Client struct {
	apiKey    string
	baseURL   string
	requester *upstream.Requester
}

// Ensure Client implements AffiliateAdapter
var _ contracts.AffiliateAdapter = (*Client)(nil)

// NewClient creates a new Rainbet affiliates client. baseURL may be empty to
// use the production endpoint; the API key is always injected, never baked in.
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
	params.Set("start_at", window.Start.UTC().Format(dateFormat))
	params.Set("end_at", window.End.UTC().Format(dateFormat))
	params.Set("key", c.apiKey)

	fullURL := fmt.Sprintf("%s%s?%s", c.baseURL, affiliatesPath, params.Encode())

	body, err := c.requester.Get(ctx, fullURL)
	if err != nil {
		return nil, fmt.Errorf("fetch affiliates failed: %w", err)
	}

	var apiResp affiliatesResponse
	if err := json.Unmarshal(body, &apiResp); err != nil {
		return nil, fmt.Errorf("parse affiliates response: %s: %w", err, contracts.ErrMalformedPayload)
	}
	if apiResp.Affiliates == nil {
		return nil, fmt.Errorf("affiliates field missing: %w", contracts.ErrMalformedPayload)
	}

	return parseAffiliates(apiResp.Affiliates)
}

// parseAffiliates converts API rows to wager records. Rainbet reports
// wagered_amount as a decimal string.
func parseAffiliates(rows []affiliate) ([]models.WagerRecord, error) {
	records := make([]models.WagerRecord, 0, len(rows))
	for _, row := range rows {
		amount, err := strconv.ParseFloat(row.WageredAmount, 64)
		if err != nil {
			return nil, fmt.Errorf("wagered_amount %q: %w", row.WageredAmount, contracts.ErrMalformedPayload)
		}
		records = append(records, models.WagerRecord{
			Identifier: row.Username,
			Amount:     amount,
		})
	}
	return records, nil
}

// API response structures matching the Rainbet affiliates JSON format

type affiliatesResponse struct {
	Affiliates []affiliate `json:"affiliates"`
}

type affiliate struct {
	Username      string `json:"username"`
	WageredAmount string `json:"wagered_amount"`
}
