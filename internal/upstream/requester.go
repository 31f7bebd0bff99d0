package upstream

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

const (
	maxRetries = 3
	retryDelay = 2 * time.Second
)

// Requester performs GET requests against upstream affiliate APIs. Both
// providers share one policy: a bounded per-request timeout and retry with
// exponential backoff on transport failures only. HTTP status errors abort
// immediately so bad request parameters are never retried.
type Requester struct {
	httpClient *http.Client
	userAgent  string
}

// NewRequester creates a requester with the given timeout and User-Agent.
func NewRequester(timeout time.Duration, userAgent string) *Requester {
	return &Requester{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		userAgent: userAgent,
	}
}

// Get fetches fullURL with bounded retry and returns the response body.
func (r *Requester) Get(ctx context.Context, fullURL string) ([]byte, error) {
	var lastErr error

	for attempt := 0; attempt < maxRetries; attempt++ {
		if attempt > 0 {
			// Exponential backoff
			backoff := retryDelay * time.Duration(1<<uint(attempt-1))
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(backoff):
			}
		}

		body, err := r.do(ctx, fullURL)
		if err == nil {
			return body, nil
		}

		var httpErr *HTTPError
		if errors.As(err, &httpErr) {
			return nil, err
		}

		lastErr = err
	}

	return nil, fmt.Errorf("max retries exceeded: %w", lastErr)
}

// do performs a single HTTP request
func (r *Requester) do(ctx context.Context, fullURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("User-Agent", r.userAgent)

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &HTTPError{
			StatusCode: resp.StatusCode,
			Message:    string(body),
		}
	}

	return body, nil
}

// HTTPError represents an HTTP error with status code
type HTTPError struct {
	StatusCode int
	Message    string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("HTTP %d: %s", e.StatusCode, e.Message)
}
