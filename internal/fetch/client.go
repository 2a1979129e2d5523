package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/time/rate"
)

// feed texts are small; anything bigger than this is not one of ours
const maxFeedBytes = 8 << 20

// Source fetches one feed's current text. The poller and the feed
// service depend on this, not on the concrete client, so tests can
// substitute canned results.
type Source interface {
	Fetch(ctx context.Context, feedURL string) (Result, error)
}

// Client fetches feed texts over HTTP. A shared rate limiter keeps the
// poller polite when many feeds are due at once.
type Client struct {
	httpClient *http.Client
	limiter    *rate.Limiter
	userAgent  string
}

func NewClient(httpClient *http.Client, userAgent string) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 20 * time.Second}
	}
	return &Client{
		httpClient: httpClient,
		limiter:    rate.NewLimiter(rate.Limit(4), 8),
		userAgent:  userAgent,
	}
}

func (c *Client) Fetch(ctx context.Context, feedURL string) (Result, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return Result{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, feedURL, nil)
	if err != nil {
		return Result{}, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Result{}, fmt.Errorf("fetch feed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Result{}, fmt.Errorf("fetch feed: unexpected status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxFeedBytes))
	if err != nil {
		return Result{}, fmt.Errorf("read feed body: %w", err)
	}

	return Parse(feedURL, data)
}
