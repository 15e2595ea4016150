package rapidapi

import (
	"context"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"github.com/cockroachdb/errors"

	"github.com/preston-bernstein/live-arena-service/internal/domain/matches"
	"github.com/preston-bernstein/live-arena-service/internal/providers"
)

// Config controls how the client reaches the RapidAPI match-list endpoint.
type Config struct {
	BaseURL    string
	Path       string
	SportID    string
	APIHost    string
	APIKey     string
	Timeout    time.Duration
	HTTPClient *http.Client
}

// Client fetches the live-odds match list.
type Client struct {
	baseURL    string
	path       string
	sportID    string
	apiHost    string
	apiKey     string
	httpClient httpDoer
	now        func() time.Time
}

// NewClient constructs a client with the provided configuration.
func NewClient(cfg Config) *Client {
	baseURL := normalizeBaseURL(cfg.BaseURL)
	sportID := strings.TrimSpace(cfg.SportID)
	if sportID == "" {
		sportID = defaultSportID
	}
	return &Client{
		baseURL:    baseURL,
		path:       normalizePath(cfg.Path),
		sportID:    sportID,
		apiHost:    resolveAPIHost(cfg.APIHost, baseURL),
		apiKey:     strings.TrimSpace(cfg.APIKey),
		httpClient: resolveHTTPClient(cfg.HTTPClient, cfg.Timeout),
		now:        time.Now,
	}
}

// Name identifies the provider in logs and metrics.
func (c *Client) Name() string {
	return providerName
}

// FetchMatchList issues one GET against the feed. A 429 comes back as *providers.RateLimitError.
func (c *Client) FetchMatchList(ctx context.Context) (matches.Snapshot, error) {
	req, err := c.buildRequest(ctx)
	if err != nil {
		return matches.Snapshot{}, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return matches.Snapshot{}, errors.Wrap(err, "rapidapi: request match list")
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return matches.Snapshot{}, &providers.RateLimitError{
			Provider:   providerName,
			StatusCode: resp.StatusCode,
			RetryAfter: parseRetryAfter(resp.Header.Get(headerRetryAfter), c.now()),
			Remaining:  resp.Header.Get(headerRemaining),
			Message:    strings.TrimSpace(string(body)),
		}
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return matches.Snapshot{}, errors.Newf("rapidapi: unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return matches.Snapshot{}, errors.Wrap(err, "rapidapi: read match list body")
	}

	var payload matches.Snapshot
	if err := sonic.ConfigStd.Unmarshal(raw, &payload); err != nil {
		return matches.Snapshot{}, errors.Wrap(err, "rapidapi: decode match list")
	}
	payload.LastUpdatedAt = c.now().UTC()
	return payload.WithMatches(payload.Data.T1), nil
}

func (c *Client) buildRequest(ctx context.Context) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+c.path, nil)
	if err != nil {
		return nil, errors.Wrap(err, "rapidapi: build request")
	}

	q := req.URL.Query()
	q.Set("sportId", c.sportID)
	req.URL.RawQuery = q.Encode()

	req.Header.Set("Accept", "application/json")
	if c.apiHost != "" {
		req.Header.Set(headerAPIHost, c.apiHost)
	}
	if c.apiKey != "" {
		req.Header.Set(headerAPIKey, c.apiKey)
	}
	return req, nil
}
