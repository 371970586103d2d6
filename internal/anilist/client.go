package anilist

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"aniweek/internal/config"
	"aniweek/internal/logging"
)

const (
	// minSearchLength is the trimmed query length below which Search
	// returns empty without touching the network.
	minSearchLength = 2

	// seasonMaxPages caps a season fetch at 100 records.
	seasonMaxPages = 2

	// defaultPagePause is the pause between successive season page
	// requests to respect the endpoint rate limit.
	defaultPagePause = 500 * time.Millisecond
)

// Client provides access to the AniList GraphQL API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
	pagePause  time.Duration
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// WithPagePause overrides the inter-page pause. Used by tests.
func WithPagePause(pause time.Duration) Option {
	return func(c *Client) {
		c.pagePause = pause
	}
}

// New creates an AniList client from application config.
func New(cfg *config.Config, logger *slog.Logger, opts ...Option) (*Client, error) {
	baseURL := strings.TrimSpace(cfg.AniList.BaseURL)
	if baseURL == "" {
		return nil, errors.New("anilist base url required")
	}
	timeout := time.Duration(cfg.AniList.RequestTimeout) * time.Second
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	if logger == nil {
		logger = logging.NewNop()
	}
	client := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger.With(logging.String(logging.FieldComponent, "anilist")),
		pagePause:  defaultPagePause,
	}
	for _, opt := range opts {
		opt(client)
	}
	return client, nil
}

// Search queries AniList by free text, returning up to 10 results ranked by
// descending popularity. Queries shorter than two characters return empty
// without a network call; failures return empty and are logged.
func (c *Client) Search(ctx context.Context, query string) []Media {
	query = strings.TrimSpace(query)
	if len([]rune(query)) < minSearchLength {
		return []Media{}
	}

	result, err := c.fetchPage(ctx, searchQuery, map[string]any{"search": query})
	if err != nil {
		c.logger.Warn("search failed", logging.String("query", query), logging.Error(err))
		return []Media{}
	}
	return result.Media
}

// FetchByID looks up a single record. Failure yields nil.
func (c *Client) FetchByID(ctx context.Context, id int64) *Media {
	var envelope mediaEnvelope
	if err := c.post(ctx, mediaByIDQuery, map[string]any{"id": id}, &envelope); err != nil {
		c.logger.Warn("fetch by id failed", logging.Int("id", int(id)), logging.Error(err))
		return nil
	}
	if envelope.Data == nil || envelope.Data.Media == nil {
		c.logger.Warn("fetch by id returned no media", logging.Int("id", int(id)))
		return nil
	}
	return envelope.Data.Media
}

// FetchSeason pulls the airing schedule for a season, 50 records per page,
// stopping after two pages or when the source reports no further pages. A
// page failure aborts the fetch and returns whatever has accumulated; it is
// not retried.
func (c *Client) FetchSeason(ctx context.Context, season Season, year int) []Media {
	collected := []Media{}
	for pageNum := 1; pageNum <= seasonMaxPages; pageNum++ {
		result, err := c.fetchPage(ctx, seasonQuery, map[string]any{
			"season": string(season),
			"year":   year,
			"page":   pageNum,
		})
		if err != nil {
			c.logger.Warn("season fetch aborted",
				logging.String("season", string(season)),
				logging.Int("year", year),
				logging.Int("page", pageNum),
				logging.Error(err))
			return collected
		}
		collected = append(collected, result.Media...)

		if !result.PageInfo.HasNextPage || pageNum == seasonMaxPages {
			break
		}
		select {
		case <-time.After(c.pagePause):
		case <-ctx.Done():
			return collected
		}
	}
	return collected
}

func (c *Client) fetchPage(ctx context.Context, query string, variables map[string]any) (*page, error) {
	var envelope pageEnvelope
	if err := c.post(ctx, query, variables, &envelope); err != nil {
		return nil, err
	}
	if envelope.Data == nil || envelope.Data.Page == nil {
		return nil, errors.New("response missing page data")
	}
	return envelope.Data.Page, nil
}

func (c *Client) post(ctx context.Context, query string, variables map[string]any, out any) error {
	body, err := json.Marshal(map[string]any{
		"query":     query,
		"variables": variables,
	})
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	requestStart := time.Now()
	resp, err := c.httpClient.Do(req)
	latency := time.Since(requestStart)
	if err != nil {
		return fmt.Errorf("execute request (latency=%v): %w", latency, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("anilist returned %d (latency=%v)", resp.StatusCode, latency)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
