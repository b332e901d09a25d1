// Package scrape fetches the live free-tools listing through a read-as-text
// proxy and parses it into tool candidates.
package scrape

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"broobot/tools"
)

const (
	// DefaultListingURL is the listing page the candidates come from.
	DefaultListingURL = "https://theresanaiforthat.com/s/free/"
	// DefaultProxyURL is the read-as-text proxy prepended to the listing URL.
	DefaultProxyURL = "https://r.jina.ai"
	// DefaultTimeout bounds the outbound proxy fetch.
	DefaultTimeout = 15 * time.Second
)

// Fetcher retrieves the latest scraped tool candidates.
type Fetcher interface {
	FetchLatest(ctx context.Context) ([]tools.Tool, error)
}

type proxyFetcher struct {
	client     *http.Client
	proxyURL   string
	listingURL string
}

// NewFetcher creates a Fetcher against the default proxy and listing URL.
func NewFetcher() Fetcher {
	return &proxyFetcher{
		client:     &http.Client{Timeout: DefaultTimeout},
		proxyURL:   DefaultProxyURL,
		listingURL: DefaultListingURL,
	}
}

// NewFetcherWithClient creates a Fetcher with a custom HTTP client and URLs
// (for testing).
func NewFetcherWithClient(client *http.Client, proxyURL, listingURL string) Fetcher {
	return &proxyFetcher{
		client:     client,
		proxyURL:   proxyURL,
		listingURL: listingURL,
	}
}

// FetchLatest fetches the listing page as plain text through the proxy and
// parses it into tool candidates. A failed fetch returns an error; callers
// treat it the same as an empty result.
func (f *proxyFetcher) FetchLatest(ctx context.Context) ([]tools.Tool, error) {
	fetchURL := fmt.Sprintf("%s/%s", f.proxyURL, url.QueryEscape(f.listingURL))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fetchURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating scrape request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Return-Format", "text")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching tool listing: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("tool listing fetch returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading tool listing response: %w", err)
	}

	content := extractContent(body)
	parsed := ParseTools(content)
	slog.Info("scraped tool listing", "candidates", len(parsed), "bytes", len(body))
	return parsed, nil
}

// extractContent unwraps the proxy response. The proxy may answer with
// {"data":{"content":...}}, {"content":...}, or raw text.
func extractContent(body []byte) string {
	var wrapped struct {
		Data struct {
			Content string `json:"content"`
		} `json:"data"`
		Content string `json:"content"`
	}
	if err := json.Unmarshal(body, &wrapped); err == nil {
		if wrapped.Data.Content != "" {
			return wrapped.Data.Content
		}
		if wrapped.Content != "" {
			return wrapped.Content
		}
	}
	return string(body)
}
