package research

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

const serperBaseURL = "https://google.serper.dev"

// SearchResult is one web search hit.
type SearchResult struct {
	Title   string `json:"title"`
	URL     string `json:"url"`
	Snippet string `json:"snippet"`
}

// Searcher finds web sources for a query.
type Searcher interface {
	Search(ctx context.Context, query string, count int) ([]SearchResult, error)
}

type serperSearcher struct {
	apiKey  string
	client  *http.Client
	baseURL string
}

// NewSerperSearcher creates a Searcher backed by the Serper API.
func NewSerperSearcher(apiKey string, client *http.Client) Searcher {
	return newSerperSearcherWithURL(apiKey, client, serperBaseURL)
}

// newSerperSearcherWithURL creates a Searcher with a custom base URL for
// testing.
func newSerperSearcherWithURL(apiKey string, client *http.Client, baseURL string) Searcher {
	if client == nil {
		client = http.DefaultClient
	}
	return &serperSearcher{apiKey: apiKey, client: client, baseURL: baseURL}
}

type serperRequest struct {
	Q   string `json:"q"`
	Num int    `json:"num"`
	GL  string `json:"gl"`
	HL  string `json:"hl"`
}

type serperResponse struct {
	Organic []struct {
		Title   string `json:"title"`
		Link    string `json:"link"`
		Snippet string `json:"snippet"`
	} `json:"organic"`
}

func (s *serperSearcher) Search(ctx context.Context, query string, count int) ([]SearchResult, error) {
	bodyBytes, err := json.Marshal(serperRequest{Q: query, Num: count, GL: "us", HL: "en"})
	if err != nil {
		return nil, fmt.Errorf("marshaling search request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/search", bytes.NewReader(bodyBytes))
	if err != nil {
		return nil, fmt.Errorf("creating search request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-API-KEY", s.apiKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("calling search provider: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("search provider returned status %d", resp.StatusCode)
	}

	var parsed serperResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("decoding search response: %w", err)
	}

	results := make([]SearchResult, 0, len(parsed.Organic))
	for _, hit := range parsed.Organic {
		results = append(results, SearchResult{Title: hit.Title, URL: hit.Link, Snippet: hit.Snippet})
	}
	return results, nil
}

// MockSearcher generates deterministic results derived only from the query,
// for reproducible behavior without search credentials. It never fails.
type MockSearcher struct{}

// Search implements Searcher.
func (MockSearcher) Search(ctx context.Context, query string, count int) ([]SearchResult, error) {
	slug := strings.ReplaceAll(strings.ToLower(query), " ", "-")
	results := []SearchResult{
		{
			Title:   fmt.Sprintf("Understanding %s - Comprehensive Guide", query),
			URL:     fmt.Sprintf("https://example.com/%s", slug),
			Snippet: fmt.Sprintf("A detailed exploration of %s covering all the essential aspects you need to know.", query),
		},
		{
			Title:   fmt.Sprintf("%s: Best Practices and Tips", query),
			URL:     fmt.Sprintf("https://example.org/best-practices-%s", slug),
			Snippet: fmt.Sprintf("Learn the best practices and expert tips for %s in this comprehensive guide.", query),
		},
		{
			Title:   fmt.Sprintf("The Ultimate Guide to %s", query),
			URL:     fmt.Sprintf("https://example.net/ultimate-guide-%s", slug),
			Snippet: fmt.Sprintf("Everything you need to know about %s from basics to advanced concepts.", query),
		},
	}
	if count > 0 && count < len(results) {
		results = results[:count]
	}
	return results, nil
}
