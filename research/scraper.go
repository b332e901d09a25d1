package research

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	readability "github.com/go-shiori/go-readability"
)

const (
	defaultScrapeTimeout   = 10 * time.Second
	maxSourceContentLength = 5000
	minUsableContentLength = 100
)

// SourceScraper extracts readable article text from a web page.
type SourceScraper interface {
	Scrape(ctx context.Context, pageURL string) (string, error)
}

type readabilityScraper struct {
	client *http.Client
}

// NewSourceScraper creates a scraper that fetches pages directly and runs
// readability extraction on them.
func NewSourceScraper(timeout time.Duration) SourceScraper {
	if timeout <= 0 {
		timeout = defaultScrapeTimeout
	}
	return NewSourceScraperWithClient(&http.Client{Timeout: timeout})
}

// NewSourceScraperWithClient creates a scraper with a custom HTTP client.
func NewSourceScraperWithClient(client *http.Client) SourceScraper {
	return &readabilityScraper{client: client}
}

func (s *readabilityScraper) Scrape(ctx context.Context, pageURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return "", fmt.Errorf("creating request for %s: %w", pageURL, err)
	}
	req.Header.Set("User-Agent", "Mozilla/5.0 (compatible; BrooBot/1.0)")

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetching %s: %w", pageURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("fetching %s: status %d", pageURL, resp.StatusCode)
	}

	parsedURL, err := url.Parse(pageURL)
	if err != nil {
		return "", fmt.Errorf("parsing URL %s: %w", pageURL, err)
	}

	article, err := readability.FromReader(resp.Body, parsedURL)
	if err != nil {
		return "", fmt.Errorf("extracting content from %s: %w", pageURL, err)
	}

	content := strings.TrimSpace(article.TextContent)
	if len(content) > maxSourceContentLength {
		content = content[:maxSourceContentLength]
	}
	return content, nil
}
