// Package toolsearch orchestrates tool recommendation searches: it merges
// the live-scraped candidates with the static catalog, ranks them against
// the query, and renders the recommendation message.
package toolsearch

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"broobot/rank"
	"broobot/tools"
)

// ErrEmptyQuery is returned when the search query is missing or blank.
// Callers surface it as a bad request; it is never retried.
var ErrEmptyQuery = errors.New("query is required")

// ToolSource provides the live-scraped candidates. A broken source is
// expected to return an empty slice, degrading the search to catalog-only.
type ToolSource interface {
	Get(ctx context.Context) []tools.Tool
}

// Service is the tool search entry point.
type Service struct {
	source  ToolSource
	catalog []tools.Tool
}

// New creates a Service over a scraped-tool source and a static catalog.
func New(source ToolSource, catalog []tools.Tool) *Service {
	return &Service{source: source, catalog: catalog}
}

// Result bundles ranked tools with the rendered recommendation message.
type Result struct {
	Tools   []tools.ScoredTool
	Message string
}

// Search ranks the merged candidate pool against the query. Scraped
// candidates go first in the pool so they win score ties over static
// entries. Search fails only on an empty query; upstream scrape failures
// degrade to a catalog-only search.
func (s *Service) Search(ctx context.Context, query string, opts rank.Options) (*Result, error) {
	if strings.TrimSpace(query) == "" {
		return nil, ErrEmptyQuery
	}

	scraped := s.source.Get(ctx)

	pool := make([]tools.Tool, 0, len(scraped)+len(s.catalog))
	pool = append(pool, scraped...)
	pool = append(pool, s.catalog...)

	ranked := rank.Rank(query, pool, opts)
	slog.Info("tool search complete", "query", query, "pool", len(pool), "scraped", len(scraped), "results", len(ranked))

	return &Result{
		Tools:   ranked,
		Message: FormatRecommendations(query, ranked),
	}, nil
}
