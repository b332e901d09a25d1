// Package research implements the deep research mode: web search, source
// scraping, and report synthesis with citations.
package research

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"broobot/llm"
)

const defaultMaxSources = 5

// Source is one web page that contributed to a report.
type Source struct {
	Title   string `json:"title"`
	URL     string `json:"url"`
	Excerpt string `json:"excerpt"`
}

// ReportMetadata describes how a report was produced.
type ReportMetadata struct {
	SourcesScraped int       `json:"sourcesScraped"`
	Model          string    `json:"model"`
	IsMock         bool      `json:"isMock"`
	Usage          llm.Usage `json:"usage"`
	Cost           float64   `json:"cost"`
}

// Report is the result of a research run.
type Report struct {
	Query    string         `json:"query"`
	Report   string         `json:"report"`
	Sources  []Source       `json:"sources"`
	Metadata ReportMetadata `json:"metadata"`
}

// Runner coordinates the research pipeline. A nil completer synthesizes a
// mock report from whatever sources were gathered.
type Runner struct {
	searcher   Searcher
	scraper    SourceScraper
	completer  llm.Completer
	maxSources int
}

// NewRunner creates a research runner. maxSources caps how many search hits
// are scraped per query.
func NewRunner(searcher Searcher, scraper SourceScraper, completer llm.Completer, maxSources int) *Runner {
	if maxSources <= 0 {
		maxSources = defaultMaxSources
	}
	return &Runner{
		searcher:   searcher,
		scraper:    scraper,
		completer:  completer,
		maxSources: maxSources,
	}
}

// sourceContent pairs a search hit with its scraped page text.
type sourceContent struct {
	result  SearchResult
	content string
}

// Run executes the full pipeline: search, scrape each hit, synthesize a
// cited report. Search failure falls back to deterministic mock results,
// and pages that cannot be scraped fall back to their search snippet, so a
// run degrades rather than fails.
func (r *Runner) Run(ctx context.Context, query string) (*Report, error) {
	start := time.Now()
	slog.Info("starting research", "query", query)

	results, err := r.searcher.Search(ctx, query, r.maxSources)
	if err != nil {
		slog.Warn("search failed, using mock results", "error", err)
		results, _ = MockSearcher{}.Search(ctx, query, r.maxSources)
	}
	if len(results) > r.maxSources {
		results = results[:r.maxSources]
	}

	var gathered []sourceContent
	for _, result := range results {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		content, err := r.scraper.Scrape(ctx, result.URL)
		if err != nil {
			slog.Warn("scrape failed, using snippet", "url", result.URL, "error", err)
			content = result.Snippet
		}
		if len(content) > minUsableContentLength {
			gathered = append(gathered, sourceContent{result: result, content: content})
		}
	}

	report := r.synthesize(ctx, query, gathered)
	report.Query = query
	report.Sources = sources(gathered)
	report.Metadata.SourcesScraped = len(gathered)

	slog.Info("research completed",
		"query", query,
		"sources", len(gathered),
		"mock", report.Metadata.IsMock,
		"duration", time.Since(start))
	return report, nil
}

func (r *Runner) synthesize(ctx context.Context, query string, gathered []sourceContent) *Report {
	if r.completer == nil {
		return mockReport(query, gathered)
	}

	completion, err := r.completer.Complete(ctx, synthesisSystemPrompt, []llm.Message{
		{Role: "user", Content: synthesisUserPrompt(query, gathered)},
	})
	if err != nil {
		if errors.Is(err, llm.ErrRateLimited) {
			slog.Warn("research synthesis rate limited, falling back to mock", "query", query)
			return mockReport(query, gathered)
		}
		slog.Error("research synthesis failed, falling back to mock", "query", query, "error", err)
		return mockReport(query, gathered)
	}

	return &Report{
		Report: completion.Text,
		Metadata: ReportMetadata{
			Model: completion.Model,
			Usage: completion.Usage,
			Cost:  completion.Cost(),
		},
	}
}

func sources(gathered []sourceContent) []Source {
	out := make([]Source, 0, len(gathered))
	for _, sc := range gathered {
		excerpt := sc.content
		if len(excerpt) > 200 {
			excerpt = excerpt[:200] + "..."
		}
		out = append(out, Source{Title: sc.result.Title, URL: sc.result.URL, Excerpt: excerpt})
	}
	return out
}

const synthesisSystemPrompt = `You are a research analyst. Synthesize the provided sources into a clear, well-organized research report. Cite sources by their number in square brackets, like [1]. Be factual and only use information from the sources.`

func synthesisUserPrompt(query string, gathered []sourceContent) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Research question: %s\n\nSources:\n\n", query)
	for i, sc := range gathered {
		fmt.Fprintf(&b, "[%d] %s (%s)\n%s\n\n", i+1, sc.result.Title, sc.result.URL, sc.content)
	}
	b.WriteString(`Write a comprehensive research report answering the question. Structure it as:

## Summary
A concise answer to the question.

## Key Findings
The most important points from the sources, with citations.

## Details
A deeper discussion of the topic.

## Conclusion
Final takeaways.

Cite sources using [1], [2], etc.`)
	return b.String()
}

func mockReport(query string, gathered []sourceContent) *Report {
	var citations strings.Builder
	for i, sc := range gathered {
		fmt.Fprintf(&citations, "%d. [%s](%s)\n", i+1, sc.result.Title, sc.result.URL)
	}
	if citations.Len() == 0 {
		citations.WriteString("No sources were available.\n")
	}

	text := fmt.Sprintf(`# Research Report: %s

**[MOCK MODE]** This report was generated without a completion provider. Set ANTHROPIC_API_KEY for synthesized reports.

## Summary

This is a mock research report about "%s". %d sources were gathered and would normally be synthesized into a detailed analysis.

## Sources Consulted

%s
## Note

Real reports include key findings, detailed analysis, and inline citations drawn from the scraped sources.`,
		query, query, len(gathered), citations.String())

	return &Report{
		Report:   text,
		Metadata: ReportMetadata{Model: "mock", IsMock: true},
	}
}
