package research

import (
	"context"
	"errors"
	"strings"
	"testing"

	"broobot/llm"
)

type fakeSearcher struct {
	results []SearchResult
	err     error
}

func (f *fakeSearcher) Search(ctx context.Context, query string, count int) ([]SearchResult, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.results, nil
}

type fakeScraper struct {
	content map[string]string
	err     error
}

func (f *fakeScraper) Scrape(ctx context.Context, pageURL string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return f.content[pageURL], nil
}

type fakeCompleter struct {
	completion *llm.Completion
	err        error
	prompt     string
}

func (f *fakeCompleter) Complete(ctx context.Context, system string, messages []llm.Message) (*llm.Completion, error) {
	if len(messages) > 0 {
		f.prompt = messages[len(messages)-1].Content
	}
	if f.err != nil {
		return nil, f.err
	}
	return f.completion, nil
}

func longContent(prefix string) string {
	return prefix + ": " + strings.Repeat("useful article text ", 10)
}

func twoSources() (*fakeSearcher, *fakeScraper) {
	searcher := &fakeSearcher{results: []SearchResult{
		{Title: "Alpha", URL: "https://a.example/alpha", Snippet: "short"},
		{Title: "Beta", URL: "https://b.example/beta", Snippet: "short"},
	}}
	scraper := &fakeScraper{content: map[string]string{
		"https://a.example/alpha": longContent("alpha"),
		"https://b.example/beta":  longContent("beta"),
	}}
	return searcher, scraper
}

func TestRun_SynthesizesReport(t *testing.T) {
	searcher, scraper := twoSources()
	completer := &fakeCompleter{completion: &llm.Completion{
		Text:  "## Summary\nFindings [1][2].",
		Model: "claude-3-sonnet-20240229",
		Usage: llm.Usage{InputTokens: 500, OutputTokens: 300},
	}}
	runner := NewRunner(searcher, scraper, completer, 5)

	report, err := runner.Run(context.Background(), "what is alpha")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report.Query != "what is alpha" {
		t.Errorf("unexpected query %q", report.Query)
	}
	if !strings.Contains(report.Report, "Findings") {
		t.Errorf("expected synthesized text, got %q", report.Report)
	}
	if len(report.Sources) != 2 {
		t.Fatalf("expected 2 sources, got %d", len(report.Sources))
	}
	if report.Metadata.SourcesScraped != 2 || report.Metadata.IsMock {
		t.Errorf("unexpected metadata %+v", report.Metadata)
	}
	if report.Metadata.Cost <= 0 {
		t.Errorf("expected positive cost, got %v", report.Metadata.Cost)
	}
	if !strings.Contains(completer.prompt, "[1] Alpha") || !strings.Contains(completer.prompt, "[2] Beta") {
		t.Errorf("expected numbered sources in prompt, got %q", completer.prompt)
	}
}

func TestRun_SearchFailureFallsBackToMockResults(t *testing.T) {
	scraper := &fakeScraper{err: errors.New("unreachable")}
	runner := NewRunner(&fakeSearcher{err: errors.New("search down")}, scraper, nil, 3)

	report, err := runner.Run(context.Background(), "golang concurrency patterns in production")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Scraping is down too, so sources come from mock snippet fallbacks.
	if len(report.Sources) == 0 {
		t.Fatal("expected mock search results to produce sources")
	}
	for _, src := range report.Sources {
		if !strings.Contains(src.URL, "golang-concurrency-patterns") {
			t.Errorf("expected mock URL slug, got %q", src.URL)
		}
	}
}

func TestRun_ScrapeFailureUsesSnippet(t *testing.T) {
	searcher := &fakeSearcher{results: []SearchResult{{
		Title:   "Gamma",
		URL:     "https://c.example/gamma",
		Snippet: longContent("snippet"),
	}}}
	runner := NewRunner(searcher, &fakeScraper{err: errors.New("blocked")}, nil, 5)

	report, err := runner.Run(context.Background(), "gamma rays")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(report.Sources) != 1 {
		t.Fatalf("expected snippet fallback source, got %d", len(report.Sources))
	}
	if !strings.HasPrefix(report.Sources[0].Excerpt, "snippet") {
		t.Errorf("expected excerpt from snippet, got %q", report.Sources[0].Excerpt)
	}
}

func TestRun_ShortContentDropped(t *testing.T) {
	searcher := &fakeSearcher{results: []SearchResult{{
		Title:   "Thin",
		URL:     "https://thin.example/page",
		Snippet: "too short",
	}}}
	scraper := &fakeScraper{content: map[string]string{"https://thin.example/page": "barely anything"}}
	runner := NewRunner(searcher, scraper, nil, 5)

	report, err := runner.Run(context.Background(), "thin content")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(report.Sources) != 0 {
		t.Errorf("expected short sources dropped, got %d", len(report.Sources))
	}
	if report.Metadata.SourcesScraped != 0 {
		t.Errorf("expected zero scraped count, got %d", report.Metadata.SourcesScraped)
	}
}

func TestRun_NilCompleterProducesMockReport(t *testing.T) {
	searcher, scraper := twoSources()
	runner := NewRunner(searcher, scraper, nil, 5)

	report, err := runner.Run(context.Background(), "alpha beta")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !report.Metadata.IsMock {
		t.Error("expected mock metadata flag")
	}
	if !strings.Contains(report.Report, "[MOCK MODE]") {
		t.Errorf("expected mock banner, got %q", report.Report)
	}
	if !strings.Contains(report.Report, "https://a.example/alpha") {
		t.Error("expected gathered sources listed in mock report")
	}
}

func TestRun_RateLimitFallsBackToMockReport(t *testing.T) {
	searcher, scraper := twoSources()
	runner := NewRunner(searcher, scraper, &fakeCompleter{err: llm.ErrRateLimited}, 5)

	report, err := runner.Run(context.Background(), "alpha")
	if err != nil {
		t.Fatalf("expected fallback instead of error, got %v", err)
	}
	if !report.Metadata.IsMock {
		t.Error("expected mock report after rate limiting")
	}
}

func TestRun_MaxSourcesCapsScraping(t *testing.T) {
	searcher := &fakeSearcher{results: []SearchResult{
		{Title: "One", URL: "https://x.example/1"},
		{Title: "Two", URL: "https://x.example/2"},
		{Title: "Three", URL: "https://x.example/3"},
	}}
	scraper := &fakeScraper{content: map[string]string{
		"https://x.example/1": longContent("one"),
		"https://x.example/2": longContent("two"),
		"https://x.example/3": longContent("three"),
	}}
	runner := NewRunner(searcher, scraper, nil, 2)

	report, err := runner.Run(context.Background(), "cap test")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(report.Sources) != 2 {
		t.Errorf("expected sources capped at 2, got %d", len(report.Sources))
	}
}

func TestRun_CancelledContext(t *testing.T) {
	searcher, scraper := twoSources()
	runner := NewRunner(searcher, scraper, nil, 5)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := runner.Run(ctx, "alpha"); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context cancellation, got %v", err)
	}
}

func TestSources_ExcerptTruncation(t *testing.T) {
	long := strings.Repeat("x", 300)
	out := sources([]sourceContent{{
		result:  SearchResult{Title: "Long", URL: "https://l.example"},
		content: long,
	}})
	if len(out[0].Excerpt) != 203 {
		t.Errorf("expected 200 chars plus ellipsis, got %d", len(out[0].Excerpt))
	}
	if !strings.HasSuffix(out[0].Excerpt, "...") {
		t.Error("expected ellipsis suffix")
	}
}
