package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"broobot/cache"
	"broobot/chat"
	"broobot/config"
	"broobot/llm"
	"broobot/research"
	"broobot/scheduler"
	"broobot/scrape"
	"broobot/server"
	"broobot/tools"
	"broobot/toolsearch"
)

func main() {
	cfgPath := flag.String("config", "./config.yaml", "path to YAML config file")
	flag.Parse()

	// Secrets commonly live in a local .env during development
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		slog.Warn("loading .env", "error", err)
	}

	// Structured JSON logging to stdout
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	slog.Info("config loaded",
		"port", cfg.Port,
		"refresh_time", cfg.RefreshTime,
		"timezone", cfg.Timezone,
		"mock_mode", cfg.MockOnly())

	// Set log level
	switch cfg.LogLevel {
	case "debug":
		slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug})))
	case "warn":
		slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelWarn})))
	case "error":
		slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError})))
	}

	// Scraping pipeline: fetcher -> freshness cache -> search service
	scrapeClient := &http.Client{Timeout: time.Duration(cfg.ScrapeTimeoutSec) * time.Second}
	proxyURL := cfg.ScrapeProxyURL
	if proxyURL == "" {
		proxyURL = scrape.DefaultProxyURL
	}
	listingURL := cfg.ScrapeListingURL
	if listingURL == "" {
		listingURL = scrape.DefaultListingURL
	}
	fetcher := scrape.NewFetcherWithClient(scrapeClient, proxyURL, listingURL)
	toolCache := cache.New(fetcher, time.Duration(cfg.CacheTTLHours)*time.Hour)
	searchService := toolsearch.New(toolCache, tools.Catalog())

	// Completion providers; nil completers run the modes on mocks
	var buddyCompleter, researchCompleter llm.Completer
	if !cfg.MockOnly() {
		llmClient := &http.Client{Timeout: 60 * time.Second}
		buddyCompleter = llm.NewCompleter(cfg.AnthropicAPIKey, cfg.BuddyModel, cfg.MaxTokens, 0.7, llmClient)
		researchCompleter = llm.NewCompleter(cfg.AnthropicAPIKey, cfg.ResearchModel, cfg.MaxTokens, 0.3, llmClient)
	}
	buddy := chat.NewBuddy(buddyCompleter)

	var searcher research.Searcher = research.MockSearcher{}
	if cfg.SerperAPIKey != "" && !cfg.UseMockMode {
		searcher = research.NewSerperSearcher(cfg.SerperAPIKey, &http.Client{Timeout: time.Duration(cfg.FetchTimeoutSec) * time.Second})
	}
	sourceScraper := research.NewSourceScraper(time.Duration(cfg.FetchTimeoutSec) * time.Second)
	researcher := research.NewRunner(searcher, sourceScraper, researchCompleter, cfg.MaxSources)

	// Daily cache refresh
	sched, err := scheduler.New(cfg.Timezone)
	if err != nil {
		slog.Error("failed to create scheduler", "error", err)
		os.Exit(1)
	}
	refreshFunc := func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Duration(cfg.ScrapeTimeoutSec)*time.Second)
		defer cancel()
		toolCache.Refresh(ctx)
	}
	if err := sched.Schedule(cfg.RefreshTime, refreshFunc); err != nil {
		slog.Error("failed to schedule refresh", "error", err)
		os.Exit(1)
	}
	sched.Start()
	slog.Info("scheduler started", "refresh_time", cfg.RefreshTime)

	// Warm the cache without delaying startup
	go refreshFunc()

	srv := server.New(cfg.Port, cfg.FrontendURL, cfg.MockOnly(), searchService, buddy, researcher)

	go func() {
		slog.Info("server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server stopped with error", "error", err)
			os.Exit(1)
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigCh
	slog.Info("received signal, shutting down", "signal", sig)

	sched.Stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("server shutdown failed", "error", err)
	}
	slog.Info("shutdown complete")
}
