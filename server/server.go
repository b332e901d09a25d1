// Package server exposes the HTTP API: tool search, chat modes, and health.
package server

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"broobot/chat"
	"broobot/llm"
	"broobot/rank"
	"broobot/research"
	"broobot/toolsearch"
)

// ToolSearcher runs tool recommendation searches.
type ToolSearcher interface {
	Search(ctx context.Context, query string, opts rank.Options) (*toolsearch.Result, error)
}

// BuddyHandler answers buddy-mode conversations.
type BuddyHandler interface {
	Handle(ctx context.Context, messages []llm.Message, userID, sessionID string) (*chat.Response, error)
}

// Researcher runs deep research queries.
type Researcher interface {
	Run(ctx context.Context, query string) (*research.Report, error)
}

// User identifies the authenticated caller.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Tier  string `json:"tier"`
}

type contextKey struct{}

var userKey contextKey

// userFrom extracts the authenticated user from the request context.
func userFrom(ctx context.Context) (User, bool) {
	u, ok := ctx.Value(userKey).(User)
	return u, ok
}

// New builds the HTTP server with all routes and middleware attached.
func New(port string, frontendURL string, mockMode bool, search ToolSearcher, buddy BuddyHandler, researcher Researcher) *http.Server {
	h := &Handlers{
		search:     search,
		buddy:      buddy,
		researcher: researcher,
		mockMode:   mockMode,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", h.HandleHealth)
	mux.HandleFunc("POST /api/tools/search", h.HandleToolSearch)
	mux.HandleFunc("GET /api/tools/categories", h.HandleCategories)
	mux.HandleFunc("GET /api/tools/stats", h.HandleStats)
	mux.HandleFunc("GET /api/tools/{id}", h.HandleToolByID)
	mux.Handle("POST /api/chat", authenticate(http.HandlerFunc(h.HandleChat)))
	mux.HandleFunc("GET /api/chat/modes", h.HandleChatModes)

	handler := logRequests(corsMiddleware(frontendURL, mux))

	return &http.Server{
		Addr:         ":" + port,
		Handler:      handler,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second,
	}
}

// logRequests logs method, path, status, and duration for every request.
func logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(sw, r)
		slog.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", sw.status,
			"duration", time.Since(start))
	})
}

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}

// corsMiddleware allows the configured frontend origin with credentials.
func corsMiddleware(frontendURL string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", frontendURL)
		w.Header().Set("Access-Control-Allow-Credentials", "true")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// authenticate requires an Authorization header and attaches a mock user.
// Token verification against a real identity provider is out of scope for
// local development.
func authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") == "" {
			writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "No authorization header"})
			return
		}

		user := User{ID: "mock-user-123", Email: "test@example.com", Tier: "free"}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), userKey, user)))
	})
}
