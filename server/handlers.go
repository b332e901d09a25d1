package server

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"broobot/chat"
	"broobot/llm"
	"broobot/rank"
	"broobot/tools"
	"broobot/toolsearch"
)

// Handlers holds the dependencies for all HTTP endpoints.
type Handlers struct {
	search     ToolSearcher
	buddy      BuddyHandler
	researcher Researcher
	mockMode   bool
}

func (h *Handlers) HandleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"mockMode":  h.mockMode,
	})
}

type toolSearchRequest struct {
	Query      string   `json:"query"`
	Limit      int      `json:"limit"`
	Categories []string `json:"categories"`
	FreeOnly   bool     `json:"freeOnly"`
	MinRating  float64  `json:"minRating"`
}

func (h *Handlers) HandleToolSearch(w http.ResponseWriter, r *http.Request) {
	var req toolSearchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Query string is required"})
		return
	}

	limit := req.Limit
	if limit <= 0 {
		limit = rank.DefaultLimit
	}
	opts := rank.Options{
		Limit:      limit,
		Categories: req.Categories,
		FreeOnly:   req.FreeOnly,
		MinRating:  req.MinRating,
	}

	result, err := h.search.Search(r.Context(), req.Query, opts)
	if err != nil {
		if errors.Is(err, toolsearch.ErrEmptyQuery) {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Query string is required"})
			return
		}
		slog.Error("tool search failed", "query", req.Query, "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{
			"error":   "Tool search failed",
			"message": err.Error(),
		})
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"query":      req.Query,
		"tools":      result.Tools,
		"message":    result.Message,
		"totalFound": len(result.Tools),
		"metadata": map[string]any{
			"searchedAt": time.Now().UTC().Format(time.RFC3339),
			"filters": map[string]any{
				"limit":      limit,
				"freeOnly":   req.FreeOnly,
				"minRating":  req.MinRating,
				"categories": req.Categories,
			},
		},
	})
}

func (h *Handlers) HandleCategories(w http.ResponseWriter, r *http.Request) {
	categories := tools.Categories()
	writeJSON(w, http.StatusOK, map[string]any{
		"categories": categories,
		"total":      len(categories),
	})
}

func (h *Handlers) HandleStats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, tools.Stats())
}

func (h *Handlers) HandleToolByID(w http.ResponseWriter, r *http.Request) {
	tool, ok := tools.ByID(r.PathValue("id"))
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "Tool not found"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"tool": tool})
}

type chatRequest struct {
	Messages  []llm.Message `json:"messages"`
	Mode      string        `json:"mode"`
	SessionID string        `json:"sessionId"`
}

func (h *Handlers) HandleChat(w http.ResponseWriter, r *http.Request) {
	user, ok := userFrom(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "No authorization header"})
		return
	}

	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Messages array is required"})
		return
	}
	if len(req.Messages) == 0 {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Messages array is required"})
		return
	}
	if req.Mode == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Mode is required"})
		return
	}

	slog.Info("chat request", "user", user.ID, "mode", req.Mode, "session", req.SessionID)

	switch req.Mode {
	case "buddy":
		resp, err := h.buddy.Handle(r.Context(), req.Messages, user.ID, req.SessionID)
		if err != nil {
			slog.Error("buddy mode failed", "user", user.ID, "error", err)
			writeJSON(w, http.StatusInternalServerError, map[string]string{
				"error":   "Failed to process chat request",
				"message": err.Error(),
			})
			return
		}
		writeJSON(w, http.StatusOK, resp)

	case "deep_research":
		query := req.Messages[len(req.Messages)-1].Content
		report, err := h.researcher.Run(r.Context(), query)
		if err != nil {
			slog.Error("deep research failed", "user", user.ID, "error", err)
			writeJSON(w, http.StatusInternalServerError, map[string]string{
				"error":   "Failed to process chat request",
				"message": err.Error(),
			})
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"message": chat.NewMessageResponse(report.Report, "deep_research", map[string]any{
				"sources":        report.Sources,
				"sourcesScraped": report.Metadata.SourcesScraped,
				"model":          report.Metadata.Model,
				"isMock":         report.Metadata.IsMock,
				"usage":          report.Metadata.Usage,
				"cost":           report.Metadata.Cost,
			}),
			"sessionId": req.SessionID,
		})

	case "ai_tool_assistant":
		writeJSON(w, http.StatusBadRequest, map[string]string{
			"error": "AI Tool Assistant uses /api/tools/search endpoint",
			"hint":  `Use POST /api/tools/search with { query: "your search" }`,
		})

	default:
		writeJSON(w, http.StatusBadRequest, map[string]any{
			"error":      "Invalid mode",
			"validModes": []string{"buddy", "ai_tool_assistant", "deep_research"},
		})
	}
}

type chatMode struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Icon        string   `json:"icon"`
	Features    []string `json:"features"`
}

func (h *Handlers) HandleChatModes(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"modes": []chatMode{
			{
				ID:          "buddy",
				Name:        "Buddy Mode",
				Description: "General conversational AI for all your questions",
				Icon:        "💬",
				Features:    []string{"General chat", "Writing help", "Coding assistance", "Learning support"},
			},
			{
				ID:          "ai_tool_assistant",
				Name:        "AI Tool Assistant",
				Description: "Find the perfect AI tools for your needs",
				Icon:        "🔧",
				Features:    []string{"Tool recommendations", "Free & paid options", "Direct links", "Ratings & reviews"},
			},
			{
				ID:          "deep_research",
				Name:        "Deep Research",
				Description: "AI-powered web research with cited sources",
				Icon:        "🔍",
				Features:    []string{"Web scraping", "Source citations", "Comprehensive reports", "Export options"},
			},
		},
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("encoding response", "error", err)
	}
}
