package llm

import (
	"context"
	"encoding/json"
	"errors"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestComplete_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("anthropic-version"); got != apiVersion {
			t.Errorf("expected anthropic-version header %q, got %q", apiVersion, got)
		}
		if got := r.Header.Get("x-api-key"); got != "test-key" {
			t.Errorf("expected api key header, got %q", got)
		}

		var req anthropicRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decoding request: %v", err)
		}
		if req.System != "be helpful" {
			t.Errorf("expected system prompt, got %q", req.System)
		}
		if len(req.Messages) != 1 || req.Messages[0].Content != "hello" {
			t.Errorf("unexpected messages %v", req.Messages)
		}

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"content":[{"text":"hi there"}],"usage":{"input_tokens":12,"output_tokens":8}}`))
	}))
	defer server.Close()

	c := newCompleterWithURL("test-key", "claude-3-haiku-20240307", 2048, 0.7, server.Client(), server.URL)
	completion, err := c.Complete(context.Background(), "be helpful", []Message{{Role: "user", Content: "hello"}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if completion.Text != "hi there" {
		t.Errorf("expected completion text, got %q", completion.Text)
	}
	if completion.Usage.InputTokens != 12 || completion.Usage.OutputTokens != 8 {
		t.Errorf("unexpected usage %+v", completion.Usage)
	}
}

func TestComplete_RateLimited(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	c := newCompleterWithURL("k", "claude-3-haiku-20240307", 2048, 0.7, server.Client(), server.URL)
	_, err := c.Complete(context.Background(), "", []Message{{Role: "user", Content: "hello"}})
	if !errors.Is(err, ErrRateLimited) {
		t.Fatalf("expected ErrRateLimited, got %v", err)
	}
}

func TestComplete_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error":"overloaded"}`))
	}))
	defer server.Close()

	c := newCompleterWithURL("k", "claude-3-haiku-20240307", 2048, 0.7, server.Client(), server.URL)
	_, err := c.Complete(context.Background(), "", []Message{{Role: "user", Content: "hello"}})
	if err == nil {
		t.Fatal("expected error for HTTP 500")
	}
	if errors.Is(err, ErrRateLimited) {
		t.Fatal("500 must not be reported as rate limiting")
	}
}

func TestComplete_EmptyContent(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"content":[],"usage":{"input_tokens":1,"output_tokens":0}}`))
	}))
	defer server.Close()

	c := newCompleterWithURL("k", "claude-3-haiku-20240307", 2048, 0.7, server.Client(), server.URL)
	if _, err := c.Complete(context.Background(), "", []Message{{Role: "user", Content: "hello"}}); err == nil {
		t.Fatal("expected error for empty content")
	}
}

func TestCompletion_Cost(t *testing.T) {
	haiku := &Completion{
		Model: "claude-3-haiku-20240307",
		Usage: Usage{InputTokens: 1_000_000, OutputTokens: 1_000_000},
	}
	if got := haiku.Cost(); math.Abs(got-1.50) > 1e-9 {
		t.Errorf("expected haiku cost 1.50, got %v", got)
	}

	unknown := &Completion{Model: "mock", Usage: Usage{InputTokens: 100, OutputTokens: 100}}
	if got := unknown.Cost(); got != 0 {
		t.Errorf("expected zero cost for unknown model, got %v", got)
	}
}
