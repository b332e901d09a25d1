package research

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestSerperSearch_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("X-API-KEY"); got != "serper-key" {
			t.Errorf("expected API key header, got %q", got)
		}
		var req serperRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decoding request: %v", err)
		}
		if req.Q != "best go routers" || req.Num != 3 {
			t.Errorf("unexpected request %+v", req)
		}

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"organic":[
			{"title":"Router Roundup","link":"https://r.example/roundup","snippet":"A comparison."},
			{"title":"Mux Guide","link":"https://r.example/mux","snippet":"The details."}
		]}`))
	}))
	defer server.Close()

	s := newSerperSearcherWithURL("serper-key", server.Client(), server.URL)
	results, err := s.Search(context.Background(), "best go routers", 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	if results[0].Title != "Router Roundup" || results[0].URL != "https://r.example/roundup" {
		t.Errorf("unexpected first result %+v", results[0])
	}
}

func TestSerperSearch_ProviderError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	s := newSerperSearcherWithURL("bad-key", server.Client(), server.URL)
	if _, err := s.Search(context.Background(), "anything", 3); err == nil {
		t.Fatal("expected error for HTTP 403")
	}
}

func TestSerperSearch_Unreachable(t *testing.T) {
	s := newSerperSearcherWithURL("k", nil, "http://127.0.0.1:1")
	if _, err := s.Search(context.Background(), "anything", 3); err == nil {
		t.Fatal("expected error for unreachable provider")
	}
}

func TestMockSearch_Deterministic(t *testing.T) {
	a, _ := MockSearcher{}.Search(context.Background(), "Vector Databases", 3)
	b, _ := MockSearcher{}.Search(context.Background(), "Vector Databases", 3)

	if len(a) != 3 {
		t.Fatalf("expected 3 results, got %d", len(a))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("expected identical result %d, got %+v vs %+v", i, a[i], b[i])
		}
	}
	if !strings.Contains(a[0].URL, "vector-databases") {
		t.Errorf("expected lowercase hyphenated slug, got %q", a[0].URL)
	}
	if !strings.Contains(a[0].Title, "Vector Databases") {
		t.Errorf("expected query in title, got %q", a[0].Title)
	}
}

func TestMockSearch_CountCap(t *testing.T) {
	results, _ := MockSearcher{}.Search(context.Background(), "anything", 1)
	if len(results) != 1 {
		t.Errorf("expected single result, got %d", len(results))
	}
}
