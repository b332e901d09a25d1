package scrape

import (
	"fmt"
	"strings"
	"testing"
)

func TestParseTools_StructuredContent(t *testing.T) {
	content := `# Free AI Tools This Week
Check out PhotoMagic at https://www.photomagic.io/tools today
An amazing image generation and design assistant for creators.
Completely free for basic image editing workflows.
Visit https://scribblebot.com for all your content needs
The best writing chatbot for productivity lovers.`

	parsed := ParseTools(content)

	if len(parsed) != 2 {
		t.Fatalf("expected 2 candidates, got %d", len(parsed))
	}

	first := parsed[0]
	if first.Name != "Photomagic" {
		t.Errorf("expected name Photomagic (www. stripped, capitalized), got %q", first.Name)
	}
	if first.URL != "https://www.photomagic.io/tools" {
		t.Errorf("unexpected url %q", first.URL)
	}
	if !first.IsScraped || !first.IsFree {
		t.Error("expected scraped candidate to be marked scraped and free")
	}
	if first.Category != "Free AI Tools" {
		t.Errorf("unexpected category %q", first.Category)
	}
	if first.Rating != 4.0 {
		t.Errorf("expected default rating 4.0, got %.1f", first.Rating)
	}
	if !strings.Contains(first.Description, "image generation") {
		t.Errorf("expected accumulated description, got %q", first.Description)
	}

	second := parsed[1]
	if second.Name != "Scribblebot" {
		t.Errorf("expected name Scribblebot, got %q", second.Name)
	}
	for _, want := range []string{"writing", "chatbot", "productivity"} {
		if !containsTag(second.Tags, want) {
			t.Errorf("expected tag %q in %v", want, second.Tags)
		}
	}
}

func TestParseTools_ForcedTagsAndDedup(t *testing.T) {
	content := `A listing entry at https://example.com/thing with details
free coding tools for free coding enthusiasts.
more coding content here today.`

	parsed := ParseTools(content)

	if len(parsed) != 1 {
		t.Fatalf("expected 1 candidate, got %d", len(parsed))
	}

	tags := parsed[0].Tags
	if tags[0] != "free" || tags[1] != "latest" {
		t.Errorf("expected forced free/latest tags first, got %v", tags)
	}
	count := 0
	for _, tag := range tags {
		if tag == "coding" {
			count++
		}
	}
	if count != 1 {
		t.Errorf("expected coding deduplicated to one occurrence, got %v", tags)
	}
}

func TestParseTools_EmptyInput(t *testing.T) {
	if got := ParseTools(""); len(got) != 0 {
		t.Errorf("expected no candidates for empty input, got %d", len(got))
	}
}

func TestParseTools_NoURLs(t *testing.T) {
	content := "Just some prose about AI tools.\nNothing linked anywhere in here.\n"
	if got := ParseTools(content); len(got) != 0 {
		t.Errorf("expected no candidates without URLs, got %d", len(got))
	}
}

func TestParseTools_FallbackExtraction(t *testing.T) {
	// Heading lines never start candidates, so the structured scan comes up
	// empty and the blind URL extraction takes over.
	content := "# https://one.example.com/tools\n# https://two.example.org/apps\n"

	parsed := ParseTools(content)

	if len(parsed) != 2 {
		t.Fatalf("expected 2 fallback candidates, got %d", len(parsed))
	}
	if parsed[0].Name != "One" || parsed[1].Name != "Two" {
		t.Errorf("expected domain-derived names One/Two, got %q/%q", parsed[0].Name, parsed[1].Name)
	}
	if parsed[0].Description != "Free AI tool from theresanaiforthat.com" {
		t.Errorf("unexpected fallback description %q", parsed[0].Description)
	}
	for _, want := range []string{"free", "ai", "latest"} {
		if !containsTag(parsed[0].Tags, want) {
			t.Errorf("expected fallback tag %q in %v", want, parsed[0].Tags)
		}
	}
}

func TestParseTools_FallbackCap(t *testing.T) {
	var sb strings.Builder
	for i := 0; i < 30; i++ {
		fmt.Fprintf(&sb, "# https://tool%02d.example.com/page\n", i)
	}

	parsed := ParseTools(sb.String())

	if len(parsed) != maxFallbackURLs {
		t.Errorf("expected fallback capped at %d, got %d", maxFallbackURLs, len(parsed))
	}
}

func TestParseTools_UniqueIDs(t *testing.T) {
	content := "# https://one.example.com/a\n# https://two.example.com/b\n# https://three.example.com/c\n"

	parsed := ParseTools(content)

	seen := make(map[string]bool)
	for _, tool := range parsed {
		if seen[tool.ID] {
			t.Errorf("duplicate scraped ID %q", tool.ID)
		}
		seen[tool.ID] = true
		if !strings.HasPrefix(tool.ID, "scraped_") {
			t.Errorf("expected scraped_ ID prefix, got %q", tool.ID)
		}
	}
}

func TestNameFromURL(t *testing.T) {
	cases := []struct {
		url  string
		want string
	}{
		{"https://www.photomagic.io/tools", "Photomagic"},
		{"https://scribblebot.com", "Scribblebot"},
		{"http://sub.domain.example.org/x", "Sub"},
		{"not a url", ""},
		{"", ""},
	}

	for _, tc := range cases {
		if got := nameFromURL(tc.url); got != tc.want {
			t.Errorf("nameFromURL(%q) = %q, want %q", tc.url, got, tc.want)
		}
	}
}

func containsTag(tags []string, want string) bool {
	for _, tag := range tags {
		if tag == want {
			return true
		}
	}
	return false
}
