package scrape

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"broobot/tools"
)

const (
	scrapedCategory = "Free AI Tools"
	scrapedRating   = 4.0
	// maxFallbackURLs caps the blind URL extraction when the listing has no
	// recognizable line structure.
	maxFallbackURLs = 20
)

// tagVocabulary is the fixed set of topic keywords scanned for in
// description lines.
var tagVocabulary = []string{
	"writing", "coding", "image", "video", "audio", "design",
	"marketing", "research", "productivity", "chatbot", "generation",
	"analytics", "automation", "text", "speech", "translation",
}

var (
	anyURLPattern   = regexp.MustCompile(`https?://[^\s]+`)
	firstURLPattern = regexp.MustCompile(`https?://[^\s,;)]+`)
)

// ParseTools extracts tool candidates from the proxied listing text. The
// scan is best-effort: a line carrying a URL starts a new candidate, and
// following lines accumulate into its description while being mined for
// topic tags. Input that yields no structured candidates falls back to a
// blind URL extraction. Malformed input never fails; it just produces
// fewer (possibly zero) candidates.
func ParseTools(content string) []tools.Tool {
	var parsed []tools.Tool
	var current *candidate

	for _, raw := range strings.Split(content, "\n") {
		line := strings.TrimSpace(raw)
		// Skip blanks and heading fragments too short to carry anything.
		if len(line) < 10 {
			continue
		}

		if strings.Contains(line, "http") && !strings.HasPrefix(line, "#") {
			if current != nil && current.name != "" {
				parsed = append(parsed, current.build())
			}
			u := extractURL(line)
			current = &candidate{url: u, name: nameFromURL(u)}
			continue
		}

		if current != nil {
			current.description += " " + line
			current.tags = append(current.tags, extractTags(line)...)
		}
	}
	if current != nil && current.name != "" {
		parsed = append(parsed, current.build())
	}

	if len(parsed) == 0 {
		parsed = fallbackFromURLs(content)
	}
	return parsed
}

// candidate accumulates one tool entry while scanning lines.
type candidate struct {
	url         string
	name        string
	description string
	tags        []string
}

func (c *candidate) build() tools.Tool {
	desc := strings.TrimSpace(c.description)
	if desc == "" {
		desc = "AI tool from theresanaiforthat.com"
	}
	useCases := c.tags
	if len(useCases) > 5 {
		useCases = useCases[:5]
	}
	return tools.Tool{
		ID:            newScrapedID(),
		Name:          c.name,
		Description:   desc,
		Category:      scrapedCategory,
		Subcategories: []string{"Free", "Trending"},
		URL:           c.url,
		IsFree:        true,
		FreeTier:      &tools.FreeTier{Features: []string{"Free tier available"}},
		UseCases:      useCases,
		Tags:          dedupeTags(append([]string{"free", "latest"}, c.tags...)),
		Rating:        scrapedRating,
		IsScraped:     true,
	}
}

// fallbackFromURLs synthesizes a generic candidate per absolute URL found
// anywhere in the content, capped at maxFallbackURLs. URLs that yield no
// usable name are skipped.
func fallbackFromURLs(content string) []tools.Tool {
	urls := anyURLPattern.FindAllString(content, maxFallbackURLs)

	var parsed []tools.Tool
	for _, u := range urls {
		u = strings.TrimRight(u, ",;")
		name := nameFromURL(u)
		if name == "" {
			continue
		}
		parsed = append(parsed, tools.Tool{
			ID:            newScrapedID(),
			Name:          name,
			Description:   "Free AI tool from theresanaiforthat.com",
			Category:      scrapedCategory,
			Subcategories: []string{"Free", "Trending"},
			URL:           u,
			IsFree:        true,
			FreeTier:      &tools.FreeTier{Features: []string{"Free tier available"}},
			UseCases:      []string{"AI automation", "Productivity"},
			Tags:          []string{"free", "ai", "latest"},
			Rating:        scrapedRating,
			IsScraped:     true,
		})
	}
	return parsed
}

// extractURL returns the first absolute URL embedded in the line.
func extractURL(line string) string {
	return firstURLPattern.FindString(line)
}

// nameFromURL derives a display name from the URL's domain, capitalized
// with any "www." prefix stripped.
func nameFromURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil || u.Hostname() == "" {
		return ""
	}
	host := strings.TrimPrefix(u.Hostname(), "www.")
	name, _, _ := strings.Cut(host, ".")
	if name == "" {
		return ""
	}
	return strings.ToUpper(name[:1]) + name[1:]
}

// extractTags returns every vocabulary keyword occurring in the line.
func extractTags(line string) []string {
	lower := strings.ToLower(line)
	var found []string
	for _, tag := range tagVocabulary {
		if strings.Contains(lower, tag) {
			found = append(found, tag)
		}
	}
	return found
}

func dedupeTags(in []string) []string {
	seen := make(map[string]bool, len(in))
	out := make([]string, 0, len(in))
	for _, tag := range in {
		if !seen[tag] {
			seen[tag] = true
			out = append(out, tag)
		}
	}
	return out
}

// newScrapedID generates an ephemeral ID for a scraped candidate. IDs are
// regenerated on every refresh; scraped entries are not stable across
// refreshes.
func newScrapedID() string {
	return fmt.Sprintf("scraped_%d_%s", time.Now().UnixMilli(), uuid.NewString()[:8])
}
