// Package rank scores and orders tool candidates against a free-text query.
package rank

import (
	"sort"
	"strings"

	"broobot/tools"
)

// DefaultLimit is the number of results returned when no limit is given.
const DefaultLimit = 5

// Options control filtering and truncation of ranked results.
type Options struct {
	Limit      int
	Categories []string
	FreeOnly   bool
	MinRating  float64
}

// Rank scores every candidate in the pool against the query, drops candidates
// scoring zero or failing the option filters, and returns the top results
// sorted by descending score. The sort is stable: candidates with equal
// scores keep their pool order, so callers that want fresh entries to win
// ties put them first. Rank is pure; calling it twice with the same inputs
// yields the same output.
func Rank(query string, pool []tools.Tool, opts Options) []tools.ScoredTool {
	queryLower := strings.ToLower(strings.TrimSpace(query))
	var queryWords []string
	for _, w := range strings.Fields(queryLower) {
		// Ignore short words like "an", "is", "to".
		if len(w) > 2 {
			queryWords = append(queryWords, w)
		}
	}

	results := make([]tools.ScoredTool, 0, len(pool))
	for _, t := range pool {
		s := score(t, queryLower, queryWords)
		if s <= 0 {
			continue
		}
		if opts.FreeOnly && !t.IsFree {
			continue
		}
		if opts.MinRating > 0 && t.Rating < opts.MinRating {
			continue
		}
		if len(opts.Categories) > 0 && !containsString(opts.Categories, t.Category) {
			continue
		}
		results = append(results, tools.ScoredTool{Tool: t, RelevanceScore: s})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].RelevanceScore > results[j].RelevanceScore
	})

	limit := opts.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}
	if len(results) > limit {
		results = results[:limit]
	}
	return results
}

// score accumulates additive relevance signals for one candidate:
//
//	exact name match            +50  (or +30 for a substring match)
//	category substring          +25
//	subcategory overlap         +15 each
//	exact tag match             +12 each
//	partial tag match            +6 each (tag, word) pair
//	use-case word match          +4 each
//	description word match       +3 each
//	free tool + "free" in query +15
//	free tool                   +20
//	freshly scraped             +10
//	rating bonus                rating * 0.5
//
// Signals keyed on the whole query are skipped for an empty query; an empty
// string is a substring of everything and would score every candidate.
func score(t tools.Tool, queryLower string, queryWords []string) float64 {
	var s float64

	if queryLower != "" {
		nameLower := strings.ToLower(t.Name)
		switch {
		case nameLower == queryLower:
			s += 50
		case strings.Contains(nameLower, queryLower):
			s += 30
		}

		if strings.Contains(strings.ToLower(t.Category), queryLower) {
			s += 25
		}

		for _, sub := range t.Subcategories {
			subLower := strings.ToLower(sub)
			if strings.Contains(queryLower, subLower) || strings.Contains(subLower, queryLower) {
				s += 15
			}
		}
	}

	for _, tag := range t.Tags {
		tagLower := strings.ToLower(tag)
		if containsString(queryWords, tagLower) {
			s += 12
		}
		for _, w := range queryWords {
			if strings.Contains(tagLower, w) || strings.Contains(w, tagLower) {
				s += 6
			}
		}
	}

	for _, useCase := range t.UseCases {
		useCaseLower := strings.ToLower(useCase)
		for _, w := range queryWords {
			if strings.Contains(useCaseLower, w) {
				s += 4
			}
		}
	}

	descLower := strings.ToLower(t.Description)
	for _, w := range queryWords {
		if strings.Contains(descLower, w) {
			s += 3
		}
	}

	if t.IsFree && containsString(queryWords, "free") {
		s += 15
	}
	if t.IsFree {
		s += 20
	}
	if t.IsScraped {
		s += 10
	}

	s += t.Rating * 0.5

	return s
}

func containsString(list []string, want string) bool {
	for _, s := range list {
		if s == want {
			return true
		}
	}
	return false
}
