// Package tools defines the tool recommendation data model and the static
// seed catalog of AI tools.
package tools

// FreeTier describes what a tool offers without payment.
type FreeTier struct {
	Model       string   `json:"model,omitempty"`
	Limitations string   `json:"limitations,omitempty"`
	Features    []string `json:"features,omitempty"`
}

// PaidTier describes a tool's paid offering.
type PaidTier struct {
	Price    string   `json:"price,omitempty"`
	Model    string   `json:"model,omitempty"`
	Features []string `json:"features,omitempty"`
}

// Tool is a single recommendation candidate, either from the static catalog
// or freshly scraped from the live listing.
type Tool struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	Category      string    `json:"category"`
	Subcategories []string  `json:"subcategories,omitempty"`
	URL           string    `json:"url"`
	IsFree        bool      `json:"isFree"`
	FreeTier      *FreeTier `json:"freeTier,omitempty"`
	PaidTier      *PaidTier `json:"paidTier,omitempty"`
	UseCases      []string  `json:"useCases,omitempty"`
	Tags          []string  `json:"tags"`
	Pros          []string  `json:"pros,omitempty"`
	Cons          []string  `json:"cons,omitempty"`
	Rating        float64   `json:"rating"`
	IsScraped     bool      `json:"isScraped,omitempty"`
}

// ScoredTool is a Tool together with its computed relevance score. Scores
// only have meaning relative to other results of the same search.
type ScoredTool struct {
	Tool
	RelevanceScore float64 `json:"relevanceScore"`
}
