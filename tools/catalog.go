package tools

import "sort"

// Catalog returns the static seed catalog of AI tools. The returned slice is
// shared; callers must treat it as read-only.
func Catalog() []Tool {
	return catalog
}

// Categories returns the sorted set of distinct catalog categories.
func Categories() []string {
	seen := make(map[string]bool)
	var categories []string
	for _, t := range catalog {
		if !seen[t.Category] {
			seen[t.Category] = true
			categories = append(categories, t.Category)
		}
	}
	sort.Strings(categories)
	return categories
}

// ByID looks up a catalog tool by its stable ID.
func ByID(id string) (Tool, bool) {
	for _, t := range catalog {
		if t.ID == id {
			return t, true
		}
	}
	return Tool{}, false
}

// CatalogStats summarizes the static catalog.
type CatalogStats struct {
	TotalTools   int      `json:"totalTools"`
	FreeTools    int      `json:"freeTools"`
	PaidTools    int      `json:"paidTools"`
	Categories   int      `json:"categories"`
	CategoryList []string `json:"categoryList"`
}

// Stats computes counts over the static catalog.
func Stats() CatalogStats {
	free := 0
	for _, t := range catalog {
		if t.IsFree {
			free++
		}
	}
	categories := Categories()
	return CatalogStats{
		TotalTools:   len(catalog),
		FreeTools:    free,
		PaidTools:    len(catalog) - free,
		Categories:   len(categories),
		CategoryList: categories,
	}
}

var catalog = []Tool{
	{
		ID:            "1",
		Name:          "ChatGPT",
		Description:   "Conversational AI for writing, coding, analysis, brainstorming, and general questions",
		Category:      "General AI",
		Subcategories: []string{"Writing", "Coding", "Research", "Brainstorming"},
		URL:           "https://chat.openai.com",
		IsFree:        true,
		FreeTier: &FreeTier{
			Model:       "GPT-3.5 Turbo",
			Limitations: "Rate limits during peak hours",
			Features:    []string{"Unlimited conversations", "Web browsing (Plus)", "Image analysis (Plus)"},
		},
		PaidTier: &PaidTier{
			Price:    "$20/month",
			Model:    "GPT-4",
			Features: []string{"Priority access", "Advanced data analysis", "DALL-E image generation"},
		},
		UseCases: []string{
			"Writing blog posts and articles",
			"Code debugging and generation",
			"Research and analysis",
			"Creative brainstorming",
			"Learning new topics",
		},
		Tags:   []string{"chatbot", "writing", "coding", "general", "popular", "openai"},
		Pros:   []string{"Very versatile", "Fast responses", "Large user community"},
		Cons:   []string{"Can be overloaded", "Free tier limited during peak times"},
		Rating: 4.8,
	},
	{
		ID:            "2",
		Name:          "Claude",
		Description:   "Advanced AI assistant by Anthropic, excellent for analysis, coding, and long conversations",
		Category:      "General AI",
		Subcategories: []string{"Analysis", "Writing", "Coding", "Research"},
		URL:           "https://claude.ai",
		IsFree:        true,
		FreeTier: &FreeTier{
			Model:    "Claude 3 Sonnet",
			Features: []string{"Long context window", "Document analysis", "Coding assistance"},
		},
		PaidTier: &PaidTier{
			Price:    "$20/month",
			Model:    "Claude 3 Opus",
			Features: []string{"5x more usage", "Priority access", "Extended context"},
		},
		UseCases: []string{
			"Document analysis",
			"Code review and generation",
			"Research synthesis",
			"Complex reasoning tasks",
			"Long-form content creation",
		},
		Tags:   []string{"chatbot", "analysis", "coding", "research", "anthropic", "reliable"},
		Rating: 4.9,
	},
	{
		ID:            "3",
		Name:          "Perplexity AI",
		Description:   "AI-powered search engine with cited sources for research and fact-checking",
		Category:      "Research & Search",
		Subcategories: []string{"Research", "Search", "Academic", "Fact-checking"},
		URL:           "https://www.perplexity.ai",
		IsFree:        true,
		FreeTier: &FreeTier{
			Model:       "Perplexity",
			Limitations: "5 Pro searches per day",
			Features:    []string{"Unlimited Quick searches", "Source citations", "Follow-up questions"},
		},
		PaidTier: &PaidTier{
			Price:    "$20/month",
			Features: []string{"300+ Pro searches/day", "Choose AI model", "API access"},
		},
		UseCases: []string{
			"Academic research with citations",
			"Fact-checking claims",
			"Current events analysis",
			"Literature reviews",
			"Market research",
		},
		Tags:   []string{"research", "search", "citations", "sources", "academic", "reliable"},
		Rating: 4.7,
	},
	{
		ID:            "4",
		Name:          "Midjourney",
		Description:   "AI image generation from text descriptions, creating stunning art and designs",
		Category:      "Image Generation",
		Subcategories: []string{"Art", "Design", "Creative", "Illustration"},
		URL:           "https://www.midjourney.com",
		IsFree:        false,
		PaidTier: &PaidTier{
			Price:    "$10-60/month",
			Features: []string{"High-resolution images", "Commercial use", "Fast generation", "Private mode"},
		},
		UseCases: []string{
			"Concept art creation",
			"Marketing visuals",
			"Book illustrations",
			"Product mockups",
			"Social media content",
		},
		Tags:   []string{"image", "art", "creative", "design", "generation", "popular"},
		Rating: 4.9,
	},
	{
		ID:            "5",
		Name:          "DALL-E 3",
		Description:   "OpenAI's advanced image generation model, integrated with ChatGPT Plus",
		Category:      "Image Generation",
		Subcategories: []string{"Art", "Design", "Creative"},
		URL:           "https://openai.com/dall-e-3",
		IsFree:        false,
		PaidTier: &PaidTier{
			Price:    "$20/month (via ChatGPT Plus)",
			Features: []string{"Text-to-image generation", "Image editing", "High quality"},
		},
		UseCases: []string{
			"Marketing materials",
			"Social media graphics",
			"Concept visualization",
			"Creative projects",
		},
		Tags:   []string{"image", "art", "generation", "openai", "creative"},
		Rating: 4.6,
	},
	{
		ID:            "6",
		Name:          "Runway ML",
		Description:   "AI-powered video editing and generation tools for creators",
		Category:      "Video",
		Subcategories: []string{"Video Editing", "Video Generation", "Creative"},
		URL:           "https://runwayml.com",
		IsFree:        true,
		FreeTier: &FreeTier{
			Limitations: "125 credits per month",
			Features:    []string{"Gen-2 video generation", "Image tools", "Basic editing"},
		},
		PaidTier: &PaidTier{
			Price:    "$12-76/month",
			Features: []string{"More credits", "HD export", "Unlimited projects"},
		},
		UseCases: []string{
			"Video content creation",
			"Special effects",
			"Video editing",
			"Animation",
			"Social media videos",
		},
		Tags:   []string{"video", "creative", "generation", "editing", "animation"},
		Rating: 4.5,
	},
	{
		ID:            "7",
		Name:          "Copy.ai",
		Description:   "AI copywriting assistant for marketing content and business writing",
		Category:      "Writing & Marketing",
		Subcategories: []string{"Copywriting", "Marketing", "Content", "Business"},
		URL:           "https://www.copy.ai",
		IsFree:        true,
		FreeTier: &FreeTier{
			Limitations: "2,000 words per month",
			Features:    []string{"90+ templates", "Multiple languages", "Tone control"},
		},
		PaidTier: &PaidTier{
			Price:    "$49/month",
			Features: []string{"Unlimited words", "Priority support", "Brand voice"},
		},
		UseCases: []string{
			"Marketing copy",
			"Product descriptions",
			"Social media posts",
			"Email campaigns",
			"Ad copy",
		},
		Tags:   []string{"copywriting", "marketing", "content", "business", "writing"},
		Rating: 4.4,
	},
	{
		ID:            "8",
		Name:          "Notion AI",
		Description:   "AI writing assistant integrated directly into your Notion workspace",
		Category:      "Productivity",
		Subcategories: []string{"Writing", "Productivity", "Organization"},
		URL:           "https://www.notion.so/product/ai",
		IsFree:        false,
		PaidTier: &PaidTier{
			Price:    "$10/user/month",
			Features: []string{"Integrated with Notion", "Writing assistance", "Summaries", "Translations"},
		},
		UseCases: []string{
			"Note-taking enhancement",
			"Document writing",
			"Summarization",
			"Task management",
			"Knowledge organization",
		},
		Tags:   []string{"productivity", "writing", "notes", "organization"},
		Rating: 4.6,
	},
	{
		ID:            "9",
		Name:          "Grammarly",
		Description:   "AI-powered writing assistant for grammar, spelling, and style improvements",
		Category:      "Writing & Marketing",
		Subcategories: []string{"Writing", "Editing", "Grammar"},
		URL:           "https://www.grammarly.com",
		IsFree:        true,
		FreeTier: &FreeTier{
			Features: []string{"Grammar checking", "Spelling", "Basic punctuation"},
		},
		PaidTier: &PaidTier{
			Price:    "$12-15/month",
			Features: []string{"Advanced suggestions", "Plagiarism detection", "Tone detector"},
		},
		UseCases: []string{
			"Email writing",
			"Document editing",
			"Professional communication",
			"Academic writing",
		},
		Tags:   []string{"writing", "grammar", "editing", "productivity"},
		Rating: 4.7,
	},
	{
		ID:            "10",
		Name:          "GitHub Copilot",
		Description:   "AI pair programmer that helps you write code faster",
		Category:      "Coding",
		Subcategories: []string{"Coding", "Development", "Programming"},
		URL:           "https://github.com/features/copilot",
		IsFree:        false,
		PaidTier: &PaidTier{
			Price:    "$10/month",
			Features: []string{"Code completion", "Multiple languages", "IDE integration"},
		},
		UseCases: []string{
			"Code completion",
			"Function generation",
			"Debugging assistance",
			"Learning new languages",
			"Boilerplate code",
		},
		Tags:   []string{"coding", "programming", "development", "github", "productivity"},
		Rating: 4.8,
	},
	{
		ID:            "11",
		Name:          "Jasper",
		Description:   "AI content platform for businesses to create marketing content at scale",
		Category:      "Writing & Marketing",
		Subcategories: []string{"Marketing", "Content", "Business", "Copywriting"},
		URL:           "https://www.jasper.ai",
		IsFree:        false,
		PaidTier: &PaidTier{
			Price:    "$49-125/month",
			Features: []string{"Long-form content", "Brand voice", "Team collaboration", "SEO mode"},
		},
		UseCases: []string{
			"Blog post writing",
			"Marketing campaigns",
			"Product descriptions",
			"Social media content",
			"Email marketing",
		},
		Tags:   []string{"marketing", "content", "business", "writing", "seo"},
		Rating: 4.5,
	},
	{
		ID:            "12",
		Name:          "Hugging Face",
		Description:   "Platform for machine learning models and AI tools with free access to thousands of models",
		Category:      "Development",
		Subcategories: []string{"Machine Learning", "AI Models", "Development"},
		URL:           "https://huggingface.co",
		IsFree:        true,
		FreeTier: &FreeTier{
			Features: []string{"Access to 100k+ models", "Inference API", "Community resources"},
		},
		UseCases: []string{
			"Custom AI model deployment",
			"Text generation",
			"Image processing",
			"NLP tasks",
			"Research",
		},
		Tags:   []string{"ml", "development", "models", "free", "opensource"},
		Rating: 4.8,
	},
}
