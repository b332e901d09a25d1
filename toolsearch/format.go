package toolsearch

import (
	"fmt"
	"strings"

	"broobot/tools"
)

// FormatRecommendations renders ranked results as a markdown message. An
// empty result set produces a fixed guidance message echoing the query.
func FormatRecommendations(query string, ranked []tools.ScoredTool) string {
	if len(ranked) == 0 {
		return fmt.Sprintf("I couldn't find any AI tools matching \"%s\". Try:\n"+
			"- Being more specific (e.g., \"image generation\" instead of \"images\")\n"+
			"- Using different keywords\n"+
			"- Asking about a tool category (e.g., \"writing tools\", \"coding assistants\")", query)
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Based on your request for **\"%s\"**, here are the best AI tools I found:\n\n", query)

	for i, t := range ranked {
		badge := "🔵 **PAID**"
		if t.IsFree {
			badge = "🟢 **FREE**"
		}
		price := ""
		if t.PaidTier != nil && t.PaidTier.Price != "" {
			price = fmt.Sprintf(" (%s)", t.PaidTier.Price)
		}
		latest := ""
		if t.IsScraped {
			latest = " 🆕 **LATEST**"
		}

		fmt.Fprintf(&sb, "### %d. %s %s%s%s\n", i+1, t.Name, badge, price, latest)
		fmt.Fprintf(&sb, "%s\n\n", t.Description)
		fmt.Fprintf(&sb, "**Best for:** %s\n", strings.Join(firstN(t.UseCases, 3), ", "))
		fmt.Fprintf(&sb, "**Rating:** %s %g/5\n", strings.Repeat("⭐", int(t.Rating)), t.Rating)
		fmt.Fprintf(&sb, "**Link:** [Visit %s](%s)\n\n", t.Name, t.URL)

		if t.FreeTier != nil {
			fmt.Fprintf(&sb, "✨ **Free tier:** %s\n\n", strings.Join(firstN(t.FreeTier.Features, 2), ", "))
		}
		if t.IsScraped {
			sb.WriteString("📌 **Source:** Fresh from theresanaiforthat.com\n\n")
		}
		sb.WriteString("---\n\n")
	}

	sb.WriteString("💡 **Tip:** Click any link above to visit the tool directly!")
	return sb.String()
}

func firstN(list []string, n int) []string {
	if len(list) > n {
		return list[:n]
	}
	return list
}
