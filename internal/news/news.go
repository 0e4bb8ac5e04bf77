// Package news holds the data model exchanged between the enrichment
// pipeline and the brief assembly stage.
package news

// BriefCategories is the fixed set of category buckets in the output
// document, in the order the prompt presents them.
var BriefCategories = []string{"Tech", "Markets", "Geopolitics", "Economy", "Corporate"}

// ValidCategory reports whether c is one of the brief categories.
func ValidCategory(c string) bool {
	for _, known := range BriefCategories {
		if c == known {
			return true
		}
	}
	return false
}

// Analysis is the structured result of the AI analysis call for one article.
// Category may be empty or outside BriefCategories; callers fall back to the
// source feed's declared category in that case.
type Analysis struct {
	SummaryTwoLines string `json:"summary_2lines"`
	WhyItMatters    string `json:"why_it_matters"`
	MarketImpact    string `json:"market_impact"`
	Category        string `json:"category"`
}

// Article is an enriched feed entry. One exists only when content extraction
// and AI analysis both succeeded; there are no partially filled articles.
type Article struct {
	Title           string `json:"title"`
	SummaryTwoLines string `json:"summary_2lines"`
	WhyItMatters    string `json:"why_it_matters"`
	MarketImpact    string `json:"market_impact"`
	Category        string `json:"category"`
	Source          string `json:"source"`
	URL             string `json:"url"`
}

// Brief is the final document written once per run.
type Brief struct {
	GeneratedAt string               `json:"generated_at_jst"`
	TodaysBrief []Article            `json:"todays_brief"`
	Categories  map[string][]Article `json:"categories"`
}
