// Package brief ranks and buckets enriched articles into the daily brief.
package brief

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"dailybrief/internal/ai"
	"dailybrief/internal/metrics"
	"dailybrief/internal/news"
)

const editorSystemPrompt = "You are an expert editor for a business news brief."

const rankingPromptTemplate = `From the news list below, pick the 5 stories that matter most to business readers today and return their index numbers as a JSON array. Weigh market impact, geopolitical risk and technological breakthroughs.

News list:
%s

Output format:
{
  "top5_indices": [index1, index2, index3, index4, index5]
}
`

// Selector picks the top articles for the brief via one ranking call.
type Selector struct {
	completer ai.Completer
	logger    *slog.Logger
}

func NewSelector(completer ai.Completer) *Selector {
	return &Selector{completer: completer, logger: slog.Default()}
}

type ranking struct {
	TopIndices []int `json:"top5_indices"`
}

// SelectTop returns up to 5 articles ordered by the model's importance
// ranking. Indices outside [0, len) are dropped without replacement, so a
// response made up entirely of out-of-range indices yields an empty brief;
// duplicates are kept as returned, and anything past the first 5 usable
// indices is ignored. Any call or parse failure falls back to the first
// five articles in arrival order. The input order is task completion order
// and carries no quality signal.
func (s *Selector) SelectTop(ctx context.Context, articles []news.Article) []news.Article {
	if len(articles) == 0 {
		return nil
	}

	var index strings.Builder
	for i, a := range articles {
		fmt.Fprintf(&index, "%d: %s - %s\n", i, a.Title, a.SummaryTwoLines)
	}
	prompt := fmt.Sprintf(rankingPromptTemplate, index.String())

	raw, err := s.completer.Complete(ctx, editorSystemPrompt, prompt)
	if err != nil {
		s.logger.Error("ranking call failed, using arrival order", "err", err)
		metrics.Global.IncrementRankingFallbacks()
		return firstN(articles, 5)
	}

	var r ranking
	if err := ai.DecodeJSON(raw, &r); err != nil {
		s.logger.Error("ranking response unparseable, using arrival order", "err", err)
		metrics.Global.IncrementRankingFallbacks()
		return firstN(articles, 5)
	}

	top := make([]news.Article, 0, 5)
	for _, i := range r.TopIndices {
		if len(top) == 5 {
			s.logger.Warn("ranking returned more than 5 indices, ignoring the rest", "indices", len(r.TopIndices))
			break
		}
		if i < 0 || i >= len(articles) {
			s.logger.Warn("ranking returned out-of-range index", "index", i, "articles", len(articles))
			continue
		}
		top = append(top, articles[i])
	}
	return top
}

func firstN(articles []news.Article, n int) []news.Article {
	if len(articles) < n {
		n = len(articles)
	}
	return articles[:n]
}
