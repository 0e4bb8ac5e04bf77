package ai

import (
	"context"
	"fmt"

	"dailybrief/internal/news"
)

const analystSystemPrompt = "You are a professional financial news analyst."

const analysisPromptTemplate = `Analyze the following news article and respond with the specified JSON object.

Article title: %s
Article body:
%s

Output format:
{
  "summary_2lines": "a concise summary readable in two lines",
  "why_it_matters": "why this news is important, with background and context",
  "market_impact": "concrete impact on markets, companies and the economy",
  "category": "exactly one of [Tech, Markets, Geopolitics, Economy, Corporate]"
}
`

// Analyzer turns article text into a structured Analysis via one completion
// call. A failed call or an unparseable response fails the article; there is
// no retry, so at most one article is lost per call failure.
type Analyzer struct {
	completer Completer
}

func NewAnalyzer(completer Completer) *Analyzer {
	return &Analyzer{completer: completer}
}

func (a *Analyzer) Analyze(ctx context.Context, title, content string) (*news.Analysis, error) {
	prompt := fmt.Sprintf(analysisPromptTemplate, title, content)

	raw, err := a.completer.Complete(ctx, analystSystemPrompt, prompt)
	if err != nil {
		return nil, fmt.Errorf("analysis call: %w", err)
	}

	var analysis news.Analysis
	if err := DecodeJSON(raw, &analysis); err != nil {
		return nil, fmt.Errorf("parse analysis response: %w", err)
	}
	return &analysis, nil
}
