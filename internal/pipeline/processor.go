package pipeline

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"dailybrief/internal/feeds"
	"dailybrief/internal/news"
	"dailybrief/internal/rss"
)

// Drop reasons, so callers and tests can tell failure stages apart.
var (
	ErrExtract = errors.New("content extraction failed")
	ErrAnalyze = errors.New("article analysis failed")
)

// ContentFetcher retrieves the main text of an article page.
type ContentFetcher interface {
	Extract(ctx context.Context, url string) (string, error)
}

// Analyzer produces a structured analysis for one article.
type Analyzer interface {
	Analyze(ctx context.Context, title, content string) (*news.Analysis, error)
}

// Processor enriches one feed entry: fetch and extract the article body,
// analyze it, assemble the final record. Each step short-circuits to a typed
// error; no exception-like path exists.
type Processor struct {
	content  ContentFetcher
	analyzer Analyzer
	maxChars int
}

func NewProcessor(content ContentFetcher, analyzer Analyzer, maxChars int) *Processor {
	if maxChars <= 0 {
		maxChars = 4000
	}
	return &Processor{content: content, analyzer: analyzer, maxChars: maxChars}
}

func (p *Processor) Process(ctx context.Context, entry rss.Entry, src feeds.Source) (*news.Article, error) {
	text, err := p.content.Extract(ctx, entry.Link)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrExtract, err)
	}
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("%w: empty text for %s", ErrExtract, entry.Link)
	}

	// Bound the prompt size; downstream models have input limits.
	text = truncateRunes(text, p.maxChars)

	analysis, err := p.analyzer.Analyze(ctx, entry.Title, text)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAnalyze, err)
	}

	category := analysis.Category
	if !news.ValidCategory(category) {
		category = src.Category
	}

	return &news.Article{
		Title:           entry.Title,
		SummaryTwoLines: analysis.SummaryTwoLines,
		WhyItMatters:    analysis.WhyItMatters,
		MarketImpact:    analysis.MarketImpact,
		Category:        category,
		Source:          src.Name,
		URL:             entry.Link,
	}, nil
}

func truncateRunes(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}
