// Package rss pulls entries from configured feed sources.
package rss

import (
	"context"
	"log/slog"

	"github.com/mmcdole/gofeed"

	"dailybrief/internal/feeds"
)

// Entry is one feed item reduced to what the pipeline needs.
type Entry struct {
	Title string
	Link  string
}

// Fetcher parses feeds with gofeed.
type Fetcher struct {
	parser *gofeed.Parser
}

func NewFetcher() *Fetcher {
	return &Fetcher{parser: gofeed.NewParser()}
}

// Fetch downloads and parses one source, returning at most limit entries.
// Shorter feeds return what they have; longer feeds are truncated.
func (f *Fetcher) Fetch(ctx context.Context, src feeds.Source, limit int) ([]Entry, error) {
	feed, err := f.parser.ParseURLWithContext(src.URL, ctx)
	if err != nil {
		return nil, err
	}

	items := feed.Items
	if len(items) > limit {
		items = items[:limit]
	}

	entries := make([]Entry, 0, len(items))
	for _, item := range items {
		entries = append(entries, Entry{Title: item.Title, Link: item.Link})
	}

	slog.Debug("loaded feed", "source", src.Name, "entries", len(entries), "total", len(feed.Items))
	return entries, nil
}
