package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/panjf2000/ants/v2"

	"dailybrief/internal/feeds"
	"dailybrief/internal/metrics"
	"dailybrief/internal/news"
	"dailybrief/internal/rss"
)

// FeedFetcher pulls the top entries from one feed source.
type FeedFetcher interface {
	Fetch(ctx context.Context, src feeds.Source, limit int) ([]rss.Entry, error)
}

// EntryProcessor enriches one feed entry.
type EntryProcessor interface {
	Process(ctx context.Context, entry rss.Entry, src feeds.Source) (*news.Article, error)
}

// Scheduler flattens the per-source entry lists into one task set and fans
// it out over a bounded worker pool. It waits for every submitted task to
// reach a terminal state; task failures are logged and counted but never
// abort the run.
type Scheduler struct {
	feedFetcher    FeedFetcher
	processor      EntryProcessor
	workers        int
	entriesPerFeed int
	logger         *slog.Logger
}

func NewScheduler(feedFetcher FeedFetcher, processor EntryProcessor, workers, entriesPerFeed int) *Scheduler {
	if workers < 1 {
		workers = 1
	}
	if entriesPerFeed < 1 {
		entriesPerFeed = 5
	}
	return &Scheduler{
		feedFetcher:    feedFetcher,
		processor:      processor,
		workers:        workers,
		entriesPerFeed: entriesPerFeed,
		logger:         slog.Default(),
	}
}

type task struct {
	entry rss.Entry
	src   feeds.Source
}

type outcome struct {
	article *news.Article
	entry   rss.Entry
	err     error
}

// Run fetches every source, enriches every entry, and returns the articles
// that made it through. The returned order is task completion order and is
// not deterministic across runs; aggregation downstream must not rely on it.
func (s *Scheduler) Run(ctx context.Context, sources []feeds.Source) ([]news.Article, error) {
	var tasks []task
	okSources := 0

	for _, src := range sources {
		entries, err := s.feedFetcher.Fetch(ctx, src, s.entriesPerFeed)
		if err != nil {
			s.logger.Error("could not parse feed", "source", src.Name, "url", src.URL, "err", err)
			metrics.Global.IncrementSourcesFailed()
			continue
		}
		okSources++
		for _, e := range entries {
			tasks = append(tasks, task{entry: e, src: src})
		}
	}
	s.logger.Info("feeds loaded", "sources_ok", okSources, "sources_total", len(sources), "entries", len(tasks))

	if len(tasks) == 0 {
		return nil, nil
	}

	pool, err := ants.NewPool(s.workers)
	if err != nil {
		return nil, fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	results := make(chan outcome, len(tasks))
	var wg sync.WaitGroup

	for _, t := range tasks {
		t := t
		metrics.Global.IncrementEntriesSubmitted()
		wg.Add(1)
		if err := pool.Submit(func() {
			defer wg.Done()
			results <- s.runTask(ctx, t)
		}); err != nil {
			wg.Done()
			s.logger.Error("could not submit entry", "title", t.entry.Title, "err", err)
			metrics.Global.IncrementEntriesDropped()
		}
	}

	// Completion barrier: every submitted task terminates before the
	// enriched set is read.
	wg.Wait()
	close(results)

	var articles []news.Article
	for out := range results {
		if out.err != nil {
			s.logger.Warn("entry dropped", "title", out.entry.Title, "err", out.err)
			metrics.Global.IncrementEntriesDropped()
			continue
		}
		articles = append(articles, *out.article)
		metrics.Global.IncrementArticlesEnriched()
	}

	s.logger.Info("enrichment finished", "enriched", len(articles), "submitted", len(tasks))
	return articles, nil
}

// runTask never lets a panic escape a worker slot; a paniced entry is just
// another dropped entry.
func (s *Scheduler) runTask(ctx context.Context, t task) (out outcome) {
	defer func() {
		if r := recover(); r != nil {
			out = outcome{entry: t.entry, err: fmt.Errorf("entry processing panicked: %v", r)}
		}
	}()

	s.logger.Debug("processing entry", "title", t.entry.Title, "source", t.src.Name)
	article, err := s.processor.Process(ctx, t.entry, t.src)
	if err != nil {
		return outcome{entry: t.entry, err: err}
	}
	return outcome{article: article, entry: t.entry}
}
