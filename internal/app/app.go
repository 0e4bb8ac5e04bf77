// Package app wires the configuration, collaborators and pipeline into one
// run.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"dailybrief/internal/ai"
	"dailybrief/internal/brief"
	"dailybrief/internal/config"
	"dailybrief/internal/feeds"
	"dailybrief/internal/logger"
	"dailybrief/internal/metrics"
	"dailybrief/internal/pipeline"
	"dailybrief/internal/report"
	"dailybrief/internal/rss"
	"dailybrief/internal/scraper"
)

// Run executes one ingest-enrich-aggregate cycle and writes the brief
// artifact. It returns an error only for precondition and output failures;
// per-source and per-entry failures are contained inside the pipeline.
func Run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("configuration: %w", err)
	}
	logger.Init(cfg.Debug)

	sources, err := loadSources(cfg.FeedsConfigPath)
	if err != nil {
		return err
	}

	ctx := context.Background()
	started := time.Now()

	completer, closeCompleter, err := newCompleter(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeCompleter()

	content := scraper.New(cfg.RequestTimeout)
	analyzer := ai.NewAnalyzer(completer)
	processor := pipeline.NewProcessor(content, analyzer, cfg.MaxContentChars)
	scheduler := pipeline.NewScheduler(rss.NewFetcher(), processor, cfg.WorkerCount, cfg.EntriesPerFeed)

	articles, err := scheduler.Run(ctx, sources)
	if err != nil {
		metrics.Global.SetError(err.Error())
		return fmt.Errorf("run pipeline: %w", err)
	}

	selector := brief.NewSelector(completer)
	top := selector.SelectTop(ctx, articles)

	doc := brief.Assemble(articles, top, time.Now())
	if err := report.Write(cfg.OutputPath, doc); err != nil {
		metrics.Global.SetError(err.Error())
		return err
	}

	metrics.Global.RecordRunDuration(time.Since(started))
	metrics.Global.SetLastRun()
	slog.Info("brief generated",
		"path", cfg.OutputPath,
		"articles", len(articles),
		"top", len(top),
		"took", time.Since(started).Round(time.Millisecond))
	return nil
}

func loadSources(path string) ([]feeds.Source, error) {
	sources, err := feeds.Load(path)
	if errors.Is(err, os.ErrNotExist) {
		slog.Info("feeds config not found, using built-in sources", "path", path)
		return feeds.Defaults(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("load feeds config: %w", err)
	}
	return sources, nil
}

func newCompleter(ctx context.Context, cfg *config.Config) (ai.Completer, func(), error) {
	switch cfg.Provider {
	case config.ProviderGemini:
		client, err := ai.NewGemini(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			return nil, nil, err
		}
		return client, client.Close, nil
	default:
		client, err := ai.NewOpenAI(cfg.OpenAIAPIKey, cfg.OpenAIModel, cfg.OpenAIBaseURL)
		if err != nil {
			return nil, nil, err
		}
		return client, func() {}, nil
	}
}
