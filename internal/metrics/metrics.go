package metrics

import (
	"sync"
	"time"
)

type Metrics struct {
	mu sync.RWMutex

	// Counters
	SourcesFailed    int64
	EntriesSubmitted int64
	EntriesDropped   int64
	ArticlesEnriched int64
	RankingFallbacks int64

	// Timings
	LastRunDuration time.Duration

	// Status
	LastRunTime   time.Time
	LastErrorTime time.Time
	LastError     string
	IsHealthy     bool
}

var Global = &Metrics{IsHealthy: true}

func (m *Metrics) IncrementSourcesFailed() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SourcesFailed++
}

func (m *Metrics) IncrementEntriesSubmitted() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.EntriesSubmitted++
}

func (m *Metrics) IncrementEntriesDropped() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.EntriesDropped++
}

func (m *Metrics) IncrementArticlesEnriched() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ArticlesEnriched++
}

func (m *Metrics) IncrementRankingFallbacks() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.RankingFallbacks++
}

func (m *Metrics) RecordRunDuration(duration time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.LastRunDuration = duration
}

func (m *Metrics) SetLastRun() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.LastRunTime = time.Now()
	m.IsHealthy = true
}

func (m *Metrics) SetError(err string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.LastError = err
	m.LastErrorTime = time.Now()
	m.IsHealthy = false
}

func (m *Metrics) GetStats() map[string]interface{} {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return map[string]interface{}{
		"sources_failed":       m.SourcesFailed,
		"entries_submitted":    m.EntriesSubmitted,
		"entries_dropped":      m.EntriesDropped,
		"articles_enriched":    m.ArticlesEnriched,
		"ranking_fallbacks":    m.RankingFallbacks,
		"last_run_duration_ms": m.LastRunDuration.Milliseconds(),
		"last_run_time":        m.LastRunTime.Format(time.RFC3339),
		"last_error_time":      m.LastErrorTime.Format(time.RFC3339),
		"last_error":           m.LastError,
		"is_healthy":           m.IsHealthy,
	}
}
