package metrics

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"
)

// SourceType — внешний источник данных, вызовы которого учитываются.
type SourceType string

const (
	SourceSeed        SourceType = "seed"
	SourcePostgres    SourceType = "postgres"
	SourceCache       SourceType = "cache"
	SourceSubcategory SourceType = "subcategory"
)

var sources = []SourceType{SourceSeed, SourcePostgres, SourceCache, SourceSubcategory}

type counters struct {
	callsTotal     atomic.Int64
	errorsTotal    atomic.Int64
	latencyTotalMs atomic.Int64
	lastLatencyMs  atomic.Int64
}

// SourceMetrics — метрики обращений к источникам объявлений и категорий.
type SourceMetrics struct {
	log *slog.Logger

	bySource map[SourceType]*counters
}

var (
	globalMetrics *SourceMetrics
	metricsOnce   sync.Once
)

// GetSourceMetrics возвращает глобальный экземпляр метрик.
func GetSourceMetrics(log *slog.Logger) *SourceMetrics {
	metricsOnce.Do(func() {
		globalMetrics = NewSourceMetrics(log)
	})
	return globalMetrics
}

// NewSourceMetrics создаёт независимый набор счётчиков.
func NewSourceMetrics(log *slog.Logger) *SourceMetrics {
	m := &SourceMetrics{
		log:      log,
		bySource: make(map[SourceType]*counters, len(sources)),
	}
	for _, s := range sources {
		m.bySource[s] = &counters{}
	}
	return m
}

// RecordCall записывает вызов источника. Неизвестные источники игнорируются.
func (m *SourceMetrics) RecordCall(source SourceType, latency time.Duration, err error) {
	c, ok := m.bySource[source]
	if !ok {
		return
	}

	latencyMs := latency.Milliseconds()
	c.callsTotal.Add(1)
	c.latencyTotalMs.Add(latencyMs)
	c.lastLatencyMs.Store(latencyMs)
	if err != nil {
		c.errorsTotal.Add(1)
	}

	if m.log != nil {
		logAttrs := []any{
			slog.String("source", string(source)),
			slog.Int64("latency_ms", latencyMs),
		}
		if err != nil {
			logAttrs = append(logAttrs, slog.String("error", err.Error()))
			m.log.Warn("source call failed", logAttrs...)
		} else {
			m.log.Debug("source call completed", logAttrs...)
		}
	}
}

// SourceCallTimer помогает измерять время вызовов.
type SourceCallTimer struct {
	metrics   *SourceMetrics
	source    SourceType
	startTime time.Time
}

// StartTimer начинает измерение времени вызова. Для nil-метрик таймер ничего не записывает.
func (m *SourceMetrics) StartTimer(source SourceType) *SourceCallTimer {
	return &SourceCallTimer{
		metrics:   m,
		source:    source,
		startTime: time.Now(),
	}
}

// Stop останавливает таймер и записывает метрики.
func (t *SourceCallTimer) Stop(err error) {
	if t.metrics == nil {
		return
	}
	t.metrics.RecordCall(t.source, time.Since(t.startTime), err)
}

// Stats — текущая статистика по источникам.
type Stats struct {
	Seed        SourceStats `json:"seed"`
	Postgres    SourceStats `json:"postgres"`
	Cache       SourceStats `json:"cache"`
	Subcategory SourceStats `json:"subcategory"`
}

// SourceStats — статистика по одному источнику.
type SourceStats struct {
	CallsTotal    int64   `json:"calls_total"`
	ErrorsTotal   int64   `json:"errors_total"`
	ErrorRate     float64 `json:"error_rate"`
	AvgLatencyMs  float64 `json:"avg_latency_ms"`
	LastLatencyMs int64   `json:"last_latency_ms"`
}

// GetStats возвращает текущую статистику.
func (m *SourceMetrics) GetStats() Stats {
	return Stats{
		Seed:        m.getSourceStats(SourceSeed),
		Postgres:    m.getSourceStats(SourcePostgres),
		Cache:       m.getSourceStats(SourceCache),
		Subcategory: m.getSourceStats(SourceSubcategory),
	}
}

func (m *SourceMetrics) getSourceStats(source SourceType) SourceStats {
	c := m.bySource[source]
	calls := c.callsTotal.Load()
	errors := c.errorsTotal.Load()

	var errorRate, avgLatency float64
	if calls > 0 {
		errorRate = float64(errors) / float64(calls)
		avgLatency = float64(c.latencyTotalMs.Load()) / float64(calls)
	}

	return SourceStats{
		CallsTotal:    calls,
		ErrorsTotal:   errors,
		ErrorRate:     errorRate,
		AvgLatencyMs:  avgLatency,
		LastLatencyMs: c.lastLatencyMs.Load(),
	}
}

// Reset сбрасывает все метрики.
func (m *SourceMetrics) Reset() {
	for _, c := range m.bySource {
		c.callsTotal.Store(0)
		c.errorsTotal.Store(0)
		c.latencyTotalMs.Store(0)
		c.lastLatencyMs.Store(0)
	}
}

// WrapWithMetrics оборачивает функцию для автоматического сбора метрик.
func WrapWithMetrics[T any](
	ctx context.Context,
	m *SourceMetrics,
	source SourceType,
	fn func(ctx context.Context) (T, error),
) (T, error) {
	timer := m.StartTimer(source)
	result, err := fn(ctx)
	timer.Stop(err)
	return result, err
}
