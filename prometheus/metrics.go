// Package prometheus records pipeline metrics with the Prometheus client.
package prometheus

import (
	"context"
	"net/http"
	"time"

	"github.com/fwojciec/siterank"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "siterank"

// Stage kinds used as the "kind" label.
const (
	KindAnalyze = "analyze"
	KindScore   = "score"
)

// Metrics holds the collectors shared by the metric decorators.
type Metrics struct {
	StageRuns         *prometheus.CounterVec
	StageDuration     *prometheus.HistogramVec
	OptimizationScore prometheus.Histogram
	PagesAnalyzed     *prometheus.CounterVec
}

// NewMetrics creates the collectors and registers them with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		StageRuns: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "stage_runs_total",
				Help:      "Total number of stage runs",
			},
			[]string{"kind", "stage", "status"},
		),
		StageDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "stage_duration_seconds",
				Help:      "Duration of stage runs in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"kind", "stage"},
		),
		OptimizationScore: factory.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "optimization_score",
				Help:      "Distribution of final optimization scores",
				Buckets:   prometheus.LinearBuckets(10, 10, 10),
			},
		),
		PagesAnalyzed: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "pages_analyzed_total",
				Help:      "Total number of site pages analyzed",
			},
			[]string{"status"},
		),
	}
}

func (m *Metrics) observeStage(kind, stage string, begin time.Time, err error) {
	m.StageRuns.WithLabelValues(kind, stage, status(err)).Inc()
	m.StageDuration.WithLabelValues(kind, stage).Observe(time.Since(begin).Seconds())
}

func status(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}

// Handler serves the metrics gathered by g in the Prometheus text format.
func Handler(g prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}

// Ensure the metric decorators implement the domain interfaces.
var (
	_ siterank.Analyzer      = (*MetricsAnalyzer)(nil)
	_ siterank.Scorer        = (*MetricsScorer)(nil)
	_ siterank.ProfileScorer = (*MetricsProfileScorer)(nil)
	_ siterank.SiteAnalyzer  = (*MetricsSiteAnalyzer)(nil)
)

// MetricsAnalyzer wraps an Analyzer with run counts and durations.
type MetricsAnalyzer struct {
	next    siterank.Analyzer
	metrics *Metrics
}

// NewMetricsAnalyzer creates a new MetricsAnalyzer.
func NewMetricsAnalyzer(next siterank.Analyzer, metrics *Metrics) *MetricsAnalyzer {
	return &MetricsAnalyzer{next: next, metrics: metrics}
}

// Name returns the name of the wrapped stage.
func (a *MetricsAnalyzer) Name() string {
	return a.next.Name()
}

// Analyze delegates to the wrapped stage and records the run.
func (a *MetricsAnalyzer) Analyze(markup string) (profile *siterank.AnalysisProfile, err error) {
	defer func(begin time.Time) {
		a.metrics.observeStage(KindAnalyze, a.next.Name(), begin, err)
	}(time.Now())
	return a.next.Analyze(markup)
}

// MetricsScorer wraps a Scorer with run counts and durations.
type MetricsScorer struct {
	next    siterank.Scorer
	metrics *Metrics
}

// NewMetricsScorer creates a new MetricsScorer.
func NewMetricsScorer(next siterank.Scorer, metrics *Metrics) *MetricsScorer {
	return &MetricsScorer{next: next, metrics: metrics}
}

// Name returns the name of the wrapped stage.
func (s *MetricsScorer) Name() string {
	return s.next.Name()
}

// Score delegates to the wrapped stage and records the run.
func (s *MetricsScorer) Score(profile *siterank.AnalysisProfile) (report *siterank.OptimizationReport, err error) {
	defer func(begin time.Time) {
		s.metrics.observeStage(KindScore, s.next.Name(), begin, err)
	}(time.Now())
	return s.next.Score(profile)
}

// MetricsProfileScorer records the final optimization score of every report.
type MetricsProfileScorer struct {
	next    siterank.ProfileScorer
	metrics *Metrics
}

// NewMetricsProfileScorer creates a new MetricsProfileScorer.
func NewMetricsProfileScorer(next siterank.ProfileScorer, metrics *Metrics) *MetricsProfileScorer {
	return &MetricsProfileScorer{next: next, metrics: metrics}
}

// ScoreProfile delegates to the wrapped scorer and observes the score.
func (s *MetricsProfileScorer) ScoreProfile(profile *siterank.AnalysisProfile) (*siterank.OptimizationReport, error) {
	report, err := s.next.ScoreProfile(profile)
	if err != nil {
		return nil, err
	}
	s.metrics.OptimizationScore.Observe(float64(report.OptimizationScore))
	return report, nil
}

// MetricsSiteAnalyzer counts analyzed pages by outcome.
type MetricsSiteAnalyzer struct {
	next    siterank.SiteAnalyzer
	metrics *Metrics
}

// NewMetricsSiteAnalyzer creates a new MetricsSiteAnalyzer.
func NewMetricsSiteAnalyzer(next siterank.SiteAnalyzer, metrics *Metrics) *MetricsSiteAnalyzer {
	return &MetricsSiteAnalyzer{next: next, metrics: metrics}
}

// AnalyzeSite delegates to the wrapped analyzer and counts its pages.
func (a *MetricsSiteAnalyzer) AnalyzeSite(ctx context.Context, site *siterank.Site) (*siterank.SiteAnalysis, error) {
	analysis, err := a.next.AnalyzeSite(ctx, site)
	if err != nil {
		return nil, err
	}
	failed := len(analysis.Failed())
	a.metrics.PagesAnalyzed.WithLabelValues("error").Add(float64(failed))
	a.metrics.PagesAnalyzed.WithLabelValues("ok").Add(float64(len(analysis.Pages) - failed))
	return analysis, nil
}

// WrapAnalyzers decorates every analyzer with metrics, keeping their order.
func WrapAnalyzers(analyzers []siterank.Analyzer, metrics *Metrics) []siterank.Analyzer {
	wrapped := make([]siterank.Analyzer, len(analyzers))
	for i, a := range analyzers {
		wrapped[i] = NewMetricsAnalyzer(a, metrics)
	}
	return wrapped
}

// WrapScorers decorates every scorer with metrics, keeping their order.
func WrapScorers(scorers []siterank.Scorer, metrics *Metrics) []siterank.Scorer {
	wrapped := make([]siterank.Scorer, len(scorers))
	for i, s := range scorers {
		wrapped[i] = NewMetricsScorer(s, metrics)
	}
	return wrapped
}
