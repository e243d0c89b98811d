package metrics

import (
	"sync"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
)

const namespace = "barrelgen"

// PrometheusRecorder implements Recorder using Prometheus metrics.
type PrometheusRecorder struct {
	once               sync.Once
	generationDuration *prom.HistogramVec
	runOutcomes        *prom.CounterVec
	barrelResults      *prom.CounterVec
	exportCount        prom.Histogram
	childFailures      prom.Counter
}

// NewPrometheusRecorder constructs and registers Prometheus metrics (idempotent).
func NewPrometheusRecorder(reg *prom.Registry) *PrometheusRecorder {
	if reg == nil {
		reg = prom.NewRegistry()
	}
	pr := &PrometheusRecorder{}
	pr.once.Do(func() {
		pr.generationDuration = prom.NewHistogramVec(prom.HistogramOpts{
			Namespace: namespace,
			Name:      "generation_duration_seconds",
			Help:      "Duration of a generation run by strategy",
			Buckets:   prom.DefBuckets,
		}, []string{"strategy"})
		pr.runOutcomes = prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "run_outcomes_total",
			Help:      "Generation runs by final status",
		}, []string{"outcome"})
		pr.barrelResults = prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "barrel_results_total",
			Help:      "Per-directory barrel outcomes",
		}, []string{"result"})
		pr.exportCount = prom.NewHistogram(prom.HistogramOpts{
			Namespace: namespace,
			Name:      "barrel_exports",
			Help:      "Number of export lines per written barrel",
			Buckets:   prom.ExponentialBuckets(1, 2, 10),
		})
		pr.childFailures = prom.NewCounter(prom.CounterOpts{
			Namespace: namespace,
			Name:      "child_failures_total",
			Help:      "Subdirectory generations that failed and were skipped",
		})
		reg.MustRegister(pr.generationDuration, pr.runOutcomes, pr.barrelResults, pr.exportCount, pr.childFailures)
	})
	return pr
}

func (p *PrometheusRecorder) ObserveGenerationDuration(strategy string, d time.Duration) {
	if p == nil || p.generationDuration == nil {
		return
	}
	p.generationDuration.WithLabelValues(strategy).Observe(d.Seconds())
}

func (p *PrometheusRecorder) IncRunOutcome(outcome OutcomeLabel) {
	if p == nil || p.runOutcomes == nil {
		return
	}
	p.runOutcomes.WithLabelValues(string(outcome)).Inc()
}

func (p *PrometheusRecorder) IncBarrelResult(result ResultLabel) {
	if p == nil || p.barrelResults == nil {
		return
	}
	p.barrelResults.WithLabelValues(string(result)).Inc()
}

func (p *PrometheusRecorder) ObserveExportCount(n int) {
	if p == nil || p.exportCount == nil {
		return
	}
	p.exportCount.Observe(float64(n))
}

func (p *PrometheusRecorder) IncChildFailure() {
	if p == nil || p.childFailures == nil {
		return
	}
	p.childFailures.Inc()
}
