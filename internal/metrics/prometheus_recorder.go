package metrics

import (
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
)

// PrometheusRecorder implements Recorder using Prometheus metrics.
type PrometheusRecorder struct {
	compileDuration prom.Histogram
	renderDuration  prom.Histogram
	passOutcome     *prom.CounterVec
	pagesEmitted    *prom.CounterVec
}

// NewPrometheusRecorder constructs the blogsmith metrics and registers them on
// reg (a fresh private registry when nil). Registering the same metric names
// twice on one registry panics, so create at most one recorder per registry.
func NewPrometheusRecorder(reg *prom.Registry) *PrometheusRecorder {
	if reg == nil {
		reg = prom.NewRegistry()
	}
	pr := &PrometheusRecorder{
		compileDuration: prom.NewHistogram(prom.HistogramOpts{
			Namespace: "blogsmith",
			Name:      "compile_duration_seconds",
			Help:      "Duration of one compilation pass",
			Buckets:   prom.DefBuckets,
		}),
		renderDuration: prom.NewHistogram(prom.HistogramOpts{
			Namespace: "blogsmith",
			Name:      "render_duration_seconds",
			Help:      "Duration of rendering one compiled page set",
			Buckets:   prom.DefBuckets,
		}),
		passOutcome: prom.NewCounterVec(prom.CounterOpts{
			Namespace: "blogsmith",
			Name:      "pass_outcomes_total",
			Help:      "Compilation pass outcomes by final status",
		}, []string{"outcome"}),
		pagesEmitted: prom.NewCounterVec(prom.CounterOpts{
			Namespace: "blogsmith",
			Name:      "pages_emitted_total",
			Help:      "Compiled pages by kind",
		}, []string{"kind"}),
	}
	reg.MustRegister(pr.compileDuration, pr.renderDuration, pr.passOutcome, pr.pagesEmitted)
	return pr
}

func (p *PrometheusRecorder) ObserveCompileDuration(d time.Duration) {
	if p == nil || p.compileDuration == nil {
		return
	}
	p.compileDuration.Observe(d.Seconds())
}

func (p *PrometheusRecorder) ObserveRenderDuration(d time.Duration) {
	if p == nil || p.renderDuration == nil {
		return
	}
	p.renderDuration.Observe(d.Seconds())
}

func (p *PrometheusRecorder) IncPassOutcome(outcome string) {
	if p == nil || p.passOutcome == nil {
		return
	}
	p.passOutcome.WithLabelValues(outcome).Inc()
}

func (p *PrometheusRecorder) AddPages(kind PageKindLabel, n int) {
	if p == nil || p.pagesEmitted == nil {
		return
	}
	p.pagesEmitted.WithLabelValues(string(kind)).Add(float64(n))
}
