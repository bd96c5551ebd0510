package metrics

import (
	"testing"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestNoopRecorderIsSafe(t *testing.T) {
	var r Recorder = NoopRecorder{}
	r.ObserveCompileDuration(time.Second)
	r.ObserveRenderDuration(time.Second)
	r.IncPassOutcome("success")
	r.AddPages(KindPost, 3)
}

func TestPrometheusRecorderCounts(t *testing.T) {
	reg := prom.NewRegistry()
	pr := NewPrometheusRecorder(reg)

	pr.IncPassOutcome("success")
	pr.IncPassOutcome("success")
	pr.IncPassOutcome("failed")
	pr.AddPages(KindPost, 5)
	pr.AddPages(KindFeed, 2)
	pr.ObserveCompileDuration(50 * time.Millisecond)

	if got := testutil.ToFloat64(pr.passOutcome.WithLabelValues("success")); got != 2 {
		t.Errorf("success outcomes = %v, want 2", got)
	}
	if got := testutil.ToFloat64(pr.pagesEmitted.WithLabelValues("post")); got != 5 {
		t.Errorf("post pages = %v, want 5", got)
	}
}

func TestPrometheusRecordersIndependentRegistries(t *testing.T) {
	first := NewPrometheusRecorder(prom.NewRegistry())
	second := NewPrometheusRecorder(prom.NewRegistry())

	first.IncPassOutcome("success")
	second.IncPassOutcome("failed")

	if got := testutil.ToFloat64(first.passOutcome.WithLabelValues("success")); got != 1 {
		t.Errorf("first success outcomes = %v, want 1", got)
	}
	if got := testutil.ToFloat64(second.passOutcome.WithLabelValues("success")); got != 0 {
		t.Errorf("second success outcomes = %v, want 0", got)
	}
}

func TestPrometheusRecorderNilSafe(t *testing.T) {
	var pr *PrometheusRecorder
	pr.ObserveCompileDuration(time.Second)
	pr.IncPassOutcome("success")
	pr.AddPages(KindList, 1)
}
