// Package metrics provides observability hooks for compilation passes.
//
// Components receive a Recorder through dependency injection and default to
// NoopRecorder, so metrics collection is optional and carries zero overhead
// when disabled.
package metrics

import "time"

// PageKindLabel enumerates compiled page kinds for counters.
type PageKindLabel string

const (
	KindPost PageKindLabel = "post"
	KindList PageKindLabel = "list"
	KindFeed PageKindLabel = "feed"
	KindFile PageKindLabel = "file"
)

// Recorder defines observability hooks for compilation and rendering.
// Implementations may forward to Prometheus, OpenTelemetry, etc.
type Recorder interface {
	ObserveCompileDuration(d time.Duration)
	ObserveRenderDuration(d time.Duration)
	IncPassOutcome(outcome string) // outcome: success|failed
	AddPages(kind PageKindLabel, n int)
}

// NoopRecorder is a Recorder that does nothing (default when metrics not configured).
type NoopRecorder struct{}

func (NoopRecorder) ObserveCompileDuration(time.Duration) {}
func (NoopRecorder) ObserveRenderDuration(time.Duration)  {}
func (NoopRecorder) IncPassOutcome(string)                {}
func (NoopRecorder) AddPages(PageKindLabel, int)          {}
