// Package obsmetrics exposes the Prometheus metrics the pipeline emits:
// stage timing, regions detected per recognize call, and output text length
// per processed recognition.
package obsmetrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	stageDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "ocrlite_pipeline_stage_duration_seconds",
			Help:    "Duration of a pipeline stage in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"stage"},
	)

	regionsDetected = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "ocrlite_regions_detected",
			Help:    "Number of text regions detected per image",
			Buckets: []float64{0, 1, 5, 10, 25, 50, 100, 250, 500},
		},
	)

	textLength = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "ocrlite_text_length",
			Help:    "Length of recognized text per image",
			Buckets: []float64{0, 10, 50, 100, 500, 1000, 5000, 10000},
		},
	)
)

// Timer observes the elapsed duration of a pipeline stage on completion.
type Timer struct {
	observer prometheus.Observer
	stop     func() float64
}

// StartStage begins timing a named pipeline stage (e.g. "pipeline.recognize").
func StartStage(stage string) *Timer {
	observer := stageDuration.WithLabelValues(stage)
	t := &Timer{observer: observer}
	t.stop = prometheus.NewTimer(observer).ObserveDuration
	return t
}

// ObserveDuration records the elapsed time since StartStage.
func (t *Timer) ObserveDuration() {
	t.stop()
}

// ObserveRegionsDetected records how many text regions a detector pass found.
func ObserveRegionsDetected(n int) {
	regionsDetected.Observe(float64(n))
}

// ObserveTextLength records the length of the recognized text for one image.
func ObserveTextLength(n int) {
	textLength.Observe(float64(n))
}
