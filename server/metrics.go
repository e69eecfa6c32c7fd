package server

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/HugeFrog24/transcripto/utils"
)

const (
	outcomeOK                  = "ok"
	outcomeMissingFile         = "missing_file"
	outcomeUnsupportedFormat   = "unsupported_format"
	outcomeTranscriptionFailed = "transcription_failed"
	outcomeEmptyTranscript     = "empty_transcript"
	outcomeError               = "error"
)

// metrics lives in its own registry so every Server, including the ones
// tests create, can register the same collectors.
type metrics struct {
	registry        *prometheus.Registry
	uploads         *prometheus.CounterVec
	uploadDuration  prometheus.Histogram
	summaryFailures prometheus.Counter
}

func newMetrics() *metrics {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	return &metrics{
		registry: registry,
		uploads: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "transcripto_uploads_total",
			Help: "Uploads handled, by outcome.",
		}, []string{"outcome"}),
		uploadDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "transcripto_upload_duration_seconds",
			Help:    "Time spent handling an upload, including both external calls.",
			Buckets: []float64{0.05, 0.25, 1, 2.5, 5, 10, 30, 60, 120},
		}),
		summaryFailures: factory.NewCounter(prometheus.CounterOpts{
			Name: "transcripto_summary_failures_total",
			Help: "Uploads that returned a transcript without a summary.",
		}),
	}
}

func (m *metrics) observeUpload(outcome string, elapsed time.Duration) {
	m.uploads.WithLabelValues(outcome).Inc()
	m.uploadDuration.Observe(elapsed.Seconds())
}

func outcomeFor(err error) string {
	var transcriptionErr *utils.TranscriptionError
	switch {
	case errors.Is(err, utils.ErrUnsupportedFormat):
		return outcomeUnsupportedFormat
	case errors.Is(err, utils.ErrEmptyTranscript):
		return outcomeEmptyTranscript
	case errors.As(err, &transcriptionErr):
		return outcomeTranscriptionFailed
	default:
		return outcomeError
	}
}
