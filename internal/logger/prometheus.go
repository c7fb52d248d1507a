package logger

import (
	"github.com/maxaizer/job-hunter/internal/metrics"
	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"
)

const untypedError = "untyped"

// errorCounterHook counts error entries by their error_type field.
type errorCounterHook struct {
	counter *prometheus.CounterVec
}

func newErrorCounterHook(counter *prometheus.CounterVec) *errorCounterHook {
	return &errorCounterHook{counter: counter}
}

func (h *errorCounterHook) Fire(entry *log.Entry) error {
	errorType, _ := entry.Data[ErrorTypeField].(string)
	if errorType == "" {
		errorType = untypedError
	}
	h.counter.WithLabelValues(errorType).Inc()
	return nil
}

func (h *errorCounterHook) Levels() []log.Level {
	return []log.Level{log.ErrorLevel, log.FatalLevel, log.PanicLevel}
}

func addPrometheusHook() {
	log.AddHook(newErrorCounterHook(metrics.ErrorsCounter))
}
