package metrics

import (
	"errors"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
)

var (
	ErrorsCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "jobhunter_errors_total",
			Help: "Total number of occurred errors.",
		},
		[]string{"type"},
	)
	OperationDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "jobhunter_operation_duration_seconds",
			Help:    "Duration of fetch and match operations in seconds.",
			Buckets: []float64{0.1, 0.5, 1, 2.5, 5, 10, 30, 60},
		},
		[]string{"operation", "outcome"},
	)
	FetchedJobsCounter = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "jobhunter_jobs_fetched_total",
			Help: "Total number of jobs received from the aggregation function.",
		},
	)
	ScoredJobsCounter = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "jobhunter_jobs_scored_total",
			Help: "Total number of matches accepted from the scoring collaborator.",
		},
	)
	RejectedMatchesCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "jobhunter_matches_rejected_total",
			Help: "Matches dropped at the engine boundary.",
		},
		[]string{"reason"},
	)
	StaleResultsCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "jobhunter_stale_results_total",
			Help: "Results discarded because a newer operation superseded them.",
		},
		[]string{"operation"},
	)
	AlertsCounter = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "jobhunter_alerts_total",
			Help: "Total number of saved-search alerts raised.",
		},
	)
)

func init() {
	prometheus.MustRegister(ErrorsCounter)
	prometheus.MustRegister(OperationDuration)
	prometheus.MustRegister(FetchedJobsCounter)
	prometheus.MustRegister(ScoredJobsCounter)
	prometheus.MustRegister(RejectedMatchesCounter)
	prometheus.MustRegister(StaleResultsCounter)
	prometheus.MustRegister(AlertsCounter)
}

// StartMetricsServer exposes /metrics on address until the returned server is shut down.
func StartMetricsServer(address string) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	server := &http.Server{Addr: address, Handler: mux}
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Errorf("metrics server stopped: %v", err)
		}
	}()
	log.Infof("metrics server listening on %s", address)
	return server
}
