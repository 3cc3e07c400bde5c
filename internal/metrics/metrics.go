package metrics

import (
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
)

var (
	ErrorsCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "jobscout_errors_total",
			Help: "Total number of occurred errors.",
		},
		[]string{"type"},
	)
	SourceFetchDuration = prometheus.NewSummaryVec(
		prometheus.SummaryOpts{
			Name:       "jobscout_source_fetch_duration_seconds",
			Help:       "Duration of each job source fetch.",
			Objectives: map[float64]float64{0.5: 0.05, 0.9: 0.01, 0.99: 0.001},
		},
		[]string{"source"},
	)
	SourceJobsCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "jobscout_source_jobs_total",
			Help: "Total number of postings fetched per source.",
		},
		[]string{"source"},
	)
	MatchRequestsCounter = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "jobscout_match_requests_total",
			Help: "Total number of handled match requests.",
		},
	)
	MatchDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "jobscout_match_duration_seconds",
			Help:    "Duration of the full aggregate-and-rank pipeline.",
			Buckets: []float64{0.5, 1, 2, 5, 10, 30},
		},
	)
)

func StartMetricsServer(port int) {

	prometheus.MustRegister(ErrorsCounter)
	prometheus.MustRegister(SourceFetchDuration)
	prometheus.MustRegister(SourceJobsCounter)
	prometheus.MustRegister(MatchRequestsCounter)
	prometheus.MustRegister(MatchDuration)

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	go func() {
		log.Fatal(http.ListenAndServe(fmt.Sprintf(":%d", port), mux))
	}()
}
