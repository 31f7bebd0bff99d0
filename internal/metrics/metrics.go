package metrics

import (
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/gambizardonkick/aetricrewardsdata/internal/logger"
)

// Server exposes Prometheus metrics on its own listener.
type Server struct {
	addr string
}

func NewServer(port int) *Server {
	return &Server{addr: fmt.Sprintf(":%d", port)}
}

// Start serves the metrics endpoint in the background. A dead metrics
// listener is not fatal to the API, but it should not die silently either.
func (s *Server) Start() {
	go func() {
		if err := http.ListenAndServe(s.addr, promhttp.Handler()); err != nil {
			logger.Warning("metrics listener: %v", err)
		}
	}()
}

var (
	// HTTPRequests counts served requests by route template and status.
	HTTPRequests = newCounterVec(prometheus.CounterOpts{
		Name: "rewardsdata_http_requests_total",
		Help: "HTTP requests served, by route and status code.",
	}, []string{"route", "status"})

	// UpstreamFetchSeconds observes affiliate API fetch latency by program.
	UpstreamFetchSeconds = newHistVec(prometheus.HistogramOpts{
		Name:    "rewardsdata_upstream_fetch_seconds",
		Help:    "Latency of upstream affiliate API fetches.",
		Buckets: prometheus.DefBuckets,
	}, []string{"program"})

	// UpstreamErrors counts failed affiliate API fetches by program.
	UpstreamErrors = newCounterVec(prometheus.CounterOpts{
		Name: "rewardsdata_upstream_errors_total",
		Help: "Failed upstream affiliate API fetches.",
	}, []string{"program"})
)

func newCounterVec(opts prometheus.CounterOpts, labels []string) *prometheus.CounterVec {
	c := prometheus.NewCounterVec(opts, labels)
	prometheus.MustRegister(c)
	return c
}

func newHistVec(opts prometheus.HistogramOpts, labels []string) *prometheus.HistogramVec {
	h := prometheus.NewHistogramVec(opts, labels)
	prometheus.MustRegister(h)
	return h
}
