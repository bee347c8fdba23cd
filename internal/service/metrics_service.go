package service

import (
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// MetricsService encapsulates Prometheus instrumentation for the API.
type MetricsService struct {
	registry        *prometheus.Registry
	handler         http.Handler
	requestDuration *prometheus.HistogramVec
	requestTotal    *prometheus.CounterVec
	scrapeJobTotal  *prometheus.CounterVec
	planFindings    *prometheus.CounterVec
}

// NewMetricsService registers core Prometheus collectors.
func NewMetricsService() *MetricsService {
	registry := prometheus.NewRegistry()

	requestDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "Duration of HTTP requests in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	requestTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "path", "status"})

	scrapeJobTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "scrape_jobs_total",
		Help: "Total number of scrape jobs enqueued",
	}, []string{"type"})

	planFindings := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "plan_validation_findings_total",
		Help: "Total findings reported by plan validation",
	}, []string{"severity"})

	registry.MustRegister(requestDuration, requestTotal, scrapeJobTotal, planFindings)

	return &MetricsService{
		registry:        registry,
		handler:         promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
		requestDuration: requestDuration,
		requestTotal:    requestTotal,
		scrapeJobTotal:  scrapeJobTotal,
		planFindings:    planFindings,
	}
}

// Handler exposes the Prometheus scrape endpoint.
func (s *MetricsService) Handler() http.Handler {
	return s.handler
}

// ObserveHTTPRequest records one served request.
func (s *MetricsService) ObserveHTTPRequest(method, path string, status int, duration time.Duration) {
	labels := []string{method, path, fmt.Sprintf("%d", status)}
	s.requestDuration.WithLabelValues(labels...).Observe(duration.Seconds())
	s.requestTotal.WithLabelValues(labels...).Inc()
}

// ObserveScrapeJob counts an enqueued scrape job.
func (s *MetricsService) ObserveScrapeJob(jobType string) {
	s.scrapeJobTotal.WithLabelValues(jobType).Inc()
}

// ObservePlanFindings counts findings produced by one validation call.
func (s *MetricsService) ObservePlanFindings(errors, warnings int) {
	if errors > 0 {
		s.planFindings.WithLabelValues("error").Add(float64(errors))
	}
	if warnings > 0 {
		s.planFindings.WithLabelValues("warning").Add(float64(warnings))
	}
}
