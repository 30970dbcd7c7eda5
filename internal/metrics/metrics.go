package metrics

import (
	"strconv"
	"time"

	apperrors "lead-dashboard-backend/internal/errors"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// OutcomeOK labels a successful operation
const OutcomeOK = "ok"

// Metrics holds all Prometheus metrics. A nil *Metrics records nothing.
type Metrics struct {
	// HTTP metrics
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	// Team metrics
	TeamOperationsTotal *prometheus.CounterVec
	InviteCodeAttempts  prometheus.Histogram
	LeadsReassigned     *prometheus.CounterVec
}

// NewMetrics creates and registers all Prometheus metrics
func NewMetrics(registry prometheus.Registerer) *Metrics {
	m := &Metrics{
		HTTPRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "lead_dashboard_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "route", "status"},
		),
		HTTPRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "lead_dashboard_http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
		TeamOperationsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "lead_dashboard_team_operations_total",
				Help: "Total number of team operations by outcome",
			},
			[]string{"operation", "outcome"},
		),
		InviteCodeAttempts: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "lead_dashboard_invite_code_attempts",
				Help:    "Random draws needed to find a free invite code",
				Buckets: []float64{1, 2, 3, 5, 10, 20, 30},
			},
		),
		LeadsReassigned: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "lead_dashboard_leads_reassigned_total",
				Help: "Total number of leads whose team ownership changed",
			},
			[]string{"reason"},
		),
	}

	collectors := []prometheus.Collector{
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.TeamOperationsTotal,
		m.InviteCodeAttempts,
		m.LeadsReassigned,
	}
	for i, collector := range collectors {
		if err := registry.Register(collector); err != nil {
			are, ok := err.(prometheus.AlreadyRegisteredError)
			if !ok {
				panic(err)
			}
			collectors[i] = are.ExistingCollector
		}
	}
	m.adoptExisting(collectors)

	return m
}

func (m *Metrics) adoptExisting(collectors []prometheus.Collector) {
	if v, ok := collectors[0].(*prometheus.CounterVec); ok {
		m.HTTPRequestsTotal = v
	}
	if v, ok := collectors[1].(*prometheus.HistogramVec); ok {
		m.HTTPRequestDuration = v
	}
	if v, ok := collectors[2].(*prometheus.CounterVec); ok {
		m.TeamOperationsTotal = v
	}
	if v, ok := collectors[3].(prometheus.Histogram); ok {
		m.InviteCodeAttempts = v
	}
	if v, ok := collectors[4].(*prometheus.CounterVec); ok {
		m.LeadsReassigned = v
	}
}

// RecordOperation counts one team operation, labelled by its error kind
func (m *Metrics) RecordOperation(operation string, err error) {
	if m == nil {
		return
	}
	outcome := OutcomeOK
	if err != nil {
		outcome = string(apperrors.KindOf(err))
	}
	m.TeamOperationsTotal.WithLabelValues(operation, outcome).Inc()
}

// ObserveInviteCodeAttempts records how many draws an invite code generation took
func (m *Metrics) ObserveInviteCodeAttempts(attempts int) {
	if m == nil {
		return
	}
	m.InviteCodeAttempts.Observe(float64(attempts))
}

// AddLeadsReassigned counts leads moved into or out of a team
func (m *Metrics) AddLeadsReassigned(reason string, n int64) {
	if m == nil || n <= 0 {
		return
	}
	m.LeadsReassigned.WithLabelValues(reason).Add(float64(n))
}

// GinMiddleware instruments HTTP requests with Prometheus metrics
func (m *Metrics) GinMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m == nil {
			c.Next()
			return
		}
		start := time.Now()

		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		status := strconv.Itoa(c.Writer.Status())
		m.HTTPRequestsTotal.WithLabelValues(c.Request.Method, route, status).Inc()
		m.HTTPRequestDuration.WithLabelValues(c.Request.Method, route).Observe(time.Since(start).Seconds())
	}
}

// Handler serves the registry in the Prometheus exposition format
func Handler(gatherer prometheus.Gatherer) gin.HandlerFunc {
	return gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
}
