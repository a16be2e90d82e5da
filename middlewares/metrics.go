package middlewares

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics owns the collectors exported on /metrics. A nil *Metrics is
// valid and records nothing.
type Metrics struct {
	registry *prometheus.Registry

	requests  *prometheus.CounterVec
	duration  *prometheus.HistogramVec
	cache     *prometheus.CounterVec
	signups   *prometheus.CounterVec
	carousel  *prometheus.CounterVec
	purgeRuns *prometheus.CounterVec
}

func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	m := &Metrics{
		registry: reg,
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "branchsite_http_requests_total",
			Help: "HTTP requests by route and status.",
		}, []string{"method", "route", "status"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "branchsite_http_request_duration_seconds",
			Help:    "HTTP request latency.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
		cache: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "branchsite_response_cache_total",
			Help: "Response cache lookups by result.",
		}, []string{"result"}),
		signups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "branchsite_newsletter_signups_total",
			Help: "Newsletter signup attempts by outcome.",
		}, []string{"outcome"}),
		carousel: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "branchsite_carousel_commands_total",
			Help: "Carousel commands by name and whether they applied.",
		}, []string{"command", "applied"}),
		purgeRuns: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "branchsite_cache_purge_runs_total",
			Help: "Scheduled cache purges by result.",
		}, []string{"result"}),
	}
	reg.MustRegister(
		m.requests, m.duration, m.cache, m.signups, m.carousel, m.purgeRuns,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// Middleware records request count and latency per route template, plus
// the X-Cache result left by ResponseCache.
func (m *Metrics) Middleware() gin.HandlerFunc {
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
		method := c.Request.Method
		m.requests.WithLabelValues(method, route, strconv.Itoa(c.Writer.Status())).Inc()
		m.duration.WithLabelValues(method, route).Observe(time.Since(start).Seconds())

		switch c.Writer.Header().Get(cacheHeader) {
		case "HIT":
			m.cache.WithLabelValues("hit").Inc()
		case "MISS":
			m.cache.WithLabelValues("miss").Inc()
		}
	}
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() gin.HandlerFunc {
	h := promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
	return gin.WrapH(h)
}

func (m *Metrics) Signup(outcome string) {
	if m != nil {
		m.signups.WithLabelValues(outcome).Inc()
	}
}

func (m *Metrics) CarouselCommand(command string, applied bool) {
	if m != nil {
		m.carousel.WithLabelValues(command, strconv.FormatBool(applied)).Inc()
	}
}

func (m *Metrics) PurgeRun(err error) {
	if m == nil {
		return
	}
	result := "ok"
	if err != nil {
		result = "error"
	}
	m.purgeRuns.WithLabelValues(result).Inc()
}

// Registry exposes the registry for tests.
func (m *Metrics) Registry() *prometheus.Registry { return m.registry }
