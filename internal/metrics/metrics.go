package metrics

import (
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	ErrorsCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_errors_total",
			Help: "Total number of occurred errors.",
		},
		[]string{"type"},
	)
	RequestsCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of handled HTTP requests.",
		},
		[]string{"method", "status"},
	)
	ApplicationsSubmittedCounter = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "api_applications_submitted_total",
			Help: "Total number of submitted job applications.",
		},
	)
)

var registerOnce sync.Once

func register() {
	registerOnce.Do(func() {
		prometheus.MustRegister(ErrorsCounter)
		prometheus.MustRegister(RequestsCounter)
		prometheus.MustRegister(ApplicationsSubmittedCounter)
	})
}

// Handler exposes the prometheus registry; mounted on GET /metrics.
func Handler() gin.HandlerFunc {
	register()
	return gin.WrapH(promhttp.Handler())
}

// CountRequests records every handled request with its final status.
func CountRequests() gin.HandlerFunc {
	register()
	return func(c *gin.Context) {
		c.Next()
		RequestsCounter.WithLabelValues(
			c.Request.Method,
			statusLabel(c.Writer.Status()),
		).Inc()
	}
}

func statusLabel(status int) string {
	switch {
	case status >= 500:
		return "5xx"
	case status >= 400:
		return "4xx"
	default:
		return "2xx"
	}
}
