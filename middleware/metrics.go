package middleware

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"git.thinkinpower.net/cardgen/mod"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "cardgen_http_requests_total",
		Help: "Count of handled http requests.",
	}, []string{"path", "method", "status"})

	cardsGeneratedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "cardgen_cards_generated_total",
		Help: "Count of generated card records.",
	}, []string{"scheme"})
)

// Metrics counts every handled request by path, method and status.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		httpRequestsTotal.WithLabelValues(
			c.Request.URL.Path,
			c.Request.Method,
			strconv.Itoa(c.Writer.Status()),
		).Inc()
	}
}

// CountCards adds generated records to the per-scheme counter.
func CountCards(scheme mod.Scheme, n int) {
	cardsGeneratedTotal.WithLabelValues(string(scheme)).Add(float64(n))
}

// MetricsHandler exposes the default prometheus registry.
func MetricsHandler() gin.HandlerFunc {
	h := promhttp.Handler()
	return func(c *gin.Context) {
		h.ServeHTTP(c.Writer, c.Request)
	}
}
