package middlewares

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/prometheus/client_golang/prometheus"
)

var (
	httpRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	httpRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	// SubmissionsTotal counts submit attempts by result ("accepted" or "rejected").
	SubmissionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "registration_submissions_total",
			Help: "Registration form submit attempts",
		},
		[]string{"result"},
	)
)

func init() {
	prometheus.MustRegister(httpRequestsTotal)
	prometheus.MustRegister(httpRequestDuration)
	prometheus.MustRegister(SubmissionsTotal)
}

// Metrics records request counts and latency, labelled by route pattern
// rather than raw path.
func Metrics() fiber.Handler {
	return func(c *fiber.Ctx) error {
		method := c.Method()

		start := time.Now()
		err := c.Next()
		// Resolve the error now so the recorded status is the one sent.
		if err != nil {
			if herr := c.App().Config().ErrorHandler(c, err); herr != nil {
				log.Errorf("error handler failed for %s %s: %v", method, c.Path(), herr)
				c.Status(fiber.StatusInternalServerError)
			}
		}

		path := c.Route().Path
		status := c.Response().StatusCode()
		httpRequestDuration.WithLabelValues(method, path).Observe(time.Since(start).Seconds())
		httpRequestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()

		return nil
	}
}
