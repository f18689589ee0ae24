// Package metrics collects the Prometheus series of the HTTP API and the
// report composer.
package metrics

import (
	"strconv"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "recruitboard"

var (
	registerOnce sync.Once

	requestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency in seconds.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	requestTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total HTTP requests.",
		},
		[]string{"method", "path", "status"},
	)

	requestsInFlight = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "in_flight_requests",
			Help:      "HTTP requests currently being served.",
		},
	)

	reportsComposed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reports_composed_total",
			Help:      "Reports composed, by trigger.",
		},
		[]string{"trigger"},
	)
)

// Trigger values of reports_composed_total
const (
	TriggerAPI       = "api"
	TriggerExport    = "export"
	TriggerScheduled = "scheduled"
	TriggerCLI       = "cli"
)

func register() {
	registerOnce.Do(func() {
		prometheus.MustRegister(requestDuration, requestTotal, requestsInFlight, reportsComposed)
	})
}

// Middleware observes every request. Errors returned by the chain are
// rendered by the app error handler first so the recorded status is the
// one sent to the client.
func Middleware() fiber.Handler {
	register()

	return func(c *fiber.Ctx) error {
		start := time.Now()
		requestsInFlight.Inc()
		defer requestsInFlight.Dec()

		if err := c.Next(); err != nil {
			if herr := c.App().ErrorHandler(c, err); herr != nil {
				_ = c.SendStatus(fiber.StatusInternalServerError)
			}
		}

		path := c.Route().Path
		if path == "" {
			path = c.Path()
		}
		labels := prometheus.Labels{
			"method": c.Method(),
			"path":   path,
			"status": strconv.Itoa(c.Response().StatusCode()),
		}

		requestDuration.With(labels).Observe(time.Since(start).Seconds())
		requestTotal.With(labels).Inc()
		return nil
	}
}

// Handler serves the default registry in the text exposition format
func Handler() fiber.Handler {
	register()
	return adaptor.HTTPHandler(promhttp.Handler())
}

// ReportComposed counts one composed report
func ReportComposed(trigger string) {
	register()
	reportsComposed.WithLabelValues(trigger).Inc()
}
