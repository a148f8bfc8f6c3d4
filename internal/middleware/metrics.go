package middleware

import (
	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Business-level counters exported for handlers to increment.
var (
	SignupsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "healthhub_signups_total",
		Help: "Total number of successful account signups.",
	})
	LoginsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "healthhub_logins_total",
		Help: "Total number of successful logins.",
	})
	ApplicationsSubmittedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "healthhub_applications_submitted_total",
		Help: "Total number of program applications submitted.",
	})
	MentorRequestsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "healthhub_mentor_requests_total",
		Help: "Total number of mentorship requests created.",
	})
	MessagesSentTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "healthhub_messages_sent_total",
		Help: "Total number of direct messages sent.",
	})
)

// InitMetrics creates the Prometheus request-metrics middleware for the service.
func InitMetrics(serviceName string) *fiberprometheus.FiberPrometheus {
	return fiberprometheus.New(serviceName)
}

// MetricsMiddleware wraps the Prometheus middleware as a fiber.Handler.
func MetricsMiddleware(prom *fiberprometheus.FiberPrometheus) fiber.Handler {
	return prom.Middleware
}
