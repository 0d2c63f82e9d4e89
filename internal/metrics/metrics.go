// Package metrics holds the prometheus collectors of the server.
package metrics

import (
	"strconv"
	"time"

	"github.com/goserg/puzzleboard/internal/domain"
	"github.com/goserg/puzzleboard/internal/service"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/valyala/fasthttp"
	"github.com/valyala/fasthttp/fasthttpadaptor"
)

const namespace = "puzzleboard"

type Metrics struct {
	registry *prometheus.Registry

	submissions     prometheus.Counter
	timesSaved      *prometheus.CounterVec
	completeDays    prometheus.Counter
	httpRequests    *prometheus.CounterVec
	httpDuration    *prometheus.HistogramVec
	botCommands     *prometheus.CounterVec
	botNotification *prometheus.CounterVec
}

// New registers the collectors on a fresh registry, so several instances can
// live side by side in tests.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	auto := promauto.With(reg)
	return &Metrics{
		registry: reg,
		submissions: auto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "submissions_total",
			Help:      "Number of successful time submissions.",
		}),
		timesSaved: auto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "times_saved_total",
			Help:      "Number of game times present after a submission, by game.",
		}, []string{"game"}),
		completeDays: auto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "complete_days_total",
			Help:      "Submissions that completed all games of a day.",
		}),
		httpRequests: auto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "HTTP requests by route, method and status code.",
		}, []string{"route", "method", "status_code"}),
		httpDuration: auto.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration by route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route", "method"}),
		botCommands: auto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "bot",
			Name:      "commands_total",
			Help:      "Telegram commands by name and outcome.",
		}, []string{"command", "outcome"}),
		botNotification: auto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "bot",
			Name:      "notifications_total",
			Help:      "Subscriber notifications by outcome.",
		}, []string{"outcome"}),
	}
}

func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// ObserveSubmit is a service.SubmitListener.
func (m *Metrics) ObserveSubmit(sub service.Submission) {
	m.submissions.Inc()
	for _, game := range domain.Games {
		if sub.Games.Get(game) != nil {
			m.timesSaved.WithLabelValues(string(game)).Inc()
		}
	}
	if sub.Overall != nil {
		m.completeDays.Inc()
	}
}

func (m *Metrics) ObserveRequest(route, method string, status int, took time.Duration) {
	m.httpRequests.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(route, method).Observe(took.Seconds())
}

func (m *Metrics) ObserveCommand(command string, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	m.botCommands.WithLabelValues(command, outcome).Inc()
}

func (m *Metrics) ObserveNotification(err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	m.botNotification.WithLabelValues(outcome).Inc()
}

// Handler serves the registry in the prometheus text format.
func (m *Metrics) Handler() fasthttp.RequestHandler {
	return fasthttpadaptor.NewFastHTTPHandler(
		promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry}),
	)
}
