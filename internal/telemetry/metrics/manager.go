package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Manager struct {
	// counters
	CounterRequests            *prometheus.CounterVec
	CounterRequestsRateLimited prometheus.Counter
	CounterHandleRequestPanic  prometheus.Counter
	CounterBreakEvents         prometheus.Counter
	CounterMessagesDropped     *prometheus.CounterVec
	CounterStatusMessages      prometheus.Counter
	CounterAlertMessages       prometheus.Counter
	CounterConfigPublished     prometheus.Counter

	// gauges
	GaugeRequests   prometheus.Gauge
	GaugeLifeSignal prometheus.Gauge

	// histograms
	HistRequestDuration         prometheus.Histogram
	HistMessageHandlingDuration prometheus.Histogram
}

func NewTestManager() *Manager {
	return NewManager("backend", "test_server", prometheus.NewRegistry())
}

func NewTestManagerAndRegistry() (*Manager, *prometheus.Registry) {
	reg := prometheus.NewRegistry()
	return NewManager("backend", "test_server", reg), reg
}

func NewManager(namespace, subsystem string, reg prometheus.Registerer) *Manager {
	factory := promauto.With(reg)

	counterRequests := factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "request",
		Help:      "The total number of incoming requests",
	}, []string{"method", "status"})
	counterRequestsRateLimited := factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "request_rate_limited",
		Help:      "The total number of rate limited requests",
	})
	counterHandleRequestPanic := factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "handle_request_panic",
		Help:      "The total number of serve request panics",
	})
	counterBreakEvents := factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "break_events",
		Help:      "The total number of persisted break events",
	})
	counterMessagesDropped := factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "messages_dropped",
		Help:      "The total number of dropped inbound messages",
	}, []string{"reason"})
	counterStatusMessages := factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "status_messages",
		Help:      "The total number of received device status messages",
	})
	counterAlertMessages := factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "alert_messages",
		Help:      "The total number of received device alert messages",
	})
	counterConfigPublished := factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "config_published",
		Help:      "The total number of published device config updates",
	})

	gaugeRequests := factory.NewGauge(prometheus.GaugeOpts{
		Namespace:   namespace,
		Subsystem:   subsystem,
		Name:        "current_requests",
		Help:        "Current number of requests served",
		ConstLabels: nil,
	})
	gaugeLifeSignal := factory.NewGauge(prometheus.GaugeOpts{
		Namespace:   namespace,
		Subsystem:   subsystem,
		Name:        "life_signal",
		Help:        "Shows whether the service is alive",
		ConstLabels: nil,
	})

	histReqDuration := factory.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Buckets: []float64{
				0.0000001, 0.0000002, 0.0000003, 0.0000004, 0.0000005,
				0.000001, 0.0000025, 0.000005, 0.0000075, 0.00001,
				0.0001, 0.001, 0.01, 0.1, 1, 10, 60,
			},
			Name: "request_duration_seconds",
			Help: "Total duration of requests in seconds",
		},
	)
	histMessageHandlingDuration := factory.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Buckets: []float64{
				0.0001, 0.001, 0.01, 0.1, 0.25, 0.5, 1, 2.5, 5, 10,
			},
			Name: "message_handling_duration_seconds",
			Help: "Total duration of handling a single inbound message in seconds",
		},
	)

	return &Manager{
		CounterRequests:             counterRequests,
		CounterRequestsRateLimited:  counterRequestsRateLimited,
		CounterHandleRequestPanic:   counterHandleRequestPanic,
		CounterBreakEvents:          counterBreakEvents,
		CounterMessagesDropped:      counterMessagesDropped,
		CounterStatusMessages:       counterStatusMessages,
		CounterAlertMessages:        counterAlertMessages,
		CounterConfigPublished:      counterConfigPublished,
		GaugeRequests:               gaugeRequests,
		GaugeLifeSignal:             gaugeLifeSignal,
		HistRequestDuration:         histReqDuration,
		HistMessageHandlingDuration: histMessageHandlingDuration,
	}
}
