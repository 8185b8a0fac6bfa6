package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Manager struct {
	// counters
	CounterRequests            *prometheus.CounterVec
	CounterWorkouts            prometheus.Counter
	CounterVisitToggles        prometheus.Counter
	CounterChatMessages        prometheus.Counter
	CounterChatStreamChunks    prometheus.Counter
	CounterHandleRequestPanic  prometheus.Counter
	CounterRateLimitedRequests prometheus.Counter

	// gauges
	GaugeRequests   prometheus.Gauge
	GaugeLifeSignal prometheus.Gauge

	// histograms
	HistogramRequestDuration   prometheus.Histogram
	HistogramChatStreamSeconds prometheus.Histogram
}

func NewTestManager() *Manager {
	return NewManager("fitlog", "test_server", prometheus.NewRegistry())
}

func NewManager(namespace, subsystem string, reg prometheus.Registerer) *Manager {
	factory := promauto.With(reg)

	counterRequests := factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "request",
		Help:      "The total number of incoming requests",
	}, []string{"method", "status"})
	counterWorkouts := factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "workouts",
		Help:      "The total number of added workouts",
	})
	counterVisitToggles := factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "visit_toggles",
		Help:      "The total number of gym visit toggles",
	})
	counterChatMessages := factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "chat_messages",
		Help:      "The total number of coach chat messages",
	})
	counterChatStreamChunks := factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "chat_stream_chunks",
		Help:      "The total number of chat stream chunks relayed to clients",
	})
	counterHandleRequestPanic := factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "handle_request_panic",
		Help:      "The total number of serve request panics",
	})
	counterRateLimitedRequests := factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "rate_limited_requests",
		Help:      "The total number of rate limited requests",
	})

	gaugeRequests := factory.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "current_requests",
		Help:      "Current number of requests served",
	})
	gaugeLifeSignal := factory.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "life_signal",
		Help:      "Shows whether the service is alive",
	})

	histogramRequestDuration := factory.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Buckets:   []float64{0.0001, 0.001, 0.01, 0.1, 0.5, 1, 5, 10, 30, 60},
		Name:      "request_duration_seconds",
		Help:      "Duration of served requests in seconds",
	})
	histogramChatStreamSeconds := factory.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Buckets:   []float64{0.1, 0.5, 1, 2, 5, 10, 30, 60, 120},
		Name:      "chat_stream_duration_seconds",
		Help:      "Total duration of a single coach chat model stream in seconds",
	})

	return &Manager{
		CounterRequests:            counterRequests,
		CounterWorkouts:            counterWorkouts,
		CounterVisitToggles:        counterVisitToggles,
		CounterChatMessages:        counterChatMessages,
		CounterChatStreamChunks:    counterChatStreamChunks,
		CounterHandleRequestPanic:  counterHandleRequestPanic,
		CounterRateLimitedRequests: counterRateLimitedRequests,
		GaugeRequests:              gaugeRequests,
		GaugeLifeSignal:            gaugeLifeSignal,
		HistogramRequestDuration:   histogramRequestDuration,
		HistogramChatStreamSeconds: histogramChatStreamSeconds,
	}
}
