package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Manager struct {
	// counters
	CounterRequests            *prometheus.CounterVec
	CounterHandleRequestPanic  prometheus.Counter
	CounterRateLimitedRequests prometheus.Counter
	CounterRecordsAdded        *prometheus.CounterVec
	CounterExerciseLogs        prometheus.Counter
	CounterDoneResets          prometheus.Counter
	CounterPhotosStored        prometheus.Counter
	CounterRemindersFired      prometheus.Counter

	// gauges
	GaugeRequests           prometheus.Gauge
	GaugeLifeSignal         prometheus.Gauge
	GaugeLiveSubscriptions  prometheus.Gauge
	GaugeScheduledReminders prometheus.Gauge

	// histograms
	HistogramRequestDuration *prometheus.HistogramVec
	HistogramPhotoBytes      prometheus.Histogram
}

func NewTestManager() *Manager {
	return NewManager("fitness", "test_server", prometheus.NewRegistry())
}

func NewTestManagerAndRegistry() (*Manager, *prometheus.Registry) {
	reg := prometheus.NewRegistry()
	return NewManager("fitness", "test_server", reg), reg
}

func NewManager(namespace, subsystem string, reg prometheus.Registerer) *Manager {
	factory := promauto.With(reg)

	counterRequests := factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "request",
		Help:      "The total number of incoming requests",
	}, []string{"method", "status"})
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
	counterRecordsAdded := factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "records_added",
		Help:      "The total number of logged records, per kind",
	}, []string{"kind"})
	counterExerciseLogs := factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "exercise_logs",
		Help:      "The total number of exercise completion logs written",
	})
	counterDoneResets := factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "done_flags_expired",
		Help:      "The total number of exercise done flags reset by expiry",
	})
	counterPhotosStored := factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "photos_stored",
		Help:      "The total number of stored progress photos",
	})
	counterRemindersFired := factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "reminders_fired",
		Help:      "The total number of delivered reminders",
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
	gaugeLiveSubscriptions := factory.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "live_subscriptions",
		Help:      "Current number of open live subscriptions",
	})
	gaugeScheduledReminders := factory.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "scheduled_reminders",
		Help:      "Current number of scheduled reminders",
	})

	histogramRequestDuration := factory.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "request_duration_seconds",
		Help:      "Histogram of response time for requests in seconds",
		Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
	}, []string{"route", "method", "status_code"})
	histogramPhotoBytes := factory.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "photo_bytes",
		Help:      "Size of compressed progress photos in bytes",
		Buckets:   prometheus.ExponentialBuckets(16*1024, 2, 8),
	})

	return &Manager{
		CounterRequests:            counterRequests,
		CounterHandleRequestPanic:  counterHandleRequestPanic,
		CounterRateLimitedRequests: counterRateLimitedRequests,
		CounterRecordsAdded:        counterRecordsAdded,
		CounterExerciseLogs:        counterExerciseLogs,
		CounterDoneResets:          counterDoneResets,
		CounterPhotosStored:        counterPhotosStored,
		CounterRemindersFired:      counterRemindersFired,
		GaugeRequests:              gaugeRequests,
		GaugeLifeSignal:            gaugeLifeSignal,
		GaugeLiveSubscriptions:     gaugeLiveSubscriptions,
		GaugeScheduledReminders:    gaugeScheduledReminders,
		HistogramRequestDuration:   histogramRequestDuration,
		HistogramPhotoBytes:        histogramPhotoBytes,
	}
}
