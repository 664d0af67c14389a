package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var _ Metrics = (*Service)(nil)

// NewMetricsHandler returns an http.Handler for the given Gatherer.
// If no gatherer is provided, it uses the default one.
func NewMetricsHandler(gatherer ...prometheus.Gatherer) http.Handler {
	gath := prometheus.DefaultGatherer
	if len(gatherer) > 0 {
		gath = gatherer[0]
	}
	return promhttp.HandlerFor(gath, promhttp.HandlerOpts{})
}

// NewService creates and registers the Prometheus metrics.
// If no registerer is provided, it uses the default Prometheus registerer.
func NewService(registerer ...prometheus.Registerer) *Service {
	reg := prometheus.DefaultRegisterer
	if len(registerer) > 0 {
		reg = registerer[0]
	}

	s := &Service{
		Fetches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "clubsync_fetches_total",
			Help: "The total number of collection fetches, by collection.",
		}, []string{"collection"}),
		FetchErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "clubsync_fetch_errors_total",
			Help: "The total number of failed collection fetches, by collection.",
		}, []string{"collection"}),
		MutationSuccesses: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "clubsync_mutations_total",
			Help: "The total number of successful mutations, by kind.",
		}, []string{"kind"}),
		MutationFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "clubsync_mutation_failures_total",
			Help: "The total number of failed mutations, by kind.",
		}, []string{"kind"}),
		ChangeEvents: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "clubsync_change_events_total",
			Help: "The total number of change-feed notifications handled, by collection.",
		}, []string{"collection"}),
		UploadsRejected: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "clubsync_uploads_rejected_total",
			Help: "The total number of logo uploads rejected before any network call.",
		}),
		NotifSent: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "clubsync_notifications_sent_total",
			Help: "The total number of notifications successfully sent.",
		}),
		NotifFailed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "clubsync_notifications_failed_total",
			Help: "The total number of notifications that failed to send.",
		}),
		StartupTimeSeconds: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "clubsync_startup_duration_seconds",
			Help: "The duration of the application startup in seconds.",
		}),
	}

	reg.MustRegister(
		s.Fetches,
		s.FetchErrors,
		s.MutationSuccesses,
		s.MutationFailures,
		s.ChangeEvents,
		s.UploadsRejected,
		s.NotifSent,
		s.NotifFailed,
		s.StartupTimeSeconds,
	)

	return s
}

func (s *Service) IncFetch(collection string) {
	s.Fetches.WithLabelValues(collection).Inc()
}

func (s *Service) IncFetchError(collection string) {
	s.FetchErrors.WithLabelValues(collection).Inc()
}

func (s *Service) IncMutationSuccess(kind string) {
	s.MutationSuccesses.WithLabelValues(kind).Inc()
}

func (s *Service) IncMutationFailure(kind string) {
	s.MutationFailures.WithLabelValues(kind).Inc()
}

func (s *Service) IncChangeEvent(collection string) {
	s.ChangeEvents.WithLabelValues(collection).Inc()
}

func (s *Service) IncUploadRejected() {
	s.UploadsRejected.Inc()
}

func (s *Service) IncNotifSent() {
	s.NotifSent.Inc()
}

func (s *Service) IncNotifFailed() {
	s.NotifFailed.Inc()
}

func (s *Service) SetStartupTime(duration float64) {
	s.StartupTimeSeconds.Set(duration)
}
