package metrics

import "github.com/prometheus/client_golang/prometheus"

// Service holds all the Prometheus metrics for the application.
// By defining them all in one place, we ensure consistency in naming and labeling.
type Service struct {
	Fetches            *prometheus.CounterVec
	FetchErrors        *prometheus.CounterVec
	MutationSuccesses  *prometheus.CounterVec
	MutationFailures   *prometheus.CounterVec
	ChangeEvents       *prometheus.CounterVec
	UploadsRejected    prometheus.Counter
	NotifSent          prometheus.Counter
	NotifFailed        prometheus.Counter
	StartupTimeSeconds prometheus.Gauge
}
