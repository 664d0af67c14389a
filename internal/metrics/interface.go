package metrics

// Metrics defines the interface for collecting application metrics.
// This decouples the application from the specific metrics implementation (e.g., Prometheus).
type Metrics interface {
	IncFetch(collection string)
	IncFetchError(collection string)
	IncMutationSuccess(kind string)
	IncMutationFailure(kind string)
	IncChangeEvent(collection string)
	IncUploadRejected()
	IncNotifSent()
	IncNotifFailed()
	SetStartupTime(duration float64)
}
