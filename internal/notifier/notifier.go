package notifier

// Notifier is the side channel through which consumers learn the outcome
// of operations. Failures never propagate past the boundary where the I/O
// happened; they surface here instead.
// This decouples the rest of the application from the specific
// notification provider (e.g., Slack).
type Notifier interface {
	SendSuccess(message string)
	SendError(message string)
}
