package notifier

import "sync"

// Mock is a spy implementation of Notifier for testing.
// It is safe for concurrent use.
type Mock struct {
	mu sync.Mutex

	Successes []string
	Errors    []string
}

// NewMock creates a new mock Notifier.
func NewMock() *Mock {
	return &Mock{}
}

func (m *Mock) SendSuccess(message string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Successes = append(m.Successes, message)
}

func (m *Mock) SendError(message string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Errors = append(m.Errors, message)
}

// LastError returns the most recent error message, or "" if none.
func (m *Mock) LastError() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.Errors) == 0 {
		return ""
	}
	return m.Errors[len(m.Errors)-1]
}

// Reset clears all recorded messages.
func (m *Mock) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Successes = nil
	m.Errors = nil
}
