package metrics

import "sync"

// Mock is a mock implementation of the Metrics interface for testing.
// It is safe for concurrent use.
type Mock struct {
	mu                sync.Mutex
	fetches           map[string]int
	fetchErrors       map[string]int
	mutationSuccesses map[string]int
	mutationFailures  map[string]int
	changeEvents      map[string]int
	uploadsRejected   int
	notifSent         int
	notifFailed       int
	startupTime       float64
}

// NewMock creates a new mock instance.
func NewMock() *Mock {
	return &Mock{
		fetches:           make(map[string]int),
		fetchErrors:       make(map[string]int),
		mutationSuccesses: make(map[string]int),
		mutationFailures:  make(map[string]int),
		changeEvents:      make(map[string]int),
	}
}

func (m *Mock) IncFetch(collection string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.fetches[collection]++
}

func (m *Mock) IncFetchError(collection string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.fetchErrors[collection]++
}

func (m *Mock) IncMutationSuccess(kind string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.mutationSuccesses[kind]++
}

func (m *Mock) IncMutationFailure(kind string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.mutationFailures[kind]++
}

func (m *Mock) IncChangeEvent(collection string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.changeEvents[collection]++
}

func (m *Mock) IncUploadRejected() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.uploadsRejected++
}

func (m *Mock) IncNotifSent() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.notifSent++
}

func (m *Mock) IncNotifFailed() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.notifFailed++
}

func (m *Mock) SetStartupTime(duration float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.startupTime = duration
}

// Fetches returns the recorded fetch count for a collection.
func (m *Mock) Fetches(collection string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.fetches[collection]
}

// UploadsRejected returns the recorded rejected-upload count.
func (m *Mock) UploadsRejected() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.uploadsRejected
}
