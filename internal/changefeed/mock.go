package changefeed

import (
	"context"
	"fmt"
	"sync"
)

// MockFeed is an in-memory implementation of Feed for testing.
// It is safe for concurrent use.
type MockFeed struct {
	mu sync.Mutex

	// Spies for method calls
	SubscribeFunc func(collection Collection, onChange func()) (*Subscription, error)
	PublishFunc   func(collection Collection, op string) error

	// Call records
	PublishCalls []PublishCall

	nextID    int
	callbacks map[string]func()
	active    map[Collection]int
}

// PublishCall holds the arguments for a call to Publish.
type PublishCall struct {
	Collection Collection
	Op         string
}

// NewMock creates a new mock Feed.
func NewMock() *MockFeed {
	return &MockFeed{
		callbacks: make(map[string]func()),
		active:    make(map[Collection]int),
	}
}

// Subscribe records the callback and returns an in-memory subscription.
func (m *MockFeed) Subscribe(_ context.Context, collection Collection, onChange func()) (*Subscription, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.SubscribeFunc != nil {
		return m.SubscribeFunc(collection, onChange)
	}
	m.nextID++
	id := fmt.Sprintf("mock-%s-%d", collection, m.nextID)
	m.callbacks[id] = onChange
	m.active[collection]++
	return &Subscription{ID: id, Collection: collection}, nil
}

// Unsubscribe drops the subscription's callback.
func (m *MockFeed) Unsubscribe(sub *Subscription) {
	if sub == nil {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.callbacks[sub.ID]; !ok {
		return
	}
	delete(m.callbacks, sub.ID)
	m.active[sub.Collection]--
}

// Publish records the call.
func (m *MockFeed) Publish(_ context.Context, collection Collection, op string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.PublishCalls = append(m.PublishCalls, PublishCall{Collection: collection, Op: op})
	if m.PublishFunc != nil {
		return m.PublishFunc(collection, op)
	}
	return nil
}

// Trigger fires every registered callback for the collection, simulating a
// remote change notification.
func (m *MockFeed) Trigger(collection Collection) {
	m.mu.Lock()
	var fire []func()
	for id, cb := range m.callbacks {
		if idCollection(id, collection) {
			fire = append(fire, cb)
		}
	}
	m.mu.Unlock()
	for _, cb := range fire {
		cb()
	}
}

// ActiveSubscriptions reports how many subscriptions are currently open for
// the collection.
func (m *MockFeed) ActiveSubscriptions(collection Collection) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.active[collection]
}

// Reset clears all call records and subscriptions.
func (m *MockFeed) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.PublishCalls = nil
	m.callbacks = make(map[string]func())
	m.active = make(map[Collection]int)
}

func (m *MockFeed) Close() {}

func idCollection(id string, collection Collection) bool {
	prefix := "mock-" + string(collection) + "-"
	return len(id) > len(prefix) && id[:len(prefix)] == prefix
}
