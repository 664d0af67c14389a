package logostore

import (
	"context"
	"sync"
)

// Mock is a spy implementation of Store for testing.
// It is safe for concurrent use.
type Mock struct {
	mu sync.Mutex

	UploadFunc func(fileName string, data []byte, contentType string) (string, error)

	UploadCalls []UploadCall
}

// UploadCall holds the arguments for a call to Upload.
type UploadCall struct {
	FileName    string
	Size        int
	ContentType string
}

// NewMock creates a new mock Store.
func NewMock() *Mock {
	return &Mock{}
}

func (m *Mock) Upload(_ context.Context, fileName string, data []byte, contentType string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.UploadCalls = append(m.UploadCalls, UploadCall{FileName: fileName, Size: len(data), ContentType: contentType})
	if m.UploadFunc != nil {
		return m.UploadFunc(fileName, data, contentType)
	}
	return "https://example.test/logos/" + fileName, nil
}

// CallCount returns the number of uploads attempted.
func (m *Mock) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.UploadCalls)
}
