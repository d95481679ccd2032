package testutil

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/dafibh/budget-planner/internal/domain"
	"github.com/dafibh/budget-planner/internal/websocket"
)

// MockStateStore is a mock implementation of domain.StateStore
type MockStateStore struct {
	mu      sync.Mutex
	Values  map[string][]byte
	Deleted []string

	// Errors injected per operation
	GetErr    error
	PutErr    error
	DeleteErr error
}

// NewMockStateStore creates a new MockStateStore
func NewMockStateStore() *MockStateStore {
	return &MockStateStore{
		Values: make(map[string][]byte),
	}
}

// Get retrieves a stored value
func (m *MockStateStore) Get(ctx context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GetErr != nil {
		return nil, m.GetErr
	}
	value, ok := m.Values[key]
	if !ok {
		return nil, domain.ErrStateNotFound
	}
	return value, nil
}

// Put stores a value
func (m *MockStateStore) Put(ctx context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.PutErr != nil {
		return m.PutErr
	}
	m.Values[key] = append([]byte(nil), value...)
	return nil
}

// Delete removes a stored value
func (m *MockStateStore) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Deleted = append(m.Deleted, key)
	if m.DeleteErr != nil {
		return m.DeleteErr
	}
	delete(m.Values, key)
	return nil
}

// Has reports whether key is stored
func (m *MockStateStore) Has(key string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.Values[key]
	return ok
}

// SetRaw stores value without going through Put (for seeding malformed blobs)
func (m *MockStateStore) SetRaw(key, value string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Values[key] = []byte(value)
}

// MockEventPublisher captures published events
type MockEventPublisher struct {
	mu     sync.Mutex
	Events []websocket.Event
}

// NewMockEventPublisher creates a new MockEventPublisher
func NewMockEventPublisher() *MockEventPublisher {
	return &MockEventPublisher{}
}

// Publish records the event
func (m *MockEventPublisher) Publish(event websocket.Event) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Events = append(m.Events, event)
}

// Types returns the types of the captured events in publish order
func (m *MockEventPublisher) Types() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	types := make([]string, len(m.Events))
	for i, evt := range m.Events {
		types[i] = evt.Type
	}
	return types
}

// ArchivedReport is a report stored by MockReportRepository
type ArchivedReport struct {
	FileName    string
	ContentType string
	Data        []byte
}

// MockReportRepository is a mock implementation of storage.ReportRepository
type MockReportRepository struct {
	mu         sync.Mutex
	Reports    map[string]ArchivedReport
	ArchiveErr error
	PresignErr error
}

// NewMockReportRepository creates a new MockReportRepository
func NewMockReportRepository() *MockReportRepository {
	return &MockReportRepository{
		Reports: make(map[string]ArchivedReport),
	}
}

// Archive stores the report under a deterministic path
func (m *MockReportRepository) Archive(ctx context.Context, fileName string, data []byte, contentType string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ArchiveErr != nil {
		return "", m.ArchiveErr
	}
	objectPath := fmt.Sprintf("reports/%d-%s", len(m.Reports)+1, fileName)
	m.Reports[objectPath] = ArchivedReport{
		FileName:    fileName,
		ContentType: contentType,
		Data:        append([]byte(nil), data...),
	}
	return objectPath, nil
}

// PresignedURL returns a fake URL for an archived report
func (m *MockReportRepository) PresignedURL(ctx context.Context, objectPath string, expiry time.Duration) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.PresignErr != nil {
		return "", m.PresignErr
	}
	if _, ok := m.Reports[objectPath]; !ok {
		return "", fmt.Errorf("object %s not found", objectPath)
	}
	return fmt.Sprintf("https://reports.example.test/%s?expires=%d", objectPath, int(expiry.Seconds())), nil
}
