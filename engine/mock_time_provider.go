package engine

import (
	"sync"
	"time"

	"github.com/lixenwraith/pixel-racer/parameter"
)

// MockTimeProvider is a manually driven clock for tests and headless races
// Time moves only through Step, Advance and SetTime
type MockTimeProvider struct {
	mu    sync.Mutex
	now   time.Time
	steps uint64
}

func NewMockTimeProvider(start time.Time) *MockTimeProvider {
	return &MockTimeProvider{now: start}
}

func (m *MockTimeProvider) Now() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.now
}

// SetTime jumps to t, which may be earlier than the current time
func (m *MockTimeProvider) SetTime(t time.Time) {
	m.mu.Lock()
	m.now = t
	m.mu.Unlock()
}

func (m *MockTimeProvider) Advance(d time.Duration) {
	m.mu.Lock()
	m.now = m.now.Add(d)
	m.mu.Unlock()
}

// Step advances one simulation tick
func (m *MockTimeProvider) Step() {
	m.mu.Lock()
	m.now = m.now.Add(parameter.TickInterval)
	m.steps++
	m.mu.Unlock()
}

// Steps counts calls to Step
func (m *MockTimeProvider) Steps() uint64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.steps
}
