package factory

import (
	"time"

	"github.com/mcoot/gameplayers/internal/dependencies/mocks"
	"github.com/mcoot/gameplayers/internal/metrics"
	"github.com/mcoot/gameplayers/internal/storage/memory"
	"github.com/mcoot/gameplayers/internal/testutil"
)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	MockClock *mocks.MockClock
	Memory    *memory.Storage
}

// NewTestApp creates an App on in-memory storage with a mocked clock and live metrics
func NewTestApp() *TestApp {
	store := memory.New()
	mockClock := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))

	app := newWithDependencies(store, mockClock, metrics.NewRecorder(), testutil.NopLogger())

	return &TestApp{
		App:       app,
		MockClock: mockClock,
		Memory:    store,
	}
}
