package factory

import (
	"time"

	"github.com/mcoot/broadside/internal/dependencies/mocks"
	"github.com/mcoot/broadside/internal/dependencies/random"
	"github.com/mcoot/broadside/internal/services/match"
	"github.com/mcoot/broadside/internal/testutil"
)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	MockClock  *mocks.MockClock
	MockRandom *mocks.MockRandom
}

// NewTestApp creates an App configured for testing with mocked dependencies.
// Every random draw comes from MockRandom, so callers queue the values they need.
func NewTestApp(matchCfg match.Config) *TestApp {
	mockClock := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	mockRandom := mocks.NewMockRandom()

	app := newWithDependencies(mockClock, mockRandom, matchCfg, testutil.NopLogger())

	return &TestApp{
		App:        app,
		MockClock:  mockClock,
		MockRandom: mockRandom,
	}
}

// NewSeededTestApp creates an App with a mocked clock and a seeded random
// source, for playing whole games reproducibly. MockRandom is nil.
func NewSeededTestApp(seed uint64, matchCfg match.Config) *TestApp {
	mockClock := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))

	app := newWithDependencies(mockClock, random.NewSeeded(seed), matchCfg, testutil.NopLogger())

	return &TestApp{
		App:       app,
		MockClock: mockClock,
	}
}
