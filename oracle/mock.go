package oracle

import (
	"context"
	"time"
)

// MockOracle is a mock translation oracle for testing.
type MockOracle struct {
	Response   string        // Raw response returned by Invoke
	Err        error         // Error returned instead of a response
	Delay      time.Duration // Simulated latency before responding
	CallCount  int           // Number of times Invoke was called
	LastPrompt string        // Last prompt received
}

// NewMockOracle creates a mock oracle returning the given raw response.
func NewMockOracle(response string) *MockOracle {
	return &MockOracle{Response: response}
}

// Invoke returns the canned response, honoring the configured delay and
// context cancellation.
func (m *MockOracle) Invoke(ctx context.Context, prompt string) (string, error) {
	m.CallCount++
	m.LastPrompt = prompt

	if m.Delay > 0 {
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(m.Delay):
		}
	}

	if m.Err != nil {
		return "", m.Err
	}
	return m.Response, nil
}

// Reset resets the call count and last prompt.
func (m *MockOracle) Reset() {
	m.CallCount = 0
	m.LastPrompt = ""
}

// Verify MockOracle implements Oracle
var _ Oracle = (*MockOracle)(nil)
