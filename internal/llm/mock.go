package llm

import (
	"context"
	"sync"
)

// MockClient is a configurable text generator for tests and local runs.
type MockClient struct {
	mu sync.Mutex

	Response string
	Error    error

	// Call tracking for assertions
	Calls []struct{ System, User string }
}

func NewMockClient() *MockClient {
	return &MockClient{Response: "Mock coaching reply"}
}

func (c *MockClient) Generate(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.Calls = append(c.Calls, struct{ System, User string }{systemPrompt, userPrompt})
	if c.Error != nil {
		return "", c.Error
	}
	return c.Response, nil
}

// Reset clears recorded calls and restores the default response.
func (c *MockClient) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.Response = "Mock coaching reply"
	c.Error = nil
	c.Calls = nil
}
