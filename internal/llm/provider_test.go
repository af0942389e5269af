package llm

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClient(t *testing.T) {
	tests := []struct {
		provider string
		apiKey   string
		wantNil  bool
		wantErr  bool
	}{
		{ProviderOpenAI, "sk-test", false, false},
		{ProviderOpenAI, "", true, true},
		{ProviderAnthropic, "key", false, false},
		{ProviderAnthropic, "", true, true},
		{ProviderMock, "", false, false},
		{ProviderNone, "", true, false},
		{"cohere", "key", true, true},
	}

	for _, tt := range tests {
		t.Run(tt.provider+"/"+tt.apiKey, func(t *testing.T) {
			client, err := NewClient(tt.provider, tt.apiKey)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.wantNil, client == nil)
		})
	}
}

func TestMockClient(t *testing.T) {
	c := NewMockClient()
	ctx := context.Background()

	out, err := c.Generate(ctx, "sys", "user")
	require.NoError(t, err)
	assert.Equal(t, "Mock coaching reply", out)
	require.Len(t, c.Calls, 1)
	assert.Equal(t, "sys", c.Calls[0].System)

	c.Error = errors.New("down")
	_, err = c.Generate(ctx, "sys", "user")
	assert.Error(t, err)

	c.Reset()
	assert.Empty(t, c.Calls)
	assert.NoError(t, c.Error)
}
