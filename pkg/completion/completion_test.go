package completion

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProvider(t *testing.T) {
	tests := []struct {
		name      string
		cfg       Config
		wantName  string
		shouldErr bool
	}{
		{"openai", Config{Provider: "openai", APIKey: "k"}, "openai", false},
		{"openai with base url", Config{Provider: "openai", APIKey: "k", BaseURL: "https://api.groq.com/openai/v1"}, "openai", false},
		{"anthropic", Config{Provider: "anthropic", APIKey: "k"}, "anthropic", false},
		{"unknown", Config{Provider: "gemini"}, "", true},
		{"empty", Config{}, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := NewProvider(tt.cfg)
			if tt.shouldErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantName, p.Name())
		})
	}
}
