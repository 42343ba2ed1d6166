package cli

import (
	"testing"

	"github.com/mgpai22/vaani/internal/script"
)

func TestAPIKeyEnvVar(t *testing.T) {
	tests := []struct {
		provider script.Provider
		want     string
	}{
		{script.ProviderOpenAI, "OPENAI_API_KEY"},
		{script.ProviderAnthropic, "ANTHROPIC_API_KEY"},
		{script.ProviderGemini, "GEMINI_API_KEY"},
		{script.Provider("unknown"), "OPENAI_API_KEY"},
	}

	for _, tt := range tests {
		t.Run(string(tt.provider), func(t *testing.T) {
			if got := apiKeyEnvVar(tt.provider); got != tt.want {
				t.Errorf("apiKeyEnvVar(%q) = %q, want %q", tt.provider, got, tt.want)
			}
		})
	}
}
