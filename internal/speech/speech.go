package speech

import (
	"context"
	"fmt"
)

// interface for narration audio synthesis
type Synthesizer interface {
	Synthesize(ctx context.Context, text, outputPath string) error
}

// speech synthesis service provider
type Provider string

const (
	ProviderOpenAI Provider = "openai"
)

// synthesis options
type Options struct {
	Voice  string  // provider voice name (default "alloy")
	Model  string  // synthesis model (default "tts-1")
	Speed  float64 // playback speed multiplier, 0 means provider default
	Format string  // output audio format (default "mp3")
}

// creates Synthesizer based on provider
func Factory(
	ctx context.Context,
	provider Provider,
	apiKey string,
	opts Options,
) (Synthesizer, error) {
	switch provider {
	case ProviderOpenAI:
		return NewOpenAISynthesizer(ctx, apiKey, opts)
	default:
		return nil, fmt.Errorf("unsupported speech provider: %s", provider)
	}
}
