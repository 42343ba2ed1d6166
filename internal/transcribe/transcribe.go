package transcribe

import (
	"context"
	"fmt"

	"github.com/mgpai22/vaani/internal/transcript"
)

// interface for word-level audio transcription
type Transcriber interface {
	Transcribe(
		ctx context.Context,
		audioPath string,
	) (*transcript.Transcript, error)
}

// transcription service provider
type Provider string

const (
	ProviderOpenAI Provider = "openai"
	ProviderGemini Provider = "gemini"
)

// transcription options
type Options struct {
	Language string // Source language of the audio
	Model    string
	Prompt   string
}

// creates transcriber based on provider
func Factory(
	ctx context.Context,
	provider Provider,
	apiKey string,
	opts Options,
) (Transcriber, error) {
	switch provider {
	case ProviderOpenAI:
		return NewOpenAITranscriber(ctx, apiKey, opts)
	case ProviderGemini:
		return nil, fmt.Errorf(
			"gemini provider does not return word-level timestamps",
		)
	default:
		return nil, fmt.Errorf("unsupported provider: %s", provider)
	}
}
