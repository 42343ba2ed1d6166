package speech

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// implements Synthesizer using the OpenAI text-to-speech API
type OpenAISynthesizer struct {
	client  openai.Client
	model   string
	options Options
}

func NewOpenAISynthesizer(
	ctx context.Context,
	apiKey string,
	opts Options,
) (*OpenAISynthesizer, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}

	client := openai.NewClient(option.WithAPIKey(apiKey))

	model := opts.Model
	if model == "" {
		model = "tts-1"
	}

	return &OpenAISynthesizer{
		client:  client,
		model:   model,
		options: opts,
	}, nil
}

// synthesizes the narration text into an audio file
func (s *OpenAISynthesizer) Synthesize(
	ctx context.Context,
	text, outputPath string,
) error {
	if strings.TrimSpace(text) == "" {
		return fmt.Errorf("narration text is empty")
	}

	voice := s.options.Voice
	if voice == "" {
		voice = "alloy"
	}

	format := s.options.Format
	if format == "" {
		format = "mp3"
	}

	params := openai.AudioSpeechNewParams{
		Model:          openai.SpeechModel(s.model),
		Input:          text,
		Voice:          openai.AudioSpeechNewParamsVoice(voice),
		ResponseFormat: openai.AudioSpeechNewParamsResponseFormat(format),
	}
	if s.options.Speed > 0 {
		params.Speed = openai.Float(s.options.Speed)
	}

	resp, err := s.client.Audio.Speech.New(ctx, params)
	if err != nil {
		return fmt.Errorf("speech synthesis failed: %w", err)
	}
	defer resp.Body.Close()

	if err := os.MkdirAll(filepath.Dir(outputPath), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	out, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer out.Close()

	if _, err := io.Copy(out, resp.Body); err != nil {
		return fmt.Errorf("failed to write audio: %w", err)
	}

	return nil
}

func (s *OpenAISynthesizer) Close() error {
	return nil
}
