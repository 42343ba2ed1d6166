package transcribe

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/mgpai22/vaani/internal/audio"
	"github.com/mgpai22/vaani/internal/caption"
	"github.com/mgpai22/vaani/internal/transcript"
)

// implements Transcriber using the OpenAI Audio API with word-level
// timestamp granularity
type OpenAITranscriber struct {
	client  openai.Client
	model   string
	options Options
}

// word entry from the Whisper verbose_json response
type whisperWord struct {
	Word  string  `json:"word"`
	Start float64 `json:"start"`
	End   float64 `json:"end"`
}

// verbose_json response structure from Whisper
type whisperVerboseResponse struct {
	Text     string        `json:"text"`
	Words    []whisperWord `json:"words"`
	Language string        `json:"language"`
	Duration float64       `json:"duration"`
}

func NewOpenAITranscriber(
	ctx context.Context,
	apiKey string,
	opts Options,
) (*OpenAITranscriber, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}

	client := openai.NewClient(option.WithAPIKey(apiKey))

	model := opts.Model
	if model == "" {
		model = "whisper-1"
	}

	return &OpenAITranscriber{
		client:  client,
		model:   model,
		options: opts,
	}, nil
}

// transcribes a single audio file into a timed-word transcript
func (t *OpenAITranscriber) Transcribe(
	ctx context.Context,
	audioPath string,
) (*transcript.Transcript, error) {
	if _, err := os.Stat(audioPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("audio file not found: %s", audioPath)
	}

	file, err := os.Open(audioPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open audio file: %w", err)
	}
	defer file.Close()

	params := openai.AudioTranscriptionNewParams{
		File:                   file,
		Model:                  openai.AudioModel(t.model),
		ResponseFormat:         openai.AudioResponseFormatVerboseJSON,
		TimestampGranularities: []string{"word"},
	}

	if t.options.Language != "" {
		params.Language = openai.String(t.options.Language)
	}
	if t.options.Prompt != "" {
		params.Prompt = openai.String(t.options.Prompt)
	}

	resp, err := t.client.Audio.Transcriptions.New(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("transcription failed: %w", err)
	}

	result, err := parseVerboseJSONResponse(resp.RawJSON())
	if err != nil {
		return nil, fmt.Errorf("failed to parse transcription: %w", err)
	}

	if result.Duration == 0 {
		if d, err := audio.GetDuration(audioPath); err == nil {
			result.Duration = d.Seconds()
		}
	}

	return result, nil
}

func parseVerboseJSONResponse(rawJSON string) (*transcript.Transcript, error) {
	if rawJSON == "" {
		return nil, fmt.Errorf("empty response")
	}

	var verboseResp whisperVerboseResponse
	if err := json.Unmarshal([]byte(rawJSON), &verboseResp); err != nil {
		return nil, fmt.Errorf("failed to parse verbose_json response: %w", err)
	}

	if len(verboseResp.Words) == 0 {
		return nil, fmt.Errorf("no word timestamps in response")
	}

	words := make([]caption.Word, 0, len(verboseResp.Words))
	for _, w := range verboseResp.Words {
		text := strings.TrimSpace(w.Word)
		if text == "" {
			continue
		}
		words = append(words, caption.Word{
			Text:  text,
			Start: w.Start,
			End:   w.End,
		})
	}

	return &transcript.Transcript{
		Text:     strings.TrimSpace(verboseResp.Text),
		Words:    words,
		Duration: verboseResp.Duration,
	}, nil
}

func (t *OpenAITranscriber) Close() error {
	return nil
}
