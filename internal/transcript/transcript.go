package transcript

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mgpai22/vaani/internal/caption"
)

// Transcript is the word-timing exchange format between the transcription
// provider and the caption aligner: the spoken text, one timed entry per
// spoken token, and the overall audio duration in seconds.
type Transcript struct {
	Text     string         `json:"text"`
	Words    []caption.Word `json:"words"`
	Duration float64        `json:"duration"`
}

// Load reads a transcript JSON file.
func Load(path string) (*Transcript, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read transcript: %w", err)
	}

	var t Transcript
	if err := json.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("failed to parse transcript: %w", err)
	}

	return &t, nil
}

// Save writes the transcript as indented JSON.
func (t *Transcript) Save(path string) error {
	data, err := json.MarshalIndent(t, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode transcript: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	return os.WriteFile(path, data, 0644)
}
