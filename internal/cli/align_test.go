package cli

import (
	"testing"

	"github.com/mgpai22/vaani/internal/caption"
)

func TestParseCaptionFormat(t *testing.T) {
	tests := []struct {
		input   string
		want    caption.Format
		wantErr bool
	}{
		{"cue", caption.FormatCue, false},
		{"CUE", caption.FormatCue, false},
		{"", caption.FormatCue, false},
		{" srt ", caption.FormatSRT, false},
		{"SRT", caption.FormatSRT, false},
		{"ass", "", true},
		{"vtt", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := parseCaptionFormat(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Errorf("parseCaptionFormat(%q): expected error", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseCaptionFormat(%q) failed: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("parseCaptionFormat(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestDefaultCaptionPath(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		format caption.Format
		want   string
	}{
		{
			"transcript suffix stripped",
			"narration.transcript.json",
			caption.FormatCue,
			"narration.cues.txt",
		},
		{
			"plain json",
			"clip.json",
			caption.FormatSRT,
			"clip.srt",
		},
		{
			"nested path",
			"out/run1/audio.transcript.json",
			caption.FormatSRT,
			"out/run1/audio.srt",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := defaultCaptionPath(tt.input, tt.format)
			if got != tt.want {
				t.Errorf("defaultCaptionPath(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
