package caption

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// supported caption file formats
type Format string

const (
	// FormatCue is the compositor's caption sheet: numbered blocks with
	// HH:MM:SS.mmm timestamps, separated by a blank line.
	FormatCue Format = "cue"
	// FormatSRT is standard SubRip, accepted by the ffmpeg subtitles filter.
	FormatSRT Format = "srt"
)

// interface for writing a cue list to a file
type Writer interface {
	Write(cues []Cue, path string) error
}

// compositor cue sheet
type CueWriter struct{}

// SubRip format
type SRTWriter struct{}

func NewWriter(format Format) (Writer, error) {
	switch format {
	case FormatCue:
		return &CueWriter{}, nil
	case FormatSRT:
		return &SRTWriter{}, nil
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}
}

// Render returns the cue sheet contents for the downstream compositor.
// This layout is the external contract and must not change:
//
//	<1-based index>
//	<start> --> <end>
//	<cue text>
func Render(cues []Cue) string {
	var sb strings.Builder
	for i, cue := range cues {
		sb.WriteString(fmt.Sprintf("%d\n", i+1))
		sb.WriteString(fmt.Sprintf("%s --> %s\n",
			Timecode(cue.Start),
			Timecode(cue.End)))
		sb.WriteString(cue.Text)
		sb.WriteString("\n\n")
	}
	return sb.String()
}

func (w *CueWriter) Write(cues []Cue, path string) error {
	if err := ensureDir(path); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(Render(cues)), 0644)
}

func (w *SRTWriter) Write(cues []Cue, path string) error {
	if err := ensureDir(path); err != nil {
		return err
	}

	var sb strings.Builder
	for i, cue := range cues {
		sb.WriteString(fmt.Sprintf("%d\n", i+1))
		sb.WriteString(fmt.Sprintf("%s --> %s\n",
			srtTimecode(cue.Start),
			srtTimecode(cue.End)))
		sb.WriteString(cue.Text)
		sb.WriteString("\n\n")
	}

	return os.WriteFile(path, []byte(sb.String()), 0644)
}

func ensureDir(path string) error {
	dir := filepath.Dir(path)
	return os.MkdirAll(dir, 0755)
}

// file extension for a format
func GetExtensionForFormat(format Format) string {
	switch format {
	case FormatSRT:
		return ".srt"
	default:
		return ".cues.txt"
	}
}
