package video

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	ffmpeg "github.com/u2takey/ffmpeg-go"

	ffmpegbin "github.com/mgpai22/vaani/internal/ffmpeg"
)

// defines interface for compositor operations
type Processor interface {
	// lays the narration audio over a background video
	Compose(
		ctx context.Context,
		videoPath, audioPath, outputPath string,
		opts ComposeOptions,
	) error

	// burns a caption file into the video frames
	BurnCaptions(
		ctx context.Context,
		videoPath, captionPath, outputPath string,
		opts BurnOptions,
	) error
}

// holds options for audio/video composition
type ComposeOptions struct {
	LoopVideo    bool   // loop the background video to cover the narration
	AudioCodec   string // output audio codec (default aac)
	AudioBitrate string // e.g. "128k"
}

// returns sensible defaults for composition
func DefaultComposeOptions() ComposeOptions {
	return ComposeOptions{
		LoopVideo:  true,
		AudioCodec: "aac",
	}
}

// holds options for caption burn-in
type BurnOptions struct {
	FontSize int
	MarginV  int
}

// default implementation using ffmpeg
type DefaultProcessor struct{}

func NewProcessor() *DefaultProcessor {
	return &DefaultProcessor{}
}

// lays the narration audio over a background video, cutting the output at
// the shorter of the two inputs
func (p *DefaultProcessor) Compose(
	ctx context.Context,
	videoPath, audioPath, outputPath string,
	opts ComposeOptions,
) error {
	if _, err := os.Stat(videoPath); os.IsNotExist(err) {
		return fmt.Errorf("video file not found: %s", videoPath)
	}
	if _, err := os.Stat(audioPath); os.IsNotExist(err) {
		return fmt.Errorf("audio file not found: %s", audioPath)
	}

	if err := os.MkdirAll(filepath.Dir(outputPath), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	ffmpegPath, err := ffmpegbin.FFmpegPath()
	if err != nil {
		return err
	}

	inputKwargs := ffmpeg.KwArgs{}
	if opts.LoopVideo {
		inputKwargs["stream_loop"] = -1
	}

	codec := opts.AudioCodec
	if codec == "" {
		codec = "aac"
	}

	outputKwargs := ffmpeg.KwArgs{
		"c:v":      "copy",
		"c:a":      codec,
		"shortest": "",
		"y":        "",
	}
	if opts.AudioBitrate != "" {
		outputKwargs["b:a"] = opts.AudioBitrate
	}

	videoStream := ffmpeg.Input(videoPath, inputKwargs)
	audioStream := ffmpeg.Input(audioPath)

	err = ffmpeg.Output(
		[]*ffmpeg.Stream{videoStream, audioStream},
		outputPath,
		outputKwargs,
	).
		OverWriteOutput().
		SetFfmpegPath(ffmpegPath).
		Run()

	if err != nil {
		return fmt.Errorf("composition failed: %w", err)
	}

	return nil
}

// burns a caption file into the video frames via the subtitles filter
func (p *DefaultProcessor) BurnCaptions(
	ctx context.Context,
	videoPath, captionPath, outputPath string,
	opts BurnOptions,
) error {
	if _, err := os.Stat(videoPath); os.IsNotExist(err) {
		return fmt.Errorf("video file not found: %s", videoPath)
	}
	if _, err := os.Stat(captionPath); os.IsNotExist(err) {
		return fmt.Errorf("caption file not found: %s", captionPath)
	}

	if err := os.MkdirAll(filepath.Dir(outputPath), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	ffmpegPath, err := ffmpegbin.FFmpegPath()
	if err != nil {
		return err
	}

	kwargs := ffmpeg.KwArgs{
		"vf":  subtitlesFilter(captionPath, opts),
		"c:a": "copy",
		"y":   "",
	}

	err = ffmpeg.Input(videoPath).
		Output(outputPath, kwargs).
		OverWriteOutput().
		SetFfmpegPath(ffmpegPath).
		Run()

	if err != nil {
		return fmt.Errorf("caption burn-in failed: %w", err)
	}

	return nil
}

// builds the subtitles filter expression, escaping the characters the
// filter graph parser treats specially
func subtitlesFilter(captionPath string, opts BurnOptions) string {
	escaped := captionPath
	escaped = strings.ReplaceAll(escaped, `\`, `\\`)
	escaped = strings.ReplaceAll(escaped, `:`, `\:`)
	escaped = strings.ReplaceAll(escaped, `'`, `\'`)

	filter := fmt.Sprintf("subtitles='%s'", escaped)

	var styles []string
	if opts.FontSize > 0 {
		styles = append(styles, fmt.Sprintf("FontSize=%d", opts.FontSize))
	}
	if opts.MarginV > 0 {
		styles = append(styles, fmt.Sprintf("MarginV=%d", opts.MarginV))
	}
	if len(styles) > 0 {
		filter += fmt.Sprintf(":force_style='%s'", strings.Join(styles, ","))
	}

	return filter
}
