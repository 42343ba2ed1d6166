package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mgpai22/vaani/internal/caption"
	"github.com/mgpai22/vaani/internal/transcript"
	"github.com/spf13/cobra"
)

var alignCmd = &cobra.Command{
	Use:   "align [transcript.json]",
	Short: "Align a word-timing transcript into caption cues",
	Long: `Align narration text with a word-level timing transcript and write a
caption file with time-bounded cues.

The transcript is the JSON produced by 'vaani transcribe': the spoken text,
one timed entry per word, and the overall duration. By default the narration
text embedded in the transcript is used; pass --text to align against the
original script instead.

Examples:
  vaani align transcript.json
  vaani align transcript.json --text script.txt
  vaani align transcript.json --format srt -o captions.srt`,
	Args: cobra.ExactArgs(1),
	RunE: runAlign,
}

func init() {
	rootCmd.AddCommand(alignCmd)

	alignCmd.Flags().
		StringP("text", "t", "", "Narration text file to align against (default: transcript text)")
	alignCmd.Flags().
		StringP("format", "f", "cue", "Output caption format (cue, srt)")
}

func runAlign(cmd *cobra.Command, args []string) error {
	transcriptPath := args[0]

	textPath, _ := cmd.Flags().GetString("text")
	formatStr, _ := cmd.Flags().GetString("format")
	outputPath, _ := cmd.Flags().GetString("output")

	format, err := parseCaptionFormat(formatStr)
	if err != nil {
		return err
	}

	tr, err := transcript.Load(transcriptPath)
	if err != nil {
		return err
	}
	if len(tr.Words) == 0 {
		return fmt.Errorf(
			"transcript has no word timestamps: %s",
			transcriptPath,
		)
	}

	text := tr.Text
	if textPath != "" {
		data, err := os.ReadFile(textPath)
		if err != nil {
			return fmt.Errorf("failed to read narration text: %w", err)
		}
		text = string(data)
	}
	if strings.TrimSpace(text) == "" {
		return fmt.Errorf("narration text is empty")
	}

	if outputPath == "" {
		outputPath = defaultCaptionPath(transcriptPath, format)
	}

	logger.Infow("Aligning transcript",
		"transcript", transcriptPath,
		"words", len(tr.Words),
		"format", string(format),
		"output", outputPath,
	)

	cues, leftover, err := caption.Assemble(text, tr.Words)
	if err != nil {
		return fmt.Errorf("alignment failed: %w", err)
	}
	if len(leftover) > 0 {
		logger.Debugw("Dropping words after final sentence",
			"count", len(leftover),
		)
	}

	writer, err := caption.NewWriter(format)
	if err != nil {
		return err
	}
	if err := writer.Write(cues, outputPath); err != nil {
		return fmt.Errorf("failed to write captions: %w", err)
	}

	absOutput, _ := filepath.Abs(outputPath)
	fmt.Printf("Captions written: %s\n", absOutput)
	fmt.Printf("  Cues: %d\n", len(cues))

	return nil
}

func parseCaptionFormat(s string) (caption.Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "cue", "":
		return caption.FormatCue, nil
	case "srt":
		return caption.FormatSRT, nil
	default:
		return "", fmt.Errorf("unsupported format %q: use cue or srt", s)
	}
}

// captions land next to the transcript by default
func defaultCaptionPath(transcriptPath string, format caption.Format) string {
	base := strings.TrimSuffix(transcriptPath, filepath.Ext(transcriptPath))
	base = strings.TrimSuffix(base, ".transcript")
	return base + caption.GetExtensionForFormat(format)
}
