package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mgpai22/vaani/internal/audio"
	"github.com/mgpai22/vaani/internal/transcribe"
	"github.com/spf13/cobra"
)

var transcribeCmd = &cobra.Command{
	Use:   "transcribe [audio_file]",
	Short: "Produce a word-level timing transcript for an audio file",
	Long: `Transcribe an audio file with word-level timestamps and save the result
as a transcript JSON file, ready for 'vaani align'.

Examples:
  vaani transcribe narration.mp3
  vaani transcribe narration.mp3 -o transcript.json
  vaani transcribe narration.wav --api-key YOUR_KEY -l en`,
	Args: cobra.ExactArgs(1),
	RunE: runTranscribe,
}

func init() {
	rootCmd.AddCommand(transcribeCmd)

	transcribeCmd.Flags().
		StringP("api-key", "k", "", "OpenAI API key (or set OPENAI_API_KEY env var)")
	transcribeCmd.Flags().
		String("model", "whisper-1", "Transcription model to use")
	transcribeCmd.Flags().
		String("prompt", "", "Optional prompt to guide the transcription")
}

func runTranscribe(cmd *cobra.Command, args []string) error {
	audioPath := args[0]
	ctx := context.Background()

	if _, err := os.Stat(audioPath); os.IsNotExist(err) {
		return fmt.Errorf("file not found: %s", audioPath)
	}
	if !audio.IsAudioFile(audioPath) {
		return fmt.Errorf(
			"unsupported file type: %s (expected audio file)",
			filepath.Ext(audioPath),
		)
	}

	apiKey, _ := cmd.Flags().GetString("api-key")
	model, _ := cmd.Flags().GetString("model")
	prompt, _ := cmd.Flags().GetString("prompt")
	outputPath, _ := cmd.Flags().GetString("output")
	language, _ := cmd.Flags().GetString("language")

	if apiKey == "" {
		apiKey = os.Getenv("OPENAI_API_KEY")
	}
	if apiKey == "" {
		return fmt.Errorf(
			"OpenAI API key is required: use --api-key flag or set OPENAI_API_KEY environment variable",
		)
	}

	if outputPath == "" {
		base := strings.TrimSuffix(audioPath, filepath.Ext(audioPath))
		outputPath = base + ".transcript.json"
	}

	logger.Infow("Transcribing audio",
		"input", audioPath,
		"output", outputPath,
		"model", model,
	)

	opts := transcribe.Options{
		Language: language,
		Model:    model,
		Prompt:   prompt,
	}

	transcriber, err := transcribe.Factory(
		ctx,
		transcribe.ProviderOpenAI,
		apiKey,
		opts,
	)
	if err != nil {
		return fmt.Errorf("failed to create transcriber: %w", err)
	}

	result, err := transcriber.Transcribe(ctx, audioPath)
	if err != nil {
		return fmt.Errorf("transcription failed: %w", err)
	}

	if err := result.Save(outputPath); err != nil {
		return fmt.Errorf("failed to save transcript: %w", err)
	}

	absOutput, _ := filepath.Abs(outputPath)
	fmt.Printf("Transcript written: %s\n", absOutput)
	fmt.Printf("  Words: %d\n", len(result.Words))
	fmt.Printf("  Duration: %.2fs\n", result.Duration)

	return nil
}
