package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mgpai22/vaani/internal/audio"
	"github.com/mgpai22/vaani/internal/speech"
	"github.com/spf13/cobra"
)

var speakCmd = &cobra.Command{
	Use:   "speak [script.txt]",
	Short: "Synthesize narration audio from a script file",
	Long: `Read a narration script and synthesize it into an audio file using a
text-to-speech provider.

Examples:
  vaani speak script.txt
  vaani speak script.txt -o narration.mp3 --voice nova
  vaani speak script.txt --model tts-1-hd --speed 1.1`,
	Args: cobra.ExactArgs(1),
	RunE: runSpeak,
}

func init() {
	rootCmd.AddCommand(speakCmd)

	speakCmd.Flags().
		StringP("api-key", "k", "", "OpenAI API key (or set OPENAI_API_KEY env var)")
	speakCmd.Flags().
		String("voice", "alloy", "Voice to synthesize with")
	speakCmd.Flags().
		String("model", "tts-1", "Speech model to use")
	speakCmd.Flags().
		Float64("speed", 0, "Playback speed multiplier (0 = provider default)")
	speakCmd.Flags().
		StringP("format", "f", "mp3", "Output audio format (mp3, wav, opus, aac)")
}

func runSpeak(cmd *cobra.Command, args []string) error {
	scriptPath := args[0]
	ctx := context.Background()

	apiKey, _ := cmd.Flags().GetString("api-key")
	voice, _ := cmd.Flags().GetString("voice")
	model, _ := cmd.Flags().GetString("model")
	speed, _ := cmd.Flags().GetFloat64("speed")
	format, _ := cmd.Flags().GetString("format")
	outputPath, _ := cmd.Flags().GetString("output")

	if apiKey == "" {
		apiKey = os.Getenv("OPENAI_API_KEY")
	}
	if apiKey == "" {
		return fmt.Errorf(
			"OpenAI API key is required: use --api-key flag or set OPENAI_API_KEY environment variable",
		)
	}

	data, err := os.ReadFile(scriptPath)
	if err != nil {
		return fmt.Errorf("failed to read script: %w", err)
	}
	text := strings.TrimSpace(string(data))
	if text == "" {
		return fmt.Errorf("script is empty: %s", scriptPath)
	}

	if outputPath == "" {
		base := strings.TrimSuffix(scriptPath, filepath.Ext(scriptPath))
		outputPath = base + "." + format
	}

	logger.Infow("Synthesizing narration",
		"script", scriptPath,
		"output", outputPath,
		"voice", voice,
		"model", model,
	)

	opts := speech.Options{
		Voice:  voice,
		Model:  model,
		Speed:  speed,
		Format: format,
	}

	synthesizer, err := speech.Factory(ctx, speech.ProviderOpenAI, apiKey, opts)
	if err != nil {
		return fmt.Errorf("failed to create synthesizer: %w", err)
	}

	if err := synthesizer.Synthesize(ctx, text, outputPath); err != nil {
		return fmt.Errorf("synthesis failed: %w", err)
	}

	absOutput, _ := filepath.Abs(outputPath)
	fmt.Printf("Narration audio written: %s\n", absOutput)

	if duration, err := audio.GetDuration(outputPath); err == nil {
		fmt.Printf("  Duration: %s\n", duration.String())
	}

	return nil
}
