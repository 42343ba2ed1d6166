package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mgpai22/vaani/internal/script"
	"github.com/spf13/cobra"
)

var narrateCmd = &cobra.Command{
	Use:   "narrate [topic]",
	Short: "Generate a narration script for a topic",
	Long: `Generate a short spoken narration script for the given topic using an
LLM provider. The output is plain prose with terminal punctuation, ready for
'vaani speak' and the caption aligner.

Examples:
  vaani narrate "the history of lighthouses"
  vaani narrate "deep sea creatures" --provider anthropic --style eerie
  vaani narrate "coffee roasting" --max-words 90 -o script.txt`,
	Args: cobra.ExactArgs(1),
	RunE: runNarrate,
}

func init() {
	rootCmd.AddCommand(narrateCmd)

	narrateCmd.Flags().
		StringP("provider", "p", "openai", "Script provider (openai, anthropic, gemini)")
	narrateCmd.Flags().
		StringP("api-key", "k", "", "Provider API key (or set the provider's env var)")
	narrateCmd.Flags().
		String("model", "", "Model to use (provider default if empty)")
	narrateCmd.Flags().
		String("style", "", "Narration tone, e.g. 'energetic' or 'calm documentary'")
	narrateCmd.Flags().
		Int("max-words", script.DefaultMaxWords, "Approximate narration length in words")
	narrateCmd.Flags().
		String("prompt", "", "Additional instructions for the script")
}

func runNarrate(cmd *cobra.Command, args []string) error {
	topic := args[0]
	ctx := context.Background()

	providerStr, _ := cmd.Flags().GetString("provider")
	apiKey, _ := cmd.Flags().GetString("api-key")
	model, _ := cmd.Flags().GetString("model")
	style, _ := cmd.Flags().GetString("style")
	maxWords, _ := cmd.Flags().GetInt("max-words")
	prompt, _ := cmd.Flags().GetString("prompt")
	outputPath, _ := cmd.Flags().GetString("output")
	language, _ := cmd.Flags().GetString("language")

	provider := script.Provider(strings.ToLower(providerStr))
	if apiKey == "" {
		apiKey = os.Getenv(apiKeyEnvVar(provider))
	}
	if apiKey == "" {
		return fmt.Errorf(
			"API key is required: use --api-key flag or set %s environment variable",
			apiKeyEnvVar(provider),
		)
	}

	opts := script.Options{
		Style:    style,
		Language: language,
		MaxWords: maxWords,
		Model:    model,
		Prompt:   prompt,
	}

	generator, err := script.Factory(ctx, provider, apiKey, opts)
	if err != nil {
		return fmt.Errorf("failed to create script generator: %w", err)
	}

	logger.Infow("Generating narration",
		"topic", topic,
		"provider", providerStr,
		"max_words", maxWords,
	)

	narration, err := generator.Generate(ctx, topic)
	if err != nil {
		return fmt.Errorf("script generation failed: %w", err)
	}

	if outputPath == "" {
		fmt.Println(narration)
		return nil
	}

	if err := os.WriteFile(outputPath, []byte(narration+"\n"), 0644); err != nil {
		return fmt.Errorf("failed to write script: %w", err)
	}

	absOutput, _ := filepath.Abs(outputPath)
	fmt.Printf("Script written: %s\n", absOutput)

	return nil
}

// env var carrying the API key for each provider
func apiKeyEnvVar(provider script.Provider) string {
	switch provider {
	case script.ProviderAnthropic:
		return "ANTHROPIC_API_KEY"
	case script.ProviderGemini:
		return "GEMINI_API_KEY"
	default:
		return "OPENAI_API_KEY"
	}
}
