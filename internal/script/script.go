package script

import (
	"context"
	"fmt"
	"regexp"
	"strings"
)

// interface for narration script generation
type Generator interface {
	Generate(ctx context.Context, topic string) (string, error)
}

// script generation service provider
type Provider string

const (
	ProviderOpenAI    Provider = "openai"
	ProviderAnthropic Provider = "anthropic"
	ProviderGemini    Provider = "gemini"
)

type Options struct {
	Style    string // narration tone, e.g. "energetic", "calm documentary"
	Language string // output language (default English)
	MaxWords int    // approximate narration length (default 120)
	Model    string
	Prompt   string // additional instructions
}

const DefaultMaxWords = 120

// creates Generator based on provider
func Factory(
	ctx context.Context,
	provider Provider,
	apiKey string,
	opts Options,
) (Generator, error) {
	switch provider {
	case ProviderOpenAI:
		return NewOpenAIGenerator(ctx, apiKey, opts)
	case ProviderAnthropic:
		return NewAnthropicGenerator(ctx, apiKey, opts)
	case ProviderGemini:
		return NewGeminiGenerator(ctx, apiKey, opts)
	default:
		return nil, fmt.Errorf("unsupported script provider: %s", provider)
	}
}

// BuildPrompt creates the narration prompt shared by all LLM providers.
// The instructions keep the output friendly to the caption aligner, which
// splits sentences on terminal punctuation.
func BuildPrompt(opts Options, topic string) string {
	maxWords := opts.MaxWords
	if maxWords <= 0 {
		maxWords = DefaultMaxWords
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(
		"Write a spoken narration script about the following topic: %s\n\n",
		topic,
	))

	sb.WriteString("IMPORTANT INSTRUCTIONS:\n")
	sb.WriteString(fmt.Sprintf(
		"1. Keep it to roughly %d words.\n", maxWords,
	))
	sb.WriteString(
		"2. Use short declarative sentences, each ending with '.', '!' or '?'.\n",
	)
	sb.WriteString(
		"3. Output plain prose only: no headings, markdown, emojis, or stage directions.\n",
	)
	sb.WriteString(
		"4. The text will be read aloud verbatim by a voice synthesizer.\n",
	)

	if opts.Style != "" {
		sb.WriteString(fmt.Sprintf("Tone: %s.\n", opts.Style))
	}
	if opts.Language != "" {
		sb.WriteString(fmt.Sprintf("Write the narration in %s.\n", opts.Language))
	}
	if opts.Prompt != "" {
		sb.WriteString(fmt.Sprintf("\nAdditional instructions: %s\n", opts.Prompt))
	}

	sb.WriteString("\nOutput the narration text only:")

	return sb.String()
}

var codeFenceRegex = regexp.MustCompile("```[a-z]*\\s*")

// cleanNarration strips markdown wrapping and normalizes whitespace in an
// LLM response so the result is plain speakable prose.
func cleanNarration(s string) string {
	s = codeFenceRegex.ReplaceAllString(s, "")
	s = strings.ReplaceAll(s, "```", "")
	s = strings.TrimSpace(s)
	s = strings.Trim(s, "\"")

	// collapse internal newlines into single spaces
	fields := strings.Fields(s)
	return strings.Join(fields, " ")
}
