package script

import (
	"context"
	"strings"
	"testing"
)

func TestBuildPrompt(t *testing.T) {
	opts := Options{
		Style:    "calm documentary",
		Language: "English",
		MaxWords: 80,
	}

	prompt := BuildPrompt(opts, "the history of lighthouses")

	for _, want := range []string{
		"the history of lighthouses",
		"roughly 80 words",
		"Tone: calm documentary.",
		"English",
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q:\n%s", want, prompt)
		}
	}

	// the conditional instructions stay unnumbered so the list never skips
	if strings.Contains(prompt, "5.") {
		t.Errorf("prompt numbers a conditional instruction:\n%s", prompt)
	}
}

func TestBuildPromptDefaultsMaxWords(t *testing.T) {
	prompt := BuildPrompt(Options{}, "anything")
	if !strings.Contains(prompt, "roughly 120 words") {
		t.Errorf("prompt missing default word budget:\n%s", prompt)
	}
}

func TestCleanNarration(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			"plain text",
			"Hello world. Goodbye now.",
			"Hello world. Goodbye now.",
		},
		{
			"code fence",
			"```text\nHello world.\n```",
			"Hello world.",
		},
		{
			"surrounding quotes",
			`"Hello world."`,
			"Hello world.",
		},
		{
			"newlines collapse",
			"First sentence.\n\nSecond sentence.",
			"First sentence. Second sentence.",
		},
		{
			"leading whitespace",
			"   Hello.  ",
			"Hello.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := cleanNarration(tt.input)
			if got != tt.want {
				t.Errorf("cleanNarration(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestFactory(t *testing.T) {
	ctx := context.Background()

	if _, err := Factory(ctx, Provider("bogus"), "key", Options{}); err == nil {
		t.Error("expected error for unknown provider")
	}
	if _, err := Factory(ctx, ProviderOpenAI, "", Options{}); err == nil {
		t.Error("expected error for missing API key")
	}

	gen, err := Factory(ctx, ProviderAnthropic, "key", Options{})
	if err != nil {
		t.Fatalf("Factory failed: %v", err)
	}
	if _, ok := gen.(*AnthropicGenerator); !ok {
		t.Errorf("expected *AnthropicGenerator, got %T", gen)
	}
}
