package caption

import (
	"errors"
	"math"
	"testing"
)

// evenly timed words, stepSeconds apart, starting at startSeconds
func timedWords(start, step float64, texts ...string) []Word {
	words := make([]Word, len(texts))
	for i, text := range texts {
		words[i] = Word{
			Text:  text,
			Start: start + float64(i)*step,
			End:   start + float64(i+1)*step,
		}
	}
	return words
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestAlignSentenceSingleCue(t *testing.T) {
	words := timedWords(0, 0.45, "Hello", "world")

	cues, rest, err := AlignSentence("Hello world", words)
	if err != nil {
		t.Fatalf("AlignSentence failed: %v", err)
	}

	if len(cues) != 1 {
		t.Fatalf("expected 1 cue, got %d", len(cues))
	}
	if cues[0].Text != "Hello world" {
		t.Errorf("expected text 'Hello world', got %q", cues[0].Text)
	}
	if !almostEqual(cues[0].Start, 0) || !almostEqual(cues[0].End, 0.9) {
		t.Errorf("expected window [0, 0.9], got [%v, %v]", cues[0].Start, cues[0].End)
	}
	if len(rest) != 0 {
		t.Errorf("expected no remainder, got %d words", len(rest))
	}
}

func TestAlignSentenceSplitsLongSentence(t *testing.T) {
	sentence := "the quick brown fox jumps over the lazy dog"
	words := timedWords(0, 0.4,
		"the", "quick", "brown", "fox", "jumps", "over", "the", "lazy", "dog")

	cues, rest, err := AlignSentence(sentence, words)
	if err != nil {
		t.Fatalf("AlignSentence failed: %v", err)
	}

	if len(cues) != 2 {
		t.Fatalf("expected 2 cues, got %d: %v", len(cues), cues)
	}
	if cues[0].Text != "the quick brown fox jumps over" {
		t.Errorf("cue 0: got %q", cues[0].Text)
	}
	if cues[1].Text != "the lazy dog" {
		t.Errorf("cue 1: got %q", cues[1].Text)
	}
	if len(cues[0].Text) > MaxCueChars {
		t.Errorf("cue 0 exceeds %d chars: %d", MaxCueChars, len(cues[0].Text))
	}

	// first span ends at its last contributing word, second picks up
	// at the word that overflowed
	if !almostEqual(cues[0].End, 0.4*6) {
		t.Errorf("cue 0: expected end %v, got %v", 0.4*6, cues[0].End)
	}
	if !almostEqual(cues[1].Start, 0.4*6) {
		t.Errorf("cue 1: expected start %v, got %v", 0.4*6, cues[1].Start)
	}
	if len(rest) != 0 {
		t.Errorf("expected no remainder, got %d words", len(rest))
	}
}

func TestAlignSentenceDuplicateWordsBindForward(t *testing.T) {
	// "the" and "old" recur; each occurrence must bind to its own
	// position so the span boundary lands between "sea" and "and"
	sentence := "the old man and the old sea and the old boat"
	words := timedWords(0, 0.4,
		"the", "old", "man", "and", "the", "old", "sea",
		"and", "the", "old", "boat")

	cues, rest, err := AlignSentence(sentence, words)
	if err != nil {
		t.Fatalf("AlignSentence failed: %v", err)
	}

	if len(cues) != 2 {
		t.Fatalf("expected 2 cues, got %d: %v", len(cues), cues)
	}
	if cues[0].Text != "the old man and the old sea" {
		t.Errorf("cue 0: got %q", cues[0].Text)
	}
	if cues[1].Text != "and the old boat" {
		t.Errorf("cue 1: got %q", cues[1].Text)
	}
	if len(rest) != 0 {
		t.Errorf("expected no remainder, got %d words", len(rest))
	}
}

func TestAlignSentenceMergesShortTrailingSpan(t *testing.T) {
	sentence := "alpha bravo charlie delta echo foxtrot golf"
	words := []Word{
		{Text: "alpha", Start: 0, End: 0.5},
		{Text: "bravo", Start: 0.5, End: 1.0},
		{Text: "charlie", Start: 1.0, End: 1.5},
		{Text: "delta", Start: 1.5, End: 2.0},
		{Text: "echo", Start: 2.0, End: 2.5},
		{Text: "foxtrot", Start: 2.5, End: 2.6},
		{Text: "golf", Start: 2.6, End: 2.7},
	}

	cues, _, err := AlignSentence(sentence, words)
	if err != nil {
		t.Fatalf("AlignSentence failed: %v", err)
	}

	// the trailing "foxtrot golf" span lasts only 0.2s, so it folds
	// into the previous cue instead of flashing on its own
	if len(cues) != 1 {
		t.Fatalf("expected 1 cue after merge, got %d: %v", len(cues), cues)
	}
	if cues[0].Text != "alpha bravo charlie delta echo foxtrot golf" {
		t.Errorf("merged cue: got %q", cues[0].Text)
	}
	if !almostEqual(cues[0].Start, 0) || !almostEqual(cues[0].End, 2.7) {
		t.Errorf("merged cue window: got [%v, %v]", cues[0].Start, cues[0].End)
	}
}

func TestAlignSentenceKeepsShortOnlySpan(t *testing.T) {
	words := timedWords(0, 0.1, "Hi", "there")

	cues, _, err := AlignSentence("Hi there", words)
	if err != nil {
		t.Fatalf("AlignSentence failed: %v", err)
	}

	// 0.2s is below the minimum, but with no previous span to merge
	// into the cue is kept
	if len(cues) != 1 {
		t.Fatalf("expected 1 cue, got %d", len(cues))
	}
	if cues[0].Text != "Hi there" {
		t.Errorf("got %q", cues[0].Text)
	}
}

func TestAlignSentenceUnmatchedWordStartsRemainder(t *testing.T) {
	words := timedWords(0, 0.45, "Hello", "world", "Goodbye", "now")

	cues, rest, err := AlignSentence("Hello world", words)
	if err != nil {
		t.Fatalf("AlignSentence failed: %v", err)
	}

	if len(cues) != 1 || cues[0].Text != "Hello world" {
		t.Fatalf("expected single 'Hello world' cue, got %v", cues)
	}
	if len(rest) != 2 {
		t.Fatalf("expected 2 remainder words, got %d", len(rest))
	}
	if rest[0].Text != "Goodbye" || rest[1].Text != "now" {
		t.Errorf("remainder = %v, want [Goodbye now]", rest)
	}
}

func TestAlignSentenceNoMatchesAtAll(t *testing.T) {
	words := timedWords(1.5, 0.4, "unrelated", "words")

	cues, rest, err := AlignSentence("Nothing lines up here", words)
	if err != nil {
		t.Fatalf("AlignSentence failed: %v", err)
	}

	// still one cue covering the whole sentence, degenerate window
	// held at the first word's start
	if len(cues) != 1 {
		t.Fatalf("expected 1 cue, got %d", len(cues))
	}
	if cues[0].Text != "Nothing lines up here" {
		t.Errorf("got %q", cues[0].Text)
	}
	if !almostEqual(cues[0].Start, 1.5) || !almostEqual(cues[0].End, 1.5) {
		t.Errorf("expected degenerate [1.5, 1.5] window, got [%v, %v]",
			cues[0].Start, cues[0].End)
	}
	if len(rest) != 2 {
		t.Errorf("expected full remainder, got %d words", len(rest))
	}
}

func TestAlignSentenceEmptyWords(t *testing.T) {
	_, _, err := AlignSentence("Hello world", nil)
	if !errors.Is(err, ErrNoWords) {
		t.Errorf("expected ErrNoWords, got %v", err)
	}
}
