package caption

import (
	"fmt"
)

// Assemble aligns the full timed-word sequence against the narration text
// and returns the ordered cue list plus the words left over after the final
// sentence.
//
// Each sentence consumes words from the front of the sequence; whatever a
// sentence leaves unconsumed feeds the next sentence. Leftover words produce
// no cue; they are returned so callers can report them.
func Assemble(text string, words []Word) ([]Cue, []Word, error) {
	var cues []Cue

	remaining := words
	sentenceIdx := 0
	for sentence := range Sentences(text) {
		spans, rest, err := AlignSentence(sentence, remaining)
		if err != nil {
			return nil, nil, fmt.Errorf(
				"failed to align sentence %d: %w",
				sentenceIdx+1,
				err,
			)
		}
		cues = append(cues, spans...)
		remaining = rest
		sentenceIdx++
	}

	return cues, remaining, nil
}
