package caption

import (
	"iter"
	"regexp"
	"strings"
)

// sentence boundary: a run of terminal punctuation plus surrounding whitespace
var sentenceDelim = regexp.MustCompile(`\s*[.!?]+\s*`)

// Sentences splits narration text into an ordered sequence of sentences.
// The punctuation delimiters are consumed and empty results are dropped.
// The split is a punctuation heuristic: a period inside an abbreviation or
// a decimal number also ends a sentence.
func Sentences(text string) iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, part := range sentenceDelim.Split(text, -1) {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			if !yield(part) {
				return
			}
		}
	}
}
