package caption

import (
	"errors"
	"strings"
)

// ErrNoWords is returned when a sentence is aligned against an empty
// timed-word sequence; without a first word no cue has a legal start time.
var ErrNoWords = errors.New("caption: no timed words left for sentence")

// AlignSentence groups the leading timed words into one or more cues
// covering a single sentence, and returns the unconsumed word suffix.
//
// Words are matched against the sentence with a forward-only cursor, so a
// word whose text recurs inside the sentence always binds to its nearest
// unconsumed occurrence. A span closes once the next match would push it
// past MaxCueChars; the closing cue ends at the previously matched word.
// The first word whose text cannot be found ends consumption for this
// sentence, and the rest of the words carry over to the next one.
func AlignSentence(sentence string, words []Word) ([]Cue, []Word, error) {
	if len(words) == 0 {
		return nil, nil, ErrNoWords
	}

	var cues []Cue

	matchFrom := 0
	spanStart := 0
	spanStartTime := words[0].Start
	spanEndTime := words[0].Start
	consumed := 0

	for _, w := range words {
		idx := strings.Index(sentence[matchFrom:], w.Text)
		if idx < 0 {
			break
		}
		matchStart := matchFrom + idx
		matchEnd := matchStart + len(w.Text)

		if matchEnd-spanStart > MaxCueChars && matchFrom > spanStart {
			cues = append(cues, Cue{
				Text:  strings.TrimSpace(sentence[spanStart:matchFrom]),
				Start: spanStartTime,
				End:   spanEndTime,
			})
			spanStart = matchStart
			spanStartTime = w.Start
		}

		matchFrom = matchEnd
		spanEndTime = w.End
		consumed++
	}

	// the last span always runs to the end of the sentence text, even when
	// no word matched at all
	last := Cue{
		Text:  strings.TrimSpace(sentence[spanStart:]),
		Start: spanStartTime,
		End:   spanEndTime,
	}

	// fold a blink-length trailing span into the cue before it instead of
	// flashing it on its own
	if last.Duration() < MinCueSeconds && len(cues) > 0 {
		prev := &cues[len(cues)-1]
		prev.Text += " " + last.Text
		prev.End = last.End
	} else {
		cues = append(cues, last)
	}

	return cues, words[consumed:], nil
}
