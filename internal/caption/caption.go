package caption

// Word is one transcribed spoken token with its time offsets in seconds.
// The JSON tags match the word-timing transcript produced by the
// transcription provider.
type Word struct {
	Text  string  `json:"word"`
	Start float64 `json:"start"`
	End   float64 `json:"end"`
}

// Cue is one timed caption entry: the displayed text and its display window.
type Cue struct {
	Text  string  `json:"text"`
	Start float64 `json:"start"`
	End   float64 `json:"end"`
}

const (
	// MaxCueChars caps the displayed length of a single cue.
	MaxCueChars = 30

	// MinCueSeconds is the shortest display duration a trailing cue may
	// have before its text is folded into the cue before it.
	MinCueSeconds = 0.5
)

// Duration returns the display window length in seconds.
func (c Cue) Duration() float64 {
	return c.End - c.Start
}
