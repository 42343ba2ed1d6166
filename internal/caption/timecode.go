package caption

import (
	"fmt"
	"math"
)

// Timecode renders a non-negative seconds offset as HH:MM:SS.mmm.
// The offset is a caption-relative duration, so the conversion is pure
// integer math on the floor of the offset; no calendar, locale, or time
// zone is involved.
func Timecode(seconds float64) string {
	if math.IsNaN(seconds) || seconds < 0 {
		seconds = 0
	}

	whole := int(math.Floor(seconds))
	millis := int(math.Round((seconds - math.Floor(seconds)) * 1000))
	if millis >= 1000 {
		whole++
		millis -= 1000
	}

	hours := whole / 3600
	minutes := (whole % 3600) / 60
	secs := whole % 60

	return fmt.Sprintf("%02d:%02d:%02d.%03d", hours, minutes, secs, millis)
}

// srtTimecode is Timecode with the SRT millisecond separator.
func srtTimecode(seconds float64) string {
	tc := Timecode(seconds)
	return tc[:len(tc)-4] + "," + tc[len(tc)-3:]
}
