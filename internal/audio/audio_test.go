package audio

import "testing"

func TestIsMediaFile(t *testing.T) {
	tests := []struct {
		path    string
		isVideo bool
		isAudio bool
	}{
		{"clip.mp4", true, false},
		{"clip.MKV", true, false},
		{"clip.webm", true, false},
		{"narration.mp3", false, true},
		{"narration.WAV", false, true},
		{"narration.opus", false, true},
		{"script.txt", false, false},
		{"transcript.json", false, false},
		{"noextension", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := IsVideoFile(tt.path); got != tt.isVideo {
				t.Errorf("IsVideoFile(%q) = %v, want %v", tt.path, got, tt.isVideo)
			}
			if got := IsAudioFile(tt.path); got != tt.isAudio {
				t.Errorf("IsAudioFile(%q) = %v, want %v", tt.path, got, tt.isAudio)
			}
			if got := IsMediaFile(tt.path); got != (tt.isVideo || tt.isAudio) {
				t.Errorf("IsMediaFile(%q) = %v", tt.path, got)
			}
		})
	}
}
