package engine

import "context"

// Segment is a time-bounded span of recognized speech.
type Segment struct {
	Start float64 `json:"start"`
	End   float64 `json:"end"`
	Text  string  `json:"text"`
}

// Result is the transcription of one media file.
type Result struct {
	Text     string    `json:"text"`
	Segments []Segment `json:"segments"`
}

// Engine defines the interface for speech-to-text backends
type Engine interface {
	Transcribe(ctx context.Context, filePath string, language string) (*Result, error)
}

// Sizes lists the supported whisper model sizes.
var Sizes = []string{"tiny", "base", "small", "medium", "large"}

// ValidSize reports whether size names a supported whisper model.
func ValidSize(size string) bool {
	for _, s := range Sizes {
		if s == size {
			return true
		}
	}
	return false
}
