package pipeline

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/hanifmaulana/transkrip/internal/engine"
)

const (
	summaryMarker    = "--- SUMMARY ---"
	transcriptMarker = "--- FULL TRANSCRIPT ---"

	// cleanedSuffix marks denoised intermediates; it is stripped again when
	// deriving the artifact name so cleaned and original files share one
	// artifact.
	cleanedSuffix = "_cleaned"
)

// supportedExtensions is the media allow-list, matched case-insensitively.
var supportedExtensions = map[string]bool{
	".mp3": true,
	".wav": true,
	".m4a": true,
	".mp4": true,
	".mov": true,
	".avi": true,
	".mkv": true,
}

// IsMediaFile reports whether path has a supported media extension.
func IsMediaFile(path string) bool {
	return supportedExtensions[strings.ToLower(filepath.Ext(path))]
}

// baseName returns the file stem with any trailing cleaned-audio suffix removed.
func baseName(filePath string) string {
	name := filepath.Base(filePath)
	name = strings.TrimSuffix(name, filepath.Ext(name))
	return strings.TrimSuffix(name, cleanedSuffix)
}

// formatSegments renders segments as newline-joined "[start - end] text" lines.
func formatSegments(segments []engine.Segment) string {
	lines := make([]string, 0, len(segments))
	for _, seg := range segments {
		lines = append(lines, fmt.Sprintf("[%.2fs - %.2fs] %s", seg.Start, seg.End, strings.TrimSpace(seg.Text)))
	}
	return strings.Join(lines, "\n")
}

// summarizedLayout renders the artifact with the summary block prepended to
// the previously written plain content.
func summarizedLayout(summary, plainContent string) string {
	return summaryMarker + "\n" + summary + "\n\n" + transcriptMarker + "\n" + plainContent
}

// extractTranscript returns the transcript portion of an existing artifact:
// everything after the transcript marker when present, else the whole content.
func extractTranscript(content string) string {
	parts := strings.Split(content, transcriptMarker)
	return strings.TrimSpace(parts[len(parts)-1])
}
