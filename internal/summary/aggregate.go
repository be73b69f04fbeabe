package summary

import (
	"context"
	"strings"

	"github.com/hanifmaulana/transkrip/internal/logger"
)

// FailedSentinel replaces the summary when generation fails. Callers write
// it into the artifact instead of failing the file.
const FailedSentinel = "[failed to generate summary]"

// Generate splits text into word-bounded chunks, summarizes each, and joins
// the per-chunk abstracts with single spaces. Any failure returns the
// sentinel; errors never propagate past this boundary.
func Generate(ctx context.Context, text string, maxChunkWords int, s Summarizer, log logger.Logger) string {
	log.Info(ctx, "Generating summary...")

	chunks := SplitWords(text, maxChunkWords)
	if len(chunks) == 0 {
		log.Warn(ctx, "Nothing to summarize")
		return FailedSentinel
	}

	summaries, err := s.Summarize(ctx, chunks)
	if err != nil {
		log.Error(ctx, "Failed to generate summary: %v", err)
		return FailedSentinel
	}

	log.Info(ctx, "Summary complete (%d chunks)", len(chunks))
	return strings.Join(summaries, " ")
}
