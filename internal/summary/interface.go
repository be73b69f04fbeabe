package summary

import "context"

// Summarizer produces one abstract per text chunk, preserving order.
type Summarizer interface {
	Summarize(ctx context.Context, chunks []string) ([]string, error)
}
