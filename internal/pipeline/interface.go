package pipeline

import "context"

// Pipeline processes media files into transcript artifacts.
type Pipeline interface {
	// Run processes every supported file in the input folder, sequentially,
	// and returns the final tally.
	Run(ctx context.Context) (*Tally, error)
	// Process handles a single media file. The returned error means the
	// transcription itself failed; denoise and summary failures are
	// recovered internally.
	Process(ctx context.Context, filePath string) error
}

// Tally counts per-file outcomes for one batch.
type Tally struct {
	Success int
	Failure int
}
