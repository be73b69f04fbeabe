package pipeline

import (
	"github.com/hanifmaulana/transkrip/internal/denoise"
	"github.com/hanifmaulana/transkrip/internal/engine"
	"github.com/hanifmaulana/transkrip/internal/logger"
	"github.com/hanifmaulana/transkrip/internal/summary"
)

// Options carries the per-run settings decided at startup.
type Options struct {
	InputDir   string
	OutputDir  string
	Language   string
	CleanNoise bool
	Summarize  bool
	Docx       bool
	ChunkWords int
}

type implPipeline struct {
	opts       Options
	engine     engine.Engine
	denoiser   denoise.Denoiser
	summarizer summary.Summarizer
	logger     logger.Logger
}

// New creates a Pipeline. The denoiser may be nil when noise cleaning is off,
// and the summarizer may be nil when summarization is off.
func New(opts Options, eng engine.Engine, den denoise.Denoiser, sum summary.Summarizer, log logger.Logger) Pipeline {
	if opts.ChunkWords <= 0 {
		opts.ChunkWords = summary.DefaultChunkWords
	}

	return &implPipeline{
		opts:       opts,
		engine:     eng,
		denoiser:   den,
		summarizer: sum,
		logger:     log,
	}
}
