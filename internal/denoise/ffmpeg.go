package denoise

import (
	"context"
	"fmt"

	"github.com/hanifmaulana/transkrip/internal/logger"
	"github.com/hanifmaulana/transkrip/pkg/executor"
)

type implDenoiser struct {
	binaryPath string
	executor   executor.Executor
	logger     logger.Logger
}

// New creates a Denoiser backed by ffmpeg's afftdn filter.
func New(binaryPath string, exec executor.Executor, log logger.Logger) Denoiser {
	return &implDenoiser{
		binaryPath: binaryPath,
		executor:   exec,
		logger:     log,
	}
}

// Clean denoises srcPath into a mono 16kHz WAV at cleanedPath.
func (d *implDenoiser) Clean(ctx context.Context, srcPath, cleanedPath string) error {
	d.logger.Info(ctx, "Cleaning noise: %s", srcPath)

	// FFmpeg arguments for noise reduction
	// -i: Input file (audio or video, ffmpeg extracts the audio stream)
	// -af afftdn: FFT-based denoise filter
	// -ac 1: Mono (multi-channel input is downmixed)
	// -ar 16000: 16kHz sample rate (optimal for Whisper)
	// -c:a pcm_s16le: PCM 16-bit WAV
	// -y: Overwrite output file if exists
	args := []string{
		"-i", srcPath,
		"-af", "afftdn",
		"-ac", "1", // Mono
		"-ar", "16000", // 16kHz sample rate
		"-c:a", "pcm_s16le",
		"-y",
		cleanedPath,
	}

	if _, err := d.executor.Execute(ctx, d.binaryPath, args...); err != nil {
		return fmt.Errorf("ffmpeg denoise: %w", err)
	}

	d.logger.Info(ctx, "Cleaned audio written: %s", cleanedPath)
	return nil
}
