package denoise

import "context"

// Denoiser defines the interface for noise reduction on audio files
type Denoiser interface {
	Clean(ctx context.Context, srcPath, cleanedPath string) error
}
