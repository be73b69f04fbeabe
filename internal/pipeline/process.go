package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hanifmaulana/transkrip/internal/summary"
)

// Process runs the per-file pipeline: optional denoise, transcription, and
// optional summary rewrite of the artifact.
func (p *implPipeline) Process(ctx context.Context, filePath string) error {
	fileToTranscribe := filePath

	if p.opts.CleanNoise {
		if cleaned, err := p.cleanNoise(ctx, filePath); err != nil {
			// Denoise failure is never fatal, continue with the original file.
			p.logger.Warn(ctx, "Failed to clean noise for %s: %v. Continuing with original file.", filepath.Base(filePath), err)
		} else {
			fileToTranscribe = cleaned
		}
	}

	res := p.transcribeFile(ctx, fileToTranscribe)
	if !res.Success {
		return fmt.Errorf("transcribe %s", filepath.Base(filePath))
	}

	summaryText := ""
	if p.opts.Summarize && res.Text != "" {
		text, err := p.summarizeArtifact(ctx, res)
		if err != nil {
			p.logger.Error(ctx, "Failed to rewrite artifact for %s: %v", filepath.Base(filePath), err)
		}
		summaryText = text
	}

	if p.opts.Docx {
		if err := p.writeDocx(ctx, res, summaryText); err != nil {
			p.logger.Warn(ctx, "Failed to write docx for %s: %v", filepath.Base(filePath), err)
		}
	}

	return nil
}

// cleanNoise produces (or reuses) <input>/cleaned/<stem>_cleaned.wav and
// returns its path.
func (p *implPipeline) cleanNoise(ctx context.Context, filePath string) (string, error) {
	stem := strings.TrimSuffix(filepath.Base(filePath), filepath.Ext(filePath))
	cleanedPath := filepath.Join(p.opts.InputDir, "cleaned", stem+cleanedSuffix+".wav")

	if _, err := os.Stat(cleanedPath); err == nil {
		p.logger.Debug(ctx, "Reusing cleaned audio: %s", cleanedPath)
		return cleanedPath, nil
	}

	if err := p.denoiser.Clean(ctx, filePath, cleanedPath); err != nil {
		return "", err
	}

	return cleanedPath, nil
}

// summarizeArtifact summarizes the raw transcript text (not the timestamped
// layout) and rewrites the artifact with the summary block prepended to the
// plain transcript content. A failed summary still rewrites the artifact,
// with the sentinel in place of the summary.
func (p *implPipeline) summarizeArtifact(ctx context.Context, res transcribeResult) (string, error) {
	summaryText := summary.Generate(ctx, res.Text, p.opts.ChunkWords, p.summarizer, p.logger)

	rewritten := summarizedLayout(summaryText, res.Plain)
	if err := os.WriteFile(res.OutputPath, []byte(rewritten), 0644); err != nil {
		return summaryText, fmt.Errorf("write artifact: %w", err)
	}

	return summaryText, nil
}
