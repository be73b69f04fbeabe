package pipeline

import (
	"context"
	"os"
	"path/filepath"
)

// transcribeResult reports the outcome of one transcription attempt.
type transcribeResult struct {
	Success    bool
	OutputPath string
	Text       string
	// Plain holds the transcript portion of the artifact. The summary
	// rewrite is built from it directly, so a summarized artifact never
	// accumulates stacked summary blocks and no read-back is needed.
	Plain string
}

// transcribeFile transcribes one file into <output>/<base>.txt. When the
// artifact already exists the file counts as processed: its transcript
// portion is reused and the engine is never invoked, which makes re-runs
// over a partially completed folder cheap.
func (p *implPipeline) transcribeFile(ctx context.Context, filePath string) transcribeResult {
	outputPath := filepath.Join(p.opts.OutputDir, baseName(filePath)+".txt")

	if content, err := os.ReadFile(outputPath); err == nil {
		p.logger.Info(ctx, "Artifact exists, skipping transcription: %s", outputPath)
		transcript := extractTranscript(string(content))
		return transcribeResult{
			Success:    true,
			OutputPath: outputPath,
			Text:       transcript,
			Plain:      transcript,
		}
	}

	result, err := p.engine.Transcribe(ctx, filePath, p.opts.Language)
	if err != nil {
		p.logger.Error(ctx, "Failed to transcribe %s: %v", filepath.Base(filePath), err)
		return transcribeResult{OutputPath: outputPath}
	}

	// The artifact is written in one shot after formatting, so a failure
	// never leaves a partial file behind.
	formatted := formatSegments(result.Segments)
	if err := os.WriteFile(outputPath, []byte(formatted), 0644); err != nil {
		p.logger.Error(ctx, "Failed to write %s: %v", outputPath, err)
		return transcribeResult{OutputPath: outputPath, Text: result.Text}
	}

	return transcribeResult{
		Success:    true,
		OutputPath: outputPath,
		Text:       result.Text,
		Plain:      formatted,
	}
}
