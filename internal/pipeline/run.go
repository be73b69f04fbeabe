package pipeline

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// ErrNoMediaFiles is returned when the input folder contains no supported files.
var ErrNoMediaFiles = errors.New("no supported media files found")

// Run discovers supported media files and processes them one at a time, in
// name order. Per-file failures are counted, never fatal.
func (p *implPipeline) Run(ctx context.Context) (*Tally, error) {
	info, err := os.Stat(p.opts.InputDir)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("input folder %q not found", p.opts.InputDir)
	}

	// Folders are prepared before discovery so that files arriving later
	// (watch mode on an initially empty folder) can still be processed.
	if err := os.MkdirAll(p.opts.OutputDir, 0755); err != nil {
		return nil, fmt.Errorf("create output folder: %w", err)
	}
	if p.opts.CleanNoise {
		if err := os.MkdirAll(filepath.Join(p.opts.InputDir, "cleaned"), 0755); err != nil {
			return nil, fmt.Errorf("create cleaned folder: %w", err)
		}
	}

	files, err := p.discoverMediaFiles()
	if err != nil {
		return nil, fmt.Errorf("list input folder: %w", err)
	}
	if len(files) == 0 {
		return nil, ErrNoMediaFiles
	}

	p.logger.Info(ctx, "Found %d media files to process", len(files))

	tally := &Tally{}
	for i, filePath := range files {
		p.logger.Info(ctx, "[%d/%d] Processing: %s", i+1, len(files), filepath.Base(filePath))

		if err := p.Process(ctx, filePath); err != nil {
			tally.Failure++
			continue
		}
		tally.Success++
	}

	p.logger.Info(ctx, "Batch complete: %d success, %d failed", tally.Success, tally.Failure)
	p.logger.Info(ctx, "Results saved in: %s", p.opts.OutputDir)

	return tally, nil
}

// discoverMediaFiles lists supported files in the input folder, sorted by name.
func (p *implPipeline) discoverMediaFiles() ([]string, error) {
	entries, err := os.ReadDir(p.opts.InputDir)
	if err != nil {
		return nil, err
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() || !IsMediaFile(e.Name()) {
			continue
		}
		files = append(files, filepath.Join(p.opts.InputDir, e.Name()))
	}

	sort.Strings(files)
	return files, nil
}
