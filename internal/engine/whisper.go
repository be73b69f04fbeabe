package engine

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/hanifmaulana/transkrip/internal/logger"
	"github.com/hanifmaulana/transkrip/pkg/executor"
)

type implWhisper struct {
	binaryPath string
	modelPath  string
	threads    int
	useGPU     bool
	executor   executor.Executor
	logger     logger.Logger
}

// NewWhisper creates an Engine backed by a local whisper.cpp binary.
// The model size is resolved to <modelsDir>/ggml-<size>.bin.
func NewWhisper(binaryPath, modelsDir, size string, threads int, useGPU bool, exec executor.Executor, log logger.Logger) (Engine, error) {
	if !ValidSize(size) {
		return nil, fmt.Errorf("unsupported model size %q (choose one of %s)", size, strings.Join(Sizes, ", "))
	}

	return &implWhisper{
		binaryPath: binaryPath,
		modelPath:  filepath.Join(modelsDir, fmt.Sprintf("ggml-%s.bin", size)),
		threads:    threads,
		useGPU:     useGPU,
		executor:   exec,
		logger:     log,
	}, nil
}

// whisperOutput mirrors the JSON written by whisper.cpp with -oj.
// Offsets are in milliseconds.
type whisperOutput struct {
	Transcription []struct {
		Offsets struct {
			From int64 `json:"from"`
			To   int64 `json:"to"`
		} `json:"offsets"`
		Text string `json:"text"`
	} `json:"transcription"`
}

// Transcribe runs whisper.cpp on one file and parses its JSON output.
func (w *implWhisper) Transcribe(ctx context.Context, filePath string, language string) (*Result, error) {
	tmpDir, err := os.MkdirTemp("", "transkrip-*")
	if err != nil {
		return nil, fmt.Errorf("create temp dir: %w", err)
	}
	defer os.RemoveAll(tmpDir)

	outputPrefix := filepath.Join(tmpDir, "transcript")

	// Whisper arguments
	// -m: Model path
	// -f: Input audio file
	// -l: Force language (prevents hallucination)
	// -t: Number of threads
	// -oj: Output JSON with per-segment offsets
	// --output-file: Output file prefix (whisper appends .json)
	args := []string{
		"-m", w.modelPath,
		"-f", filePath,
		"-l", language,
		"-t", strconv.Itoa(w.threads),
		"-oj",
		"--output-file", outputPrefix,
	}

	if !w.useGPU {
		args = append(args, "-ng")
	}

	w.logger.Debug(ctx, "Running whisper: %s %s", w.binaryPath, strings.Join(args, " "))

	if _, err := w.executor.Execute(ctx, w.binaryPath, args...); err != nil {
		return nil, fmt.Errorf("whisper transcribe: %w", err)
	}

	data, err := os.ReadFile(outputPrefix + ".json")
	if err != nil {
		return nil, fmt.Errorf("read whisper output: %w", err)
	}

	return parseWhisperJSON(data)
}

func parseWhisperJSON(data []byte) (*Result, error) {
	var out whisperOutput
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("parse whisper output: %w", err)
	}

	result := &Result{}
	var full strings.Builder
	for _, seg := range out.Transcription {
		result.Segments = append(result.Segments, Segment{
			Start: float64(seg.Offsets.From) / 1000.0,
			End:   float64(seg.Offsets.To) / 1000.0,
			Text:  seg.Text,
		})
		full.WriteString(seg.Text)
	}

	result.Text = strings.TrimSpace(full.String())
	return result, nil
}
