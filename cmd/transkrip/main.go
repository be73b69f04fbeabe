package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/hanifmaulana/transkrip/internal/config"
	"github.com/hanifmaulana/transkrip/internal/denoise"
	"github.com/hanifmaulana/transkrip/internal/engine"
	"github.com/hanifmaulana/transkrip/internal/logger"
	"github.com/hanifmaulana/transkrip/internal/pipeline"
	"github.com/hanifmaulana/transkrip/internal/summary"
	"github.com/hanifmaulana/transkrip/internal/watcher"
	"github.com/hanifmaulana/transkrip/pkg/executor"
)

func main() {
	var (
		outputFolder = flag.String("output_folder", "transkrip", "Folder for the .txt transcript artifacts")
		modelSize    = flag.String("model", "medium", "Whisper model size (tiny, base, small, medium, large)")
		language     = flag.String("language", "id", "Language code of the audio")
		cleanNoise   = flag.Bool("clean_noise", false, "Denoise audio before transcription")
		summarize    = flag.Bool("summarize", false, "Generate a summary after transcription")
		configPath   = flag.String("config", "", "Optional YAML config file")
		backend      = flag.String("backend", "local", "Transcription backend (local, openai)")
		docx         = flag.Bool("docx", false, "Also export each transcript as .docx")
		watch        = flag.Bool("watch", false, "Keep running and process files added to the input folder")
	)
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [flags] <media_folder>\n\nBatch transcription and summarization of audio/video files.\n\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}
	inputDir := flag.Arg(0)

	ctx := context.Background()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Logging.Level)

	device := "CPU"
	if *backend == "local" && cfg.GPUEnabled() {
		device = "GPU"
	}
	log.Info(ctx, "Using device: %s", device)

	exec := executor.New()

	eng, err := newEngine(cfg, *backend, *modelSize, exec, log)
	if err != nil {
		log.Error(ctx, "Failed to initialize transcription backend: %v", err)
		os.Exit(1)
	}

	var den denoise.Denoiser
	if *cleanNoise {
		den = denoise.New(cfg.FFmpeg.BinaryPath, exec, log)
	}

	// The summarizer is only set up when requested, so a plain
	// transcription run needs no Gemini keys.
	var sum summary.Summarizer
	if *summarize {
		keys := splitKeys(os.Getenv("GEMINI_API_KEYS"))
		sum, err = summary.NewGemini(keys, cfg.Gemini.Model, log)
		if err != nil {
			log.Error(ctx, "Failed to initialize summarizer: %v", err)
			os.Exit(1)
		}
	}

	p := pipeline.New(pipeline.Options{
		InputDir:   inputDir,
		OutputDir:  *outputFolder,
		Language:   *language,
		CleanNoise: *cleanNoise,
		Summarize:  *summarize,
		Docx:       *docx,
	}, eng, den, sum, log)

	if _, err := p.Run(ctx); err != nil {
		if errors.Is(err, pipeline.ErrNoMediaFiles) {
			log.Warn(ctx, "No supported media files found in %q", inputDir)
			if !*watch {
				return
			}
		} else {
			log.Error(ctx, "%v", err)
			return
		}
	}

	if *watch {
		runWatch(ctx, inputDir, p, log)
	}
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Default(), nil
	}
	return config.Load(path)
}

func newEngine(cfg *config.Config, backend, modelSize string, exec executor.Executor, log logger.Logger) (engine.Engine, error) {
	switch backend {
	case "local":
		return engine.NewWhisper(cfg.Whisper.BinaryPath, cfg.Whisper.ModelsDir, modelSize, cfg.Whisper.Threads, cfg.GPUEnabled(), exec, log)
	case "openai":
		return engine.NewOpenAI(cfg.OpenAI.BaseURL, cfg.OpenAI.Model)
	default:
		return nil, fmt.Errorf("unknown backend %q (choose local or openai)", backend)
	}
}

func splitKeys(raw string) []string {
	var keys []string
	for _, k := range strings.Split(raw, ",") {
		if k = strings.TrimSpace(k); k != "" {
			keys = append(keys, k)
		}
	}
	return keys
}

// runWatch keeps processing files that appear in the input folder until the
// process is interrupted. The artifact-existence check makes duplicate
// events for already-processed files harmless.
func runWatch(ctx context.Context, inputDir string, p pipeline.Pipeline, log logger.Logger) {
	w, err := watcher.New(inputDir, pipeline.IsMediaFile, p.Process, log)
	if err != nil {
		log.Error(ctx, "Failed to create watcher: %v", err)
		os.Exit(1)
	}
	defer w.Stop()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	errChan := make(chan error, 1)
	go func() {
		if err := w.Start(ctx); err != nil && err != context.Canceled {
			errChan <- err
		}
	}()

	log.Info(ctx, "Watch mode on. Press Ctrl+C to stop.")

	select {
	case <-sigChan:
		log.Info(ctx, "Shutdown signal received")
	case err := <-errChan:
		log.Error(ctx, "Watcher error: %v", err)
	}

	cancel()
}
