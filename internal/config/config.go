package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Whisper WhisperConfig `yaml:"whisper"`
	OpenAI  OpenAIConfig  `yaml:"openai"`
	Gemini  GeminiConfig  `yaml:"gemini"`
	FFmpeg  FFmpegConfig  `yaml:"ffmpeg"`
	Logging LoggingConfig `yaml:"logging"`
}

type WhisperConfig struct {
	BinaryPath string `yaml:"binary_path"`
	ModelsDir  string `yaml:"models_dir"`
	Threads    int    `yaml:"threads"`
	UseGPU     *bool  `yaml:"use_gpu"`
}

type OpenAIConfig struct {
	BaseURL string `yaml:"base_url"`
	Model   string `yaml:"model"`
}

type GeminiConfig struct {
	Model string `yaml:"model"`
}

type FFmpegConfig struct {
	BinaryPath string `yaml:"binary_path"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

// Load reads a YAML config file, fills defaults, and validates it.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Default returns the configuration used when no config file is given.
func Default() *Config {
	cfg := &Config{}
	// Validate on a zero config only fills defaults, it cannot fail.
	_ = cfg.Validate()
	return cfg
}

// GPUEnabled reports whether the whisper backend should use the accelerator.
func (c *Config) GPUEnabled() bool {
	return c.Whisper.UseGPU == nil || *c.Whisper.UseGPU
}

func (c *Config) Validate() error {
	if c.Whisper.Threads < 0 {
		return fmt.Errorf("whisper.threads must not be negative")
	}

	if c.Whisper.BinaryPath == "" {
		c.Whisper.BinaryPath = "whisper-cli"
	}
	if c.Whisper.ModelsDir == "" {
		c.Whisper.ModelsDir = "models"
	}
	if c.Whisper.Threads == 0 {
		c.Whisper.Threads = 4
	}
	if c.Whisper.UseGPU == nil {
		useGPU := true
		c.Whisper.UseGPU = &useGPU
	}
	if c.OpenAI.Model == "" {
		c.OpenAI.Model = "whisper-1"
	}
	if c.Gemini.Model == "" {
		c.Gemini.Model = "gemini-2.5-flash"
	}
	if c.FFmpeg.BinaryPath == "" {
		c.FFmpeg.BinaryPath = "ffmpeg"
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}

	return nil
}
