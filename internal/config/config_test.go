package config

import (
	"os"
	"testing"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{
			name:    "empty config gets defaults",
			config:  Config{},
			wantErr: false,
		},
		{
			name: "explicit values kept",
			config: Config{
				Whisper: WhisperConfig{
					BinaryPath: "/opt/whisper/main",
					ModelsDir:  "/opt/whisper/models",
					Threads:    8,
				},
			},
			wantErr: false,
		},
		{
			name: "negative threads",
			config: Config{
				Whisper: WhisperConfig{Threads: -1},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateDefaults(t *testing.T) {
	cfg := Config{}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}

	if cfg.Whisper.BinaryPath != "whisper-cli" {
		t.Errorf("BinaryPath = %v, want whisper-cli", cfg.Whisper.BinaryPath)
	}
	if cfg.Whisper.Threads != 4 {
		t.Errorf("Threads = %v, want 4", cfg.Whisper.Threads)
	}
	if !cfg.GPUEnabled() {
		t.Error("GPUEnabled() = false, want true by default")
	}
	if cfg.Gemini.Model != "gemini-2.5-flash" {
		t.Errorf("Gemini.Model = %v, want gemini-2.5-flash", cfg.Gemini.Model)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("Logging.Level = %v, want info", cfg.Logging.Level)
	}
}

func TestLoad(t *testing.T) {
	// Create a temporary config file
	tmpfile, err := os.CreateTemp("", "config-*.yaml")
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(tmpfile.Name())

	content := `
whisper:
  binary_path: "./whisper"
  models_dir: "models"
  threads: 8
  use_gpu: false

openai:
  model: "whisper-1"

gemini:
  model: "gemini-2.5-flash"

logging:
  level: "debug"
`

	if _, err := tmpfile.Write([]byte(content)); err != nil {
		t.Fatal(err)
	}
	if err := tmpfile.Close(); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(tmpfile.Name())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Whisper.BinaryPath != "./whisper" {
		t.Errorf("BinaryPath = %v, want ./whisper", cfg.Whisper.BinaryPath)
	}
	if cfg.Whisper.Threads != 8 {
		t.Errorf("Threads = %v, want 8", cfg.Whisper.Threads)
	}
	if cfg.GPUEnabled() {
		t.Error("GPUEnabled() = true, want false")
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %v, want debug", cfg.Logging.Level)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load("does-not-exist.yaml"); err == nil {
		t.Error("Load() expected error for missing file")
	}
}
