package engine

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
)

const defaultOpenAIBase = "https://api.openai.com/v1"

type implOpenAI struct {
	apiKey     string
	baseURL    string
	model      string
	httpClient *http.Client
}

// NewOpenAI creates an Engine backed by the OpenAI transcription API.
// The API key is read from the OPENAI_API_KEY environment variable.
func NewOpenAI(baseURL, model string) (Engine, error) {
	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		return nil, errors.New("missing API key (set OPENAI_API_KEY in env)")
	}

	if baseURL == "" {
		baseURL = defaultOpenAIBase
	}

	return &implOpenAI{
		apiKey:     apiKey,
		baseURL:    baseURL,
		model:      model,
		httpClient: http.DefaultClient,
	}, nil
}

// Transcribe uploads the file and decodes the verbose_json response, which
// carries the full text plus per-segment timestamps.
func (c *implOpenAI) Transcribe(ctx context.Context, filePath string, language string) (*Result, error) {
	h, err := os.Open(filePath)
	if err != nil {
		return nil, err
	}
	defer h.Close()

	b := &bytes.Buffer{}
	mp := multipart.NewWriter(b)

	f, err := mp.CreateFormField("model")
	if err != nil {
		return nil, err
	}
	f.Write([]byte(c.model))

	if f, err = mp.CreateFormField("response_format"); err != nil {
		return nil, err
	}
	f.Write([]byte("verbose_json"))

	if language != "" {
		if f, err = mp.CreateFormField("language"); err != nil {
			return nil, err
		}
		f.Write([]byte(language))
	}

	fp, err := mp.CreateFormFile("file", filepath.Base(filePath))
	if err != nil {
		return nil, err
	}
	if _, err = io.Copy(fp, h); err != nil {
		return nil, err
	}
	mp.Close()

	url := strings.TrimRight(c.baseURL, "/") + "/audio/transcriptions"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, b)
	if err != nil {
		return nil, err
	}

	req.Header.Set("Content-Type", mp.FormDataContentType())
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("unexpected response: %s: %s", resp.Status, strings.TrimSpace(string(body)))
	}

	var r Result
	if err = json.NewDecoder(resp.Body).Decode(&r); err != nil {
		return nil, err
	}
	return &r, nil
}
