package summary

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"github.com/hanifmaulana/transkrip/internal/logger"
)

const chunkPrompt = `Summarize the transcript excerpt below into one compact abstract of roughly 30 to 150 words. Keep the original language of the excerpt. Output only the abstract, no preamble.

Excerpt:
---
%s
---`

type implGemini struct {
	apiKeys    []string
	currentKey int
	logger     logger.Logger
	model      string
}

// NewGemini creates a Summarizer that rotates through the supplied Gemini API keys.
func NewGemini(apiKeys []string, model string, log logger.Logger) (Summarizer, error) {
	if len(apiKeys) == 0 {
		return nil, fmt.Errorf("no Gemini API keys (set GEMINI_API_KEYS in env)")
	}

	return &implGemini{
		apiKeys: apiKeys,
		logger:  log,
		model:   model,
	}, nil
}

// Summarize requests one abstract per chunk, in order.
func (s *implGemini) Summarize(ctx context.Context, chunks []string) ([]string, error) {
	summaries := make([]string, 0, len(chunks))
	for i, chunk := range chunks {
		s.logger.Debug(ctx, "Summarizing chunk %d/%d", i+1, len(chunks))
		text, err := s.callGemini(ctx, chunk)
		if err != nil {
			return nil, fmt.Errorf("chunk %d/%d: %w", i+1, len(chunks), err)
		}
		summaries = append(summaries, strings.TrimSpace(text))
	}
	return summaries, nil
}

// callGemini sends one chunk to Gemini and returns the abstract.
// Rotates API keys on 429 / quota errors. Decoding is greedy (temperature 0)
// so re-runs over the same transcript produce the same summary.
func (s *implGemini) callGemini(ctx context.Context, chunk string) (string, error) {
	prompt := fmt.Sprintf(chunkPrompt, chunk)

	genCfg := &genai.GenerateContentConfig{
		Temperature:     genai.Ptr[float32](0),
		MaxOutputTokens: 150,
	}

	attempts := len(s.apiKeys)
	var lastErr error

	for range attempts {
		key := s.apiKeys[s.currentKey]

		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  key,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			lastErr = fmt.Errorf("create client: %w", err)
			s.rotateKey()
			continue
		}

		result, err := client.Models.GenerateContent(ctx, s.model, genai.Text(prompt), genCfg)
		if err != nil {
			errMsg := err.Error()
			if strings.Contains(errMsg, "429") || strings.Contains(errMsg, "quota") || strings.Contains(errMsg, "RESOURCE_EXHAUSTED") {
				s.logger.Warn(ctx, "Key %d rate limited, rotating...", s.currentKey+1)
				s.rotateKey()
				lastErr = err
				continue
			}
			return "", fmt.Errorf("generate content: %w", err)
		}

		if result != nil && len(result.Candidates) > 0 && result.Candidates[0].Content != nil {
			var text string
			for _, part := range result.Candidates[0].Content.Parts {
				if part.Text != "" {
					text += part.Text
				}
			}
			return text, nil
		}

		return "", fmt.Errorf("empty response from Gemini")
	}

	return "", fmt.Errorf("all API keys exhausted: %w", lastErr)
}

func (s *implGemini) rotateKey() {
	s.currentKey = (s.currentKey + 1) % len(s.apiKeys)
}
