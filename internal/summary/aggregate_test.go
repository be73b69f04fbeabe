package summary

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/hanifmaulana/transkrip/internal/logger"
)

type stubSummarizer struct {
	calls  int
	chunks [][]string
	err    error
}

func (s *stubSummarizer) Summarize(ctx context.Context, chunks []string) ([]string, error) {
	s.calls++
	s.chunks = append(s.chunks, chunks)
	if s.err != nil {
		return nil, s.err
	}
	out := make([]string, len(chunks))
	for i := range chunks {
		out[i] = fmt.Sprintf("S%d", i+1)
	}
	return out, nil
}

func TestGenerate(t *testing.T) {
	stub := &stubSummarizer{}
	got := Generate(context.Background(), "hello world", 512, stub, logger.New("error"))

	if got != "S1" {
		t.Errorf("Generate() = %q, want %q", got, "S1")
	}
	if stub.calls != 1 {
		t.Errorf("Summarize called %d times, want 1", stub.calls)
	}
}

func TestGenerateMultipleChunksOrdered(t *testing.T) {
	stub := &stubSummarizer{}
	got := Generate(context.Background(), "a b c d e", 2, stub, logger.New("error"))

	if got != "S1 S2 S3" {
		t.Errorf("Generate() = %q, want %q", got, "S1 S2 S3")
	}
	if len(stub.chunks) != 1 || len(stub.chunks[0]) != 3 {
		t.Fatalf("unexpected chunk batches: %v", stub.chunks)
	}
	if stub.chunks[0][0] != "a b" || stub.chunks[0][2] != "e" {
		t.Errorf("chunk order not preserved: %v", stub.chunks[0])
	}
}

func TestGenerateFailsSoft(t *testing.T) {
	stub := &stubSummarizer{err: errors.New("service down")}
	got := Generate(context.Background(), "some transcript text", 512, stub, logger.New("error"))

	if got != FailedSentinel {
		t.Errorf("Generate() = %q, want sentinel %q", got, FailedSentinel)
	}
}

func TestGenerateEmptyText(t *testing.T) {
	stub := &stubSummarizer{}
	got := Generate(context.Background(), "   ", 512, stub, logger.New("error"))

	if got != FailedSentinel {
		t.Errorf("Generate() = %q, want sentinel", got)
	}
	if stub.calls != 0 {
		t.Errorf("Summarize called %d times for empty text, want 0", stub.calls)
	}
}
