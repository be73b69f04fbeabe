package summary

import "strings"

// DefaultChunkWords bounds the number of words per chunk. T5-class models
// cap out around 512 input tokens.
const DefaultChunkWords = 512

// SplitWords splits text on whitespace into consecutive groups of at most
// maxWords words, each rejoined with single spaces. Empty text yields nil.
func SplitWords(text string, maxWords int) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}

	var chunks []string
	for i := 0; i < len(words); i += maxWords {
		end := i + maxWords
		if end > len(words) {
			end = len(words)
		}
		chunks = append(chunks, strings.Join(words[i:end], " "))
	}

	return chunks
}
