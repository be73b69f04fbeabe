package pipeline

import (
	"context"
	"os"
	"regexp"
	"strings"

	"github.com/gomutex/godocx"
	"github.com/gomutex/godocx/docx"
)

const (
	fontName = "Times New Roman"
	fontSize = 13
)

// reTimestamp matches the "[0.00s - 1.50s] " prefix of transcript lines.
var reTimestamp = regexp.MustCompile(`^\[\d+\.\d{2}s - \d+\.\d{2}s\]\s*`)

// writeDocx exports the transcript (and summary when present) as a styled
// docx next to the text artifact, with timestamps stripped for readability.
func (p *implPipeline) writeDocx(ctx context.Context, res transcribeResult, summaryText string) error {
	docxPath := strings.TrimSuffix(res.OutputPath, ".txt") + ".docx"

	doc, err := godocx.NewDocument()
	if err != nil {
		return err
	}

	title := baseName(res.OutputPath)
	addStyledRun(doc.AddParagraph(""), title, true, 16)
	doc.AddParagraph("")

	if summaryText != "" {
		addStyledRun(doc.AddParagraph(""), "Summary", true, 14)
		addStyledRun(doc.AddParagraph(""), summaryText, false, fontSize)
		doc.AddParagraph("")
	}

	addStyledRun(doc.AddParagraph(""), "Transcript", true, 14)

	content, err := readTranscriptLines(res.OutputPath)
	if err != nil {
		return err
	}
	for _, line := range content {
		addStyledRun(doc.AddParagraph(""), line, false, fontSize)
	}

	if err := doc.SaveTo(docxPath); err != nil {
		return err
	}

	p.logger.Info(ctx, "Docx written: %s", docxPath)
	return nil
}

// readTranscriptLines loads the artifact's transcript portion and strips
// the timestamp prefix from each line.
func readTranscriptLines(artifactPath string) ([]string, error) {
	content, err := os.ReadFile(artifactPath)
	if err != nil {
		return nil, err
	}

	var lines []string
	for _, line := range strings.Split(extractTranscript(string(content)), "\n") {
		text := strings.TrimSpace(reTimestamp.ReplaceAllString(line, ""))
		if text == "" {
			continue
		}
		lines = append(lines, text)
	}
	return lines, nil
}

func addStyledRun(p *docx.Paragraph, text string, bold bool, size uint64) {
	run := p.AddText(text).Font(fontName).Size(size).Color("000000")
	if bold {
		run.Bold(true)
	}
}
