// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/jonathan/resume-tailor/internal/extract"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// previewLen is how much of a long value to show before truncating
	previewLen = 800
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintJDPreview shows the opening of the job description text being used.
func (p *Printer) PrintJDPreview(jdText string) {
	preview := strings.TrimSpace(jdText)
	if len(preview) > previewLen {
		preview = preview[:previewLen] + "..."
	}
	p.printBox("JOB DESCRIPTION", preview)
}

// PrintDocument outputs a tally of what the extractor recovered from the
// generated text, so thin output is visible before the PDF is opened.
func (p *Printer) PrintDocument(doc *extract.Document) {
	if doc == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Summary lines: %d\n", len(doc.Summary)))
	sb.WriteString(fmt.Sprintf("Skills:        %d\n", len(doc.Skills)))
	sb.WriteString("\n")

	if len(doc.Experience) > 0 {
		sb.WriteString("Experience:\n")
		for _, roleKey := range sortedKeys(doc.Experience) {
			projects := doc.Experience[roleKey]
			total := 0
			for _, bullets := range projects {
				total += len(bullets)
			}
			sb.WriteString(fmt.Sprintf("  %s: %d projects, %d bullets\n", roleKey, len(projects), total))
		}
	}

	if len(doc.Projects) > 0 {
		sb.WriteString("Projects:\n")
		for _, projKey := range sortedKeys(doc.Projects) {
			sb.WriteString(fmt.Sprintf("  %s: %d bullets\n", projKey, len(doc.Projects[projKey])))
		}
	}

	if doc.Empty() {
		sb.WriteString("Nothing extracted. Check the generated text.\n")
	}

	p.printBox("EXTRACTED DOCUMENT", strings.TrimSuffix(sb.String(), "\n"))
}

// SegmentObserver returns an extract.Observer that narrates segmentation
// line by line. Dropped lines are the interesting ones when debugging a
// thin resume.
func (p *Printer) SegmentObserver() extract.Observer {
	return func(e extract.Event) {
		switch e.Kind {
		case extract.EventHeader:
			fmt.Fprintf(p.out, "[PARSE] header: %s\n", e.Detail)
		case extract.EventRole:
			fmt.Fprintf(p.out, "[PARSE] role: %s\n", e.Detail)
		case extract.EventProject:
			fmt.Fprintf(p.out, "[PARSE] project: %s\n", e.Detail)
		case extract.EventTitle:
			fmt.Fprintf(p.out, "[PARSE] title: %s\n", e.Detail)
		case extract.EventBullet:
			fmt.Fprintf(p.out, "[PARSE] bullet added to %s\n", e.Detail)
		case extract.EventDropped:
			fmt.Fprintf(p.out, "[PARSE] dropped line %d: %s\n", e.Line+1, e.Detail)
		}
	}
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
