package observability

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/resume-tailor/internal/extract"
)

func TestPrintDocument(t *testing.T) {
	t.Run("Tallies sections", func(t *testing.T) {
		doc := extract.NewDocument()
		doc.Summary = []string{"line one", "line two"}
		doc.Skills = []string{"Go", "Kafka"}
		doc.Experience["backendengineer"] = map[string][]string{
			"checkoutservice": {"a", "b"},
		}
		doc.Projects["sideproject"] = []string{"c"}

		var buf bytes.Buffer
		NewPrinter(&buf).PrintDocument(doc)
		out := buf.String()

		assert.Contains(t, out, "EXTRACTED DOCUMENT")
		assert.Contains(t, out, "Summary lines: 2")
		assert.Contains(t, out, "backendengineer: 1 projects, 2 bullets")
		assert.Contains(t, out, "sideproject: 1 bullets")
	})

	t.Run("Empty document warns", func(t *testing.T) {
		var buf bytes.Buffer
		NewPrinter(&buf).PrintDocument(extract.NewDocument())
		assert.Contains(t, buf.String(), "Nothing extracted")
	})

	t.Run("Nil document is a no-op", func(t *testing.T) {
		var buf bytes.Buffer
		NewPrinter(&buf).PrintDocument(nil)
		assert.Empty(t, buf.String())
	})
}

func TestPrintJDPreview(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintJDPreview("Build backend services in Go.")
	out := buf.String()
	assert.Contains(t, out, "JOB DESCRIPTION")
	assert.Contains(t, out, "Build backend services in Go.")
}

func TestSegmentObserver(t *testing.T) {
	var buf bytes.Buffer
	obs := NewPrinter(&buf).SegmentObserver()

	text := strings.Join([]string{
		"EXPERIENCE:",
		"ROLE_ID=backendengineer",
		"PROJECT: Checkout Service",
		"- Cut latency by 40%.",
		"orphan prose line",
	}, "\n")
	extract.SegmentObserved(text, obs)

	out := buf.String()
	assert.Contains(t, out, "header: experience")
	assert.Contains(t, out, "role: backendengineer")
	assert.Contains(t, out, "project: backendengineer/checkoutservice")
	assert.Contains(t, out, "bullet added to backendengineer/checkoutservice")
	assert.Contains(t, out, "dropped line 5: unrecognized experience line")
}
