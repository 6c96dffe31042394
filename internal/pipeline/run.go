// Package pipeline provides the high-level orchestration for the resume
// generation process: job description in, rendered PDF out.
package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/jonathan/resume-tailor/internal/extract"
	"github.com/jonathan/resume-tailor/internal/fetch"
	"github.com/jonathan/resume-tailor/internal/llm"
	"github.com/jonathan/resume-tailor/internal/observability"
	"github.com/jonathan/resume-tailor/internal/profile"
	"github.com/jonathan/resume-tailor/internal/prompts"
	"github.com/jonathan/resume-tailor/internal/render"
)

// ProgressEvent represents a progress update during pipeline execution
type ProgressEvent struct {
	Step    string `json:"step"`
	Message string `json:"message"`
	RunID   string `json:"run_id,omitempty"`
}

// ProgressCallback is called when pipeline progress occurs
type ProgressCallback func(event ProgressEvent)

// RunOptions holds configuration for running the pipeline. Exactly one of
// JDText and JDURL must be set. Profile takes precedence over ProfilePath
// when both are set.
type RunOptions struct {
	JDText      string
	JDURL       string
	ProfilePath string
	Profile     *profile.Profile
	APIKey      string
	Model       string
	Verbose     bool
	DebugDir    string
	Client      llm.Client // optional; built from APIKey when nil
	OnProgress  ProgressCallback
}

// emitProgress calls the progress callback if configured
func emitProgress(opts *RunOptions, runID, step, message string) {
	if opts.OnProgress != nil {
		opts.OnProgress(ProgressEvent{
			Step:    step,
			Message: message,
			RunID:   runID,
		})
	}
}

// Run executes the full generation pipeline and returns the PDF bytes.
func Run(ctx context.Context, opts RunOptions) ([]byte, error) {
	runID := uuid.New().String()
	printer := observability.NewPrinter(os.Stdout)

	p := opts.Profile
	if p == nil {
		var err error
		p, err = profile.Load(opts.ProfilePath)
		if err != nil {
			return nil, err
		}
	}

	jdText := opts.JDText
	if jdText == "" {
		if opts.JDURL == "" {
			return nil, fmt.Errorf("either a job description or a job URL is required")
		}
		emitProgress(&opts, runID, "scrape", "fetching job description")
		var err error
		jdText, err = fetch.ScrapeJD(ctx, opts.JDURL, nil, opts.Verbose)
		if err != nil {
			return nil, err
		}
		saveDebug(opts.DebugDir, "scraped_jd.txt", []byte(jdText))
	}
	if opts.Verbose {
		printer.PrintJDPreview(jdText)
	}

	emitProgress(&opts, runID, "prompt", "building generation prompt")
	prompt, err := prompts.BuildResumePrompt(p, jdText)
	if err != nil {
		return nil, err
	}
	saveDebug(opts.DebugDir, "prompt.txt", []byte(prompt))

	client := opts.Client
	if client == nil {
		config := llm.DefaultConfig()
		if opts.Model != "" {
			config = config.WithModel(opts.Model)
		}
		client, err = llm.NewClient(ctx, config, opts.APIKey)
		if err != nil {
			return nil, err
		}
		defer func() { _ = client.Close() }()
	}

	emitProgress(&opts, runID, "generate", "generating tailored content")
	output, err := client.Complete(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("content generation failed: %w", err)
	}
	saveDebug(opts.DebugDir, "llm_output.txt", []byte(output))

	emitProgress(&opts, runID, "extract", "extracting structured content")
	var doc *extract.Document
	if opts.Verbose {
		doc = extract.SegmentObserved(output, printer.SegmentObserver())
		printer.PrintDocument(doc)
	} else {
		doc = extract.Segment(output)
	}
	if docJSON, jsonErr := json.MarshalIndent(doc, "", "  "); jsonErr == nil {
		saveDebug(opts.DebugDir, "document.json", docJSON)
	}

	emitProgress(&opts, runID, "render", "rendering PDF")
	pdf, err := render.PDF(p, doc)
	if err != nil {
		return nil, err
	}

	emitProgress(&opts, runID, "done", "resume generated")
	return pdf, nil
}

// saveDebug writes an intermediate artifact when a debug directory is set.
// Failures are ignored, debugging output never fails a run.
func saveDebug(dir, name string, data []byte) {
	if dir == "" {
		return
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return
	}
	_ = os.WriteFile(filepath.Join(dir, name), data, 0o644)
}
