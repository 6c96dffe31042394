package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-tailor/internal/pipeline"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a tailored resume PDF",
	Long: `Generate a resume tailored to a job description.

The job description can be given as a text file with --job or scraped from
a posting URL with --job-url.`,
	RunE: runGenerate,
}

var (
	genJob      string
	genJobURL   string
	genProfile  string
	genOut      string
	genModel    string
	genAPIKey   string
	genDebugDir string
	genVerbose  bool
)

func init() {
	generateCmd.Flags().StringVarP(&genJob, "job", "j", "", "Path to job description text file (mutually exclusive with --job-url)")
	generateCmd.Flags().StringVar(&genJobURL, "job-url", "", "URL to fetch the job posting from (mutually exclusive with --job)")
	generateCmd.Flags().StringVarP(&genProfile, "profile", "p", "profile.json", "Path to candidate profile JSON")
	generateCmd.Flags().StringVarP(&genOut, "out", "o", "resume.pdf", "Output PDF path")
	generateCmd.Flags().StringVar(&genModel, "model", "", "Generation model name (optional)")
	generateCmd.Flags().StringVar(&genAPIKey, "api-key", "", "Gemini API key (optional, defaults to GEMINI_API_KEY env var)")
	generateCmd.Flags().StringVar(&genDebugDir, "debug-dir", "", "Directory to write intermediate artifacts to (optional)")
	generateCmd.Flags().BoolVarP(&genVerbose, "verbose", "v", false, "Print detailed debug information")
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(_ *cobra.Command, _ []string) error {
	if (genJob == "") == (genJobURL == "") {
		return fmt.Errorf("exactly one of --job and --job-url is required")
	}

	apiKey := genAPIKey
	if apiKey == "" {
		apiKey = os.Getenv("GEMINI_API_KEY")
	}
	if apiKey == "" {
		return fmt.Errorf("an API key is required (--api-key or GEMINI_API_KEY)")
	}

	opts := pipeline.RunOptions{
		JDURL:       genJobURL,
		ProfilePath: genProfile,
		APIKey:      apiKey,
		Model:       genModel,
		Verbose:     genVerbose,
		DebugDir:    genDebugDir,
	}
	if genJob != "" {
		jdText, err := os.ReadFile(genJob)
		if err != nil {
			return fmt.Errorf("failed to read job description: %w", err)
		}
		opts.JDText = string(jdText)
	}
	if genVerbose {
		opts.OnProgress = func(ev pipeline.ProgressEvent) {
			fmt.Printf("[%s] %s\n", ev.Step, ev.Message)
		}
	}

	pdf, err := pipeline.Run(context.Background(), opts)
	if err != nil {
		return err
	}

	if err := os.WriteFile(genOut, pdf, 0o644); err != nil {
		return fmt.Errorf("failed to write PDF: %w", err)
	}
	fmt.Printf("Wrote %s (%d bytes)\n", genOut, len(pdf))
	return nil
}
