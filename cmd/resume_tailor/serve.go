package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-tailor/internal/server"
)

var (
	servePort    int
	serveProfile string
	serveVerbose bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes resume generation endpoints.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "Port to listen on")
	serveCmd.Flags().StringVarP(&serveProfile, "profile", "p", "", "Path to candidate profile JSON (defaults to PROFILE_PATH env var, then profile.json)")
	serveCmd.Flags().BoolVarP(&serveVerbose, "verbose", "v", false, "Print detailed debug information")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		return fmt.Errorf("GEMINI_API_KEY environment variable is required")
	}

	if serveProfile == "" {
		serveProfile = os.Getenv("PROFILE_PATH")
	}
	if serveProfile == "" {
		serveProfile = "profile.json"
	}

	srv, err := server.New(server.Config{
		Port:        servePort,
		APIKey:      apiKey,
		ProfilePath: serveProfile,
		Verbose:     serveVerbose,
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
