package server

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/jonathan/resume-tailor/internal/pipeline"
)

var validate = validator.New()

// GenerateRequest is the payload for POST /generate-resume.
type GenerateRequest struct {
	JDText string `json:"jd_text" validate:"required"`
}

// GenerateFromURLRequest is the payload for POST /generate-resume-from-url.
type GenerateFromURLRequest struct {
	JDURL string `json:"jd_url" validate:"required,url"`
}

// handleGenerate produces a resume PDF from raw job description text.
func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	var req GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if err := validate.Struct(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "jd_text is required")
		return
	}

	s.generate(w, r, pipeline.RunOptions{JDText: req.JDText})
}

// handleGenerateFromURL scrapes a job posting URL and produces a resume PDF.
func (s *Server) handleGenerateFromURL(w http.ResponseWriter, r *http.Request) {
	var req GenerateFromURLRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if err := validate.Struct(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "jd_url must be a valid URL")
		return
	}

	s.generate(w, r, pipeline.RunOptions{JDURL: req.JDURL})
}

// generate runs the pipeline with server-level options filled in and writes
// the resulting PDF as a file download.
func (s *Server) generate(w http.ResponseWriter, r *http.Request, opts pipeline.RunOptions) {
	requestID := uuid.New().String()

	opts.APIKey = s.apiKey
	opts.ProfilePath = s.profilePath
	opts.Verbose = s.verbose

	pdf, err := s.run(r.Context(), opts)
	if err != nil {
		log.Printf("[%s] generation failed: %v", requestID, err)
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=resume.pdf")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(pdf); err != nil {
		log.Printf("[%s] failed to write PDF response: %v", requestID, err)
	}
}
