package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/prkumar-ishir/candidate-profiling/internal/fetch"
	"github.com/prkumar-ishir/candidate-profiling/internal/ingestion"
	"github.com/prkumar-ishir/candidate-profiling/internal/pipeline"
	"github.com/prkumar-ishir/candidate-profiling/internal/types"
)

// maxUploadBytes bounds the multipart resume upload size.
const maxUploadBytes = 10 << 20

// KeywordsRequest represents the request body for /api/v1/keywords
type KeywordsRequest struct {
	JDText string `json:"jd_text" validate:"required_without=JDURL"`
	JDURL  string `json:"jd_url" validate:"omitempty,url"`
	Limit  int    `json:"limit" validate:"gte=0,lte=200"`
}

// KeywordsResponse represents the response for /api/v1/keywords
type KeywordsResponse struct {
	RunID    string                 `json:"run_id"`
	Keywords []types.KeywordInsight `json:"keywords"`
}

// AnalyzeRequest represents the request body for /api/v1/analyses
type AnalyzeRequest struct {
	JDText     string `json:"jd_text" validate:"required_without=JDURL"`
	JDURL      string `json:"jd_url" validate:"omitempty,url"`
	ResumeText string `json:"resume_text" validate:"required"`
	ResumeName string `json:"resume_name"`
	Limit      int    `json:"limit" validate:"gte=0,lte=200"`
}

// AnalyzeResponse represents the response for /api/v1/analyses
type AnalyzeResponse struct {
	RunID    string                 `json:"run_id"`
	Resume   string                 `json:"resume"`
	Keywords []types.KeywordInsight `json:"keywords"`
	Analysis types.ResumeAnalysis   `json:"analysis"`
}

// handleExtractKeywords extracts ranked keywords from a JD
func (s *Server) handleExtractKeywords(w http.ResponseWriter, r *http.Request) {
	var req KeywordsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := s.validate.Struct(req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, validationMessage(err))
		return
	}

	jdText, ok := s.resolveJD(w, r, req.JDText, req.JDURL)
	if !ok {
		return
	}

	insights, err := s.runner.ExtractKeywords(r.Context(), jdText, req.Limit)
	if err != nil {
		if errors.Is(err, pipeline.ErrNoKeywords) {
			s.errorResponse(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, KeywordsResponse{
		RunID:    uuid.New().String(),
		Keywords: insights,
	})
}

// handleAnalyze scores a resume against a JD
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := s.validate.Struct(req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, validationMessage(err))
		return
	}

	jdText, ok := s.resolveJD(w, r, req.JDText, req.JDURL)
	if !ok {
		return
	}

	s.analyze(w, r, jdText, req.ResumeName, ingestion.CleanText(req.ResumeText), req.Limit)
}

// handleAnalyzeUpload scores an uploaded resume file against a JD. The
// multipart form carries a "resume" file plus "jd_text" or "jd_url" fields.
func (s *Server) handleAnalyzeUpload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid multipart form: "+err.Error())
		return
	}

	jdText, ok := s.resolveJD(w, r, r.FormValue("jd_text"), r.FormValue("jd_url"))
	if !ok {
		return
	}

	file, header, err := r.FormFile("resume")
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "resume file is required")
		return
	}
	defer file.Close() //nolint:errcheck

	data, err := io.ReadAll(file)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Failed to read resume upload: "+err.Error())
		return
	}

	resumeText, err := ingestion.Extract(filepath.Ext(header.Filename), data)
	if err != nil {
		var unsupported *ingestion.UnsupportedFormatError
		if errors.As(err, &unsupported) {
			s.errorResponse(w, http.StatusUnsupportedMediaType, unsupported.Error())
			return
		}
		s.errorResponse(w, http.StatusBadRequest, "Failed to extract resume text: "+err.Error())
		return
	}

	s.analyze(w, r, jdText, header.Filename, resumeText, 0)
}

// analyze runs extraction plus scoring for a single resume and writes the
// response.
func (s *Server) analyze(w http.ResponseWriter, r *http.Request, jdText, resumeName, resumeText string, limit int) {
	if resumeName == "" {
		resumeName = "resume"
	}

	insights, err := s.runner.ExtractKeywords(r.Context(), jdText, limit)
	if err != nil {
		if errors.Is(err, pipeline.ErrNoKeywords) {
			s.errorResponse(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	results, err := s.runner.AnalyzeResumes(r.Context(), jdText, insights, []pipeline.ResumeInput{
		{Name: resumeName, Text: resumeText},
	})
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, AnalyzeResponse{
		RunID:    uuid.New().String(),
		Resume:   resumeName,
		Keywords: insights,
		Analysis: results[0].Analysis,
	})
}

// resolveJD returns the JD text from either the inline text or a URL,
// writing the error response itself when resolution fails.
func (s *Server) resolveJD(w http.ResponseWriter, r *http.Request, jdText, jdURL string) (string, bool) {
	if jdText == "" && jdURL == "" {
		s.errorResponse(w, http.StatusBadRequest, "Either jd_text or jd_url is required")
		return "", false
	}
	if jdURL != "" {
		fetched, err := fetch.JD(r.Context(), jdURL)
		if err != nil {
			s.errorResponse(w, http.StatusBadGateway, "Failed to fetch JD: "+err.Error())
			return "", false
		}
		jdText = fetched
	}
	return ingestion.CleanText(jdText), true
}

// validationMessage flattens validator errors into one readable line.
func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		first := verrs[0]
		return "Validation failed on field '" + first.Field() + "' (" + first.Tag() + ")"
	}
	return "Validation failed: " + err.Error()
}
