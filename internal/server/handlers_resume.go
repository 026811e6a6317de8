package server

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"

	"github.com/michal/smartresume/internal/analyzer"
	"github.com/michal/smartresume/internal/db"
	"github.com/michal/smartresume/internal/extract"
	"github.com/michal/smartresume/internal/mail"
	"github.com/michal/smartresume/internal/types"
)

// GenerateRequest is the generate endpoint payload: the resume record plus
// the requested delivery action.
type GenerateRequest struct {
	types.ResumeRecord
	Action string `json:"action,omitempty"`
}

// Delivery actions accepted by the generate endpoint.
const (
	actionDownload = "download"
	actionEmail    = "email"
)

// handlePreview renders the resume record to HTML without generating a PDF.
func (s *Server) handlePreview(w http.ResponseWriter, r *http.Request) {
	var record types.ResumeRecord
	if err := json.NewDecoder(r.Body).Decode(&record); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid JSON data")
		return
	}

	html := s.renderer.Render(&record)
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"success": true,
		"html":    html,
	})
}

// handleGenerate renders the resume to PDF and either streams it back or
// emails it to the resume owner.
func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	var req GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid JSON data")
		return
	}
	if req.Action == "" {
		req.Action = actionDownload
	}

	info := req.PersonalInfo
	if info.FirstName == "" || info.LastName == "" || info.Email == "" {
		s.errorResponse(w, http.StatusBadRequest, "First name, last name, and email are required")
		return
	}

	html := s.renderer.Render(&req.ResumeRecord)
	pdfData, err := s.pdf.FromHTML(r.Context(), html)
	if err != nil {
		log.Printf("Resume generation error: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to generate resume PDF")
		return
	}

	switch req.Action {
	case actionEmail:
		if err := s.mailer.SendResume(r.Context(), info.Email, info.FirstName, info.LastName, pdfData); err != nil {
			log.Printf("Email error: %v", err)
			s.errorResponse(w, http.StatusInternalServerError, "Failed to send email")
			return
		}
		s.trackActivity(r, &req.ResumeRecord, db.ActionEmailed, int64(len(pdfData)))
		s.jsonResponse(w, http.StatusOK, map[string]any{
			"success": true,
			"message": "Resume has been sent to your email successfully!",
		})

	case actionDownload:
		s.trackActivity(r, &req.ResumeRecord, db.ActionDownloaded, int64(len(pdfData)))
		w.Header().Set("Content-Type", "application/pdf")
		w.Header().Set("Content-Disposition",
			`attachment; filename="`+mail.AttachmentName(info.FirstName, info.LastName)+`"`)
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write(pdfData); err != nil {
			log.Printf("Error writing PDF response: %v", err)
		}

	default:
		s.errorResponse(w, http.StatusBadRequest, "Unknown action: "+req.Action)
	}
}

// trackActivity records history without failing the request.
func (s *Server) trackActivity(r *http.Request, record *types.ResumeRecord, action string, fileSize int64) {
	_, err := s.store.TrackResumeActivity(r.Context(), record, action,
		s.extractClientID(r), r.UserAgent(), fileSize)
	if err != nil {
		log.Printf("Failed to track resume activity: %v", err)
	}
}

// handleAnalyze scores an uploaded resume file against the target role's
// criteria.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.maxUploadBytes)
	if err := r.ParseMultipartForm(s.maxUploadBytes); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			s.errorResponse(w, http.StatusRequestEntityTooLarge, "File size exceeds 5MB limit")
			return
		}
		s.errorResponse(w, http.StatusBadRequest, "No file uploaded or upload error occurred")
		return
	}

	targetRole := r.FormValue("targetRole")
	if targetRole == "" {
		s.errorResponse(w, http.StatusBadRequest, "Target role is required")
		return
	}

	file, header, err := r.FormFile("resume")
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "No file uploaded or upload error occurred")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "No file uploaded or upload error occurred")
		return
	}

	text, err := extract.Text(header.Header.Get("Content-Type"), data)
	if err != nil {
		var ute *extract.UnsupportedTypeError
		switch {
		case errors.As(err, &ute):
			s.errorResponse(w, http.StatusUnsupportedMediaType,
				"Invalid file type. Please upload PDF, DOC, or DOCX files only.")
		case errors.Is(err, extract.ErrNoText):
			s.errorResponse(w, http.StatusBadRequest,
				"Could not extract text from the uploaded file. Please ensure the file contains readable text.")
		default:
			log.Printf("Text extraction error: %v", err)
			s.errorResponse(w, http.StatusBadRequest, "Failed to extract text from file")
		}
		return
	}

	report := analyzer.Analyze(text, s.criteria.ForRole(targetRole), targetRole)
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"success":  true,
		"analysis": report,
	})
}
