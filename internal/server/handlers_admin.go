package server

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/michal/smartresume/internal/types"
)

const (
	defaultPageSize = 50
	maxPageSize     = 200
)

// handleAdminLogin authenticates an admin and returns a bearer token.
func (s *Server) handleAdminLogin(w http.ResponseWriter, r *http.Request) {
	var req types.AdminLoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid JSON data")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Username and password are required")
		return
	}

	resp, err := s.adminSvc.Login(r.Context(), &req)
	if err != nil {
		status := HTTPStatus(err)
		if status == http.StatusInternalServerError {
			log.Printf("Admin login error: %v", err)
			s.errorResponse(w, status, "Login failed")
			return
		}
		s.errorResponse(w, status, err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, resp)
}

// handleAdminContacts lists contact form submissions.
func (s *Server) handleAdminContacts(w http.ResponseWriter, r *http.Request) {
	limit, offset := pagination(r)
	messages, err := s.store.ListContactMessages(r.Context(), limit, offset)
	if err != nil {
		log.Printf("Failed to list contact messages: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to load contact messages")
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"success":  true,
		"contacts": messages,
	})
}

// handleAdminContact returns a single contact submission.
func (s *Server) handleAdminContact(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid contact id")
		return
	}

	msg, err := s.store.GetContactMessage(r.Context(), id)
	if err != nil {
		log.Printf("Failed to load contact message %s: %v", id, err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to load contact message")
		return
	}
	if msg == nil {
		s.errorResponse(w, http.StatusNotFound, "Contact message not found")
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"success": true,
		"contact": msg,
	})
}

// handleAdminResumes lists tracked resume activity.
func (s *Server) handleAdminResumes(w http.ResponseWriter, r *http.Request) {
	limit, offset := pagination(r)
	activities, err := s.store.ListResumeHistory(r.Context(), limit, offset)
	if err != nil {
		log.Printf("Failed to list resume history: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to load resume history")
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"success": true,
		"resumes": activities,
	})
}

// handleAdminStats returns dashboard aggregates.
func (s *Server) handleAdminStats(w http.ResponseWriter, r *http.Request) {
	stats, err := s.store.GetResumeStats(r.Context())
	if err != nil {
		log.Printf("Failed to load stats: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to load statistics")
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"success": true,
		"stats":   stats,
	})
}

// pagination reads limit/offset query parameters with sane bounds.
func pagination(r *http.Request) (limit, offset int) {
	limit = defaultPageSize
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			limit = min(n, maxPageSize)
		}
	}
	if v := r.URL.Query().Get("offset"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			offset = n
		}
	}
	return limit, offset
}
