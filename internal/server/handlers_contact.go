package server

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/michal/smartresume/internal/types"
)

// handleContact stores a contact form submission.
func (s *Server) handleContact(w http.ResponseWriter, r *http.Request) {
	var req types.ContactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid JSON data")
		return
	}

	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Please fill in all required fields with valid values")
		return
	}

	if _, err := s.store.SaveContactMessage(r.Context(), &req); err != nil {
		log.Printf("Failed to save contact message: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to send your message. Please try again later.")
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Your message has been sent successfully! We will get back to you soon.",
	})
}
