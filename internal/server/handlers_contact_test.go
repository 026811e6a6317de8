package server

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/michal/smartresume/internal/types"
)

func validContact() types.ContactRequest {
	return types.ContactRequest{
		FirstName: "Alice",
		LastName:  "Smith",
		Email:     "alice@example.com",
		Subject:   "Question about templates",
		Message:   "Can I add a custom template?",
	}
}

func TestContact(t *testing.T) {
	store := newFakeStore()
	s, _, _ := newTestServer(t, store)

	rec := serve(s, postJSON("/api/contact", validContact()))

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "Your message has been sent successfully! We will get back to you soon.", body["message"])

	require.Len(t, store.contacts, 1)
	assert.Equal(t, "alice@example.com", store.contacts[0].Email)
}

func TestContact_ValidationFailures(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*types.ContactRequest)
	}{
		{"missing first name", func(r *types.ContactRequest) { r.FirstName = "" }},
		{"missing subject", func(r *types.ContactRequest) { r.Subject = "" }},
		{"missing message", func(r *types.ContactRequest) { r.Message = "" }},
		{"bad email", func(r *types.ContactRequest) { r.Email = "not-an-email" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newFakeStore()
			s, _, _ := newTestServer(t, store)

			req := validContact()
			tt.mutate(&req)
			rec := serve(s, postJSON("/api/contact", req))

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Empty(t, store.contacts)
		})
	}
}

func TestContact_StoreError(t *testing.T) {
	store := newFakeStore()
	store.saveContactErr = errors.New("connection refused")
	s, _, _ := newTestServer(t, store)

	rec := serve(s, postJSON("/api/contact", validContact()))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "Failed to send your message. Please try again later.", body["message"])
}
