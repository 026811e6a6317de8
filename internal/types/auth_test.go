package types

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdminLoginRequest_Validation(t *testing.T) {
	tests := []struct {
		name    string
		request AdminLoginRequest
		wantErr bool
	}{
		{
			name:    "valid request",
			request: AdminLoginRequest{Username: "admin", Password: "password123"},
			wantErr: false,
		},
		{
			name:    "missing username",
			request: AdminLoginRequest{Password: "password123"},
			wantErr: true,
		},
		{
			name:    "missing password",
			request: AdminLoginRequest{Username: "admin"},
			wantErr: true,
		},
		{
			name:    "empty request",
			request: AdminLoginRequest{},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.request.Validate()
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestContactRequest_Validation(t *testing.T) {
	valid := ContactRequest{
		FirstName: "Alice",
		LastName:  "Smith",
		Email:     "alice@example.com",
		Subject:   "Hello",
		Message:   "A question about templates.",
	}

	tests := []struct {
		name    string
		mutate  func(*ContactRequest)
		wantErr bool
		errMsg  string
	}{
		{"valid request", func(_ *ContactRequest) {}, false, ""},
		{"optional fields filled", func(r *ContactRequest) {
			r.Phone = "555-0100"
			r.Company = "Acme"
			r.Newsletter = true
		}, false, ""},
		{"missing first name", func(r *ContactRequest) { r.FirstName = "" }, true, "required"},
		{"missing last name", func(r *ContactRequest) { r.LastName = "" }, true, "required"},
		{"missing email", func(r *ContactRequest) { r.Email = "" }, true, "required"},
		{"invalid email format", func(r *ContactRequest) { r.Email = "not-an-email" }, true, "email"},
		{"missing subject", func(r *ContactRequest) { r.Subject = "" }, true, "required"},
		{"missing message", func(r *ContactRequest) { r.Message = "" }, true, "required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid
			tt.mutate(&req)
			err := req.Validate()
			if tt.wantErr {
				require.Error(t, err)
				if tt.errMsg != "" {
					assert.Contains(t, err.Error(), tt.errMsg)
				}
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestAdminLoginResponse_Serialization(t *testing.T) {
	adminID := uuid.New()
	response := AdminLoginResponse{
		User: &AdminUser{
			ID:       adminID,
			Username: "admin",
			FullName: "Site Admin",
			Role:     "admin",
		},
		Token: "test-jwt-token-12345",
	}

	jsonBytes, err := json.Marshal(response)
	require.NoError(t, err)

	jsonStr := string(jsonBytes)
	assert.Contains(t, jsonStr, `"user"`)
	assert.Contains(t, jsonStr, `"token"`)
	assert.Contains(t, jsonStr, adminID.String())
	// Password hashes never appear on the wire.
	assert.NotContains(t, jsonStr, "password")

	var unmarshaled AdminLoginResponse
	require.NoError(t, json.Unmarshal(jsonBytes, &unmarshaled))
	assert.Equal(t, "test-jwt-token-12345", unmarshaled.Token)
	require.NotNil(t, unmarshaled.User)
	assert.Equal(t, adminID, unmarshaled.User.ID)
	assert.Equal(t, "admin", unmarshaled.User.Username)
}

func TestContactRequest_JSONFieldNames(t *testing.T) {
	data := []byte(`{
		"firstName": "Alice",
		"lastName": "Smith",
		"email": "alice@example.com",
		"subject": "Hi",
		"message": "Hello there",
		"newsletter": true
	}`)

	var req ContactRequest
	require.NoError(t, json.Unmarshal(data, &req))
	assert.Equal(t, "Alice", req.FirstName)
	assert.Equal(t, "Smith", req.LastName)
	assert.True(t, req.Newsletter)
	require.NoError(t, req.Validate())
}
