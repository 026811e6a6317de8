package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/michal/smartresume/internal/config"
	"github.com/michal/smartresume/internal/criteria"
	"github.com/michal/smartresume/internal/db"
	"github.com/michal/smartresume/internal/render"
	"github.com/michal/smartresume/internal/types"
)

// fakeStore is an in-memory Store for handler tests.
type fakeStore struct {
	activities []db.ResumeActivity
	contacts   []db.ContactMessage
	admins     map[string]*db.AdminUserRow

	trackedActions []string
	lastLoginSet   []uuid.UUID

	saveContactErr error
	listErr        error
}

func newFakeStore() *fakeStore {
	return &fakeStore{admins: map[string]*db.AdminUserRow{}}
}

func (f *fakeStore) TrackResumeActivity(_ context.Context, record *types.ResumeRecord, action, ipAddress, userAgent string, fileSize int64) (uuid.UUID, error) {
	f.trackedActions = append(f.trackedActions, action)
	data, _ := json.Marshal(record)
	f.activities = append(f.activities, db.ResumeActivity{
		ID:         uuid.New(),
		UserName:   record.PersonalInfo.FullName(),
		UserEmail:  record.PersonalInfo.Email,
		ResumeData: data,
		ActionType: action,
		IPAddress:  ipAddress,
		UserAgent:  userAgent,
		FileSize:   fileSize,
	})
	return f.activities[len(f.activities)-1].ID, nil
}

func (f *fakeStore) ListResumeHistory(_ context.Context, limit, offset int) ([]db.ResumeActivity, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	if offset >= len(f.activities) {
		return nil, nil
	}
	end := min(offset+limit, len(f.activities))
	return f.activities[offset:end], nil
}

func (f *fakeStore) GetResumeStats(_ context.Context) (*db.ResumeStats, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	stats := &db.ResumeStats{
		TotalResumes: int64(len(f.activities)),
		ByAction:     map[string]int64{},
		ByRole:       map[string]int64{},
	}
	for _, a := range f.activities {
		stats.ByAction[a.ActionType]++
	}
	return stats, nil
}

func (f *fakeStore) SaveContactMessage(_ context.Context, req *types.ContactRequest) (uuid.UUID, error) {
	if f.saveContactErr != nil {
		return uuid.Nil, f.saveContactErr
	}
	msg := db.ContactMessage{
		ID:        uuid.New(),
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Subject:   req.Subject,
		Message:   req.Message,
	}
	f.contacts = append(f.contacts, msg)
	return msg.ID, nil
}

func (f *fakeStore) GetContactMessage(_ context.Context, id uuid.UUID) (*db.ContactMessage, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	for i := range f.contacts {
		if f.contacts[i].ID == id {
			return &f.contacts[i], nil
		}
	}
	return nil, nil
}

func (f *fakeStore) ListContactMessages(_ context.Context, limit, offset int) ([]db.ContactMessage, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	if offset >= len(f.contacts) {
		return nil, nil
	}
	end := min(offset+limit, len(f.contacts))
	return f.contacts[offset:end], nil
}

func (f *fakeStore) GetAdminByUsername(_ context.Context, username string) (*db.AdminUserRow, error) {
	return f.admins[username], nil
}

func (f *fakeStore) UpdateAdminLastLogin(_ context.Context, id uuid.UUID) error {
	f.lastLoginSet = append(f.lastLoginSet, id)
	return nil
}

// fakePDF returns canned PDF bytes.
type fakePDF struct {
	err error
}

func (f *fakePDF) FromHTML(_ context.Context, _ string) ([]byte, error) {
	if f.err != nil {
		return nil, f.err
	}
	return []byte("%PDF-1.4 test"), nil
}

// fakeMailer records sent resumes.
type fakeMailer struct {
	sentTo []string
	err    error
}

func (f *fakeMailer) SendResume(_ context.Context, to, _, _ string, _ []byte) error {
	if f.err != nil {
		return f.err
	}
	f.sentTo = append(f.sentTo, to)
	return nil
}

const testRolesJSON = `[
	{"id": "full-stack-developer", "name": "Full Stack Developer", "template": "developer-modern"},
	{"id": "data-analyst", "name": "Data Analyst", "template": "analyst-focus"}
]`

// newTestServer builds a server wired with fakes. The returned mailer and pdf
// generator are the instances the server uses.
func newTestServer(t *testing.T, store *fakeStore) (*Server, *fakePDF, *fakeMailer) {
	t.Helper()

	t.Setenv("JWT_SECRET", "test-secret-for-admin-sessions")
	t.Setenv("BCRYPT_COST", "10")
	t.Setenv("RATE_LIMIT_ENABLED", "false")

	dir := t.TempDir()
	rolesPath := filepath.Join(dir, "job-roles.json")
	require.NoError(t, os.WriteFile(rolesPath, []byte(testRolesJSON), 0o644))

	crit, err := criteria.LoadStore(filepath.Join(dir, "missing-criteria.json"))
	require.NoError(t, err)
	catalog, err := criteria.LoadCatalog(rolesPath)
	require.NoError(t, err)

	pdfGen := &fakePDF{}
	mailer := &fakeMailer{}
	cfg := &config.Config{Port: 8080, MaxUploadBytes: config.DefaultMaxUploadBytes}

	s, err := New(cfg, Deps{
		Store:    store,
		Renderer: render.NewRenderer(nil),
		Criteria: crit,
		Catalog:  catalog,
		PDF:      pdfGen,
		Mailer:   mailer,
	})
	require.NoError(t, err)
	return s, pdfGen, mailer
}

// serve runs a request through the full middleware chain.
func serve(s *Server, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	s.httpServer.Handler.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestHealth(t *testing.T) {
	s, _, _ := newTestServer(t, newFakeStore())

	rec := serve(s, httptest.NewRequest("GET", "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestListRoles(t *testing.T) {
	s, _, _ := newTestServer(t, newFakeStore())

	rec := serve(s, httptest.NewRequest("GET", "/api/roles", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var roles []types.JobRole
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &roles))
	require.Len(t, roles, 2)
	assert.Equal(t, "full-stack-developer", roles[0].ID)
	assert.Equal(t, "analyst-focus", roles[1].Template)
}

func TestCORSPreflight(t *testing.T) {
	s, _, _ := newTestServer(t, newFakeStore())

	rec := serve(s, httptest.NewRequest("OPTIONS", "/api/resume/preview", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, rec.Header().Get("Access-Control-Allow-Headers"), "Authorization")
}

func TestUnknownRoute(t *testing.T) {
	s, _, _ := newTestServer(t, newFakeStore())

	rec := serve(s, httptest.NewRequest("GET", "/api/nope", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestPagination(t *testing.T) {
	tests := []struct {
		name       string
		query      string
		wantLimit  int
		wantOffset int
	}{
		{"defaults", "", 50, 0},
		{"explicit", "limit=10&offset=20", 10, 20},
		{"capped", "limit=9999", 200, 0},
		{"garbage ignored", "limit=abc&offset=-5", 50, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/api/admin/resumes?"+tt.query, nil)
			limit, offset := pagination(req)
			assert.Equal(t, tt.wantLimit, limit)
			assert.Equal(t, tt.wantOffset, offset)
		})
	}
}
