package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"

	"github.com/michal/smartresume/internal/config"
	"github.com/michal/smartresume/internal/criteria"
	"github.com/michal/smartresume/internal/db"
	"github.com/michal/smartresume/internal/render"
	"github.com/michal/smartresume/internal/server/middleware"
	"github.com/michal/smartresume/internal/server/ratelimit"
	"github.com/michal/smartresume/internal/types"
)

// Store is the persistence surface the handlers need.
type Store interface {
	TrackResumeActivity(ctx context.Context, record *types.ResumeRecord, action, ipAddress, userAgent string, fileSize int64) (uuid.UUID, error)
	ListResumeHistory(ctx context.Context, limit, offset int) ([]db.ResumeActivity, error)
	GetResumeStats(ctx context.Context) (*db.ResumeStats, error)
	SaveContactMessage(ctx context.Context, req *types.ContactRequest) (uuid.UUID, error)
	GetContactMessage(ctx context.Context, id uuid.UUID) (*db.ContactMessage, error)
	ListContactMessages(ctx context.Context, limit, offset int) ([]db.ContactMessage, error)
	GetAdminByUsername(ctx context.Context, username string) (*db.AdminUserRow, error)
	UpdateAdminLastLogin(ctx context.Context, id uuid.UUID) error
}

// PDFGenerator prints rendered resume HTML to PDF bytes.
type PDFGenerator interface {
	FromHTML(ctx context.Context, html string) ([]byte, error)
}

// ResumeMailer delivers a generated PDF to the resume owner.
type ResumeMailer interface {
	SendResume(ctx context.Context, to, firstName, lastName string, pdfData []byte) error
}

// Server is the HTTP server with all its dependencies wired.
type Server struct {
	httpServer *http.Server

	store       Store
	renderer    *render.Renderer
	criteria    *criteria.Store
	catalog     *criteria.Catalog
	pdf         PDFGenerator
	mailer      ResumeMailer
	rateLimiter *ratelimit.Limiter
	jwtService  *JWTService
	adminSvc    *AdminService

	maxUploadBytes int64

	closeDB func()
}

// Deps bundles the externally constructed dependencies of the server.
type Deps struct {
	Store    Store
	Renderer *render.Renderer
	Criteria *criteria.Store
	Catalog  *criteria.Catalog
	PDF      PDFGenerator
	Mailer   ResumeMailer

	// CloseDB is invoked during shutdown; nil is allowed.
	CloseDB func()
}

// New wires a server from configuration and dependencies.
func New(cfg *config.Config, deps Deps) (*Server, error) {
	s := &Server{
		store:          deps.Store,
		renderer:       deps.Renderer,
		criteria:       deps.Criteria,
		catalog:        deps.Catalog,
		pdf:            deps.PDF,
		mailer:         deps.Mailer,
		maxUploadBytes: cfg.MaxUploadBytes,
		closeDB:        deps.CloseDB,
	}

	s.rateLimiter = ratelimit.NewLimiter(ratelimit.LoadConfig())

	passwordConfig, err := config.NewPasswordConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to create password config: %w", err)
	}
	jwtConfig, err := config.NewJWTConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to create JWT config: %w", err)
	}
	s.jwtService = NewJWTService(jwtConfig)
	s.adminSvc = NewAdminService(deps.Store, passwordConfig, s.jwtService)

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.withRateLimit(s.withLogging(s.withCORS(s.routes()))),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second, // headless PDF rendering can be slow
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

// routes builds the request multiplexer.
func (s *Server) routes() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /api/resume/preview", s.handlePreview)
	mux.HandleFunc("POST /api/resume/generate", s.handleGenerate)
	mux.HandleFunc("POST /api/resume/analyze", s.handleAnalyze)

	mux.HandleFunc("GET /api/roles", s.handleListRoles)
	mux.HandleFunc("POST /api/contact", s.handleContact)

	mux.HandleFunc("POST /api/admin/login", s.handleAdminLogin)

	requireAdmin := middleware.AdminAuth(s.jwtService.AsTokenValidator())
	mux.Handle("GET /api/admin/contacts", requireAdmin(http.HandlerFunc(s.handleAdminContacts)))
	mux.Handle("GET /api/admin/contacts/{id}", requireAdmin(http.HandlerFunc(s.handleAdminContact)))
	mux.Handle("GET /api/admin/resumes", requireAdmin(http.HandlerFunc(s.handleAdminResumes)))
	mux.Handle("GET /api/admin/stats", requireAdmin(http.HandlerFunc(s.handleAdminStats)))

	mux.HandleFunc("GET /health", s.handleHealth)

	return mux
}

// Start begins listening and blocks until an interrupt triggers graceful
// shutdown.
func (s *Server) Start() error {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("Server starting on %s", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	<-stop
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	if s.rateLimiter != nil {
		s.rateLimiter.Stop()
	}
	if s.closeDB != nil {
		s.closeDB()
	}
	log.Println("Server stopped")
	return nil
}

// withCORS adds CORS headers.
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withRateLimit enforces per-client limits before handling.
func (s *Server) withRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		clientID := s.extractClientID(r)

		allowed, info := s.rateLimiter.Allow(clientID, r.URL.Path, r.Method)
		s.setRateLimitHeaders(w, info)
		if !allowed {
			s.rateLimitResponse(w, info)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// withLogging adds request logging.
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		log.Printf("[%s] %s %s", r.Method, r.URL.Path, r.RemoteAddr)
		next.ServeHTTP(w, r)
		log.Printf("[%s] %s completed in %v", r.Method, r.URL.Path, time.Since(start))
	})
}

// handleHealth returns server health status.
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleListRoles returns the job role catalog for the builder wizard.
func (s *Server) handleListRoles(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, s.catalog.Roles)
}

// jsonResponse writes a JSON response.
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Error encoding JSON response: %v", err)
	}
}

// errorResponse writes an error JSON response in the legacy wire shape.
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]any{"success": false, "message": message})
}

// extractClientID returns the client IP used for rate limiting.
func (s *Server) extractClientID(r *http.Request) string {
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}

func (s *Server) setRateLimitHeaders(w http.ResponseWriter, info ratelimit.Info) {
	if info.Limit > 0 {
		w.Header().Set("X-RateLimit-Limit", fmt.Sprintf("%d", info.Limit))
		w.Header().Set("X-RateLimit-Remaining", fmt.Sprintf("%d", info.Remaining))
		w.Header().Set("X-RateLimit-Reset", fmt.Sprintf("%d", info.ResetTime.Unix()))
	}
}

func (s *Server) rateLimitResponse(w http.ResponseWriter, info ratelimit.Info) {
	response := map[string]any{
		"success":   false,
		"message":   "Rate limit exceeded. Please try again later.",
		"limit":     info.Limit,
		"remaining": info.Remaining,
		"reset_at":  info.ResetTime.Format(time.RFC3339),
	}
	if info.RetryAfter > 0 {
		response["retry_after"] = int(info.RetryAfter.Seconds())
		w.Header().Set("Retry-After", fmt.Sprintf("%d", int(info.RetryAfter.Seconds())))
	}

	log.Printf("[rate-limit] Rate limit exceeded: Limit=%d Remaining=%d Reset=%s",
		info.Limit, info.Remaining, info.ResetTime.Format(time.RFC3339))

	s.jsonResponse(w, http.StatusTooManyRequests, response)
}
