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

	"github.com/jonathan/resume-matcher/internal/config"
	"github.com/jonathan/resume-matcher/internal/db"
	"github.com/jonathan/resume-matcher/internal/ingestion"
	"github.com/jonathan/resume-matcher/internal/llm"
	"github.com/jonathan/resume-matcher/internal/matching"
	"github.com/jonathan/resume-matcher/internal/server/middleware"
	"github.com/jonathan/resume-matcher/internal/server/ratelimit"
	"github.com/jonathan/resume-matcher/internal/suggestions"
	"github.com/jonathan/resume-matcher/internal/types"
)

// Store is the persistence surface the handlers depend on.
// It is satisfied by *db.DB and by test fakes.
type Store interface {
	CreateResume(ctx context.Context, userID uuid.UUID, fileName, rawText string) (*types.Resume, error)
	GetResume(ctx context.Context, id uuid.UUID) (*types.Resume, error)
	ListResumesByUser(ctx context.Context, userID uuid.UUID) ([]types.Resume, error)
	SaveResumeAnalysis(ctx context.Context, id uuid.UUID, analysis *types.ResumeAnalysis, atsScore int) error
	DeleteResume(ctx context.Context, id uuid.UUID) error

	CreateJob(ctx context.Context, req *types.CreateJobRequest) (*types.Job, error)
	GetJob(ctx context.Context, id uuid.UUID) (*types.Job, error)
	ListJobs(ctx context.Context, filters db.JobFilters) ([]types.Job, error)
	ListActiveJobs(ctx context.Context) ([]types.Job, error)
	UpdateJob(ctx context.Context, id uuid.UUID, req *types.CreateJobRequest) (*types.Job, error)
	UpdateJobStatus(ctx context.Context, id uuid.UUID, status string) error
	DeleteJob(ctx context.Context, id uuid.UUID) error
}

// Server represents the HTTP server
type Server struct {
	httpServer  *http.Server
	db          *db.DB
	store       Store
	engine      *matching.Engine
	suggester   *suggestions.Suggester
	ingest      func(ctx context.Context, url string) (string, error)
	rateLimiter *ratelimit.Limiter
	jwtService  *JWTService
	userService *UserService
	authHandler *AuthHandler
}

// Config holds server configuration
type Config struct {
	Port        int
	DatabaseURL string
	APIKey      string
	UseBrowser  bool
}

// New creates a new server instance
func New(cfg Config) (*Server, error) {
	// Connect to database
	database, err := db.Connect(context.Background(), cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	s := &Server{
		db:     database,
		store:  database,
		engine: matching.NewEngine(),
	}

	// Suggestions degrade to deterministic fallbacks without an API key
	if cfg.APIKey != "" {
		client, err := llm.NewClient(context.Background(), llm.DefaultGeminiConfig(), cfg.APIKey)
		if err != nil {
			return nil, fmt.Errorf("failed to create LLM client: %w", err)
		}
		s.suggester = suggestions.NewSuggester(client)
	} else {
		s.suggester = suggestions.NewSuggester(nil)
	}

	s.ingest = func(ctx context.Context, url string) (string, error) {
		return ingestion.IngestFromURL(ctx, url, cfg.UseBrowser, false)
	}

	// Initialize rate limiter
	s.rateLimiter = ratelimit.NewLimiter(ratelimit.LoadConfig())

	// Initialize authentication services
	passwordConfig, err := config.NewPasswordConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to create password config: %w", err)
	}
	s.userService = NewUserService(database, passwordConfig)

	jwtConfig, err := config.NewJWTConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to create JWT config: %w", err)
	}
	s.jwtService = NewJWTService(jwtConfig)

	s.authHandler = NewAuthHandler(s.userService, s.jwtService)

	// Create HTTP server
	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.withRateLimit(s.withLogging(s.withCORS(s.routes()))),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second, // Long timeout for URL ingestion with browser fallback
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

// routes builds the request multiplexer
func (s *Server) routes() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", s.handleHealth)

	// Authentication endpoints
	mux.HandleFunc("POST /auth/register", s.authHandler.Register)
	mux.HandleFunc("POST /auth/login", s.authHandler.Login)
	mux.Handle("PUT /auth/password", s.withAuth(s.authHandler.UpdatePasswordWithUserID))

	// User profile endpoints
	mux.Handle("GET /users/me", s.withAuth(s.handleGetMe))

	// Stateless analysis endpoint
	mux.HandleFunc("POST /analyze", s.handleAnalyze)

	// Resume endpoints (scoped to the authenticated user)
	mux.Handle("POST /resumes", s.withAuth(s.handleCreateResume))
	mux.Handle("GET /resumes", s.withAuth(s.handleListResumes))
	mux.Handle("GET /resumes/{id}", s.withAuth(s.handleGetResume))
	mux.Handle("DELETE /resumes/{id}", s.withAuth(s.handleDeleteResume))
	mux.Handle("POST /resumes/{id}/analyze", s.withAuth(s.handleAnalyzeResume))
	mux.Handle("POST /resumes/{id}/ats", s.withAuth(s.handleResumeATS))
	mux.Handle("GET /resumes/{id}/recommendations", s.withAuth(s.handleRecommendations))

	// Skills gap analysis for one resume against one job
	mux.Handle("GET /analysis/{resume_id}/{job_id}", s.withAuth(s.handleSkillsGap))

	// Job posting endpoints
	mux.HandleFunc("POST /jobs", s.handleCreateJob)
	mux.HandleFunc("GET /jobs", s.handleListJobs)
	mux.HandleFunc("GET /jobs/{id}", s.handleGetJob)
	mux.HandleFunc("PUT /jobs/{id}", s.handleUpdateJob)
	mux.HandleFunc("PUT /jobs/{id}/status", s.handleUpdateJobStatus)
	mux.HandleFunc("DELETE /jobs/{id}", s.handleDeleteJob)

	return mux
}

// Start begins listening for requests
func (s *Server) Start() error {
	// Graceful shutdown
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

	// Stop rate limiter cleanup goroutine
	if s.rateLimiter != nil {
		s.rateLimiter.Stop()
	}

	s.db.Close()
	log.Println("Server stopped")
	return nil
}

// withAuth validates the bearer token and passes the authenticated user ID
// to the wrapped handler
func (s *Server) withAuth(h func(http.ResponseWriter, *http.Request, uuid.UUID)) http.Handler {
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, err := middleware.GetUserID(r)
		if err != nil {
			s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
			return
		}
		h(w, r, userID)
	})
	return middleware.AuthMiddleware(s.jwtService.AsTokenValidator())(inner)
}

// withCORS adds CORS headers
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withRateLimit adds rate limiting middleware
func (s *Server) withRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Extract client identifier (IP address)
		clientID := s.extractClientID(r)

		// Check rate limit
		allowed, info := s.rateLimiter.Allow(clientID, r.URL.Path, r.Method)

		if !allowed {
			s.setRateLimitHeaders(w, info)
			s.rateLimitResponse(w, info)
			return
		}

		// Set rate limit headers for successful requests
		s.setRateLimitHeaders(w, info)
		next.ServeHTTP(w, r)
	})
}

// withLogging adds request logging
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		log.Printf("[%s] %s %s", r.Method, r.URL.Path, r.RemoteAddr)
		next.ServeHTTP(w, r)
		log.Printf("[%s] %s completed in %v", r.Method, r.URL.Path, time.Since(start))
	})
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// jsonResponse writes a JSON response
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Error encoding JSON response: %v", err)
	}
}

// errorResponse writes an error JSON response
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}

// extractClientID extracts the client identifier from the request.
// This uses the IP address from RemoteAddr; X-Forwarded-For is deliberately
// ignored since it is client-controlled unless a trusted proxy sets it.
func (s *Server) extractClientID(r *http.Request) string {
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		// If parsing fails, use the whole RemoteAddr
		return r.RemoteAddr
	}
	return ip
}

// setRateLimitHeaders sets standard rate limit headers on the response.
func (s *Server) setRateLimitHeaders(w http.ResponseWriter, info ratelimit.Info) {
	if info.Limit > 0 {
		w.Header().Set("X-RateLimit-Limit", fmt.Sprintf("%d", info.Limit))
		w.Header().Set("X-RateLimit-Remaining", fmt.Sprintf("%d", info.Remaining))
		w.Header().Set("X-RateLimit-Reset", fmt.Sprintf("%d", info.ResetTime.Unix()))
	}
}

// rateLimitResponse writes a 429 Too Many Requests response with rate limit information.
func (s *Server) rateLimitResponse(w http.ResponseWriter, info ratelimit.Info) {
	response := map[string]interface{}{
		"error":     "rate_limit_exceeded",
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
