package api

import (
	"github.com/gorilla/mux"

	"github.com/Sumeet011/AI-Voice-Interview-Platform/internal/config"
	"github.com/Sumeet011/AI-Voice-Interview-Platform/internal/db"
	"github.com/Sumeet011/AI-Voice-Interview-Platform/internal/repository/sqlite"
)

func SetupRoutes(cfg *config.Config, version, buildTime string, db *db.DB) (*mux.Router, error) {
	r := mux.NewRouter()

	// Middleware chain
	r.Use(LoggingMiddleware)
	r.Use(CORSMiddleware(cfg.AllowedOrigins))
	r.Use(RecoveryMiddleware)

	// Repository
	repo := sqlite.New(db, logger)

	// Create handlers
	systemHandler := &SystemHandler{}
	authHandler := NewAuthHandler(repo, cfg.JWTSecret, cfg.TokenDuration, cfg.BcryptCost)
	usersHandler := NewUsersHandler(repo)
	interviewsHandler := NewInterviewsHandler(repo)
	resultsHandler, err := NewResultsHandler(repo, cfg.ServiceKey)
	if err != nil {
		return nil, err
	}

	// Open endpoints
	r.HandleFunc("/version", systemHandler.VersionHandler(version, buildTime)).Methods("GET")
	r.HandleFunc("/health", systemHandler.HealthHandler).Methods("GET")
	r.HandleFunc("/api/auth/signup", authHandler.Signup).Methods("POST")
	r.HandleFunc("/api/auth/login", authHandler.Login).Methods("POST")
	r.HandleFunc("/api/interviews/public", interviewsHandler.ListPublic).Methods("GET")

	// Results ingestion: called by the external AI service, guarded by the
	// shared service key instead of a user token.
	r.HandleFunc("/api/ai-results", resultsHandler.Ingest).Methods("POST")

	// Protected routes
	protected := r.PathPrefix("/api").Subrouter()
	protected.Use(AuthMiddleware(cfg.JWTSecret, repo))

	protected.HandleFunc("/user", usersHandler.GetUser).Methods("GET")
	protected.HandleFunc("/interviews", interviewsHandler.Create).Methods("POST")
	protected.HandleFunc("/interviews", interviewsHandler.List).Methods("GET")
	protected.HandleFunc("/interviews/{id:[0-9]+}", interviewsHandler.Get).Methods("GET")
	protected.HandleFunc("/interviews/{id:[0-9]+}", interviewsHandler.Update).Methods("PUT")
	protected.HandleFunc("/interviews/{id:[0-9]+}", interviewsHandler.Delete).Methods("DELETE")

	return r, nil
}
