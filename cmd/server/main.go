package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"teamdir/internal/config"
	"teamdir/internal/handler"
	"teamdir/internal/httputil"
	"teamdir/internal/middleware"
	"teamdir/internal/repository/postgres"
	"teamdir/internal/service"

	"github.com/joho/godotenv"
	"github.com/rs/cors"
)

func main() {
	// Load .env file (silently ignore if it doesn't exist - for production)
	_ = godotenv.Load()

	// Load configuration
	cfg := config.Load()

	// Setup structured logging
	logLevel := slog.LevelInfo
	if cfg.Debug {
		logLevel = slog.LevelDebug
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	logger.Info("server starting",
		"environment", cfg.Environment,
		"port", cfg.Port,
		"table_prefix", cfg.TablePrefix,
	)

	// Create pgx connection pool
	ctx := context.Background()
	pool, err := postgres.CreateConnectionPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to create connection pool: %v", err)
	}
	defer pool.Close()

	logger.Info("database connected")

	// Create table names
	tables := postgres.NewTableNames(cfg.TablePrefix)

	// Create repositories
	repoConfig := &postgres.RepositoryConfig{
		Pool:   pool,
		Tables: tables,
		Logger: logger,
	}
	userRepo := postgres.NewUserRepository(repoConfig)
	projectRepo := postgres.NewProjectRepository(repoConfig)
	membershipRepo := postgres.NewMembershipRepository(repoConfig)
	txManager := postgres.NewTransactionManager(pool)

	// Create services
	userService := service.NewUserService(userRepo, logger)
	projectService := service.NewProjectService(projectRepo, logger)
	membershipService := service.NewMembershipService(userRepo, projectRepo, membershipRepo, txManager, logger)

	// Create handlers
	userHandler := handler.NewUserHandler(userService, logger)
	projectHandler := handler.NewProjectHandler(projectService, logger)
	membershipHandler := handler.NewMembershipHandler(membershipService, logger)
	systemHandler := handler.NewSystemHandler(cfg, pool, logger)

	logger.Info("services initialized")

	// Create HTTP router (Go 1.22+ enhanced patterns)
	mux := http.NewServeMux()

	// Status endpoints
	mux.HandleFunc("GET /{$}", systemHandler.Root)
	mux.HandleFunc("GET /health", systemHandler.Health)
	mux.HandleFunc("GET /info", systemHandler.Info)

	// User routes
	mux.HandleFunc("POST /v1/users/{$}", userHandler.CreateUser)
	mux.HandleFunc("GET /v1/users/{$}", userHandler.ListUsers)
	mux.HandleFunc("GET /v1/users/{user_id}", userHandler.GetUser)
	mux.HandleFunc("PUT /v1/users/{user_id}", userHandler.ReplaceUser)
	mux.HandleFunc("PATCH /v1/users/{user_id}", userHandler.PatchUser)
	mux.HandleFunc("DELETE /v1/users/{user_id}", userHandler.DeleteUser)

	// Project routes
	mux.HandleFunc("POST /v1/projects/{$}", projectHandler.CreateProject)
	mux.HandleFunc("GET /v1/projects/{$}", projectHandler.ListProjects)
	mux.HandleFunc("GET /v1/projects/{project_id}", projectHandler.GetProject)
	mux.HandleFunc("PUT /v1/projects/{project_id}", projectHandler.ReplaceProject)
	mux.HandleFunc("PATCH /v1/projects/{project_id}", projectHandler.PatchProject)
	mux.HandleFunc("DELETE /v1/projects/{project_id}", projectHandler.DeleteProject)

	// Membership routes
	mux.HandleFunc("POST /v1/projects/{project_id}/users/{user_id}", membershipHandler.AddUserToProject)
	mux.HandleFunc("DELETE /v1/projects/{project_id}/users/{user_id}", membershipHandler.RemoveUserFromProject)
	mux.HandleFunc("GET /v1/projects/{project_id}/users", membershipHandler.ListProjectUsers)
	mux.HandleFunc("GET /v1/projects/user/{user_id}/projects", membershipHandler.ListUserProjects)

	// Build middleware chain
	var h http.Handler = mux

	// Apply middleware in reverse order (they wrap each other)
	// Order: CORS → RequestID → RequestLogger → Recovery → Routes
	h = middleware.Recovery(logger)(h)
	h = middleware.RequestLogger(logger)(h)
	h = middleware.RequestID()(h)

	// CORS - outermost so pre-flight OPTIONS requests are handled first
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   strings.Split(cfg.CORSOrigins, ","),
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Origin", "Content-Type", "Accept", "Authorization", httputil.CorrelationIDHeader},
		AllowCredentials: true,
	})
	h = corsHandler.Handler(h)

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      h,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server
	logger.Info("server listening", "port", cfg.Port)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("Failed to start server: %v", err)
	}
}
