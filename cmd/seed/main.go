package main

import (
	"context"
	_ "embed"
	"flag"
	"log"
	"log/slog"
	"os"

	"teamdir/internal/config"
	"teamdir/internal/domain/services"
	"teamdir/internal/repository/postgres"
	"teamdir/internal/service"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

//go:embed fixtures.yaml
var fixturesYAML []byte

// fixtures is the shape of the embedded seed file
type fixtures struct {
	Users []struct {
		UserID     string `yaml:"user_id"`
		GivenName  string `yaml:"given_name"`
		FamilyName string `yaml:"family_name"`
		Email      string `yaml:"email"`
	} `yaml:"users"`
	Projects []struct {
		ProjectID   string `yaml:"project_id"`
		Name        string `yaml:"name"`
		Description string `yaml:"description"`
	} `yaml:"projects"`
	Memberships []struct {
		UserID    string `yaml:"user_id"`
		ProjectID string `yaml:"project_id"`
	} `yaml:"memberships"`
}

func main() {
	// Parse command-line flags
	dropTables := flag.Bool("drop-tables", false, "Drop all tables before seeding (fresh start)")
	schemaOnly := flag.Bool("schema-only", false, "Only set up schema, don't seed sample data")
	flag.Parse()

	// Load .env file
	_ = godotenv.Load()

	// Load configuration
	cfg := config.Load()

	// SAFETY: Prevent destructive operations in production
	if cfg.Environment == "prod" && *dropTables {
		log.Fatalf("BLOCKED: cannot run --drop-tables in production environment")
	}

	// Setup logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	// Create database connection pool
	ctx := context.Background()
	pool, err := postgres.CreateConnectionPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer pool.Close()

	// Create table names
	tables := postgres.NewTableNames(cfg.TablePrefix)

	// Drop tables if requested
	if *dropTables {
		log.Println("Dropping all tables...")
		if err := postgres.DropTables(ctx, pool, tables); err != nil {
			log.Fatalf("Failed to drop tables: %v", err)
		}
		log.Println("Tables dropped")
	}

	// Run schema to ensure tables exist
	log.Println("Ensuring database schema is up to date...")
	if err := postgres.EnsureSchema(ctx, pool, tables, cfg.TablePrefix); err != nil {
		log.Fatalf("Failed to run schema: %v", err)
	}
	log.Println("Schema ready")

	if *schemaOnly {
		log.Println("Schema setup complete (schema-only mode)")
		return
	}

	// Parse embedded fixtures
	var fx fixtures
	if err := yaml.Unmarshal(fixturesYAML, &fx); err != nil {
		log.Fatalf("Failed to parse fixtures: %v", err)
	}

	// Create repositories and services; seeding goes through the same
	// business logic as the API, so fixtures obey every validation and
	// uniqueness rule.
	repoConfig := &postgres.RepositoryConfig{
		Pool:   pool,
		Tables: tables,
		Logger: logger,
	}
	userRepo := postgres.NewUserRepository(repoConfig)
	projectRepo := postgres.NewProjectRepository(repoConfig)
	membershipRepo := postgres.NewMembershipRepository(repoConfig)
	txManager := postgres.NewTransactionManager(pool)

	userService := service.NewUserService(userRepo, logger)
	projectService := service.NewProjectService(projectRepo, logger)
	membershipService := service.NewMembershipService(userRepo, projectRepo, membershipRepo, txManager, logger)

	log.Printf("Seeding database (environment: %s, prefix: %s)", cfg.Environment, cfg.TablePrefix)

	for _, u := range fx.Users {
		_, err := userService.Create(ctx, &services.CreateUserRequest{
			UserID:     u.UserID,
			GivenName:  u.GivenName,
			FamilyName: u.FamilyName,
			Email:      u.Email,
		})
		if err != nil {
			log.Printf("Skipping user %s: %v", u.UserID, err)
		}
	}

	for _, p := range fx.Projects {
		req := &services.CreateProjectRequest{
			ProjectID: p.ProjectID,
			Name:      p.Name,
		}
		if p.Description != "" {
			desc := p.Description
			req.Description = &desc
		}
		if _, err := projectService.Create(ctx, req); err != nil {
			log.Printf("Skipping project %s: %v", p.ProjectID, err)
		}
	}

	for _, m := range fx.Memberships {
		if err := membershipService.AddUser(ctx, m.ProjectID, m.UserID); err != nil {
			log.Printf("Skipping membership %s->%s: %v", m.UserID, m.ProjectID, err)
		}
	}

	log.Println("Seeding complete")
}
