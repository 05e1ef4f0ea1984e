package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"teamdir/internal/domain"
	"teamdir/internal/domain/models"
	"teamdir/internal/domain/repositories"
)

// PostgresProjectRepository implements the ProjectRepository interface
type PostgresProjectRepository struct {
	pool   *pgxpool.Pool
	tables *TableNames
}

// NewProjectRepository creates a new project repository
func NewProjectRepository(config *RepositoryConfig) repositories.ProjectRepository {
	return &PostgresProjectRepository{
		pool:   config.Pool,
		tables: config.Tables,
	}
}

// Create inserts a new project
func (r *PostgresProjectRepository) Create(ctx context.Context, project *models.Project) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (project_id, name, description, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`, r.tables.Projects)

	executor := GetExecutor(ctx, r.pool)
	err := executor.QueryRow(ctx, query,
		project.ProjectID,
		project.Name,
		project.Description,
		project.CreatedAt,
		project.UpdatedAt,
	).Scan(&project.ID)

	if err != nil {
		if IsPgDuplicateError(err) {
			return domain.NewConflict("a project with this project_id already exists", "project_id", "project_id_exists")
		}
		return fmt.Errorf("create project: %w", err)
	}

	return nil
}

// GetByProjectID retrieves a project by its client-facing identifier
func (r *PostgresProjectRepository) GetByProjectID(ctx context.Context, projectID string) (*models.Project, error) {
	query := fmt.Sprintf(`
		SELECT id, project_id, name, description, created_at, updated_at
		FROM %s
		WHERE project_id = $1
	`, r.tables.Projects)

	var project models.Project
	executor := GetExecutor(ctx, r.pool)
	err := executor.QueryRow(ctx, query, projectID).Scan(
		&project.ID,
		&project.ProjectID,
		&project.Name,
		&project.Description,
		&project.CreatedAt,
		&project.UpdatedAt,
	)

	if err != nil {
		if IsPgNoRowsError(err) {
			return nil, domain.NewNotFound(fmt.Sprintf("project with project_id '%s' not found", projectID))
		}
		return nil, fmt.Errorf("get project: %w", err)
	}

	return &project, nil
}

// List retrieves a page of projects in insertion order
func (r *PostgresProjectRepository) List(ctx context.Context, skip, limit int) ([]models.Project, error) {
	query := fmt.Sprintf(`
		SELECT id, project_id, name, description, created_at, updated_at
		FROM %s
		ORDER BY id
		OFFSET $1 LIMIT $2
	`, r.tables.Projects)

	executor := GetExecutor(ctx, r.pool)
	rows, err := executor.Query(ctx, query, skip, limit)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	defer rows.Close()

	var projects []models.Project
	for rows.Next() {
		var project models.Project
		err := rows.Scan(
			&project.ID,
			&project.ProjectID,
			&project.Name,
			&project.Description,
			&project.CreatedAt,
			&project.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan project: %w", err)
		}
		projects = append(projects, project)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate projects: %w", err)
	}

	if projects == nil {
		projects = []models.Project{}
	}

	return projects, nil
}

// Count returns the total number of projects
func (r *PostgresProjectRepository) Count(ctx context.Context) (int, error) {
	query := fmt.Sprintf(`SELECT COUNT(*) FROM %s`, r.tables.Projects)

	var total int
	executor := GetExecutor(ctx, r.pool)
	if err := executor.QueryRow(ctx, query).Scan(&total); err != nil {
		return 0, fmt.Errorf("count projects: %w", err)
	}

	return total, nil
}

// Update persists changed fields and the bumped updated_at timestamp
func (r *PostgresProjectRepository) Update(ctx context.Context, project *models.Project) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET name = $1, description = $2, updated_at = $3
		WHERE project_id = $4
	`, r.tables.Projects)

	executor := GetExecutor(ctx, r.pool)
	result, err := executor.Exec(ctx, query,
		project.Name,
		project.Description,
		project.UpdatedAt,
		project.ProjectID,
	)

	if err != nil {
		if IsPgDuplicateError(err) {
			return domain.NewConflict("a project with this project_id already exists", "project_id", "project_id_exists")
		}
		return fmt.Errorf("update project: %w", err)
	}

	if result.RowsAffected() == 0 {
		return domain.NewNotFound(fmt.Sprintf("project with project_id '%s' not found", project.ProjectID))
	}

	return nil
}

// Delete removes a project; membership rows cascade at the store
func (r *PostgresProjectRepository) Delete(ctx context.Context, projectID string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE project_id = $1`, r.tables.Projects)

	executor := GetExecutor(ctx, r.pool)
	result, err := executor.Exec(ctx, query, projectID)
	if err != nil {
		return fmt.Errorf("delete project: %w", err)
	}

	if result.RowsAffected() == 0 {
		return domain.NewNotFound(fmt.Sprintf("project with project_id '%s' not found", projectID))
	}

	return nil
}
