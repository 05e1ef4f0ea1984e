package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"teamdir/internal/domain/models"
	"teamdir/internal/domain/repositories"
)

// PostgresMembershipRepository implements the MembershipRepository interface
type PostgresMembershipRepository struct {
	pool   *pgxpool.Pool
	tables *TableNames
}

// NewMembershipRepository creates a new membership repository
func NewMembershipRepository(config *RepositoryConfig) repositories.MembershipRepository {
	return &PostgresMembershipRepository{
		pool:   config.Pool,
		tables: config.Tables,
	}
}

// Add links a user to a project. ON CONFLICT DO NOTHING makes the
// duplicate case a no-op instead of a constraint error.
func (r *PostgresMembershipRepository) Add(ctx context.Context, userID, projectID int64) (bool, error) {
	query := fmt.Sprintf(`
		INSERT INTO %s (user_id, project_id)
		VALUES ($1, $2)
		ON CONFLICT (user_id, project_id) DO NOTHING
	`, r.tables.ProjectMembers)

	executor := GetExecutor(ctx, r.pool)
	result, err := executor.Exec(ctx, query, userID, projectID)
	if err != nil {
		return false, fmt.Errorf("add membership: %w", err)
	}

	return result.RowsAffected() > 0, nil
}

// Remove unlinks a user from a project
func (r *PostgresMembershipRepository) Remove(ctx context.Context, userID, projectID int64) (bool, error) {
	query := fmt.Sprintf(`
		DELETE FROM %s
		WHERE user_id = $1 AND project_id = $2
	`, r.tables.ProjectMembers)

	executor := GetExecutor(ctx, r.pool)
	result, err := executor.Exec(ctx, query, userID, projectID)
	if err != nil {
		return false, fmt.Errorf("remove membership: %w", err)
	}

	return result.RowsAffected() > 0, nil
}

// ListUsersByProject returns the members of a project in store order
func (r *PostgresMembershipRepository) ListUsersByProject(ctx context.Context, projectID int64) ([]models.User, error) {
	query := fmt.Sprintf(`
		SELECT u.id, u.user_id, u.given_name, u.family_name, u.email, u.created_at, u.updated_at
		FROM %s u
		JOIN %s m ON m.user_id = u.id
		WHERE m.project_id = $1
		ORDER BY u.id
	`, r.tables.Users, r.tables.ProjectMembers)

	executor := GetExecutor(ctx, r.pool)
	rows, err := executor.Query(ctx, query, projectID)
	if err != nil {
		return nil, fmt.Errorf("list project members: %w", err)
	}
	defer rows.Close()

	var users []models.User
	for rows.Next() {
		var user models.User
		err := rows.Scan(
			&user.ID,
			&user.UserID,
			&user.GivenName,
			&user.FamilyName,
			&user.Email,
			&user.CreatedAt,
			&user.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan member: %w", err)
		}
		users = append(users, user)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate members: %w", err)
	}

	if users == nil {
		users = []models.User{}
	}

	return users, nil
}

// ListProjectsByUser returns the projects a user belongs to in store order
func (r *PostgresMembershipRepository) ListProjectsByUser(ctx context.Context, userID int64) ([]models.Project, error) {
	query := fmt.Sprintf(`
		SELECT p.id, p.project_id, p.name, p.description, p.created_at, p.updated_at
		FROM %s p
		JOIN %s m ON m.project_id = p.id
		WHERE m.user_id = $1
		ORDER BY p.id
	`, r.tables.Projects, r.tables.ProjectMembers)

	executor := GetExecutor(ctx, r.pool)
	rows, err := executor.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list user projects: %w", err)
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
