package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"
	"teamdir/internal/domain"
	"teamdir/internal/domain/models"
	"teamdir/internal/domain/repositories"
)

// PostgresUserRepository implements the UserRepository interface
type PostgresUserRepository struct {
	pool   *pgxpool.Pool
	tables *TableNames
}

// NewUserRepository creates a new user repository
func NewUserRepository(config *RepositoryConfig) repositories.UserRepository {
	return &PostgresUserRepository{
		pool:   config.Pool,
		tables: config.Tables,
	}
}

// Create inserts a new user
func (r *PostgresUserRepository) Create(ctx context.Context, user *models.User) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (user_id, given_name, family_name, email, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`, r.tables.Users)

	executor := GetExecutor(ctx, r.pool)
	err := executor.QueryRow(ctx, query,
		user.UserID,
		user.GivenName,
		user.FamilyName,
		user.Email,
		user.CreatedAt,
		user.UpdatedAt,
	).Scan(&user.ID)

	if err != nil {
		if IsPgDuplicateError(err) {
			return r.conflictError(err)
		}
		return fmt.Errorf("create user: %w", err)
	}

	return nil
}

// GetByUserID retrieves a user by its client-facing identifier
func (r *PostgresUserRepository) GetByUserID(ctx context.Context, userID string) (*models.User, error) {
	query := fmt.Sprintf(`
		SELECT id, user_id, given_name, family_name, email, created_at, updated_at
		FROM %s
		WHERE user_id = $1
	`, r.tables.Users)

	var user models.User
	executor := GetExecutor(ctx, r.pool)
	err := executor.QueryRow(ctx, query, userID).Scan(
		&user.ID,
		&user.UserID,
		&user.GivenName,
		&user.FamilyName,
		&user.Email,
		&user.CreatedAt,
		&user.UpdatedAt,
	)

	if err != nil {
		if IsPgNoRowsError(err) {
			return nil, domain.NewNotFound(fmt.Sprintf("user with user_id '%s' not found", userID))
		}
		return nil, fmt.Errorf("get user: %w", err)
	}

	return &user, nil
}

// GetByEmail retrieves a user by email
func (r *PostgresUserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	query := fmt.Sprintf(`
		SELECT id, user_id, given_name, family_name, email, created_at, updated_at
		FROM %s
		WHERE email = $1
	`, r.tables.Users)

	var user models.User
	executor := GetExecutor(ctx, r.pool)
	err := executor.QueryRow(ctx, query, email).Scan(
		&user.ID,
		&user.UserID,
		&user.GivenName,
		&user.FamilyName,
		&user.Email,
		&user.CreatedAt,
		&user.UpdatedAt,
	)

	if err != nil {
		if IsPgNoRowsError(err) {
			return nil, domain.NewNotFound(fmt.Sprintf("user with email '%s' not found", email))
		}
		return nil, fmt.Errorf("get user by email: %w", err)
	}

	return &user, nil
}

// List retrieves a page of users ordered by the surrogate key, which
// matches insertion order.
func (r *PostgresUserRepository) List(ctx context.Context, skip, limit int) ([]models.User, error) {
	query := fmt.Sprintf(`
		SELECT id, user_id, given_name, family_name, email, created_at, updated_at
		FROM %s
		ORDER BY id
		OFFSET $1 LIMIT $2
	`, r.tables.Users)

	executor := GetExecutor(ctx, r.pool)
	rows, err := executor.Query(ctx, query, skip, limit)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
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
			return nil, fmt.Errorf("scan user: %w", err)
		}
		users = append(users, user)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate users: %w", err)
	}

	// Return empty slice instead of nil if no users
	if users == nil {
		users = []models.User{}
	}

	return users, nil
}

// Count returns the total number of users
func (r *PostgresUserRepository) Count(ctx context.Context) (int, error) {
	query := fmt.Sprintf(`SELECT COUNT(*) FROM %s`, r.tables.Users)

	var total int
	executor := GetExecutor(ctx, r.pool)
	if err := executor.QueryRow(ctx, query).Scan(&total); err != nil {
		return 0, fmt.Errorf("count users: %w", err)
	}

	return total, nil
}

// Update persists changed fields and the bumped updated_at timestamp
func (r *PostgresUserRepository) Update(ctx context.Context, user *models.User) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET given_name = $1, family_name = $2, email = $3, updated_at = $4
		WHERE user_id = $5
	`, r.tables.Users)

	executor := GetExecutor(ctx, r.pool)
	result, err := executor.Exec(ctx, query,
		user.GivenName,
		user.FamilyName,
		user.Email,
		user.UpdatedAt,
		user.UserID,
	)

	if err != nil {
		if IsPgDuplicateError(err) {
			return r.conflictError(err)
		}
		return fmt.Errorf("update user: %w", err)
	}

	if result.RowsAffected() == 0 {
		return domain.NewNotFound(fmt.Sprintf("user with user_id '%s' not found", user.UserID))
	}

	return nil
}

// Delete removes a user; membership rows cascade at the store
func (r *PostgresUserRepository) Delete(ctx context.Context, userID string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE user_id = $1`, r.tables.Users)

	executor := GetExecutor(ctx, r.pool)
	result, err := executor.Exec(ctx, query, userID)
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}

	if result.RowsAffected() == 0 {
		return domain.NewNotFound(fmt.Sprintf("user with user_id '%s' not found", userID))
	}

	return nil
}

// conflictError attributes a unique violation to the offending field by
// constraint name. This is the race-tolerant fallback for the service
// layer's pre-flight uniqueness checks.
func (r *PostgresUserRepository) conflictError(err error) error {
	if strings.Contains(ConstraintName(err), "email") {
		return domain.NewConflict("a user with this email already exists", "email", "email_exists")
	}
	return domain.NewConflict("a user with this user_id already exists", "user_id", "user_id_exists")
}
