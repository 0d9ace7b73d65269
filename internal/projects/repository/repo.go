package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/GoSim-25-26J-441/color-picker-backend/internal/projects/domain"
)

// ProjectRepository provides persistence operations for projects
type ProjectRepository struct {
	db *sql.DB
}

// NewProjectRepository creates a new project repository
func NewProjectRepository(db *sql.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

// List returns every project in insertion order.
func (r *ProjectRepository) List(ctx context.Context) ([]domain.Project, error) {
	const q = `
SELECT id, name, created_at, updated_at
FROM projects
ORDER BY id;
`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]domain.Project, 0, 16)
	for rows.Next() {
		var p domain.Project
		if err := rows.Scan(&p.ID, &p.Name, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// GetByID returns domain.ErrNotFound when no row matches.
func (r *ProjectRepository) GetByID(ctx context.Context, id int64) (*domain.Project, error) {
	const q = `
SELECT id, name, created_at, updated_at
FROM projects
WHERE id = $1;
`
	var p domain.Project
	err := r.db.QueryRowContext(ctx, q, id).Scan(&p.ID, &p.Name, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *ProjectRepository) Exists(ctx context.Context, id int64) (bool, error) {
	const q = `SELECT EXISTS (SELECT 1 FROM projects WHERE id = $1);`
	var ok bool
	if err := r.db.QueryRowContext(ctx, q, id).Scan(&ok); err != nil {
		return false, err
	}
	return ok, nil
}

// CreateUnique inserts a project unless one with the same name exists.
// The lookup and the insert share a transaction holding an advisory lock on
// the name, so concurrent creates of one name are serialised; the UNIQUE
// constraint backs this up.
func (r *ProjectRepository) CreateUnique(ctx context.Context, name string) (id int64, err error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if _, err = tx.ExecContext(ctx, `SELECT pg_advisory_xact_lock(hashtext($1));`, name); err != nil {
		return 0, fmt.Errorf("lock project name: %w", err)
	}

	var taken bool
	if err = tx.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM projects WHERE name = $1);`, name).Scan(&taken); err != nil {
		return 0, err
	}
	if taken {
		err = domain.ErrNameTaken
		return 0, err
	}

	const q = `
INSERT INTO projects (name)
VALUES ($1)
RETURNING id;
`
	if err = tx.QueryRowContext(ctx, q, name).Scan(&id); err != nil {
		if isUniqueViolation(err) {
			err = domain.ErrNameTaken
		}
		return 0, err
	}

	if err = tx.Commit(); err != nil {
		return 0, err
	}
	return id, nil
}

// Rename updates the project's name.
func (r *ProjectRepository) Rename(ctx context.Context, id int64, newName string) error {
	const q = `
UPDATE projects
SET name = $2, updated_at = now()
WHERE id = $1;
`
	result, err := r.db.ExecContext(ctx, q, id, newName)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrNameTaken
		}
		return err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete removes a project. Its palettes are left untouched.
func (r *ProjectRepository) Delete(ctx context.Context, id int64) (bool, error) {
	const q = `DELETE FROM projects WHERE id = $1;`
	result, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return false, err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return rowsAffected > 0, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pq.Error
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
