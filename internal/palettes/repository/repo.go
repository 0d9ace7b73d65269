package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/GoSim-25-26J-441/color-picker-backend/internal/palettes/domain"
)

const paletteColumns = `id, project_id, palette_name, color_1, color_2, color_3, color_4, color_5, created_at, updated_at`

// PaletteRepository provides persistence operations for palettes
type PaletteRepository struct {
	db *sql.DB
}

// NewPaletteRepository creates a new palette repository
func NewPaletteRepository(db *sql.DB) *PaletteRepository {
	return &PaletteRepository{db: db}
}

type scanner interface {
	Scan(dest ...any) error
}

func scanPalette(s scanner) (domain.Palette, error) {
	var p domain.Palette
	err := s.Scan(&p.ID, &p.ProjectID, &p.PaletteName,
		&p.Color1, &p.Color2, &p.Color3, &p.Color4, &p.Color5,
		&p.CreatedAt, &p.UpdatedAt)
	return p, err
}

func (r *PaletteRepository) query(ctx context.Context, q string, args ...any) ([]domain.Palette, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]domain.Palette, 0, 16)
	for rows.Next() {
		p, err := scanPalette(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// List returns every palette in insertion order.
func (r *PaletteRepository) List(ctx context.Context) ([]domain.Palette, error) {
	return r.query(ctx, `SELECT `+paletteColumns+` FROM palettes ORDER BY id;`)
}

// ListByProject returns the palettes referencing a project.
func (r *PaletteRepository) ListByProject(ctx context.Context, projectID int64) ([]domain.Palette, error) {
	return r.query(ctx, `SELECT `+paletteColumns+` FROM palettes WHERE project_id = $1 ORDER BY id;`, projectID)
}

// GetByID returns domain.ErrNotFound when no row matches.
func (r *PaletteRepository) GetByID(ctx context.Context, id int64) (*domain.Palette, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+paletteColumns+` FROM palettes WHERE id = $1;`, id)
	p, err := scanPalette(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *PaletteRepository) Exists(ctx context.Context, id int64) (bool, error) {
	const q = `SELECT EXISTS (SELECT 1 FROM palettes WHERE id = $1);`
	var ok bool
	if err := r.db.QueryRowContext(ctx, q, id).Scan(&ok); err != nil {
		return false, err
	}
	return ok, nil
}

// Create inserts a palette and returns its generated id.
func (r *PaletteRepository) Create(ctx context.Context, in domain.NewPalette) (int64, error) {
	const q = `
INSERT INTO palettes (project_id, palette_name, color_1, color_2, color_3, color_4, color_5)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING id;
`
	var id int64
	err := r.db.QueryRowContext(ctx, q,
		in.ProjectID, in.PaletteName, in.Color1, in.Color2, in.Color3, in.Color4, in.Color5,
	).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

// UpdateColors applies every present color of the patch in one statement.
func (r *PaletteRepository) UpdateColors(ctx context.Context, id int64, patch domain.ColorPatch) error {
	cols := patch.Columns()
	if len(cols) == 0 {
		return fmt.Errorf("update colors: empty patch")
	}

	sets := make([]string, 0, len(cols)+1)
	args := make([]any, 0, len(cols)+1)
	for i, c := range cols {
		sets = append(sets, fmt.Sprintf("%s = $%d", c.Column, i+1))
		args = append(args, c.Value)
	}
	sets = append(sets, "updated_at = now()")
	args = append(args, id)

	q := fmt.Sprintf("UPDATE palettes SET %s WHERE id = $%d;", strings.Join(sets, ", "), len(args))
	result, err := r.db.ExecContext(ctx, q, args...)
	if err != nil {
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

func (r *PaletteRepository) Delete(ctx context.Context, id int64) (bool, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM palettes WHERE id = $1;`, id)
	if err != nil {
		return false, err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return rowsAffected > 0, nil
}

// FindOrphans returns the ids of palettes whose project no longer exists.
func (r *PaletteRepository) FindOrphans(ctx context.Context) ([]int64, error) {
	const q = `
SELECT pa.id
FROM palettes pa
LEFT JOIN projects pr ON pr.id = pa.project_id
WHERE pr.id IS NULL
ORDER BY pa.id;
`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
