package seed

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

//go:embed fixtures/default.yaml
var fixtures embed.FS

const colorsPerPalette = 5

type Fixture struct {
	Projects []ProjectFixture `yaml:"projects"`
}

type ProjectFixture struct {
	Name     string           `yaml:"name"`
	Palettes []PaletteFixture `yaml:"palettes"`
}

type PaletteFixture struct {
	Name   string   `yaml:"name"`
	Colors []string `yaml:"colors"`
}

type Result struct {
	Projects int
	Palettes int
}

// Load reads a fixture file, or the bundled default when path is empty.
func Load(path string) (*Fixture, error) {
	var (
		data []byte
		err  error
	)
	if path == "" {
		data, err = fixtures.ReadFile("fixtures/default.yaml")
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("read fixture: %w", err)
	}
	return Parse(data)
}

func Parse(data []byte) (*Fixture, error) {
	var f Fixture
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse fixture: %w", err)
	}
	if err := f.validate(); err != nil {
		return nil, err
	}
	return &f, nil
}

func (f *Fixture) validate() error {
	seen := make(map[string]bool, len(f.Projects))
	for i, p := range f.Projects {
		name := strings.TrimSpace(p.Name)
		if name == "" {
			return fmt.Errorf("projects[%d]: name is required", i)
		}
		if seen[name] {
			return fmt.Errorf("projects[%d]: duplicate name %q", i, name)
		}
		seen[name] = true

		for j, pal := range p.Palettes {
			if strings.TrimSpace(pal.Name) == "" {
				return fmt.Errorf("projects[%d].palettes[%d]: name is required", i, j)
			}
			if len(pal.Colors) != colorsPerPalette {
				return fmt.Errorf("projects[%d].palettes[%d]: want %d colors, got %d", i, j, colorsPerPalette, len(pal.Colors))
			}
			for k, c := range pal.Colors {
				if c == "" {
					return fmt.Errorf("projects[%d].palettes[%d]: color_%d is empty", i, j, k+1)
				}
			}
		}
	}
	return nil
}

// Apply replaces every project and palette with the fixture contents inside
// one transaction.
func Apply(ctx context.Context, db *sql.DB, f *Fixture, log *zap.Logger) (res Result, err error) {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return res, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if _, err = tx.ExecContext(ctx, `DELETE FROM palettes;`); err != nil {
		return res, fmt.Errorf("clear palettes: %w", err)
	}
	if _, err = tx.ExecContext(ctx, `DELETE FROM projects;`); err != nil {
		return res, fmt.Errorf("clear projects: %w", err)
	}

	for _, p := range f.Projects {
		var projectID int64
		err = tx.QueryRowContext(ctx,
			`INSERT INTO projects (name) VALUES ($1) RETURNING id;`, strings.TrimSpace(p.Name),
		).Scan(&projectID)
		if err != nil {
			return res, fmt.Errorf("insert project %q: %w", p.Name, err)
		}
		res.Projects++

		for _, pal := range p.Palettes {
			c := pal.Colors
			_, err = tx.ExecContext(ctx, `
INSERT INTO palettes (project_id, palette_name, color_1, color_2, color_3, color_4, color_5)
VALUES ($1, $2, $3, $4, $5, $6, $7);`,
				projectID, pal.Name, c[0], c[1], c[2], c[3], c[4])
			if err != nil {
				return res, fmt.Errorf("insert palette %q: %w", pal.Name, err)
			}
			res.Palettes++
		}
		log.Debug("seeded project", zap.String("name", p.Name), zap.Int64("id", projectID), zap.Int("palettes", len(p.Palettes)))
	}

	if err = tx.Commit(); err != nil {
		return res, err
	}
	return res, nil
}
