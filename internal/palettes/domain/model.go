package domain

import (
	"errors"
	"time"
)

var ErrNotFound = errors.New("palette not found")

// Palette holds five color values tied to a project.
type Palette struct {
	ID          int64     `json:"id"`
	ProjectID   int64     `json:"project_id"`
	PaletteName string    `json:"palette_name"`
	Color1      string    `json:"color_1"`
	Color2      string    `json:"color_2"`
	Color3      string    `json:"color_3"`
	Color4      string    `json:"color_4"`
	Color5      string    `json:"color_5"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// NewPalette is the insert payload. Zero values mean "not provided".
type NewPalette struct {
	ProjectID   int64  `json:"project_id"`
	PaletteName string `json:"palette_name"`
	Color1      string `json:"color_1"`
	Color2      string `json:"color_2"`
	Color3      string `json:"color_3"`
	Color4      string `json:"color_4"`
	Color5      string `json:"color_5"`
}

// ColorPatch carries the subset of colors a patch request sets.
type ColorPatch struct {
	Color1 *string `json:"color_1"`
	Color2 *string `json:"color_2"`
	Color3 *string `json:"color_3"`
	Color4 *string `json:"color_4"`
	Color5 *string `json:"color_5"`
}

// ColorColumn pairs a palettes column with its new value.
type ColorColumn struct {
	Column string
	Value  string
}

// Columns returns the present colors in column order. Empty strings count
// as absent.
func (p ColorPatch) Columns() []ColorColumn {
	fields := [...]struct {
		column string
		value  *string
	}{
		{"color_1", p.Color1},
		{"color_2", p.Color2},
		{"color_3", p.Color3},
		{"color_4", p.Color4},
		{"color_5", p.Color5},
	}

	out := make([]ColorColumn, 0, len(fields))
	for _, f := range fields {
		if f.value != nil && *f.value != "" {
			out = append(out, ColorColumn{Column: f.column, Value: *f.value})
		}
	}
	return out
}
