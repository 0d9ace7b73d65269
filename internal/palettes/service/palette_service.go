package service

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/GoSim-25-26J-441/color-picker-backend/internal/apperr"
	"github.com/GoSim-25-26J-441/color-picker-backend/internal/palettes/domain"
)

const (
	MsgPaletteMissing = "Could not find matching palette!"
	MsgProjectMissing = "Could not find matching project!"
	MsgNoColors       = "Expected at least one of color_1, color_2, color_3, color_4, color_5!"
	MsgColorUpdated   = "Color updated"

	createFormat = "Expected { project_id: <int>, palette_name: <string>, color_1: <string>, color_2: <string>, color_3: <string>, color_4: <string>, color_5: <string> }"
)

// MissingFieldMessage is the create error naming the first absent field.
func MissingFieldMessage(field string) string {
	return fmt.Sprintf("%s Missing %s!", createFormat, field)
}

// InvalidBodyMessage is the create error for a body that is not a palette.
func InvalidBodyMessage() string {
	return createFormat + " Invalid body!"
}

// NoSuchPaletteMessage is the patch error for an unknown id.
func NoSuchPaletteMessage(id string) string {
	return "No existing palette with id of " + id
}

// Repository is the query gateway the service needs for palettes.
type Repository interface {
	List(ctx context.Context) ([]domain.Palette, error)
	ListByProject(ctx context.Context, projectID int64) ([]domain.Palette, error)
	GetByID(ctx context.Context, id int64) (*domain.Palette, error)
	Exists(ctx context.Context, id int64) (bool, error)
	Create(ctx context.Context, in domain.NewPalette) (int64, error)
	UpdateColors(ctx context.Context, id int64, patch domain.ColorPatch) error
	Delete(ctx context.Context, id int64) (bool, error)
}

// ProjectLookup answers whether a project exists.
type ProjectLookup interface {
	Exists(ctx context.Context, id int64) (bool, error)
}

// PaletteService handles palette validation and mutation flows
type PaletteService struct {
	repo     Repository
	projects ProjectLookup
}

// NewPaletteService creates a new palette service
func NewPaletteService(repo Repository, projects ProjectLookup) *PaletteService {
	return &PaletteService{repo: repo, projects: projects}
}

func (s *PaletteService) List(ctx context.Context) ([]domain.Palette, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, apperr.Backend(err)
	}
	return items, nil
}

// ListByProject returns a project's palettes, or NotFound for an unknown
// project.
func (s *PaletteService) ListByProject(ctx context.Context, projectID int64) ([]domain.Palette, error) {
	ok, err := s.projects.Exists(ctx, projectID)
	if err != nil {
		return nil, apperr.From(err)
	}
	if !ok {
		return nil, apperr.NotFound(MsgProjectMissing)
	}

	items, err := s.repo.ListByProject(ctx, projectID)
	if err != nil {
		return nil, apperr.Backend(err)
	}
	return items, nil
}

func (s *PaletteService) Get(ctx context.Context, id int64) (*domain.Palette, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperr.NotFound(MsgPaletteMissing)
		}
		return nil, apperr.Backend(err)
	}
	return p, nil
}

// Create checks the seven required fields in their fixed order and reports
// only the first one missing. Fields listed in malformed were sent with the
// wrong JSON type; they count as present for that check and then reject the
// body as invalid. The referenced project is not looked up.
func (s *PaletteService) Create(ctx context.Context, in domain.NewPalette, malformed ...string) (int64, error) {
	if field := firstMissing(in, malformed); field != "" {
		return 0, apperr.Validation(MissingFieldMessage(field))
	}
	if len(malformed) > 0 {
		return 0, apperr.Validation(InvalidBodyMessage())
	}

	id, err := s.repo.Create(ctx, in)
	if err != nil {
		return 0, apperr.Backend(err)
	}
	return id, nil
}

// PatchColors confirms the palette exists, then writes all present colors
// with a single update.
func (s *PaletteService) PatchColors(ctx context.Context, id int64, patch domain.ColorPatch) error {
	notFound := apperr.NotFound(NoSuchPaletteMessage(fmt.Sprint(id)))

	ok, err := s.repo.Exists(ctx, id)
	if err != nil {
		return apperr.Backend(err)
	}
	if !ok {
		return notFound
	}

	if len(patch.Columns()) == 0 {
		return apperr.Validation(MsgNoColors)
	}

	if err := s.repo.UpdateColors(ctx, id, patch); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return notFound
		}
		return apperr.Backend(err)
	}
	return nil
}

// Delete removes the palette if present. Absence is not an error.
func (s *PaletteService) Delete(ctx context.Context, id int64) error {
	if _, err := s.repo.Delete(ctx, id); err != nil {
		return apperr.Backend(err)
	}
	return nil
}

func firstMissing(in domain.NewPalette, malformed []string) string {
	required := [...]struct {
		name    string
		missing bool
	}{
		{"project_id", in.ProjectID == 0},
		{"palette_name", in.PaletteName == ""},
		{"color_1", in.Color1 == ""},
		{"color_2", in.Color2 == ""},
		{"color_3", in.Color3 == ""},
		{"color_4", in.Color4 == ""},
		{"color_5", in.Color5 == ""},
	}
	for _, f := range required {
		if f.missing && !slices.Contains(malformed, f.name) {
			return f.name
		}
	}
	return ""
}
