package service

import (
	"context"
	"errors"
	"strings"

	"github.com/GoSim-25-26J-441/color-picker-backend/internal/apperr"
	"github.com/GoSim-25-26J-441/color-picker-backend/internal/projects/domain"
)

const (
	MsgMissingName    = "Expected format { name: <string> }, missing name!"
	MsgDuplicateName  = "Project with that name already exists!"
	MsgProjectMissing = "Could not find matching project!"
	MsgNoSuchProject  = "No existing matching project"
)

// Repository is the query gateway the service needs for projects.
type Repository interface {
	List(ctx context.Context) ([]domain.Project, error)
	GetByID(ctx context.Context, id int64) (*domain.Project, error)
	Exists(ctx context.Context, id int64) (bool, error)
	CreateUnique(ctx context.Context, name string) (int64, error)
	Rename(ctx context.Context, id int64, newName string) error
	Delete(ctx context.Context, id int64) (bool, error)
}

// ProjectService handles project validation and the check-then-mutate flows
type ProjectService struct {
	repo Repository
}

// NewProjectService creates a new project service
func NewProjectService(repo Repository) *ProjectService {
	return &ProjectService{
		repo: repo,
	}
}

// List returns all projects
func (s *ProjectService) List(ctx context.Context) ([]domain.Project, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, apperr.Backend(err)
	}
	return items, nil
}

// Get returns a single project by id
func (s *ProjectService) Get(ctx context.Context, id int64) (*domain.Project, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperr.NotFound(MsgProjectMissing)
		}
		return nil, apperr.Backend(err)
	}
	return p, nil
}

// Exists reports whether a project with the id is stored.
func (s *ProjectService) Exists(ctx context.Context, id int64) (bool, error) {
	ok, err := s.repo.Exists(ctx, id)
	if err != nil {
		return false, apperr.Backend(err)
	}
	return ok, nil
}

// Create validates the name and inserts the project when the name is free.
// The name is stored as sent; whitespace only matters for the blank check.
func (s *ProjectService) Create(ctx context.Context, name string) (int64, error) {
	if strings.TrimSpace(name) == "" {
		return 0, apperr.Validation(MsgMissingName)
	}

	id, err := s.repo.CreateUnique(ctx, name)
	if err != nil {
		if errors.Is(err, domain.ErrNameTaken) {
			return 0, apperr.Conflict(MsgDuplicateName, err)
		}
		return 0, apperr.Backend(err)
	}
	return id, nil
}

// Rename confirms the project exists, then renames it. A name held by
// another project is rejected the same way as on create.
func (s *ProjectService) Rename(ctx context.Context, id int64, newName string) (string, error) {
	ok, err := s.repo.Exists(ctx, id)
	if err != nil {
		return "", apperr.Backend(err)
	}
	if !ok {
		return "", apperr.NotFound(MsgNoSuchProject)
	}

	if strings.TrimSpace(newName) == "" {
		return "", apperr.Validation(MsgMissingName)
	}

	if err := s.repo.Rename(ctx, id, newName); err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			return "", apperr.NotFound(MsgNoSuchProject)
		case errors.Is(err, domain.ErrNameTaken):
			return "", apperr.Conflict(MsgDuplicateName, err)
		default:
			return "", apperr.Backend(err)
		}
	}
	return newName, nil
}

// Delete removes the project if present. Absence is not an error.
func (s *ProjectService) Delete(ctx context.Context, id int64) error {
	if _, err := s.repo.Delete(ctx, id); err != nil {
		return apperr.Backend(err)
	}
	return nil
}
