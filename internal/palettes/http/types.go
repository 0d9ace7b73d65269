package http

import "github.com/GoSim-25-26J-441/color-picker-backend/internal/palettes/service"

// Handler bundles the dependencies for palettes HTTP endpoints.
type Handler struct {
	svc *service.PaletteService
}

func New(svc *service.PaletteService) *Handler {
	return &Handler{svc: svc}
}
