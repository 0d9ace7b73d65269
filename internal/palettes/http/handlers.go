package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/GoSim-25-26J-441/color-picker-backend/internal/api/http/respond"
	"github.com/GoSim-25-26J-441/color-picker-backend/internal/apperr"
	"github.com/GoSim-25-26J-441/color-picker-backend/internal/palettes/domain"
	"github.com/GoSim-25-26J-441/color-picker-backend/internal/palettes/service"
)

func (h *Handler) list(c *gin.Context) {
	items, err := h.svc.List(c.Request.Context())
	if err != nil {
		respond.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *Handler) listByProject(c *gin.Context) {
	projectID, ok := respond.ID(c, "id")
	if !ok {
		respond.Error(c, apperr.NotFound(service.MsgProjectMissing))
		return
	}

	items, err := h.svc.ListByProject(c.Request.Context(), projectID)
	if err != nil {
		respond.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *Handler) get(c *gin.Context) {
	id, ok := respond.ID(c, "id")
	if !ok {
		respond.Error(c, apperr.NotFound(service.MsgPaletteMissing))
		return
	}

	p, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		respond.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *Handler) create(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		respond.Error(c, apperr.Validation(service.InvalidBodyMessage()))
		return
	}
	req, malformed, err := decodeNewPalette(body)
	if err != nil {
		respond.Error(c, apperr.Validation(service.InvalidBodyMessage()))
		return
	}

	id, err := h.svc.Create(c.Request.Context(), req, malformed...)
	if err != nil {
		respond.Error(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

func (h *Handler) patchColors(c *gin.Context) {
	id, ok := respond.ID(c, "id")
	if !ok {
		respond.Error(c, apperr.NotFound(service.NoSuchPaletteMessage(c.Param("id"))))
		return
	}

	// A body that does not decode cleanly sets no colors.
	var patch domain.ColorPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		patch = domain.ColorPatch{}
	}

	if err := h.svc.PatchColors(c.Request.Context(), id, patch); err != nil {
		respond.Error(c, err)
		return
	}
	c.JSON(http.StatusAccepted, gin.H{"message": service.MsgColorUpdated})
}

func (h *Handler) delete(c *gin.Context) {
	if id, ok := respond.ID(c, "id"); ok {
		if err := h.svc.Delete(c.Request.Context(), id); err != nil {
			respond.Error(c, err)
			return
		}
	}
	c.JSON(http.StatusAccepted, gin.H{"message": "Palette successfully deleted"})
}
