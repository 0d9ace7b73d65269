package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/GoSim-25-26J-441/color-picker-backend/internal/api/http/respond"
	"github.com/GoSim-25-26J-441/color-picker-backend/internal/apperr"
	"github.com/GoSim-25-26J-441/color-picker-backend/internal/projects/service"
)

func (h *Handler) list(c *gin.Context) {
	items, err := h.svc.List(c.Request.Context())
	if err != nil {
		respond.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *Handler) get(c *gin.Context) {
	id, ok := respond.ID(c, "id")
	if !ok {
		respond.Error(c, apperr.NotFound(service.MsgProjectMissing))
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
	// An unreadable body is reported as a missing name.
	var req createReq
	_ = c.ShouldBindJSON(&req)

	id, err := h.svc.Create(c.Request.Context(), req.Name)
	if err != nil {
		respond.Error(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

func (h *Handler) rename(c *gin.Context) {
	id, ok := respond.ID(c, "id")
	if !ok {
		respond.Error(c, apperr.NotFound(service.MsgNoSuchProject))
		return
	}

	var req renameReq
	_ = c.ShouldBindJSON(&req)

	name, err := h.svc.Rename(c.Request.Context(), id, req.Name)
	if err != nil {
		respond.Error(c, err)
		return
	}
	c.JSON(http.StatusAccepted, gin.H{"message": `Project name changed to "` + name + `"`})
}

func (h *Handler) delete(c *gin.Context) {
	// Deleting an id that is not stored, or not even a number, still succeeds.
	if id, ok := respond.ID(c, "id"); ok {
		if err := h.svc.Delete(c.Request.Context(), id); err != nil {
			respond.Error(c, err)
			return
		}
	}
	c.JSON(http.StatusAccepted, gin.H{"message": "Successfully deleted project"})
}
