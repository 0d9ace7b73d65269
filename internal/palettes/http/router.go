package http

import "github.com/gin-gonic/gin"

// Register attaches palette routes to the given router group.
func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.GET("", h.list)
	rg.GET("/:id", h.get)
	rg.POST("", h.create)
	rg.PATCH("/:id", h.patchColors)
	rg.DELETE("/:id", h.delete)
}

// RegisterProjectSubroutes attaches the palettes-of-a-project listing to the
// projects group, which owns the :id parameter.
func (h *Handler) RegisterProjectSubroutes(projects *gin.RouterGroup) {
	projects.GET("/:id/palettes", h.listByProject)
}
