package routes

import (
	"database/sql"

	"github.com/gin-gonic/gin"

	palettehttp "github.com/GoSim-25-26J-441/color-picker-backend/internal/palettes/http"
	paletterepo "github.com/GoSim-25-26J-441/color-picker-backend/internal/palettes/repository"
	paletteservice "github.com/GoSim-25-26J-441/color-picker-backend/internal/palettes/service"
	projecthttp "github.com/GoSim-25-26J-441/color-picker-backend/internal/projects/http"
	projectrepo "github.com/GoSim-25-26J-441/color-picker-backend/internal/projects/repository"
	projectservice "github.com/GoSim-25-26J-441/color-picker-backend/internal/projects/service"
)

type V1Deps struct {
	DB *sql.DB
}

// RegisterV1 mounts the projects and palettes resources under api, which is
// expected to be the /api/v1 group.
func RegisterV1(api gin.IRouter, dep V1Deps) {
	projectRepo := projectrepo.NewProjectRepository(dep.DB)
	paletteRepo := paletterepo.NewPaletteRepository(dep.DB)

	projectSvc := projectservice.NewProjectService(projectRepo)

	projectHandler := projecthttp.New(projectSvc)
	paletteHandler := palettehttp.New(paletteservice.NewPaletteService(paletteRepo, projectSvc))

	projectsGroup := api.Group("/projects")
	projectHandler.Register(projectsGroup)
	paletteHandler.RegisterProjectSubroutes(projectsGroup)

	paletteHandler.Register(api.Group("/palettes"))
}
