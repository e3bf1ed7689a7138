package routes

import (
	"github.com/apptrackhq/apptrack-go/internal/api/handlers"
	"github.com/apptrackhq/apptrack-go/internal/api/middleware"
	"github.com/apptrackhq/apptrack-go/internal/application"
	"github.com/apptrackhq/apptrack-go/internal/config"
	"github.com/apptrackhq/apptrack-go/internal/repository"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// RegisterRoutes wires repositories, services and handlers onto the
// router. The database handle is injected; nothing here owns global
// connection state.
func RegisterRoutes(r *gin.Engine, gdb *gorm.DB) {
	repos := repository.NewRepositories(gdb)
	services := application.New(repos)
	h := handlers.New(services)

	api := r.Group("/api")
	if config.MultiTenant {
		api.Use(middleware.JWTAuthMiddleware())
	}

	jobs := api.Group("/jobs")
	{
		jobs.GET("", h.Job.ListJobs)
		jobs.GET("/:id", h.Job.GetJob)
		jobs.POST("", h.Job.CreateJob)
		jobs.PUT("/:id", h.Job.UpdateJob)
		jobs.DELETE("/:id", h.Job.DeleteJob)
	}
}
