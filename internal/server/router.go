package server

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/strandlab/strand-backend/internal/handlers"
	"github.com/strandlab/strand-backend/internal/middleware"
)

type RouterConfig struct {
	ServiceName string

	AuthMiddleware *middleware.AuthMiddleware

	TrackerHandler      *handlers.TrackerHandler
	TreatmentHandler    *handlers.TreatmentHandler
	TreatmentLogHandler *handlers.TreatmentLogHandler
	SideEffectHandler   *handlers.SideEffectHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	r := gin.Default()

	serviceName := cfg.ServiceName
	if serviceName == "" {
		serviceName = "strand-backend"
	}
	r.Use(otelgin.Middleware(serviceName))

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:8081"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type", "X-Requested-With", "X-User-Id"},
		AllowCredentials: true,
	}))

	// Health
	r.GET("/healthcheck", handlers.HealthCheck)

	tracker := r.Group("/api/tracker")
	{
		if cfg.AuthMiddleware != nil {
			tracker.Use(cfg.AuthMiddleware.RequireUser())
		}

		if cfg.TrackerHandler != nil {
			tracker.GET("/routine", cfg.TrackerHandler.GetRoutine)
			tracker.POST("/routine", cfg.TrackerHandler.CreateRoutine)
			tracker.GET("/summary", cfg.TrackerHandler.GetSummary)
			tracker.GET("/heatmap", cfg.TrackerHandler.GetHeatmap)
		}

		if cfg.TreatmentHandler != nil {
			tracker.GET("/treatments", cfg.TreatmentHandler.List)
			tracker.POST("/treatments", cfg.TreatmentHandler.Create)
			tracker.PATCH("/treatments/:id", cfg.TreatmentHandler.Update)
			tracker.DELETE("/treatments/:id", cfg.TreatmentHandler.Delete)
		}

		if cfg.TreatmentLogHandler != nil {
			tracker.GET("/treatment-logs", cfg.TreatmentLogHandler.List)
			tracker.POST("/treatment-logs", cfg.TreatmentLogHandler.Upsert)
		}

		if cfg.SideEffectHandler != nil {
			tracker.GET("/side-effects", cfg.SideEffectHandler.List)
			tracker.POST("/side-effects", cfg.SideEffectHandler.Upsert)
		}
	}

	return r
}
