package app

import (
	"github.com/gin-gonic/gin"

	"github.com/strandlab/strand-backend/internal/server"
)

func wireRouter(cfg Config, handlerset Handlers, middlewareset Middleware) *gin.Engine {
	return server.NewRouter(server.RouterConfig{
		ServiceName:         cfg.ServiceName,
		AuthMiddleware:      middlewareset.Auth,
		TrackerHandler:      handlerset.Tracker,
		TreatmentHandler:    handlerset.Treatment,
		TreatmentLogHandler: handlerset.TreatmentLog,
		SideEffectHandler:   handlerset.SideEffect,
	})
}
