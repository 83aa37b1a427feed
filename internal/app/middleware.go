package app

import (
	"github.com/strandlab/strand-backend/internal/logger"
	"github.com/strandlab/strand-backend/internal/middleware"
)

type Middleware struct {
	Auth *middleware.AuthMiddleware
}

func wireMiddleware(log *logger.Logger) Middleware {
	log.Info("Wiring middleware...")
	return Middleware{
		Auth: middleware.NewAuthMiddleware(log),
	}
}
