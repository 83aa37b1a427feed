package app

import (
	"github.com/strandlab/strand-backend/internal/handlers"
	"github.com/strandlab/strand-backend/internal/logger"
)

type Handlers struct {
	Tracker      *handlers.TrackerHandler
	Treatment    *handlers.TreatmentHandler
	TreatmentLog *handlers.TreatmentLogHandler
	SideEffect   *handlers.SideEffectHandler
}

func wireHandlers(log *logger.Logger, serviceset Services) Handlers {
	log.Info("Wiring handlers...")
	return Handlers{
		Tracker:      handlers.NewTrackerHandler(serviceset.Tracker),
		Treatment:    handlers.NewTreatmentHandler(serviceset.Treatment),
		TreatmentLog: handlers.NewTreatmentLogHandler(serviceset.TreatmentLog),
		SideEffect:   handlers.NewSideEffectHandler(serviceset.SideEffect),
	}
}
