package app

import (
	"github.com/strandlab/strand-backend/internal/logger"
	"github.com/strandlab/strand-backend/internal/services"
)

type Services struct {
	Tracker      services.TrackerService
	Treatment    services.TreatmentService
	TreatmentLog services.TreatmentLogService
	SideEffect   services.SideEffectService
}

func wireServices(log *logger.Logger, reposet Repos) Services {
	log.Info("Wiring services...")
	return Services{
		Tracker:      services.NewTrackerService(log, reposet.Routine, reposet.Treatment, reposet.TreatmentLog, reposet.LegacyRoutine),
		Treatment:    services.NewTreatmentService(log, reposet.Routine, reposet.Treatment),
		TreatmentLog: services.NewTreatmentLogService(log, reposet.Routine, reposet.Treatment, reposet.TreatmentLog),
		SideEffect:   services.NewSideEffectService(log, reposet.Routine, reposet.SideEffectLog),
	}
}
