package app

import (
	"gorm.io/gorm"

	"github.com/strandlab/strand-backend/internal/logger"
	"github.com/strandlab/strand-backend/internal/repos"
)

type Repos struct {
	Routine       repos.RoutineRepo
	Treatment     repos.TreatmentRepo
	TreatmentLog  repos.TreatmentLogRepo
	SideEffectLog repos.SideEffectLogRepo
	LegacyRoutine repos.LegacyRoutineRepo
}

func wireRepos(db *gorm.DB, log *logger.Logger) Repos {
	log.Info("Wiring repos...")
	return Repos{
		Routine:       repos.NewRoutineRepo(db, log),
		Treatment:     repos.NewTreatmentRepo(db, log),
		TreatmentLog:  repos.NewTreatmentLogRepo(db, log),
		SideEffectLog: repos.NewSideEffectLogRepo(db, log),
		LegacyRoutine: repos.NewLegacyRoutineRepo(db, log),
	}
}
