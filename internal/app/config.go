package app

import (
	"github.com/strandlab/strand-backend/internal/logger"
	"github.com/strandlab/strand-backend/internal/utils"
)

type Config struct {
	ServiceName string
	Environment string
	Port        string
}

func LoadConfig(log *logger.Logger) Config {
	serviceName := utils.GetEnv("SERVICE_NAME", "strand-backend", log)
	environment := utils.GetEnv("APP_ENV", "development", log)
	port := utils.GetEnv("SERVER_PORT", "8080", log)
	return Config{
		ServiceName: serviceName,
		Environment: environment,
		Port:        port,
	}
}
