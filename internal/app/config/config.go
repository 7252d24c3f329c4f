package config

import (
	"mindcare-service/internal/pkg/constvars"
	"mindcare-service/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "info"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:                            utils.GetEnvString("APP_ENV", constvars.AppEnvironmentDevelopment),
			Port:                           utils.GetEnvString("APP_PORT", ":8080"),
			Version:                        utils.GetEnvString("APP_VERSION", "v1"),
			EndpointPrefix:                 utils.GetEnvString("APP_ENDPOINT_PREFIX", "api"),
			Timezone:                       utils.GetEnvString("APP_TIMEZONE", "UTC"),
			MaxRequests:                    utils.GetEnvInt("APP_MAX_REQUESTS", 10),
			ShutdownTimeoutInSeconds:       utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT_IN_SECONDS", 10),
			RequestTimeoutInSeconds:        utils.GetEnvInt("APP_REQUEST_TIMEOUT_IN_SECONDS", 10),
			RequestBodyLimitInKilobyte:     utils.GetEnvInt("APP_REQUEST_BODY_LIMIT_IN_KILOBYTE", 64),
			SubmissionMaxRequestsPerMinute: utils.GetEnvInt("APP_SUBMISSION_MAX_REQUESTS_PER_MINUTE", 30),
			SubmissionBlockTimeInSeconds:   utils.GetEnvInt("APP_SUBMISSION_BLOCK_TIME_IN_SECONDS", 60),
			CORSAllowedOrigins:             utils.GetEnvStringSlice("APP_CORS_ALLOWED_ORIGINS", []string{"*"}),
		},
		Assessment: Assessment{
			DefinitionsPath: utils.GetEnvString("ASSESSMENT_DEFINITIONS_PATH", "data/assessments.json"),
		},
	}
}
