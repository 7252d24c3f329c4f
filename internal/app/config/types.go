package config

type (
	DriverConfig struct {
		Logger Logger
	}

	Logger struct {
		Level               string
		OutputFileName      string
		OutputErrorFileName string
	}

	InternalConfig struct {
		App        App
		Assessment Assessment
	}

	App struct {
		Env                            string
		Port                           string
		Version                        string
		EndpointPrefix                 string
		Timezone                       string
		MaxRequests                    int
		ShutdownTimeoutInSeconds       int
		RequestTimeoutInSeconds        int
		RequestBodyLimitInKilobyte     int
		CORSAllowedOrigins             []string
		SubmissionMaxRequestsPerMinute int
		SubmissionBlockTimeInSeconds   int
	}

	Assessment struct {
		DefinitionsPath string
	}
)
