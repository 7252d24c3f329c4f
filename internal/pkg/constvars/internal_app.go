package constvars

const (
	AppEnvironmentProduction  = "production"
	AppEnvironmentDevelopment = "development"

	ResponseUnknown = "unknown"

	// ResponseScaleMin and ResponseScaleMax bound every assessment answer.
	ResponseScaleMin = 0
	ResponseScaleMax = 3

	MoodScaleMin = 0
	MoodScaleMax = 10

	MoodLogDateFormat = "2006-01-02"
)
