package constvars

const (
	LoggingRequestIDKey       = "request_id"
	LoggingIsClientRequestID  = "is_client_request_id"
	LoggingMethodKey          = "method"
	LoggingEndpointKey        = "endpoint"
	LoggingRemoteAddrKey      = "remote_addr"
	LoggingUserAgentKey       = "user_agent"
	LoggingQueryKey           = "query"
	LoggingStatusCodeKey      = "status_code"
	LoggingDurationKey        = "duration"
	LoggingSuccessKey         = "success"
	LoggingErrorCodeKey       = "error_code"
	LoggingErrorMessageKey    = "error_message"
	LoggingLocationKey        = "location"
	LoggingInstrumentKey      = "instrument"
	LoggingViewKey            = "view"
	LoggingTopicKey           = "topic"
	LoggingQuestionCountKey   = "question_count"
	LoggingResponseCountKey   = "response_count"
	LoggingAssessmentCountKey = "assessment_count"
	LoggingTotalScoreKey      = "total_score"
	LoggingSeverityBandKey    = "severity_band"
	LoggingMoodKey            = "mood"
	LoggingDefinitionsPathKey = "definitions_path"
)
