package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required": "is required",
	"min":      "must be at least %s",
	"max":      "must be at most %s",
	"gte":      "must be greater than or equal to %s",
	"lte":      "must be less than or equal to %s",
	"oneof":    "must be one of [%s]",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min":   true,
	"max":   true,
	"gte":   true,
	"lte":   true,
	"oneof": true,
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "cannot process request"
	ErrClientSomethingWrongWithApplication = "something wrong with application"
	ErrClientServerLongRespond             = "server took too long to respond"
	ErrClientTooManyRequests               = "too many requests, please slow down"
	ErrClientRequestBodyTooLarge           = "request body is too large"
	ErrClientInvalidResponses              = "responses are invalid for this assessment"
	ErrClientInvalidMood                   = "mood must be between 0 and 10"
	ErrClientUnknownInstrument             = "assessment not found"
	ErrClientUnknownView                   = "view not found"
	ErrClientUnknownTopic                  = "topic not found"
	ErrClientAssessmentsUnavailable        = "assessments are currently unavailable"
)

// Error messages for developers
const (
	ErrDevInvalidInput                 = "INVALID_INPUT"
	ErrDevValidationFailed             = "VALIDATION_FAILED"
	ErrDevCannotParseJSON              = "CANNOT_PARSE_JSON"
	ErrDevServerDeadlineExceeded       = "SERVER_DEADLINE_EXCEEDED"
	ErrDevRequestBodyTooLarge          = "REQUEST_BODY_TOO_LARGE"
	ErrDevUnknownInstrument            = "UNKNOWN_INSTRUMENT"
	ErrDevUnknownView                  = "UNKNOWN_VIEW"
	ErrDevUnknownTopic                 = "UNKNOWN_TOPIC"
	ErrDevInstrumentNotDefined         = "INSTRUMENT_NOT_DEFINED"
	ErrDevDefinitionsUnreadable        = "DEFINITIONS_UNREADABLE"
	ErrDevDefinitionsMalformed         = "DEFINITIONS_MALFORMED"
	ErrDevDefinitionsUnsupportedFormat = "DEFINITIONS_UNSUPPORTED_FORMAT"
	ErrDevTooManyRequests              = "TOO_MANY_REQUESTS"
	ErrDevPanicRecovered               = "PANIC_RECOVERED"
)
