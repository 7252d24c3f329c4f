package exceptions

import (
	"fmt"

	"mindcare-service/internal/pkg/constvars"
)

var (
	ErrInvalidInput = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientInvalidResponses, constvars.ErrDevInvalidInput)
	}
	ErrInvalidMood = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientInvalidMood, constvars.ErrDevInvalidInput)
	}
	ErrInputValidation = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, FormatFirstValidationError(err), constvars.ErrDevValidationFailed)
	}
	ErrServerDeadlineExceeded = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusGatewayTimeout, constvars.ErrClientServerLongRespond, constvars.ErrDevServerDeadlineExceeded)
	}
	ErrRequestBodyTooLarge = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusRequestEntityTooBig, constvars.ErrClientRequestBodyTooLarge, constvars.ErrDevRequestBodyTooLarge)
	}
	ErrTooManyRequests = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusTooManyRequests, constvars.ErrClientTooManyRequests, constvars.ErrDevTooManyRequests)
	}
	ErrPanicRecovered = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevPanicRecovered)
	}

	// Parse
	ErrCannotParseJSON = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientCannotProcessRequest, constvars.ErrDevCannotParseJSON)
	}

	// Lookup
	ErrUnknownInstrument = func(err error, name string) *CustomError {
		return BuildNewCustomError(wrapName(err, name), constvars.StatusNotFound, constvars.ErrClientUnknownInstrument, constvars.ErrDevUnknownInstrument)
	}
	ErrUnknownView = func(err error, name string) *CustomError {
		return BuildNewCustomError(wrapName(err, name), constvars.StatusNotFound, constvars.ErrClientUnknownView, constvars.ErrDevUnknownView)
	}
	ErrUnknownTopic = func(err error, name string) *CustomError {
		return BuildNewCustomError(wrapName(err, name), constvars.StatusNotFound, constvars.ErrClientUnknownTopic, constvars.ErrDevUnknownTopic)
	}

	// Definitions file
	ErrInstrumentNotDefined = func(err error, name string) *CustomError {
		return BuildNewCustomError(wrapName(err, name), constvars.StatusInternalServerError, constvars.ErrClientAssessmentsUnavailable, constvars.ErrDevInstrumentNotDefined)
	}
	ErrDefinitionsUnreadable = func(err error, path string) *CustomError {
		return BuildNewCustomError(wrapName(err, path), constvars.StatusInternalServerError, constvars.ErrClientAssessmentsUnavailable, constvars.ErrDevDefinitionsUnreadable)
	}
	ErrDefinitionsMalformed = func(err error, path string) *CustomError {
		return BuildNewCustomError(wrapName(err, path), constvars.StatusInternalServerError, constvars.ErrClientAssessmentsUnavailable, constvars.ErrDevDefinitionsMalformed)
	}
	ErrDefinitionsUnsupportedFormat = func(err error, path string) *CustomError {
		return BuildNewCustomError(wrapName(err, path), constvars.StatusInternalServerError, constvars.ErrClientAssessmentsUnavailable, constvars.ErrDevDefinitionsUnsupportedFormat)
	}
)

func wrapName(err error, name string) error {
	if err == nil {
		return fmt.Errorf("%q", name)
	}
	return fmt.Errorf("%q: %w", name, err)
}
