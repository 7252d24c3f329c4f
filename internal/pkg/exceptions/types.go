package exceptions

import (
	"errors"
	"fmt"
	"runtime"

	"mindcare-service/internal/pkg/constvars"
)

type CustomError struct {
	StatusCode    int        `json:"status_code"`
	Success       bool       `json:"success"`
	ClientMessage string     `json:"message"`
	DevMessage    string     `json:"dev_message,omitempty"`
	Locations     []Location `json:"locations,omitempty"`
	Err           error      `json:"-"`
}

type Location struct {
	File         string `json:"file"`
	Line         int    `json:"line"`
	FunctionName string `json:"function_name"`
}

func (e *CustomError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.DevMessage, e.Err)
	}
	return e.DevMessage
}

func (e *CustomError) Unwrap() error {
	return e.Err
}

// HasDevMessage reports whether err carries a CustomError with the given dev code.
func HasDevMessage(err error, devMessage string) bool {
	var customErr *CustomError
	if !errors.As(err, &customErr) {
		return false
	}
	return customErr.DevMessage == devMessage
}

// BuildNewCustomError classifies err. An err that is already a CustomError keeps
// its classification and only gains the caller location.
func BuildNewCustomError(err error, statusCode int, clientMessage, devMessage string) *CustomError {
	var existing *CustomError
	if errors.As(err, &existing) {
		existing.Locations = append(existing.Locations, getLocation(2))
		return existing
	}

	return &CustomError{
		StatusCode:    statusCode,
		ClientMessage: clientMessage,
		DevMessage:    devMessage,
		Locations:     []Location{getLocation(2)},
		Err:           err,
	}
}

func getLocation(skip int) Location {
	pc, file, line, ok := runtime.Caller(skip + 1)
	if !ok {
		return Location{
			File:         constvars.ResponseUnknown,
			Line:         0,
			FunctionName: constvars.ResponseUnknown,
		}
	}
	return Location{
		File:         file,
		Line:         line,
		FunctionName: runtime.FuncForPC(pc).Name(),
	}
}
