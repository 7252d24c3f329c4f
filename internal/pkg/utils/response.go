package utils

import (
	"errors"
	"net/http"

	"mindcare-service/internal/pkg/constvars"
	"mindcare-service/internal/pkg/dto/responses"
	"mindcare-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

func BuildSuccessResponse(w http.ResponseWriter, code int, message string, data interface{}) {
	response := responses.ResponseDTO{
		Success: true,
		Message: message,
		Data:    data,
	}
	w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationJSONCharsetUTF8)
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(response)
}

// BuildErrorResponse writes the error envelope. Dev details are only exposed
// when the application is not running in production.
func BuildErrorResponse(log *zap.Logger, w http.ResponseWriter, err error) {
	code := constvars.StatusInternalServerError
	clientMessage := constvars.ErrClientSomethingWrongWithApplication

	var customErr *exceptions.CustomError
	if errors.As(err, &customErr) {
		code = customErr.StatusCode
		clientMessage = customErr.ClientMessage
		for _, location := range customErr.Locations {
			log.Error(customErr.Error(),
				zap.Int(constvars.LoggingStatusCodeKey, code),
				zap.String(constvars.LoggingErrorCodeKey, customErr.DevMessage),
				zap.Any(constvars.LoggingLocationKey, map[string]interface{}{
					"file":          location.File,
					"line":          location.Line,
					"function_name": location.FunctionName,
				}),
			)
		}
	} else if err != nil {
		log.Error(err.Error())
	}

	w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationJSONCharsetUTF8)
	w.WriteHeader(code)
	response := exceptions.CustomError{
		StatusCode:    code,
		Success:       false,
		ClientMessage: clientMessage,
	}

	appEnvironment := GetEnvString("APP_ENV", constvars.AppEnvironmentDevelopment)
	if customErr != nil && appEnvironment != constvars.AppEnvironmentProduction {
		response.DevMessage = customErr.Error()
		response.Locations = customErr.Locations
	}
	json.NewEncoder(w).Encode(response)
}
