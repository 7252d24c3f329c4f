package utils

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"

	"mindcare-service/internal/pkg/constvars"
	"mindcare-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
)

func GenerateRequestID() string {
	return uuid.NewString()
}

func RequestIDFromContext(ctx context.Context) string {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	return requestID
}

// DecodeJSONBody strictly decodes the request body into dst and validates it.
// The body must be a single JSON value with no repeated top-level keys and no
// unknown fields. It is read in full first so that a body limit surfaces as
// its own error.
func DecodeJSONBody(r *http.Request, dst interface{}) error {
	defer r.Body.Close()

	raw, err := io.ReadAll(r.Body)
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			return exceptions.ErrRequestBodyTooLarge(err)
		}
		return exceptions.ErrCannotParseJSON(err)
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return exceptions.ErrCannotParseJSON(errors.New("request body is empty"))
	}

	if err := ValidateSingleJSONValue(raw); err != nil {
		return exceptions.ErrCannotParseJSON(err)
	}
	if err := ValidateUniqueKeys(raw); err != nil {
		return exceptions.ErrCannotParseJSON(err)
	}

	decoder := json.NewDecoder(bytes.NewReader(raw))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(dst); err != nil {
		return exceptions.ErrCannotParseJSON(err)
	}

	if err := ValidateStruct(dst); err != nil {
		return exceptions.ErrInputValidation(err)
	}
	return nil
}
