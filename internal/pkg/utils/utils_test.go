package utils

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"mindcare-service/internal/pkg/constvars"
	"mindcare-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestGetEnv(t *testing.T) {
	t.Setenv("TEST_STRING", "value")
	t.Setenv("TEST_INT", "42")
	t.Setenv("TEST_BAD_INT", "forty-two")
	t.Setenv("TEST_BOOL", "true")
	t.Setenv("TEST_SLICE", " a, ,b ,c")
	t.Setenv("TEST_EMPTY_SLICE", " , ")

	assert.Equal(t, "value", GetEnvString("TEST_STRING", "default"))
	assert.Equal(t, "default", GetEnvString("TEST_UNSET", "default"))
	assert.Equal(t, 42, GetEnvInt("TEST_INT", 1))
	assert.Equal(t, 1, GetEnvInt("TEST_BAD_INT", 1), "unparsable values fall back to the default")
	assert.True(t, GetEnvBool("TEST_BOOL", false))
	assert.Equal(t, []string{"a", "b", "c"}, GetEnvStringSlice("TEST_SLICE", nil))
	assert.Equal(t, []string{"*"}, GetEnvStringSlice("TEST_EMPTY_SLICE", []string{"*"}))
}

func TestRequestIDFromContext(t *testing.T) {
	assert.Empty(t, RequestIDFromContext(context.Background()))

	ctx := context.WithValue(context.Background(), constvars.CONTEXT_REQUEST_ID_KEY, "abc")
	assert.Equal(t, "abc", RequestIDFromContext(ctx))

	assert.NotEqual(t, GenerateRequestID(), GenerateRequestID())
}

type decodeSample struct {
	Name  string `json:"name" validate:"required"`
	Value *int   `json:"value" validate:"required,lte=3"`
}

func TestDecodeJSONBody(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		limit      int64
		devMessage string
	}{
		{name: "Valid", body: `{"name":"a","value":3}`},
		{name: "Empty Body", body: ``, devMessage: constvars.ErrDevCannotParseJSON},
		{name: "Malformed", body: `{"name":`, devMessage: constvars.ErrDevCannotParseJSON},
		{name: "Unknown Field", body: `{"name":"a","value":1,"extra":true}`, devMessage: constvars.ErrDevCannotParseJSON},
		{name: "Missing Field", body: `{"name":"a"}`, devMessage: constvars.ErrDevValidationFailed},
		{name: "Out Of Range", body: `{"name":"a","value":4}`, devMessage: constvars.ErrDevValidationFailed},
		{name: "Trailing Garbage", body: `{"name":"a","value":1} garbage`, devMessage: constvars.ErrDevCannotParseJSON},
		{name: "Second Value", body: `{"name":"a","value":1}{"name":"b","value":2}`, devMessage: constvars.ErrDevCannotParseJSON},
		{name: "Repeated Key", body: `{"name":"a","value":1,"value":3}`, devMessage: constvars.ErrDevCannotParseJSON},
		{name: "Trailing Whitespace", body: "{\"name\":\"a\",\"value\":1}\n\t "},
		{name: "Too Large", body: `{"name":"` + strings.Repeat("a", 64) + `","value":1}`, limit: 16, devMessage: constvars.ErrDevRequestBodyTooLarge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body))
			if tt.limit > 0 {
				req.Body = http.MaxBytesReader(httptest.NewRecorder(), req.Body, tt.limit)
			}

			var dst decodeSample
			err := DecodeJSONBody(req, &dst)

			if tt.devMessage == "" {
				require.NoError(t, err)
				assert.Equal(t, "a", dst.Name)
				return
			}
			require.Error(t, err)
			assert.True(t, exceptions.HasDevMessage(err, tt.devMessage), "expected %s, got %v", tt.devMessage, err)
		})
	}
}

func TestValidateUniqueKeys(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantErr bool
	}{
		{name: "Distinct Keys", raw: `{"a":[1,2],"b":{"c":3}}`},
		{name: "Same Key In Nested Objects", raw: `{"a":{"x":1},"b":{"x":2}}`},
		{name: "Not An Object", raw: `[1,2,3]`},
		{name: "Empty Object", raw: `{}`},
		{name: "Repeated Top Level Key", raw: `{"a":1,"b":2,"a":3}`, wantErr: true},
		{name: "Repeated Key After Nested Value", raw: `{"a":[{"a":1}],"a":[]}`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateUniqueKeys([]byte(tt.raw))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestValidateSingleJSONValue(t *testing.T) {
	assert.NoError(t, ValidateSingleJSONValue([]byte(`{"a":1}`)))
	assert.NoError(t, ValidateSingleJSONValue([]byte(` [1] `)))
	assert.Error(t, ValidateSingleJSONValue([]byte(`{"a":1} x`)))
	assert.Error(t, ValidateSingleJSONValue([]byte(`1 2`)))
}

func TestBuildSuccessResponse(t *testing.T) {
	rr := httptest.NewRecorder()
	BuildSuccessResponse(rr, constvars.StatusOK, "done", map[string]int{"total": 5})

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, constvars.MIMEApplicationJSONCharsetUTF8, rr.Header().Get(constvars.HeaderContentType))

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "done", body["message"])
	assert.Equal(t, float64(5), body["data"].(map[string]interface{})["total"])
}

func TestBuildErrorResponse(t *testing.T) {
	logger := zap.NewNop()

	t.Run("Custom Error In Development", func(t *testing.T) {
		t.Setenv("APP_ENV", constvars.AppEnvironmentDevelopment)
		rr := httptest.NewRecorder()
		BuildErrorResponse(logger, rr, exceptions.ErrUnknownTopic(errors.New("no such topic"), "hypnosis"))

		assert.Equal(t, http.StatusNotFound, rr.Code)
		var body exceptions.CustomError
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
		assert.False(t, body.Success)
		assert.Equal(t, constvars.ErrClientUnknownTopic, body.ClientMessage)
		assert.Contains(t, body.DevMessage, constvars.ErrDevUnknownTopic)
		assert.NotEmpty(t, body.Locations)
	})

	t.Run("Custom Error In Production", func(t *testing.T) {
		t.Setenv("APP_ENV", constvars.AppEnvironmentProduction)
		rr := httptest.NewRecorder()
		BuildErrorResponse(logger, rr, exceptions.ErrUnknownTopic(errors.New("no such topic"), "hypnosis"))

		var body map[string]interface{}
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
		assert.NotContains(t, body, "dev_message", "production responses hide dev details")
		assert.NotContains(t, body, "locations")
	})

	t.Run("Plain Error", func(t *testing.T) {
		rr := httptest.NewRecorder()
		BuildErrorResponse(logger, rr, errors.New("unexpected"))

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		var body exceptions.CustomError
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
		assert.Equal(t, constvars.ErrClientSomethingWrongWithApplication, body.ClientMessage)
		assert.Empty(t, body.DevMessage)
	})
}
