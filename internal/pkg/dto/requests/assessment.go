package requests

import "github.com/goccy/go-json"

// EvaluateAssessment carries the slider values of one submission. Values are
// kept raw so that a non-integer surfaces as an invalid response instead of a
// decoding failure. Range and length checks belong to the scoring layer.
type EvaluateAssessment struct {
	Responses []json.RawMessage `json:"responses" validate:"required"`
}
