// Package scoring turns a response set into a total score and severity band.
package scoring

import (
	"errors"
	"fmt"

	"mindcare-service/internal/app/models"
	"mindcare-service/internal/pkg/constvars"
	"mindcare-service/internal/pkg/exceptions"
)

// ErrInvalidInput is wrapped by every rejection so callers can use errors.Is.
var ErrInvalidInput = errors.New("invalid input")

// Result is the outcome of scoring one response set.
type Result struct {
	Total int
	Band  models.SeverityBand
}

// Evaluate sums responses and maps the total to a severity band. Every
// response must lie on the 0..3 scale; nothing is clamped.
func Evaluate(responses []int) (Result, error) {
	total := 0
	for i, value := range responses {
		if value < constvars.ResponseScaleMin || value > constvars.ResponseScaleMax {
			return Result{}, exceptions.ErrInvalidInput(fmt.Errorf(
				"%w: response %d is %d, must be between %d and %d",
				ErrInvalidInput, i+1, value, constvars.ResponseScaleMin, constvars.ResponseScaleMax,
			))
		}
		total += value
	}

	return Result{Total: total, Band: BandFor(total)}, nil
}

// EvaluateDefinition checks that there is exactly one response per question of
// definition before scoring.
func EvaluateDefinition(definition models.Definition, responses []int) (Result, error) {
	if len(responses) != definition.QuestionCount() {
		return Result{}, exceptions.ErrInvalidInput(fmt.Errorf(
			"%w: %s expects %d responses, got %d",
			ErrInvalidInput, definition.Instrument.Name(), definition.QuestionCount(), len(responses),
		))
	}
	return Evaluate(responses)
}

// BandFor returns the band whose range contains total. Negative totals cannot
// come out of Evaluate and fall back to Minimal.
func BandFor(total int) models.SeverityBand {
	for _, r := range models.BandRanges() {
		if r.Contains(total) {
			return r.Band
		}
	}
	return models.SeverityMinimal
}

// MaxScore is the highest total reachable for questionCount questions.
func MaxScore(questionCount int) int {
	return questionCount * constvars.ResponseScaleMax
}
