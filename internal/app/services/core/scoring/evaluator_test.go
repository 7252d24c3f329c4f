package scoring

import (
	"errors"
	"testing"

	"mindcare-service/internal/app/models"
	"mindcare-service/internal/pkg/constvars"
	"mindcare-service/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluate(t *testing.T) {
	testCases := []struct {
		name      string
		responses []int
		wantTotal int
		wantBand  models.SeverityBand
	}{
		{name: "All Zero", responses: []int{0, 0, 0, 0}, wantTotal: 0, wantBand: models.SeverityMinimal},
		{name: "Three Maximum Answers", responses: []int{3, 3, 3}, wantTotal: 9, wantBand: models.SeverityMild},
		{name: "Upper Moderate", responses: []int{3, 3, 3, 3, 2}, wantTotal: 14, wantBand: models.SeverityModerate},
		{name: "Severe", responses: []int{3, 3, 3, 3, 3, 3}, wantTotal: 18, wantBand: models.SeveritySevere},
		{name: "Empty Response Set", responses: []int{}, wantTotal: 0, wantBand: models.SeverityMinimal},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result, err := Evaluate(tc.responses)

			require.NoError(t, err)
			assert.Equal(t, tc.wantTotal, result.Total, "total should be the sum of responses")
			assert.Equal(t, tc.wantBand, result.Band, "band should match the total")
		})
	}
}

func TestEvaluateRejectsOutOfScaleValues(t *testing.T) {
	for _, responses := range [][]int{{0, 4, 1}, {-1}, {3, 3, 3, 3, 3, 3, 3, 3, 100}} {
		_, err := Evaluate(responses)

		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrInvalidInput), "error should wrap ErrInvalidInput")
		assert.True(t, exceptions.HasDevMessage(err, constvars.ErrDevInvalidInput), "error should be classified as invalid input")

		var customErr *exceptions.CustomError
		require.True(t, errors.As(err, &customErr))
		assert.Equal(t, constvars.StatusBadRequest, customErr.StatusCode, "invalid input should map to 400")
	}
}

func TestEvaluateReportsOffendingPosition(t *testing.T) {
	_, err := Evaluate([]int{1, 2, 4})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "response 3 is 4")
}

func TestBandBoundaries(t *testing.T) {
	boundaries := map[int]models.SeverityBand{
		0:  models.SeverityMinimal,
		4:  models.SeverityMinimal,
		5:  models.SeverityMild,
		9:  models.SeverityMild,
		10: models.SeverityModerate,
		14: models.SeverityModerate,
		15: models.SeveritySevere,
		27: models.SeveritySevere,
	}

	for total, want := range boundaries {
		assert.Equal(t, want, BandFor(total), "band for total %d", total)
	}
}

func TestEvaluateIsDeterministicAndOrderIndependent(t *testing.T) {
	responses := []int{3, 0, 2, 1, 3, 2, 0, 1, 2}
	first, err := Evaluate(responses)
	require.NoError(t, err)

	second, err := Evaluate(responses)
	require.NoError(t, err)
	assert.Equal(t, first, second, "identical input should yield identical output")

	reversed := make([]int, len(responses))
	for i, v := range responses {
		reversed[len(responses)-1-i] = v
	}
	permuted, err := Evaluate(reversed)
	require.NoError(t, err)
	assert.Equal(t, first, permuted, "permuting responses should not change the result")
}

func TestEvaluateTotalEqualsSum(t *testing.T) {
	// every response set of length 4 over the 0..3 scale
	for n := 0; n < 256; n++ {
		responses := []int{n & 3, (n >> 2) & 3, (n >> 4) & 3, (n >> 6) & 3}
		sum := responses[0] + responses[1] + responses[2] + responses[3]

		result, err := Evaluate(responses)
		require.NoError(t, err)
		assert.Equal(t, sum, result.Total)
		assert.Equal(t, BandFor(sum), result.Band)
	}
}

func TestEvaluateDefinition(t *testing.T) {
	definition := models.Definition{
		Instrument: models.InstrumentWHO5,
		Questions:  []string{"q1", "q2", "q3", "q4", "q5"},
	}

	t.Run("Matching Length", func(t *testing.T) {
		result, err := EvaluateDefinition(definition, []int{1, 1, 1, 1, 1})

		require.NoError(t, err)
		assert.Equal(t, 5, result.Total)
		assert.Equal(t, models.SeverityMild, result.Band)
	})

	t.Run("Too Few Responses", func(t *testing.T) {
		_, err := EvaluateDefinition(definition, []int{1, 1})

		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrInvalidInput))
		assert.Contains(t, err.Error(), "expects 5 responses, got 2")
	})

	t.Run("Too Many Responses", func(t *testing.T) {
		_, err := EvaluateDefinition(definition, []int{0, 0, 0, 0, 0, 0})

		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrInvalidInput))
	})

	t.Run("Out Of Scale Value", func(t *testing.T) {
		_, err := EvaluateDefinition(definition, []int{0, 0, 4, 0, 0})

		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrInvalidInput))
	})
}

func TestInterpretationGuide(t *testing.T) {
	assert.Equal(t, "0–4: Minimal, 5–9: Mild, 10–14: Moderate, 15+: Severe", InterpretationGuide())
}

func TestSummary(t *testing.T) {
	assert.Equal(t, "Your total score: 14 (Moderate)", Summary(Result{Total: 14, Band: models.SeverityModerate}))
}

func TestMaxScore(t *testing.T) {
	assert.Equal(t, 27, MaxScore(9))
	assert.Equal(t, 21, MaxScore(7))
	assert.Equal(t, 0, MaxScore(0))
}
