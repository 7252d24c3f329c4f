package contracts

import (
	"context"

	"mindcare-service/internal/app/models"
	"mindcare-service/internal/pkg/dto/responses"
)

type AssessmentUsecase interface {
	FindAll(ctx context.Context) ([]responses.AssessmentSummary, error)
	FindByInstrument(ctx context.Context, instrument models.Instrument) (*responses.Assessment, error)
	Evaluate(ctx context.Context, instrument models.Instrument, answers []int) (*responses.Evaluation, error)
}

// AssessmentDefinitionRepository reads instrument definitions. Implementations
// validate what they load and report problems as configuration errors.
type AssessmentDefinitionRepository interface {
	FindAll(ctx context.Context) ([]models.Definition, error)
	FindByInstrument(ctx context.Context, instrument models.Instrument) (*models.Definition, error)
}
