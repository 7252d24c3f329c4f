package assessments

import (
	"context"

	"mindcare-service/internal/app/contracts"
	"mindcare-service/internal/app/models"
	"mindcare-service/internal/app/services/core/scoring"
	"mindcare-service/internal/pkg/constvars"
	"mindcare-service/internal/pkg/dto/responses"
	"mindcare-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type assessmentUsecase struct {
	DefinitionRepository contracts.AssessmentDefinitionRepository
	CrisisUsecase        contracts.CrisisUsecase
	Log                  *zap.Logger
}

func NewAssessmentUsecase(
	definitionRepository contracts.AssessmentDefinitionRepository,
	crisisUsecase contracts.CrisisUsecase,
	logger *zap.Logger,
) contracts.AssessmentUsecase {
	return &assessmentUsecase{
		DefinitionRepository: definitionRepository,
		CrisisUsecase:        crisisUsecase,
		Log:                  logger,
	}
}

func (uc *assessmentUsecase) FindAll(ctx context.Context) ([]responses.AssessmentSummary, error) {
	requestID := utils.RequestIDFromContext(ctx)
	uc.Log.Info("assessmentUsecase.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	definitions, err := uc.DefinitionRepository.FindAll(ctx)
	if err != nil {
		uc.Log.Error("assessmentUsecase.FindAll error fetching definitions",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	summaries := make([]responses.AssessmentSummary, 0, len(definitions))
	for _, definition := range definitions {
		summaries = append(summaries, responses.AssessmentSummary{
			ID:            definition.Instrument.ID(),
			Name:          definition.Instrument.Name(),
			Focus:         definition.Instrument.Focus(),
			QuestionCount: definition.QuestionCount(),
		})
	}

	uc.Log.Info("assessmentUsecase.FindAll succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingAssessmentCountKey, len(summaries)),
	)
	return summaries, nil
}

func (uc *assessmentUsecase) FindByInstrument(ctx context.Context, instrument models.Instrument) (*responses.Assessment, error) {
	requestID := utils.RequestIDFromContext(ctx)
	uc.Log.Info("assessmentUsecase.FindByInstrument called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingInstrumentKey, instrument.ID()),
	)

	definition, err := uc.DefinitionRepository.FindByInstrument(ctx, instrument)
	if err != nil {
		uc.Log.Error("assessmentUsecase.FindByInstrument error fetching definition",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingInstrumentKey, instrument.ID()),
			zap.Error(err),
		)
		return nil, err
	}

	questions := make([]responses.Question, len(definition.Questions))
	for i, text := range definition.Questions {
		questions[i] = responses.Question{Number: i + 1, Text: text}
	}

	uc.Log.Info("assessmentUsecase.FindByInstrument succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingInstrumentKey, instrument.ID()),
		zap.Int(constvars.LoggingQuestionCountKey, len(questions)),
	)
	return &responses.Assessment{
		ID:        instrument.ID(),
		Name:      instrument.Name(),
		Focus:     instrument.Focus(),
		Questions: questions,
		Scale:     mapResponseScale(),
	}, nil
}

func (uc *assessmentUsecase) Evaluate(ctx context.Context, instrument models.Instrument, answers []int) (*responses.Evaluation, error) {
	requestID := utils.RequestIDFromContext(ctx)
	uc.Log.Info("assessmentUsecase.Evaluate called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingInstrumentKey, instrument.ID()),
		zap.Int(constvars.LoggingResponseCountKey, len(answers)),
	)

	definition, err := uc.DefinitionRepository.FindByInstrument(ctx, instrument)
	if err != nil {
		uc.Log.Error("assessmentUsecase.Evaluate error fetching definition",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingInstrumentKey, instrument.ID()),
			zap.Error(err),
		)
		return nil, err
	}

	result, err := scoring.EvaluateDefinition(*definition, answers)
	if err != nil {
		uc.Log.Warn("assessmentUsecase.Evaluate rejected responses",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingInstrumentKey, instrument.ID()),
			zap.Error(err),
		)
		return nil, err
	}

	evaluation := &responses.Evaluation{
		AssessmentID:        instrument.ID(),
		AssessmentName:      instrument.Name(),
		TotalScore:          result.Total,
		MaxScore:            scoring.MaxScore(definition.QuestionCount()),
		SeverityBand:        result.Band.String(),
		Summary:             scoring.Summary(result),
		InterpretationGuide: scoring.InterpretationGuide(),
	}
	if result.Band != models.SeverityMinimal {
		evaluation.CrisisHelplines = uc.CrisisUsecase.FindAllHelplines(ctx)
	}

	uc.Log.Info("assessmentUsecase.Evaluate succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingInstrumentKey, instrument.ID()),
		zap.Int(constvars.LoggingTotalScoreKey, result.Total),
		zap.String(constvars.LoggingSeverityBandKey, result.Band.String()),
	)
	return evaluation, nil
}

func mapResponseScale() responses.ResponseScale {
	options := models.ResponseScale()
	scale := responses.ResponseScale{
		Min:     constvars.ResponseScaleMin,
		Max:     constvars.ResponseScaleMax,
		Options: make([]responses.ScaleOption, len(options)),
	}
	for i, option := range options {
		scale.Options[i] = responses.ScaleOption{Value: option.Value, Label: option.Label}
	}
	return scale
}
