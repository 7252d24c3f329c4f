package controllers

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"mindcare-service/internal/app/contracts"
	"mindcare-service/internal/app/models"
	"mindcare-service/internal/app/services/core/scoring"
	"mindcare-service/internal/pkg/constvars"
	"mindcare-service/internal/pkg/dto/requests"
	"mindcare-service/internal/pkg/exceptions"
	"mindcare-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type AssessmentController struct {
	Log               *zap.Logger
	AssessmentUsecase contracts.AssessmentUsecase
	Timeout           time.Duration
}

func NewAssessmentController(logger *zap.Logger, assessmentUsecase contracts.AssessmentUsecase, timeout time.Duration) *AssessmentController {
	return &AssessmentController{
		Log:               logger,
		AssessmentUsecase: assessmentUsecase,
		Timeout:           timeout,
	}
}

func (ctrl *AssessmentController) FindAll(w http.ResponseWriter, r *http.Request) {
	requestID := utils.RequestIDFromContext(r.Context())
	ctrl.Log.Info("AssessmentController.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.Timeout)
	defer cancel()

	response, err := ctrl.AssessmentUsecase.FindAll(ctx)
	if err != nil {
		ctrl.writeError(w, requestID, "FindAll", err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetAssessmentsSuccessMessage, response)
}

func (ctrl *AssessmentController) FindByInstrument(w http.ResponseWriter, r *http.Request) {
	requestID := utils.RequestIDFromContext(r.Context())
	instrument, err := ctrl.parseInstrument(r)
	if err != nil {
		ctrl.writeError(w, requestID, "FindByInstrument", err)
		return
	}

	ctrl.Log.Info("AssessmentController.FindByInstrument called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingInstrumentKey, instrument.ID()),
	)

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.Timeout)
	defer cancel()

	response, err := ctrl.AssessmentUsecase.FindByInstrument(ctx, instrument)
	if err != nil {
		ctrl.writeError(w, requestID, "FindByInstrument", err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetAssessmentSuccessMessage, response)
}

func (ctrl *AssessmentController) Evaluate(w http.ResponseWriter, r *http.Request) {
	requestID := utils.RequestIDFromContext(r.Context())
	instrument, err := ctrl.parseInstrument(r)
	if err != nil {
		ctrl.writeError(w, requestID, "Evaluate", err)
		return
	}

	request := new(requests.EvaluateAssessment)
	if err := utils.DecodeJSONBody(r, request); err != nil {
		ctrl.writeError(w, requestID, "Evaluate", err)
		return
	}

	answers, err := parseAnswers(request.Responses)
	if err != nil {
		ctrl.writeError(w, requestID, "Evaluate", err)
		return
	}

	ctrl.Log.Info("AssessmentController.Evaluate called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingInstrumentKey, instrument.ID()),
		zap.Int(constvars.LoggingResponseCountKey, len(answers)),
	)

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.Timeout)
	defer cancel()

	response, err := ctrl.AssessmentUsecase.Evaluate(ctx, instrument, answers)
	if err != nil {
		ctrl.writeError(w, requestID, "Evaluate", err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.EvaluateAssessmentSuccessMessage, response)
}

// parseAnswers accepts only JSON integer literals. Fractions, exponents,
// strings and nulls are invalid responses; nothing is truncated.
func parseAnswers(raw []json.RawMessage) ([]int, error) {
	answers := make([]int, len(raw))
	for i, value := range raw {
		answer, err := strconv.Atoi(string(bytes.TrimSpace(value)))
		if err != nil {
			return nil, exceptions.ErrInvalidInput(fmt.Errorf(
				"%w: response %d is %s, must be an integer",
				scoring.ErrInvalidInput, i+1, value,
			))
		}
		answers[i] = answer
	}
	return answers, nil
}

func (ctrl *AssessmentController) parseInstrument(r *http.Request) (models.Instrument, error) {
	name := chi.URLParam(r, constvars.URLParamInstrument)
	instrument, err := models.ParseInstrument(name)
	if err != nil {
		return 0, exceptions.ErrUnknownInstrument(err, name)
	}
	return instrument, nil
}

func (ctrl *AssessmentController) writeError(w http.ResponseWriter, requestID, operation string, err error) {
	ctrl.Log.Error("AssessmentController."+operation+" failed",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Error(err),
	)
	if errors.Is(err, context.DeadlineExceeded) {
		err = exceptions.ErrServerDeadlineExceeded(err)
	}
	utils.BuildErrorResponse(ctrl.Log, w, err)
}
