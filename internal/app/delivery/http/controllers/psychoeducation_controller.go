package controllers

import (
	"net/http"

	"mindcare-service/internal/app/contracts"
	"mindcare-service/internal/pkg/constvars"
	"mindcare-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type PsychoeducationController struct {
	Log                    *zap.Logger
	PsychoeducationUsecase contracts.PsychoeducationUsecase
}

func NewPsychoeducationController(logger *zap.Logger, psychoeducationUsecase contracts.PsychoeducationUsecase) *PsychoeducationController {
	return &PsychoeducationController{
		Log:                    logger,
		PsychoeducationUsecase: psychoeducationUsecase,
	}
}

func (ctrl *PsychoeducationController) FindAllTopics(w http.ResponseWriter, r *http.Request) {
	response := ctrl.PsychoeducationUsecase.FindAllTopics(r.Context())
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetTopicsSuccessMessage, response)
}

func (ctrl *PsychoeducationController) FindTopicBySlug(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, constvars.URLParamTopic)
	response, err := ctrl.PsychoeducationUsecase.FindTopicBySlug(r.Context(), slug)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetTopicSuccessMessage, response)
}
