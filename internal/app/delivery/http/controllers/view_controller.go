package controllers

import (
	"net/http"

	"mindcare-service/internal/app/contracts"
	"mindcare-service/internal/pkg/constvars"
	"mindcare-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type ViewController struct {
	Log         *zap.Logger
	ViewUsecase contracts.ViewUsecase
}

func NewViewController(logger *zap.Logger, viewUsecase contracts.ViewUsecase) *ViewController {
	return &ViewController{
		Log:         logger,
		ViewUsecase: viewUsecase,
	}
}

func (ctrl *ViewController) FindAll(w http.ResponseWriter, r *http.Request) {
	response := ctrl.ViewUsecase.FindAll(r.Context())
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetViewsSuccessMessage, response)
}

func (ctrl *ViewController) FindBySlug(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, constvars.URLParamView)
	response, err := ctrl.ViewUsecase.FindBySlug(r.Context(), slug)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetViewSuccessMessage, response)
}
