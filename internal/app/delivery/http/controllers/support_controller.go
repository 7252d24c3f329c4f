package controllers

import (
	"net/http"

	"mindcare-service/internal/app/contracts"
	"mindcare-service/internal/pkg/constvars"
	"mindcare-service/internal/pkg/dto/requests"
	"mindcare-service/internal/pkg/utils"

	"go.uber.org/zap"
)

// SupportController serves the chat, progress tracking and crisis help panels.
type SupportController struct {
	Log             *zap.Logger
	ChatUsecase     contracts.ChatUsecase
	ProgressUsecase contracts.ProgressUsecase
	CrisisUsecase   contracts.CrisisUsecase
}

func NewSupportController(
	logger *zap.Logger,
	chatUsecase contracts.ChatUsecase,
	progressUsecase contracts.ProgressUsecase,
	crisisUsecase contracts.CrisisUsecase,
) *SupportController {
	return &SupportController{
		Log:             logger,
		ChatUsecase:     chatUsecase,
		ProgressUsecase: progressUsecase,
		CrisisUsecase:   crisisUsecase,
	}
}

func (ctrl *SupportController) SendChatMessage(w http.ResponseWriter, r *http.Request) {
	request := new(requests.SendChatMessage)
	if err := utils.DecodeJSONBody(r, request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	response := ctrl.ChatUsecase.Reply(r.Context(), request.Message)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.SendChatMessageSuccessMessage, response)
}

func (ctrl *SupportController) LogMood(w http.ResponseWriter, r *http.Request) {
	request := new(requests.LogMood)
	if err := utils.DecodeJSONBody(r, request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	response, err := ctrl.ProgressUsecase.LogMood(r.Context(), *request.Mood)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.LogMoodSuccessMessage, response)
}

func (ctrl *SupportController) FindAllCrisisHelplines(w http.ResponseWriter, r *http.Request) {
	response := ctrl.CrisisUsecase.FindAllHelplines(r.Context())
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetCrisisHelplinesSuccessMessage, response)
}
