package controllers

import (
	"net/http"

	"mindcare-service/internal/pkg/constvars"
	"mindcare-service/internal/pkg/dto/responses"
	"mindcare-service/internal/pkg/utils"
)

type HealthController struct {
	Version string
}

func NewHealthController(version string) *HealthController {
	return &HealthController{Version: version}
}

func (ctrl *HealthController) Check(w http.ResponseWriter, r *http.Request) {
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.HealthCheckSuccessMessage, responses.Health{
		Status:  "ok",
		Version: ctrl.Version,
	})
}
