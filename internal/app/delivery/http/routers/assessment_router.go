package routers

import (
	"net/http"

	"mindcare-service/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachAssessmentRoutes(router chi.Router, submissionLimit func(http.Handler) http.Handler, assessmentController *controllers.AssessmentController) {
	router.Get("/", assessmentController.FindAll)
	router.Get("/{instrument}", assessmentController.FindByInstrument)
	router.With(submissionLimit).Post("/{instrument}/evaluate", assessmentController.Evaluate)
}
