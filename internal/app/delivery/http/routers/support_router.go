package routers

import (
	"net/http"

	"mindcare-service/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachSupportRoutes(router chi.Router, submissionLimit func(http.Handler) http.Handler, supportController *controllers.SupportController) {
	router.With(submissionLimit).Post("/chat", supportController.SendChatMessage)
	router.With(submissionLimit).Post("/progress/mood", supportController.LogMood)
	router.Get("/crisis-helplines", supportController.FindAllCrisisHelplines)
}
