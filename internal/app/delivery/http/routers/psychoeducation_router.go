package routers

import (
	"mindcare-service/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachPsychoeducationRoutes(router chi.Router, psychoeducationController *controllers.PsychoeducationController) {
	router.Get("/topics", psychoeducationController.FindAllTopics)
	router.Get("/topics/{topic}", psychoeducationController.FindTopicBySlug)
}
