package routers

import (
	"mindcare-service/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachViewRoutes(router chi.Router, viewController *controllers.ViewController) {
	router.Get("/", viewController.FindAll)
	router.Get("/{view}", viewController.FindBySlug)
}
