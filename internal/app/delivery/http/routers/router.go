package routers

import (
	"fmt"
	"time"

	"mindcare-service/internal/app/config"
	"mindcare-service/internal/app/delivery/http/controllers"
	"mindcare-service/internal/app/delivery/http/middlewares"
	"mindcare-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
)

type Controllers struct {
	Health          *controllers.HealthController
	View            *controllers.ViewController
	Assessment      *controllers.AssessmentController
	Psychoeducation *controllers.PsychoeducationController
	Support         *controllers.SupportController
}

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	ctrls Controllers,
) {
	corsOptions := cors.Options{
		AllowedOrigins:   internalConfig.App.CORSAllowedOrigins,
		AllowedMethods:   []string{constvars.MethodGet, constvars.MethodPost, constvars.MethodOptions},
		AllowedHeaders:   []string{constvars.HeaderAccept, constvars.HeaderContentType, constvars.HeaderXRequestID},
		ExposedHeaders:   []string{constvars.HeaderXRequestID},
		AllowCredentials: false,
		MaxAge:           300,
	}

	router.Use(middlewares.RequestID)
	router.Use(middlewares.Logging)
	router.Use(middlewares.ErrorHandler)
	router.Use(cors.Handler(corsOptions))
	if internalConfig.App.MaxRequests > 0 {
		router.Use(httprate.LimitByIP(internalConfig.App.MaxRequests, time.Second))
	}
	router.Use(middlewares.BodyLimit)

	router.Get("/healthz", ctrls.Health.Check)

	submissionLimit := middlewares.SubmissionRateLimit()

	endpointPrefix := fmt.Sprintf("/%s", internalConfig.App.EndpointPrefix)
	versionPrefix := fmt.Sprintf("/%s", internalConfig.App.Version)

	router.Route(endpointPrefix, func(r chi.Router) {
		r.Route(versionPrefix, func(r chi.Router) {
			r.Route("/views", func(r chi.Router) {
				attachViewRoutes(r, ctrls.View)
			})

			r.Route("/assessments", func(r chi.Router) {
				attachAssessmentRoutes(r, submissionLimit, ctrls.Assessment)
			})

			r.Route("/psychoeducation", func(r chi.Router) {
				attachPsychoeducationRoutes(r, ctrls.Psychoeducation)
			})

			attachSupportRoutes(r, submissionLimit, ctrls.Support)
		})
	})
}
