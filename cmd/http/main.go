package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"mindcare-service/internal/app/config"
	"mindcare-service/internal/app/delivery/http/controllers"
	"mindcare-service/internal/app/delivery/http/middlewares"
	"mindcare-service/internal/app/delivery/http/routers"
	"mindcare-service/internal/app/drivers/logger"
	"mindcare-service/internal/app/services/core/assessments"
	"mindcare-service/internal/app/services/core/chat"
	"mindcare-service/internal/app/services/core/crisis"
	"mindcare-service/internal/app/services/core/progress"
	"mindcare-service/internal/app/services/core/psychoeducation"
	"mindcare-service/internal/app/services/core/views"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := logger.NewZapLogger(driverConfig, internalConfig)

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		log.Fatal("Error loading location", zap.String("timezone", internalConfig.App.Timezone), zap.Error(err))
	}

	chiRouter := chi.NewRouter()

	bootstrap := &config.Bootstrap{
		Router:         chiRouter,
		Logger:         log,
		Location:       location,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}
	bootstrapingTheApp(bootstrap)

	server := &http.Server{
		Addr:              internalConfig.App.Port,
		Handler:           chiRouter,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Info("Server starting", zap.String("addr", server.Addr))
		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	log.Info("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeoutInSeconds),
	)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exiting")
	_ = bootstrap.Shutdown()
}

func bootstrapingTheApp(bootstrap *config.Bootstrap) {
	requestTimeout := time.Duration(bootstrap.InternalConfig.App.RequestTimeoutInSeconds) * time.Second

	// Middlewares
	middlewares := middlewares.NewMiddlewares(bootstrap.Logger, bootstrap.InternalConfig)

	// Crisis
	crisisUsecase := crisis.NewCrisisUsecase()

	// Assessment
	definitionRepository := assessments.NewAssessmentFileRepository(bootstrap.InternalConfig.Assessment.DefinitionsPath, bootstrap.Logger)
	assessmentUsecase := assessments.NewAssessmentUsecase(definitionRepository, crisisUsecase, bootstrap.Logger)
	assessmentController := controllers.NewAssessmentController(bootstrap.Logger, assessmentUsecase, requestTimeout)

	// Views
	viewUsecase := views.NewViewUsecase(bootstrap.Logger)
	viewController := controllers.NewViewController(bootstrap.Logger, viewUsecase)

	// Psychoeducation
	psychoeducationUsecase := psychoeducation.NewPsychoeducationUsecase(bootstrap.Logger)
	psychoeducationController := controllers.NewPsychoeducationController(bootstrap.Logger, psychoeducationUsecase)

	// Chat, progress and crisis help
	chatUsecase := chat.NewChatUsecase(bootstrap.Logger)
	progressUsecase := progress.NewProgressUsecase(progress.SystemClock, bootstrap.Location, bootstrap.Logger)
	supportController := controllers.NewSupportController(bootstrap.Logger, chatUsecase, progressUsecase, crisisUsecase)

	routers.SetupRoutes(bootstrap.Router, bootstrap.InternalConfig, middlewares, routers.Controllers{
		Health:          controllers.NewHealthController(bootstrap.InternalConfig.App.Version),
		View:            viewController,
		Assessment:      assessmentController,
		Psychoeducation: psychoeducationController,
		Support:         supportController,
	})
}
