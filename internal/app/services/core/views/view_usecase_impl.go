package views

import (
	"context"
	"errors"

	"mindcare-service/internal/app/contracts"
	"mindcare-service/internal/app/models"
	"mindcare-service/internal/pkg/constvars"
	"mindcare-service/internal/pkg/dto/responses"
	"mindcare-service/internal/pkg/exceptions"
	"mindcare-service/internal/pkg/utils"

	"go.uber.org/zap"
)

const (
	SlugHome             = "home"
	SlugSelfAssessment   = "self-assessment"
	SlugAIChat           = "ai-chat"
	SlugPsychoeducation  = "psychoeducation"
	SlugProgressTracking = "progress-tracking"
)

const disclaimer = "Disclaimer: This tool does not replace professional medical advice. If you feel distressed, seek professional help."

// navigation is the sidebar menu, in display order.
var navigation = []models.View{
	{
		Slug:        SlugHome,
		Title:       "Home",
		Subtitle:    "Your Mental Health Companion",
		Description: "This platform helps you understand your emotions, assess your wellbeing, and learn coping strategies.",
		Disclaimer:  disclaimer,
	},
	{
		Slug:        SlugSelfAssessment,
		Title:       "Self Assessment",
		Subtitle:    "Self-Risk Screening Tools",
		Description: "Select a test below to assess your emotional wellbeing.",
	},
	{
		Slug:        SlugAIChat,
		Title:       "AI Chat",
		Subtitle:    "AI Emotional Support Chat",
		Description: "Talk with your AI assistant to explore your thoughts and feelings.",
	},
	{
		Slug:        SlugPsychoeducation,
		Title:       "Psychoeducation",
		Subtitle:    "Psychoeducation Modules",
		Description: "Explore mental health education topics:",
	},
	{
		Slug:        SlugProgressTracking,
		Title:       "Progress Tracking",
		Subtitle:    "Progress Tracker",
		Description: "How do you feel today?",
	},
}

type viewUsecase struct {
	Log *zap.Logger
}

func NewViewUsecase(logger *zap.Logger) contracts.ViewUsecase {
	return &viewUsecase{Log: logger}
}

func (uc *viewUsecase) FindAll(ctx context.Context) []responses.View {
	result := make([]responses.View, len(navigation))
	for i, view := range navigation {
		result[i] = mapView(view)
	}
	return result
}

func (uc *viewUsecase) FindBySlug(ctx context.Context, slug string) (*responses.View, error) {
	for _, view := range navigation {
		if view.Slug == slug {
			response := mapView(view)
			return &response, nil
		}
	}

	uc.Log.Warn("viewUsecase.FindBySlug unknown view",
		zap.String(constvars.LoggingRequestIDKey, utils.RequestIDFromContext(ctx)),
		zap.String(constvars.LoggingViewKey, slug),
	)
	return nil, exceptions.ErrUnknownView(errors.New("no such view"), slug)
}

func mapView(view models.View) responses.View {
	return responses.View{
		Slug:        view.Slug,
		Title:       view.Title,
		Subtitle:    view.Subtitle,
		Description: view.Description,
		Disclaimer:  view.Disclaimer,
	}
}
