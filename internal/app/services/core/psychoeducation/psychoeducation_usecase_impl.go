package psychoeducation

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

const placeholderContent = "Content will appear here in full version."

var topics = []models.Topic{
	{Slug: "stress-management", Title: "Stress Management", Content: placeholderContent},
	{Slug: "mindfulness", Title: "Mindfulness", Content: placeholderContent},
	{Slug: "cbt-basics", Title: "CBT Basics", Content: placeholderContent},
	{Slug: "sleep-hygiene", Title: "Sleep Hygiene", Content: placeholderContent},
}

type psychoeducationUsecase struct {
	Log *zap.Logger
}

func NewPsychoeducationUsecase(logger *zap.Logger) contracts.PsychoeducationUsecase {
	return &psychoeducationUsecase{Log: logger}
}

func (uc *psychoeducationUsecase) FindAllTopics(ctx context.Context) []responses.TopicSummary {
	result := make([]responses.TopicSummary, len(topics))
	for i, topic := range topics {
		result[i] = responses.TopicSummary{Slug: topic.Slug, Title: topic.Title}
	}
	return result
}

func (uc *psychoeducationUsecase) FindTopicBySlug(ctx context.Context, slug string) (*responses.Topic, error) {
	for _, topic := range topics {
		if topic.Slug == slug {
			return &responses.Topic{
				Slug:    topic.Slug,
				Title:   topic.Title,
				Content: topic.Content,
			}, nil
		}
	}

	uc.Log.Warn("psychoeducationUsecase.FindTopicBySlug unknown topic",
		zap.String(constvars.LoggingRequestIDKey, utils.RequestIDFromContext(ctx)),
		zap.String(constvars.LoggingTopicKey, slug),
	)
	return nil, exceptions.ErrUnknownTopic(errors.New("no such topic"), slug)
}
