package contracts

import (
	"context"
	"time"

	"mindcare-service/internal/pkg/dto/responses"
)

type ViewUsecase interface {
	FindAll(ctx context.Context) []responses.View
	FindBySlug(ctx context.Context, slug string) (*responses.View, error)
}

type PsychoeducationUsecase interface {
	FindAllTopics(ctx context.Context) []responses.TopicSummary
	FindTopicBySlug(ctx context.Context, slug string) (*responses.Topic, error)
}

type ChatUsecase interface {
	Reply(ctx context.Context, message string) *responses.ChatReply
}

type ProgressUsecase interface {
	LogMood(ctx context.Context, mood int) (*responses.MoodLog, error)
}

type CrisisUsecase interface {
	FindAllHelplines(ctx context.Context) []responses.CrisisHelpline
}

// Clock abstracts wall time so acknowledgements can be tested.
type Clock interface {
	Now() time.Time
}
