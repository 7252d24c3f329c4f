package progress

import (
	"context"
	"fmt"
	"time"

	"mindcare-service/internal/app/contracts"
	"mindcare-service/internal/pkg/constvars"
	"mindcare-service/internal/pkg/dto/responses"
	"mindcare-service/internal/pkg/exceptions"
	"mindcare-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock reads the wall clock.
var SystemClock contracts.Clock = systemClock{}

type progressUsecase struct {
	Clock    contracts.Clock
	Location *time.Location
	Log      *zap.Logger
}

func NewProgressUsecase(clock contracts.Clock, location *time.Location, logger *zap.Logger) contracts.ProgressUsecase {
	if clock == nil {
		clock = SystemClock
	}
	if location == nil {
		location = time.UTC
	}
	return &progressUsecase{
		Clock:    clock,
		Location: location,
		Log:      logger,
	}
}

// LogMood acknowledges a mood rating. Nothing is stored.
func (uc *progressUsecase) LogMood(ctx context.Context, mood int) (*responses.MoodLog, error) {
	requestID := utils.RequestIDFromContext(ctx)
	if mood < constvars.MoodScaleMin || mood > constvars.MoodScaleMax {
		return nil, exceptions.ErrInvalidMood(fmt.Errorf("mood %d must be between %d and %d", mood, constvars.MoodScaleMin, constvars.MoodScaleMax))
	}

	date := uc.Clock.Now().In(uc.Location).Format(constvars.MoodLogDateFormat)
	uc.Log.Info("progressUsecase.LogMood acknowledged",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingMoodKey, mood),
	)

	return &responses.MoodLog{
		Mood:    mood,
		Max:     constvars.MoodScaleMax,
		Date:    date,
		Message: fmt.Sprintf("Mood %d/%d logged successfully on %s!", mood, constvars.MoodScaleMax, date),
	}, nil
}
