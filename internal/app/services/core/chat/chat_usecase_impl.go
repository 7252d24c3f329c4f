package chat

import (
	"context"

	"mindcare-service/internal/app/contracts"
	"mindcare-service/internal/pkg/constvars"
	"mindcare-service/internal/pkg/dto/responses"
	"mindcare-service/internal/pkg/utils"

	"go.uber.org/zap"
)

// SupportReply is returned for every message. There is no inference behind it.
const SupportReply = "I'm here to listen. Remember, taking time to reflect is the first step to healing."

type chatUsecase struct {
	Log *zap.Logger
}

func NewChatUsecase(logger *zap.Logger) contracts.ChatUsecase {
	return &chatUsecase{Log: logger}
}

// Reply never logs the message itself.
func (uc *chatUsecase) Reply(ctx context.Context, message string) *responses.ChatReply {
	uc.Log.Info("chatUsecase.Reply called",
		zap.String(constvars.LoggingRequestIDKey, utils.RequestIDFromContext(ctx)),
	)
	return &responses.ChatReply{Reply: SupportReply}
}
