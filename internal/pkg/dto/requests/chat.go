package requests

type SendChatMessage struct {
	Message string `json:"message" validate:"required,max=2000"`
}
