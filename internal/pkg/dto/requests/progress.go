package requests

// LogMood uses a pointer so that an omitted mood is told apart from a mood of 0.
type LogMood struct {
	Mood *int `json:"mood" validate:"required,gte=0,lte=10"`
}
