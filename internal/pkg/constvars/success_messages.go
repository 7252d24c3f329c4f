package constvars

const (
	GetViewsSuccessMessage           = "Successfully retrieved navigation views"
	GetViewSuccessMessage            = "Successfully retrieved view"
	GetAssessmentsSuccessMessage     = "Successfully retrieved assessments"
	GetAssessmentSuccessMessage      = "Successfully retrieved assessment"
	EvaluateAssessmentSuccessMessage = "Successfully evaluated assessment"
	GetTopicsSuccessMessage          = "Successfully retrieved psychoeducation topics"
	GetTopicSuccessMessage           = "Successfully retrieved psychoeducation topic"
	SendChatMessageSuccessMessage    = "Successfully sent chat message"
	LogMoodSuccessMessage            = "Successfully logged mood"
	GetCrisisHelplinesSuccessMessage = "Successfully retrieved crisis helplines"
	HealthCheckSuccessMessage        = "Service is healthy"
)
