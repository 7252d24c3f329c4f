package responses

type ScaleOption struct {
	Value int    `json:"value"`
	Label string `json:"label"`
}

type ResponseScale struct {
	Min     int           `json:"min"`
	Max     int           `json:"max"`
	Options []ScaleOption `json:"options"`
}

type AssessmentSummary struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Focus         string `json:"focus"`
	QuestionCount int    `json:"question_count"`
}

type Question struct {
	Number int    `json:"number"`
	Text   string `json:"text"`
}

type Assessment struct {
	ID        string        `json:"id"`
	Name      string        `json:"name"`
	Focus     string        `json:"focus"`
	Questions []Question    `json:"questions"`
	Scale     ResponseScale `json:"scale"`
}

type Evaluation struct {
	AssessmentID        string           `json:"assessment_id"`
	AssessmentName      string           `json:"assessment_name"`
	TotalScore          int              `json:"total_score"`
	MaxScore            int              `json:"max_score"`
	SeverityBand        string           `json:"severity_band"`
	Summary             string           `json:"summary"`
	InterpretationGuide string           `json:"interpretation_guide"`
	CrisisHelplines     []CrisisHelpline `json:"crisis_helplines,omitempty"`
}
