package models

// Definition is an instrument together with its ordered questions.
type Definition struct {
	Instrument Instrument
	Questions  []string
}

func (d Definition) QuestionCount() int {
	return len(d.Questions)
}

// ScaleOption labels one value of the fixed 0..3 response scale.
type ScaleOption struct {
	Value int
	Label string
}

var responseScale = []ScaleOption{
	{Value: 0, Label: "Not at all"},
	{Value: 1, Label: "Several days"},
	{Value: 2, Label: "More than half the days"},
	{Value: 3, Label: "Nearly every day"},
}

func ResponseScale() []ScaleOption {
	scale := make([]ScaleOption, len(responseScale))
	copy(scale, responseScale)
	return scale
}
