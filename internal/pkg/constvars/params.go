package constvars

const (
	URLParamInstrument = "instrument"
	URLParamView       = "view"
	URLParamTopic      = "topic"
)
