package models

import (
	"fmt"
	"strings"
)

// Instrument identifies a standardized self-assessment questionnaire.
type Instrument int

const (
	InstrumentPHQ9 Instrument = iota + 1
	InstrumentGAD7
	InstrumentWHO5
)

type instrumentInfo struct {
	id    string
	name  string
	focus string
}

var instrumentInfos = map[Instrument]instrumentInfo{
	InstrumentPHQ9: {id: "phq-9", name: "PHQ-9 (Depression)", focus: "Depression"},
	InstrumentGAD7: {id: "gad-7", name: "GAD-7 (Anxiety)", focus: "Anxiety"},
	InstrumentWHO5: {id: "who-5", name: "WHO-5 (Wellbeing)", focus: "Wellbeing"},
}

// Instruments lists every supported instrument in menu order.
func Instruments() []Instrument {
	return []Instrument{InstrumentPHQ9, InstrumentGAD7, InstrumentWHO5}
}

// ID is the URL-safe identifier, e.g. "phq-9".
func (i Instrument) ID() string {
	return instrumentInfos[i].id
}

// Name is the display name, also used as the key in the definitions file.
func (i Instrument) Name() string {
	return instrumentInfos[i].name
}

func (i Instrument) Focus() string {
	return instrumentInfos[i].focus
}

func (i Instrument) Valid() bool {
	_, ok := instrumentInfos[i]
	return ok
}

func (i Instrument) String() string {
	if !i.Valid() {
		return fmt.Sprintf("Instrument(%d)", int(i))
	}
	return i.ID()
}

// ParseInstrument accepts an instrument ID in any case ("phq-9", "PHQ9") or
// its exact display name.
func ParseInstrument(value string) (Instrument, error) {
	trimmed := strings.TrimSpace(value)
	normalized := strings.ReplaceAll(strings.ToLower(trimmed), "-", "")
	for _, instrument := range Instruments() {
		info := instrumentInfos[instrument]
		if trimmed == info.name || normalized == strings.ReplaceAll(info.id, "-", "") {
			return instrument, nil
		}
	}
	return 0, fmt.Errorf("unknown instrument %q", value)
}
