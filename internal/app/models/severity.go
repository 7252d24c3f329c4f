package models

// SeverityBand is the textual category assigned to a total score. The bands
// are shared by every instrument.
type SeverityBand string

const (
	SeverityMinimal  SeverityBand = "Minimal"
	SeverityMild     SeverityBand = "Mild"
	SeverityModerate SeverityBand = "Moderate"
	SeveritySevere   SeverityBand = "Severe"
)

// BandRange is a closed score range. Max < 0 means unbounded.
type BandRange struct {
	Band SeverityBand
	Min  int
	Max  int
}

var bandRanges = []BandRange{
	{Band: SeverityMinimal, Min: 0, Max: 4},
	{Band: SeverityMild, Min: 5, Max: 9},
	{Band: SeverityModerate, Min: 10, Max: 14},
	{Band: SeveritySevere, Min: 15, Max: -1},
}

func BandRanges() []BandRange {
	ranges := make([]BandRange, len(bandRanges))
	copy(ranges, bandRanges)
	return ranges
}

func (r BandRange) Contains(total int) bool {
	return total >= r.Min && (r.Max < 0 || total <= r.Max)
}

func (b SeverityBand) String() string {
	return string(b)
}
