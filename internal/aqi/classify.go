// Package aqi maps an aggregate air quality index to a severity level,
// health advisory, and related derived display values.
package aqi

// Level is a named severity bucket derived from the index
type Level int

const (
	LevelNone Level = iota
	LevelGood
	LevelModerate
	LevelSensitive
	LevelUnhealthy
	LevelVeryUnhealthy
	LevelHazardous
)

// String returns the display label of the level
func (l Level) String() string {
	switch l {
	case LevelGood:
		return "Good"
	case LevelModerate:
		return "Moderate"
	case LevelSensitive:
		return "Unhealthy for Sensitive Groups"
	case LevelUnhealthy:
		return "Unhealthy"
	case LevelVeryUnhealthy:
		return "Very Unhealthy"
	case LevelHazardous:
		return "Hazardous"
	default:
		return ""
	}
}

// Color returns the conventional hex color used for the level on
// gauges and tables
func (l Level) Color() string {
	switch l {
	case LevelGood:
		return "#28a745"
	case LevelModerate:
		return "#ffc107"
	case LevelSensitive:
		return "#fd7e14"
	case LevelUnhealthy:
		return "#dc3545"
	case LevelVeryUnhealthy:
		return "#6f42c1"
	case LevelHazardous:
		return "#7e0023"
	default:
		return "#6c757d"
	}
}

// Assessment is the classification result for one index value
type Assessment struct {
	Level    Level  `json:"level"`
	Label    string `json:"label"`
	Advisory string `json:"advisory"`
	Mask     bool   `json:"mask"`
}

// band is one classification tier. Upper bounds are inclusive: an index
// exactly on a boundary belongs to the lower tier.
type band struct {
	upper    float64
	level    Level
	advisory string
	mask     bool
}

var bands = []band{
	{50, LevelGood, "Air quality is satisfactory, and air pollution poses little or no risk.", false},
	{100, LevelModerate, "Air quality is acceptable. There may be a risk for people who are unusually sensitive to air pollution.", false},
	{150, LevelSensitive, "Members of sensitive groups may experience health effects. The general public is less likely to be affected.", true},
	{200, LevelUnhealthy, "Some members of the general public may experience health effects; sensitive groups may experience more serious effects.", true},
	{300, LevelVeryUnhealthy, "Health alert: the risk of health effects is increased for everyone.", true},
}

var hazardous = band{0, LevelHazardous, "Health warning of emergency conditions: everyone is more likely to be affected.", true}

// Classify maps an index value to its severity assessment. A nil index
// means the station reported no aggregate reading and yields a neutral
// assessment rather than an error. Out-of-range values are still
// classified: anything at or below 50 is Good, anything above 300 is
// Hazardous.
func Classify(index *float64) Assessment {
	if index == nil {
		return Assessment{Level: LevelNone}
	}

	for _, b := range bands {
		if *index <= b.upper {
			return Assessment{Level: b.level, Label: b.level.String(), Advisory: b.advisory, Mask: b.mask}
		}
	}
	return Assessment{Level: hazardous.level, Label: hazardous.level.String(), Advisory: hazardous.advisory, Mask: hazardous.mask}
}

// CigaretteEquivalent converts an index value to the illustrative
// "cigarettes per day" count shown on the dashboard. The thresholds and
// outputs are fixed display values, not a physical model; a nil index
// counts as zero.
func CigaretteEquivalent(index *float64) int {
	if index == nil {
		return 0
	}

	v := *index
	switch {
	case v <= 50:
		return 0
	case v <= 100:
		return 2
	case v <= 200:
		return 5
	case v <= 300:
		return 8
	default:
		return 13
	}
}
