package weather

import "strconv"

const (
	// DefaultCity is the city the command-line entry points ask about.
	DefaultCity = "Pune"
	// StubTemperature is the fixed reading returned by StubProvider.
	StubTemperature = 32.5
)

// Report is a single temperature reading for a city.
type Report struct {
	City        string  `json:"city"`
	Temperature float64 `json:"temperature"`
}

// FormatLine renders the user-facing sentence for a reading, using the
// shortest representation that round-trips the value (32.5, not 32.500000).
func FormatLine(city string, temperature float64) string {
	return "The temperature in " + city + " is " + strconv.FormatFloat(temperature, 'f', -1, 64)
}
