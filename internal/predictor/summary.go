package predictor

import (
	"fmt"
	"math"

	"github.com/JavaFXpert/fish-bite-predictor/internal/weather"
)

// Summary is the display view of an observation: rounded values, the
// pressure trend label, and a one-line conditions string.
type Summary struct {
	AirTemp       string `json:"airTemp"`
	WaterTemp     string `json:"waterTemp"`
	Pressure      string `json:"pressure"`
	PressureTrend string `json:"pressureTrend"`
	WindSpeed     string `json:"windSpeed"`
	Precipitation string `json:"precipitation"`
	CloudCover    string `json:"cloudCover"`
	Conditions    string `json:"conditions"`
}

// Summarize renders an observation for display.
func Summarize(obs weather.Observation) Summary {
	trendIcon, trendLabel := PressureTrend(obs.PressureChangeHpa)

	precip := "None"
	if obs.PrecipIn > 0 {
		precip = fmt.Sprintf("%.2f in", obs.PrecipIn)
	}

	return Summary{
		AirTemp:       fmt.Sprintf("%.0f°F", math.Round(obs.AirTempF)),
		WaterTemp:     fmt.Sprintf("%.0f°F", math.Round(obs.WaterTempF)),
		Pressure:      fmt.Sprintf("%.1f hPa", obs.PressureHpa),
		PressureTrend: trendIcon + " " + trendLabel,
		WindSpeed:     fmt.Sprintf("%.0f mph", math.Round(obs.WindSpeedMph)),
		Precipitation: precip,
		CloudCover:    fmt.Sprintf("%.0f%%", obs.CloudCoverPct),
		Conditions:    Conditions(obs.CloudCoverPct, obs.PrecipIn),
	}
}

// PressureTrend labels a pressure change: more than 0.5 hPa either way is
// rising or falling, anything in between (bounds included) is stable.
func PressureTrend(change float64) (icon, label string) {
	switch {
	case change > 0.5:
		return "↗️", "Rising"
	case change < -0.5:
		return "↘️", "Falling"
	default:
		return "→", "Stable"
	}
}

// Conditions builds the summary string from cloud-cover bands, appending
// ", Rainy" when precipitation exceeds a trace.
func Conditions(cloudCoverPct, precipIn float64) string {
	var conditions string
	switch {
	case cloudCoverPct > 75:
		conditions = "Overcast"
	case cloudCoverPct > 50:
		conditions = "Mostly Cloudy"
	case cloudCoverPct > 25:
		conditions = "Partly Cloudy"
	default:
		conditions = "Clear"
	}

	if precipIn > 0.1 {
		conditions += ", Rainy"
	}
	return conditions
}
