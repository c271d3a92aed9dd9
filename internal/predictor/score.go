// Package predictor turns a weather observation and a species into a bite
// score with human-readable contributing factors. Scoring is pure and total:
// it never fails and performs no I/O.
package predictor

import (
	"fmt"
	"math"

	"github.com/JavaFXpert/fish-bite-predictor/internal/species"
	"github.com/JavaFXpert/fish-bite-predictor/internal/weather"
)

// Polarity classifies a factor's effect on the score.
type Polarity string

const (
	Positive Polarity = "positive"
	Neutral  Polarity = "neutral"
	Negative Polarity = "negative"
)

// Factor is one explanation line produced by a single scoring rule.
type Factor struct {
	Polarity Polarity `json:"polarity"`
	Icon     string   `json:"icon"`
	Text     string   `json:"text"`
}

// Prediction is the complete scoring output for one observation/species pair.
type Prediction struct {
	Percentage float64  `json:"percentage"`
	Rating     string   `json:"rating"`
	Icon       string   `json:"icon"`
	Message    string   `json:"message"`
	Factors    []Factor `json:"factors"`
}

// Rule weights. They sum to 100 so the percentage equals the raw total, but
// the division below keeps the percentage correct if weights ever change.
const (
	maxTempPoints     = 35
	maxPressurePoints = 30
	maxWindPoints     = 15
	maxCloudPoints    = 10
	maxPrecipPoints   = 10

	maxTotalPoints = maxTempPoints + maxPressurePoints + maxWindPoints + maxCloudPoints + maxPrecipPoints
)

// Score evaluates the five weighted rules in fixed order (temperature,
// pressure trend, wind, cloud cover, precipitation), each contributing one
// Factor, and maps the accumulated points to a rating band.
func Score(obs weather.Observation, sp species.Species) Prediction {
	var total float64
	factors := make([]Factor, 0, 5)

	add := func(points float64, f Factor) {
		total += points
		factors = append(factors, f)
	}

	// Water temperature (35 points). Interval bounds are inclusive.
	switch {
	case sp.OptimalTemp.Contains(obs.WaterTempF):
		add(maxTempPoints, Factor{
			Polarity: Positive,
			Icon:     "🌡️",
			Text:     fmt.Sprintf("Perfect water temperature (%.0f°F) for %s", obs.WaterTempF, sp.Name),
		})
	case sp.AcceptableTemp.Contains(obs.WaterTempF):
		add(20, Factor{
			Polarity: Neutral,
			Icon:     "🌡️",
			Text:     fmt.Sprintf("Acceptable water temperature (%.0f°F), but not ideal", obs.WaterTempF),
		})
	default:
		add(0, Factor{
			Polarity: Negative,
			Icon:     "🌡️",
			Text:     fmt.Sprintf("Water temperature (%.0f°F) is outside optimal range", obs.WaterTempF),
		})
	}

	// Barometric pressure trend (30 points). A change of exactly ±0.5 hPa
	// counts as stable.
	switch {
	case obs.PressureChangeHpa < -0.5:
		add(maxPressurePoints, Factor{
			Polarity: Positive,
			Icon:     "📉",
			Text:     "Falling barometric pressure - fish are actively feeding!",
		})
	case obs.PressureChangeHpa <= 0.5:
		add(20, Factor{
			Polarity: Neutral,
			Icon:     "➡️",
			Text:     "Stable pressure - moderate fishing activity",
		})
	default:
		add(10, Factor{
			Polarity: Negative,
			Icon:     "📈",
			Text:     "Rising pressure - fish may be less active",
		})
	}

	// Wind (15 points). 5-15 mph inclusive is the sweet spot.
	switch {
	case obs.WindSpeedMph >= 5 && obs.WindSpeedMph <= 15:
		add(maxWindPoints, Factor{
			Polarity: Positive,
			Icon:     "💨",
			Text:     fmt.Sprintf("Good wind speed (%.0f mph) creates surface activity", math.Round(obs.WindSpeedMph)),
		})
	case obs.WindSpeedMph < 5:
		add(10, Factor{
			Polarity: Neutral,
			Icon:     "💨",
			Text:     "Light wind - calm conditions",
		})
	default:
		add(5, Factor{
			Polarity: Negative,
			Icon:     "💨",
			Text:     fmt.Sprintf("High wind (%.0f mph) may make fishing difficult", math.Round(obs.WindSpeedMph)),
		})
	}

	// Cloud cover vs light preference (10 points). Thresholds are exclusive:
	// exactly 60% is not overcast enough, exactly 40% is not clear enough.
	switch {
	case sp.PrefersOvercast && obs.CloudCoverPct > 60:
		add(maxCloudPoints, Factor{
			Polarity: Positive,
			Icon:     "☁️",
			Text:     fmt.Sprintf("%s prefer overcast conditions", sp.Name),
		})
	case !sp.PrefersOvercast && obs.CloudCoverPct < 40:
		add(maxCloudPoints, Factor{
			Polarity: Positive,
			Icon:     "☀️",
			Text:     "Clear skies favor this species",
		})
	default:
		add(5, Factor{
			Polarity: Neutral,
			Icon:     "🌤️",
			Text:     "Cloud cover is acceptable",
		})
	}

	// Precipitation (10 points). Exactly 0.2 in is still light rain.
	switch {
	case obs.PrecipIn > 0.2:
		add(3, Factor{
			Polarity: Negative,
			Icon:     "🌧️",
			Text:     "Heavy rain may reduce fishing success",
		})
	case obs.PrecipIn > 0:
		add(maxPrecipPoints, Factor{
			Polarity: Positive,
			Icon:     "🌦️",
			Text:     "Light rain can trigger feeding activity",
		})
	default:
		add(7, Factor{
			Polarity: Neutral,
			Icon:     "✅",
			Text:     "No precipitation",
		})
	}

	percentage := total / maxTotalPoints * 100
	rating, icon, message := ratingBand(percentage, sp.Name)

	return Prediction{
		Percentage: percentage,
		Rating:     rating,
		Icon:       icon,
		Message:    message,
		Factors:    factors,
	}
}

// ratingBand maps a percentage to its label, icon, and templated message.
func ratingBand(percentage float64, speciesName string) (rating, icon, message string) {
	switch {
	case percentage >= 80:
		return "Excellent", "🎣", fmt.Sprintf("Perfect conditions for %s! Get out there now!", speciesName)
	case percentage >= 60:
		return "Good", "👍", fmt.Sprintf("Good conditions for %s. Should be a productive day!", speciesName)
	case percentage >= 40:
		return "Fair", "🤔", fmt.Sprintf("Fair conditions for %s. They might bite with the right technique.", speciesName)
	default:
		return "Poor", "😕", fmt.Sprintf("Challenging conditions for %s. Consider trying another day.", speciesName)
	}
}
