package predictor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JavaFXpert/fish-bite-predictor/internal/species"
	"github.com/JavaFXpert/fish-bite-predictor/internal/weather"
)

// baseObservation scores neutral-ish on every rule so individual rules can
// be varied in isolation.
func baseObservation() weather.Observation {
	return weather.Observation{
		WaterTempF:        70,
		PressureChangeHpa: 0,
		WindSpeedMph:      10,
		CloudCoverPct:     50,
		PrecipIn:          0,
	}
}

func mustSpecies(t *testing.T, id string) species.Species {
	t.Helper()
	sp, ok := species.Get(id)
	require.True(t, ok)
	return sp
}

func TestScore_PerfectCatfishConditions(t *testing.T) {
	catfish := mustSpecies(t, "catfish")
	obs := weather.Observation{
		WaterTempF:        75,
		PressureChangeHpa: -1.0,
		WindSpeedMph:      10,
		CloudCoverPct:     80,
		PrecipIn:          0.05,
	}

	p := Score(obs, catfish)

	assert.Equal(t, 100.0, p.Percentage)
	assert.Equal(t, "Excellent", p.Rating)
	require.Len(t, p.Factors, 5)
	for _, f := range p.Factors {
		assert.Equal(t, Positive, f.Polarity)
	}
}

func TestScore_AlwaysInRangeAndFiveFactors(t *testing.T) {
	sp := mustSpecies(t, "walleye")
	observations := []weather.Observation{
		{},
		{WaterTempF: -40, PressureChangeHpa: 50, WindSpeedMph: 60, CloudCoverPct: 100, PrecipIn: 3},
		{WaterTempF: 120, PressureChangeHpa: -50, WindSpeedMph: 0, CloudCoverPct: 0, PrecipIn: 0.01},
		baseObservation(),
	}

	for _, obs := range observations {
		p := Score(obs, sp)
		assert.GreaterOrEqual(t, p.Percentage, 0.0)
		assert.LessOrEqual(t, p.Percentage, 100.0)
		assert.Len(t, p.Factors, 5)
	}
}

func TestScore_TemperatureRule(t *testing.T) {
	// Largemouth bass: optimal 60-75, acceptable 55-80.
	bass := mustSpecies(t, "largemouth-bass")

	tests := []struct {
		name      string
		waterTemp float64
		delta     float64 // points vs the 20-point acceptable baseline
		polarity  Polarity
	}{
		{"optimal low bound", 60, 35, Positive},
		{"optimal high bound", 75, 35, Positive},
		{"acceptable only", 57, 20, Neutral},
		{"acceptable high bound", 80, 20, Neutral},
		{"outside", 90, 0, Negative},
		{"far below", 30, 0, Negative},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			obs := baseObservation()
			obs.WaterTempF = tt.waterTemp
			p := Score(obs, bass)

			// Isolate the rule: all other rules are fixed by baseObservation
			// at 20 (pressure) + 15 (wind) + 5 (cloud) + 7 (precip) = 47.
			assert.Equal(t, 47+tt.delta, p.Percentage)
			assert.Equal(t, tt.polarity, p.Factors[0].Polarity)
		})
	}
}

func TestScore_PressureRuleBoundaries(t *testing.T) {
	bass := mustSpecies(t, "largemouth-bass")

	tests := []struct {
		name     string
		change   float64
		points   float64
		polarity Polarity
	}{
		{"falling", -0.51, 30, Positive},
		{"exactly -0.5 is stable", -0.5, 20, Neutral},
		{"zero", 0, 20, Neutral},
		{"exactly +0.5 is stable", 0.5, 20, Neutral},
		{"rising", 0.51, 10, Negative},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			obs := baseObservation()
			obs.WaterTempF = 70 // optimal for bass: 35 points
			obs.PressureChangeHpa = tt.change
			p := Score(obs, bass)

			// 35 (temp) + 15 (wind) + 5 (cloud) + 7 (precip) = 62 baseline.
			assert.Equal(t, 62+tt.points, p.Percentage)
			assert.Equal(t, tt.polarity, p.Factors[1].Polarity)
		})
	}
}

func TestScore_WindRuleBoundaries(t *testing.T) {
	bass := mustSpecies(t, "largemouth-bass")

	tests := []struct {
		name     string
		wind     float64
		points   float64
		polarity Polarity
	}{
		{"low bound inclusive", 5, 15, Positive},
		{"high bound inclusive", 15, 15, Positive},
		{"just below", 4.9, 10, Neutral},
		{"just above", 15.1, 5, Negative},
		{"calm", 0, 10, Neutral},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			obs := baseObservation()
			obs.WindSpeedMph = tt.wind
			p := Score(obs, bass)

			// 35 (temp) + 20 (pressure) + 5 (cloud) + 7 (precip) = 67 baseline.
			assert.Equal(t, 67+tt.points, p.Percentage)
			assert.Equal(t, tt.polarity, p.Factors[2].Polarity)
		})
	}
}

func TestScore_CloudCoverRule(t *testing.T) {
	overcastLover := mustSpecies(t, "crappie")      // prefers overcast
	clearLover := mustSpecies(t, "smallmouth-bass") // prefers clear

	tests := []struct {
		name     string
		sp       species.Species
		cover    float64
		points   float64
		polarity Polarity
	}{
		{"overcast lover under heavy cover", overcastLover, 61, 10, Positive},
		{"overcast lover at exactly 60", overcastLover, 60, 5, Neutral},
		{"clear lover under clear sky", clearLover, 39, 10, Positive},
		{"clear lover at exactly 40", clearLover, 40, 5, Neutral},
		{"overcast lover under clear sky", overcastLover, 10, 5, Neutral},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			obs := baseObservation()
			obs.WaterTempF = 60 // optimal for both crappie and smallmouth
			obs.CloudCoverPct = tt.cover
			p := Score(obs, tt.sp)

			// 35 (temp) + 20 (pressure) + 15 (wind) + 7 (precip) = 77 baseline.
			assert.Equal(t, 77+tt.points, p.Percentage)
			assert.Equal(t, tt.polarity, p.Factors[3].Polarity)
		})
	}
}

func TestScore_PrecipitationBoundaries(t *testing.T) {
	bass := mustSpecies(t, "largemouth-bass")

	tests := []struct {
		name     string
		precip   float64
		points   float64
		polarity Polarity
	}{
		{"dry", 0, 7, Neutral},
		{"trace", 0.01, 10, Positive},
		{"exactly 0.2 is still light rain", 0.2, 10, Positive},
		{"heavy", 0.21, 3, Negative},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			obs := baseObservation()
			obs.PrecipIn = tt.precip
			p := Score(obs, bass)

			// 35 (temp) + 20 (pressure) + 15 (wind) + 5 (cloud) = 75 baseline.
			assert.Equal(t, 75+tt.points, p.Percentage)
			assert.Equal(t, tt.polarity, p.Factors[4].Polarity)
		})
	}
}

func TestScore_FactorOrderIsFixed(t *testing.T) {
	p := Score(baseObservation(), mustSpecies(t, "bluegill"))
	require.Len(t, p.Factors, 5)
	assert.Equal(t, "🌡️", p.Factors[0].Icon)
	assert.Equal(t, "➡️", p.Factors[1].Icon)
	assert.Equal(t, "💨", p.Factors[2].Icon)
	assert.Equal(t, "🌤️", p.Factors[3].Icon)
	assert.Equal(t, "✅", p.Factors[4].Icon)
}

func TestRatingBands(t *testing.T) {
	tests := []struct {
		percentage float64
		rating     string
	}{
		{100, "Excellent"},
		{80, "Excellent"},
		{79.999, "Good"},
		{60, "Good"},
		{59.999, "Fair"},
		{40, "Fair"},
		{39.999, "Poor"},
		{0, "Poor"},
	}

	for _, tt := range tests {
		rating, icon, message := ratingBand(tt.percentage, "Walleye")
		assert.Equal(t, tt.rating, rating, "percentage %v", tt.percentage)
		assert.NotEmpty(t, icon)
		assert.Contains(t, message, "Walleye")
	}
}
