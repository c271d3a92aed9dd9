package weather

import (
	"math"
	"time"
)

// Derive builds an Observation from a raw provider reading. The reading is
// taken at face value; only the two derived fields (pressure change, water
// temperature) are computed here. loc is the deployment time zone and fixes
// which calendar month the water-temperature heuristic sees.
func Derive(r Reading, coords Coordinates, loc *time.Location) Observation {
	now := clock.Now().In(loc)

	return Observation{
		Coords:            coords,
		AirTempF:          r.AirTempF,
		WaterTempF:        EstimateWaterTemp(r.AirTempF, now.Month()),
		PressureHpa:       r.PressureHpa,
		PressureChangeHpa: PressureChange(r.PressureHpa, r.HourlyPressureHpa),
		WindSpeedMph:      r.WindSpeedMph,
		PrecipIn:          r.PrecipIn,
		CloudCoverPct:     r.CloudCoverPct,
		FetchedAt:         now,
	}
}

// PressureChange returns current pressure minus the reading from roughly
// three hours earlier. The hourly series includes the current hour as its
// final element, so three hours ago is the fourth entry from the end. A
// series shorter than four entries falls back to the current pressure,
// yielding zero change.
func PressureChange(current float64, hourly []float64) float64 {
	threeHoursAgo := current
	if len(hourly) >= 4 {
		threeHoursAgo = hourly[len(hourly)-4]
	}
	return current - threeHoursAgo
}

// EstimateWaterTemp estimates water temperature from air temperature.
// Water lags air: in the warm months it runs well below air temperature,
// in winter it tracks more closely. Results are rounded to the nearest
// whole degree, halves away from zero.
func EstimateWaterTemp(airTempF float64, month time.Month) float64 {
	var offset float64
	switch {
	case month >= time.May && month <= time.October:
		offset = 8
	case month == time.April:
		offset = 5
	default: // November through March
		offset = 3
	}
	return math.Round(airTempF - offset)
}
