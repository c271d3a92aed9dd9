package species

import (
	"fmt"
	"sort"
)

// ActivityLevel is a coarse classification of how aggressively a species
// feeds. It is carried in the catalog for future use; scoring ignores it.
type ActivityLevel string

const (
	ActivityLow    ActivityLevel = "low"
	ActivityMedium ActivityLevel = "medium"
	ActivityHigh   ActivityLevel = "high"
)

// TempRange is an inclusive [low, high] water temperature interval in °F.
type TempRange struct {
	Low  float64 `json:"low"`
	High float64 `json:"high"`
}

// Contains reports whether t falls inside the range, bounds included.
func (r TempRange) Contains(t float64) bool {
	return t >= r.Low && t <= r.High
}

// Species describes one catalog entry: the temperature bands and light
// preference that drive condition scoring.
type Species struct {
	ID              string        `json:"id"`
	Name            string        `json:"name"`
	OptimalTemp     TempRange     `json:"optimalTemp"`
	AcceptableTemp  TempRange     `json:"acceptableTemp"`
	PrefersOvercast bool          `json:"prefersOvercast"`
	ActivityLevel   ActivityLevel `json:"activityLevel"`
}

// DefaultID is the species selected for a fresh session.
const DefaultID = "largemouth-bass"

// catalog is the static reference data. Temperature bands follow common
// freshwater guidance for the US Midwest deployment region.
var catalog = map[string]Species{
	"largemouth-bass": {
		ID: "largemouth-bass", Name: "Largemouth Bass",
		OptimalTemp: TempRange{60, 75}, AcceptableTemp: TempRange{55, 80},
		PrefersOvercast: true, ActivityLevel: ActivityHigh,
	},
	"smallmouth-bass": {
		ID: "smallmouth-bass", Name: "Smallmouth Bass",
		OptimalTemp: TempRange{55, 70}, AcceptableTemp: TempRange{50, 75},
		PrefersOvercast: false, ActivityLevel: ActivityHigh,
	},
	"crappie": {
		ID: "crappie", Name: "Crappie",
		OptimalTemp: TempRange{55, 70}, AcceptableTemp: TempRange{50, 75},
		PrefersOvercast: true, ActivityLevel: ActivityMedium,
	},
	"bluegill": {
		ID: "bluegill", Name: "Bluegill",
		OptimalTemp: TempRange{65, 80}, AcceptableTemp: TempRange{60, 85},
		PrefersOvercast: false, ActivityLevel: ActivityHigh,
	},
	"catfish": {
		ID: "catfish", Name: "Catfish",
		OptimalTemp: TempRange{70, 85}, AcceptableTemp: TempRange{65, 90},
		PrefersOvercast: true, ActivityLevel: ActivityMedium,
	},
	"walleye": {
		ID: "walleye", Name: "Walleye",
		OptimalTemp: TempRange{50, 65}, AcceptableTemp: TempRange{45, 70},
		PrefersOvercast: true, ActivityLevel: ActivityMedium,
	},
	"northern-pike": {
		ID: "northern-pike", Name: "Northern Pike",
		OptimalTemp: TempRange{50, 65}, AcceptableTemp: TempRange{45, 70},
		PrefersOvercast: true, ActivityLevel: ActivityHigh,
	},
	"muskie": {
		ID: "muskie", Name: "Muskie",
		OptimalTemp: TempRange{55, 70}, AcceptableTemp: TempRange{50, 75},
		PrefersOvercast: true, ActivityLevel: ActivityMedium,
	},
	"yellow-perch": {
		ID: "yellow-perch", Name: "Yellow Perch",
		OptimalTemp: TempRange{55, 68}, AcceptableTemp: TempRange{50, 72},
		PrefersOvercast: true, ActivityLevel: ActivityHigh,
	},
}

// Get returns the species for id.
func Get(id string) (Species, bool) {
	s, ok := catalog[id]
	return s, ok
}

// All returns every catalog entry sorted by ID for stable listings.
func All() []Species {
	out := make([]Species, 0, len(catalog))
	for _, s := range catalog {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Validate checks the catalog invariants: every temperature interval is
// non-empty and the acceptable interval contains the optimal one. Run once
// at startup; a violation is a programming error in the table above.
func Validate() error {
	if _, ok := catalog[DefaultID]; !ok {
		return fmt.Errorf("default species %q missing from catalog", DefaultID)
	}
	for id, s := range catalog {
		if s.ID != id {
			return fmt.Errorf("species %q: ID field %q does not match key", id, s.ID)
		}
		if s.OptimalTemp.Low > s.OptimalTemp.High {
			return fmt.Errorf("species %q: empty optimal range", id)
		}
		if s.AcceptableTemp.Low > s.AcceptableTemp.High {
			return fmt.Errorf("species %q: empty acceptable range", id)
		}
		if s.OptimalTemp.Low < s.AcceptableTemp.Low || s.OptimalTemp.High > s.AcceptableTemp.High {
			return fmt.Errorf("species %q: optimal range not contained in acceptable range", id)
		}
	}
	return nil
}
