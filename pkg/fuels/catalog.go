// Package fuels holds the fixed catalog of fuel presets and the manual
// override path for heating value and gas composition.
package fuels

import (
	"fmt"
	"strings"
)

// CustomID identifies a profile built entirely from overrides.
const CustomID = "custom"

// Profile describes a fuel by its lower heating value (kcal/Nm³) and the
// mixture descriptor used for density lookups.
type Profile struct {
	ID                string  `json:"id" yaml:"id"`
	Name              string  `json:"name" yaml:"name"`
	LowerHeatingValue float64 `json:"lowerHeatingValue" yaml:"lowerHeatingValue"`
	Mixture           string  `json:"mixture" yaml:"mixture"`
}

var catalog = []Profile{
	{
		ID:                "natural-gas",
		Name:              "Natural gas (≈8250 kcal/Nm³)",
		LowerHeatingValue: 8250,
		Mixture:           "HEOS::Methane[0.95]&Ethane[0.05]",
	},
	{
		ID:                "lng",
		Name:              "LNG / methane rich (≈9000 kcal/Nm³)",
		LowerHeatingValue: 9000,
		Mixture:           "HEOS::Methane[0.98]&Ethane[0.02]",
	},
	{
		ID:                "lpg",
		Name:              "LPG (≈22000 kcal/Nm³)",
		LowerHeatingValue: 22000,
		Mixture:           "HEOS::Propane[0.60]&n-Butane[0.40]",
	},
}

// Catalog returns a copy of the presets in display order.
func Catalog() []Profile {
	out := make([]Profile, len(catalog))
	copy(out, catalog)
	return out
}

// IDs returns the preset identifiers in display order.
func IDs() []string {
	ids := make([]string, 0, len(catalog))
	for _, p := range catalog {
		ids = append(ids, p.ID)
	}
	return ids
}

// Lookup returns the preset with the given id. Matching ignores case and
// surrounding whitespace.
func Lookup(id string) (Profile, error) {
	key := strings.ToLower(strings.TrimSpace(id))
	for _, p := range catalog {
		if p.ID == key {
			return p, nil
		}
	}
	return Profile{}, fmt.Errorf("unknown fuel %q, expected one of %s", id, strings.Join(IDs(), ", "))
}

// Resolve selects a preset and applies the optional overrides. A positive
// lhv replaces the preset heating value and a non-empty mixture replaces the
// preset descriptor. With no preset id both overrides are required and the
// result is a custom profile.
func Resolve(id string, lhv float64, mixture string) (Profile, error) {
	mixture = strings.TrimSpace(mixture)

	if strings.TrimSpace(id) == "" || strings.EqualFold(strings.TrimSpace(id), CustomID) {
		if lhv <= 0 || mixture == "" {
			return Profile{}, fmt.Errorf("custom fuel requires both a heating value and a mixture descriptor")
		}
		return Profile{
			ID:                CustomID,
			Name:              "Custom",
			LowerHeatingValue: lhv,
			Mixture:           mixture,
		}, nil
	}

	profile, err := Lookup(id)
	if err != nil {
		return Profile{}, err
	}
	if lhv > 0 {
		profile.LowerHeatingValue = lhv
	}
	if mixture != "" {
		profile.Mixture = mixture
	}
	return profile, nil
}
