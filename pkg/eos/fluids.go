package eos

import (
	"sort"
	"strings"
)

// Fluid holds the pure component constants needed by the Peng-Robinson
// equation of state, plus the temperature range the data is trusted over.
type Fluid struct {
	Name      string
	Tc        float64 // critical temperature, K
	Pc        float64 // critical pressure, Pa
	Omega     float64 // acentric factor
	MolarMass float64 // kg/mol
	Tmin      float64 // triple point, K
	Tmax      float64 // K
}

// MaxPressure is the upper pressure bound accepted for any fluid (Pa).
const MaxPressure = 1e9

var fluids = map[string]Fluid{
	"Methane":       {Name: "Methane", Tc: 190.564, Pc: 4.5992e6, Omega: 0.01142, MolarMass: 0.0160428, Tmin: 90.6941, Tmax: 625},
	"Ethane":        {Name: "Ethane", Tc: 305.322, Pc: 4.8722e6, Omega: 0.0995, MolarMass: 0.03006904, Tmin: 90.368, Tmax: 675},
	"Propane":       {Name: "Propane", Tc: 369.89, Pc: 4.2512e6, Omega: 0.1521, MolarMass: 0.04409562, Tmin: 85.525, Tmax: 650},
	"n-Butane":      {Name: "n-Butane", Tc: 425.125, Pc: 3.796e6, Omega: 0.201, MolarMass: 0.0581222, Tmin: 134.895, Tmax: 575},
	"IsoButane":     {Name: "IsoButane", Tc: 407.81, Pc: 3.629e6, Omega: 0.184, MolarMass: 0.0581222, Tmin: 113.73, Tmax: 575},
	"n-Pentane":     {Name: "n-Pentane", Tc: 469.7, Pc: 3.37e6, Omega: 0.251, MolarMass: 0.07214878, Tmin: 143.47, Tmax: 600},
	"Nitrogen":      {Name: "Nitrogen", Tc: 126.192, Pc: 3.3958e6, Omega: 0.0372, MolarMass: 0.02801348, Tmin: 63.151, Tmax: 2000},
	"Oxygen":        {Name: "Oxygen", Tc: 154.581, Pc: 5.043e6, Omega: 0.0222, MolarMass: 0.0319988, Tmin: 54.361, Tmax: 2000},
	"CarbonDioxide": {Name: "CarbonDioxide", Tc: 304.1282, Pc: 7.3773e6, Omega: 0.22394, MolarMass: 0.0440098, Tmin: 216.592, Tmax: 2000},
	"Hydrogen":      {Name: "Hydrogen", Tc: 33.145, Pc: 1.2964e6, Omega: -0.219, MolarMass: 0.00201588, Tmin: 13.957, Tmax: 1000},
	"Argon":         {Name: "Argon", Tc: 150.687, Pc: 4.863e6, Omega: -0.00219, MolarMass: 0.039948, Tmin: 83.806, Tmax: 2000},
	// Air is treated as a pseudo-pure fluid.
	"Air": {Name: "Air", Tc: 132.5306, Pc: 3.786e6, Omega: 0.0335, MolarMass: 0.02896546, Tmin: 59.75, Tmax: 2000},
}

var aliases = map[string]string{
	"methane":       "Methane",
	"ch4":           "Methane",
	"ethane":        "Ethane",
	"c2h6":          "Ethane",
	"propane":       "Propane",
	"c3h8":          "Propane",
	"n-butane":      "n-Butane",
	"nbutane":       "n-Butane",
	"butane":        "n-Butane",
	"isobutane":     "IsoButane",
	"i-butane":      "IsoButane",
	"ibutane":       "IsoButane",
	"n-pentane":     "n-Pentane",
	"npentane":      "n-Pentane",
	"pentane":       "n-Pentane",
	"nitrogen":      "Nitrogen",
	"n2":            "Nitrogen",
	"oxygen":        "Oxygen",
	"o2":            "Oxygen",
	"carbondioxide": "CarbonDioxide",
	"co2":           "CarbonDioxide",
	"hydrogen":      "Hydrogen",
	"h2":            "Hydrogen",
	"argon":         "Argon",
	"ar":            "Argon",
	"air":           "Air",
}

// LookupFluid resolves a component name or alias, ignoring case.
func LookupFluid(name string) (Fluid, bool) {
	canonical, ok := aliases[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Fluid{}, false
	}
	f, ok := fluids[canonical]
	return f, ok
}

// FluidNames returns the canonical names of all known fluids, sorted.
func FluidNames() []string {
	names := make([]string, 0, len(fluids))
	for name := range fluids {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
