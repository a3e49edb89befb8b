// Package constants provides shared constants for the boiler-fuel application.
package constants

// Unit conversion constants
const (
	// KcalPerHourPerKW relates boiler capacity units: 1 kW = 860 kcal/h.
	KcalPerHourPerKW = 860.0

	// KcalPerKWh converts a heating value in kcal to kWh.
	KcalPerKWh = 860.0

	// CelsiusOffset converts Celsius to Kelvin.
	CelsiusOffset = 273.15

	// PascalPerBar converts bar to the oracle's base pressure unit.
	PascalPerBar = 1e5

	// AtmosphericPressureBar is the reference pressure of both Nm³ and Sm³.
	AtmosphericPressureBar = 1.01325

	// PercentageMultiplier is used for percentage conversions
	PercentageMultiplier = 100.0
)

// Input bounds, matching the limits of the calculation form.
const (
	// MinEfficiencyPercent is the lowest accepted boiler efficiency.
	MinEfficiencyPercent = 60.0

	// MaxEfficiencyPercent is the highest accepted boiler efficiency.
	MaxEfficiencyPercent = 100.0

	// MinLowerHeatingValue is the smallest accepted manual LHV override (kcal/Nm³).
	MinLowerHeatingValue = 1.0

	// HoursPerYear caps the annual operating hours.
	HoursPerYear = 8784.0
)

// Form defaults
const (
	// DefaultFuel is the preset selected when nothing else is configured.
	DefaultFuel = "natural-gas"

	// DefaultCapacityUnit is the unit the capacity is entered in by default.
	DefaultCapacityUnit = "kcal/h"

	// DefaultEfficiencyPercent is the default boiler efficiency.
	DefaultEfficiencyPercent = 90.0

	// DefaultAnnualHours is the default annual operating time.
	DefaultAnnualHours = 3000.0

	// DefaultReference is the default reference condition.
	DefaultReference = "normal"

	// DefaultOperatingTemperatureC is the default operating temperature.
	DefaultOperatingTemperatureC = 20.0

	// DefaultOperatingPressureBar is the default operating pressure (absolute).
	DefaultOperatingPressureBar = AtmosphericPressureBar
)

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatCSV is the CSV output format
	OutputFormatCSV = "csv"

	// OutputFormatJSON is the JSON output format
	OutputFormatJSON = "json"
)

// Configuration file constants
const (
	// DefaultConfigFile is the default configuration file name
	DefaultConfigFile = "config.yaml"

	// ExampleConfigFile is the example configuration file name
	ExampleConfigFile = "config.yaml.example"

	// DefaultServerConfigFile is the default server configuration file name
	DefaultServerConfigFile = "server-config.yaml"
)

// Server configuration defaults
const (
	// DefaultServerAddress is the default HTTP listen address for the web UI
	DefaultServerAddress = ":8080"

	// DefaultMaxBodySizeBytes is the default maximum request body size (64 KB)
	DefaultMaxBodySizeBytes int64 = 64 * 1024
)

// Comparison tolerances
const (
	// FlowTolerance is the tolerance for volumetric flow comparisons (Nm³/h).
	FlowTolerance = 0.001

	// DensityTolerance is the tolerance for density comparisons (kg/m³).
	DensityTolerance = 0.0001
)
