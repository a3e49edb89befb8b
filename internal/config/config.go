// Package config defines the data structures related to configuration and
// includes functions for loading the calculation inputs and converting them
// for the calculator.
package config

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/iwvelando/boiler-fuel/pkg/constants"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes environment variable overrides, e.g.
// BOILER_FUEL_BOILER_CAPACITY.
const EnvPrefix = "BOILER_FUEL"

// Configuration holds all configuration for boiler-fuel.
type Configuration struct {
	Fuel      FuelConfig      `yaml:"fuel"`
	Boiler    BoilerConfig    `yaml:"boiler"`
	Operation OperationConfig `yaml:"operation"`
	Reference string          `yaml:"reference"`
	Operating OperatingConfig `yaml:"operating"`
	Logging   LoggingConfig   `yaml:"logging,omitempty"`
	Output    OutputConfig    `yaml:"output,omitempty"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty"`      // debug, info, warn, error
	Format     string `yaml:"format,omitempty"`     // json, console
	OutputFile string `yaml:"outputFile,omitempty"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format string `yaml:"format,omitempty"` // pretty, csv, json
}

// FuelConfig selects a preset fuel and optionally overrides its heating
// value (kcal/Nm³) and mixture descriptor.
type FuelConfig struct {
	Preset  string  `yaml:"preset"`
	LHV     float64 `yaml:"lhv,omitempty"`
	Mixture string  `yaml:"mixture,omitempty"`
}

// BoilerConfig holds the boiler capacity and the unit it is entered in.
type BoilerConfig struct {
	Capacity float64 `yaml:"capacity"`
	Unit     string  `yaml:"unit"`
}

// OperationConfig holds the efficiency in percent and yearly running hours.
type OperationConfig struct {
	Efficiency  float64 `yaml:"efficiency"`
	AnnualHours float64 `yaml:"annualHours"`
}

// OperatingConfig is the optional operating condition for a second density
// lookup. Temperature is in °C, pressure in bar absolute.
type OperatingConfig struct {
	Enabled     bool    `yaml:"enabled"`
	Temperature float64 `yaml:"temperature"`
	Pressure    float64 `yaml:"pressure"`
}

// newViper returns a viper instance carrying the form defaults. Environment
// overrides apply only when withEnv is set.
func newViper(withEnv bool) *viper.Viper {
	v := viper.New()
	v.SetConfigType("yml")
	if withEnv {
		v.SetEnvPrefix(EnvPrefix)
		v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
		v.AutomaticEnv()
	}

	v.SetDefault("fuel.preset", constants.DefaultFuel)
	v.SetDefault("fuel.lhv", 0)
	v.SetDefault("fuel.mixture", "")
	v.SetDefault("boiler.capacity", 0)
	v.SetDefault("boiler.unit", constants.DefaultCapacityUnit)
	v.SetDefault("operation.efficiency", constants.DefaultEfficiencyPercent)
	v.SetDefault("operation.annualHours", constants.DefaultAnnualHours)
	v.SetDefault("reference", constants.DefaultReference)
	v.SetDefault("operating.enabled", true)
	v.SetDefault("operating.temperature", constants.DefaultOperatingTemperatureC)
	v.SetDefault("operating.pressure", constants.DefaultOperatingPressureBar)
	v.SetDefault("output.format", constants.OutputFormatPretty)
	return v
}

func decode(v *viper.Viper) (*Configuration, error) {
	var configuration Configuration
	if err := v.Unmarshal(&configuration); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}
	return &configuration, nil
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there. Keys missing from the file take the form defaults and
// BOILER_FUEL_* environment variables override both.
func LoadConfiguration(configPath string) (*Configuration, error) {
	v := newViper(true)
	v.SetConfigFile(configPath)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file, %s", err)
	}

	return decode(v)
}

// LoadConfigurationFromReader loads a YAML configuration from r. The
// environment is not consulted, so the data in r is taken as given.
func LoadConfigurationFromReader(r io.Reader) (*Configuration, error) {
	v := newViper(false)

	if err := v.ReadConfig(r); err != nil {
		return nil, fmt.Errorf("error reading config data, %s", err)
	}

	return decode(v)
}

// Default returns the configuration used when no file is given.
func Default() *Configuration {
	conf, err := LoadConfigurationFromReader(bytes.NewReader(nil))
	if err != nil {
		panic(fmt.Sprintf("default configuration: %v", err))
	}
	return conf
}
