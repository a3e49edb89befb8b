package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/iwvelando/boiler-fuel/internal/calculator"
	"github.com/iwvelando/boiler-fuel/internal/config"
	"github.com/iwvelando/boiler-fuel/internal/logging"
	"github.com/iwvelando/boiler-fuel/pkg/constants"
	"github.com/iwvelando/boiler-fuel/pkg/density"
	"github.com/iwvelando/boiler-fuel/pkg/eos"
	"github.com/iwvelando/boiler-fuel/pkg/format"
	"github.com/iwvelando/boiler-fuel/pkg/output"
	"github.com/iwvelando/boiler-fuel/pkg/validation"
	"go.uber.org/zap"
)

type options struct {
	configLocation string
	outputFormat   string
	logLevel       string
	airCheck       bool
	noOperating    bool

	fuel              string
	capacity          float64
	unit              string
	efficiency        float64
	hours             float64
	reference         string
	lhv               float64
	mixture           string
	operatingTemp     float64
	operatingPressure float64

	set map[string]bool
}

func parseFlags(args []string) (*options, error) {
	opts := &options{set: make(map[string]bool)}

	fset := flag.NewFlagSet("boiler-fuel", flag.ContinueOnError)
	fset.StringVar(&opts.configLocation, "config", constants.DefaultConfigFile, "path to configuration file")
	fset.StringVar(&opts.outputFormat, "output-format", "", "type of output override: pretty, csv, json")
	fset.StringVar(&opts.logLevel, "log-level", "", "log level override (debug, info, warn, error)")
	fset.BoolVar(&opts.airCheck, "air-check", false, "print the oracle's air density at the reference condition and exit")
	fset.BoolVar(&opts.noOperating, "no-operating", false, "skip the operating condition density lookup")

	fset.StringVar(&opts.fuel, "fuel", "", "fuel preset: natural-gas, lng, lpg or custom")
	fset.Float64Var(&opts.capacity, "capacity", 0, "boiler capacity")
	fset.StringVar(&opts.unit, "unit", "", "capacity unit: kcal/h or kW")
	fset.Float64Var(&opts.efficiency, "efficiency", 0, "boiler efficiency in percent (60-100)")
	fset.Float64Var(&opts.hours, "hours", 0, "annual operating hours")
	fset.StringVar(&opts.reference, "reference", "", "reference condition: normal (0 °C) or standard (15 °C)")
	fset.Float64Var(&opts.lhv, "lhv", 0, "lower heating value override in kcal/Nm³")
	fset.StringVar(&opts.mixture, "mixture", "", "mixture descriptor override, e.g. HEOS::Methane[0.9]&Ethane[0.1]")
	fset.Float64Var(&opts.operatingTemp, "operating-temp", 0, "operating temperature in °C")
	fset.Float64Var(&opts.operatingPressure, "operating-pressure", 0, "operating pressure in bar absolute")

	if err := fset.Parse(args); err != nil {
		return nil, err
	}
	fset.Visit(func(f *flag.Flag) {
		opts.set[f.Name] = true
	})

	return opts, nil
}

// loadConfiguration reads the configuration file, falling back to defaults
// when the default file is absent. The boolean reports the fallback.
func loadConfiguration(opts *options) (*config.Configuration, bool, error) {
	conf, err := config.LoadConfiguration(opts.configLocation)
	if err == nil {
		return conf, false, nil
	}
	if !opts.set["config"] {
		if _, statErr := os.Stat(opts.configLocation); errors.Is(statErr, fs.ErrNotExist) {
			return config.Default(), true, nil
		}
	}
	return nil, false, err
}

// applyOverrides copies explicitly given flags onto the configuration.
func applyOverrides(conf *config.Configuration, opts *options) {
	if opts.set["fuel"] {
		conf.Fuel.Preset = opts.fuel
	}
	if opts.set["lhv"] {
		conf.Fuel.LHV = opts.lhv
	}
	if opts.set["mixture"] {
		conf.Fuel.Mixture = opts.mixture
	}
	if opts.set["capacity"] {
		conf.Boiler.Capacity = opts.capacity
	}
	if opts.set["unit"] {
		conf.Boiler.Unit = opts.unit
	}
	if opts.set["efficiency"] {
		conf.Operation.Efficiency = opts.efficiency
	}
	if opts.set["hours"] {
		conf.Operation.AnnualHours = opts.hours
	}
	if opts.set["reference"] {
		conf.Reference = opts.reference
	}
	if opts.set["operating-temp"] {
		conf.Operating.Temperature = opts.operatingTemp
		conf.Operating.Enabled = true
	}
	if opts.set["operating-pressure"] {
		conf.Operating.Pressure = opts.operatingPressure
		conf.Operating.Enabled = true
	}
	if opts.noOperating {
		conf.Operating.Enabled = false
	}
	if opts.outputFormat != "" {
		conf.Output.Format = opts.outputFormat
	}
	if conf.Output.Format == "" {
		conf.Output.Format = constants.OutputFormatPretty
	}
}

func writeResult(w io.Writer, outputFormat string, in calculator.Inputs, res calculator.Result) error {
	switch outputFormat {
	case constants.OutputFormatCSV:
		return output.CsvFormat(w, in, res)
	case constants.OutputFormatJSON:
		return output.JSONFormat(w, in, res)
	default:
		return output.PrettyFormat(w, in, res)
	}
}

func airCheck(w io.Writer, oracle density.Oracle, reference string) error {
	cond, err := density.ParseReference(reference)
	if err != nil {
		return err
	}
	rho, err := density.AirDensity(oracle, cond)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "Air density at %s: %s kg/m³\n", cond, format.Number(rho, 4))
	return err
}

func main() {
	opts, err := parseFlags(os.Args[1:])
	if err != nil {
		os.Exit(2)
	}

	conf, usedDefaults, err := loadConfiguration(opts)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to load configuration at %s\", \"error\": \"%v\"}\n", opts.configLocation, err)
		os.Exit(1)
	}
	applyOverrides(conf, opts)

	logger, err := logging.New(conf.Logging, opts.logLevel)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to initialize logger\", \"error\": \"%v\"}\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = logger.Sync()
	}()

	if usedDefaults {
		logger.Warn(fmt.Sprintf("no configuration at %s, using defaults; see %s", opts.configLocation, constants.ExampleConfigFile),
			zap.String("op", "main"),
		)
	}

	oracle := eos.New()

	if opts.airCheck {
		if err := airCheck(os.Stdout, oracle, conf.Reference); err != nil {
			logger.Fatal("air density check failed",
				zap.String("op", "main"),
				zap.Error(err),
			)
		}
		return
	}

	if err := validation.ValidateOutputFormat(conf.Output.Format); err != nil {
		logger.Fatal(err.Error(),
			zap.String("op", "main"),
		)
	}

	for _, warning := range conf.ValidateConfiguration() {
		logger.Warn("Configuration warning: "+warning,
			zap.String("op", "main"),
		)
	}

	inputs, err := conf.ToInputs()
	if err != nil {
		logger.Fatal("invalid calculation inputs",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}

	res := calculator.Calculate(logger, oracle, inputs)

	if err := writeResult(os.Stdout, conf.Output.Format, inputs, res); err != nil {
		logger.Fatal("failed to write output",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}
}
