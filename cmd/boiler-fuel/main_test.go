package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/iwvelando/boiler-fuel/internal/calculator"
	"github.com/iwvelando/boiler-fuel/internal/config"
	"github.com/iwvelando/boiler-fuel/pkg/testutil"
	"go.uber.org/zap"
)

func TestApplyOverrides(t *testing.T) {
	opts, err := parseFlags([]string{
		"-fuel", "lpg",
		"-capacity", "250",
		"-unit", "kW",
		"-efficiency", "88",
		"-hours", "5000",
		"-reference", "standard",
		"-operating-pressure", "3",
		"-output-format", "json",
	})
	if err != nil {
		t.Fatalf("parseFlags() error = %v", err)
	}

	conf := config.Default()
	conf.Operating.Enabled = false
	conf.Operating.Temperature = 12
	applyOverrides(conf, opts)

	if conf.Fuel.Preset != "lpg" || conf.Boiler.Capacity != 250 || conf.Boiler.Unit != "kW" {
		t.Errorf("unexpected fuel/boiler after overrides: %+v %+v", conf.Fuel, conf.Boiler)
	}
	if conf.Operation.Efficiency != 88 || conf.Operation.AnnualHours != 5000 {
		t.Errorf("unexpected operation after overrides: %+v", conf.Operation)
	}
	if conf.Reference != "standard" || conf.Output.Format != "json" {
		t.Errorf("unexpected reference/output: %q %q", conf.Reference, conf.Output.Format)
	}
	if !conf.Operating.Enabled || conf.Operating.Pressure != 3 || conf.Operating.Temperature != 12 {
		t.Errorf("expected operating pressure override to enable the lookup, got %+v", conf.Operating)
	}
}

func TestApplyOverridesLeavesUnsetFlags(t *testing.T) {
	opts, err := parseFlags([]string{"-no-operating"})
	if err != nil {
		t.Fatalf("parseFlags() error = %v", err)
	}

	conf := config.Default()
	conf.Boiler.Capacity = 1000
	applyOverrides(conf, opts)

	if conf.Boiler.Capacity != 1000 {
		t.Errorf("capacity overwritten by unset flag: %v", conf.Boiler.Capacity)
	}
	if conf.Operation.Efficiency != 90 {
		t.Errorf("efficiency overwritten by unset flag: %v", conf.Operation.Efficiency)
	}
	if conf.Operating.Enabled {
		t.Error("expected -no-operating to disable the operating lookup")
	}
	if conf.Output.Format != "pretty" {
		t.Errorf("Output.Format = %q, expected pretty", conf.Output.Format)
	}
}

func TestLoadConfigurationFallback(t *testing.T) {
	dir := t.TempDir()
	missing := filepath.Join(dir, "config.yaml")

	opts := &options{configLocation: missing, set: map[string]bool{}}
	conf, usedDefaults, err := loadConfiguration(opts)
	if err != nil {
		t.Fatalf("expected defaults for absent default config, got %v", err)
	}
	if !usedDefaults {
		t.Error("expected the fallback to be reported")
	}
	if conf.Fuel.Preset != "natural-gas" {
		t.Errorf("Fuel.Preset = %q, expected natural-gas", conf.Fuel.Preset)
	}

	opts.set["config"] = true
	if _, _, err := loadConfiguration(opts); err == nil {
		t.Error("expected error for explicitly named missing config")
	}

	if err := os.WriteFile(missing, []byte("boiler:\n  capacity: 42\n"), 0600); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	conf, usedDefaults, err = loadConfiguration(opts)
	if err != nil {
		t.Fatalf("loadConfiguration() error = %v", err)
	}
	if usedDefaults {
		t.Error("expected the file to be used")
	}
	if conf.Boiler.Capacity != 42 {
		t.Errorf("Boiler.Capacity = %v, expected 42", conf.Boiler.Capacity)
	}
}

func TestWriteResult(t *testing.T) {
	conf := config.Default()
	conf.Boiler.Capacity = 1000
	in, err := conf.ToInputs()
	if err != nil {
		t.Fatalf("ToInputs() error = %v", err)
	}
	res := calculator.Calculate(zap.NewNop(), testutil.NewStubOracle(0.75), in)

	tests := []struct {
		format string
		want   string
	}{
		{"pretty", "Hourly consumption"},
		{"csv", "hourly volume"},
		{"json", `"hourlyVolume"`},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			var buf bytes.Buffer
			if err := writeResult(&buf, tt.format, in, res); err != nil {
				t.Fatalf("writeResult() error = %v", err)
			}
			if !strings.Contains(buf.String(), tt.want) {
				t.Errorf("expected %q in output:\n%s", tt.want, buf.String())
			}
		})
	}
}

func TestAirCheck(t *testing.T) {
	var buf bytes.Buffer
	if err := airCheck(&buf, testutil.NewStubOracle(1.2041), "normal"); err != nil {
		t.Fatalf("airCheck() error = %v", err)
	}
	if !strings.Contains(buf.String(), "1.2041") {
		t.Errorf("unexpected air check output %q", buf.String())
	}

	if err := airCheck(&buf, testutil.NewStubOracle(1.2), "orbital"); err == nil {
		t.Error("expected error for unknown reference")
	}
}
