package output

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"

	"github.com/iwvelando/boiler-fuel/internal/calculator"
	"github.com/iwvelando/boiler-fuel/pkg/combustion"
	"github.com/iwvelando/boiler-fuel/pkg/density"
	"github.com/iwvelando/boiler-fuel/pkg/eos"
	"github.com/iwvelando/boiler-fuel/pkg/fuels"
	"go.uber.org/zap"
)

func sampleInputs(t *testing.T, mixture string) calculator.Inputs {
	t.Helper()
	profile, err := fuels.Resolve("natural-gas", 0, mixture)
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	return calculator.Inputs{
		Fuel:      profile,
		Boiler:    combustion.BoilerSpec{Capacity: 1000000, Unit: combustion.KcalPerHour},
		Operation: combustion.OperatingParameters{Efficiency: 0.9, AnnualHours: 3000},
		Reference: density.Normal,
		Operating: &density.Condition{Name: "operating", TemperatureC: 20, PressureBar: 1.01325},
	}
}

func TestPrettyFormat(t *testing.T) {
	in := sampleInputs(t, "")
	res := calculator.Calculate(zap.NewNop(), eos.New(), in)

	var buf bytes.Buffer
	if err := PrettyFormat(&buf, in, res); err != nil {
		t.Fatalf("PrettyFormat() error = %v", err)
	}
	output := buf.String()

	for _, want := range []string{
		"--- Fuel consumption: Natural gas",
		"8,250 kcal/Nm³ (1 m³ ≈ 9.59 kWh)",
		"1,162.79 kW | 1,000,000 kcal/h",
		"Efficiency         | 90%",
		"134.68 Nm³/h",
		"404,040 Nm³/yr",
		"Reference density  | 0.749",
		"Mass flow",
		"Operating volume",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("PrettyFormat output missing %q:\n%s", want, output)
		}
	}
	if strings.Contains(output, "Error:") {
		t.Errorf("unexpected error section:\n%s", output)
	}
}

func TestPrettyFormatLookupFailure(t *testing.T) {
	in := sampleInputs(t, "HEOS::Methane[0.95]&Ethane[0.10]")
	res := calculator.Calculate(zap.NewNop(), eos.New(), in)

	var buf bytes.Buffer
	if err := PrettyFormat(&buf, in, res); err != nil {
		t.Fatalf("PrettyFormat() error = %v", err)
	}
	output := buf.String()

	if !strings.Contains(output, "134.68 Nm³/h") {
		t.Errorf("volumetric consumption must still be shown:\n%s", output)
	}
	if !strings.Contains(output, "Mass flow          | n/a kg/h") {
		t.Errorf("mass flow must be n/a:\n%s", output)
	}
	if !strings.Contains(output, calculator.LookupFailureNote) {
		t.Errorf("missing generic failure note:\n%s", output)
	}
	if !strings.Contains(output, "mole fractions sum to") {
		t.Errorf("missing oracle diagnostic:\n%s", output)
	}
}

func TestPrettyFormatPending(t *testing.T) {
	in := sampleInputs(t, "")
	in.Boiler.Capacity = 0
	res := calculator.Calculate(zap.NewNop(), eos.New(), in)

	var buf bytes.Buffer
	if err := PrettyFormat(&buf, in, res); err != nil {
		t.Fatalf("PrettyFormat() error = %v", err)
	}
	output := buf.String()
	if strings.Contains(output, "Capacity           |") {
		t.Errorf("capacity line should be hidden while pending:\n%s", output)
	}
	if !strings.Contains(output, "Note: "+calculator.PendingCapacity) {
		t.Errorf("missing pending note:\n%s", output)
	}
}

func TestCsvFormat(t *testing.T) {
	in := sampleInputs(t, "HEOS::Unknown[1.0]")
	res := calculator.Calculate(zap.NewNop(), eos.New(), in)

	var buf bytes.Buffer
	if err := CsvFormat(&buf, in, res); err != nil {
		t.Fatalf("CsvFormat() error = %v", err)
	}

	records, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("failed to parse csv output: %v", err)
	}
	if len(records) < 16 {
		t.Fatalf("expected at least 16 rows, got %d", len(records))
	}
	if strings.Join(records[0], ",") != "quantity,value,unit" {
		t.Errorf("unexpected header %v", records[0])
	}

	values := make(map[string]string)
	for _, rec := range records[1:] {
		values[rec[0]] = rec[1]
	}
	if values["hourly volume"] != "134.6801" {
		t.Errorf("hourly volume = %q, expected 134.6801", values["hourly volume"])
	}
	if values["hourly mass"] != "" {
		t.Errorf("hourly mass = %q, expected empty", values["hourly mass"])
	}
	if !strings.Contains(values["error"], "Unknown") {
		t.Errorf("expected oracle error row, got %q", values["error"])
	}
}

func TestJSONFormat(t *testing.T) {
	in := sampleInputs(t, "")
	res := calculator.Calculate(zap.NewNop(), eos.New(), in)

	var buf bytes.Buffer
	if err := JSONFormat(&buf, in, res); err != nil {
		t.Fatalf("JSONFormat() error = %v", err)
	}

	var report Report
	if err := json.Unmarshal(buf.Bytes(), &report); err != nil {
		t.Fatalf("failed to decode JSON output: %v", err)
	}
	if report.Fuel != "natural-gas" {
		t.Errorf("Fuel = %q, expected natural-gas", report.Fuel)
	}
	if report.VolumeUnit != "Nm³" {
		t.Errorf("VolumeUnit = %q, expected Nm³", report.VolumeUnit)
	}
	if report.HourlyMass == nil || report.ReferenceDensity == nil {
		t.Error("expected mass and density in report")
	}
	if len(report.Errors) != 0 {
		t.Errorf("unexpected errors %v", report.Errors)
	}
}

func TestNewReportOmitsAbsentValues(t *testing.T) {
	in := sampleInputs(t, "HEOS::Methane[0.95]&Ethane[0.10]")
	res := calculator.Calculate(zap.NewNop(), eos.New(), in)

	data, err := json.Marshal(NewReport(in, res))
	if err != nil {
		t.Fatalf("json.Marshal() error = %v", err)
	}
	body := string(data)
	for _, absent := range []string{"hourlyMass", "referenceDensity", "operatingDensity", "annualMass"} {
		if strings.Contains(body, `"`+absent+`"`) {
			t.Errorf("expected %s to be omitted: %s", absent, body)
		}
	}
	if !strings.Contains(body, `"errors"`) {
		t.Errorf("expected errors in report: %s", body)
	}
}
