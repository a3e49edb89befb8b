// Package output provides utilities for formatting and displaying
// calculation results.
package output

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"

	"github.com/iwvelando/boiler-fuel/internal/calculator"
	"github.com/iwvelando/boiler-fuel/pkg/format"
	"github.com/iwvelando/boiler-fuel/pkg/mathutil"
)

// PrettyFormat writes a human-readable summary.
func PrettyFormat(w io.Writer, in calculator.Inputs, res calculator.Result) error {
	unit := VolumeUnit(in.Reference)
	ew := &errWriter{w: w}

	ew.printf("--- Fuel consumption: %s ---\n", in.Fuel.Name)
	ew.printf("Mixture            | %s\n", in.Fuel.Mixture)
	ew.printf("Heating value      | %s kcal/Nm³ (1 m³ ≈ %s kWh)\n",
		format.Number(in.Fuel.LowerHeatingValue, 0), format.Number(res.EnergyEquivalent, 2))
	if res.KcalPerHour > 0 {
		ew.printf("Capacity           | %s kW | %s kcal/h\n",
			format.Number(res.Kilowatts, 2), format.Number(res.KcalPerHour, 0))
	}
	ew.printf("Efficiency         | %s%%\n", format.Number(mathutil.FractionToPercent(in.Operation.Efficiency), 0))
	ew.printf("Hourly consumption | %s %s/h\n", format.Number(res.HourlyVolume, 2), unit)
	if res.AnnualVolume > 0 {
		ew.printf("Annual consumption | %s %s/yr\n", format.Number(res.AnnualVolume, 0), unit)
	}
	ew.printf("Reference density  | %s kg/m³ at %s\n", format.Optional(res.ReferenceDensity, 4), in.Reference)
	if in.Operating != nil {
		ew.printf("Operating density  | %s kg/m³ at %s\n", format.Optional(res.OperatingDensity, 4), in.Operating)
	}
	ew.printf("Mass flow          | %s kg/h\n", format.Optional(res.HourlyMass, 2))
	if res.AnnualMass != nil {
		ew.printf("Annual mass        | %s kg/yr\n", format.Number(*res.AnnualMass, 0))
	}
	if res.OperatingVolume != nil {
		ew.printf("Operating volume   | %s m³/h\n", format.Number(*res.OperatingVolume, 2))
	}

	if res.Failed() {
		ew.printf("\nError: %s\n", calculator.LookupFailureNote)
		for _, err := range []error{res.ReferenceError, res.OperatingError} {
			if err != nil {
				ew.printf("  %v\n", err)
			}
		}
	}
	for _, note := range res.Pending {
		ew.printf("Note: %s\n", note)
	}

	return ew.err
}

// CsvFormat writes one quantity per row. Absent values are left empty.
func CsvFormat(w io.Writer, in calculator.Inputs, res calculator.Result) error {
	unit := VolumeUnit(in.Reference)
	cw := csv.NewWriter(w)

	optional := func(v *float64, decimals int) string {
		if v == nil {
			return ""
		}
		return format.Plain(*v, decimals)
	}

	rows := [][]string{
		{"quantity", "value", "unit"},
		{"fuel", in.Fuel.ID, ""},
		{"mixture", in.Fuel.Mixture, ""},
		{"lower heating value", format.Plain(in.Fuel.LowerHeatingValue, 0), "kcal/Nm³"},
		{"energy equivalent", format.Plain(res.EnergyEquivalent, 4), "kWh/" + unit},
		{"capacity", format.Plain(res.KcalPerHour, 2), "kcal/h"},
		{"capacity", format.Plain(res.Kilowatts, 4), "kW"},
		{"efficiency", format.Plain(mathutil.FractionToPercent(in.Operation.Efficiency), 2), "%"},
		{"annual hours", format.Plain(in.Operation.AnnualHours, 0), "h/yr"},
		{"hourly volume", format.Plain(res.HourlyVolume, 4), unit + "/h"},
		{"annual volume", format.Plain(res.AnnualVolume, 2), unit + "/yr"},
		{"reference density", optional(res.ReferenceDensity, 6), "kg/m³"},
		{"operating density", optional(res.OperatingDensity, 6), "kg/m³"},
		{"hourly mass", optional(res.HourlyMass, 4), "kg/h"},
		{"annual mass", optional(res.AnnualMass, 2), "kg/yr"},
		{"operating volume", optional(res.OperatingVolume, 4), "m³/h"},
	}
	for _, err := range []error{res.ReferenceError, res.OperatingError} {
		if err != nil {
			rows = append(rows, []string{"error", err.Error(), ""})
		}
	}

	if err := cw.WriteAll(rows); err != nil {
		return fmt.Errorf("failed to write csv: %w", err)
	}
	return nil
}

// JSONFormat writes the Report as indented JSON.
func JSONFormat(w io.Writer, in calculator.Inputs, res calculator.Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(NewReport(in, res)); err != nil {
		return fmt.Errorf("failed to write json: %w", err)
	}
	return nil
}

type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) printf(layout string, args ...interface{}) {
	if e.err != nil {
		return
	}
	_, e.err = fmt.Fprintf(e.w, layout, args...)
}
