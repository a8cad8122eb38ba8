package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/ChicagoDave/bodycomp/pkg/calc"
	"github.com/ChicagoDave/bodycomp/pkg/display"
	"github.com/ChicagoDave/bodycomp/pkg/spec"
	"github.com/ChicagoDave/bodycomp/pkg/units"
	"github.com/ChicagoDave/bodycomp/pkg/validation"
)

// outputFlags are shared by every command that prints a result.
type outputFlags struct {
	format      string
	convertMass bool
}

func (o *outputFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&o.format, "format", "f", formatText, "output format: text, markdown or json")
	cmd.Flags().BoolVar(&o.convertMass, "convert-mass", false, "show lean/fat mass in pounds when imperial units are active")
}

func (o *outputFlags) options(cmd *cobra.Command, a *app) display.Options {
	opts := a.cfg.Display
	if cmd.Flags().Changed("convert-mass") {
		opts.ConvertMass = o.convertMass
	}
	return opts
}

func calcCmd(a *app) *cobra.Command {
	var (
		raw    spec.RawInput
		gender string
		sys    string
		out    outputFlags
	)

	cmd := &cobra.Command{
		Use:   "calc",
		Short: "Compute body composition from measurements given as flags",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			raw.Gender = spec.Gender(gender)
			raw.Units = units.System(sys)
			if sys == "" {
				raw.Units = a.cfg.UnitSystem()
			}
			return compute(cmd.OutOrStdout(), raw, out.format, out.options(cmd, a))
		},
	}

	f := cmd.Flags()
	f.StringVarP(&gender, spec.FieldGender, "g", string(spec.Male), "male or female")
	f.Float64Var(&raw.Age, spec.FieldAge, 0, "age in years (not used by the formula)")
	f.Float64Var(&raw.Height, spec.FieldHeight, 0, "height (cm or in)")
	f.Float64Var(&raw.Weight, spec.FieldWeight, 0, "weight (kg or lbs)")
	f.Float64Var(&raw.Neck, spec.FieldNeck, 0, "neck circumference (cm or in)")
	f.Float64Var(&raw.Waist, spec.FieldWaist, 0, "waist circumference (cm or in)")
	f.Float64Var(&raw.Hip, spec.FieldHip, 0, "hip circumference, women only (cm or in)")
	f.StringVarP(&sys, spec.FieldUnits, "u", "", "unit system: metric or imperial (default from config)")
	out.register(cmd)
	return cmd
}

func runCmd(a *app) *cobra.Command {
	var out outputFlags
	cmd := &cobra.Command{
		Use:   "run [project-path]",
		Short: "Compute body composition from <project-path>/body.yaml",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := loadProject(a, args[0])
			if err != nil {
				return err
			}
			return compute(cmd.OutOrStdout(), *raw, out.format, out.options(cmd, a))
		},
	}
	out.register(cmd)
	return cmd
}

func validateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "validate [project-path]",
		Short: "Validate <project-path>/body.yaml without computing",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := loadProject(a, args[0])
			if err != nil {
				return err
			}
			report := validation.ValidateInput(raw)
			printValidationReport(cmd.OutOrStdout(), report)
			return report.Err()
		},
	}
}

// loadProject reads the measurement file and fills in the configured unit
// system when the file leaves it out.
func loadProject(a *app, projectPath string) (*spec.RawInput, error) {
	raw, err := spec.LoadProject(projectPath)
	if err != nil {
		return nil, fmt.Errorf("loading measurements: %w", err)
	}
	if raw.Units == "" {
		raw.Units = a.cfg.UnitSystem()
	}
	return raw, nil
}

// compute runs one calculation and prints either the result or the report
// explaining why there is none.
func compute(w io.Writer, raw spec.RawInput, format string, opts display.Options) error {
	res, report, err := calc.Compute(raw)
	if err != nil {
		printValidationReport(w, report)
		return err
	}
	slog.Debug("calculated", "gender", raw.Gender, "units", res.Units, "body_fat", res.BodyFatPercent, "clamped", res.Clamped)
	return printResult(w, res, report, format, opts)
}
