package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/peterh/liner"
	"github.com/spf13/cobra"

	"github.com/ChicagoDave/bodycomp/internal/prompt"
	"github.com/ChicagoDave/bodycomp/pkg/calc"
	"github.com/ChicagoDave/bodycomp/pkg/display"
)

func interactiveCmd(a *app) *cobra.Command {
	var out outputFlags
	cmd := &cobra.Command{
		Use:   "interactive",
		Short: "Fill in the measurement form at the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			line, closeLine := prompt.Open()
			defer closeLine()
			return session(cmd.OutOrStdout(), line, a, out.options(cmd, a))
		},
	}
	cmd.Flags().BoolVar(&out.convertMass, "convert-mass", false, "show lean/fat mass in pounds when imperial units are active")
	return cmd
}

// session repeats the form until the user declines another calculation or
// ends input. Invalid answers are reported and the form is asked again.
func session(w io.Writer, in prompt.LineReader, a *app, opts display.Options) error {
	form := &prompt.Form{In: in, DefaultUnits: a.cfg.UnitSystem()}

	for {
		fields, err := form.Collect()
		if err != nil {
			return endOfInput(err)
		}

		res, report, err := calc.ComputeFields(fields)
		fmt.Fprintln(w)
		if err != nil {
			printValidationReport(w, report)
			fmt.Fprintln(w, "Please correct the measurements and try again.")
			fmt.Fprintln(w)
			continue
		}
		if err := printResult(w, res, report, formatText, opts); err != nil {
			return err
		}
		fmt.Fprintln(w)

		again, err := prompt.Confirm(in, "Calculate again?")
		if err != nil {
			return endOfInput(err)
		}
		if !again {
			return nil
		}
	}
}

func endOfInput(err error) error {
	if errors.Is(err, io.EOF) || errors.Is(err, liner.ErrPromptAborted) {
		return nil
	}
	return err
}
