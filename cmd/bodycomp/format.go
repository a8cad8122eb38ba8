package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/ChicagoDave/bodycomp/pkg/calc"
	"github.com/ChicagoDave/bodycomp/pkg/classify"
	"github.com/ChicagoDave/bodycomp/pkg/display"
	"github.com/ChicagoDave/bodycomp/pkg/spec"
	"github.com/ChicagoDave/bodycomp/pkg/validation"
)

const (
	formatText     = "text"
	formatMarkdown = "markdown"
	formatJSON     = "json"
)

func printResult(w io.Writer, res calc.Result, report *validation.Report, format string, opts display.Options) error {
	summary := display.Summarize(res, opts)

	switch format {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(map[string]any{
			"result":     res,
			"summary":    summary,
			"validation": report,
		})
	case formatMarkdown:
		_, err := io.WriteString(w, display.Markdown(summary))
		return err
	case formatText, "":
		if err := display.WriteText(w, summary); err != nil {
			return err
		}
		if len(report.Warnings) > 0 {
			fmt.Fprintln(w)
			printValidationReport(w, report)
		}
		return nil
	}
	return fmt.Errorf("unknown output format %q", format)
}

func printValidationReport(w io.Writer, r *validation.Report) {
	if len(r.Errors) > 0 {
		fmt.Fprintf(w, "ERRORS (%d):\n", len(r.Errors))
		for _, e := range r.Errors {
			printFinding(w, e)
		}
		fmt.Fprintln(w)
	}

	if len(r.Warnings) > 0 {
		fmt.Fprintf(w, "WARNINGS (%d):\n", len(r.Warnings))
		for _, wr := range r.Warnings {
			printFinding(w, wr)
		}
		fmt.Fprintln(w)
	}

	if len(r.Info) > 0 {
		fmt.Fprintf(w, "INFO (%d):\n", len(r.Info))
		for _, i := range r.Info {
			fmt.Fprintf(w, "  [%s] %s\n", i.Level, i.Message)
		}
		fmt.Fprintln(w)
	}

	if r.Valid {
		fmt.Fprintf(w, "Result: VALID (%s)\n", r.Summary)
	} else {
		fmt.Fprintf(w, "Result: INVALID (%s)\n", r.Summary)
	}
}

func printFinding(w io.Writer, f validation.Result) {
	fmt.Fprintf(w, "  [%s] %s\n", f.Level, f.Message)
	if f.Field != "" && f.ActualValue != nil {
		fmt.Fprintf(w, "    -> %s = %v\n", f.Field, f.ActualValue)
	}
	if f.Expected != "" {
		fmt.Fprintf(w, "    expected: %s\n", f.Expected)
	}
	for _, s := range f.Suggestions {
		fmt.Fprintf(w, "    * %s\n", s)
	}
}

func printCategories(w io.Writer, format string) error {
	switch format {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(map[string]any{
			"body_fat": map[string]any{
				string(spec.Male):   classify.BodyFatBands(spec.Male),
				string(spec.Female): classify.BodyFatBands(spec.Female),
			},
			"bmi": classify.BMIBands(),
		})
	case formatMarkdown:
		_, err := io.WriteString(w, display.CategoryTable())
		return err
	case formatText, "":
		return display.WriteCategories(w)
	}
	return fmt.Errorf("unknown output format %q", format)
}
