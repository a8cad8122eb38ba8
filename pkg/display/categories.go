package display

import (
	"fmt"
	"io"
	"strings"

	"github.com/ChicagoDave/bodycomp/pkg/classify"
	"github.com/ChicagoDave/bodycomp/pkg/spec"
)

// CategoryTable renders the body fat and BMI reference bands as Markdown.
func CategoryTable() string {
	var b strings.Builder
	male := classify.BodyFatBands(spec.Male)
	female := classify.BodyFatBands(spec.Female)

	b.WriteString("| Category | Men (%) | Women (%) |\n|---|---|---|\n")
	for i := range male {
		fmt.Fprintf(&b, "| %s | %s | %s |\n", male[i].Category, male[i].Range(), female[i].Range())
	}

	b.WriteString("\n| BMI category | BMI |\n|---|---|\n")
	for _, band := range classify.BMIBands() {
		fmt.Fprintf(&b, "| %s | %s |\n", band.Category, band.Range())
	}
	return b.String()
}

// WriteCategories prints the reference bands as plain text.
func WriteCategories(w io.Writer) error {
	male := classify.BodyFatBands(spec.Male)
	female := classify.BodyFatBands(spec.Female)

	if _, err := fmt.Fprintf(w, "%-16s %10s %10s\n", "Body fat", "Men", "Women"); err != nil {
		return err
	}
	for i := range male {
		if _, err := fmt.Fprintf(w, "%-16s %10s %10s\n", male[i].Category, male[i].Range(), female[i].Range()); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintf(w, "\n%-16s %10s\n", "BMI", "Range"); err != nil {
		return err
	}
	for _, band := range classify.BMIBands() {
		if _, err := fmt.Fprintf(w, "%-16s %10s\n", band.Category, band.Range()); err != nil {
			return err
		}
	}
	return nil
}
