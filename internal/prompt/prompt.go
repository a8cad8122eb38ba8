package prompt

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"

	"github.com/ChicagoDave/bodycomp/pkg/spec"
	"github.com/ChicagoDave/bodycomp/pkg/units"
)

// LineReader reads one line of input after showing a prompt.
// *liner.State satisfies it.
type LineReader interface {
	Prompt(prompt string) (string, error)
}

// Form asks for each logical field in turn. The hip question is only asked
// when the gender answer is female.
type Form struct {
	In           LineReader
	DefaultUnits units.System
}

// Collect runs the form once and returns the answers keyed by field name.
// Errors come from the reader (io.EOF, liner.ErrPromptAborted).
func (f *Form) Collect() (map[string]string, error) {
	fields := make(map[string]string, 8)

	def := f.DefaultUnits
	if def == "" {
		def = units.Metric
	}
	u, err := f.ask(fmt.Sprintf("Units [metric/imperial] (%s): ", def))
	if err != nil {
		return nil, err
	}
	if u == "" {
		u = string(def)
	}
	fields[spec.FieldUnits] = u
	sys, err := units.Parse(strings.ToLower(u))
	if err != nil {
		sys = def
	}

	g, err := f.ask("Gender [male/female]: ")
	if err != nil {
		return nil, err
	}
	fields[spec.FieldGender] = g

	questions := []struct {
		field, label, unit string
	}{
		{spec.FieldAge, "Age", "years"},
		{spec.FieldHeight, "Height", sys.LengthLabel()},
		{spec.FieldWeight, "Weight", sys.MassLabel()},
		{spec.FieldNeck, "Neck", sys.LengthLabel()},
		{spec.FieldWaist, "Waist", sys.LengthLabel()},
	}
	if spec.Gender(strings.ToLower(g)) == spec.Female {
		questions = append(questions, struct{ field, label, unit string }{spec.FieldHip, "Hip", sys.LengthLabel()})
	}

	for _, q := range questions {
		v, err := f.ask(fmt.Sprintf("%s (%s): ", q.label, q.unit))
		if err != nil {
			return nil, err
		}
		fields[q.field] = v
	}
	return fields, nil
}

// Confirm asks a yes/no question; an empty answer means yes.
func Confirm(in LineReader, question string) (bool, error) {
	ans, err := in.Prompt(question + " [Y/n]: ")
	if err != nil {
		return false, err
	}
	switch strings.ToLower(strings.TrimSpace(ans)) {
	case "", "y", "yes":
		return true, nil
	}
	return false, nil
}

func (f *Form) ask(p string) (string, error) {
	s, err := f.In.Prompt(p)
	if err != nil {
		return "", err
	}
	if st, ok := f.In.(*liner.State); ok && strings.TrimSpace(s) != "" {
		st.AppendHistory(s)
	}
	return strings.TrimSpace(s), nil
}

// Open starts a liner session with history persisted in the temp directory.
// The returned func restores the terminal and saves history.
func Open() (*liner.State, func()) {
	line := liner.NewLiner()
	line.SetCtrlCAborts(true)

	historyFile := filepath.Join(os.TempDir(), ".bodycomp_history")
	if f, err := os.Open(historyFile); err == nil {
		line.ReadHistory(f)
		f.Close()
	}

	return line, func() {
		if f, err := os.Create(historyFile); err == nil {
			line.WriteHistory(f)
			f.Close()
		}
		line.Close()
	}
}
