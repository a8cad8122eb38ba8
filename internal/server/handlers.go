package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"mime"
	"net/http"
	"strings"

	"github.com/ChicagoDave/bodycomp/pkg/calc"
	"github.com/ChicagoDave/bodycomp/pkg/classify"
	"github.com/ChicagoDave/bodycomp/pkg/display"
	"github.com/ChicagoDave/bodycomp/pkg/navy"
	"github.com/ChicagoDave/bodycomp/pkg/spec"
	"github.com/ChicagoDave/bodycomp/pkg/validation"
)

const maxBodyBytes = 1 << 16

// CalculateResponse is the body of a successful POST /api/calculate.
type CalculateResponse struct {
	Result  calc.Result        `json:"result"`
	Summary display.Summary    `json:"summary"`
	Report  *validation.Report `json:"report"`
}

// ErrorResponse is returned for rejected requests.
type ErrorResponse struct {
	Error  string             `json:"error"`
	Report *validation.Report `json:"report,omitempty"`
}

func (s *Server) handleCalculate(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	var (
		res    calc.Result
		report *validation.Report
		err    error
	)

	ct, perr := contentType(r)
	if perr != nil {
		s.writeJSON(w, http.StatusUnsupportedMediaType, ErrorResponse{Error: perr.Error()})
		return
	}
	switch ct {
	case "application/x-www-form-urlencoded":
		if perr := r.ParseForm(); perr != nil {
			s.writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "malformed form: " + perr.Error()})
			return
		}
		res, report, err = calc.ComputeFields(s.formFields(r.PostForm))
	case "application/json":
		var raw spec.RawInput
		dec := json.NewDecoder(r.Body)
		dec.DisallowUnknownFields()
		if derr := dec.Decode(&raw); derr != nil {
			s.writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "malformed JSON: " + derr.Error()})
			return
		}
		if raw.Units == "" {
			raw.Units = s.cfg.UnitSystem()
		}
		res, report, err = calc.Compute(raw)
	}

	s.metrics.Observe(res, err)
	if err != nil {
		s.logger.Info("calculation rejected", "err", err, "summary", report.Summary)
		s.writeJSON(w, statusFor(err), ErrorResponse{Error: err.Error(), Report: report})
		return
	}

	s.logger.Debug("calculated", "gender", res.Measurements.Gender, "body_fat", res.BodyFatPercent, "clamped", res.Clamped)
	s.writeJSON(w, http.StatusOK, CalculateResponse{
		Result:  res,
		Summary: display.Summarize(res, s.cfg.Display),
		Report:  report,
	})
}

func (s *Server) handleCategories(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]any{
		"body_fat": map[string]any{
			string(spec.Male):   classify.BodyFatBands(spec.Male),
			string(spec.Female): classify.BodyFatBands(spec.Female),
		},
		"bmi": classify.BMIBands(),
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleIndex serves the form. A submitted form arrives as query parameters
// and the result is rendered under it.
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	page := indexPage{Units: string(s.cfg.UnitSystem()), Values: map[string]string{}}
	for _, f := range formFieldNames {
		page.Values[f] = q.Get(f)
	}
	if u := q.Get(spec.FieldUnits); u != "" {
		page.Units = u
	}

	var md strings.Builder
	if q.Has(spec.FieldGender) {
		res, report, err := calc.ComputeFields(s.formFields(q))
		s.metrics.Observe(res, err)
		if err != nil {
			md.WriteString("## Please check your measurements\n\n")
			for _, e := range report.Errors {
				md.WriteString("- " + e.Message + "\n")
			}
		} else {
			md.WriteString("## Results\n\n")
			md.WriteString(display.Markdown(display.Summarize(res, s.cfg.Display)))
			for _, warn := range report.Warnings {
				md.WriteString("\n> " + warn.Message + "\n")
			}
		}
		md.WriteString("\n")
	}
	md.WriteString("## Categories\n\n")
	md.WriteString(display.CategoryTable())

	var body bytes.Buffer
	if err := s.markdown.Convert([]byte(md.String()), &body); err != nil {
		http.Error(w, "rendering page", http.StatusInternalServerError)
		return
	}
	page.Body = template.HTML(body.String())

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := indexTemplate.Execute(w, page); err != nil {
		s.logger.Error("rendering index", "err", err)
	}
}

var formFieldNames = []string{
	spec.FieldGender, spec.FieldAge, spec.FieldHeight, spec.FieldWeight,
	spec.FieldNeck, spec.FieldWaist, spec.FieldHip,
}

// formFields flattens submitted values and applies the configured default
// unit system when the form leaves it out.
func (s *Server) formFields(values map[string][]string) map[string]string {
	fields := make(map[string]string, len(formFieldNames)+1)
	for _, f := range formFieldNames {
		if v := values[f]; len(v) > 0 {
			fields[f] = v[0]
		}
	}
	if v := values[spec.FieldUnits]; len(v) > 0 {
		fields[spec.FieldUnits] = v[0]
	}
	if fields[spec.FieldUnits] == "" {
		fields[spec.FieldUnits] = string(s.cfg.UnitSystem())
	}
	return fields
}

func statusFor(err error) int {
	if errors.Is(err, validation.ErrInvalidInput) || errors.Is(err, navy.ErrUndefinedLog) {
		return http.StatusUnprocessableEntity
	}
	return http.StatusInternalServerError
}

// contentType returns the request media type. A missing header means JSON.
func contentType(r *http.Request) (string, error) {
	h := r.Header.Get("Content-Type")
	if h == "" {
		return "application/json", nil
	}
	ct, _, err := mime.ParseMediaType(h)
	if err != nil {
		return "", fmt.Errorf("invalid Content-Type %q: %w", h, err)
	}
	switch ct {
	case "application/json", "application/x-www-form-urlencoded":
		return ct, nil
	}
	return "", fmt.Errorf("unsupported Content-Type %q; use application/json or application/x-www-form-urlencoded", ct)
}

// writeJSON encodes before writing the status so an encoding failure still
// yields a well-formed 500.
func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(v); err != nil {
		s.logger.Error("encoding response", "err", err, "status", status)
		status = http.StatusInternalServerError
		buf.Reset()
		fmt.Fprintf(&buf, "{\"error\":%q}\n", "internal error encoding response")
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(buf.Bytes()); err != nil {
		s.logger.Debug("writing response", "err", err)
	}
}
