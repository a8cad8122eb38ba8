package server

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ChicagoDave/bodycomp/internal/config"
	"github.com/ChicagoDave/bodycomp/pkg/classify"
	"github.com/ChicagoDave/bodycomp/pkg/spec"
)

func newTestServer(t *testing.T, mut func(*config.Config)) *httptest.Server {
	t.Helper()
	cfg := config.Default()
	if mut != nil {
		mut(cfg)
	}
	s := New(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
	ts := httptest.NewServer(s.Handler())
	t.Cleanup(ts.Close)
	return ts
}

func postJSON(t *testing.T, ts *httptest.Server, body string) *http.Response {
	t.Helper()
	resp, err := http.Post(ts.URL+"/api/calculate", "application/json", strings.NewReader(body))
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func TestCalculateJSON(t *testing.T) {
	ts := newTestServer(t, nil)
	resp := postJSON(t, ts, `{"gender":"male","age":35,"height":180,"weight":80,"neck":38,"waist":85,"units":"metric"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out CalculateResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, classify.Average, out.Result.BodyFatCategory)
	assert.Equal(t, classify.NormalWeight, out.Result.BMICategory)
	assert.Equal(t, "22.6%", out.Summary.BodyFat)
	assert.Equal(t, "24.7", out.Summary.BMI)
	assert.Equal(t, "kg", out.Summary.MassUnit)
	assert.True(t, out.Report.Valid)
}

func TestCalculateUsesConfiguredUnits(t *testing.T) {
	ts := newTestServer(t, func(c *config.Config) {
		c.Units = "imperial"
		c.Display.ConvertMass = true
	})
	resp := postJSON(t, ts, `{"gender":"male","height":70.866,"weight":176.37,"neck":14.96,"waist":33.46}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out CalculateResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, "lbs", out.Summary.MassUnit)
	assert.InDelta(t, 80, out.Result.Measurements.WeightKg, 0.01)
	assert.InDelta(t, 176.37, out.Result.LeanBodyMassKg/0.453592+out.Result.FatMassKg/0.453592, 0.01)
}

func TestCalculateValidationError(t *testing.T) {
	ts := newTestServer(t, nil)
	resp := postJSON(t, ts, `{"gender":"female","height":165,"weight":60,"neck":32,"waist":70}`)
	require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

	var out ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	require.NotNil(t, out.Report)
	assert.False(t, out.Report.Valid)
	assert.True(t, out.Report.HasError(spec.FieldHip))
	assert.Contains(t, out.Error, "hip measurement is required for women")
}

func TestCalculateDomainError(t *testing.T) {
	ts := newTestServer(t, nil)
	resp := postJSON(t, ts, `{"gender":"male","height":180,"weight":80,"neck":50,"waist":40}`)
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
}

func TestCalculateMalformedJSON(t *testing.T) {
	ts := newTestServer(t, nil)
	assert.Equal(t, http.StatusBadRequest, postJSON(t, ts, `{"gender":`).StatusCode)
	assert.Equal(t, http.StatusBadRequest, postJSON(t, ts, `{"shoe_size":9}`).StatusCode)
}

func TestCalculateForm(t *testing.T) {
	ts := newTestServer(t, nil)
	form := url.Values{
		"gender": {"female"}, "height": {"165"}, "weight": {"60"},
		"neck": {"32"}, "waist": {"70"}, "hip": {"95"},
	}
	resp, err := http.PostForm(ts.URL+"/api/calculate", form)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out CalculateResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, classify.ObeseFat, out.Result.BodyFatCategory)
	assert.Equal(t, "51.6%", out.Summary.BodyFat)

	form.Set("height", "NaN")
	resp2, err := http.PostForm(ts.URL+"/api/calculate", form)
	require.NoError(t, err)
	defer resp2.Body.Close()
	assert.Equal(t, http.StatusUnprocessableEntity, resp2.StatusCode)
	var bad ErrorResponse
	require.NoError(t, json.NewDecoder(resp2.Body).Decode(&bad))
	assert.True(t, bad.Report.HasError(spec.FieldHeight))
}

func TestCalculateFormMaleNonFiniteHip(t *testing.T) {
	ts := newTestServer(t, nil)
	form := url.Values{
		"gender": {"male"}, "height": {"180"}, "weight": {"80"},
		"neck": {"38"}, "waist": {"85"}, "hip": {"NaN"},
	}
	resp, err := http.PostForm(ts.URL+"/api/calculate", form)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out CalculateResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, "22.6%", out.Summary.BodyFat)
	require.Len(t, out.Report.Info, 1)
	assert.Equal(t, spec.FieldHip, out.Report.Info[0].Field)
	assert.Equal(t, "NaN", out.Report.Info[0].ActualValue)
}

func TestCalculateContentType(t *testing.T) {
	ts := newTestServer(t, nil)
	body := `{"gender":"male","height":180,"weight":80,"neck":38,"waist":85}`

	tests := []struct {
		name        string
		contentType string
		want        int
	}{
		{"missing defaults to JSON", "", http.StatusOK},
		{"JSON with charset", "application/json; charset=utf-8", http.StatusOK},
		{"plain text", "text/plain", http.StatusUnsupportedMediaType},
		{"multipart", "multipart/form-data; boundary=x", http.StatusUnsupportedMediaType},
		{"garbled", "application/json; =", http.StatusUnsupportedMediaType},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := http.NewRequest(http.MethodPost, ts.URL+"/api/calculate", strings.NewReader(body))
			require.NoError(t, err)
			if tt.contentType != "" {
				req.Header.Set("Content-Type", tt.contentType)
			}
			resp, err := http.DefaultClient.Do(req)
			require.NoError(t, err)
			defer resp.Body.Close()
			assert.Equal(t, tt.want, resp.StatusCode)
			if tt.want != http.StatusOK {
				var out ErrorResponse
				require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
				assert.Contains(t, out.Error, "Content-Type")
			}
		})
	}
}

func TestCategories(t *testing.T) {
	ts := newTestServer(t, nil)
	resp, err := http.Get(ts.URL + "/api/categories")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `"Essential Fat"`)
	assert.Contains(t, string(body), `"Normal Weight"`)
}

func TestIndexRendersResult(t *testing.T) {
	ts := newTestServer(t, nil)
	resp, err := http.Get(ts.URL + "/?gender=male&height=180&weight=80&neck=38&waist=85&units=metric")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	page := string(body)
	assert.Contains(t, page, "<table>")
	assert.Contains(t, page, "22.6%")
	assert.Contains(t, page, "Normal Weight")
}

func TestIndexRendersErrors(t *testing.T) {
	ts := newTestServer(t, nil)
	resp, err := http.Get(ts.URL + "/?gender=male&height=180")
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "waist is required")
}

func TestHealthAndMetrics(t *testing.T) {
	ts := newTestServer(t, nil)
	postJSON(t, ts, `{"gender":"male","height":180,"weight":80,"neck":38,"waist":85}`)

	resp, err := http.Get(ts.URL + "/healthz")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = http.Get(ts.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `bodycomp_calculations_total{outcome="ok"} 1`)
}
