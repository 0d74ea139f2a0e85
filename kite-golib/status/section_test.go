package status

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSectionMarshalJSON(t *testing.T) {
	sec := NewSection("json test")
	sec.Counter("files").Add(3)
	sec.Ratio("hits").Hit()
	sec.Breakdown("codes").HitAndAdd("200")
	sec.SampleDuration("latency").Record(time.Millisecond)

	buf, err := json.Marshal(sec)
	require.NoError(t, err)

	var decoded struct {
		Name       string
		Counters   map[string]int64
		Ratios     map[string]struct{ Percent float64 }
		Breakdowns map[string]struct{ Counts map[string]int64 }
	}
	require.NoError(t, json.Unmarshal(buf, &decoded))
	assert.Equal(t, "json test", decoded.Name)
	assert.EqualValues(t, 3, decoded.Counters["files"])
	assert.Equal(t, 100.0, decoded.Ratios["hits"].Percent)
	assert.EqualValues(t, 1, decoded.Breakdowns["codes"].Counts["200"])
	assert.True(t, strings.Contains(string(buf), `"sample_durations":{"latency":{"count":1`))
}

func TestNewSectionIsShared(t *testing.T) {
	a := NewSection("shared section")
	b := NewSection("shared section")
	require.True(t, a == b)
	a.Counter("files").Add(2)
	assert.EqualValues(t, 2, b.Counter("files").GetValue())
}

func TestBreakdownAndRatio(t *testing.T) {
	sec := NewSection("breakdown test")
	b := sec.Breakdown("errors")
	b.AddCategories("Unexpected end of input")
	b.HitAndAdd("Unexpected end of input")
	b.HitAndAdd("Invalid regular expression: missing /")
	b.HitAndAdd("Invalid regular expression: missing /")
	assert.InDelta(t, 66.6, b.Value()["Invalid regular expression: missing /"], 0.1)
	assert.EqualValues(t, 1, b.Count("Unexpected end of input"))

	r := sec.Ratio("cache hit")
	r.Hit()
	r.Miss()
	assert.Equal(t, 50.0, r.Value())

	var buf bytes.Buffer
	Get().WriteSummary(&buf)
	assert.True(t, strings.Contains(buf.String(), "== breakdown test"))
	assert.True(t, strings.Contains(buf.String(), "cache hit: 50.0%"))
}

func TestRecordStatusCode(t *testing.T) {
	codes := NewSection("http test").Breakdown("codes")
	h := RecordStatusCode(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	}, codes)

	rec := httptest.NewRecorder()
	h(rec, httptest.NewRequest("GET", "/", nil))
	assert.Equal(t, "ok", rec.Body.String())
	assert.EqualValues(t, 1, codes.Count("200"))

	rec = httptest.NewRecorder()
	HandlerJSON(rec, httptest.NewRequest("GET", "/debug/status-json", nil))
	assert.True(t, strings.Contains(rec.Body.String(), "http test"))
}

func TestInstrument(t *testing.T) {
	sec := NewSection("instrument test")
	codes, latency := sec.Breakdown("codes"), sec.SampleDuration("latency")
	h := Instrument(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad", http.StatusBadRequest)
	}, codes, latency)

	h(httptest.NewRecorder(), httptest.NewRequest("POST", "/", nil))
	h(httptest.NewRecorder(), httptest.NewRequest("POST", "/", nil))
	assert.EqualValues(t, 2, codes.Count("400"))
	assert.EqualValues(t, 2, latency.Count())

	// a handler that writes nothing still counts as a 200
	empty := sec.Breakdown("empty")
	RecordStatusCode(func(w http.ResponseWriter, r *http.Request) {}, empty)(
		httptest.NewRecorder(), httptest.NewRequest("GET", "/", nil))
	assert.EqualValues(t, 1, empty.Count("200"))

	d := sec.SampleDuration("only latency")
	RecordDuration(func(w http.ResponseWriter, r *http.Request) {}, d)(
		httptest.NewRecorder(), httptest.NewRequest("GET", "/", nil))
	assert.EqualValues(t, 1, d.Count())
}
