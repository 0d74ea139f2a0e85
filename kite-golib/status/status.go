// Package status keeps process-wide metrics (counters, ratios, breakdowns and
// sampled durations) grouped into named sections, and serves them over HTTP.
package status

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sort"
	"sync"
	"time"

	humanize "github.com/dustin/go-humanize"
)

var s = newEmptyStatus()

// Status holds every section of the process.
type Status struct {
	m        sync.Mutex
	sections map[string]*Section
}

func newEmptyStatus() *Status {
	return &Status{sections: make(map[string]*Section)}
}

// Get returns the process-wide *Status.
func Get() *Status {
	return s
}

func (st *Status) section(name string) *Section {
	st.m.Lock()
	defer st.m.Unlock()
	sec, ok := st.sections[name]
	if !ok {
		sec = newEmptySection(name)
		st.sections[name] = sec
	}
	return sec
}

// sorted returns a snapshot of the sections ordered by name.
func (st *Status) sorted() []*Section {
	st.m.Lock()
	defer st.m.Unlock()
	out := make([]*Section, 0, len(st.sections))
	for _, sec := range st.sections {
		out = append(out, sec)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].name < out[j].name })
	return out
}

// MarshalJSON encodes the sections keyed by name.
func (st *Status) MarshalJSON() ([]byte, error) {
	sections := make(map[string]*Section)
	for _, sec := range st.sorted() {
		sections[sec.name] = sec
	}
	return json.Marshal(struct {
		Sections map[string]*Section `json:"sections"`
	}{sections})
}

// HandlerJSON serves the process status as JSON; servers mount it at /debug/status-json.
func HandlerJSON(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(struct {
		Status *Status `json:"status"`
	}{s})
}

// WriteSummary prints every section in a human readable form.
func (st *Status) WriteSummary(w io.Writer) {
	for _, sec := range st.sorted() {
		sec.writeSummary(w)
	}
}

func (s *Section) writeSummary(w io.Writer) {
	s.m.Lock()
	defer s.m.Unlock()

	fmt.Fprintf(w, "== %s\n", s.name)
	for _, key := range sortedKeys(s.counters) {
		fmt.Fprintf(w, "  %s: %s\n", key, humanize.Comma(s.counters[key].GetValue()))
	}
	for _, key := range sortedKeys(s.ratios) {
		r := s.ratios[key]
		fmt.Fprintf(w, "  %s: %.1f%% of %s\n", key, r.Value(), humanize.Comma(r.Total()))
	}
	for _, key := range sortedKeys(s.breakdowns) {
		b := s.breakdowns[key]
		fmt.Fprintf(w, "  %s:\n", key)
		vals := b.Value()
		for _, cat := range sortedKeys(vals) {
			fmt.Fprintf(w, "    %s: %.1f%% (%s)\n", cat, vals[cat], humanize.Comma(b.Count(cat)))
		}
	}
	for _, key := range sortedKeys(s.sampleDurations) {
		d := s.sampleDurations[key]
		vals := d.Values()
		fmt.Fprintf(w, "  %s (%s samples): p50=%s p95=%s p99=%s\n", key, humanize.Comma(d.Count()),
			time.Duration(vals[1]), time.Duration(vals[3]), time.Duration(vals[4]))
	}
}

func sortedKeys(m interface{}) []string {
	var keys []string
	switch m := m.(type) {
	case map[string]*Counter:
		for k := range m {
			keys = append(keys, k)
		}
	case map[string]*Ratio:
		for k := range m {
			keys = append(keys, k)
		}
	case map[string]*Breakdown:
		for k := range m {
			keys = append(keys, k)
		}
	case map[string]*SampleDuration:
		for k := range m {
			keys = append(keys, k)
		}
	case map[string]float64:
		for k := range m {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys
}
