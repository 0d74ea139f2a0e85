package status

import (
	"encoding/json"
	"sync"
)

// Section groups the metrics of one component. Metrics are created on first use
// and live for the rest of the process.
type Section struct {
	name string

	m               sync.Mutex
	counters        map[string]*Counter
	ratios          map[string]*Ratio
	breakdowns      map[string]*Breakdown
	sampleDurations map[string]*SampleDuration
}

// NewSection returns the section registered under name, creating it if needed.
// Packages call it from a package-level var block.
func NewSection(name string) *Section {
	return s.section(name)
}

func newEmptySection(name string) *Section {
	return &Section{
		name:            name,
		counters:        make(map[string]*Counter),
		ratios:          make(map[string]*Ratio),
		breakdowns:      make(map[string]*Breakdown),
		sampleDurations: make(map[string]*SampleDuration),
	}
}

// Name of the section.
func (s *Section) Name() string {
	return s.name
}

// Counter returns the counter called name.
func (s *Section) Counter(name string) *Counter {
	s.m.Lock()
	defer s.m.Unlock()
	if c, ok := s.counters[name]; ok {
		return c
	}
	c := &Counter{}
	s.counters[name] = c
	return c
}

// Ratio returns the ratio called name.
func (s *Section) Ratio(name string) *Ratio {
	s.m.Lock()
	defer s.m.Unlock()
	if r, ok := s.ratios[name]; ok {
		return r
	}
	r := &Ratio{}
	s.ratios[name] = r
	return r
}

// Breakdown returns the breakdown called name.
func (s *Section) Breakdown(name string) *Breakdown {
	s.m.Lock()
	defer s.m.Unlock()
	if b, ok := s.breakdowns[name]; ok {
		return b
	}
	b := &Breakdown{}
	s.breakdowns[name] = b
	return b
}

// SampleDuration returns the duration sampler called name.
func (s *Section) SampleDuration(name string) *SampleDuration {
	s.m.Lock()
	defer s.m.Unlock()
	if d, ok := s.sampleDurations[name]; ok {
		return d
	}
	d := newSampleDuration()
	s.sampleDurations[name] = d
	return d
}

// MarshalJSON encodes every metric of the section, grouped by kind.
func (s *Section) MarshalJSON() ([]byte, error) {
	s.m.Lock()
	defer s.m.Unlock()
	return json.Marshal(struct {
		Name            string                     `json:"name"`
		Counters        map[string]*Counter        `json:"counters,omitempty"`
		Ratios          map[string]*Ratio          `json:"ratios,omitempty"`
		Breakdowns      map[string]*Breakdown      `json:"breakdowns,omitempty"`
		SampleDurations map[string]*SampleDuration `json:"sample_durations,omitempty"`
	}{s.name, s.counters, s.ratios, s.breakdowns, s.sampleDurations})
}
