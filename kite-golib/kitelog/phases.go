package kitelog

import (
	"bytes"
	"fmt"
	"text/tabwriter"
	"time"
)

type phase struct {
	name string
	took time.Duration
}

// Phases records, in order, how long each step of a job took (read, parse, validate, ...).
type Phases struct {
	entries []phase
}

// Record adds a phase.
func (p *Phases) Record(name string, took time.Duration) {
	p.entries = append(p.entries, phase{name, took})
}

// Since records the time elapsed since start, e.g. `defer phases.Since("parse", time.Now())`.
func (p *Phases) Since(name string, start time.Time) {
	p.Record(name, time.Since(start))
}

// Len is the number of phases recorded since the last Flush.
func (p *Phases) Len() int {
	return len(p.entries)
}

// Total sums all recorded phases.
func (p *Phases) Total() time.Duration {
	var total time.Duration
	for _, e := range p.entries {
		total += e.took
	}
	return total
}

// Flush logs one aligned row per phase followed by the total, then forgets them.
func (p *Phases) Flush(i Interface) {
	if len(p.entries) == 0 {
		return
	}
	var b bytes.Buffer
	tw := tabwriter.NewWriter(&b, 0, 4, 2, ' ', 0)
	for _, e := range p.entries {
		fmt.Fprintf(tw, "  %s\t%s\n", e.name, e.took)
	}
	fmt.Fprintf(tw, "  total\t%s\n", p.Total())
	tw.Flush()
	p.entries = nil

	i.Printf("%s", b.String())
}

// WithPhases returns a copy of l with an empty phase list.
func (l *Logger) WithPhases() *Logger {
	out := *l
	out.Phases = Phases{}
	return &out
}
