package status

import (
	"encoding/json"
	"math/rand"
	"sync"
	"time"

	"github.com/montanaflynn/stats"
)

const maxSamples = 1024

var samplePercentiles = []float64{25, 50, 75, 95, 99}

// SampleDuration keeps a bounded reservoir of durations and reports their percentiles.
type SampleDuration struct {
	m       sync.Mutex
	rate    float64
	seen    int64
	samples []float64
	rnd     *rand.Rand
}

func newSampleDuration() *SampleDuration {
	return &SampleDuration{
		rate: 1.0,
		rnd:  rand.New(rand.NewSource(1)),
	}
}

// SetSampleRate sets the fraction of Record calls that are kept.
func (d *SampleDuration) SetSampleRate(rate float64) {
	d.m.Lock()
	defer d.m.Unlock()
	d.rate = rate
}

// Record adds a duration to the reservoir.
func (d *SampleDuration) Record(v time.Duration) {
	d.m.Lock()
	defer d.m.Unlock()
	if d.rate < 1 && d.rnd.Float64() >= d.rate {
		return
	}
	d.seen++
	if len(d.samples) < maxSamples {
		d.samples = append(d.samples, float64(v))
		return
	}
	if idx := d.rnd.Int63n(d.seen); idx < maxSamples {
		d.samples[idx] = float64(v)
	}
}

// DeferRecord records the time elapsed since start: `defer d.DeferRecord(time.Now())`.
func (d *SampleDuration) DeferRecord(start time.Time) {
	d.Record(time.Since(start))
}

// Count returns the number of durations recorded.
func (d *SampleDuration) Count() int64 {
	d.m.Lock()
	defer d.m.Unlock()
	return d.seen
}

// Values returns the durations, in nanoseconds, at the 25/50/75/95/99th percentiles.
func (d *SampleDuration) Values() []int64 {
	d.m.Lock()
	data := stats.Float64Data(append([]float64(nil), d.samples...))
	d.m.Unlock()

	ret := make([]int64, len(samplePercentiles))
	if len(data) == 0 {
		return ret
	}
	for i, p := range samplePercentiles {
		v, err := stats.PercentileNearestRank(data, p)
		if err != nil {
			continue
		}
		ret[i] = int64(v)
	}
	return ret
}

// MarshalJSON reports the sample count and percentile values.
func (d *SampleDuration) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Count       int64     `json:"count"`
		Percentiles []float64 `json:"percentiles"`
		Values      []int64   `json:"values"`
	}{d.Count(), samplePercentiles, d.Values()})
}
