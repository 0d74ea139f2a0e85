package status

import (
	"encoding/json"
	"sync"
	"sync/atomic"
)

// Counter is a monotonic count, e.g. bytes received or errors reported.
type Counter struct {
	n int64
}

// Add adds delta to the count.
func (c *Counter) Add(delta int64) {
	atomic.AddInt64(&c.n, delta)
}

// GetValue returns the current count.
func (c *Counter) GetValue() int64 {
	return atomic.LoadInt64(&c.n)
}

// MarshalJSON encodes the counter as a bare number.
func (c *Counter) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.GetValue())
}

// Ratio tracks how many of the recorded events were hits.
type Ratio struct {
	hits  int64
	total int64
}

// Hit records a hit.
func (r *Ratio) Hit() {
	atomic.AddInt64(&r.hits, 1)
	atomic.AddInt64(&r.total, 1)
}

// Miss records a miss.
func (r *Ratio) Miss() {
	atomic.AddInt64(&r.total, 1)
}

// Total returns the number of hits and misses recorded.
func (r *Ratio) Total() int64 {
	return atomic.LoadInt64(&r.total)
}

// Value returns the hit percentage, or 0 before anything is recorded.
func (r *Ratio) Value() float64 {
	hits, total := atomic.LoadInt64(&r.hits), atomic.LoadInt64(&r.total)
	if total == 0 {
		return 0
	}
	return 100 * float64(hits) / float64(total)
}

// MarshalJSON encodes the percentage along with the number of events.
func (r *Ratio) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Percent float64 `json:"percent"`
		Total   int64   `json:"total"`
	}{r.Value(), r.Total()})
}

// Breakdown counts how often each category of an outcome occurs, such as the
// message of a fatal syntax error or the status code of a response.
type Breakdown struct {
	m      sync.Mutex
	counts map[string]int64
	total  int64
}

// AddCategories registers categories up front so they are reported with a zero count.
func (b *Breakdown) AddCategories(names ...string) {
	b.m.Lock()
	defer b.m.Unlock()
	b.initLocked()
	for _, name := range names {
		if _, ok := b.counts[name]; !ok {
			b.counts[name] = 0
		}
	}
}

// HitAndAdd counts one occurrence of name, registering the category if it is new.
func (b *Breakdown) HitAndAdd(name string) {
	b.m.Lock()
	defer b.m.Unlock()
	b.initLocked()
	b.counts[name]++
	b.total++
}

func (b *Breakdown) initLocked() {
	if b.counts == nil {
		b.counts = make(map[string]int64)
	}
}

// Count returns the number of occurrences of name.
func (b *Breakdown) Count(name string) int64 {
	b.m.Lock()
	defer b.m.Unlock()
	return b.counts[name]
}

// Value maps each category to its share of all occurrences, as a percentage.
func (b *Breakdown) Value() map[string]float64 {
	b.m.Lock()
	defer b.m.Unlock()
	values := make(map[string]float64, len(b.counts))
	for name, n := range b.counts {
		if b.total == 0 {
			values[name] = 0
			continue
		}
		values[name] = 100 * float64(n) / float64(b.total)
	}
	return values
}

// MarshalJSON encodes the raw count of every category.
func (b *Breakdown) MarshalJSON() ([]byte, error) {
	b.m.Lock()
	defer b.m.Unlock()
	counts := make(map[string]int64, len(b.counts))
	for name, n := range b.counts {
		counts[name] = n
	}
	return json.Marshal(struct {
		Total  int64            `json:"total"`
		Counts map[string]int64 `json:"counts"`
	}{b.total, counts})
}
