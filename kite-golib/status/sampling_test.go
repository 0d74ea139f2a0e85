package status

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDeferRecord(t *testing.T) {
	d := NewSection("sampling test").SampleDuration("bar")
	d.SetSampleRate(1.0)

	d.DeferRecord(time.Now().Add(-200 * time.Millisecond))

	expected := int64(200 * time.Millisecond)
	actual := d.Values()[0]
	delta := float64(6 * time.Millisecond)
	assert.InDelta(t, expected, actual, delta)
	assert.EqualValues(t, 1, d.Count())
}

func TestPercentiles(t *testing.T) {
	d := newSampleDuration()
	for i := 1; i <= 100; i++ {
		d.Record(time.Duration(i) * time.Millisecond)
	}
	vals := d.Values()
	assert.Equal(t, int64(25*time.Millisecond), vals[0])
	assert.Equal(t, int64(50*time.Millisecond), vals[1])
	assert.Equal(t, int64(99*time.Millisecond), vals[4])
}

func TestZeroRate(t *testing.T) {
	d := newSampleDuration()
	d.SetSampleRate(0)
	d.Record(time.Second)
	assert.EqualValues(t, 0, d.Count())
	assert.Equal(t, []int64{0, 0, 0, 0, 0}, d.Values())
}
