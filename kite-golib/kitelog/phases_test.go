package kitelog

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPhasesFlush(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, "").WithPhases()
	l.Phases.Record("parse", 2*time.Millisecond)
	l.Phases.Record("validate", time.Millisecond)
	require.Equal(t, 2, l.Phases.Len())
	assert.Equal(t, 3*time.Millisecond, l.Phases.Total())

	l.Phases.Flush(l)

	out := buf.String()
	assert.True(t, strings.Contains(out, "parse"))
	assert.True(t, strings.Contains(out, "2ms"))
	assert.True(t, strings.Contains(out, "validate"))
	assert.True(t, strings.Contains(out, "3ms"))
	assert.Equal(t, 0, l.Phases.Len())
}

func TestPhasesFlushEmpty(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, "")
	l.Phases.Flush(l)
	assert.Empty(t, buf.String())
}

func TestWithPhasesCopies(t *testing.T) {
	l := New(&bytes.Buffer{}, "")
	l.Phases.Record("read", time.Millisecond)
	derived := l.WithPhases()
	assert.Equal(t, 0, derived.Phases.Len())
	assert.Equal(t, 1, l.Phases.Len())
}
