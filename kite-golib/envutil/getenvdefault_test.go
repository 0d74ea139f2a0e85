package envutil

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetenvDefault(t *testing.T) {
	os.Unsetenv("ESPARSE_TEST_VAR")
	assert.Equal(t, "x", GetenvDefault("ESPARSE_TEST_VAR", "x"))

	require.NoError(t, os.Setenv("ESPARSE_TEST_VAR", "y"))
	defer os.Unsetenv("ESPARSE_TEST_VAR")
	assert.Equal(t, "y", GetenvDefault("ESPARSE_TEST_VAR", "x"))
}

func TestGetenvDefaultDuration(t *testing.T) {
	os.Unsetenv("ESPARSE_TEST_DURATION")
	d, err := GetenvDefaultDuration("ESPARSE_TEST_DURATION", time.Second)
	require.NoError(t, err)
	assert.Equal(t, time.Second, d)

	require.NoError(t, os.Setenv("ESPARSE_TEST_DURATION", "250ms"))
	defer os.Unsetenv("ESPARSE_TEST_DURATION")
	d, err = GetenvDefaultDuration("ESPARSE_TEST_DURATION", time.Second)
	require.NoError(t, err)
	assert.Equal(t, 250*time.Millisecond, d)

	require.NoError(t, os.Setenv("ESPARSE_TEST_DURATION", "soon"))
	d, err = GetenvDefaultDuration("ESPARSE_TEST_DURATION", time.Second)
	assert.Error(t, err)
	assert.Equal(t, time.Second, d)
}
