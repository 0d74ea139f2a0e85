// Package envutil reads binary defaults from the environment.
package envutil

import (
	"os"
	"time"

	"github.com/kiteco/esparse/kite-golib/errors"
)

// GetenvDefault gets the value of an environment variable, or returns the
// specified default value if that variable is not set.
func GetenvDefault(name, defaultValue string) string {
	val, found := os.LookupEnv(name)
	if !found {
		return defaultValue
	}
	return val
}

// GetenvDefaultDuration parses an environment variable such as "3s" or "500ms",
// or else returns the default.
func GetenvDefaultDuration(name string, defaultVal time.Duration) (time.Duration, error) {
	val, found := os.LookupEnv(name)
	if !found {
		return defaultVal, nil
	}
	d, err := time.ParseDuration(val)
	if err != nil {
		return defaultVal, errors.Wrapf(err, "environment variable %s should be a duration", name)
	}
	return d, nil
}
