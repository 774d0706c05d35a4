package models

import (
	"errors"
	"fmt"
)

// ErrPopulationTimeout is returned to every waiter when a fragment population
// exceeds its deadline or is cancelled. It is distinct from an upstream render
// failure so callers can apply a different retry policy. The store is never
// mutated by a timed-out population.
var ErrPopulationTimeout = errors.New("fragment population timed out")

// ConfigurationError reports an invalid cached-region configuration. It is
// surfaced when the configuration is loaded, never at render time.
type ConfigurationError struct {
	Region string
	Reason string
}

// NewConfigurationError creates a ConfigurationError for the given region.
// Region may be empty when the error is not tied to a specific region yet.
func NewConfigurationError(region, format string, args ...interface{}) *ConfigurationError {
	return &ConfigurationError{
		Region: region,
		Reason: fmt.Sprintf(format, args...),
	}
}

func (e *ConfigurationError) Error() string {
	if e.Region == "" {
		return fmt.Sprintf("invalid cache configuration: %s", e.Reason)
	}
	return fmt.Sprintf("invalid cache configuration for region %q: %s", e.Region, e.Reason)
}

// WithRegion returns a copy of the error bound to a region name. Used by the
// region registry to attach context to spec-level validation errors.
func (e *ConfigurationError) WithRegion(region string) *ConfigurationError {
	return &ConfigurationError{Region: region, Reason: e.Reason}
}
