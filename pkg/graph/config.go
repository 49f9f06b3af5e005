package graph

import (
	"github.com/mkaiser-dev/microgrid-graph/pkg/category"
	"github.com/mkaiser-dev/microgrid-graph/pkg/logging"
)

// Config contains the configuration options for a ComponentGraph. The
// zero value is the strict default: every validation failure rejects the
// graph.
type Config struct {
	// AllowUnconnectedComponents downgrades the rejection of components
	// that are not reachable from the root to a warning.
	AllowUnconnectedComponents bool

	// AllowUnspecifiedInverters accepts inverters whose type is not
	// specified and treats them as battery inverters everywhere,
	// including meter-role classification and validation.
	AllowUnspecifiedInverters bool

	// AllowComponentValidationFailures downgrades per-category neighbor
	// invariant failures to warnings. Root uniqueness, acyclicity and
	// connectedness are never downgraded by this option.
	AllowComponentValidationFailures bool

	// Logger receives validation warnings. When nil, warnings are
	// dropped.
	Logger logging.Logger
}

// IsBatteryInverter reports whether the given category counts as a
// battery inverter under this configuration. Unspecified inverters count
// when AllowUnspecifiedInverters is set.
func (c Config) IsBatteryInverter(cat category.ComponentCategory) bool {
	if cat.IsBatteryInverter() {
		return true
	}
	return c.AllowUnspecifiedInverters && cat.IsUnspecifiedInverter()
}

func (c Config) logger() logging.Logger {
	if c.Logger == nil {
		return logging.NopLogger{}
	}
	return c.Logger
}
