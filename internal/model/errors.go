package model

import (
	"fmt"
	"strings"
)

// ConfigError reports every violated scenario invariant at once, so a
// caller-facing form or CLI can surface all problems in one pass instead
// of fixing them one by one.
type ConfigError struct {
	Violations []string
}

func (e *ConfigError) Error() string {
	if len(e.Violations) == 1 {
		return "invalid scenario: " + e.Violations[0]
	}
	return fmt.Sprintf("invalid scenario (%d violations): %s",
		len(e.Violations), strings.Join(e.Violations, "; "))
}

// AsConfigError unwraps err into a *ConfigError if it is one.
func AsConfigError(err error) (*ConfigError, bool) {
	ce, ok := err.(*ConfigError)
	return ce, ok
}
