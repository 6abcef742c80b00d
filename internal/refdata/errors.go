package refdata

import "fmt"

// ConfigError reports a reference file that could not be loaded. The
// pipeline treats it as fatal: extraction never runs with a partial
// vocabulary.
type ConfigError struct {
	Resource string
	Path     string
	Cause    error
}

func (e *ConfigError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("refdata: loading embedded %s: %v", e.Resource, e.Cause)
	}
	return fmt.Sprintf("refdata: loading %s from %s: %v", e.Resource, e.Path, e.Cause)
}

func (e *ConfigError) Unwrap() error {
	return e.Cause
}
