package extraction

import "fmt"

// StrategyError reports one field strategy failing. The orchestrator
// logs it, leaves the field absent and keeps extracting the rest.
type StrategyError struct {
	Field string
	Cause error
}

func (e *StrategyError) Error() string {
	return fmt.Sprintf("extraction: %s strategy failed: %v", e.Field, e.Cause)
}

func (e *StrategyError) Unwrap() error {
	return e.Cause
}
