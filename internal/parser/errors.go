package parser

import (
	"fmt"

	"github.com/jonathan/resume-matcher/internal/types"
)

// DocumentError reports a whole document that could not be parsed,
// such as a scan the segmenter found no structure in. Batch callers
// record it and continue with the next document.
type DocumentError struct {
	DocType types.DocumentType
	Stage   string
	Cause   error
}

func (e *DocumentError) Error() string {
	return fmt.Sprintf("parser: %s failed at %s: %v", e.DocType, e.Stage, e.Cause)
}

func (e *DocumentError) Unwrap() error {
	return e.Cause
}
