package flow

import (
	"errors"
	"fmt"
	"strings"
)

// Semantic issue codes.
const (
	CodeInvalidFlow     = "invalid_flow"
	CodeMissingSteps    = "missing_steps"
	CodeEmptySteps      = "empty_steps"
	CodeDuplicateStepID = "duplicate_step_id"
	CodeUnknownLink     = "unknown_link_target"
)

// Issue is a single semantic validation finding.
type Issue struct {
	Flow    string // flow id
	Step    string // step id, when applicable
	Code    string // one of the codes listed above
	Message string
}

// Issues is a collection of semantic findings that implements error.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(iss)
	lim := n
	if lim > maxShown {
		lim = maxShown
	}
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		it := iss[i]
		fmt.Fprintf(b, "%s in flow %q", it.Code, it.Flow)
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// AsIssues extracts Issues from an error using errors.As internally.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	return nil, false
}
