package flowscribe

import (
	"fmt"

	"github.com/flowscribe/flowscribe/schema"
)

// SyntaxError reports YAML that is not well formed. Filename is set when
// the document was read from a file.
type SyntaxError struct {
	Filename string
	Cause    error
}

func (e *SyntaxError) Error() string {
	if e.Filename != "" {
		return fmt.Sprintf("failed to read %q: %v", e.Filename, e.Cause)
	}
	return fmt.Sprintf("failed to read flows: %v", e.Cause)
}

func (e *SyntaxError) Unwrap() error { return e.Cause }

// SchemaError reports a well-formed document that violates the flows
// schema. Message always carries the humanized diagnostic, never the raw
// validator message.
type SchemaError struct {
	Filename string
	Message  string
	Failure  *schema.Failure
}

func (e *SchemaError) Error() string {
	if e.Filename != "" {
		return fmt.Sprintf("%s (in %s)", e.Message, e.Filename)
	}
	return e.Message
}

// ReadError wraps any failure that is neither a syntax nor a schema error
// encountered while reading a flows file, citing the source file.
type ReadError struct {
	Filename string
	Err      error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("failed to read flows from %q: %v", e.Filename, e.Err)
}

func (e *ReadError) Unwrap() error { return e.Err }
