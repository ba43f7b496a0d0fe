package flowscribe

import (
	"context"
	"errors"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/flowscribe/flowscribe/flow"
	"github.com/flowscribe/flowscribe/internal/yamlconv"
	"github.com/flowscribe/flowscribe/schema"
)

// KeyFlows is the top-level mapping key holding the flow definitions.
const KeyFlows = "flows"

// ReadOpt adjusts a single read call.
type ReadOpt struct {
	// SkipValidation bypasses the schema and semantic validation passes for
	// documents that were already validated once, e.g. when loaded back from
	// a trusted store. Parsing itself always runs.
	SkipValidation bool
}

// Reader reads flow documents, validating them against a flows schema
// before parsing. A Reader holds no mutable state and is safe for
// concurrent use.
type Reader struct {
	validator *schema.Validator
}

// NewReader returns a Reader validating against the given schema. A nil
// validator selects the embedded flows schema.
func NewReader(v *schema.Validator) *Reader {
	if v == nil {
		v = schema.Default()
	}
	return &Reader{validator: v}
}

// DefaultReader returns a Reader backed by the embedded flows schema.
func DefaultReader() *Reader { return NewReader(schema.Default()) }

// ReadFile reads flows from a file. Syntax and schema errors are annotated
// with the file name; semantic and any other non-IO failures are wrapped
// into a ReadError citing the file. IO errors propagate unmodified.
func (r *Reader) ReadFile(ctx context.Context, name string, opts ...ReadOpt) (flow.List, error) {
	data, err := os.ReadFile(name)
	if err != nil {
		return flow.List{}, err
	}
	flows, err := r.ReadString(ctx, string(data), opts...)
	if err != nil {
		var syn *SyntaxError
		if errors.As(err, &syn) {
			syn.Filename = name
			return flow.List{}, syn
		}
		var sch *SchemaError
		if errors.As(err, &sch) {
			sch.Filename = name
			return flow.List{}, sch
		}
		return flow.List{}, &ReadError{Filename: name, Err: err}
	}
	return flows, nil
}

// ReadString reads flows from unprocessed YAML content. Unless skipped, the
// document is first checked against the flows schema, surfacing the best
// matching failure through Humanize, and the parsed flows then run their
// semantic validation.
func (r *Reader) ReadString(ctx context.Context, text string, opts ...ReadOpt) (flow.List, error) {
	var opt ReadOpt
	if len(opts) > 0 {
		opt = opts[len(opts)-1]
	}
	if err := ctx.Err(); err != nil {
		return flow.List{}, err
	}

	var doc any
	if err := yaml.Unmarshal([]byte(text), &doc); err != nil {
		return flow.List{}, &SyntaxError{Cause: err}
	}

	if !opt.SkipValidation {
		if f := r.validator.ValidateDocument(yamlconv.Normalize(doc)); f != nil {
			return flow.List{}, &SchemaError{Message: Humanize(f), Failure: f}
		}
	}

	mapping, _ := doc.(map[string]any)
	body, _ := mapping[KeyFlows].(map[string]any)
	flows, err := flow.FromMapping(body)
	if err != nil {
		return flow.List{}, err
	}
	if !opt.SkipValidation {
		if err := flows.Validate(); err != nil {
			return flow.List{}, err
		}
	}
	return flows, nil
}

// FlowsFromString reads flows from a YAML snippet using the embedded
// schema, dedenting the snippet first so indented raw string literals in
// callers read naturally.
func FlowsFromString(yamlStr string) (flow.List, error) {
	return DefaultReader().ReadString(context.Background(), dedent(yamlStr))
}

// dedent strips the longest common leading whitespace from every non-blank
// line.
func dedent(s string) string {
	lines := strings.Split(s, "\n")
	margin := ""
	found := false
	for _, line := range lines {
		trimmed := strings.TrimLeft(line, " \t")
		if trimmed == "" {
			continue
		}
		indent := line[:len(line)-len(trimmed)]
		if !found || len(indent) < len(margin) {
			margin = indent
			found = true
		}
	}
	if margin == "" {
		return s
	}
	for i, line := range lines {
		lines[i] = strings.TrimPrefix(line, margin)
	}
	return strings.Join(lines, "\n")
}
