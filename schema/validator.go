package schema

import (
	"bytes"
	_ "embed"
	"fmt"
	"strconv"
	"strings"
	"sync"

	json "github.com/goccy/go-json"
	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed flows_schema.json
var flowsSchemaJSON []byte

// Failure reports a single schema violation in a document. Instances are
// transient: produced per validation pass and consumed immediately by the
// humanizer.
type Failure struct {
	Path     Path   // location of the offending value, root first
	Keyword  string // constraint that failed (KeywordOneOf, KeywordType, ...)
	Schema   *Node  // sub-schema responsible for the constraint
	Instance any    // value found at Path
	Message  string // generic message from the underlying validator
}

// DocumentPath renders the failure location for display, e.g.
// $.flows.greet.steps[0].
func (f *Failure) DocumentPath() string { return f.Path.JSONPath() }

// Validator wraps a compiled flows schema together with its raw document so
// failing sub-schemas can be resolved back to their schema_name annotations.
// A Validator is immutable and safe for concurrent use.
type Validator struct {
	compiled *jsonschema.Schema
	raw      map[string]any
}

// Compile builds a Validator from a JSON schema document.
func Compile(doc []byte) (*Validator, error) {
	var raw map[string]any
	if err := json.Unmarshal(doc, &raw); err != nil {
		return nil, fmt.Errorf("schema: invalid schema document: %w", err)
	}
	c := jsonschema.NewCompiler()
	if err := c.AddResource("flows_schema.json", bytes.NewReader(doc)); err != nil {
		return nil, fmt.Errorf("schema: %w", err)
	}
	compiled, err := c.Compile("flows_schema.json")
	if err != nil {
		return nil, fmt.Errorf("schema: %w", err)
	}
	return &Validator{compiled: compiled, raw: raw}, nil
}

var defaultValidator = sync.OnceValue(func() *Validator {
	v, err := Compile(flowsSchemaJSON)
	if err != nil {
		panic(fmt.Sprintf("schema: embedded flows schema: %v", err))
	}
	return v
})

// Default returns the Validator for the embedded flows schema.
func Default() *Validator { return defaultValidator() }

// ValidateDocument validates a decoded, JSON-shaped document and returns
// the most specific failure, or nil when the document conforms.
func (v *Validator) ValidateDocument(doc any) *Failure {
	err := v.compiled.Validate(doc)
	if err == nil {
		return nil
	}
	ve, ok := err.(*jsonschema.ValidationError)
	if !ok {
		return &Failure{Message: err.Error()}
	}
	leaf := bestMatch(ve)
	return &Failure{
		Path:     pathFromPointer(leaf.InstanceLocation),
		Keyword:  lastPointerToken(leaf.KeywordLocation),
		Schema:   v.resolveSchema(parentPointer(leaf.KeywordLocation)),
		Instance: valueAt(doc, pathFromPointer(leaf.InstanceLocation)),
		Message:  leaf.Message,
	}
}

// bestMatch walks the cause tree towards the most specific failure. A
// deeper instance location wins. A oneOf/anyOf error whose causes never
// reach deeper than its own location is reported as the oneOf/anyOf
// failure itself: no branch got further than "none matched", so the union
// is the story, not any single branch.
func bestMatch(ve *jsonschema.ValidationError) *jsonschema.ValidationError {
	if len(ve.Causes) == 0 {
		return ve
	}
	best := bestMatch(ve.Causes[0])
	for _, c := range ve.Causes[1:] {
		if cand := bestMatch(c); pointerDepth(cand.InstanceLocation) > pointerDepth(best.InstanceLocation) {
			best = cand
		}
	}
	kw := lastPointerToken(ve.KeywordLocation)
	if (kw == KeywordOneOf || kw == KeywordAnyOf) && pointerDepth(best.InstanceLocation) <= pointerDepth(ve.InstanceLocation) {
		return ve
	}
	return best
}

func pointerDepth(ptr string) int { return len(pointerTokens(ptr)) }

func lastPointerToken(ptr string) string {
	toks := pointerTokens(ptr)
	if len(toks) == 0 {
		return ""
	}
	return toks[len(toks)-1]
}

func parentPointer(ptr string) string {
	if i := strings.LastIndex(ptr, "/"); i >= 0 {
		return ptr[:i]
	}
	return ""
}

// resolveSchema walks the raw schema document along a keyword location,
// following local $ref indirections, and decodes the node it lands on.
func (v *Validator) resolveSchema(ptr string) *Node {
	node := resolvePointer(v.raw, v.raw, pointerTokens(ptr))
	m, ok := node.(map[string]any)
	if !ok {
		return nil
	}
	return nodeFromRaw(m)
}

func resolvePointer(root map[string]any, node any, toks []string) any {
	for i := 0; i < len(toks); i++ {
		switch cur := node.(type) {
		case map[string]any:
			if toks[i] == "$ref" {
				ref, _ := cur["$ref"].(string)
				frag, ok := strings.CutPrefix(ref, "#")
				if !ok {
					return nil
				}
				node = resolvePointer(root, root, pointerTokens(frag))
				continue
			}
			next, ok := cur[toks[i]]
			if !ok {
				return nil
			}
			node = next
		case []any:
			idx, err := strconv.Atoi(toks[i])
			if err != nil || idx < 0 || idx >= len(cur) {
				return nil
			}
			node = cur[idx]
		default:
			return nil
		}
	}
	return node
}

// valueAt extracts the document value at the given path, nil when the path
// does not resolve.
func valueAt(doc any, p Path) any {
	node := doc
	for _, seg := range p {
		switch cur := node.(type) {
		case map[string]any:
			node = cur[seg.String()]
		case []any:
			if !seg.IsIndex() || seg.index < 0 || seg.index >= len(cur) {
				return nil
			}
			node = cur[seg.index]
		default:
			return nil
		}
	}
	return node
}
