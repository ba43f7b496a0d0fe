// Package flow holds the domain model for flow documents: named flows,
// their steps, and the semantic checks that run after structural parsing.
package flow

// Body keys the engine itself reads. Everything else in a flow body is
// carried opaquely so documents round-trip losslessly.
const (
	KeyID    = "id"
	KeySteps = "steps"
	KeyNext  = "next"
)

// Flow is one named flow definition. The identifier comes from the outer
// mapping key, never from the body.
type Flow struct {
	ID string

	body map[string]any
}

// New builds a Flow from its mapping key and body. A redundant id field in
// the body is discarded in favor of the key; a nil body is treated as empty.
func New(id string, body map[string]any) Flow {
	b := make(map[string]any, len(body))
	for k, v := range body {
		if k == KeyID {
			continue
		}
		b[k] = v
	}
	return Flow{ID: id, body: b}
}

// Name returns the display name, falling back to the id.
func (f Flow) Name() string {
	if s, ok := f.body["name"].(string); ok && s != "" {
		return s
	}
	return f.ID
}

// Description returns the flow description, "" when unset.
func (f Flow) Description() string {
	s, _ := f.body["description"].(string)
	return s
}

// Steps returns the flow's steps in definition order. A missing or
// malformed steps entry yields nil.
func (f Flow) Steps() []Step {
	raw, ok := f.body[KeySteps].([]any)
	if !ok {
		return nil
	}
	steps := make([]Step, 0, len(raw))
	for i, el := range raw {
		body, ok := el.(map[string]any)
		if !ok {
			continue
		}
		steps = append(steps, Step{idx: i, body: body})
	}
	return steps
}

// AsMapping returns the flow as a mapping including the id field, the
// inverse of New.
func (f Flow) AsMapping() map[string]any {
	out := make(map[string]any, len(f.body)+1)
	for k, v := range f.body {
		out[k] = v
	}
	out[KeyID] = f.ID
	return out
}
