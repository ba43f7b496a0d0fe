package flow

import (
	"fmt"
	"sort"
)

// List is an ordered collection of flows. Iteration order is sorted by id
// so reads are deterministic regardless of mapping order.
type List struct {
	flows []Flow
}

// FromMapping builds a List from a flows mapping (flow id -> body).
func FromMapping(m map[string]any) (List, error) {
	ids := make([]string, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	flows := make([]Flow, 0, len(ids))
	for _, id := range ids {
		body, ok := m[id].(map[string]any)
		if !ok && m[id] != nil {
			return List{}, Issues{{
				Flow:    id,
				Code:    CodeInvalidFlow,
				Message: fmt.Sprintf("flow %q must be a mapping", id),
			}}
		}
		flows = append(flows, New(id, body))
	}
	return List{flows: flows}, nil
}

// Flows returns the flows in id order.
func (l List) Flows() []Flow {
	out := make([]Flow, len(l.flows))
	copy(out, l.flows)
	return out
}

// Len reports the number of flows.
func (l List) Len() int { return len(l.flows) }

// AsMapping is the inverse of FromMapping: flow bodies keyed by id, with no
// redundant id field inside the bodies.
func (l List) AsMapping() map[string]any {
	out := make(map[string]any, len(l.flows))
	for _, f := range l.flows {
		body := f.AsMapping()
		delete(body, KeyID)
		out[f.ID] = body
	}
	return out
}
