package flow

import "fmt"

// EndStep is the sentinel link target that ends a flow.
const EndStep = "END"

// stepKinds in the order probed when classifying a step.
var stepKinds = []string{"action", "collect", "link", "call", "set_slots"}

// Step is one step inside a flow, addressed by its position.
type Step struct {
	idx  int
	body map[string]any
}

// ID returns the explicit step id, or a positional default such as
// "0_action" when the author did not name the step.
func (s Step) ID() string {
	if id, ok := s.body[KeyID].(string); ok && id != "" {
		return id
	}
	return fmt.Sprintf("%d_%s", s.idx, s.Kind())
}

// Kind names the step variant, "step" when none of the known keys is set.
func (s Step) Kind() string {
	for _, k := range stepKinds {
		if _, ok := s.body[k]; ok {
			return k
		}
	}
	return "step"
}

// Links returns the step ids (or EndStep) this step transitions to.
// Condition blocks contribute their then/else targets; nested inline steps
// are not followed.
func (s Step) Links() []string {
	switch next := s.body[KeyNext].(type) {
	case string:
		return []string{next}
	case []any:
		var out []string
		for _, el := range next {
			cond, ok := el.(map[string]any)
			if !ok {
				continue
			}
			if t, ok := cond["then"].(string); ok {
				out = append(out, t)
			}
			if t, ok := cond["else"].(string); ok {
				out = append(out, t)
			}
		}
		return out
	default:
		return nil
	}
}
