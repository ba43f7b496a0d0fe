package flow

import "fmt"

// Validate checks domain invariants across the list: every flow declares a
// non-empty list of steps, step ids are unique within a flow, and every
// link target names a step in the same flow or EndStep. It returns Issues
// when any invariant is broken.
func (l List) Validate() error {
	var iss Issues
	for _, f := range l.flows {
		iss = append(iss, validateFlow(f)...)
	}
	if len(iss) > 0 {
		return iss
	}
	return nil
}

func validateFlow(f Flow) Issues {
	if _, ok := f.body[KeySteps]; !ok {
		return Issues{{
			Flow:    f.ID,
			Code:    CodeMissingSteps,
			Message: fmt.Sprintf("flow %q has no steps", f.ID),
		}}
	}
	steps := f.Steps()
	if len(steps) == 0 {
		return Issues{{
			Flow:    f.ID,
			Code:    CodeEmptySteps,
			Message: fmt.Sprintf("flow %q has an empty list of steps", f.ID),
		}}
	}

	var iss Issues
	ids := make(map[string]struct{}, len(steps))
	for _, s := range steps {
		id := s.ID()
		if _, dup := ids[id]; dup {
			iss = append(iss, Issue{
				Flow:    f.ID,
				Step:    id,
				Code:    CodeDuplicateStepID,
				Message: fmt.Sprintf("step id %q is used more than once in flow %q", id, f.ID),
			})
			continue
		}
		ids[id] = struct{}{}
	}
	for _, s := range steps {
		for _, target := range s.Links() {
			if target == EndStep {
				continue
			}
			if _, ok := ids[target]; !ok {
				iss = append(iss, Issue{
					Flow:    f.ID,
					Step:    s.ID(),
					Code:    CodeUnknownLink,
					Message: fmt.Sprintf("step %q in flow %q links to unknown step %q", s.ID(), f.ID, target),
				})
			}
		}
	}
	return iss
}
