package flowscribe

import (
	"fmt"
	"sort"
	"strings"

	"github.com/flowscribe/flowscribe/schema"
)

// Humanize converts one structured schema failure into a sentence naming
// the offending field and the expected shape. It is pure: no state, no side
// effects, deterministic given the failure.
func Humanize(f *schema.Failure) string {
	switch f.Keyword {
	case schema.KeywordOneOf, schema.KeywordAnyOf:
		return fmt.Sprintf("Not a valid '%s' definition. Expected %s.",
			f.Path.FaultyProperty(), expectedAlternatives(f))
	case schema.KeywordType:
		return fmt.Sprintf("Found %s but expected a %s.",
			classifyInstance(f.Instance), f.Schema.DisplayName())
	case schema.KeywordAdditionalProperties, schema.KeywordRequired:
		// The underlying validator already produces an adequate, specific
		// message for these.
		return f.Message
	default:
		return fmt.Sprintf("The flow at %s is not valid. Please double check your flow definition.",
			f.DocumentPath())
	}
}

// expectedAlternatives names the sub-schemas the failing keyword selects
// over: their display names sorted and deduplicated, joined with " or ".
// When no alternative declares a name, the raw sub-schema is rendered
// instead; that message is developer-facing and deliberately left as-is.
func expectedAlternatives(f *schema.Failure) string {
	names := schema.DisplayNames(f.Schema.Alternatives(f.Keyword))
	if len(names) == 0 {
		return f.Schema.RawString()
	}
	sort.Strings(names)
	names = dedupeSorted(names)
	return strings.Join(names, " or ")
}

func dedupeSorted(names []string) []string {
	out := names[:1]
	for _, n := range names[1:] {
		if n != out[len(out)-1] {
			out = append(out, n)
		}
	}
	return out
}

func classifyInstance(instance any) string {
	switch instance.(type) {
	case map[string]any:
		return "a dictionary"
	case []any:
		return "a list"
	default:
		return fmt.Sprintf("`%v`", instance)
	}
}
