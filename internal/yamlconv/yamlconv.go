// Package yamlconv normalizes YAML-decoded values into JSON-shaped values
// so they can be checked by a JSON Schema validator.
package yamlconv

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"
)

// Normalize converts a YAML-decoded value into its JSON-shaped equivalent:
// string-keyed maps, []any sequences, json.Number numbers. Scalars with no
// JSON counterpart are rendered as strings.
func Normalize(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, vv := range t {
			out[k] = Normalize(vv)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, vv := range t {
			ks, ok := k.(string)
			if !ok {
				ks = fmt.Sprint(k)
			}
			out[ks] = Normalize(vv)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i := range t {
			out[i] = Normalize(t[i])
		}
		return out
	case nil, bool, string, json.Number:
		return t
	case int:
		return json.Number(strconv.Itoa(t))
	case int64:
		return json.Number(strconv.FormatInt(t, 10))
	case uint64:
		return json.Number(strconv.FormatUint(t, 10))
	case float32:
		return json.Number(strconv.FormatFloat(float64(t), 'g', -1, 32))
	case float64:
		return json.Number(strconv.FormatFloat(t, 'g', -1, 64))
	case time.Time:
		return t.Format(time.RFC3339)
	case []byte:
		return string(t)
	default:
		return fmt.Sprint(t)
	}
}
