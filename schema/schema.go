package schema

import (
	"fmt"

	json "github.com/goccy/go-json"
)

// Constraint keywords the humanizer dispatches on. Any other keyword falls
// through to the generic arm.
const (
	KeywordOneOf                = "oneOf"
	KeywordAnyOf                = "anyOf"
	KeywordType                 = "type"
	KeywordAdditionalProperties = "additionalProperties"
	KeywordRequired             = "required"
)

// Node is a decoded view of one sub-schema. It mirrors the subset of JSON
// Schema the flows schema uses, plus the schema_name annotation used only
// for diagnostics. Raw keeps the undecoded mapping for fallback rendering.
type Node struct {
	SchemaName string
	Type       string
	OneOf      []*Node
	AnyOf      []*Node
	Required   []string
	Items      *Node
	Properties map[string]*Node

	Raw map[string]any
}

// nodeFromRaw decodes a raw schema mapping into a Node. Fields with an
// unexpected shape are simply left unset; Raw stays authoritative.
func nodeFromRaw(raw map[string]any) *Node {
	n := &Node{Raw: raw}
	if s, ok := raw["schema_name"].(string); ok {
		n.SchemaName = s
	}
	if s, ok := raw["type"].(string); ok {
		n.Type = s
	}
	n.OneOf = nodesFromRaw(raw[KeywordOneOf])
	n.AnyOf = nodesFromRaw(raw[KeywordAnyOf])
	if req, ok := raw["required"].([]any); ok {
		for _, r := range req {
			if s, ok := r.(string); ok {
				n.Required = append(n.Required, s)
			}
		}
	}
	if items, ok := raw["items"].(map[string]any); ok {
		n.Items = nodeFromRaw(items)
	}
	if props, ok := raw["properties"].(map[string]any); ok {
		n.Properties = make(map[string]*Node, len(props))
		for k, v := range props {
			if m, ok := v.(map[string]any); ok {
				n.Properties[k] = nodeFromRaw(m)
			}
		}
	}
	return n
}

func nodesFromRaw(v any) []*Node {
	list, ok := v.([]any)
	if !ok {
		return nil
	}
	nodes := make([]*Node, 0, len(list))
	for _, el := range list {
		if m, ok := el.(map[string]any); ok {
			nodes = append(nodes, nodeFromRaw(m))
		}
	}
	return nodes
}

// DisplayName returns the human label for the node: the schema_name
// annotation when present, the declared type otherwise, "" when neither is
// set.
func (n *Node) DisplayName() string {
	if n == nil {
		return ""
	}
	if n.SchemaName != "" {
		return n.SchemaName
	}
	return n.Type
}

// Alternatives returns the sub-schema list the given keyword selects over,
// nil for keywords without alternatives.
func (n *Node) Alternatives(keyword string) []*Node {
	if n == nil {
		return nil
	}
	switch keyword {
	case KeywordOneOf:
		return n.OneOf
	case KeywordAnyOf:
		return n.AnyOf
	}
	return nil
}

// DisplayNames collects the non-empty display names of the given nodes,
// preserving input order.
func DisplayNames(nodes []*Node) []string {
	names := make([]string, 0, len(nodes))
	for _, n := range nodes {
		if name := n.DisplayName(); name != "" {
			names = append(names, name)
		}
	}
	return names
}

// RawString renders the raw sub-schema as compact JSON. It is the
// last-resort stand-in when no alternative declares a display name; the
// result is developer-facing rather than author-facing.
func (n *Node) RawString() string {
	if n == nil || n.Raw == nil {
		return ""
	}
	b, err := json.Marshal(n.Raw)
	if err != nil {
		return fmt.Sprintf("%v", n.Raw)
	}
	return string(b)
}
