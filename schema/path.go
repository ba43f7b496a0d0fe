package schema

import (
	"fmt"
	"strconv"
	"strings"
)

// Segment is one step of a document path: either a mapping key or a
// sequence index.
type Segment struct {
	key     string
	index   int
	isIndex bool
}

// Key builds a mapping-key segment.
func Key(name string) Segment { return Segment{key: name} }

// Index builds a sequence-index segment.
func Index(i int) Segment { return Segment{index: i, isIndex: true} }

// IsIndex reports whether the segment addresses a sequence element.
func (s Segment) IsIndex() bool { return s.isIndex }

func (s Segment) String() string {
	if s.isIndex {
		return strconv.Itoa(s.index)
	}
	return s.key
}

// Path locates a value inside a document, root first. An empty path
// denotes the document root.
type Path []Segment

// FaultyProperty names the property a failure at this path should be
// reported against. The root maps to "schema". A trailing index is
// attributed to the owning sequence's key, or "list" when the sequence
// itself is the root.
func (p Path) FaultyProperty() string {
	if len(p) == 0 {
		return "schema"
	}
	last := p[len(p)-1]
	if last.isIndex {
		if len(p) > 1 {
			return p[len(p)-2].String()
		}
		return "list"
	}
	return last.key
}

// JSONPath renders the path for display, e.g. $.flows.greet.steps[0].
func (p Path) JSONPath() string {
	b := &strings.Builder{}
	b.WriteString("$")
	for _, s := range p {
		if s.isIndex {
			fmt.Fprintf(b, "[%d]", s.index)
		} else {
			b.WriteString(".")
			b.WriteString(s.key)
		}
	}
	return b.String()
}

// pathFromPointer converts a JSON Pointer (RFC 6901) into a Path. Numeric
// tokens become index segments.
func pathFromPointer(ptr string) Path {
	toks := pointerTokens(ptr)
	p := make(Path, 0, len(toks))
	for _, tok := range toks {
		if i, err := strconv.Atoi(tok); err == nil {
			p = append(p, Index(i))
			continue
		}
		p = append(p, Key(tok))
	}
	return p
}

// pointerTokens splits a JSON Pointer into unescaped reference tokens.
func pointerTokens(ptr string) []string {
	if ptr == "" || ptr == "/" {
		return nil
	}
	raw := strings.Split(strings.TrimPrefix(ptr, "/"), "/")
	toks := make([]string, len(raw))
	for i, t := range raw {
		t = strings.ReplaceAll(t, "~1", "/")
		t = strings.ReplaceAll(t, "~0", "~")
		toks[i] = t
	}
	return toks
}
