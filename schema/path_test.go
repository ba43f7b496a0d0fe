package schema_test

import (
	"testing"

	"github.com/flowscribe/flowscribe/schema"
)

func TestPath_FaultyProperty(t *testing.T) {
	tests := []struct {
		name string
		path schema.Path
		want string
	}{
		{"empty path means document root", schema.Path{}, "schema"},
		{
			"plain property",
			schema.Path{schema.Key("flows"), schema.Key("x"), schema.Key("steps"), schema.Index(0), schema.Key("next")},
			"next",
		},
		{
			"trailing index attributes to the owning list",
			schema.Path{schema.Key("flows"), schema.Key("x"), schema.Key("steps"), schema.Index(2)},
			"steps",
		},
		{"root-level index", schema.Path{schema.Index(0)}, "list"},
		{
			"index owned by an index stringifies it",
			schema.Path{schema.Index(1), schema.Index(0)},
			"1",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.path.FaultyProperty(); got != tt.want {
				t.Fatalf("FaultyProperty() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPath_JSONPath(t *testing.T) {
	p := schema.Path{schema.Key("flows"), schema.Key("greet"), schema.Key("steps"), schema.Index(0)}
	if got, want := p.JSONPath(), "$.flows.greet.steps[0]"; got != want {
		t.Fatalf("JSONPath() = %q, want %q", got, want)
	}
	if got, want := (schema.Path{}).JSONPath(), "$"; got != want {
		t.Fatalf("JSONPath() = %q, want %q", got, want)
	}
}
