package flowscribe_test

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	flowscribe "github.com/flowscribe/flowscribe"
	"github.com/flowscribe/flowscribe/flow"
)

const validFlows = `flows:
  greet:
    description: greets the user
    steps:
      - id: start
        action: utter_greet
        next: END
`

func TestReadString_ValidDocument(t *testing.T) {
	flows, err := flowscribe.DefaultReader().ReadString(context.Background(), validFlows)
	if err != nil {
		t.Fatalf("ReadString: %v", err)
	}
	if flows.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", flows.Len())
	}
	f := flows.Flows()[0]
	if f.ID != "greet" {
		t.Fatalf("ID = %q, want %q", f.ID, "greet")
	}
	steps := f.Steps()
	if len(steps) != 1 || steps[0].Kind() != "action" || steps[0].ID() != "start" {
		t.Fatalf("unexpected steps: %+v", steps)
	}
}

func TestReadString_HumanizesSchemaFailures(t *testing.T) {
	text := "flows:\n  greet:\n    steps: \"not-a-list\"\n"
	_, err := flowscribe.DefaultReader().ReadString(context.Background(), text)
	var sch *flowscribe.SchemaError
	if !errors.As(err, &sch) {
		t.Fatalf("expected *SchemaError, got %v", err)
	}
	want := "Found `not-a-list` but expected a list of steps."
	if sch.Message != want {
		t.Fatalf("Message = %q, want %q", sch.Message, want)
	}
	if sch.Error() != want {
		t.Fatalf("Error() = %q, want %q", sch.Error(), want)
	}
	if sch.Failure == nil {
		t.Fatalf("expected the structured failure to be attached")
	}
}

func TestReadString_MalformedYAML(t *testing.T) {
	_, err := flowscribe.DefaultReader().ReadString(context.Background(), "flows: [unclosed")
	var syn *flowscribe.SyntaxError
	if !errors.As(err, &syn) {
		t.Fatalf("expected *SyntaxError, got %v", err)
	}
}

func TestReadString_SemanticFailuresPropagateAsIssues(t *testing.T) {
	text := `flows:
  greet:
    steps:
      - id: start
        action: utter_greet
        next: nowhere
`
	_, err := flowscribe.DefaultReader().ReadString(context.Background(), text)
	iss, ok := flow.AsIssues(err)
	if !ok {
		t.Fatalf("expected flow.Issues, got %v", err)
	}
	if len(iss) != 1 || iss[0].Code != flow.CodeUnknownLink {
		t.Fatalf("unexpected issues: %+v", iss)
	}
}

func TestReadString_SkipValidationStillParses(t *testing.T) {
	text := "flows:\n  greet:\n    steps: \"not-a-list\"\n"
	flows, err := flowscribe.DefaultReader().ReadString(context.Background(), text, flowscribe.ReadOpt{SkipValidation: true})
	if err != nil {
		t.Fatalf("ReadString: %v", err)
	}
	if flows.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", flows.Len())
	}
	if steps := flows.Flows()[0].Steps(); steps != nil {
		t.Fatalf("Steps() = %+v, want nil for a malformed steps entry", steps)
	}
}

func TestReadString_MissingFlowsKeyWithSkipYieldsEmptyList(t *testing.T) {
	flows, err := flowscribe.DefaultReader().ReadString(context.Background(), "other: 1\n", flowscribe.ReadOpt{SkipValidation: true})
	if err != nil {
		t.Fatalf("ReadString: %v", err)
	}
	if flows.Len() != 0 {
		t.Fatalf("Len() = %d, want 0", flows.Len())
	}
}

func TestReadFile_AnnotatesSchemaErrorsWithFilename(t *testing.T) {
	name := filepath.Join(t.TempDir(), "broken.yml")
	if err := os.WriteFile(name, []byte("flows:\n  greet:\n    steps: \"not-a-list\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := flowscribe.DefaultReader().ReadFile(context.Background(), name)
	var sch *flowscribe.SchemaError
	if !errors.As(err, &sch) {
		t.Fatalf("expected *SchemaError, got %v", err)
	}
	if sch.Filename != name {
		t.Fatalf("Filename = %q, want %q", sch.Filename, name)
	}
	if !strings.Contains(sch.Error(), name) {
		t.Fatalf("Error() = %q, want it to cite the file", sch.Error())
	}
}

func TestReadFile_AnnotatesSyntaxErrorsWithFilename(t *testing.T) {
	name := filepath.Join(t.TempDir(), "broken.yml")
	if err := os.WriteFile(name, []byte("flows: [unclosed"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := flowscribe.DefaultReader().ReadFile(context.Background(), name)
	var syn *flowscribe.SyntaxError
	if !errors.As(err, &syn) {
		t.Fatalf("expected *SyntaxError, got %v", err)
	}
	if syn.Filename != name {
		t.Fatalf("Filename = %q, want %q", syn.Filename, name)
	}
}

func TestReadFile_WrapsSemanticFailures(t *testing.T) {
	name := filepath.Join(t.TempDir(), "flows.yml")
	text := `flows:
  greet:
    steps:
      - id: start
        action: utter_greet
        next: nowhere
`
	if err := os.WriteFile(name, []byte(text), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := flowscribe.DefaultReader().ReadFile(context.Background(), name)
	var re *flowscribe.ReadError
	if !errors.As(err, &re) {
		t.Fatalf("expected *ReadError, got %v", err)
	}
	if re.Filename != name {
		t.Fatalf("Filename = %q, want %q", re.Filename, name)
	}
	if _, ok := flow.AsIssues(re.Err); !ok {
		t.Fatalf("expected the semantic issues as cause, got %v", re.Err)
	}
}

func TestReadFile_IOErrorsPropagateUnmodified(t *testing.T) {
	_, err := flowscribe.DefaultReader().ReadFile(context.Background(), filepath.Join(t.TempDir(), "absent.yml"))
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("expected fs.ErrNotExist, got %v", err)
	}
}

func TestFlowsFromString_DedentsSnippets(t *testing.T) {
	flows, err := flowscribe.FlowsFromString(`
        flows:
          greet:
            steps:
              - action: utter_greet
    `)
	if err != nil {
		t.Fatalf("FlowsFromString: %v", err)
	}
	if flows.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", flows.Len())
	}
}
