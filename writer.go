package flowscribe

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/flowscribe/flowscribe/flow"
)

// Dump serializes flows to YAML. Each flow body is keyed by its id under
// the top-level flows mapping and the redundant id field inside the body is
// dropped. No validation runs on write; round-tripping a validly-read
// document is lossless up to key ordering.
func Dump(flows []flow.Flow) (string, error) {
	dump := make(map[string]any, len(flows))
	for _, f := range flows {
		body := f.AsMapping()
		delete(body, flow.KeyID)
		dump[f.ID] = body
	}
	out, err := yaml.Marshal(map[string]any{KeyFlows: dump})
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// DumpFile writes flows as YAML to the given file.
func DumpFile(flows []flow.Flow, name string) error {
	text, err := Dump(flows)
	if err != nil {
		return err
	}
	return os.WriteFile(name, []byte(text), 0o644)
}
