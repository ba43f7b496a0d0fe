package flowscribe

import (
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// IsLikelyYAMLFile reports whether the path carries a YAML extension.
func IsLikelyYAMLFile(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yml", ".yaml":
		return true
	}
	return false
}

// IsFlowsFile reports whether the file looks like a flows document: a YAML
// file whose top-level mapping contains the flows key. Unreadable or
// malformed files are not flows files.
func IsFlowsFile(name string) bool {
	if !IsLikelyYAMLFile(name) {
		return false
	}
	data, err := os.ReadFile(name)
	if err != nil {
		return false
	}
	var doc map[string]any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return false
	}
	_, ok := doc[KeyFlows]
	return ok
}
