// Package fleet provides functions for loading the list of VMs to
// reconcile from YAML fleet files.
package fleet

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// File is the on-disk fleet file format:
//
//	vms:
//	  - app-01
//	  - app-02
type File struct {
	VMs []string `yaml:"vms"`
}

// LoadFromFile loads an ordered list of VM names from a YAML fleet file.
func LoadFromFile(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", path, err)
	}
	return LoadFromYAML(data)
}

// LoadFromYAML loads an ordered list of VM names from YAML bytes.
// Names are trimmed; empty entries and duplicates are rejected because a
// duplicate name would be reconciled twice in one batch.
func LoadFromYAML(data []byte) ([]string, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to unmarshal YAML: %w", err)
	}

	if len(f.VMs) == 0 {
		return nil, fmt.Errorf("fleet file lists no VMs")
	}

	seen := make(map[string]struct{}, len(f.VMs))
	names := make([]string, 0, len(f.VMs))
	for i, raw := range f.VMs {
		name := strings.TrimSpace(raw)
		if name == "" {
			return nil, fmt.Errorf("fleet file entry %d is empty", i)
		}
		if _, dup := seen[name]; dup {
			return nil, fmt.Errorf("fleet file lists %q more than once", name)
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}
	return names, nil
}
