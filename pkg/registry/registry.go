// pkg/registry/registry.go
package registry

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
)

var activityIDPattern = regexp.MustCompile(`^[a-z]+\.[a-z]+\.[a-z]+$`)

func LoadRegistry(path string) (*ActivityRegistry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

func Parse(data []byte) (*ActivityRegistry, error) {
	var reg ActivityRegistry
	if err := json.Unmarshal(data, &reg); err != nil {
		return nil, fmt.Errorf("decode activity registry: %w", err)
	}
	if err := reg.Validate(); err != nil {
		return nil, err
	}
	return &reg, nil
}

// Validate checks ids follow domain.subdomain.action and task types are unique.
func (r *ActivityRegistry) Validate() error {
	seen := make(map[string]string, len(r.Activities))
	for _, a := range r.Activities {
		if !activityIDPattern.MatchString(a.ID) {
			return fmt.Errorf("activity %q: id must follow format domain.subdomain.action", a.ID)
		}
		if a.TaskType == "" {
			return fmt.Errorf("activity %q: taskType is required", a.ID)
		}
		if other, dup := seen[a.TaskType]; dup {
			return fmt.Errorf("task type %q registered by both %s and %s", a.TaskType, other, a.ID)
		}
		seen[a.TaskType] = a.ID
	}
	return nil
}

func (r *ActivityRegistry) Find(taskType string) (*Activity, bool) {
	for i := range r.Activities {
		if r.Activities[i].TaskType == taskType {
			return &r.Activities[i], true
		}
	}
	return nil, false
}

// Save writes the registry as indented JSON, creating the directory if needed.
func (r *ActivityRegistry) Save(path string) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("encode activity registry: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create registry directory: %w", err)
	}
	return os.WriteFile(path, append(data, '\n'), 0o644)
}
