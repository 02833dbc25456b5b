package funcschema

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Parameter describes one parameter of a callable function.
type Parameter struct {
	Name        string `yaml:"name" json:"name"`
	Type        string `yaml:"type" json:"type"`
	Description string `yaml:"description" json:"description"`
	Required    bool   `yaml:"required" json:"required"`
}

// Function describes one function an orchestrator may invoke.
type Function struct {
	Name        string      `yaml:"name" json:"name"`
	Description string      `yaml:"description" json:"description"`
	Parameters  []Parameter `yaml:"parameters,omitempty" json:"parameters,omitempty"`
}

// Schema is the action-group function schema served to orchestrator
// operators. It documents the callable surface; dispatch does not read it.
type Schema struct {
	Functions []Function `yaml:"functions" json:"functions"`
}

// Load reads the function schema from a YAML file.
func Load(path string) (*Schema, error) {
	path = os.ExpandEnv(path)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var schema Schema
	if err := yaml.Unmarshal(data, &schema); err != nil {
		return nil, err
	}

	return &schema, nil
}

// Function returns the named function definition, or nil when absent.
func (s *Schema) Function(name string) *Function {
	for i := range s.Functions {
		if s.Functions[i].Name == name {
			return &s.Functions[i]
		}
	}
	return nil
}
