// Package model defines the data structures shared by the installer.
package model

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Identity names one version of a package.
type Identity struct {
	Name    string
	Version string
}

// String returns the identity as name@version.
func (i Identity) String() string {
	return i.Name + "@" + i.Version
}

// Entry is a single key/value pair of an OrderedMap.
type Entry struct {
	Key   string `validate:"required"`
	Value string
}

// OrderedMap is a string mapping that keeps the declaration order of the
// manifest it was decoded from.
type OrderedMap []Entry

// Get returns the value stored for key.
func (o OrderedMap) Get(key string) (string, bool) {
	for _, e := range o {
		if e.Key == key {
			return e.Value, true
		}
	}

	return "", false
}

// Keys returns the keys in declaration order.
func (o OrderedMap) Keys() []string {
	keys := make([]string, 0, len(o))
	for _, e := range o {
		keys = append(keys, e.Key)
	}

	return keys
}

// UnmarshalJSON decodes a JSON object of strings, keeping key order.
func (o *OrderedMap) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return err
	}

	if tok == nil {
		*o = nil
		return nil
	}

	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("expected an object, got %v", tok)
	}

	var out OrderedMap

	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}

		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("unexpected key %v", keyTok)
		}

		var value string
		if err := dec.Decode(&value); err != nil {
			return fmt.Errorf("value of %q: %w", key, err)
		}

		out = out.set(key, value)
	}

	if _, err := dec.Token(); err != nil {
		return err
	}

	*o = out

	return nil
}

// UnmarshalYAML decodes a YAML mapping of strings, keeping key order.
func (o *OrderedMap) UnmarshalYAML(node *yaml.Node) error {
	if node.Tag == "!!null" {
		*o = nil
		return nil
	}

	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: expected a mapping", node.Line)
	}

	var out OrderedMap

	for i := 0; i+1 < len(node.Content); i += 2 {
		keyNode, valueNode := node.Content[i], node.Content[i+1]

		var value string
		if err := valueNode.Decode(&value); err != nil {
			return fmt.Errorf("value of %q: %w", keyNode.Value, err)
		}

		out = out.set(keyNode.Value, value)
	}

	*o = out

	return nil
}

// set replaces an existing key in place; duplicated keys keep their first position.
func (o OrderedMap) set(key, value string) OrderedMap {
	for i := range o {
		if o[i].Key == key {
			o[i].Value = value
			return o
		}
	}

	return append(o, Entry{Key: key, Value: value})
}

// Dist holds the distribution settings of a manifest.
type Dist struct {
	IncludeFiles []string `json:"include_files" yaml:"include_files"`
	ExcludeFiles []string `json:"exclude_files" yaml:"exclude_files"`
}

// Manifest is a parsed package descriptor.
type Manifest struct {
	Name               string     `json:"name" yaml:"name" validate:"required,pkgname"`
	Version            string     `json:"version" yaml:"version" validate:"required,semver"`
	Description        string     `json:"description,omitempty" yaml:"description,omitempty"`
	Dependencies       OrderedMap `json:"dependencies" yaml:"dependencies" validate:"dive"`
	PythonDependencies OrderedMap `json:"python_dependencies" yaml:"python_dependencies" validate:"dive"`
	Scripts            OrderedMap `json:"scripts" yaml:"scripts" validate:"dive"`
	Bin                OrderedMap `json:"bin" yaml:"bin" validate:"dive"`
	Postinstall        string     `json:"postinstall,omitempty" yaml:"postinstall,omitempty" validate:"omitempty,relpath"`
	Dist               Dist       `json:"dist" yaml:"dist"`

	// Directory is the directory the manifest was read from.
	Directory string `json:"-" yaml:"-"`
	// Filename is the base name of the manifest file inside Directory.
	Filename string `json:"-" yaml:"-"`
}

// Identity returns the name and version of the package.
func (m *Manifest) Identity() Identity {
	return Identity{Name: m.Name, Version: m.Version}
}

// Identifier returns name@version.
func (m *Manifest) Identifier() string {
	return m.Identity().String()
}
