package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	yaml "gopkg.in/yaml.v3"
)

// DefaultTimeoutSeconds applies when the document settings omit a timeout.
const DefaultTimeoutSeconds = 30

// HookSpec is one declarative hook entry in the document.
type HookSpec struct {
	Name     string `yaml:"name" json:"name"`
	Command  string `yaml:"command" json:"command"`
	Enabled  *bool  `yaml:"enabled,omitempty" json:"enabled,omitempty"`
	FailOK   bool   `yaml:"fail_ok,omitempty" json:"fail_ok,omitempty"`
	Feature  string `yaml:"feature,omitempty" json:"feature,omitempty"`
	Priority *int   `yaml:"priority,omitempty" json:"priority,omitempty"`
	Timeout  int    `yaml:"timeout,omitempty" json:"timeout,omitempty"` // seconds
}

// IsEnabled reports the entry's enabled flag, defaulting to true when the
// document leaves it unset.
func (h HookSpec) IsEnabled() bool {
	return h.Enabled == nil || *h.Enabled
}

// Settings is the document's top-level defaults block, consumed by the
// executor when a caller does not override them.
type Settings struct {
	// Disabled is the global hooks kill switch: when true every point
	// resolves to an empty list.
	Disabled bool `yaml:"disabled,omitempty" json:"disabled,omitempty"`
	FailFast bool `yaml:"fail_fast,omitempty" json:"fail_fast,omitempty"`
	Verbose  bool `yaml:"verbose,omitempty" json:"verbose,omitempty"`
	Timeout  int  `yaml:"timeout,omitempty" json:"timeout,omitempty"` // seconds
}

// Normalize fills in defaults for unset values.
func (s Settings) Normalize() Settings {
	if s.Timeout <= 0 {
		s.Timeout = DefaultTimeoutSeconds
	}
	return s
}

// Document is the parsed declarative hook document. A malformed list for
// one point never prevents other points from loading: the broken point
// contributes zero entries and its error is recorded in Problems.
type Document struct {
	Settings Settings
	Hooks    map[string][]HookSpec
	Problems map[string]error
}

// EmptyDocument returns a document with defaults and no hooks, used when no
// file exists on disk.
func EmptyDocument() *Document {
	return &Document{
		Settings: Settings{}.Normalize(),
		Hooks:    map[string][]HookSpec{},
		Problems: map[string]error{},
	}
}

// LoadDocument reads and parses the hook document under baseDir. A missing
// document yields an empty one, not an error.
func LoadDocument(baseDir string) (*Document, error) {
	path := FindDocumentPath(baseDir)
	if path == "" {
		return EmptyDocument(), nil
	}
	return ParseDocumentFile(path)
}

// ParseDocumentFile decodes YAML or JSON based on extension.
func ParseDocumentFile(path string) (*Document, error) {
	data, err := os.ReadFile(path) // #nosec G304 - paths are restricted to the blackdot dir
	if err != nil {
		return nil, err
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yml", ".yaml":
		return parseYAMLDocument(data)
	case ".json":
		return parseJSONDocument(data)
	default:
		return nil, fmt.Errorf("unsupported hook document extension: %s", path)
	}
}

// parseYAMLDocument decodes the document in two phases so a broken point
// list is isolated: the hooks mapping is first captured as raw nodes, then
// each point's node is decoded independently.
func parseYAMLDocument(data []byte) (*Document, error) {
	var raw struct {
		Settings Settings             `yaml:"settings"`
		Hooks    map[string]yaml.Node `yaml:"hooks"`
	}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("invalid hook document: %w", err)
	}

	doc := &Document{
		Settings: raw.Settings.Normalize(),
		Hooks:    make(map[string][]HookSpec, len(raw.Hooks)),
		Problems: map[string]error{},
	}
	for point, node := range raw.Hooks {
		var specs []HookSpec
		if err := node.Decode(&specs); err != nil {
			doc.Problems[point] = err
			continue
		}
		if err := validateSpecs(point, specs); err != nil {
			doc.Problems[point] = err
			continue
		}
		doc.Hooks[point] = specs
	}
	return doc, nil
}

func parseJSONDocument(data []byte) (*Document, error) {
	var raw struct {
		Settings Settings                   `json:"settings"`
		Hooks    map[string]json.RawMessage `json:"hooks"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("invalid hook document: %w", err)
	}

	doc := &Document{
		Settings: raw.Settings.Normalize(),
		Hooks:    make(map[string][]HookSpec, len(raw.Hooks)),
		Problems: map[string]error{},
	}
	for point, msg := range raw.Hooks {
		var specs []HookSpec
		if err := json.Unmarshal(msg, &specs); err != nil {
			doc.Problems[point] = err
			continue
		}
		if err := validateSpecs(point, specs); err != nil {
			doc.Problems[point] = err
			continue
		}
		doc.Hooks[point] = specs
	}
	return doc, nil
}

// validateSpecs checks required fields for one point's entries.
func validateSpecs(point string, specs []HookSpec) error {
	seen := map[string]bool{}
	for i, s := range specs {
		if strings.TrimSpace(s.Name) == "" {
			return fmt.Errorf("point '%s' entry[%d] missing name", point, i)
		}
		if strings.TrimSpace(s.Command) == "" {
			return fmt.Errorf("point '%s' entry '%s' missing command", point, s.Name)
		}
		if seen[s.Name] {
			return fmt.Errorf("point '%s' has duplicate entry name '%s'", point, s.Name)
		}
		seen[s.Name] = true
	}
	return nil
}
