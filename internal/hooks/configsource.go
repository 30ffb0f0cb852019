package hooks

import (
	"time"

	"github.com/blackdot-sh/blackdot/internal/config"
)

// ConfigSource adapts the declarative hook document into hook entries.
// Parse failures are isolated per point at load time (config.Document
// records them in Problems); List surfaces the point's problem as an
// error so the registry can log it and move on.
type ConfigSource struct {
	doc *config.Document
}

// NewConfigSource wraps a parsed hook document. A nil document behaves as
// an empty one.
func NewConfigSource(doc *config.Document) *ConfigSource {
	if doc == nil {
		doc = config.EmptyDocument()
	}
	return &ConfigSource{doc: doc}
}

// Kind implements Source.
func (s *ConfigSource) Kind() SourceKind {
	return ConfigKind
}

// Settings returns the document's defaults block.
func (s *ConfigSource) Settings() config.Settings {
	return s.doc.Settings
}

// List implements Source. The ordinal comes from an explicit priority
// field when present, otherwise from list position.
func (s *ConfigSource) List(point Point) ([]Entry, error) {
	if err, ok := s.doc.Problems[string(point)]; ok {
		return nil, err
	}

	specs := s.doc.Hooks[string(point)]
	entries := make([]Entry, 0, len(specs))
	for i, spec := range specs {
		ordinal := i
		if spec.Priority != nil {
			ordinal = *spec.Priority
		}
		entries = append(entries, Entry{
			Point:   point,
			Name:    spec.Name,
			Ordinal: ordinal,
			Source:  ConfigKind,
			Run:     spec.Command,
			Enabled: spec.IsEnabled(),
			FailOK:  spec.FailOK,
			Feature: spec.Feature,
			Timeout: time.Duration(spec.Timeout) * time.Second,
		})
	}
	return entries, nil
}
