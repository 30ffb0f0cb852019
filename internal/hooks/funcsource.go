package hooks

import (
	"fmt"
	"sync"
)

// FuncSource holds hook entries registered in-process by trigger callers
// (vault pull, setup wizard phases, doctor). Registrations live for the
// process lifetime only; nothing is persisted.
type FuncSource struct {
	mu      sync.RWMutex
	entries map[Point][]Entry
	seq     map[Point]int
}

// NewFuncSource creates an empty in-process source.
func NewFuncSource() *FuncSource {
	return &FuncSource{
		entries: make(map[Point][]Entry),
		seq:     make(map[Point]int),
	}
}

// Kind implements Source.
func (s *FuncSource) Kind() SourceKind {
	return FuncKind
}

// Register binds a callback to a point under the given name and ordinal.
// Names must be unique within a point.
func (s *FuncSource) Register(point Point, name string, ordinal int, fn Callback) error {
	if !point.Valid() {
		return &InvalidHookPointError{Point: point}
	}
	if fn == nil {
		return fmt.Errorf("hook '%s' for %s has nil callback", name, point)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, e := range s.entries[point] {
		if e.Name == name {
			return fmt.Errorf("hook '%s' already registered for %s", name, point)
		}
	}
	s.entries[point] = append(s.entries[point], Entry{
		Point:    point,
		Name:     name,
		Ordinal:  ordinal,
		Source:   FuncKind,
		Callback: fn,
		Enabled:  true,
	})
	s.seq[point]++
	return nil
}

// RegisterNext is Register with the ordinal taken from registration order.
func (s *FuncSource) RegisterNext(point Point, name string, fn Callback) error {
	s.mu.RLock()
	next := s.seq[point]
	s.mu.RUnlock()
	return s.Register(point, name, next, fn)
}

// RegisterGated is Register for a callback owned by a feature; the entry is
// excluded from resolution while the feature is not effectively active.
func (s *FuncSource) RegisterGated(point Point, name string, ordinal int, feature string, fn Callback) error {
	if err := s.Register(point, name, ordinal, fn); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	list := s.entries[point]
	list[len(list)-1].Feature = feature
	return nil
}

// Unregister removes a named registration. Removing an unknown name is a
// no-op.
func (s *FuncSource) Unregister(point Point, name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	list := s.entries[point]
	for i, e := range list {
		if e.Name == name {
			s.entries[point] = append(list[:i:i], list[i+1:]...)
			return
		}
	}
}

// List implements Source.
func (s *FuncSource) List(point Point) ([]Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Entry, len(s.entries[point]))
	copy(out, s.entries[point])
	return out, nil
}
