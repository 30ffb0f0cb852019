package feature

import "sync"

// Registry tracks which features are locally enabled. Reads happen on every
// hook resolution, writes only on explicit enable/disable/preset commands,
// so a read/write lock around the state map is all the synchronization
// the engine needs.
type Registry struct {
	mu      sync.RWMutex
	enabled map[string]bool
}

// NewRegistry creates a registry with every feature disabled.
func NewRegistry() *Registry {
	return &Registry{enabled: make(map[string]bool)}
}

// Enable turns on a feature's local flag.
func (r *Registry) Enable(name string) error {
	if _, ok := Get(name); !ok {
		return &UnknownFeatureError{Name: name}
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.enabled[name] = true
	return nil
}

// Disable turns off a feature's local flag.
func (r *Registry) Disable(name string) error {
	if _, ok := Get(name); !ok {
		return &UnknownFeatureError{Name: name}
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.enabled, name)
	return nil
}

// Enabled reports effective activation: the feature's own flag plus every
// ancestor in its parent chain. A missing or disabled ancestor yields false
// regardless of the feature's local flag. Unknown names report false.
func (r *Registry) Enabled(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for name != "" {
		f, ok := Get(name)
		if !ok || !r.enabled[name] {
			return false
		}
		name = f.Parent
	}
	return true
}

// LocallyEnabled reports the feature's own flag without walking the parent
// chain. Used by the CLI to distinguish "off" from "masked by parent".
func (r *Registry) LocallyEnabled(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.enabled[name]
}

// Reset disables every feature.
func (r *Registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.enabled = make(map[string]bool)
}

// ApplyPreset atomically replaces the enabled set with the preset's
// features. If the preset is unknown or names a feature outside the
// catalog, the registry state is left untouched.
func (r *Registry) ApplyPreset(name string) error {
	preset, ok := GetPreset(name)
	if !ok {
		return &PresetNotFoundError{Name: name}
	}
	for _, f := range preset.Features {
		if _, ok := Get(f); !ok {
			return &UnknownFeatureError{Name: f}
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	next := make(map[string]bool, len(preset.Features))
	for _, f := range preset.Features {
		next[f] = true
	}
	r.enabled = next
	return nil
}

// EnabledMap returns a snapshot of the locally enabled set, for persistence.
func (r *Registry) EnabledMap() map[string]bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make(map[string]bool, len(r.enabled))
	for k, v := range r.enabled {
		if v {
			out[k] = true
		}
	}
	return out
}

// SetEnabledMap replaces the enabled set from persisted state. Names not in
// the catalog are dropped silently so stale config cannot wedge the registry.
func (r *Registry) SetEnabledMap(state map[string]bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	next := make(map[string]bool, len(state))
	for k, v := range state {
		if _, ok := Get(k); ok && v {
			next[k] = true
		}
	}
	r.enabled = next
}
