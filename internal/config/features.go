package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/blackdot-sh/blackdot/internal/constants"
)

// featureState is the persisted shape of the feature registry's locally
// enabled set.
type featureState struct {
	Enabled map[string]bool `json:"enabled"`
}

// LoadFeatureState reads the persisted enabled map. A missing file yields
// an empty map.
func LoadFeatureState(baseDir string) (map[string]bool, error) {
	path := constants.FeaturesConfigPath(baseDir)
	data, err := os.ReadFile(path) // #nosec G304 - controlled config path
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return map[string]bool{}, nil
		}
		return nil, fmt.Errorf("failed to read feature state: %w", err)
	}

	var state featureState
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if state.Enabled == nil {
		state.Enabled = map[string]bool{}
	}
	return state.Enabled, nil
}

// SaveFeatureState writes the enabled map, creating the blackdot dir if
// needed.
func SaveFeatureState(baseDir string, enabled map[string]bool) error {
	path := constants.FeaturesConfigPath(baseDir)
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := json.MarshalIndent(featureState{Enabled: enabled}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal feature state: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write feature state: %w", err)
	}
	return nil
}
