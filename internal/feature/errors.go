package feature

import (
	"fmt"
)

// UnknownFeatureError indicates a name not present in the catalog.
type UnknownFeatureError struct {
	Name string
}

func (e *UnknownFeatureError) Error() string {
	return fmt.Sprintf("unknown feature: %s", e.Name)
}

// PresetNotFoundError indicates an unknown preset name.
type PresetNotFoundError struct {
	Name string
}

func (e *PresetNotFoundError) Error() string {
	return fmt.Sprintf("unknown preset: %s", e.Name)
}
