package feature

import (
	"testing"
)

func TestGetPreset(t *testing.T) {
	tests := []string{"minimal", "developer", "claude", "full"}

	for _, name := range tests {
		t.Run(name, func(t *testing.T) {
			preset, ok := GetPreset(name)
			if !ok {
				t.Errorf("preset '%s' should exist", name)
				return
			}
			if preset.Name != name {
				t.Errorf("expected Name='%s', got '%s'", name, preset.Name)
			}
			if preset.Description == "" {
				t.Error("preset should have description")
			}
			if len(preset.Features) == 0 {
				t.Error("preset should have features")
			}
		})
	}
}

func TestGetPresetUnknown(t *testing.T) {
	_, ok := GetPreset("nonexistent")
	if ok {
		t.Error("GetPreset should return false for unknown preset")
	}
}

func TestAllPresets(t *testing.T) {
	all := AllPresets()

	if len(all) != 4 {
		t.Errorf("expected 4 presets, got %d", len(all))
	}

	expected := []string{"minimal", "developer", "claude", "full"}
	for i, preset := range all {
		if preset.Name != expected[i] {
			t.Errorf("expected preset[%d]='%s', got '%s'", i, expected[i], preset.Name)
		}
	}
}

func TestPresetNames(t *testing.T) {
	names := PresetNames()

	expected := []string{"minimal", "developer", "claude", "full"}
	if len(names) != len(expected) {
		t.Fatalf("expected %d names, got %d", len(expected), len(names))
	}
	for i, name := range names {
		if name != expected[i] {
			t.Errorf("expected names[%d]='%s', got '%s'", i, expected[i], name)
		}
	}
}

func TestApplyPresetMinimal(t *testing.T) {
	r := NewRegistry()

	if err := r.ApplyPreset("minimal"); err != nil {
		t.Fatalf("ApplyPreset failed: %v", err)
	}

	if !r.Enabled("shell") {
		t.Error("shell should be enabled in minimal preset")
	}
	if !r.Enabled("config_layers") {
		t.Error("config_layers should be enabled in minimal preset")
	}
	if r.Enabled("vault") {
		t.Error("vault should NOT be enabled in minimal preset")
	}
}

func TestApplyPresetDeveloper(t *testing.T) {
	r := NewRegistry()

	if err := r.ApplyPreset("developer"); err != nil {
		t.Fatalf("ApplyPreset failed: %v", err)
	}

	expected := []string{"vault", "aws_helpers", "git_hooks", "modern_cli"}
	for _, f := range expected {
		if !r.Enabled(f) {
			t.Errorf("%s should be enabled in developer preset", f)
		}
	}
}

func TestApplyPresetClaude(t *testing.T) {
	r := NewRegistry()

	if err := r.ApplyPreset("claude"); err != nil {
		t.Fatalf("ApplyPreset failed: %v", err)
	}

	expected := []string{"workspace_symlink", "claude_integration", "vault"}
	for _, f := range expected {
		if !r.Enabled(f) {
			t.Errorf("%s should be enabled in claude preset", f)
		}
	}
}

func TestApplyPresetFull(t *testing.T) {
	r := NewRegistry()

	if err := r.ApplyPreset("full"); err != nil {
		t.Fatalf("ApplyPreset failed: %v", err)
	}

	fullPreset, _ := GetPreset("full")
	for _, f := range fullPreset.Features {
		if !r.Enabled(f) {
			t.Errorf("%s should be enabled in full preset", f)
		}
	}
}

func TestApplyPresetUnknown(t *testing.T) {
	r := NewRegistry()

	err := r.ApplyPreset("nonexistent")
	if err == nil {
		t.Error("ApplyPreset should fail for unknown preset")
	}

	if _, ok := err.(*PresetNotFoundError); !ok {
		t.Errorf("expected PresetNotFoundError, got %T", err)
	}
}

func TestPresetNotFoundError(t *testing.T) {
	err := &PresetNotFoundError{Name: "test"}

	if err.Error() != "unknown preset: test" {
		t.Errorf("unexpected error message: %s", err.Error())
	}
}

func TestPresetResetsState(t *testing.T) {
	r := NewRegistry()

	if err := r.Enable("vault"); err != nil {
		t.Fatal(err)
	}
	if !r.Enabled("vault") {
		t.Fatal("vault should be enabled")
	}

	if err := r.ApplyPreset("minimal"); err != nil {
		t.Fatal(err)
	}

	if r.Enabled("vault") {
		t.Error("vault should be disabled after applying minimal preset")
	}
}

func TestAllPresetsIncludeShell(t *testing.T) {
	for _, preset := range AllPresets() {
		found := false
		for _, f := range preset.Features {
			if f == "shell" {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("preset '%s' should include 'shell'", preset.Name)
		}
	}
}

func TestDeveloperPresetHasMoreThanMinimal(t *testing.T) {
	minimal, _ := GetPreset("minimal")
	developer, _ := GetPreset("developer")

	if len(developer.Features) <= len(minimal.Features) {
		t.Error("developer preset should have more features than minimal")
	}
}

func TestFullPresetHasMoreThanDeveloper(t *testing.T) {
	developer, _ := GetPreset("developer")
	full, _ := GetPreset("full")

	if len(full.Features) <= len(developer.Features) {
		t.Error("full preset should have more features than developer")
	}
}

func TestPresetFeaturesExistInCatalog(t *testing.T) {
	for _, preset := range AllPresets() {
		for _, f := range preset.Features {
			if _, ok := Get(f); !ok {
				t.Errorf("preset '%s' names unknown feature '%s'", preset.Name, f)
			}
		}
	}
}
