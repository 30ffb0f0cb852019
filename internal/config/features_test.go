package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/blackdot-sh/blackdot/internal/constants"
)

func TestFeatureStateRoundTrip(t *testing.T) {
	base := t.TempDir()

	state := map[string]bool{"shell": true, "vault": true}
	if err := SaveFeatureState(base, state); err != nil {
		t.Fatalf("SaveFeatureState failed: %v", err)
	}

	loaded, err := LoadFeatureState(base)
	if err != nil {
		t.Fatalf("LoadFeatureState failed: %v", err)
	}
	if len(loaded) != 2 || !loaded["shell"] || !loaded["vault"] {
		t.Errorf("unexpected state: %v", loaded)
	}
}

func TestLoadFeatureStateMissing(t *testing.T) {
	loaded, err := LoadFeatureState(t.TempDir())
	if err != nil {
		t.Fatalf("missing state file should not error: %v", err)
	}
	if len(loaded) != 0 {
		t.Errorf("expected empty state, got %v", loaded)
	}
}

func TestLoadFeatureStateCorrupt(t *testing.T) {
	base := t.TempDir()
	path := constants.FeaturesConfigPath(base)
	if err := os.WriteFile(path, []byte("{broken"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFeatureState(base); err == nil {
		t.Error("corrupt state file should surface an error")
	}
}

func TestBaseDirEnvOverride(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(constants.DirEnvVar, dir)

	got, err := BaseDir()
	if err != nil {
		t.Fatal(err)
	}
	if got != dir {
		t.Errorf("expected %s, got %s", dir, got)
	}
}

func TestBaseDirDefault(t *testing.T) {
	t.Setenv(constants.DirEnvVar, "")
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home dir in test environment")
	}

	got, err := BaseDir()
	if err != nil {
		t.Fatal(err)
	}
	if got != filepath.Join(home, constants.HomeDirName) {
		t.Errorf("unexpected default base dir: %s", got)
	}
}
