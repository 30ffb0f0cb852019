// Package config handles blackdot's on-disk configuration surface: the
// declarative hook document, persisted feature state, and engine log
// rotation. It is the external "config store" collaborator of the
// extension core; the engine itself never writes state.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/blackdot-sh/blackdot/internal/constants"
)

// BaseDir returns the blackdot root, honoring BLACKDOT_DIR and defaulting
// to ~/.blackdot.
func BaseDir() (string, error) {
	if dir := os.Getenv(constants.DirEnvVar); dir != "" {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(home, constants.HomeDirName), nil
}

// candidateDocumentPaths returns possible hook document locations in
// priority order. The first existing file wins; YAML is preferred over
// JSON for the same basename.
func candidateDocumentPaths(baseDir string) []string {
	hooksDir := constants.HooksDir(baseDir)
	return []string{
		filepath.Join(hooksDir, "hooks.yml"),
		filepath.Join(hooksDir, "hooks.yaml"),
		filepath.Join(hooksDir, "hooks.json"),
	}
}

// FindDocumentPath returns the first existing hook document under baseDir,
// or empty string when none exists.
func FindDocumentPath(baseDir string) string {
	for _, p := range candidateDocumentPaths(baseDir) {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}
