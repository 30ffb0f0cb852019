package constants

import "path/filepath"

// Application constants - single source of truth for naming throughout the codebase
const (
	// Core application identity
	AppName    = "Blackdot"
	BinaryName = "blackdot"

	// Module and repository
	ModulePath    = "github.com/blackdot-sh/blackdot"
	RepositoryURL = "https://github.com/blackdot-sh/blackdot"

	// Environment
	DirEnvVar = "BLACKDOT_DIR"

	// Configuration files
	HooksFileName    = "hooks.yml"
	FeaturesFileName = "features.json"

	// Log files
	DefaultLogFile = "blackdot.log"

	// Directory paths
	HomeDirName = ".blackdot"
	HooksSubDir = "hooks"
	LogsSubDir  = "logs"
)

// HooksDir returns the hook-point directory root under baseDir.
func HooksDir(baseDir string) string {
	return filepath.Join(baseDir, HooksSubDir)
}

// HooksConfigPath returns the declarative hook document path under baseDir.
func HooksConfigPath(baseDir string) string {
	return filepath.Join(baseDir, HooksSubDir, HooksFileName)
}

// FeaturesConfigPath returns the persisted feature state path under baseDir.
func FeaturesConfigPath(baseDir string) string {
	return filepath.Join(baseDir, FeaturesFileName)
}

// LogPath returns the rotating engine log path under baseDir.
func LogPath(baseDir string) string {
	return filepath.Join(baseDir, LogsSubDir, DefaultLogFile)
}
