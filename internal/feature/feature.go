// Package feature implements the hierarchical capability toggles that gate
// blackdot functionality, including hook entries. A feature may declare a
// parent; it is only effectively active when its whole parent chain is
// enabled. Enabled state is persisted separately (see internal/config).
package feature

// Feature describes one named capability in the static catalog.
type Feature struct {
	Name        string
	Parent      string // empty for top-level features
	Description string
}

// catalog is the static feature graph. Parent references must name another
// catalog entry; a dangling parent is a configuration error surfaced by
// Validate, not a crash.
var catalog = []Feature{
	{Name: "shell", Description: "Core shell configuration and zsh.d loading"},
	{Name: "prompt", Parent: "shell", Description: "Prompt rendering hooks"},
	{Name: "completions", Parent: "shell", Description: "Shell completion setup"},
	{Name: "config_layers", Description: "Layered machine/user config merging"},
	{Name: "modern_cli", Description: "Modern CLI replacements (eza, bat, fd)"},
	{Name: "workspace_symlink", Description: "Workspace directory symlink management"},
	{Name: "vault", Description: "Secret backend integration"},
	{Name: "aws_helpers", Parent: "vault", Description: "AWS credential helpers"},
	{Name: "ssh_keys", Parent: "vault", Description: "SSH key restore and agent loading"},
	{Name: "git_hooks", Description: "Repository git hook installation"},
	{Name: "claude_integration", Description: "Claude Code workspace integration"},
	{Name: "telemetry", Description: "Anonymous usage metrics"},
}

// All returns the feature catalog in declaration order.
func All() []Feature {
	out := make([]Feature, len(catalog))
	copy(out, catalog)
	return out
}

// Get returns the catalog entry for name.
func Get(name string) (Feature, bool) {
	for _, f := range catalog {
		if f.Name == name {
			return f, true
		}
	}
	return Feature{}, false
}

// Validate checks the catalog's parent references. A dangling parent means
// the catalog itself is broken and every child of it would report inactive.
func Validate() error {
	for _, f := range catalog {
		if f.Parent == "" {
			continue
		}
		if _, ok := Get(f.Parent); !ok {
			return &UnknownFeatureError{Name: f.Parent}
		}
	}
	return nil
}

// Names returns all feature names in declaration order.
func Names() []string {
	names := make([]string, 0, len(catalog))
	for _, f := range catalog {
		names = append(names, f.Name)
	}
	return names
}
