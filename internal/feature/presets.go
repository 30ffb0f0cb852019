package feature

// Preset is a named set of features enabled together.
type Preset struct {
	Name        string
	Description string
	Features    []string
}

// presets in display order. Every preset includes "shell"; each tier is a
// strict superset of the previous one.
var presets = []Preset{
	{
		Name:        "minimal",
		Description: "Shell basics only, no secret management",
		Features:    []string{"shell", "prompt", "completions", "config_layers"},
	},
	{
		Name:        "developer",
		Description: "Shell plus vault, git hooks, and modern CLI tooling",
		Features: []string{
			"shell", "prompt", "completions", "config_layers",
			"modern_cli", "vault", "aws_helpers", "ssh_keys", "git_hooks",
		},
	},
	{
		Name:        "claude",
		Description: "Developer workflow with Claude Code workspace integration",
		Features: []string{
			"shell", "prompt", "completions", "config_layers",
			"modern_cli", "vault", "ssh_keys",
			"workspace_symlink", "claude_integration",
		},
	},
	{
		Name:        "full",
		Description: "Everything, including telemetry",
		Features: []string{
			"shell", "prompt", "completions", "config_layers",
			"modern_cli", "workspace_symlink",
			"vault", "aws_helpers", "ssh_keys", "git_hooks",
			"claude_integration", "telemetry",
		},
	},
}

// GetPreset returns the preset with the given name.
func GetPreset(name string) (Preset, bool) {
	for _, p := range presets {
		if p.Name == name {
			return p, true
		}
	}
	return Preset{}, false
}

// AllPresets returns every preset in display order.
func AllPresets() []Preset {
	out := make([]Preset, len(presets))
	copy(out, presets)
	return out
}

// PresetNames returns the preset names in display order.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for _, p := range presets {
		names = append(names, p.Name)
	}
	return names
}
