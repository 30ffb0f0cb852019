package cli

import (
	"github.com/urfave/cli/v3"

	"github.com/blackdot-sh/blackdot/internal/constants"
)

// Version is injected at build time via ldflags.
var Version = "dev"

// NewApp constructs the root blackdot command.
func NewApp() *cli.Command {
	return &cli.Command{
		Name:    constants.BinaryName,
		Usage:   "Dotfiles management with feature-gated lifecycle hooks",
		Version: Version,
		Commands: []*cli.Command{
			NewHooksCmd(),
			NewFeaturesCmd(),
			NewPresetCmd(),
			NewDoctorCmd(),
			NewClaudeHookCmd(),
		},
	}
}
