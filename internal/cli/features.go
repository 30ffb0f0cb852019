package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/urfave/cli/v3"

	"github.com/blackdot-sh/blackdot/internal/feature"
)

// NewFeaturesCmd creates the features parent command.
func NewFeaturesCmd() *cli.Command {
	return &cli.Command{
		Name:  "features",
		Usage: "Inspect and toggle feature gates",
		Commands: []*cli.Command{
			newFeaturesListCmd(),
			newFeaturesEnableCmd(),
			newFeaturesDisableCmd(),
		},
	}
}

func newFeaturesListCmd() *cli.Command {
	return &cli.Command{
		Name:  "list",
		Usage: "Show every feature with its local and effective state",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			rt, err := newRuntime(false)
			if err != nil {
				return err
			}

			green := color.New(color.FgGreen).SprintFunc()
			yellow := color.New(color.FgYellow).SprintFunc()
			dim := color.New(color.Faint).SprintFunc()

			for _, f := range feature.All() {
				var state string
				switch {
				case rt.features.Enabled(f.Name):
					state = green("active")
				case rt.features.LocallyEnabled(f.Name):
					// On locally but masked by a disabled ancestor.
					state = yellow(fmt.Sprintf("masked (needs %s)", f.Parent))
				default:
					state = dim("off")
				}
				indent := ""
				if f.Parent != "" {
					indent = "  "
				}
				fmt.Printf("  %s%-22s %-24s %s\n", indent, f.Name, state, dim(f.Description))
			}
			return nil
		},
	}
}

func newFeaturesEnableCmd() *cli.Command {
	return &cli.Command{
		Name:      "enable",
		Usage:     "Enable one or more features",
		ArgsUsage: "[name...]",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return toggleFeatures(cmd, true)
		},
	}
}

func newFeaturesDisableCmd() *cli.Command {
	return &cli.Command{
		Name:      "disable",
		Usage:     "Disable one or more features",
		ArgsUsage: "[name...]",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return toggleFeatures(cmd, false)
		},
	}
}

func toggleFeatures(cmd *cli.Command, enable bool) error {
	args := cmd.Args().Slice()
	if len(args) == 0 {
		return fmt.Errorf("at least one feature name required.\nKnown features: %s",
			strings.Join(feature.Names(), ", "))
	}

	rt, err := newRuntime(false)
	if err != nil {
		return err
	}
	for _, name := range args {
		if enable {
			err = rt.features.Enable(name)
		} else {
			err = rt.features.Disable(name)
		}
		if err != nil {
			return err
		}
	}
	if err := rt.saveFeatures(); err != nil {
		return err
	}

	verb := "Enabled"
	if !enable {
		verb = "Disabled"
	}
	fmt.Printf("%s: %s\n", verb, strings.Join(args, ", "))
	return nil
}

// NewPresetCmd creates the preset parent command.
func NewPresetCmd() *cli.Command {
	return &cli.Command{
		Name:  "preset",
		Usage: "List and apply feature presets",
		Commands: []*cli.Command{
			newPresetListCmd(),
			newPresetApplyCmd(),
		},
	}
}

func newPresetListCmd() *cli.Command {
	return &cli.Command{
		Name:  "list",
		Usage: "Show available presets",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			dim := color.New(color.Faint).SprintFunc()
			for _, p := range feature.AllPresets() {
				fmt.Printf("  %-12s %s\n", p.Name, dim(p.Description))
				fmt.Printf("  %s %s\n", strings.Repeat(" ", 12), dim(strings.Join(p.Features, ", ")))
			}
			return nil
		},
	}
}

func newPresetApplyCmd() *cli.Command {
	return &cli.Command{
		Name:      "apply",
		Usage:     "Atomically replace the enabled feature set with a preset",
		ArgsUsage: "[preset]",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			args := cmd.Args().Slice()
			if len(args) != 1 {
				return fmt.Errorf("exactly one argument required: [preset]\nAvailable presets: %s",
					strings.Join(feature.PresetNames(), ", "))
			}

			rt, err := newRuntime(false)
			if err != nil {
				return err
			}
			if err := rt.features.ApplyPreset(args[0]); err != nil {
				return err
			}
			if err := rt.saveFeatures(); err != nil {
				return err
			}
			fmt.Printf("Applied preset '%s'.\n", args[0])
			return nil
		},
	}
}
