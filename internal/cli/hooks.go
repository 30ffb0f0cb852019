package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/urfave/cli/v3"

	"github.com/blackdot-sh/blackdot/internal/constants"
	"github.com/blackdot-sh/blackdot/internal/hooks"
)

// NewHooksCmd creates the hooks parent command.
func NewHooksCmd() *cli.Command {
	return &cli.Command{
		Name:  "hooks",
		Usage: "List, run, test, and manage lifecycle hooks",
		Commands: []*cli.Command{
			newHooksListCmd(),
			newHooksRunCmd(),
			newHooksTestCmd(),
			newHooksAddCmd(),
			newHooksRemoveCmd(),
		},
	}
}

func parsePoint(arg string) (hooks.Point, error) {
	p := hooks.Point(arg)
	if !p.Valid() {
		var names []string
		for _, known := range hooks.AllPoints() {
			names = append(names, known.String())
		}
		return "", fmt.Errorf("invalid hook point '%s'.\nKnown points: %s", arg, strings.Join(names, ", "))
	}
	return p, nil
}

func newHooksListCmd() *cli.Command {
	return &cli.Command{
		Name:  "list",
		Usage: "List resolved hook entries",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "point", Aliases: []string{"p"}, Usage: "Only show entries for this point"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			rt, err := newRuntime(false)
			if err != nil {
				return err
			}

			points := hooks.AllPoints()
			if arg := cmd.String("point"); arg != "" {
				p, err := parsePoint(arg)
				if err != nil {
					return err
				}
				points = []hooks.Point{p}
			}

			cyan := color.New(color.FgCyan).SprintFunc()
			dim := color.New(color.Faint).SprintFunc()
			empty := true
			for _, point := range points {
				entries, err := rt.registry.Resolve(point)
				if err != nil {
					return err
				}
				if len(entries) == 0 {
					continue
				}
				empty = false
				fmt.Printf("%s:\n", cyan(point))
				for _, e := range entries {
					fmt.Printf("  %3d  %-20s %s %s\n", e.Ordinal, e.Name, dim(string(e.Source)), e.ActionLabel())
				}
				fmt.Println()
			}
			if empty {
				fmt.Println("No hook entries registered.")
			}
			return nil
		},
	}
}

func runFlags() []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{Name: "fail-fast", Usage: "Abort remaining entries after the first hard failure"},
		&cli.BoolFlag{Name: "verbose", Aliases: []string{"v"}, Usage: "Stream entry output while running"},
		&cli.DurationFlag{Name: "timeout", Usage: "Per-entry timeout (overrides document settings)"},
	}
}

// applyRunFlags overlays CLI flags on the document's defaults.
func applyRunFlags(cmd *cli.Command, opts hooks.Options) hooks.Options {
	if cmd.IsSet("fail-fast") {
		opts.FailFast = cmd.Bool("fail-fast")
	}
	if cmd.Bool("verbose") {
		opts.Verbose = true
	}
	if cmd.IsSet("timeout") {
		opts.Timeout = cmd.Duration("timeout")
	}
	return opts
}

func newHooksRunCmd() *cli.Command {
	return &cli.Command{
		Name:      "run",
		Usage:     "Run all entries for a hook point",
		ArgsUsage: "[point]",
		Flags:     runFlags(),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			args := cmd.Args().Slice()
			if len(args) != 1 {
				return fmt.Errorf("exactly one argument required: [point]")
			}
			point, err := parsePoint(args[0])
			if err != nil {
				return err
			}

			rt, err := newRuntime(cmd.Bool("verbose"))
			if err != nil {
				return err
			}
			opts := applyRunFlags(cmd, rt.options())

			report, err := rt.executor.Run(ctx, point, opts)
			if err != nil {
				return err
			}
			printReport(report)
			if report.Failed() {
				return cli.Exit("", 1)
			}
			return nil
		},
	}
}

func newHooksTestCmd() *cli.Command {
	return &cli.Command{
		Name:      "test",
		Usage:     "Preview what a hook point would run, without executing anything",
		ArgsUsage: "[point]",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			args := cmd.Args().Slice()
			if len(args) != 1 {
				return fmt.Errorf("exactly one argument required: [point]")
			}
			point, err := parsePoint(args[0])
			if err != nil {
				return err
			}

			rt, err := newRuntime(false)
			if err != nil {
				return err
			}
			opts := rt.options()
			opts.DryRun = true

			report, err := rt.executor.Run(ctx, point, opts)
			if err != nil {
				return err
			}
			if len(report.Results) == 0 {
				fmt.Printf("Nothing registered for %s.\n", point)
				return nil
			}
			fmt.Printf("Would run for %s:\n", point)
			for i, res := range report.Results {
				fmt.Printf("  %d. %s\n", i+1, res.Name)
			}
			return nil
		},
	}
}

func newHooksAddCmd() *cli.Command {
	return &cli.Command{
		Name:      "add",
		Usage:     "Create a file-based hook entry",
		ArgsUsage: "[point] [name]",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "command", Aliases: []string{"c"}, Usage: "Shell command the generated script runs"},
			&cli.IntFlag{Name: "ordinal", Aliases: []string{"n"}, Value: 50, Usage: "Numeric prefix controlling execution order"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			args := cmd.Args().Slice()
			if len(args) != 2 {
				return fmt.Errorf("exactly two arguments required: [point] [name]")
			}
			point, err := parsePoint(args[0])
			if err != nil {
				return err
			}
			name := args[1]
			command := cmd.String("command")
			if command == "" {
				return fmt.Errorf("--command is required")
			}

			rt, err := newRuntime(false)
			if err != nil {
				return err
			}
			dir := filepath.Join(constants.HooksDir(rt.baseDir), point.String())
			if err := os.MkdirAll(dir, 0o750); err != nil {
				return fmt.Errorf("failed to create hook directory: %w", err)
			}

			path := filepath.Join(dir, fmt.Sprintf("%02d-%s", cmd.Int("ordinal"), name))
			if _, err := os.Stat(path); err == nil {
				return fmt.Errorf("hook '%s' already exists at %s", name, path)
			}
			script := fmt.Sprintf("#!/usr/bin/env bash\nset -euo pipefail\n\n%s\n", command)
			if err := os.WriteFile(path, []byte(script), 0o750); err != nil { // #nosec G306 - hook scripts must be executable
				return fmt.Errorf("failed to write hook script: %w", err)
			}
			fmt.Printf("Created %s\n", path)
			return nil
		},
	}
}

func newHooksRemoveCmd() *cli.Command {
	return &cli.Command{
		Name:      "remove",
		Usage:     "Remove a file-based hook entry",
		ArgsUsage: "[point] [name]",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			args := cmd.Args().Slice()
			if len(args) != 2 {
				return fmt.Errorf("exactly two arguments required: [point] [name]")
			}
			point, err := parsePoint(args[0])
			if err != nil {
				return err
			}
			name := args[1]

			rt, err := newRuntime(false)
			if err != nil {
				return err
			}
			dir := filepath.Join(constants.HooksDir(rt.baseDir), point.String())
			dirents, err := os.ReadDir(dir)
			if err != nil {
				return fmt.Errorf("no hooks directory for %s", point)
			}
			for _, de := range dirents {
				base := de.Name()
				// Match with or without the numeric prefix.
				if base == name || strings.TrimLeft(strings.TrimLeft(base, "0123456789"), "-_.") == name {
					path := filepath.Join(dir, base)
					if err := os.Remove(path); err != nil {
						return err
					}
					fmt.Printf("Removed %s\n", path)
					return nil
				}
			}
			return fmt.Errorf("hook '%s' not found for %s", name, point)
		},
	}
}

// printReport renders a run report with colored outcomes.
func printReport(report *hooks.RunReport) {
	green := color.New(color.FgGreen).SprintFunc()
	red := color.New(color.FgRed).SprintFunc()
	yellow := color.New(color.FgYellow).SprintFunc()
	dim := color.New(color.Faint).SprintFunc()

	for _, res := range report.Results {
		var mark string
		switch res.Outcome {
		case hooks.OutcomeSuccess:
			mark = green("✓")
		case hooks.OutcomeFailure:
			if res.FailOK {
				mark = yellow("⚠")
			} else {
				mark = red("✗")
			}
		case hooks.OutcomeTimedOut:
			mark = red("⏱")
		case hooks.OutcomeSkipped:
			mark = dim("-")
		}
		fmt.Printf("  %s %-20s %s %s\n", mark, res.Name, string(res.Outcome), dim(res.Duration.Round(time.Millisecond).String()))
		if res.Err != nil && res.Outcome != hooks.OutcomeSkipped {
			fmt.Printf("      %s\n", dim(res.Err.Error()))
		}
	}
	if report.Aborted {
		fmt.Printf("  %s run aborted before completion\n", red("!"))
	}
}
