package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/urfave/cli/v3"
	"golang.org/x/sync/errgroup"

	"github.com/blackdot-sh/blackdot/internal/constants"
	"github.com/blackdot-sh/blackdot/internal/feature"
	"github.com/blackdot-sh/blackdot/internal/hooks"
)

// NewDoctorCmd creates the doctor command: it validates every hook-point
// directory and then runs the doctor_check point.
func NewDoctorCmd() *cli.Command {
	return &cli.Command{
		Name:  "doctor",
		Usage: "Validate hook configuration and run registered health checks",
		Flags: runFlags(),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			rt, err := newRuntime(cmd.Bool("verbose"))
			if err != nil {
				return err
			}

			green := color.New(color.FgGreen).SprintFunc()
			red := color.New(color.FgRed).SprintFunc()
			yellow := color.New(color.FgYellow).SprintFunc()
			cyan := color.New(color.FgCyan).SprintFunc()

			fmt.Printf("%s Validating hook directories...\n", cyan("→"))
			problems := validatePointDirs(ctx, rt)
			if err := feature.Validate(); err != nil {
				problems = append(problems, fmt.Sprintf("feature catalog: %v", err))
			}
			if len(problems) == 0 {
				fmt.Printf("  %s all hook directories look good\n", green("✓"))
			}
			for _, p := range problems {
				fmt.Printf("  %s %s\n", yellow("⚠"), p)
			}

			fmt.Printf("%s Running doctor checks...\n", cyan("→"))
			opts := applyRunFlags(cmd, rt.options())
			report, err := rt.executor.Run(ctx, hooks.DoctorCheck, opts)
			if err != nil {
				return err
			}
			if len(report.Results) == 0 {
				fmt.Println("  no doctor hooks registered")
			} else {
				printReport(report)
			}

			if report.Failed() {
				return cli.Exit(red("doctor found failing checks"), 1)
			}
			return nil
		},
	}
}

// validatePointDirs resolves every point concurrently and flags stray
// directories that do not match any known hook point. Resolution is
// read-only, so fanning out across points is safe.
func validatePointDirs(ctx context.Context, rt *runtime) []string {
	var problems []string

	hooksDir := constants.HooksDir(rt.baseDir)
	if dirents, err := os.ReadDir(hooksDir); err == nil {
		for _, de := range dirents {
			if !de.IsDir() {
				continue
			}
			if !hooks.Point(de.Name()).Valid() {
				problems = append(problems,
					fmt.Sprintf("%s is not a known hook point", filepath.Join(hooksDir, de.Name())))
			}
		}
	}

	results := make([][]string, len(hooks.AllPoints()))
	g, _ := errgroup.WithContext(ctx)
	for i, point := range hooks.AllPoints() {
		g.Go(func() error {
			if _, err := rt.registry.Resolve(point); err != nil {
				results[i] = []string{fmt.Sprintf("%s: %v", point, err)}
			}
			return nil
		})
	}
	_ = g.Wait()
	for _, r := range results {
		problems = append(problems, r...)
	}
	return problems
}
