package cli

import (
	"context"
	"fmt"

	"github.com/brads3290/cchooks"
	"github.com/urfave/cli/v3"

	"github.com/blackdot-sh/blackdot/internal/hooks"
)

// NewClaudeHookCmd creates the claude-hook command. Claude Code invokes it
// with an event on stdin; the command maps PreToolUse/PostToolUse onto the
// engine's claude_* points. The whole bridge is gated on the
// claude_integration feature.
func NewClaudeHookCmd() *cli.Command {
	return &cli.Command{
		Name:  "claude-hook",
		Usage: "Bridge Claude Code hook events to blackdot hook points (called by Claude Code)",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			rt, err := newRuntime(false)
			if err != nil {
				return err
			}
			if !rt.features.Enabled("claude_integration") {
				// Nothing to do; approve everything so the editor keeps working.
				return nil
			}

			runner := &cchooks.Runner{
				PreToolUse: func(ctx context.Context, event *cchooks.PreToolUseEvent) cchooks.PreToolUseResponseInterface {
					report, err := rt.executor.Run(ctx, hooks.ClaudePreToolUse, rt.options())
					if err != nil {
						return cchooks.Approve()
					}
					if report.Failed() {
						return cchooks.Block(blockReason(report, event.ToolName))
					}
					return cchooks.Approve()
				},
				PostToolUse: func(ctx context.Context, event *cchooks.PostToolUseEvent) cchooks.PostToolUseResponseInterface {
					report, err := rt.executor.Run(ctx, hooks.ClaudePostToolUse, rt.options())
					if err != nil {
						return cchooks.Allow()
					}
					if report.Failed() {
						return cchooks.PostBlock(blockReason(report, event.ToolName))
					}
					return cchooks.Allow()
				},
			}
			runner.Run()
			return nil
		},
	}
}

// blockReason summarizes a failed run for the agent-facing block message.
func blockReason(report *hooks.RunReport, toolName string) string {
	failures := report.HardFailures()
	if len(failures) == 0 {
		return fmt.Sprintf("blackdot hooks failed for tool %s", toolName)
	}
	first := failures[0]
	return fmt.Sprintf("blackdot hook '%s' %s for tool %s: %s",
		first.Name, first.Outcome, toolName, first.Output)
}
