// Package hooks implements blackdot's extension core: discovery, ordering,
// feature gating, and execution of user-supplied hook entries at named
// lifecycle points. Entries come from three sources (point directories,
// in-process registrations, and the declarative hook document) merged under
// a fixed precedence, then run strictly in order with per-entry timeouts
// and configurable failure policy.
package hooks

import "fmt"

// Point identifies a lifecycle moment at which hook entries may run. The
// vocabulary is fixed; anything else is rejected at the Resolve boundary.
type Point string

const (
	PreVaultPull      Point = "pre_vault_pull"
	PostVaultPull     Point = "post_vault_pull"
	PreVaultPush      Point = "pre_vault_push"
	PostVaultPush     Point = "post_vault_push"
	PreSetupPhase     Point = "pre_setup_phase"
	PostSetupPhase    Point = "post_setup_phase"
	DoctorCheck       Point = "doctor_check"
	ShellInit         Point = "shell_init"
	ShellPrompt       Point = "shell_prompt"
	DirChange         Point = "dir_change"
	ClaudePreToolUse  Point = "claude_pre_tool_use"
	ClaudePostToolUse Point = "claude_post_tool_use"
)

var allPoints = []Point{
	PreVaultPull,
	PostVaultPull,
	PreVaultPush,
	PostVaultPush,
	PreSetupPhase,
	PostSetupPhase,
	DoctorCheck,
	ShellInit,
	ShellPrompt,
	DirChange,
	ClaudePreToolUse,
	ClaudePostToolUse,
}

// AllPoints returns the full hook point vocabulary in a stable order.
func AllPoints() []Point {
	out := make([]Point, len(allPoints))
	copy(out, allPoints)
	return out
}

// Valid reports whether p is part of the fixed vocabulary.
func (p Point) Valid() bool {
	for _, known := range allPoints {
		if p == known {
			return true
		}
	}
	return false
}

func (p Point) String() string {
	return string(p)
}

// InvalidHookPointError indicates a point outside the fixed vocabulary.
type InvalidHookPointError struct {
	Point Point
}

func (e *InvalidHookPointError) Error() string {
	return fmt.Sprintf("invalid hook point: %s", e.Point)
}
