package hooks

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/blackdot-sh/blackdot/internal/constants"
)

// RegisterBuiltins installs the hook callbacks blackdot itself ships with.
// Each is gated on the feature that owns the behavior, so a disabled
// feature silently drops its builtins from resolution.
func RegisterBuiltins(funcs *FuncSource, baseDir string) error {
	type builtin struct {
		point   Point
		name    string
		ordinal int
		feature string
		fn      Callback
	}
	builtins := []builtin{
		{PostVaultPull, "ssh-key-perms", 10, "ssh_keys", fixSSHKeyPerms},
		{PostVaultPull, "vault-audit", 90, "telemetry", auditCallback(baseDir, "vault_pull")},
		{PostVaultPush, "vault-audit", 90, "telemetry", auditCallback(baseDir, "vault_push")},
		{DoctorCheck, "modern-cli-tools", 50, "modern_cli", checkModernCLITools},
	}
	for _, b := range builtins {
		if err := funcs.RegisterGated(b.point, b.name, b.ordinal, b.feature, b.fn); err != nil {
			return fmt.Errorf("failed to register builtin '%s': %w", b.name, err)
		}
	}
	return nil
}

// fixSSHKeyPerms tightens permissions on material pulled into ~/.ssh.
// Vault backends do not preserve modes, so keys land world-readable.
func fixSSHKeyPerms(ctx context.Context) error {
	home, err := os.UserHomeDir()
	if err != nil {
		return err
	}
	sshDir := filepath.Join(home, ".ssh")
	dirents, err := os.ReadDir(sshDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	if err := os.Chmod(sshDir, 0o700); err != nil {
		return err
	}
	for _, de := range dirents {
		if err := ctx.Err(); err != nil {
			return err
		}
		if de.IsDir() {
			continue
		}
		mode := os.FileMode(0o600)
		if strings.HasSuffix(de.Name(), ".pub") {
			mode = 0o644
		}
		if err := os.Chmod(filepath.Join(sshDir, de.Name()), mode); err != nil {
			return err
		}
	}
	return nil
}

type auditRecord struct {
	Timestamp string `json:"timestamp"`
	Event     string `json:"event"`
}

// auditCallback appends a JSON line per vault operation. Telemetry is best
// effort; write failures never fail the run.
func auditCallback(baseDir, event string) Callback {
	return func(ctx context.Context) error {
		logDir := filepath.Join(baseDir, constants.LogsSubDir)
		if err := os.MkdirAll(logDir, 0o750); err != nil {
			return nil
		}
		rec := auditRecord{
			Timestamp: time.Now().Format(time.RFC3339),
			Event:     event,
		}
		data, err := json.Marshal(rec)
		if err != nil {
			return nil
		}
		path := filepath.Join(logDir, "audit.jsonl")
		f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600) // #nosec G304 - path derived from base dir
		if err != nil {
			return nil
		}
		defer func() { _ = f.Close() }()
		_, _ = f.Write(append(data, '\n'))
		return nil
	}
}

// checkModernCLITools reports which of the aliased CLI replacements are
// missing from PATH, so shell aliases pointing at them do not break.
func checkModernCLITools(ctx context.Context) error {
	var missing []string
	for _, tool := range []string{"eza", "bat", "fzf", "rg", "zoxide"} {
		if _, err := exec.LookPath(tool); err != nil {
			missing = append(missing, tool)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing tools: %s", strings.Join(missing, ", "))
	}
	return nil
}
