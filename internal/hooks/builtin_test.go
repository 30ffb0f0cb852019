package hooks

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/blackdot-sh/blackdot/internal/feature"
)

func TestRegisterBuiltinsGatedByFeature(t *testing.T) {
	features := feature.NewRegistry()
	funcs := NewFuncSource()
	if err := RegisterBuiltins(funcs, t.TempDir()); err != nil {
		t.Fatal(err)
	}
	reg := NewRegistry(features, true, nil, funcs)

	entries, err := reg.Resolve(PostVaultPull)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Fatalf("builtins should be gated off by default, got %d entries", len(entries))
	}

	if err := features.Enable("vault"); err != nil {
		t.Fatal(err)
	}
	if err := features.Enable("ssh_keys"); err != nil {
		t.Fatal(err)
	}
	entries, err = reg.Resolve(PostVaultPull)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 || entries[0].Name != "ssh-key-perms" {
		t.Fatalf("expected only ssh-key-perms, got %+v", entries)
	}
}

func TestFixSSHKeyPerms(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	sshDir := filepath.Join(home, ".ssh")
	if err := os.MkdirAll(sshDir, 0o755); err != nil {
		t.Fatal(err)
	}
	key := filepath.Join(sshDir, "id_ed25519")
	pub := filepath.Join(sshDir, "id_ed25519.pub")
	if err := os.WriteFile(key, []byte("private"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(pub, []byte("public"), 0o666); err != nil {
		t.Fatal(err)
	}

	if err := fixSSHKeyPerms(context.Background()); err != nil {
		t.Fatal(err)
	}

	if info, _ := os.Stat(sshDir); info.Mode().Perm() != 0o700 {
		t.Errorf("ssh dir mode = %o, want 700", info.Mode().Perm())
	}
	if info, _ := os.Stat(key); info.Mode().Perm() != 0o600 {
		t.Errorf("private key mode = %o, want 600", info.Mode().Perm())
	}
	if info, _ := os.Stat(pub); info.Mode().Perm() != 0o644 {
		t.Errorf("public key mode = %o, want 644", info.Mode().Perm())
	}
}

func TestFixSSHKeyPermsMissingDir(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	if err := fixSSHKeyPerms(context.Background()); err != nil {
		t.Errorf("missing ~/.ssh should be a no-op, got %v", err)
	}
}

func TestAuditCallbackAppends(t *testing.T) {
	base := t.TempDir()
	cb := auditCallback(base, "vault_pull")
	if err := cb(context.Background()); err != nil {
		t.Fatal(err)
	}
	if err := cb(context.Background()); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(filepath.Join(base, "logs", "audit.jsonl"))
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 audit lines, got %d", len(lines))
	}
	var rec auditRecord
	if err := json.Unmarshal([]byte(lines[0]), &rec); err != nil {
		t.Fatal(err)
	}
	if rec.Event != "vault_pull" || rec.Timestamp == "" {
		t.Errorf("unexpected audit record: %+v", rec)
	}
}
