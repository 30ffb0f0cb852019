package hooks

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/blackdot-sh/blackdot/internal/config"
)

func parseDoc(t *testing.T, content string) *config.Document {
	t.Helper()
	path := filepath.Join(t.TempDir(), "hooks.yml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	doc, err := config.ParseDocumentFile(path)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	return doc
}

func TestConfigSourceList(t *testing.T) {
	doc := parseDoc(t, `
settings:
  fail_fast: true
  timeout: 15
hooks:
  post_vault_pull:
    - name: fix-perms
      command: chmod 600 ~/.ssh/id_*
    - name: ssh-add
      command: ssh-add ~/.ssh/id_ed25519
      fail_ok: true
      feature: ssh_keys
      timeout: 5
`)
	src := NewConfigSource(doc)

	if got := src.Settings(); !got.FailFast || got.Timeout != 15 {
		t.Errorf("unexpected settings: %+v", got)
	}

	entries, err := src.List(PostVaultPull)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	// Ordinals default to list position.
	if entries[0].Name != "fix-perms" || entries[0].Ordinal != 0 {
		t.Errorf("unexpected first entry: %+v", entries[0])
	}
	if !entries[1].FailOK || entries[1].Feature != "ssh_keys" {
		t.Errorf("fail_ok/feature not carried: %+v", entries[1])
	}
	if entries[1].Timeout != 5*time.Second {
		t.Errorf("timeout override not carried: %v", entries[1].Timeout)
	}
}

func TestConfigSourceExplicitPriority(t *testing.T) {
	doc := parseDoc(t, `
hooks:
  shell_init:
    - name: late
      command: "true"
      priority: 90
    - name: early
      command: "true"
      priority: 10
`)
	entries, err := NewConfigSource(doc).List(ShellInit)
	if err != nil {
		t.Fatal(err)
	}
	if entries[0].Ordinal != 90 || entries[1].Ordinal != 10 {
		t.Errorf("priority field should win over list position: %+v", entries)
	}
}

func TestConfigSourceMalformedPointIsolated(t *testing.T) {
	doc := parseDoc(t, `
hooks:
  post_vault_pull:
    - name: ok
      command: "true"
  shell_init: "not a list"
`)
	src := NewConfigSource(doc)

	good, err := src.List(PostVaultPull)
	if err != nil || len(good) != 1 {
		t.Fatalf("healthy point should load: %v, %d entries", err, len(good))
	}

	if _, err := src.List(ShellInit); err == nil {
		t.Error("malformed point should surface its parse problem")
	}
}

func TestConfigSourceDisabledEntry(t *testing.T) {
	doc := parseDoc(t, `
hooks:
  shell_init:
    - name: off
      command: "true"
      enabled: false
    - name: on
      command: "true"
`)
	entries, err := NewConfigSource(doc).List(ShellInit)
	if err != nil {
		t.Fatal(err)
	}
	// The source reports both; filtering happens in the registry.
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].Enabled {
		t.Error("'off' should carry enabled=false")
	}
	if !entries[1].Enabled {
		t.Error("'on' should default to enabled")
	}
}

func TestConfigSourceNilDocument(t *testing.T) {
	src := NewConfigSource(nil)
	entries, err := src.List(ShellInit)
	if err != nil || len(entries) != 0 {
		t.Errorf("nil document should behave as empty: %v, %d", err, len(entries))
	}
}
