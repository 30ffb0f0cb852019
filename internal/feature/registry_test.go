package feature

import (
	"sync"
	"testing"
)

func TestEnableUnknownFeature(t *testing.T) {
	r := NewRegistry()

	err := r.Enable("bogus")
	if err == nil {
		t.Fatal("Enable should fail for unknown feature")
	}
	if _, ok := err.(*UnknownFeatureError); !ok {
		t.Errorf("expected UnknownFeatureError, got %T", err)
	}
	if err.Error() != "unknown feature: bogus" {
		t.Errorf("unexpected error message: %s", err.Error())
	}
}

func TestDisableUnknownFeature(t *testing.T) {
	r := NewRegistry()

	if err := r.Disable("bogus"); err == nil {
		t.Fatal("Disable should fail for unknown feature")
	}
}

func TestEnabledWalksParentChain(t *testing.T) {
	r := NewRegistry()

	// aws_helpers alone is inert without vault
	if err := r.Enable("aws_helpers"); err != nil {
		t.Fatal(err)
	}
	if r.Enabled("aws_helpers") {
		t.Error("aws_helpers should not be effective without vault")
	}
	if !r.LocallyEnabled("aws_helpers") {
		t.Error("aws_helpers local flag should be set")
	}

	if err := r.Enable("vault"); err != nil {
		t.Fatal(err)
	}
	if !r.Enabled("aws_helpers") {
		t.Error("aws_helpers should be effective once vault is enabled")
	}

	// Disabling the parent masks the child again
	if err := r.Disable("vault"); err != nil {
		t.Fatal(err)
	}
	if r.Enabled("aws_helpers") {
		t.Error("aws_helpers should be masked after vault is disabled")
	}
}

func TestEnabledMultiLevelChain(t *testing.T) {
	r := NewRegistry()

	if err := r.Enable("prompt"); err != nil {
		t.Fatal(err)
	}
	if r.Enabled("prompt") {
		t.Error("prompt should not be effective without shell")
	}
	if err := r.Enable("shell"); err != nil {
		t.Fatal(err)
	}
	if !r.Enabled("prompt") {
		t.Error("prompt should be effective with shell enabled")
	}
}

func TestEnabledUnknownFeature(t *testing.T) {
	r := NewRegistry()
	if r.Enabled("bogus") {
		t.Error("unknown feature should report disabled")
	}
}

func TestReset(t *testing.T) {
	r := NewRegistry()

	if err := r.ApplyPreset("full"); err != nil {
		t.Fatal(err)
	}
	r.Reset()

	for _, name := range Names() {
		if r.Enabled(name) || r.LocallyEnabled(name) {
			t.Errorf("%s should be disabled after Reset", name)
		}
	}
}

func TestApplyPresetAtomicOnUnknownFeature(t *testing.T) {
	r := NewRegistry()
	if err := r.Enable("shell"); err != nil {
		t.Fatal(err)
	}
	if err := r.Enable("vault"); err != nil {
		t.Fatal(err)
	}
	before := r.EnabledMap()

	// Sneak a broken preset in via the private table, restoring afterwards.
	presets = append(presets, Preset{Name: "broken", Features: []string{"shell", "no_such_feature"}})
	defer func() { presets = presets[:len(presets)-1] }()

	err := r.ApplyPreset("broken")
	if err == nil {
		t.Fatal("ApplyPreset should fail when preset names an unknown feature")
	}
	if _, ok := err.(*UnknownFeatureError); !ok {
		t.Errorf("expected UnknownFeatureError, got %T", err)
	}

	after := r.EnabledMap()
	if len(after) != len(before) {
		t.Fatalf("registry state changed on failed preset: before=%v after=%v", before, after)
	}
	for k := range before {
		if !after[k] {
			t.Errorf("feature %s lost on failed preset apply", k)
		}
	}
}

func TestSetEnabledMapDropsUnknownNames(t *testing.T) {
	r := NewRegistry()
	r.SetEnabledMap(map[string]bool{"shell": true, "stale_feature": true, "vault": false})

	if !r.Enabled("shell") {
		t.Error("shell should be enabled from persisted state")
	}
	if r.LocallyEnabled("stale_feature") || r.LocallyEnabled("vault") {
		t.Error("stale and false entries should be dropped")
	}
}

func TestConcurrentReadsDuringWrites(t *testing.T) {
	r := NewRegistry()
	if err := r.ApplyPreset("developer"); err != nil {
		t.Fatal(err)
	}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 200; j++ {
				r.Enabled("aws_helpers")
				r.LocallyEnabled("shell")
			}
		}()
	}
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				_ = r.Enable("telemetry")
				_ = r.Disable("telemetry")
			}
		}()
	}
	wg.Wait()
}

func TestCatalogValidates(t *testing.T) {
	if err := Validate(); err != nil {
		t.Errorf("catalog has a dangling parent: %v", err)
	}
}
