// Package cli implements the blackdot command-line interface using
// urfave/cli. Commands are thin wrappers over the extension core in
// internal/hooks and internal/feature.
package cli

import (
	"fmt"
	"log/slog"

	"github.com/blackdot-sh/blackdot/internal/config"
	"github.com/blackdot-sh/blackdot/internal/constants"
	"github.com/blackdot-sh/blackdot/internal/feature"
	"github.com/blackdot-sh/blackdot/internal/hooks"
)

// runtime bundles the engine pieces a command needs: config, feature
// state, the resolution registry, and the executor. Each command builds a
// fresh runtime so tests can run against independent instances.
type runtime struct {
	baseDir  string
	settings config.Settings
	features *feature.Registry
	funcs    *hooks.FuncSource
	registry *hooks.Registry
	executor *hooks.Executor
	logger   *slog.Logger
}

// newRuntime loads configuration and wires the engine. The global hooks
// toggle comes from the document's settings block, injected at
// construction rather than read from ambient state.
func newRuntime(verbose bool) (*runtime, error) {
	baseDir, err := config.BaseDir()
	if err != nil {
		return nil, err
	}

	doc, err := config.LoadDocument(baseDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load hook document: %w", err)
	}

	logger := config.SetupLogger(baseDir, config.DefaultLogRotationConfig(), verbose || doc.Settings.Verbose)

	features := feature.NewRegistry()
	state, err := config.LoadFeatureState(baseDir)
	if err != nil {
		return nil, err
	}
	features.SetEnabledMap(state)

	funcs := hooks.NewFuncSource()
	if err := hooks.RegisterBuiltins(funcs, baseDir); err != nil {
		return nil, err
	}
	registry := hooks.NewRegistry(features, !doc.Settings.Disabled, logger,
		hooks.NewFileSource(constants.HooksDir(baseDir), logger),
		funcs,
		hooks.NewConfigSource(doc),
	)

	return &runtime{
		baseDir:  baseDir,
		settings: doc.Settings,
		features: features,
		funcs:    funcs,
		registry: registry,
		executor: hooks.NewExecutor(registry, logger),
		logger:   logger,
	}, nil
}

// options builds executor options from the document defaults plus any CLI
// overrides already applied by the caller.
func (r *runtime) options() hooks.Options {
	return hooks.OptionsFromSettings(r.settings)
}

// saveFeatures persists the registry's enabled set.
func (r *runtime) saveFeatures() error {
	return config.SaveFeatureState(r.baseDir, r.features.EnabledMap())
}
