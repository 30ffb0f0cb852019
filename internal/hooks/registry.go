package hooks

import (
	"log/slog"
	"sort"

	"github.com/blackdot-sh/blackdot/internal/feature"
)

// sourcePrecedence orders kinds for name-collision resolution. File wins
// over in-process registrations, which win over the declarative document:
// the filesystem is the most visible management surface.
var sourcePrecedence = map[SourceKind]int{
	FileKind:   0,
	FuncKind:   1,
	ConfigKind: 2,
}

// Registry merges the three sources' entries for a point into one final
// execution list: precedence on name collisions, feature gating, and a
// deterministic (ordinal, name) sort. The list is recomputed on every call
// since files, registrations, and config can change between runs.
type Registry struct {
	features *feature.Registry
	sources  []Source
	enabled  bool
	logger   *slog.Logger
}

// NewRegistry creates a hook registry. The enabled flag is the global
// hooks toggle; when false every Resolve returns an empty list. Sources
// must be passed in precedence-independent order; precedence is derived
// from each source's kind.
func NewRegistry(features *feature.Registry, enabled bool, logger *slog.Logger, sources ...Source) *Registry {
	if logger == nil {
		logger = slog.Default()
	}
	return &Registry{
		features: features,
		sources:  sources,
		enabled:  enabled,
		logger:   logger,
	}
}

// Resolve returns the final, ordered execution list for a point.
func (r *Registry) Resolve(point Point) ([]Entry, error) {
	if !point.Valid() {
		return nil, &InvalidHookPointError{Point: point}
	}
	if !r.enabled {
		return nil, nil
	}

	// Collect in precedence order so earlier entries win name collisions.
	collected := make([]Entry, 0, 8)
	for _, src := range r.sortedSources() {
		entries, err := src.List(point)
		if err != nil {
			// A broken source contributes nothing; the others still load.
			r.logger.Warn("hook source failed, skipping",
				"point", point, "source", src.Kind(), "error", err)
			continue
		}
		collected = append(collected, entries...)
	}

	seen := make(map[string]bool, len(collected))
	final := make([]Entry, 0, len(collected))
	for _, e := range collected {
		if seen[e.Name] {
			// Duplicate names across sources are overrides, not accumulation.
			continue
		}
		seen[e.Name] = true
		if !e.Enabled {
			continue
		}
		if e.Feature != "" && !r.features.Enabled(e.Feature) {
			continue
		}
		final = append(final, e)
	}

	sort.SliceStable(final, func(i, j int) bool {
		if final[i].Ordinal != final[j].Ordinal {
			return final[i].Ordinal < final[j].Ordinal
		}
		return final[i].Name < final[j].Name
	})
	return final, nil
}

func (r *Registry) sortedSources() []Source {
	out := make([]Source, len(r.sources))
	copy(out, r.sources)
	sort.SliceStable(out, func(i, j int) bool {
		return sourcePrecedence[out[i].Kind()] < sourcePrecedence[out[j].Kind()]
	})
	return out
}
