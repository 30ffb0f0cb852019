package hooks

import (
	"context"
	"time"
)

// SourceKind identifies the origin of a hook entry. Precedence between
// kinds on a name collision is File > Func > Config.
type SourceKind string

const (
	FileKind   SourceKind = "file"
	FuncKind   SourceKind = "func"
	ConfigKind SourceKind = "config"
)

// Callback is an in-process hook action. Implementations must honor ctx:
// a deadline or cancellation on ctx is the forced-termination path.
type Callback func(ctx context.Context) error

// Entry is one registered action bound to a hook point. Exactly one of
// Path, Run, or Callback is set.
type Entry struct {
	Point   Point
	Name    string
	Ordinal int
	Source  SourceKind

	Path     string   // executable file discovered by a FileSource
	Run      string   // shell command string from the hook document
	Callback Callback // in-process registration

	Enabled bool
	FailOK  bool
	Feature string // owning feature; gated out when not effectively active

	// Timeout overrides the run-wide default when positive.
	Timeout time.Duration
}

// ActionLabel is a short human-readable description of what the entry runs,
// used when rendering reports and hook listings.
func (e Entry) ActionLabel() string {
	switch {
	case e.Path != "":
		return e.Path
	case e.Run != "":
		return e.Run
	case e.Callback != nil:
		return "<callback>"
	}
	return "<none>"
}
