package hooks

// Source produces point-scoped hook entries from one origin. List is called
// on every resolution so entries are always as fresh as their origin; a
// Source must not cache across calls. List errors are isolated by the
// registry (the source contributes zero entries for that point).
type Source interface {
	Kind() SourceKind
	List(point Point) ([]Entry, error)
}
