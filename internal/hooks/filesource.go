package hooks

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
)

// defaultOrdinal is assigned to files without a numeric prefix so they sort
// between early (10-) and late (90-) entries.
const defaultOrdinal = 50

// ordinalPrefix matches a leading numeric prefix like "10-", "050_" or "9.".
var ordinalPrefix = regexp.MustCompile(`^(\d+)[-_.]`)

// FileSource discovers executable hook entries under <root>/<point>/. The
// filename's numeric prefix becomes the sort ordinal and the remainder the
// entry name, so "10-fix-perms" runs before "50-ssh-add". Non-executable
// files are skipped with a warning; a missing point directory contributes
// zero entries.
type FileSource struct {
	root   string
	logger *slog.Logger
}

// NewFileSource creates a FileSource rooted at the hook-point directory
// tree (typically $BLACKDOT_DIR/hooks).
func NewFileSource(root string, logger *slog.Logger) *FileSource {
	if logger == nil {
		logger = slog.Default()
	}
	return &FileSource{root: root, logger: logger}
}

// Root returns the directory tree this source scans.
func (s *FileSource) Root() string {
	return s.root
}

// Kind implements Source.
func (s *FileSource) Kind() SourceKind {
	return FileKind
}

// PointDir returns the directory scanned for a given point.
func (s *FileSource) PointDir(point Point) string {
	return filepath.Join(s.root, string(point))
}

// List implements Source. Entries are rediscovered on every call.
func (s *FileSource) List(point Point) ([]Entry, error) {
	dir := s.PointDir(point)
	dirents, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}

	var entries []Entry
	for _, de := range dirents {
		if de.IsDir() {
			continue
		}
		info, err := de.Info()
		if err != nil {
			s.logger.Warn("skipping unreadable hook file", "point", point, "file", de.Name(), "error", err)
			continue
		}
		if info.Mode()&0o111 == 0 {
			s.logger.Warn("skipping non-executable hook file", "point", point, "file", de.Name())
			continue
		}

		name, ordinal := splitOrdinal(de.Name())
		entries = append(entries, Entry{
			Point:   point,
			Name:    name,
			Ordinal: ordinal,
			Source:  FileKind,
			Path:    filepath.Join(dir, de.Name()),
			Enabled: true,
		})
	}
	return entries, nil
}

// splitOrdinal derives the sort key and entry name from a filename. The
// ordinal is computed once at discovery time; ties fall back to
// lexicographic name comparison during resolution.
func splitOrdinal(filename string) (name string, ordinal int) {
	m := ordinalPrefix.FindStringSubmatch(filename)
	if m == nil {
		return filename, defaultOrdinal
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return filename, defaultOrdinal
	}
	return filename[len(m[0]):], n
}
