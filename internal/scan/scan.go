package scan

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"mediaorg/internal/logging"
	"mediaorg/internal/media"
)

// ErrRootUnreadable marks a walk that could not start.
var ErrRootUnreadable = errors.New("scan root unreadable")

// Options tune the walk.
type Options struct {
	// IgnoreHidden skips dot-prefixed files and directories below the root.
	IgnoreHidden bool
	// Exclude lists absolute directory paths whose subtrees are not visited.
	Exclude []string
	Logger  *slog.Logger
}

// Candidate is one accepted media file.
type Candidate struct {
	File media.File
	// RelDir is the parent directory relative to the root; "" for files
	// directly under the root.
	RelDir string
	Size   int64
}

// EntryError records an entry the walk could not read.
type EntryError struct {
	Path string
	Err  error
}

func (e EntryError) Error() string {
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

// Stats summarizes a walk.
type Stats struct {
	Accepted        int
	SkippedByFilter int
	SkippedHidden   int
	Errors          []EntryError
}

// Walk recursively enumerates root and returns accepted media files sorted by
// path. A symlinked root is followed; symlinks below it are not. Returned
// paths stay under root as given.
func Walk(root string, opts Options) ([]Candidate, Stats, error) {
	logger := logging.NewComponentLogger(opts.Logger, "scan")

	var (
		candidates []Candidate
		stats      Stats
	)

	root = filepath.Clean(root)
	walkRoot, err := resolveRoot(root)
	if err != nil {
		return nil, stats, fmt.Errorf("%w: %s: %w", ErrRootUnreadable, root, err)
	}

	excluded := make(map[string]struct{}, len(opts.Exclude))
	for _, dir := range opts.Exclude {
		if dir == "" {
			continue
		}
		excluded[filepath.Clean(dir)] = struct{}{}
	}

	err = filepath.WalkDir(walkRoot, func(resolved string, d fs.DirEntry, err error) error {
		path := underRoot(root, walkRoot, resolved)
		if err != nil {
			if path == root {
				return fmt.Errorf("%w: %s: %w", ErrRootUnreadable, root, err)
			}
			stats.Errors = append(stats.Errors, EntryError{Path: path, Err: err})
			logging.WarnWithContext(logger, "entry unreadable", "scan_entry_failed",
				logging.String(logging.FieldFile, path),
				logging.Error(err),
				logging.String(logging.FieldErrorHint, "check permissions on the entry"),
			)
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		if path != root && opts.IgnoreHidden && strings.HasPrefix(d.Name(), ".") {
			stats.SkippedHidden++
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		if d.IsDir() {
			if isExcluded(excluded, path, resolved) && path != root {
				logger.Debug("skipping excluded directory", logging.String("dir", path))
				return filepath.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}

		file, ok := media.NewFile(path)
		if !ok {
			stats.SkippedByFilter++
			return nil
		}

		var size int64
		if info, err := d.Info(); err == nil {
			size = info.Size()
		}

		candidates = append(candidates, Candidate{
			File:   file,
			RelDir: relativeDir(root, filepath.Dir(path)),
			Size:   size,
		})
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrRootUnreadable) {
			return nil, stats, err
		}
		return nil, stats, fmt.Errorf("walk %s: %w", root, err)
	}

	sort.Slice(candidates, func(i, j int) bool {
		return candidates[i].File.Path < candidates[j].File.Path
	})
	stats.Accepted = len(candidates)

	logger.Debug("scan complete",
		logging.Int("accepted", stats.Accepted),
		logging.Int("skipped_by_filter", stats.SkippedByFilter),
		logging.Int("errors", len(stats.Errors)),
	)
	return candidates, stats, nil
}

// resolveRoot returns the directory to hand to WalkDir, which does not
// descend into a root that is itself a symlink.
func resolveRoot(root string) (string, error) {
	info, err := os.Lstat(root)
	if err != nil {
		return "", err
	}
	if info.Mode()&fs.ModeSymlink == 0 {
		return root, nil
	}
	return filepath.EvalSymlinks(root)
}

// underRoot maps a path below walkRoot back under the caller's root.
func underRoot(root, walkRoot, path string) string {
	if root == walkRoot {
		return path
	}
	rel, err := filepath.Rel(walkRoot, path)
	if err != nil {
		return path
	}
	return filepath.Join(root, rel)
}

func isExcluded(excluded map[string]struct{}, paths ...string) bool {
	for _, p := range paths {
		if _, ok := excluded[p]; ok {
			return true
		}
	}
	return false
}

func relativeDir(root, dir string) string {
	rel, err := filepath.Rel(root, dir)
	if err != nil || rel == "." {
		return ""
	}
	return rel
}
