package htmltools

import (
	"fmt"
	"path/filepath"
	"strings"
)

// RelativePath rewrites an absolute path as relative to basePath. basePath
// is normalized to end with exactly one separator and path must begin with
// it; otherwise RelativePath fails with ErrNotADescendant. This is always a
// hard failure: a silently wrong relative path is worse than an explicit
// error. Both arguments are compared in slash form.
func RelativePath(basePath, path string) (string, error) {
	base := strings.TrimRight(filepath.ToSlash(basePath), "/") + "/"
	p := filepath.ToSlash(path)
	if !strings.HasPrefix(p, base) {
		return "", fmt.Errorf("%w: %q is not under %q", ErrNotADescendant, path, basePath)
	}
	return p[len(base):], nil
}

// MakeRelative rewrites a disk-based dependency's file source relative to
// basePath, which is first resolved to its canonical absolute form with
// symlinks evaluated. The returned copy carries a single file source
// holding the relative path; any other sources (e.g. href) are discarded.
// This destructive normalization marks the dependency as part of a
// self-contained output tree.
//
// A dependency without a file source fails with ErrNotDiskBased when
// mustWork is true and is returned unchanged otherwise. A file source
// outside basePath always fails with ErrNotADescendant, regardless of
// mustWork.
func MakeRelative(dep Dependency, basePath string, mustWork bool) (Dependency, error) {
	if err := dep.Validate(); err != nil {
		return Dependency{}, err
	}

	idx := fileSourceIndex(dep.Sources)
	if idx < 0 {
		if mustWork {
			return Dependency{}, fmt.Errorf("%w: %s", ErrNotDiskBased, dep)
		}
		return dep, nil
	}

	base, err := canonicalPath(basePath)
	if err != nil {
		return Dependency{}, fmt.Errorf("relativizing %s: %w", dep, err)
	}

	rel, err := RelativePath(base, dep.Sources[idx].Location)
	if err != nil {
		return Dependency{}, err
	}

	dep.Sources = []Source{FileSource(rel)}
	return dep, nil
}

// canonicalPath resolves a path to absolute form with symlinks evaluated.
// Symlink resolution is best effort: if it fails (path does not exist yet)
// the absolute path is used as is.
func canonicalPath(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolving %q: %w", path, err)
	}
	if real, err := filepath.EvalSymlinks(abs); err == nil {
		abs = real
	}
	return abs, nil
}
