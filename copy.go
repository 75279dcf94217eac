package htmltools

import (
	"fmt"
	"path/filepath"

	"github.com/ramnathv/htmltools/internal/fileutil"
)

// CopyToDir stages a disk-based dependency under outputDir and returns a
// copy of the descriptor whose file source points at the staged directory.
//
// The target is <outputDir>/<Name>-<Version>. When the target directory
// already exists the copy is skipped entirely and the existing contents
// are trusted as up to date; callers that change asset contents under a
// fixed name and version must clear the target themselves. Otherwise every
// direct child of the source directory is copied, recursing into
// subdirectories, creating outputDir as needed.
//
// A dependency without a file source fails with ErrNotDiskBased when
// mustWork is true and is returned unchanged otherwise. Concurrent staging
// of the same name and version is a last-write-wins race; no locking is
// provided.
func CopyToDir(dep Dependency, outputDir string, mustWork bool) (Dependency, error) {
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
	srcDir := stripTrailingSlash(dep.Sources[idx].Location)

	target := filepath.Join(outputDir, dep.Name+"-"+dep.Version)
	if !fileutil.DirExists(target) {
		if err := fileutil.CopyDir(srcDir, target); err != nil {
			return Dependency{}, fmt.Errorf("staging %s: %w", dep, err)
		}
	}

	absTarget, err := filepath.Abs(target)
	if err != nil {
		return Dependency{}, fmt.Errorf("staging %s: %w", dep, err)
	}
	if real, err := filepath.EvalSymlinks(absTarget); err == nil {
		absTarget = real
	}

	sources := make([]Source, len(dep.Sources))
	copy(sources, dep.Sources)
	sources[idx] = FileSource(filepath.ToSlash(absTarget))
	dep.Sources = sources
	return dep, nil
}
