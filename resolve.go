package htmltools

import (
	"fmt"
	"strings"
)

// DefaultPreference returns the default source resolution order. URLs are
// preferred over filesystem directories because they are directly usable
// without staging.
func DefaultPreference() []SourceKind {
	return []SourceKind{SourceHref, SourceFile}
}

// Resolve picks the usable source of a dependency: the first kind in prefs
// that is present among dep.Sources, taking the first matching entry in
// source order when the same kind appears more than once (first match
// wins; later duplicates are shadowed, not rejected). An empty prefs means
// DefaultPreference.
//
// The selected location has a single trailing '/' stripped so it is ready
// for path joining; stripping is idempotent since a normalized location
// carries at most one.
//
// Returns ErrInvalidDependency for a malformed descriptor and
// ErrNoUsableSource, identifying the dependency, when no preferred kind is
// present.
func Resolve(dep Dependency, prefs ...SourceKind) (Source, error) {
	if err := dep.Validate(); err != nil {
		return Source{}, err
	}
	if len(prefs) == 0 {
		prefs = DefaultPreference()
	}

	for _, kind := range prefs {
		for _, src := range dep.Sources {
			if src.Kind == kind {
				return Source{Kind: kind, Location: stripTrailingSlash(src.Location)}, nil
			}
		}
	}

	return Source{}, fmt.Errorf("%w: %s (have %s, want one of %s)",
		ErrNoUsableSource, dep, kindList(dep.Sources), prefList(prefs))
}

// stripTrailingSlash removes a single trailing '/' from s.
func stripTrailingSlash(s string) string {
	return strings.TrimSuffix(s, "/")
}

// kindList formats the kinds present on a source list for error messages.
func kindList(sources []Source) string {
	kinds := make([]string, len(sources))
	for i, src := range sources {
		kinds[i] = string(src.Kind)
	}
	return strings.Join(kinds, ",")
}

// prefList formats a preference order for error messages.
func prefList(prefs []SourceKind) string {
	kinds := make([]string, len(prefs))
	for i, k := range prefs {
		kinds[i] = string(k)
	}
	return strings.Join(kinds, ",")
}
