package htmltools

import (
	"fmt"
)

// Source kind constants.
const (
	// SourceFile marks a location that is an absolute filesystem directory.
	SourceFile SourceKind = "file"

	// SourceHref marks a location that is a URL, absolute or relative.
	SourceHref SourceKind = "href"
)

// SourceKind labels where a dependency's assets live.
type SourceKind string

// valid reports whether the kind belongs to the resolver's vocabulary.
func (k SourceKind) valid() bool {
	return k == SourceFile || k == SourceHref
}

// Source is one possible location of a dependency's assets.
type Source struct {
	Kind     SourceKind
	Location string
}

// FileSource returns a Source for an absolute filesystem directory.
func FileSource(dir string) Source {
	return Source{Kind: SourceFile, Location: dir}
}

// HrefSource returns a Source for a URL.
func HrefSource(url string) Source {
	return Source{Kind: SourceHref, Location: url}
}

// Meta is one <meta> tag declaration.
type Meta struct {
	Name    string
	Content string
}

// Attachment is a file exposed via a dedicated linked element so that
// client-side code can retrieve its URL by identifier. Name is optional;
// an unnamed attachment is identified by its 1-based position in the list.
type Attachment struct {
	Name string
	Path string
}

// identifier returns the attachment's identifier: its name if set,
// otherwise the given 1-based position.
func (a Attachment) identifier(pos int) string {
	if a.Name != "" {
		return a.Name
	}
	return fmt.Sprintf("%d", pos)
}

// Dependency declares an external web asset bundle: a name and version,
// one or more source locations, and the assets to include from there.
//
// Dependencies are values. Operations that rewrite sources (CopyToDir,
// MakeRelative) return updated copies and never modify the slices of the
// input, so a dependency attached to several content objects cannot be
// changed behind their back.
type Dependency struct {
	Name    string
	Version string

	// Sources is an ordered list of candidate locations. Duplicate kinds
	// are legal; resolution picks the first entry of the preferred kind.
	Sources []Source

	Meta        []Meta
	Scripts     []string
	Stylesheets []string
	Attachments []Attachment

	// Head holds raw markup fragments emitted verbatim after all
	// generated tags. Caller-trusted; never escaped.
	Head []string
}

// DependencyOption configures optional fields of a Dependency.
type DependencyOption func(*Dependency)

// WithMeta appends <meta> tag declarations.
func WithMeta(meta ...Meta) DependencyOption {
	return func(d *Dependency) { d.Meta = append(d.Meta, meta...) }
}

// WithScripts appends script paths relative to the resolved source.
func WithScripts(paths ...string) DependencyOption {
	return func(d *Dependency) { d.Scripts = append(d.Scripts, paths...) }
}

// WithStylesheets appends stylesheet paths relative to the resolved source.
func WithStylesheets(paths ...string) DependencyOption {
	return func(d *Dependency) { d.Stylesheets = append(d.Stylesheets, paths...) }
}

// WithAttachments appends attachment declarations.
func WithAttachments(attachments ...Attachment) DependencyOption {
	return func(d *Dependency) { d.Attachments = append(d.Attachments, attachments...) }
}

// WithHead appends raw head markup fragments.
func WithHead(fragments ...string) DependencyOption {
	return func(d *Dependency) { d.Head = append(d.Head, fragments...) }
}

// NewDependency builds a validated Dependency. A source with an empty kind
// defaults to SourceFile. At least one source is required.
func NewDependency(name, version string, sources []Source, opts ...DependencyOption) (Dependency, error) {
	normalized := make([]Source, len(sources))
	for i, src := range sources {
		if src.Kind == "" {
			src.Kind = SourceFile
		}
		normalized[i] = src
	}

	dep := Dependency{
		Name:    name,
		Version: version,
		Sources: normalized,
	}
	for _, opt := range opts {
		opt(&dep)
	}

	if err := dep.Validate(); err != nil {
		return Dependency{}, err
	}
	return dep, nil
}

// Validate checks the descriptor invariants: a non-empty name, at least one
// source, and only recognized source kinds.
func (d Dependency) Validate() error {
	if d.Name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidDependency)
	}
	if len(d.Sources) == 0 {
		return fmt.Errorf("%w: %s has no sources", ErrInvalidDependency, d)
	}
	for _, src := range d.Sources {
		if !src.Kind.valid() {
			return fmt.Errorf("%w: %s has unknown source kind %q", ErrInvalidDependency, d, src.Kind)
		}
	}
	return nil
}

// String returns the dependency's name and version, e.g. "jquery@3.7.1".
func (d Dependency) String() string {
	return d.Name + "@" + d.Version
}

// fileSourceIndex returns the index of the first file source, or -1.
func fileSourceIndex(sources []Source) int {
	for i, src := range sources {
		if src.Kind == SourceFile {
			return i
		}
	}
	return -1
}
