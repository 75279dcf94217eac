// Package manifest loads dependency declarations from YAML manifests.
//
// A manifest declares an ordered list of dependencies:
//
//	dependencies:
//	  - name: jquery
//	    version: 3.7.1
//	    src:
//	      href: https://code.jquery.com/
//	      file: /opt/assets/jquery
//	    script: [jquery.min.js]
//	  - name: house-style
//	    version: "1.0"
//	    src: /opt/assets/house-style
//	    stylesheet: [main.css]
//
// The src field accepts either a bare location string, which defaults to
// kind "file", or a mapping from source kind to location whose declaration
// order is preserved.
package manifest

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/ramnathv/htmltools"
	"github.com/ramnathv/htmltools/internal/fileutil"
	"github.com/ramnathv/htmltools/internal/yamlutil"
)

// Sentinel errors for manifest operations.
var (
	ErrManifestNotFound  = errors.New("manifest file not found")
	ErrEmptyManifestName = errors.New("manifest name cannot be empty")
	ErrManifestParse     = errors.New("failed to parse manifest")
	ErrInvalidSource     = errors.New("invalid source declaration")
	ErrFieldTooLong      = errors.New("field exceeds maximum length")
)

// Field length limits to keep manifests sane.
const (
	MaxNameLength     = 100  // Dependency name
	MaxVersionLength  = 50   // Version string
	MaxLocationLength = 2048 // Directory path or URL
)

// File is the top-level manifest document.
type File struct {
	Dependencies []Entry `yaml:"dependencies"`
}

// Entry is one dependency declaration.
type Entry struct {
	Name       string            `yaml:"name"`
	Version    string            `yaml:"version"`
	Src        SrcSpec           `yaml:"src"`
	Meta       []MetaEntry       `yaml:"meta"`
	Script     []string          `yaml:"script"`
	Stylesheet []string          `yaml:"stylesheet"`
	Attachment []AttachmentEntry `yaml:"attachment"`
	Head       []string          `yaml:"head"`
}

// MetaEntry is one meta-tag declaration.
type MetaEntry struct {
	Name    string `yaml:"name"`
	Content string `yaml:"content"`
}

// AttachmentEntry is one attachment declaration: either a bare path string
// or a named {name, path} pair.
type AttachmentEntry struct {
	Name string `yaml:"name"`
	Path string `yaml:"path"`
}

// UnmarshalYAML accepts the bare-string shorthand for unnamed attachments.
func (a *AttachmentEntry) UnmarshalYAML(data []byte) error {
	var path string
	if err := yamlutil.Unmarshal(data, &path); err == nil {
		*a = AttachmentEntry{Path: path}
		return nil
	}

	type plain AttachmentEntry
	var p plain
	if err := yamlutil.UnmarshalStrict(data, &p); err != nil {
		return err
	}
	*a = AttachmentEntry(p)
	return nil
}

// SrcSpec is the ordered source list of an entry.
type SrcSpec struct {
	Sources []htmltools.Source
}

// UnmarshalYAML accepts either a bare location string (kind defaults to
// "file") or a kind-to-location mapping in declaration order.
func (s *SrcSpec) UnmarshalYAML(data []byte) error {
	var loc string
	if err := yamlutil.Unmarshal(data, &loc); err == nil {
		s.Sources = []htmltools.Source{htmltools.FileSource(loc)}
		return nil
	}

	var m yamlutil.MapSlice
	if err := yamlutil.Unmarshal(data, &m); err != nil {
		return fmt.Errorf("%w: want a location string or a kind-to-location mapping", ErrInvalidSource)
	}

	sources := make([]htmltools.Source, 0, len(m))
	for _, item := range m {
		kind, kindOK := item.Key.(string)
		location, locOK := item.Value.(string)
		if !kindOK || !locOK {
			return fmt.Errorf("%w: source entries must map a kind to a location string", ErrInvalidSource)
		}
		sources = append(sources, htmltools.Source{
			Kind:     htmltools.SourceKind(kind),
			Location: location,
		})
	}
	s.Sources = sources
	return nil
}

// Load reads dependency declarations from a manifest. If nameOrPath
// contains a path separator it is treated as a file path; otherwise it is
// treated as a manifest name and searched in the current directory with
// .yaml then .yml extensions. Returns an error if the file is not found
// (no silent fallback).
func Load(nameOrPath string) ([]htmltools.Dependency, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyManifestName
	}

	path := nameOrPath
	if !fileutil.IsFilePath(nameOrPath) {
		resolved, err := resolveManifestPath(nameOrPath)
		if err != nil {
			return nil, err
		}
		path = resolved
	}

	data, err := os.ReadFile(path) // #nosec G304 -- manifest path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrManifestNotFound, path)
		}
		return nil, fmt.Errorf("reading manifest: %w", err)
	}

	var f File
	if err := yamlutil.UnmarshalStrict(data, &f); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrManifestParse, err)
	}

	deps := make([]htmltools.Dependency, 0, len(f.Dependencies))
	for i, entry := range f.Dependencies {
		dep, err := entry.toDependency()
		if err != nil {
			return nil, fmt.Errorf("dependencies[%d]: %w", i, err)
		}
		deps = append(deps, dep)
	}
	return deps, nil
}

// toDependency converts a manifest entry into a validated descriptor.
func (e Entry) toDependency() (htmltools.Dependency, error) {
	if err := e.validate(); err != nil {
		return htmltools.Dependency{}, err
	}

	var opts []htmltools.DependencyOption
	if len(e.Meta) > 0 {
		meta := make([]htmltools.Meta, len(e.Meta))
		for i, m := range e.Meta {
			meta[i] = htmltools.Meta{Name: m.Name, Content: m.Content}
		}
		opts = append(opts, htmltools.WithMeta(meta...))
	}
	if len(e.Stylesheet) > 0 {
		opts = append(opts, htmltools.WithStylesheets(e.Stylesheet...))
	}
	if len(e.Script) > 0 {
		opts = append(opts, htmltools.WithScripts(e.Script...))
	}
	if len(e.Attachment) > 0 {
		attachments := make([]htmltools.Attachment, len(e.Attachment))
		for i, a := range e.Attachment {
			attachments[i] = htmltools.Attachment{Name: a.Name, Path: a.Path}
		}
		opts = append(opts, htmltools.WithAttachments(attachments...))
	}
	if len(e.Head) > 0 {
		opts = append(opts, htmltools.WithHead(e.Head...))
	}

	return htmltools.NewDependency(e.Name, e.Version, e.Src.Sources, opts...)
}

// validate checks field lengths before descriptor construction.
func (e Entry) validate() error {
	if err := validateFieldLength("name", e.Name, MaxNameLength); err != nil {
		return err
	}
	if err := validateFieldLength("version", e.Version, MaxVersionLength); err != nil {
		return err
	}
	for i, src := range e.Src.Sources {
		field := fmt.Sprintf("src[%d]", i)
		if err := validateFieldLength(field, src.Location, MaxLocationLength); err != nil {
			return err
		}
	}
	return nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// resolveManifestPath searches for a manifest by name in the current
// directory, trying extensions in order: .yaml, .yml.
func resolveManifestPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	tried := make([]string, 0, len(extensions))

	for _, ext := range extensions {
		path := name + ext
		if fileutil.FileExists(path) {
			return path, nil
		}
		tried = append(tried, path)
	}

	return "", fmt.Errorf("%w: tried %s", ErrManifestNotFound, strings.Join(tried, ", "))
}
