package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/ramnathv/htmltools"
	"github.com/ramnathv/htmltools/internal/manifest"
	"github.com/ramnathv/htmltools/internal/pipeline"
)

// Sentinel errors for CLI operations.
var (
	ErrMissingManifest   = errors.New("a dependency manifest is required (--manifest)")
	ErrInvalidPreference = errors.New("invalid source kind in --prefer")
	ErrReadMarkdown      = errors.New("failed to read markdown file")
)

// run executes the staging and rendering pipeline: load the manifest,
// stage and relativize disk-based dependencies when requested, render the
// head markup, and either emit the fragment or assemble a full document.
func run(f *cliFlags, logger *log.Logger) error {
	prefs, err := parsePreference(f.prefer)
	if err != nil {
		return err
	}

	deps, err := manifest.Load(f.manifest)
	if err != nil {
		return err
	}
	logger.Debug("loaded manifest", "manifest", f.manifest, "dependencies", len(deps))

	if f.copyTo != "" {
		for i, dep := range deps {
			// Best effort: href-only dependencies pass through unchanged.
			staged, err := htmltools.CopyToDir(dep, f.copyTo, false)
			if err != nil {
				return err
			}
			deps[i] = staged
			logger.Debug("staged dependency", "dependency", dep.String(), "dir", f.copyTo)
		}
	}

	if f.relativeTo != "" {
		for i, dep := range deps {
			rel, err := htmltools.MakeRelative(dep, f.relativeTo, false)
			if err != nil {
				return err
			}
			deps[i] = rel
		}
	}

	head, err := htmltools.Render(deps, htmltools.WithPreference(prefs...))
	if err != nil {
		return err
	}

	output := head.String()
	if f.input != "" {
		output, err = assembleDocument(context.Background(), f.input, f.title, head)
		if err != nil {
			return err
		}
	}

	return writeOutput(f.output, output, logger)
}

// assembleDocument converts a Markdown file into a complete HTML document
// carrying the rendered dependency markup in its head.
func assembleDocument(ctx context.Context, inputPath, title string, head htmltools.HTML) (string, error) {
	md, err := os.ReadFile(inputPath) // #nosec G304 -- input path is user-provided
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrReadMarkdown, err)
	}

	converter := pipeline.NewGoldmarkConverter()
	doc, err := converter.ToHTML(ctx, title, string(md))
	if err != nil {
		return "", err
	}

	return pipeline.InjectHead(doc, head.String()), nil
}

// parsePreference converts --prefer values into source kinds.
func parsePreference(kinds []string) ([]htmltools.SourceKind, error) {
	prefs := make([]htmltools.SourceKind, len(kinds))
	for i, k := range kinds {
		kind := htmltools.SourceKind(strings.TrimSpace(k))
		switch kind {
		case htmltools.SourceFile, htmltools.SourceHref:
			prefs[i] = kind
		default:
			return nil, fmt.Errorf("%w: %q", ErrInvalidPreference, k)
		}
	}
	return prefs, nil
}

// writeOutput writes content to path, or to stdout when path is empty.
func writeOutput(path, content string, logger *log.Logger) error {
	if path == "" {
		fmt.Println(content)
		return nil
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	logger.Info("wrote output", "path", path)
	return nil
}
