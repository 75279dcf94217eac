package main

import (
	"fmt"
	"io"
	"os"

	flag "github.com/spf13/pflag"
)

// cliFlags holds all flags for the htmltools command.
type cliFlags struct {
	manifest   string
	copyTo     string
	relativeTo string
	prefer     []string
	input      string
	title      string
	output     string
	quiet      bool
	verbose    bool
	version    bool
}

// parseFlags parses command-line flags and validates flag combinations.
func parseFlags(args []string) (*cliFlags, error) {
	fs := flag.NewFlagSet("htmltools", flag.ContinueOnError)
	f := &cliFlags{}

	fs.StringVarP(&f.manifest, "manifest", "m", "", "dependency manifest name or path")
	fs.StringVar(&f.copyTo, "copy-to", "", "stage disk-based dependencies under this directory")
	fs.StringVar(&f.relativeTo, "relative-to", "", "rewrite file sources relative to this directory")
	fs.StringSliceVar(&f.prefer, "prefer", []string{"href", "file"}, "source kind preference order")
	fs.StringVarP(&f.input, "input", "i", "", "Markdown file to assemble into a complete document")
	fs.StringVar(&f.title, "title", "Document", "document title (used with --input)")
	fs.StringVarP(&f.output, "output", "o", "", "output file (default: stdout)")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show detailed progress")
	fs.BoolVar(&f.version, "version", false, "print version and exit")

	fs.Usage = func() { printUsage(os.Stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if !f.version && f.manifest == "" {
		return nil, ErrMissingManifest
	}
	return f, nil
}

// printUsage writes the command usage to w.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, `usage: htmltools --manifest <file> [options]

Render the head markup for the dependencies declared in a YAML manifest,
optionally staging disk-based dependencies into a self-contained output
tree and assembling a complete HTML document from Markdown.

Options:
  -m, --manifest string     dependency manifest name or path (required)
      --copy-to string      stage disk-based dependencies under this directory
      --relative-to string  rewrite file sources relative to this directory
      --prefer strings      source kind preference order (default href,file)
  -i, --input string        Markdown file to assemble into a complete document
      --title string        document title, used with --input (default "Document")
  -o, --output string       output file (default: stdout)
  -q, --quiet               only show errors
  -v, --verbose             show detailed progress
      --version             print version and exit`)
}
