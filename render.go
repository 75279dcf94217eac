package htmltools

import "strings"

// MIME hints passed to the href filter.
const (
	mimeCSS        = "text/css"
	mimeJavaScript = "text/javascript"
)

// PathEncoder encodes a raw path for use in a URL. The default is
// EncodePath.
type PathEncoder func(path string) string

// HrefFilter rewrites a final, already-encoded href before it is embedded
// in a tag, e.g. to inline assets as data URIs. mime is "text/css" for
// stylesheets, "text/javascript" for scripts, and empty for attachments.
// The default filter returns href unchanged.
type HrefFilter func(href, mime string) string

// renderConfig holds the resolved rendering configuration.
type renderConfig struct {
	prefs  []SourceKind
	encode PathEncoder
	filter HrefFilter
}

// RenderOption overrides one of Render's documented defaults.
type RenderOption func(*renderConfig)

// WithPreference sets the source resolution order (default href, file).
func WithPreference(kinds ...SourceKind) RenderOption {
	return func(c *renderConfig) { c.prefs = kinds }
}

// WithEncoder sets the path encoder applied to file locations and asset
// paths (default EncodePath).
func WithEncoder(encode PathEncoder) RenderOption {
	return func(c *renderConfig) { c.encode = encode }
}

// WithHrefFilter sets the href rewrite hook (default identity).
func WithHrefFilter(filter HrefFilter) RenderOption {
	return func(c *renderConfig) { c.filter = filter }
}

// Render produces the head markup for an ordered list of dependencies: one
// newline-joined HTML fragment containing, per dependency and in this
// order, its meta tags, stylesheet links, scripts, attachment links, and
// raw head fragments.
//
// File locations are passed through the encoder; href locations are used
// verbatim, assumed pre-encoded by the declarer. Any dependency that fails
// to resolve aborts the entire render; no partial output is returned.
func Render(deps []Dependency, opts ...RenderOption) (HTML, error) {
	cfg := renderConfig{
		prefs:  DefaultPreference(),
		encode: EncodePath,
		filter: func(href, mime string) string { return href },
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	var lines []string
	for _, dep := range deps {
		fragment, err := renderDependency(dep, cfg)
		if err != nil {
			return "", err
		}
		lines = append(lines, fragment...)
	}
	return HTML(strings.Join(lines, "\n")), nil
}

// renderDependency emits the markup lines for a single dependency.
func renderDependency(dep Dependency, cfg renderConfig) ([]string, error) {
	src, err := Resolve(dep, cfg.prefs...)
	if err != nil {
		return nil, err
	}

	// File locations are caller-provided raw strings and need encoding;
	// hrefs are assumed already valid.
	srcPath := src.Location
	if src.Kind == SourceFile {
		srcPath = cfg.encode(srcPath)
	}
	srcPath = stripTrailingSlash(srcPath)

	var lines []string

	for _, m := range dep.Meta {
		lines = append(lines,
			`<meta name="`+EscapeString(m.Name)+`" content="`+EscapeString(m.Content)+`"/>`)
	}

	for _, sheet := range dep.Stylesheets {
		href := cfg.filter(srcPath+"/"+cfg.encode(sheet), mimeCSS)
		lines = append(lines, `<link href="`+EscapeString(href)+`" rel="stylesheet"/>`)
	}

	for _, script := range dep.Scripts {
		href := cfg.filter(srcPath+"/"+cfg.encode(script), mimeJavaScript)
		lines = append(lines, `<script src="`+EscapeString(href)+`"></script>`)
	}

	for i, att := range dep.Attachments {
		id := dep.Name + "-" + att.identifier(i+1) + "-attachment"
		href := cfg.filter(srcPath+"/"+cfg.encode(att.Path), "")
		lines = append(lines,
			`<link id="`+EscapeString(id)+`" rel="attachment" href="`+EscapeString(href)+`"/>`)
	}

	lines = append(lines, dep.Head...)
	return lines, nil
}
