// Package htmltools manages declarations of external web assets and renders
// the markup needed to include them in a generated document's head.
//
// # Quick Start
//
// Declare a dependency, then render the head markup for it:
//
//	dep, err := htmltools.NewDependency("jquery", "3.7.1",
//	    []htmltools.Source{htmltools.HrefSource("https://code.jquery.com/")},
//	    htmltools.WithScripts("jquery.min.js"),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	head, err := htmltools.Render([]htmltools.Dependency{dep})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(head)
//	// <script src="https://code.jquery.com/jquery.min.js"></script>
//
// # Dependency Model
//
// A Dependency names a bundle of CSS, JavaScript, metadata, and attachments
// living either in a filesystem directory (kind "file") or at a URL (kind
// "href"). A dependency may carry several sources; Resolve picks the first
// usable one according to a preference order (URLs win by default since
// they need no staging).
//
// # Staging
//
// Disk-based dependencies can be relocated into a self-contained output
// tree and rewritten relative to a base directory, e.g. when producing a
// standalone static bundle:
//
//	staged, err := htmltools.CopyToDir(dep, "site/lib", true)
//	rel, err := htmltools.MakeRelative(staged, "site", true)
//
// CopyToDir and MakeRelative return updated copies; descriptors are never
// mutated in place, so the same value can safely be attached to multiple
// content objects.
//
// # Rendering
//
// Render concatenates per-dependency fragments in input order: meta tags,
// stylesheet links, scripts, attachment links, then raw head fragments.
// Every user-supplied string is attribute-escaped; the result is an HTML
// value marked as already safe for direct insertion. A failure to resolve
// any single dependency aborts the whole render: a document silently
// missing a required stylesheet is worse than one that fails to build.
package htmltools
