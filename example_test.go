package htmltools_test

import (
	"fmt"

	"github.com/ramnathv/htmltools"
)

func ExampleRender() {
	jquery, _ := htmltools.NewDependency("jquery", "3.7.1",
		[]htmltools.Source{htmltools.HrefSource("https://code.jquery.com")},
		htmltools.WithScripts("jquery.min.js"),
	)
	theme, _ := htmltools.NewDependency("theme", "1.0",
		[]htmltools.Source{htmltools.FileSource("assets/theme")},
		htmltools.WithStylesheets("theme.css"),
	)

	head, err := htmltools.Render([]htmltools.Dependency{jquery, theme})
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(head)
	// Output:
	// <script src="https://code.jquery.com/jquery.min.js"></script>
	// <link href="assets/theme/theme.css" rel="stylesheet"/>
}

func ExampleRender_preferFile() {
	dep, _ := htmltools.NewDependency("jquery", "3.7.1",
		[]htmltools.Source{
			htmltools.HrefSource("https://code.jquery.com"),
			htmltools.FileSource("lib/jquery-3.7.1"),
		},
		htmltools.WithScripts("jquery.min.js"),
	)

	head, _ := htmltools.Render([]htmltools.Dependency{dep},
		htmltools.WithPreference(htmltools.SourceFile, htmltools.SourceHref))
	fmt.Println(head)
	// Output:
	// <script src="lib/jquery-3.7.1/jquery.min.js"></script>
}
