package pipeline

import "strings"

// InjectHead inserts a markup fragment into an HTML document's head.
// Tries before </head> first, then after <body ...>, then prepends to the
// document. The fragment is inserted verbatim; it must already be escaped.
func InjectHead(htmlContent, fragment string) string {
	if fragment == "" {
		return htmlContent
	}

	lowerHTML := strings.ToLower(htmlContent)

	// Try inserting before </head>
	if idx := strings.Index(lowerHTML, "</head>"); idx != -1 {
		return htmlContent[:idx] + fragment + "\n" + htmlContent[idx:]
	}

	// Try inserting after <body>
	if idx := strings.Index(lowerHTML, "<body"); idx != -1 {
		// Find the closing > of <body...>
		closeIdx := strings.Index(htmlContent[idx:], ">")
		if closeIdx != -1 {
			insertPos := idx + closeIdx + 1
			return htmlContent[:insertPos] + fragment + htmlContent[insertPos:]
		}
	}

	// Fallback: prepend
	return fragment + htmlContent
}
