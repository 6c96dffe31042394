// Package fetch - spa.go detects JavaScript-rendered pages.
package fetch

import "strings"

// MinContentLength is the minimum extracted text length to consider a plain
// HTTP fetch successful. Shorter content suggests the page body is rendered
// client-side and should be retried through the browser.
const MinContentLength = 200

// spaIndicators are markup fragments emitted by common frontend frameworks
// before any content has rendered.
var spaIndicators = []string{
	"<app-root",                         // Angular
	`id="root"`,                         // React
	`id="app"`,                          // Vue
	"ng-app",                            // AngularJS
	"data-reactroot",                    // React
	"v-app",                             // Vue
	"<script>window.__INITIAL_STATE__", // Redux/state
}

// IsDynamic returns true if the HTML looks like a SPA shell whose real
// content is filled in by client-side JavaScript.
func IsDynamic(html string) bool {
	for _, indicator := range spaIndicators {
		if strings.Contains(html, indicator) {
			return true
		}
	}
	return false
}

// TooShort returns true if the extracted text is below MinContentLength,
// indicating the fetch likely captured an unrendered shell.
func TooShort(extractedText string) bool {
	return len(strings.TrimSpace(extractedText)) < MinContentLength
}
