// Package htmlsanitize strips unsafe markup from user-entered rich text.
package htmlsanitize

import (
	"html/template"

	"github.com/microcosm-cc/bluemonday"
)

// policy is safe for concurrent use once built.
var policy = bluemonday.UGCPolicy()

// Sanitize returns s with scripts, event handlers and unsafe URLs removed.
func Sanitize(s string) string {
	if s == "" {
		return ""
	}
	return policy.Sanitize(s)
}

// HTML is Sanitize typed for direct use in templates.
func HTML(s string) template.HTML {
	return template.HTML(Sanitize(s))
}
