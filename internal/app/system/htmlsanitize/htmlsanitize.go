// Package htmlsanitize sanitizes operator-edited rich text (profile blurbs,
// headlines) before it is rendered on the calculator page. It uses
// bluemonday to strip dangerous HTML while preserving basic formatting.
package htmlsanitize

import (
	"html/template"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	policy     *bluemonday.Policy
	policyOnce sync.Once
)

// getPolicy returns the shared sanitization policy, creating it on first use.
func getPolicy() *bluemonday.Policy {
	policyOnce.Do(func() {
		// UGC policy covers links, emphasis, lists - everything a profile
		// blurb legitimately needs.
		policy = bluemonday.UGCPolicy()
		policy.AllowElements("u", "s", "sub", "sup", "mark")
	})
	return policy
}

// Sanitize cleans HTML input, removing potentially dangerous elements and
// attributes.
func Sanitize(html string) string {
	if html == "" {
		return ""
	}
	return getPolicy().Sanitize(html)
}

// SanitizeToHTML sanitizes HTML input and returns it as template.HTML,
// which is safe to render directly in Go templates without escaping.
func SanitizeToHTML(html string) template.HTML {
	return template.HTML(Sanitize(html))
}

// PrepareForDisplay takes content that may be plain text or HTML and
// returns sanitized template.HTML ready for rendering. Plain text gets
// escaped and wrapped in a paragraph.
func PrepareForDisplay(content string) template.HTML {
	if content == "" {
		return ""
	}
	if isPlainText(content) {
		escaped := template.HTMLEscapeString(content)
		escaped = strings.ReplaceAll(escaped, "\n", "<br>")
		return template.HTML("<p>" + escaped + "</p>")
	}
	return SanitizeToHTML(content)
}

// isPlainText checks if content appears to be plain text (no HTML tags).
func isPlainText(content string) bool {
	return !strings.Contains(content, "<") || !strings.Contains(content, ">")
}
