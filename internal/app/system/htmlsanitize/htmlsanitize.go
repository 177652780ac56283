// Package htmlsanitize cleans text that ends up rendered on the public
// site. Admin-entered page copy keeps basic formatting; visitor-submitted
// contact form text is stripped down to plain text.
package htmlsanitize

import (
	"html/template"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	pagePolicy   *bluemonday.Policy
	strictPolicy *bluemonday.Policy
	policyOnce   sync.Once
)

func policies() (*bluemonday.Policy, *bluemonday.Policy) {
	policyOnce.Do(func() {
		pagePolicy = bluemonday.UGCPolicy()
		pagePolicy.AllowElements("u", "s", "sub", "sup", "mark")

		strictPolicy = bluemonday.StrictPolicy()
	})
	return pagePolicy, strictPolicy
}

// Sanitize cleans admin-entered page copy, keeping safe formatting like
// bold, italic, lists, and links while removing anything dangerous.
func Sanitize(html string) string {
	if html == "" {
		return ""
	}
	page, _ := policies()
	return page.Sanitize(html)
}

// StripTags reduces input to plain text with every tag removed. Contact
// form fields go through this before storage.
func StripTags(s string) string {
	if s == "" {
		return ""
	}
	_, strict := policies()
	return strict.Sanitize(s)
}

// IsPlainText reports whether content appears to carry no HTML tags, which
// is the common case for copy typed into the admin textareas.
func IsPlainText(content string) bool {
	if content == "" {
		return true
	}
	return !strings.Contains(content, "<") || !strings.Contains(content, ">")
}

// PlainTextToHTML converts plain text to minimal HTML: entities escaped,
// newlines turned into <br>, the whole thing wrapped in a paragraph.
func PlainTextToHTML(text string) string {
	if text == "" {
		return ""
	}
	escaped := template.HTMLEscapeString(text)
	escaped = strings.ReplaceAll(escaped, "\n", "<br>")
	return "<p>" + escaped + "</p>"
}

// PrepareForDisplay takes stored page copy, plain text or HTML, and
// returns sanitized template.HTML ready for rendering.
func PrepareForDisplay(content string) template.HTML {
	if content == "" {
		return ""
	}
	if IsPlainText(content) {
		return template.HTML(PlainTextToHTML(content))
	}
	return template.HTML(Sanitize(content))
}
