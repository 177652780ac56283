// Package slugify derives URL-safe slugs for animal detail pages.
package slugify

import (
	"strconv"
	"strings"

	"github.com/mozillazg/go-unidecode"
)

// Slugify lowercases the name, folds accented characters to ASCII, collapses
// every run of non-alphanumerics into a single hyphen, and trims hyphens
// from both ends. The result may be empty for names with no usable
// characters; callers are expected to substitute a fallback.
func Slugify(name string) string {
	s := strings.ToLower(unidecode.Unidecode(name))

	var b strings.Builder
	b.Grow(len(s))
	lastHyphen := true // suppress a leading hyphen
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
			lastHyphen = false
		} else if !lastHyphen {
			b.WriteByte('-')
			lastHyphen = true
		}
	}
	return strings.TrimRight(b.String(), "-")
}

// Unique returns the first of base, base-2, base-3, ... that is not in
// used. Uniqueness only matters among siblings in one page document.
func Unique(base string, used map[string]bool) string {
	if !used[base] {
		return base
	}
	for i := 2; ; i++ {
		candidate := base + "-" + strconv.Itoa(i)
		if !used[candidate] {
			return candidate
		}
	}
}
