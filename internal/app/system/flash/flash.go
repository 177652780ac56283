// Package flash redirects with a human-readable status message carried in
// the query string. The layout shows the message once on the next page.
package flash

import (
	"net/http"
	"net/url"
	"strings"
)

// Redirect sends a 303 redirect to path with msg in the ?msg= query
// parameter. An empty msg redirects without the parameter. A fragment in
// path (for anchoring the editor to a section) is kept after the query.
func Redirect(w http.ResponseWriter, r *http.Request, path, msg string) {
	if msg == "" {
		http.Redirect(w, r, path, http.StatusSeeOther)
		return
	}

	base, frag := path, ""
	if i := strings.IndexByte(path, '#'); i >= 0 {
		base, frag = path[:i], path[i:]
	}

	sep := "?"
	if strings.IndexByte(base, '?') >= 0 {
		sep = "&"
	}
	http.Redirect(w, r, base+sep+"msg="+url.QueryEscape(msg)+frag, http.StatusSeeOther)
}
