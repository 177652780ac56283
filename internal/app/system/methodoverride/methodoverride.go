// internal/app/system/methodoverride/methodoverride.go
package methodoverride

import (
	"net/http"
	"strings"
)

// FormField is the form field carrying the override, matching what the
// admin templates submit.
const FormField = "_method"

// Middleware lets HTML forms issue PUT and DELETE requests by posting a
// _method field. Only POST requests are rewritten and only to PUT, PATCH,
// or DELETE; anything else passes through untouched.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			if m := strings.ToUpper(r.PostFormValue(FormField)); m != "" {
				switch m {
				case http.MethodPut, http.MethodPatch, http.MethodDelete:
					r.Method = m
				}
			}
		}
		next.ServeHTTP(w, r)
	})
}
