package methodoverride

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
)

func postForm(t *testing.T, form url.Values) *http.Request {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/admin/home", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func TestMiddleware(t *testing.T) {
	tests := []struct {
		name     string
		override string
		want     string
	}{
		{"delete", "DELETE", http.MethodDelete},
		{"put", "PUT", http.MethodPut},
		{"patch", "PATCH", http.MethodPatch},
		{"lowercase delete", "delete", http.MethodDelete},
		{"empty stays post", "", http.MethodPost},
		{"get not allowed", "GET", http.MethodPost},
		{"garbage ignored", "TRACE", http.MethodPost},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got string
			h := Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				got = r.Method
			}))

			form := url.Values{}
			if tt.override != "" {
				form.Set(FormField, tt.override)
			}
			form.Set("title", "kept")

			req := postForm(t, form)
			h.ServeHTTP(httptest.NewRecorder(), req)

			if got != tt.want {
				t.Errorf("method = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestMiddleware_FormStaysReadable(t *testing.T) {
	h := Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if v := r.FormValue("title"); v != "kept" {
			t.Errorf("FormValue(title) = %q, want kept", v)
		}
	}))

	form := url.Values{}
	form.Set(FormField, "PUT")
	form.Set("title", "kept")
	h.ServeHTTP(httptest.NewRecorder(), postForm(t, form))
}

func TestMiddleware_LeavesGetAlone(t *testing.T) {
	var got string
	h := Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Method
	}))

	req := httptest.NewRequest(http.MethodGet, "/home?_method=DELETE", nil)
	h.ServeHTTP(httptest.NewRecorder(), req)

	if got != http.MethodGet {
		t.Errorf("method = %q, want GET", got)
	}
}
