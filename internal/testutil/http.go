package testutil

import (
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/hoffmansreptiles/reptilecms/internal/app/system/auth"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TestAdmin represents admin account data for testing HTTP handlers.
type TestAdmin struct {
	ID    string
	Name  string
	Email string
}

// Admin returns a TestAdmin with a fresh ID.
func Admin() TestAdmin {
	return TestAdmin{
		ID:    primitive.NewObjectID().Hex(),
		Name:  "Test Admin",
		Email: "admin@test.com",
	}
}

// WithAdmin adds an admin to the request context for testing protected
// handlers. This bypasses the session middleware and injects directly.
func WithAdmin(r *http.Request, admin TestAdmin) *http.Request {
	sessionAdmin := &auth.SessionAdmin{
		ID:    admin.ID,
		Name:  admin.Name,
		Email: admin.Email,
	}
	return auth.WithTestAdmin(r, sessionAdmin)
}

// NewRequest creates an HTTP request for testing.
func NewRequest(method, target string) *http.Request {
	return httptest.NewRequest(method, target, nil)
}

// NewAuthenticatedRequest creates an HTTP request with an admin in context.
func NewAuthenticatedRequest(method, target string, admin TestAdmin) *http.Request {
	req := httptest.NewRequest(method, target, nil)
	return WithAdmin(req, admin)
}

// ResponseRecorder wraps httptest.ResponseRecorder with helper methods.
type ResponseRecorder struct {
	*httptest.ResponseRecorder
}

// NewRecorder creates a new ResponseRecorder.
func NewRecorder() *ResponseRecorder {
	return &ResponseRecorder{httptest.NewRecorder()}
}

// AssertStatus checks the response status code.
func (r *ResponseRecorder) AssertStatus(t interface{ Errorf(string, ...any) }, expected int) {
	if r.Code != expected {
		t.Errorf("status code: got %d, want %d", r.Code, expected)
	}
}

// AssertRedirect checks for a redirect to the expected location.
func (r *ResponseRecorder) AssertRedirect(t interface{ Errorf(string, ...any) }, expectedLocation string) {
	if r.Code != http.StatusSeeOther && r.Code != http.StatusFound && r.Code != http.StatusMovedPermanently {
		t.Errorf("expected redirect status, got %d", r.Code)
	}
	location := r.Header().Get("Location")
	if location != expectedLocation {
		t.Errorf("redirect location: got %q, want %q", location, expectedLocation)
	}
}

// AssertContains checks if the response body contains the expected string.
func (r *ResponseRecorder) AssertContains(t interface{ Errorf(string, ...any) }, expected string) {
	body := r.Body.String()
	if !strings.Contains(body, expected) {
		t.Errorf("response body does not contain %q", expected)
	}
}
