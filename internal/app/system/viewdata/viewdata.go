// internal/app/system/viewdata/viewdata.go
package viewdata

import (
	"net/http"
	"time"

	"github.com/dalemusser/waffle/pantry/httpnav"
	"github.com/gorilla/csrf"
	"github.com/hoffmansreptiles/reptilecms/internal/app/system/auth"
)

// SiteName is the display name used in layouts and email subjects.
const SiteName = "Hoffman's Reptile Shop"

// BaseVM contains common fields for all view models.
// Embed this struct in your feature-specific view models.
//
// Usage:
//
//	type myPageData struct {
//	    viewdata.BaseVM
//	    // page-specific fields...
//	}
type BaseVM struct {
	SiteName string
	Year     int

	// Admin context (from auth middleware)
	IsAdmin    bool
	AdminID    string
	AdminName  string
	AdminEmail string

	// Page context
	Title       string
	BackURL     string
	CurrentPath string

	// Flash message passed via ?msg= on redirects
	Msg string

	// CSRF token for forms (use in hidden input field)
	CSRFToken string
}

// New creates a populated BaseVM for a page.
func New(r *http.Request) BaseVM {
	vm := BaseVM{
		SiteName:    SiteName,
		Year:        time.Now().Year(),
		CurrentPath: httpnav.CurrentPath(r),
		Msg:         r.URL.Query().Get("msg"),
		CSRFToken:   csrf.Token(r),
	}

	if admin, ok := auth.CurrentAdmin(r); ok {
		vm.IsAdmin = true
		vm.AdminID = admin.ID
		vm.AdminName = admin.Name
		vm.AdminEmail = admin.Email
	}

	return vm
}

// NewBaseVM creates a BaseVM with a title and a resolved back URL.
func NewBaseVM(r *http.Request, title, backDefault string) BaseVM {
	vm := New(r)
	vm.Title = title
	vm.BackURL = httpnav.ResolveBackURL(r, backDefault)
	return vm
}
