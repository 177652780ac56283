// Package formutil provides helpers for form re-rendering with validation errors.
//
// When a form submission fails validation, the form should be re-rendered with:
// - The user's previously entered values (echoed back)
// - An error message explaining what went wrong
//
// This package provides a Base struct that can be embedded in form data structs
// to handle the common fields.
//
// Example usage:
//
//	type registerData struct {
//		formutil.Base
//		FirstName string
//		Email     string
//	}
//
//	// In your handler:
//	data := registerData{
//		Base:      formutil.NewBase(r, "Register", "/admin/login"),
//		FirstName: first,
//		Email:     email,
//	}
//	data.SetError("Email is required.")
//	templates.Render(w, r, "adminauth/register", data)
package formutil

import (
	"html/template"
	"net/http"

	"github.com/hoffmansreptiles/reptilecms/internal/app/system/viewdata"
)

// Base contains common fields for form pages that can be embedded in form data structs.
// It embeds viewdata.BaseVM for site and admin context, and adds Error for form validation.
type Base struct {
	viewdata.BaseVM
	Error template.HTML
}

// NewBase creates a fully populated Base for a form page.
func NewBase(r *http.Request, title, backDefault string) Base {
	return Base{
		BaseVM: viewdata.NewBaseVM(r, title, backDefault),
	}
}

// SetError sets the error message on a Base struct.
// This is a convenience method for setting Error as template.HTML.
func (b *Base) SetError(msg string) {
	b.Error = template.HTML(msg)
}
