// internal/app/features/contact/edit.go
package contact

import (
	"net/http"

	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"github.com/hoffmansreptiles/reptilecms/internal/app/system/flash"
	"github.com/hoffmansreptiles/reptilecms/internal/app/system/formfield"
	"github.com/hoffmansreptiles/reptilecms/internal/app/system/htmlsanitize"
	"github.com/hoffmansreptiles/reptilecms/internal/app/system/viewdata"
	"github.com/hoffmansreptiles/reptilecms/internal/domain/models"
)

const editorPath = "/admin/edit/contact"

// EditVM is the view model for the contact page editor.
type EditVM struct {
	viewdata.BaseVM
	Page *models.ContactPage
}

// MountAdmin registers the editor routes on the admin router.
func (h *Handler) MountAdmin(r chi.Router) {
	r.Get("/edit/contact", h.Edit)
	r.Route("/contact", func(r chi.Router) {
		r.Put("/info", h.UpdateInfo)
		r.Put("/details", h.UpdateDetails)
		r.Put("/footer", h.UpdateFooter)
		r.Post("/publish", h.Publish)
	})
}

// Edit renders the contact editor with the current content.
func (h *Handler) Edit(w http.ResponseWriter, r *http.Request) {
	page, err := h.store.Get(r.Context())
	if err != nil {
		h.errLog.Log(r, "failed to load contact page for editing", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	vm := EditVM{BaseVM: viewdata.NewBaseVM(r, "Edit Contact Page", "/admin/dashboard"), Page: page}
	templates.Render(w, r, "contact/edit", vm)
}

// UpdateInfo applies the info section form.
func (h *Handler) UpdateInfo(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if err := r.ParseForm(); err != nil {
		h.errLog.Log(r, "failed to parse form", err)
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}
	page, err := h.store.Get(ctx)
	if err != nil {
		h.errLog.Log(r, "failed to load contact page", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	title := formfield.FromForm(r, "title").Apply(page.Info.Title)
	text := formfield.FromForm(r, "text").Apply(page.Info.Text)

	if err := h.store.SetInfo(ctx, title, text); err != nil {
		h.errLog.Log(r, "failed to update info section", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	flash.Redirect(w, r, editorPath+"#info", "Info section updated")
}

// UpdateDetails merges the reach-us form field by field. The map embed is
// sanitized because it is rendered as raw HTML on the public page.
func (h *Handler) UpdateDetails(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if err := r.ParseForm(); err != nil {
		h.errLog.Log(r, "failed to parse form", err)
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}
	page, err := h.store.Get(ctx)
	if err != nil {
		h.errLog.Log(r, "failed to load contact page", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	details := models.ContactDetails{
		Address: formfield.FromForm(r, "address").Apply(page.Details.Address),
		Phone:   formfield.FromForm(r, "phone").Apply(page.Details.Phone),
		Email:   formfield.FromForm(r, "email").Apply(page.Details.Email),
		Hours:   formfield.FromForm(r, "hours").Apply(page.Details.Hours),
	}
	embed := formfield.FromForm(r, "mapEmbed")
	if embed.Kind() == formfield.Value {
		details.MapEmbed = htmlsanitize.Sanitize(embed.Value())
	} else {
		details.MapEmbed = embed.Apply(page.Details.MapEmbed)
	}

	if err := h.store.SetDetails(ctx, details); err != nil {
		h.errLog.Log(r, "failed to update contact details", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	flash.Redirect(w, r, editorPath+"#details", "Contact details updated")
}

// UpdateFooter applies the footer section form.
func (h *Handler) UpdateFooter(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if err := r.ParseForm(); err != nil {
		h.errLog.Log(r, "failed to parse form", err)
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}
	page, err := h.store.Get(ctx)
	if err != nil {
		h.errLog.Log(r, "failed to load contact page", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	footer := models.SectionFooter{
		Title: formfield.FromForm(r, "title").Apply(page.Footer.Title),
		Text:  formfield.FromForm(r, "text").Apply(page.Footer.Text),
	}

	if err := h.store.SetFooter(ctx, footer); err != nil {
		h.errLog.Log(r, "failed to update footer", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	flash.Redirect(w, r, editorPath+"#footer", "Footer updated")
}

// Publish stamps the contact page's published and updated timestamps.
func (h *Handler) Publish(w http.ResponseWriter, r *http.Request) {
	if err := h.store.Publish(r.Context()); err != nil {
		h.errLog.Log(r, "failed to publish contact page", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	flash.Redirect(w, r, editorPath, "Contact page published")
}
