// internal/app/features/gallery/edit.go
package gallery

import (
	"errors"
	"net/http"

	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	gallerystore "github.com/hoffmansreptiles/reptilecms/internal/app/store/gallerypage"
	"github.com/hoffmansreptiles/reptilecms/internal/app/system/flash"
	"github.com/hoffmansreptiles/reptilecms/internal/app/system/formfield"
	"github.com/hoffmansreptiles/reptilecms/internal/app/system/itemref"
	"github.com/hoffmansreptiles/reptilecms/internal/app/system/uploads"
	"github.com/hoffmansreptiles/reptilecms/internal/app/system/viewdata"
	"github.com/hoffmansreptiles/reptilecms/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const editorPath = "/admin/edit/gallery"

// EditVM is the view model for the gallery editor.
type EditVM struct {
	viewdata.BaseVM
	Page *models.GalleryPage
}

// MountAdmin registers the editor routes on the admin router.
func (h *Handler) MountAdmin(r chi.Router) {
	r.Get("/edit/gallery", h.Edit)
	r.Route("/gallery", func(r chi.Router) {
		r.Put("/hero", h.UpdateHero)
		r.Put("/info", h.UpdateInfo)
		r.Put("/footer", h.UpdateFooter)
		r.Post("/publish", h.Publish)

		r.Post("/images", h.AddImage)
		r.Put("/images/{ref}", h.ReplaceImage)
		r.Delete("/images/{ref}", h.DeleteImage)
	})
}

// Edit renders the gallery editor with the current content.
func (h *Handler) Edit(w http.ResponseWriter, r *http.Request) {
	page, err := h.store.Get(r.Context())
	if err != nil {
		h.errLog.Log(r, "failed to load gallery page for editing", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	vm := EditVM{BaseVM: viewdata.NewBaseVM(r, "Edit Gallery Page", "/admin/dashboard"), Page: page}
	templates.Render(w, r, "gallery/edit", vm)
}

// UpdateHero applies the hero form: a new upload replaces the image and
// the title and subtitle merge by the blank-versus-clear rules.
func (h *Handler) UpdateHero(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if err := r.ParseMultipartForm(uploads.MaxUploadSize); err != nil && !errors.Is(err, http.ErrNotMultipart) {
		h.errLog.Log(r, "failed to parse form", err)
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	imageURL, err := h.uploads.FormImage(ctx, r)
	if err != nil {
		h.errLog.Log(r, "hero image upload rejected", err)
		uploads.WriteError(w, err)
		return
	}

	page, err := h.store.Get(ctx)
	if err != nil {
		h.errLog.Log(r, "failed to load gallery page", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	title := formfield.FromForm(r, "title").Apply(page.HeroTitle)
	subtitle := formfield.FromForm(r, "subtitle").Apply(page.HeroSubtitle)

	if err := h.store.SetHeroText(ctx, title, subtitle); err != nil {
		h.errLog.Log(r, "failed to update hero text", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	if imageURL != "" {
		if err := h.store.SetHeroImage(ctx, imageURL); err != nil {
			h.errLog.Log(r, "failed to update hero image", err)
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}
	}
	flash.Redirect(w, r, editorPath+"#hero", "Hero updated")
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
		h.errLog.Log(r, "failed to load gallery page", err)
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
		h.errLog.Log(r, "failed to load gallery page", err)
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

// Publish stamps the gallery's published and updated timestamps.
func (h *Handler) Publish(w http.ResponseWriter, r *http.Request) {
	if err := h.store.Publish(r.Context()); err != nil {
		h.errLog.Log(r, "failed to publish gallery page", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	flash.Redirect(w, r, editorPath, "Gallery published")
}

// AddImage appends an uploaded image to the gallery.
func (h *Handler) AddImage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if err := r.ParseMultipartForm(uploads.MaxUploadSize); err != nil && !errors.Is(err, http.ErrNotMultipart) {
		h.errLog.Log(r, "failed to parse form", err)
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	imageURL, err := h.uploads.FormImage(ctx, r)
	if err != nil {
		h.errLog.Log(r, "gallery image upload rejected", err)
		uploads.WriteError(w, err)
		return
	}
	if imageURL == "" {
		http.Error(w, "An image file is required.", http.StatusBadRequest)
		return
	}

	if err := h.store.AddImage(ctx, imageURL); err != nil {
		h.errLog.Log(r, "failed to add gallery image", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	flash.Redirect(w, r, editorPath+"#images", "Image added")
}

// ReplaceImage swaps the gallery image at the addressed position.
func (h *Handler) ReplaceImage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if err := r.ParseMultipartForm(uploads.MaxUploadSize); err != nil && !errors.Is(err, http.ErrNotMultipart) {
		h.errLog.Log(r, "failed to parse form", err)
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	page, err := h.store.Get(ctx)
	if err != nil {
		h.errLog.Log(r, "failed to load gallery page", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	idx, ok := resolveIndex(w, r, len(page.Images))
	if !ok {
		return
	}

	imageURL, err := h.uploads.FormImage(ctx, r)
	if err != nil {
		h.errLog.Log(r, "gallery image upload rejected", err)
		uploads.WriteError(w, err)
		return
	}
	if imageURL == "" {
		http.Error(w, "An image file is required.", http.StatusBadRequest)
		return
	}

	if err := h.store.ReplaceImage(ctx, idx, imageURL); err != nil {
		h.imageStoreError(w, r, err)
		return
	}
	flash.Redirect(w, r, editorPath+"#images", "Image replaced")
}

// DeleteImage removes the gallery image at the addressed position.
func (h *Handler) DeleteImage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	page, err := h.store.Get(ctx)
	if err != nil {
		h.errLog.Log(r, "failed to load gallery page", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	idx, ok := resolveIndex(w, r, len(page.Images))
	if !ok {
		return
	}

	if err := h.store.RemoveImage(ctx, idx); err != nil {
		h.imageStoreError(w, r, err)
		return
	}
	flash.Redirect(w, r, editorPath+"#images", "Image removed")
}

// resolveIndex parses the {ref} path segment for the id-less image list.
// Only positional refs can match; a hex id is not-found by construction.
func resolveIndex(w http.ResponseWriter, r *http.Request, n int) (int, bool) {
	ref, err := itemref.Parse(chi.URLParam(r, "ref"))
	if err != nil {
		http.Error(w, "Image not found", http.StatusNotFound)
		return 0, false
	}
	idx, err := ref.Resolve(n, func(primitive.ObjectID) int { return -1 })
	if err != nil {
		http.Error(w, "Image not found", http.StatusNotFound)
		return 0, false
	}
	return idx, true
}

func (h *Handler) imageStoreError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, gallerystore.ErrImageNotFound) {
		http.Error(w, "Image not found", http.StatusNotFound)
		return
	}
	h.errLog.Log(r, "gallery update failed", err)
	http.Error(w, "Internal Server Error", http.StatusInternalServerError)
}
