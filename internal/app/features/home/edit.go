// internal/app/features/home/edit.go
package home

import (
	"errors"
	"net/http"

	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	homestore "github.com/hoffmansreptiles/reptilecms/internal/app/store/homepage"
	"github.com/hoffmansreptiles/reptilecms/internal/app/system/flash"
	"github.com/hoffmansreptiles/reptilecms/internal/app/system/formfield"
	"github.com/hoffmansreptiles/reptilecms/internal/app/system/itemref"
	"github.com/hoffmansreptiles/reptilecms/internal/app/system/uploads"
	"github.com/hoffmansreptiles/reptilecms/internal/app/system/viewdata"
	"github.com/hoffmansreptiles/reptilecms/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const editorPath = "/admin/edit/home"

// EditVM is the view model for the home page editor.
type EditVM struct {
	viewdata.BaseVM
	Page *models.HomePage
}

// MountAdmin registers the editor routes on the admin router.
func (h *Handler) MountAdmin(r chi.Router) {
	r.Get("/edit/home", h.Edit)
	r.Route("/home", func(r chi.Router) {
		r.Put("/info", h.UpdateInfo)
		r.Put("/split", h.UpdateSplit)
		r.Put("/mid", h.UpdateMid)
		r.Put("/grid", h.UpdateGridHeader)
		r.Put("/footer", h.UpdateFooter)
		r.Post("/publish", h.Publish)

		r.Post("/slides", h.AddSlide)
		r.Put("/slides/{ref}", h.UpdateSlide)
		r.Delete("/slides/{ref}", h.DeleteSlide)

		r.Post("/grid_images", h.AddGridImage)
		r.Put("/grid_images/{ref}", h.ReplaceGridImage)
		r.Delete("/grid_images/{ref}", h.DeleteGridImage)
	})
}

// Edit renders the home page editor with the current content.
func (h *Handler) Edit(w http.ResponseWriter, r *http.Request) {
	page, err := h.store.Get(r.Context())
	if err != nil {
		h.errLog.Log(r, "failed to load home page for editing", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	vm := EditVM{BaseVM: viewdata.NewBaseVM(r, "Edit Home Page", "/admin/dashboard"), Page: page}
	templates.Render(w, r, "home/edit", vm)
}

// UpdateInfo applies the info section form. Blank fields keep their stored
// values unless the matching clear checkbox was ticked.
func (h *Handler) UpdateInfo(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if err := r.ParseForm(); err != nil {
		h.errLog.Log(r, "failed to parse form", err)
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}
	page, err := h.store.Get(ctx)
	if err != nil {
		h.errLog.Log(r, "failed to load home page", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	headline := formfield.FromForm(r, "headline").Apply(page.Info.Headline)
	text := formfield.FromForm(r, "text").Apply(page.Info.Text)

	if err := h.store.SetInfo(ctx, headline, text); err != nil {
		h.errLog.Log(r, "failed to update info section", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	flash.Redirect(w, r, editorPath+"#info", "Info section updated")
}

// UpdateSplit applies the split section form. A new upload replaces the
// image; no upload leaves it untouched.
func (h *Handler) UpdateSplit(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if err := r.ParseMultipartForm(uploads.MaxUploadSize); err != nil && !errors.Is(err, http.ErrNotMultipart) {
		h.errLog.Log(r, "failed to parse form", err)
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	imageURL, err := h.uploads.FormImage(ctx, r)
	if err != nil {
		h.errLog.Log(r, "split image upload rejected", err)
		uploads.WriteError(w, err)
		return
	}

	page, err := h.store.Get(ctx)
	if err != nil {
		h.errLog.Log(r, "failed to load home page", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	title := formfield.FromForm(r, "title").Apply(page.Split.Title)
	text := formfield.FromForm(r, "text").Apply(page.Split.Text)

	if err := h.store.SetSplitText(ctx, title, text); err != nil {
		h.errLog.Log(r, "failed to update split section", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	if imageURL != "" {
		if err := h.store.SetSplitImage(ctx, imageURL); err != nil {
			h.errLog.Log(r, "failed to update split image", err)
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}
	}
	flash.Redirect(w, r, editorPath+"#split", "Split section updated")
}

// UpdateMid applies the mid text banner form.
func (h *Handler) UpdateMid(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if err := r.ParseForm(); err != nil {
		h.errLog.Log(r, "failed to parse form", err)
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}
	page, err := h.store.Get(ctx)
	if err != nil {
		h.errLog.Log(r, "failed to load home page", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	text := formfield.FromForm(r, "text").Apply(page.Mid.Text)

	if err := h.store.SetMid(ctx, text); err != nil {
		h.errLog.Log(r, "failed to update mid section", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	flash.Redirect(w, r, editorPath+"#mid", "Mid section updated")
}

// UpdateGridHeader applies the grid title and subtitle form.
func (h *Handler) UpdateGridHeader(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if err := r.ParseForm(); err != nil {
		h.errLog.Log(r, "failed to parse form", err)
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}
	page, err := h.store.Get(ctx)
	if err != nil {
		h.errLog.Log(r, "failed to load home page", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	title := formfield.FromForm(r, "title").Apply(page.Grid.Title)
	subtitle := formfield.FromForm(r, "subtitle").Apply(page.Grid.Subtitle)

	if err := h.store.SetGridHeader(ctx, title, subtitle); err != nil {
		h.errLog.Log(r, "failed to update grid header", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	flash.Redirect(w, r, editorPath+"#grid", "Grid header updated")
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
		h.errLog.Log(r, "failed to load home page", err)
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

// Publish stamps the page's updated timestamp.
func (h *Handler) Publish(w http.ResponseWriter, r *http.Request) {
	if err := h.store.Publish(r.Context()); err != nil {
		h.errLog.Log(r, "failed to publish home page", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	flash.Redirect(w, r, editorPath, "Home page published")
}

// AddSlide appends a carousel slide from the add-slide form.
func (h *Handler) AddSlide(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if err := r.ParseMultipartForm(uploads.MaxUploadSize); err != nil && !errors.Is(err, http.ErrNotMultipart) {
		h.errLog.Log(r, "failed to parse form", err)
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	imageURL, err := h.uploads.FormImage(ctx, r)
	if err != nil {
		h.errLog.Log(r, "slide image upload rejected", err)
		uploads.WriteError(w, err)
		return
	}

	slide := models.CarouselSlide{
		Image:       imageURL,
		Title:       r.FormValue("title"),
		Description: r.FormValue("description"),
	}
	if _, err := h.store.AddSlide(ctx, slide); err != nil {
		h.errLog.Log(r, "failed to add carousel slide", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	flash.Redirect(w, r, editorPath+"#carousel", "Slide added")
}

// UpdateSlide edits one carousel slide addressed by id or index. The form's
// edit marker selects image-only or text-only mode; without it both apply.
func (h *Handler) UpdateSlide(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if err := r.ParseMultipartForm(uploads.MaxUploadSize); err != nil && !errors.Is(err, http.ErrNotMultipart) {
		h.errLog.Log(r, "failed to parse form", err)
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	page, err := h.store.Get(ctx)
	if err != nil {
		h.errLog.Log(r, "failed to load home page", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	slide, ok := h.resolveSlide(w, r, page)
	if !ok {
		return
	}
	mode := r.FormValue("edit")

	// Validate the upload before touching the document: a rejected image
	// must leave the text fields untouched too.
	var imageURL string
	if mode != "text" {
		imageURL, err = h.uploads.FormImage(ctx, r)
		if err != nil {
			h.errLog.Log(r, "slide image upload rejected", err)
			uploads.WriteError(w, err)
			return
		}
	}

	if mode != "image" {
		title := formfield.FromForm(r, "title").Apply(slide.Title)
		description := formfield.FromForm(r, "description").Apply(slide.Description)
		if err := h.store.SetSlideText(ctx, slide.ID, title, description); err != nil {
			h.slideStoreError(w, r, err)
			return
		}
	}

	if imageURL != "" {
		if err := h.store.SetSlideImage(ctx, slide.ID, imageURL); err != nil {
			h.slideStoreError(w, r, err)
			return
		}
	}

	flash.Redirect(w, r, editorPath+"#carousel", "Slide updated")
}

// DeleteSlide removes one carousel slide addressed by id or index.
func (h *Handler) DeleteSlide(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	page, err := h.store.Get(ctx)
	if err != nil {
		h.errLog.Log(r, "failed to load home page", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	slide, ok := h.resolveSlide(w, r, page)
	if !ok {
		return
	}

	if err := h.store.RemoveSlide(ctx, slide.ID); err != nil {
		h.slideStoreError(w, r, err)
		return
	}
	flash.Redirect(w, r, editorPath+"#carousel", "Slide removed")
}

// AddGridImage appends an uploaded image to the grid.
func (h *Handler) AddGridImage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if err := r.ParseMultipartForm(uploads.MaxUploadSize); err != nil && !errors.Is(err, http.ErrNotMultipart) {
		h.errLog.Log(r, "failed to parse form", err)
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	imageURL, err := h.uploads.FormImage(ctx, r)
	if err != nil {
		h.errLog.Log(r, "grid image upload rejected", err)
		uploads.WriteError(w, err)
		return
	}
	if imageURL == "" {
		http.Error(w, "An image file is required.", http.StatusBadRequest)
		return
	}

	if err := h.store.AddGridImage(ctx, imageURL); err != nil {
		h.errLog.Log(r, "failed to add grid image", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	flash.Redirect(w, r, editorPath+"#grid", "Grid image added")
}

// ReplaceGridImage swaps the grid image at the addressed position.
func (h *Handler) ReplaceGridImage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if err := r.ParseMultipartForm(uploads.MaxUploadSize); err != nil && !errors.Is(err, http.ErrNotMultipart) {
		h.errLog.Log(r, "failed to parse form", err)
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	page, err := h.store.Get(ctx)
	if err != nil {
		h.errLog.Log(r, "failed to load home page", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	idx, ok := resolveIndex(w, r, len(page.Grid.Images))
	if !ok {
		return
	}

	imageURL, err := h.uploads.FormImage(ctx, r)
	if err != nil {
		h.errLog.Log(r, "grid image upload rejected", err)
		uploads.WriteError(w, err)
		return
	}
	if imageURL == "" {
		http.Error(w, "An image file is required.", http.StatusBadRequest)
		return
	}

	if err := h.store.ReplaceGridImage(ctx, idx, imageURL); err != nil {
		h.gridStoreError(w, r, err)
		return
	}
	flash.Redirect(w, r, editorPath+"#grid", "Grid image replaced")
}

// DeleteGridImage removes the grid image at the addressed position.
func (h *Handler) DeleteGridImage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	page, err := h.store.Get(ctx)
	if err != nil {
		h.errLog.Log(r, "failed to load home page", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	idx, ok := resolveIndex(w, r, len(page.Grid.Images))
	if !ok {
		return
	}

	if err := h.store.RemoveGridImage(ctx, idx); err != nil {
		h.gridStoreError(w, r, err)
		return
	}
	flash.Redirect(w, r, editorPath+"#grid", "Grid image removed")
}

// resolveSlide parses the {ref} path segment as a slide id or index and
// returns the matching slide. It answers 404 itself when nothing matches.
func (h *Handler) resolveSlide(w http.ResponseWriter, r *http.Request, page *models.HomePage) (models.CarouselSlide, bool) {
	ref, err := itemref.Parse(chi.URLParam(r, "ref"))
	if err != nil {
		http.Error(w, "Slide not found", http.StatusNotFound)
		return models.CarouselSlide{}, false
	}
	idx, err := ref.Resolve(len(page.Carousel), func(id primitive.ObjectID) int {
		for i := range page.Carousel {
			if page.Carousel[i].ID == id {
				return i
			}
		}
		return -1
	})
	if err != nil {
		http.Error(w, "Slide not found", http.StatusNotFound)
		return models.CarouselSlide{}, false
	}
	return page.Carousel[idx], true
}

// resolveIndex parses the {ref} path segment for an id-less image list.
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

func (h *Handler) slideStoreError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, homestore.ErrItemNotFound) {
		http.Error(w, "Slide not found", http.StatusNotFound)
		return
	}
	h.errLog.Log(r, "carousel update failed", err)
	http.Error(w, "Internal Server Error", http.StatusInternalServerError)
}

func (h *Handler) gridStoreError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, homestore.ErrItemNotFound) {
		http.Error(w, "Image not found", http.StatusNotFound)
		return
	}
	h.errLog.Log(r, "grid update failed", err)
	http.Error(w, "Internal Server Error", http.StatusInternalServerError)
}
