// internal/app/features/animals/edit.go
package animals

import (
	"errors"
	"net/http"

	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	animalsstore "github.com/hoffmansreptiles/reptilecms/internal/app/store/animalspage"
	"github.com/hoffmansreptiles/reptilecms/internal/app/system/flash"
	"github.com/hoffmansreptiles/reptilecms/internal/app/system/formfield"
	"github.com/hoffmansreptiles/reptilecms/internal/app/system/itemref"
	"github.com/hoffmansreptiles/reptilecms/internal/app/system/uploads"
	"github.com/hoffmansreptiles/reptilecms/internal/app/system/viewdata"
	"github.com/hoffmansreptiles/reptilecms/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const editorPath = "/admin/edit/animals"

// EditVM is the view model for the animals page editor.
type EditVM struct {
	viewdata.BaseVM
	Page *models.AnimalsPage
}

// MountAdmin registers the editor routes on the admin router.
func (h *Handler) MountAdmin(r chi.Router) {
	r.Get("/edit/animals", h.Edit)
	r.Route("/animals", func(r chi.Router) {
		r.Put("/hero", h.UpdateHero)
		r.Put("/welcome", h.UpdateWelcome)
		r.Put("/footer", h.UpdateFooter)
		r.Post("/publish", h.Publish)

		r.Post("/items", h.AddAnimal)
		r.Put("/items/{ref}", h.UpdateAnimal)
		r.Delete("/items/{ref}", h.DeleteAnimal)
	})
}

// Edit renders the animals page editor with the current content.
func (h *Handler) Edit(w http.ResponseWriter, r *http.Request) {
	page, err := h.store.Get(r.Context())
	if err != nil {
		h.errLog.Log(r, "failed to load animals page for editing", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	vm := EditVM{BaseVM: viewdata.NewBaseVM(r, "Edit Animals Page", "/admin/dashboard"), Page: page}
	templates.Render(w, r, "animals/edit", vm)
}

// UpdateHero replaces the hero image when a new file arrives.
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

	if imageURL != "" {
		if err := h.store.SetHero(ctx, imageURL); err != nil {
			h.errLog.Log(r, "failed to update hero image", err)
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}
	}
	flash.Redirect(w, r, editorPath+"#hero", "Hero updated")
}

// UpdateWelcome applies the welcome text form.
func (h *Handler) UpdateWelcome(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if err := r.ParseForm(); err != nil {
		h.errLog.Log(r, "failed to parse form", err)
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}
	page, err := h.store.Get(ctx)
	if err != nil {
		h.errLog.Log(r, "failed to load animals page", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	text := formfield.FromForm(r, "text").Apply(page.WelcomeText)

	if err := h.store.SetWelcome(ctx, text); err != nil {
		h.errLog.Log(r, "failed to update welcome text", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	flash.Redirect(w, r, editorPath+"#welcome", "Welcome text updated")
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
		h.errLog.Log(r, "failed to load animals page", err)
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
		h.errLog.Log(r, "failed to publish animals page", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	flash.Redirect(w, r, editorPath, "Animals page published")
}

// AddAnimal appends a new animal card. The slug is assigned by the store
// from the submitted name.
func (h *Handler) AddAnimal(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if err := r.ParseMultipartForm(uploads.MaxUploadSize); err != nil && !errors.Is(err, http.ErrNotMultipart) {
		h.errLog.Log(r, "failed to parse form", err)
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	imageURL, err := h.uploads.FormImage(ctx, r)
	if err != nil {
		h.errLog.Log(r, "animal image upload rejected", err)
		uploads.WriteError(w, err)
		return
	}

	animal := models.Animal{
		Name:        r.FormValue("name"),
		Image:       imageURL,
		Price:       r.FormValue("price"),
		Available:   r.FormValue("available") == "on",
		Description: r.FormValue("description"),
	}
	if _, err := h.store.AddAnimal(ctx, animal); err != nil {
		h.errLog.Log(r, "failed to add animal", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	flash.Redirect(w, r, editorPath+"#animals", "Animal added")
}

// UpdateAnimal edits one animal addressed by id or index. The form's edit
// marker selects image-only or text-only mode; without it both apply.
func (h *Handler) UpdateAnimal(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if err := r.ParseMultipartForm(uploads.MaxUploadSize); err != nil && !errors.Is(err, http.ErrNotMultipart) {
		h.errLog.Log(r, "failed to parse form", err)
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	page, err := h.store.Get(ctx)
	if err != nil {
		h.errLog.Log(r, "failed to load animals page", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	animal, ok := h.resolveAnimal(w, r, page)
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
			h.errLog.Log(r, "animal image upload rejected", err)
			uploads.WriteError(w, err)
			return
		}
	}

	if mode != "image" {
		name := formfield.FromForm(r, "name").Apply(animal.Name)
		price := formfield.FromForm(r, "price").Apply(animal.Price)
		description := formfield.FromForm(r, "description").Apply(animal.Description)

		available := animal.Available
		if r.PostForm.Has("available_submitted") {
			available = r.FormValue("available") == "on"
		}

		if err := h.store.SetAnimalDetails(ctx, animal.ID, name, price, description, available); err != nil {
			h.animalStoreError(w, r, err)
			return
		}
	}

	if imageURL != "" {
		if err := h.store.SetAnimalImage(ctx, animal.ID, imageURL); err != nil {
			h.animalStoreError(w, r, err)
			return
		}
	}

	flash.Redirect(w, r, editorPath+"#animals", "Animal updated")
}

// DeleteAnimal removes one animal addressed by id or index.
func (h *Handler) DeleteAnimal(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	page, err := h.store.Get(ctx)
	if err != nil {
		h.errLog.Log(r, "failed to load animals page", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	animal, ok := h.resolveAnimal(w, r, page)
	if !ok {
		return
	}

	if err := h.store.RemoveAnimal(ctx, animal.ID); err != nil {
		h.animalStoreError(w, r, err)
		return
	}
	flash.Redirect(w, r, editorPath+"#animals", "Animal removed")
}

// resolveAnimal parses the {ref} path segment as an animal id or index and
// returns the matching animal. It answers 404 itself when nothing matches.
func (h *Handler) resolveAnimal(w http.ResponseWriter, r *http.Request, page *models.AnimalsPage) (models.Animal, bool) {
	ref, err := itemref.Parse(chi.URLParam(r, "ref"))
	if err != nil {
		http.Error(w, "Animal not found", http.StatusNotFound)
		return models.Animal{}, false
	}
	idx, err := ref.Resolve(len(page.Animals), func(id primitive.ObjectID) int {
		for i := range page.Animals {
			if page.Animals[i].ID == id {
				return i
			}
		}
		return -1
	})
	if err != nil {
		http.Error(w, "Animal not found", http.StatusNotFound)
		return models.Animal{}, false
	}
	return page.Animals[idx], true
}

func (h *Handler) animalStoreError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, animalsstore.ErrAnimalNotFound) {
		http.Error(w, "Animal not found", http.StatusNotFound)
		return
	}
	h.errLog.Log(r, "animals update failed", err)
	http.Error(w, "Internal Server Error", http.StatusInternalServerError)
}
