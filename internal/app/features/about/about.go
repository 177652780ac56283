// internal/app/features/about/about.go
package about

import (
	"errors"
	"html/template"
	"net/http"

	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	errorsfeature "github.com/hoffmansreptiles/reptilecms/internal/app/features/errors"
	aboutstore "github.com/hoffmansreptiles/reptilecms/internal/app/store/aboutpage"
	"github.com/hoffmansreptiles/reptilecms/internal/app/system/flash"
	"github.com/hoffmansreptiles/reptilecms/internal/app/system/formfield"
	"github.com/hoffmansreptiles/reptilecms/internal/app/system/htmlsanitize"
	"github.com/hoffmansreptiles/reptilecms/internal/app/system/uploads"
	"github.com/hoffmansreptiles/reptilecms/internal/app/system/viewdata"
	"github.com/hoffmansreptiles/reptilecms/internal/domain/models"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

const editorPath = "/admin/edit/about"

// Handler provides the public about page and its admin editor.
type Handler struct {
	store   *aboutstore.Store
	uploads *uploads.Saver
	errLog  *errorsfeature.ErrorLogger
	logger  *zap.Logger
}

// NewHandler creates a new about Handler.
func NewHandler(db *mongo.Database, saver *uploads.Saver, errLog *errorsfeature.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		store:   aboutstore.New(db),
		uploads: saver,
		errLog:  errLog,
		logger:  logger,
	}
}

// AboutVM is the view model for the public about page. Content is stored
// as rich text and sanitized before rendering.
type AboutVM struct {
	viewdata.BaseVM
	Page    *models.AboutPage
	Content template.HTML
}

// EditVM is the view model for the about page editor.
type EditVM struct {
	viewdata.BaseVM
	Page *models.AboutPage
}

// Routes returns a chi.Router with the public about routes mounted.
func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()
	r.Get("/", h.Index)
	return r
}

// MountAdmin registers the editor routes on the admin router.
func (h *Handler) MountAdmin(r chi.Router) {
	r.Get("/edit/about", h.Edit)
	r.Route("/about", func(r chi.Router) {
		r.Put("/hero", h.UpdateHero)
		r.Put("/content", h.UpdateContent)
		r.Put("/footer", h.UpdateFooter)
		r.Post("/publish", h.Publish)
	})
}

// Index renders the public about page.
func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	page, err := h.store.Get(r.Context())
	if err != nil {
		h.errLog.Log(r, "failed to load about page", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	vm := AboutVM{
		BaseVM:  viewdata.New(r),
		Page:    page,
		Content: htmlsanitize.PrepareForDisplay(page.Content.Text),
	}
	vm.Title = "About Us"

	templates.Render(w, r, "about/index", vm)
}

// Edit renders the about page editor with the current content.
func (h *Handler) Edit(w http.ResponseWriter, r *http.Request) {
	page, err := h.store.Get(r.Context())
	if err != nil {
		h.errLog.Log(r, "failed to load about page for editing", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	vm := EditVM{BaseVM: viewdata.NewBaseVM(r, "Edit About Page", "/admin/dashboard"), Page: page}
	templates.Render(w, r, "about/edit", vm)
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
		h.errLog.Log(r, "failed to load about page", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	title := formfield.FromForm(r, "title").Apply(page.Hero.Title)
	subtitle := formfield.FromForm(r, "subtitle").Apply(page.Hero.Subtitle)

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

// UpdateContent applies the rich-text body form. The submitted HTML is
// sanitized before it is stored.
func (h *Handler) UpdateContent(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if err := r.ParseForm(); err != nil {
		h.errLog.Log(r, "failed to parse form", err)
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}
	page, err := h.store.Get(ctx)
	if err != nil {
		h.errLog.Log(r, "failed to load about page", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	field := formfield.FromForm(r, "text")
	text := page.Content.Text
	if field.Kind() == formfield.Value {
		text = htmlsanitize.Sanitize(field.Value())
	} else {
		text = field.Apply(text)
	}

	if err := h.store.SetContent(ctx, text); err != nil {
		h.errLog.Log(r, "failed to update about content", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	flash.Redirect(w, r, editorPath+"#content", "Content updated")
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
		h.errLog.Log(r, "failed to load about page", err)
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
		h.errLog.Log(r, "failed to publish about page", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	flash.Redirect(w, r, editorPath, "About page published")
}
