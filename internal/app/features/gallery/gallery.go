// internal/app/features/gallery/gallery.go
package gallery

import (
	"net/http"

	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	errorsfeature "github.com/hoffmansreptiles/reptilecms/internal/app/features/errors"
	gallerystore "github.com/hoffmansreptiles/reptilecms/internal/app/store/gallerypage"
	"github.com/hoffmansreptiles/reptilecms/internal/app/system/uploads"
	"github.com/hoffmansreptiles/reptilecms/internal/app/system/viewdata"
	"github.com/hoffmansreptiles/reptilecms/internal/domain/models"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler provides the public gallery page and its admin editor.
type Handler struct {
	store   *gallerystore.Store
	uploads *uploads.Saver
	errLog  *errorsfeature.ErrorLogger
	logger  *zap.Logger
}

// NewHandler creates a new gallery Handler.
func NewHandler(db *mongo.Database, saver *uploads.Saver, errLog *errorsfeature.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		store:   gallerystore.New(db),
		uploads: saver,
		errLog:  errLog,
		logger:  logger,
	}
}

// GalleryVM is the view model for the public gallery page.
type GalleryVM struct {
	viewdata.BaseVM
	Page *models.GalleryPage
}

// Routes returns a chi.Router with the public gallery routes mounted.
func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()
	r.Get("/", h.Index)
	return r
}

// Index renders the public gallery page.
func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	page, err := h.store.Get(r.Context())
	if err != nil {
		h.errLog.Log(r, "failed to load gallery page", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	vm := GalleryVM{BaseVM: viewdata.New(r), Page: page}
	vm.Title = "Gallery"

	templates.Render(w, r, "gallery/index", vm)
}
