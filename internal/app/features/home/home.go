// internal/app/features/home/home.go
package home

import (
	"net/http"

	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	errorsfeature "github.com/hoffmansreptiles/reptilecms/internal/app/features/errors"
	homestore "github.com/hoffmansreptiles/reptilecms/internal/app/store/homepage"
	"github.com/hoffmansreptiles/reptilecms/internal/app/system/uploads"
	"github.com/hoffmansreptiles/reptilecms/internal/app/system/viewdata"
	"github.com/hoffmansreptiles/reptilecms/internal/domain/models"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler provides the public home page and its admin editor.
type Handler struct {
	store   *homestore.Store
	uploads *uploads.Saver
	errLog  *errorsfeature.ErrorLogger
	logger  *zap.Logger
}

// NewHandler creates a new home Handler.
func NewHandler(db *mongo.Database, saver *uploads.Saver, errLog *errorsfeature.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		store:   homestore.New(db),
		uploads: saver,
		errLog:  errLog,
		logger:  logger,
	}
}

// HomeVM is the view model for the public home page.
type HomeVM struct {
	viewdata.BaseVM
	Page *models.HomePage
}

// Routes returns a chi.Router with the public home routes mounted.
func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()
	r.Get("/", h.Index)
	return r
}

// Index renders the public home page.
func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	page, err := h.store.Get(r.Context())
	if err != nil {
		h.errLog.Log(r, "failed to load home page", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	vm := HomeVM{BaseVM: viewdata.New(r), Page: page}
	vm.Title = "Home"

	templates.Render(w, r, "home/index", vm)
}
