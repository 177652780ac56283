// internal/app/features/animals/animals.go
package animals

import (
	"errors"
	"net/http"
	"time"

	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	errorsfeature "github.com/hoffmansreptiles/reptilecms/internal/app/features/errors"
	analyticsstore "github.com/hoffmansreptiles/reptilecms/internal/app/store/analytics"
	animalsstore "github.com/hoffmansreptiles/reptilecms/internal/app/store/animalspage"
	"github.com/hoffmansreptiles/reptilecms/internal/app/system/uploads"
	"github.com/hoffmansreptiles/reptilecms/internal/app/system/viewdata"
	"github.com/hoffmansreptiles/reptilecms/internal/domain/models"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler provides the public animals pages and their admin editor.
type Handler struct {
	store     *animalsstore.Store
	analytics *analyticsstore.Store
	uploads   *uploads.Saver
	errLog    *errorsfeature.ErrorLogger
	logger    *zap.Logger
}

// NewHandler creates a new animals Handler.
func NewHandler(db *mongo.Database, saver *uploads.Saver, errLog *errorsfeature.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		store:     animalsstore.New(db),
		analytics: analyticsstore.New(db),
		uploads:   saver,
		errLog:    errLog,
		logger:    logger,
	}
}

// IndexVM is the view model for the public animals listing.
type IndexVM struct {
	viewdata.BaseVM
	Page *models.AnimalsPage
}

// DetailVM is the view model for one animal's detail page.
type DetailVM struct {
	viewdata.BaseVM
	Animal *models.Animal
	Footer models.SectionFooter
}

// Routes returns a chi.Router with the public animals routes mounted.
func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()
	r.Get("/", h.Index)
	r.Get("/{key}", h.Detail)
	return r
}

// Index renders the public animals listing.
func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	page, err := h.store.Get(r.Context())
	if err != nil {
		h.errLog.Log(r, "failed to load animals page", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	vm := IndexVM{BaseVM: viewdata.New(r), Page: page}
	vm.Title = "Animals"

	templates.Render(w, r, "animals/index", vm)
}

// Detail renders one animal looked up by slug or id, recording a view.
// Analytics failures are logged and swallowed so a counter outage never
// blocks the page.
func (h *Handler) Detail(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	key := chi.URLParam(r, "key")

	animal, err := h.store.FindAnimal(ctx, key)
	if err != nil {
		if errors.Is(err, animalsstore.ErrAnimalNotFound) {
			http.Error(w, "Animal not found", http.StatusNotFound)
			return
		}
		h.errLog.Log(r, "failed to look up animal", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	if err := h.analytics.RecordView(ctx, animal.Name, time.Now()); err != nil {
		h.logger.Warn("failed to record animal view",
			zap.String("animal", animal.Name), zap.Error(err))
	}

	page, err := h.store.Get(ctx)
	if err != nil {
		h.errLog.Log(r, "failed to load animals page", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	vm := DetailVM{BaseVM: viewdata.New(r), Animal: animal, Footer: page.Footer}
	vm.Title = animal.Name

	templates.Render(w, r, "animals/detail", vm)
}
