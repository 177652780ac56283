// internal/app/features/analytics/analytics.go
package analytics

import (
	"net/http"

	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	errorsfeature "github.com/hoffmansreptiles/reptilecms/internal/app/features/errors"
	analyticsstore "github.com/hoffmansreptiles/reptilecms/internal/app/store/analytics"
	"github.com/hoffmansreptiles/reptilecms/internal/app/system/jsonutil"
	"github.com/hoffmansreptiles/reptilecms/internal/app/system/viewdata"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler serves the admin analytics page and its JSON data endpoint.
type Handler struct {
	store  *analyticsstore.Store
	errLog *errorsfeature.ErrorLogger
	logger *zap.Logger
}

// NewHandler creates a new analytics Handler.
func NewHandler(db *mongo.Database, errLog *errorsfeature.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		store:  analyticsstore.New(db),
		errLog: errLog,
		logger: logger,
	}
}

// AnalyticsVM is the view model for the analytics page shell. The numbers
// themselves arrive via the data endpoint.
type AnalyticsVM struct {
	viewdata.BaseVM
}

// MountAdmin registers the analytics routes on the admin router.
func (h *Handler) MountAdmin(r chi.Router) {
	r.Get("/analytics", h.Show)
	r.Get("/analytics/data", h.Data)
}

// Show renders the analytics page shell.
func (h *Handler) Show(w http.ResponseWriter, r *http.Request) {
	vm := AnalyticsVM{BaseVM: viewdata.NewBaseVM(r, "Analytics", "/admin/dashboard")}
	templates.Render(w, r, "analytics/index", vm)
}

// Data returns the analytics document as JSON. Failures use an
// {"error": ...} envelope so the page script can show the message.
func (h *Handler) Data(w http.ResponseWriter, r *http.Request) {
	stats, err := h.store.Get(r.Context())
	if err != nil {
		h.errLog.Log(r, "failed to load analytics", err)
		jsonutil.InternalError(w, "Failed to load analytics data.")
		return
	}
	jsonutil.OK(w, stats)
}
