// internal/app/features/dashboard/dashboard.go
package dashboard

import (
	"net/http"

	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	errorsfeature "github.com/hoffmansreptiles/reptilecms/internal/app/features/errors"
	adminuserstore "github.com/hoffmansreptiles/reptilecms/internal/app/store/adminusers"
	analyticsstore "github.com/hoffmansreptiles/reptilecms/internal/app/store/analytics"
	messagestore "github.com/hoffmansreptiles/reptilecms/internal/app/store/messages"
	"github.com/hoffmansreptiles/reptilecms/internal/app/system/viewdata"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler provides the admin dashboard.
type Handler struct {
	analytics *analyticsstore.Store
	messages  *messagestore.Store
	admins    *adminuserstore.Store
	errLog    *errorsfeature.ErrorLogger
	logger    *zap.Logger
}

// NewHandler creates a new dashboard Handler.
func NewHandler(db *mongo.Database, errLog *errorsfeature.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		analytics: analyticsstore.New(db),
		messages:  messagestore.New(db),
		admins:    adminuserstore.New(db),
		errLog:    errLog,
		logger:    logger,
	}
}

// editorLink is one entry in the dashboard's editor list.
type editorLink struct {
	Label string
	URL   string
}

// DashboardVM is the view model for the dashboard.
type DashboardVM struct {
	viewdata.BaseVM
	Editors      []editorLink
	TotalViews   int64
	MessageCount int64
	AdminCount   int64
}

// MountAdmin registers the dashboard on the admin router.
func (h *Handler) MountAdmin(r chi.Router) {
	r.Get("/dashboard", h.Show)
}

// Show displays the dashboard with editor links and a few quick numbers.
// The numbers are best effort; a stats failure never blanks the page.
func (h *Handler) Show(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	vm := DashboardVM{
		BaseVM: viewdata.NewBaseVM(r, "Dashboard", "/home"),
		Editors: []editorLink{
			{Label: "Home Page", URL: "/admin/edit/home"},
			{Label: "Animals Page", URL: "/admin/edit/animals"},
			{Label: "Gallery Page", URL: "/admin/edit/gallery"},
			{Label: "About Page", URL: "/admin/edit/about"},
			{Label: "Contact Page", URL: "/admin/edit/contact"},
		},
	}

	if stats, err := h.analytics.Get(ctx); err != nil {
		h.logger.Warn("failed to load analytics for dashboard", zap.Error(err))
	} else {
		vm.TotalViews = stats.TotalViews
	}
	if n, err := h.messages.Count(ctx); err != nil {
		h.logger.Warn("failed to count messages for dashboard", zap.Error(err))
	} else {
		vm.MessageCount = n
	}
	if n, err := h.admins.Count(ctx); err != nil {
		h.logger.Warn("failed to count admins for dashboard", zap.Error(err))
	} else {
		vm.AdminCount = n
	}

	templates.Render(w, r, "dashboard/index", vm)
}
