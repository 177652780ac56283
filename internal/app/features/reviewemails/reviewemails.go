// internal/app/features/reviewemails/reviewemails.go
package reviewemails

import (
	"net/http"
	"strconv"

	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	errorsfeature "github.com/hoffmansreptiles/reptilecms/internal/app/features/errors"
	messagestore "github.com/hoffmansreptiles/reptilecms/internal/app/store/messages"
	"github.com/hoffmansreptiles/reptilecms/internal/app/system/flash"
	"github.com/hoffmansreptiles/reptilecms/internal/app/system/viewdata"
	"github.com/hoffmansreptiles/reptilecms/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

const listPath = "/admin/review_emails"

// pageSize is how many messages one list page shows.
const pageSize = 20

// Handler lets admins review and delete contact-form messages.
type Handler struct {
	messages *messagestore.Store
	errLog   *errorsfeature.ErrorLogger
	logger   *zap.Logger
}

// NewHandler creates a new reviewemails Handler.
func NewHandler(db *mongo.Database, errLog *errorsfeature.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		messages: messagestore.New(db),
		errLog:   errLog,
		logger:   logger,
	}
}

// ListVM is the view model for the message list.
type ListVM struct {
	viewdata.BaseVM
	Messages []models.EmailMessage
	Page     int64
	PrevPage int64
	NextPage int64
}

// MountAdmin registers the message review routes on the admin router.
func (h *Handler) MountAdmin(r chi.Router) {
	r.Route("/review_emails", func(r chi.Router) {
		r.Get("/", h.List)
		r.Post("/{id}/delete", h.Delete)
		r.Post("/delete_all", h.DeleteAll)
	})
}

// List shows one page of stored messages, newest first. The page comes
// from the ?page query parameter, starting at 1.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	page, err := strconv.ParseInt(r.URL.Query().Get("page"), 10, 64)
	if err != nil || page < 1 {
		page = 1
	}

	list, err := h.messages.List(ctx, pageSize, page)
	if err != nil {
		h.errLog.Log(r, "failed to list messages", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	total, err := h.messages.Count(ctx)
	if err != nil {
		h.errLog.Log(r, "failed to count messages", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	vm := ListVM{
		BaseVM:   viewdata.NewBaseVM(r, "Messages", "/admin/dashboard"),
		Messages: list,
		Page:     page,
	}
	if page > 1 {
		vm.PrevPage = page - 1
	}
	if page*pageSize < total {
		vm.NextPage = page + 1
	}
	templates.Render(w, r, "reviewemails/index", vm)
}

// Delete removes one message.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "Message not found", http.StatusNotFound)
		return
	}

	if err := h.messages.Delete(r.Context(), id); err != nil {
		if err == mongo.ErrNoDocuments {
			http.Error(w, "Message not found", http.StatusNotFound)
			return
		}
		h.errLog.Log(r, "failed to delete message", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	flash.Redirect(w, r, listPath, "Message deleted")
}

// DeleteAll clears the whole inbox.
func (h *Handler) DeleteAll(w http.ResponseWriter, r *http.Request) {
	n, err := h.messages.DeleteAll(r.Context())
	if err != nil {
		h.errLog.Log(r, "failed to delete messages", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	h.logger.Info("cleared message inbox", zap.Int64("deleted", n))
	flash.Redirect(w, r, listPath, "All messages deleted")
}
