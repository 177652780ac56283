// internal/app/features/contact/contact.go
package contact

import (
	"html/template"
	"net/http"
	"strings"
	"time"

	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	errorsfeature "github.com/hoffmansreptiles/reptilecms/internal/app/features/errors"
	contactstore "github.com/hoffmansreptiles/reptilecms/internal/app/store/contactpage"
	messagestore "github.com/hoffmansreptiles/reptilecms/internal/app/store/messages"
	"github.com/hoffmansreptiles/reptilecms/internal/app/system/authutil"
	"github.com/hoffmansreptiles/reptilecms/internal/app/system/flash"
	"github.com/hoffmansreptiles/reptilecms/internal/app/system/htmlsanitize"
	"github.com/hoffmansreptiles/reptilecms/internal/app/system/mailer"
	"github.com/hoffmansreptiles/reptilecms/internal/app/system/viewdata"
	"github.com/hoffmansreptiles/reptilecms/internal/domain/models"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Sender delivers outbound email. *mailer.Mailer satisfies it.
type Sender interface {
	Send(email mailer.Email) error
}

// Handler provides the public contact page, the contact form pipeline,
// and the admin editor.
type Handler struct {
	store      *contactstore.Store
	messages   *messagestore.Store
	mailer     Sender
	ownerEmail string
	errLog     *errorsfeature.ErrorLogger
	logger     *zap.Logger
}

// NewHandler creates a new contact Handler. ownerEmail receives the
// notification for each submission.
func NewHandler(db *mongo.Database, mail Sender, ownerEmail string, errLog *errorsfeature.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		store:      contactstore.New(db),
		messages:   messagestore.New(db),
		mailer:     mail,
		ownerEmail: ownerEmail,
		errLog:     errLog,
		logger:     logger,
	}
}

// ContactVM is the view model for the public contact page. MapEmbed is the
// sanitized embed markup, safe to render unescaped.
type ContactVM struct {
	viewdata.BaseVM
	Page     *models.ContactPage
	MapEmbed template.HTML
}

// Routes returns a chi.Router with the public contact routes mounted.
func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()
	r.Get("/", h.Index)
	r.Post("/send", h.Send)
	r.Get("/success", h.Success)
	return r
}

// Index renders the public contact page.
func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	page, err := h.store.Get(r.Context())
	if err != nil {
		h.errLog.Log(r, "failed to load contact page", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	vm := ContactVM{
		BaseVM:   viewdata.New(r),
		Page:     page,
		MapEmbed: htmlsanitize.PrepareForDisplay(page.Details.MapEmbed),
	}
	vm.Title = "Contact Us"

	templates.Render(w, r, "contact/index", vm)
}

// Success renders the thank-you page after a submission.
func (h *Handler) Success(w http.ResponseWriter, r *http.Request) {
	vm := viewdata.New(r)
	vm.Title = "Message Sent"
	templates.Render(w, r, "contact/success", vm)
}

// Send handles a contact form submission. The message record is persisted
// before any mail is attempted so a mail outage never loses it; mail
// failures after that degrade to an error redirect.
func (h *Handler) Send(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	fullName := strings.TrimSpace(htmlsanitize.StripTags(r.FormValue("fullName")))
	email := strings.TrimSpace(r.FormValue("email"))
	message := strings.TrimSpace(htmlsanitize.StripTags(r.FormValue("message")))

	if fullName == "" || message == "" {
		flash.Redirect(w, r, "/contact", "Please fill in your name and a message.")
		return
	}
	if email != "" {
		if err := authutil.ValidateEmail(email); err != nil {
			flash.Redirect(w, r, "/contact", "Please enter a valid email address.")
			return
		}
	}

	saved, err := h.messages.Create(ctx, fullName, email, message)
	if err != nil {
		h.errLog.Log(r, "failed to save contact message", err)
		flash.Redirect(w, r, "/contact", "Something went wrong. Please try again.")
		return
	}

	text, html := mailer.ContactNotificationEmail(mailer.ContactNotificationData{
		AppName:    viewdata.SiteName,
		FullName:   saved.FullName,
		Email:      saved.Email,
		Message:    saved.Message,
		ReceivedAt: saved.CreatedAt.Format(time.RFC1123),
	})
	err = h.mailer.Send(mailer.Email{
		To:       h.ownerEmail,
		Subject:  "New message from " + saved.FullName,
		TextBody: text,
		HTMLBody: html,
	})
	if err != nil {
		h.errLog.Log(r, "failed to send owner notification", err)
		flash.Redirect(w, r, "/contact", "Your message was saved, but we could not send it right now.")
		return
	}

	// Auto-reply is best effort: the sender already got their success page.
	if saved.Email != "" {
		text, html := mailer.ContactAutoReplyEmail(mailer.ContactAutoReplyData{
			AppName:  viewdata.SiteName,
			FullName: saved.FullName,
		})
		err := h.mailer.Send(mailer.Email{
			To:       saved.Email,
			Subject:  "Thanks for reaching out to " + viewdata.SiteName,
			TextBody: text,
			HTMLBody: html,
		})
		if err != nil {
			h.logger.Warn("failed to send contact auto-reply",
				zap.String("to", saved.Email), zap.Error(err))
		}
	}

	http.Redirect(w, r, "/contact/success", http.StatusSeeOther)
}
