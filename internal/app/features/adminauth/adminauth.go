// internal/app/features/adminauth/adminauth.go
package adminauth

import (
	"net/http"
	"strings"

	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	errorsfeature "github.com/hoffmansreptiles/reptilecms/internal/app/features/errors"
	adminusers "github.com/hoffmansreptiles/reptilecms/internal/app/store/adminusers"
	"github.com/hoffmansreptiles/reptilecms/internal/app/system/auth"
	"github.com/hoffmansreptiles/reptilecms/internal/app/system/authutil"
	"github.com/hoffmansreptiles/reptilecms/internal/app/system/flash"
	"github.com/hoffmansreptiles/reptilecms/internal/app/system/formutil"
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

const (
	verifyExpiryHrs = 24
	resetExpiryMin  = 60
)

// Handler provides the admin account lifecycle: register, email
// verification, login, password reset, logout, and account deletion.
type Handler struct {
	store      *adminusers.Store
	sessionMgr *auth.SessionManager
	mailer     Sender
	baseURL    string
	errLog     *errorsfeature.ErrorLogger
	logger     *zap.Logger
}

// NewHandler creates a new adminauth Handler. baseURL is the external
// origin used to build verification and reset links.
func NewHandler(db *mongo.Database, sessionMgr *auth.SessionManager, mail Sender, baseURL string, errLog *errorsfeature.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		store:      adminusers.New(db),
		sessionMgr: sessionMgr,
		mailer:     mail,
		baseURL:    baseURL,
		errLog:     errLog,
		logger:     logger,
	}
}

// MountRoutes registers the account routes. These stay outside the
// session gate; the delete-account handlers check the session themselves.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/login", h.ShowLogin)
	r.Post("/login", h.HandleLogin)
	r.Get("/register", h.ShowRegister)
	r.Post("/register", h.HandleRegister)
	r.Get("/verify-email", h.VerifyEmail)
	r.Get("/forgot-password", h.ShowForgotPassword)
	r.Post("/forgot-password", h.HandleForgotPassword)
	r.Get("/reset-password", h.ShowResetPassword)
	r.Post("/reset-password", h.HandleResetPassword)
	r.Get("/delete-account", h.ShowDeleteAccount)
	r.Post("/delete-account", h.HandleDeleteAccount)
	r.Post("/logout", h.Logout)
}

// formVM is the shared view model for the auth card pages.
type formVM struct {
	formutil.Base
	Email string
	Token string
	Rules string
}

func newFormVM(r *http.Request, title string) formVM {
	vm := formVM{Base: formutil.NewBase(r, title, "/admin/login")}
	if vm.Msg != "" {
		vm.SetError(vm.Msg)
	}
	return vm
}

// ShowLogin displays the login form.
func (h *Handler) ShowLogin(w http.ResponseWriter, r *http.Request) {
	templates.Render(w, r, "adminauth/login", newFormVM(r, "Admin Login"))
}

// HandleLogin checks credentials and starts a session. Only verified
// accounts may log in.
func (h *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.errLog.Log(r, "failed to parse form", err)
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	email := authutil.NormalizeEmail(r.FormValue("email"))
	password := r.FormValue("password")

	user, err := h.store.GetByEmail(r.Context(), email)
	if err != nil {
		if err != mongo.ErrNoDocuments {
			h.errLog.Log(r, "database error during login lookup", err)
		}
		flash.Redirect(w, r, "/admin/login", "Invalid email or password.")
		return
	}
	if !authutil.CheckPassword(password, user.PasswordHash) {
		flash.Redirect(w, r, "/admin/login", "Invalid email or password.")
		return
	}
	if !user.EmailVerified {
		flash.Redirect(w, r, "/admin/login", "Please verify your email address before logging in.")
		return
	}

	token, err := auth.GenerateSessionToken()
	if err != nil {
		h.errLog.Log(r, "failed to generate session token", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	if err := h.sessionMgr.CreateSession(w, r, user.ID, user.Email, token); err != nil {
		h.errLog.Log(r, "failed to create session", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	h.logger.Info("admin logged in", zap.String("email", user.Email))
	http.Redirect(w, r, "/admin/dashboard", http.StatusSeeOther)
}

// ShowRegister displays the registration form.
func (h *Handler) ShowRegister(w http.ResponseWriter, r *http.Request) {
	vm := newFormVM(r, "Register")
	vm.Rules = authutil.PasswordRules()
	templates.Render(w, r, "adminauth/register", vm)
}

// HandleRegister creates an unverified account and emails a verification
// link.
func (h *Handler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.errLog.Log(r, "failed to parse form", err)
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	firstName := strings.TrimSpace(r.FormValue("firstName"))
	lastName := strings.TrimSpace(r.FormValue("lastName"))
	phone := strings.TrimSpace(r.FormValue("phone"))
	email := authutil.NormalizeEmail(r.FormValue("email"))
	password := r.FormValue("password")
	confirm := r.FormValue("confirmPassword")

	if firstName == "" || lastName == "" || phone == "" {
		flash.Redirect(w, r, "/admin/register", "Please fill in your name and phone number.")
		return
	}
	if err := authutil.ValidateEmail(email); err != nil {
		flash.Redirect(w, r, "/admin/register", err.Error())
		return
	}
	if err := authutil.ValidatePassword(password); err != nil {
		flash.Redirect(w, r, "/admin/register", err.Error())
		return
	}
	if password != confirm {
		flash.Redirect(w, r, "/admin/register", "Passwords do not match.")
		return
	}

	hash, err := authutil.HashPassword(password)
	if err != nil {
		h.errLog.Log(r, "failed to hash password", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	user, verifyToken, err := h.store.Create(r.Context(), models.AdminUser{
		FirstName:    firstName,
		LastName:     lastName,
		Phone:        phone,
		Email:        email,
		PasswordHash: hash,
	})
	if err != nil {
		if err == adminusers.ErrDuplicateEmail {
			flash.Redirect(w, r, "/admin/register", "An account with this email already exists.")
			return
		}
		h.errLog.Log(r, "failed to create admin account", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	textBody, htmlBody := mailer.VerifyEmail(mailer.VerifyEmailData{
		AppName:   viewdata.SiteName,
		FirstName: user.FirstName,
		VerifyURL: h.baseURL + "/admin/verify-email?token=" + verifyToken,
		ExpiryHrs: verifyExpiryHrs,
	})
	err = h.mailer.Send(mailer.Email{
		To:       user.Email,
		Subject:  "Verify your email",
		TextBody: textBody,
		HTMLBody: htmlBody,
	})
	if err != nil {
		h.errLog.Log(r, "failed to send verification email", err)
	}

	flash.Redirect(w, r, "/admin/login", "Account created. Check your email for a verification link.")
}

// VerifyEmail redeems the single-use verification token from the emailed
// link.
func (h *Handler) VerifyEmail(w http.ResponseWriter, r *http.Request) {
	token := r.URL.Query().Get("token")

	user, err := h.store.RedeemVerifyToken(r.Context(), token)
	if err != nil {
		if err != adminusers.ErrTokenInvalid {
			h.errLog.Log(r, "failed to redeem verify token", err)
		}
		flash.Redirect(w, r, "/admin/login", "Invalid or expired verification link.")
		return
	}

	h.logger.Info("admin email verified", zap.String("email", user.Email))
	flash.Redirect(w, r, "/admin/login", "Email verified. You can now log in.")
}

// ShowForgotPassword displays the forgot-password form.
func (h *Handler) ShowForgotPassword(w http.ResponseWriter, r *http.Request) {
	templates.Render(w, r, "adminauth/forgot_password", newFormVM(r, "Forgot Password"))
}

// HandleForgotPassword issues a reset token and emails the link. The
// response is the same whether or not the email has an account.
func (h *Handler) HandleForgotPassword(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.errLog.Log(r, "failed to parse form", err)
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	const sent = "If that email has an account, a reset link is on its way."

	email := authutil.NormalizeEmail(r.FormValue("email"))
	if err := authutil.ValidateEmail(email); err != nil {
		flash.Redirect(w, r, "/admin/forgot-password", err.Error())
		return
	}

	user, resetToken, err := h.store.IssueResetToken(r.Context(), email)
	if err != nil {
		if err != mongo.ErrNoDocuments {
			h.errLog.Log(r, "failed to issue reset token", err)
		}
		flash.Redirect(w, r, "/admin/forgot-password", sent)
		return
	}

	textBody, htmlBody := mailer.PasswordResetEmail(mailer.PasswordResetEmailData{
		AppName:   viewdata.SiteName,
		ResetURL:  h.baseURL + "/admin/reset-password?token=" + resetToken,
		ExpiryMin: resetExpiryMin,
	})
	err = h.mailer.Send(mailer.Email{
		To:       user.Email,
		Subject:  "Password Reset Request",
		TextBody: textBody,
		HTMLBody: htmlBody,
	})
	if err != nil {
		h.errLog.Log(r, "failed to send password reset email", err)
	}

	flash.Redirect(w, r, "/admin/forgot-password", sent)
}

// ShowResetPassword checks the token before offering the new-password form.
func (h *Handler) ShowResetPassword(w http.ResponseWriter, r *http.Request) {
	token := r.URL.Query().Get("token")

	if _, err := h.store.GetByResetToken(r.Context(), token); err != nil {
		flash.Redirect(w, r, "/admin/forgot-password", "Invalid or expired reset link. Please request a new one.")
		return
	}

	vm := newFormVM(r, "Reset Password")
	vm.Token = token
	vm.Rules = authutil.PasswordRules()
	templates.Render(w, r, "adminauth/reset_password", vm)
}

// HandleResetPassword sets a new password. The new password must satisfy
// the strength policy and differ from the current one.
func (h *Handler) HandleResetPassword(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.errLog.Log(r, "failed to parse form", err)
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	token := r.FormValue("token")
	password := r.FormValue("password")
	confirm := r.FormValue("confirmPassword")

	user, err := h.store.GetByResetToken(r.Context(), token)
	if err != nil {
		flash.Redirect(w, r, "/admin/forgot-password", "Invalid or expired reset link. Please request a new one.")
		return
	}

	resetPath := "/admin/reset-password?token=" + token
	if err := authutil.ValidatePassword(password); err != nil {
		flash.Redirect(w, r, resetPath, err.Error())
		return
	}
	if password != confirm {
		flash.Redirect(w, r, resetPath, "Passwords do not match.")
		return
	}
	if authutil.CheckPassword(password, user.PasswordHash) {
		flash.Redirect(w, r, resetPath, "New password must be different from your current password.")
		return
	}

	hash, err := authutil.HashPassword(password)
	if err != nil {
		h.errLog.Log(r, "failed to hash password", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	if _, err := h.store.RedeemResetToken(r.Context(), token, hash); err != nil {
		if err == adminusers.ErrTokenInvalid {
			flash.Redirect(w, r, "/admin/forgot-password", "Invalid or expired reset link. Please request a new one.")
			return
		}
		h.errLog.Log(r, "failed to redeem reset token", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	h.logger.Info("admin password reset", zap.String("email", user.Email))
	flash.Redirect(w, r, "/admin/login", "Password reset. You can now log in.")
}

// ShowDeleteAccount displays the delete-account confirmation form.
func (h *Handler) ShowDeleteAccount(w http.ResponseWriter, r *http.Request) {
	if _, ok := auth.CurrentAdmin(r); !ok {
		http.Redirect(w, r, "/admin/login", http.StatusSeeOther)
		return
	}
	templates.Render(w, r, "adminauth/delete_account", newFormVM(r, "Delete Account"))
}

// HandleDeleteAccount removes the logged-in admin after re-authenticating
// with name, phone, and password, then destroys the session.
func (h *Handler) HandleDeleteAccount(w http.ResponseWriter, r *http.Request) {
	admin, ok := auth.CurrentAdmin(r)
	if !ok {
		http.Redirect(w, r, "/admin/login", http.StatusSeeOther)
		return
	}
	if err := r.ParseForm(); err != nil {
		h.errLog.Log(r, "failed to parse form", err)
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	user, err := h.store.GetByID(r.Context(), admin.AdminID())
	if err != nil {
		h.errLog.Log(r, "failed to load admin account", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	firstName := strings.TrimSpace(r.FormValue("firstName"))
	lastName := strings.TrimSpace(r.FormValue("lastName"))
	phone := strings.TrimSpace(r.FormValue("phone"))
	password := r.FormValue("password")

	if firstName != user.FirstName || lastName != user.LastName || phone != user.Phone ||
		!authutil.CheckPassword(password, user.PasswordHash) {
		flash.Redirect(w, r, "/admin/delete-account", "The details you entered do not match our records.")
		return
	}

	if _, err := h.store.Delete(r.Context(), user.ID); err != nil {
		h.errLog.Log(r, "failed to delete admin account", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	h.sessionMgr.DestroySession(w, r)
	h.logger.Info("admin account deleted", zap.String("email", user.Email))
	flash.Redirect(w, r, "/home", "Your account has been deleted.")
}

// Logout destroys the session.
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	h.sessionMgr.DestroySession(w, r)
	http.Redirect(w, r, "/admin/login", http.StatusSeeOther)
}
