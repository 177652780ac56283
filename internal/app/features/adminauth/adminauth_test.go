package adminauth

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	errorsfeature "github.com/hoffmansreptiles/reptilecms/internal/app/features/errors"
	adminusers "github.com/hoffmansreptiles/reptilecms/internal/app/store/adminusers"
	"github.com/hoffmansreptiles/reptilecms/internal/app/system/auth"
	"github.com/hoffmansreptiles/reptilecms/internal/app/system/authutil"
	"github.com/hoffmansreptiles/reptilecms/internal/app/system/mailer"
	"github.com/hoffmansreptiles/reptilecms/internal/domain/models"
	"github.com/hoffmansreptiles/reptilecms/internal/testutil"
	"go.uber.org/zap"
)

const testSessionKey = "test-session-key-0123456789abcdef0123456789"

type recordingSender struct {
	sent []mailer.Email
	fail bool
}

func (s *recordingSender) Send(email mailer.Email) error {
	if s.fail {
		return errors.New("smtp unavailable")
	}
	s.sent = append(s.sent, email)
	return nil
}

func newTestHandler(t *testing.T) (*Handler, *adminusers.Store, *recordingSender) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	logger := zap.NewNop()
	errLog := errorsfeature.NewErrorLogger(logger)
	sender := &recordingSender{}

	sessionMgr, err := auth.NewSessionManager(testSessionKey, "", "", 0, false, logger)
	if err != nil {
		t.Fatalf("NewSessionManager() error = %v", err)
	}

	h := NewHandler(db, sessionMgr, sender, "http://localhost:8080", errLog, logger)
	return h, adminusers.New(db), sender
}

func authRouter(h *Handler) http.Handler {
	r := chi.NewRouter()
	h.MountRoutes(r)
	return r
}

func formRequest(target string, vals url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(vals.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return testutil.WithCSRFToken(req)
}

// seedAdmin creates a verified account directly through the store and
// returns the stored user.
func seedAdmin(t *testing.T, store *adminusers.Store, email, password string) models.AdminUser {
	t.Helper()
	ctx, cancel := testutil.TestContext()
	defer cancel()

	hash, err := authutil.HashPassword(password)
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}
	user, token, err := store.Create(ctx, models.AdminUser{
		FirstName:    "Dale",
		LastName:     "Hoffman",
		Phone:        "925-671-9106",
		Email:        email,
		PasswordHash: hash,
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if _, err := store.RedeemVerifyToken(ctx, token); err != nil {
		t.Fatalf("RedeemVerifyToken() error = %v", err)
	}
	return user
}

func registerVals() url.Values {
	return url.Values{
		"firstName":       {"Dale"},
		"lastName":        {"Hoffman"},
		"phone":           {"925-671-9106"},
		"email":           {"dale@example.com"},
		"password":        {"gecko-tank-9!"},
		"confirmPassword": {"gecko-tank-9!"},
	}
}

func TestRegister_CreatesUnverifiedAccountAndEmailsLink(t *testing.T) {
	h, store, sender := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	rec := testutil.NewRecorder()
	authRouter(h).ServeHTTP(rec, formRequest("/register", registerVals()))
	rec.AssertRedirect(t, "/admin/login?msg=Account+created.+Check+your+email+for+a+verification+link.")

	user, err := store.GetByEmail(ctx, "dale@example.com")
	if err != nil {
		t.Fatalf("GetByEmail() error = %v", err)
	}
	if user.EmailVerified {
		t.Error("new account is already verified")
	}
	if !authutil.CheckPassword("gecko-tank-9!", user.PasswordHash) {
		t.Error("stored hash does not match the registered password")
	}

	if len(sender.sent) != 1 {
		t.Fatalf("sent %d emails, want 1", len(sender.sent))
	}
	if sender.sent[0].To != "dale@example.com" {
		t.Errorf("verification email went to %q", sender.sent[0].To)
	}
	if !strings.Contains(sender.sent[0].TextBody, "/admin/verify-email?token=") {
		t.Errorf("verification email missing link: %q", sender.sent[0].TextBody)
	}
}

func TestRegister_WeakPasswordRejected(t *testing.T) {
	h, store, _ := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	vals := registerVals()
	vals.Set("password", "longenoughpassword")
	vals.Set("confirmPassword", "longenoughpassword")

	rec := testutil.NewRecorder()
	authRouter(h).ServeHTTP(rec, formRequest("/register", vals))
	rec.AssertStatus(t, http.StatusSeeOther)
	if loc := rec.Header().Get("Location"); !strings.HasPrefix(loc, "/admin/register?msg=") {
		t.Errorf("Location = %q, want redirect back to register", loc)
	}

	if _, err := store.GetByEmail(ctx, "dale@example.com"); err == nil {
		t.Error("account was created despite weak password")
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	h, store, _ := newTestHandler(t)

	seedAdmin(t, store, "dale@example.com", "gecko-tank-9!")

	rec := testutil.NewRecorder()
	authRouter(h).ServeHTTP(rec, formRequest("/register", registerVals()))
	rec.AssertRedirect(t, "/admin/register?msg=An+account+with+this+email+already+exists.")
}

func TestLogin_RequiresVerifiedEmail(t *testing.T) {
	h, store, _ := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	hash, _ := authutil.HashPassword("gecko-tank-9!")
	if _, _, err := store.Create(ctx, models.AdminUser{
		FirstName: "Dale", LastName: "Hoffman", Phone: "925-671-9106",
		Email: "dale@example.com", PasswordHash: hash,
	}); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	vals := url.Values{"email": {"dale@example.com"}, "password": {"gecko-tank-9!"}}
	rec := testutil.NewRecorder()
	authRouter(h).ServeHTTP(rec, formRequest("/login", vals))
	rec.AssertRedirect(t, "/admin/login?msg=Please+verify+your+email+address+before+logging+in.")
}

func TestLogin_VerifiedAccountGetsSession(t *testing.T) {
	h, store, _ := newTestHandler(t)

	seedAdmin(t, store, "dale@example.com", "gecko-tank-9!")

	vals := url.Values{"email": {"Dale@Example.com"}, "password": {"gecko-tank-9!"}}
	rec := testutil.NewRecorder()
	authRouter(h).ServeHTTP(rec, formRequest("/login", vals))
	rec.AssertRedirect(t, "/admin/dashboard")

	cookies := rec.Result().Cookies()
	found := false
	for _, c := range cookies {
		if c.Name == "reptilecms-session" && c.Value != "" {
			found = true
		}
	}
	if !found {
		t.Error("no session cookie set after login")
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	h, store, _ := newTestHandler(t)

	seedAdmin(t, store, "dale@example.com", "gecko-tank-9!")

	vals := url.Values{"email": {"dale@example.com"}, "password": {"wrong-guess-1!"}}
	rec := testutil.NewRecorder()
	authRouter(h).ServeHTTP(rec, formRequest("/login", vals))
	rec.AssertRedirect(t, "/admin/login?msg=Invalid+email+or+password.")
}

func TestVerifyEmail_TokenIsSingleUse(t *testing.T) {
	h, store, _ := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	hash, _ := authutil.HashPassword("gecko-tank-9!")
	_, token, err := store.Create(ctx, models.AdminUser{
		FirstName: "Dale", LastName: "Hoffman", Phone: "925-671-9106",
		Email: "dale@example.com", PasswordHash: hash,
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	rec := testutil.NewRecorder()
	req := testutil.WithCSRFToken(testutil.NewRequest(http.MethodGet, "/verify-email?token="+token))
	authRouter(h).ServeHTTP(rec, req)
	rec.AssertRedirect(t, "/admin/login?msg=Email+verified.+You+can+now+log+in.")

	rec = testutil.NewRecorder()
	req = testutil.WithCSRFToken(testutil.NewRequest(http.MethodGet, "/verify-email?token="+token))
	authRouter(h).ServeHTTP(rec, req)
	rec.AssertRedirect(t, "/admin/login?msg=Invalid+or+expired+verification+link.")
}

func TestForgotPassword_UnknownEmailGetsSameResponse(t *testing.T) {
	h, store, sender := newTestHandler(t)

	seedAdmin(t, store, "dale@example.com", "gecko-tank-9!")

	want := "/admin/forgot-password?msg=If+that+email+has+an+account%2C+a+reset+link+is+on+its+way."

	rec := testutil.NewRecorder()
	authRouter(h).ServeHTTP(rec, formRequest("/forgot-password", url.Values{"email": {"dale@example.com"}}))
	rec.AssertRedirect(t, want)

	rec = testutil.NewRecorder()
	authRouter(h).ServeHTTP(rec, formRequest("/forgot-password", url.Values{"email": {"nobody@example.com"}}))
	rec.AssertRedirect(t, want)

	// Only the real account got mail.
	if len(sender.sent) != 1 {
		t.Fatalf("sent %d emails, want 1", len(sender.sent))
	}
	if !strings.Contains(sender.sent[0].TextBody, "/admin/reset-password?token=") {
		t.Errorf("reset email missing link: %q", sender.sent[0].TextBody)
	}
}

func TestResetPassword_RejectsCurrentPassword(t *testing.T) {
	h, store, _ := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	seedAdmin(t, store, "dale@example.com", "gecko-tank-9!")
	_, token, err := store.IssueResetToken(ctx, "dale@example.com")
	if err != nil {
		t.Fatalf("IssueResetToken() error = %v", err)
	}

	vals := url.Values{
		"token":           {token},
		"password":        {"gecko-tank-9!"},
		"confirmPassword": {"gecko-tank-9!"},
	}
	rec := testutil.NewRecorder()
	authRouter(h).ServeHTTP(rec, formRequest("/reset-password", vals))
	rec.AssertRedirect(t, "/admin/reset-password?token="+token+"&msg=New+password+must+be+different+from+your+current+password.")
}

func TestResetPassword_SetsNewPassword(t *testing.T) {
	h, store, _ := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	seedAdmin(t, store, "dale@example.com", "gecko-tank-9!")
	_, token, err := store.IssueResetToken(ctx, "dale@example.com")
	if err != nil {
		t.Fatalf("IssueResetToken() error = %v", err)
	}

	vals := url.Values{
		"token":           {token},
		"password":        {"new-terrarium-7!"},
		"confirmPassword": {"new-terrarium-7!"},
	}
	rec := testutil.NewRecorder()
	authRouter(h).ServeHTTP(rec, formRequest("/reset-password", vals))
	rec.AssertRedirect(t, "/admin/login?msg=Password+reset.+You+can+now+log+in.")

	user, err := store.GetByEmail(ctx, "dale@example.com")
	if err != nil {
		t.Fatalf("GetByEmail() error = %v", err)
	}
	if !authutil.CheckPassword("new-terrarium-7!", user.PasswordHash) {
		t.Error("new password does not match stored hash")
	}

	// The token is spent.
	rec = testutil.NewRecorder()
	authRouter(h).ServeHTTP(rec, formRequest("/reset-password", vals))
	rec.AssertRedirect(t, "/admin/forgot-password?msg=Invalid+or+expired+reset+link.+Please+request+a+new+one.")
}

func deleteAccountRequest(user models.AdminUser, vals url.Values) *http.Request {
	req := formRequest("/delete-account", vals)
	return testutil.WithAdmin(req, testutil.TestAdmin{
		ID:    user.ID.Hex(),
		Name:  user.FullName(),
		Email: user.Email,
	})
}

func TestDeleteAccount_ReAuthMismatch(t *testing.T) {
	h, store, _ := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	user := seedAdmin(t, store, "dale@example.com", "gecko-tank-9!")

	vals := url.Values{
		"firstName": {"Dale"},
		"lastName":  {"Hoffman"},
		"phone":     {"000-000-0000"},
		"password":  {"gecko-tank-9!"},
	}
	rec := testutil.NewRecorder()
	authRouter(h).ServeHTTP(rec, deleteAccountRequest(user, vals))
	rec.AssertRedirect(t, "/admin/delete-account?msg=The+details+you+entered+do+not+match+our+records.")

	if _, err := store.GetByID(ctx, user.ID); err != nil {
		t.Errorf("account was deleted despite mismatch: %v", err)
	}
}

func TestDeleteAccount_RemovesAccount(t *testing.T) {
	h, store, _ := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	user := seedAdmin(t, store, "dale@example.com", "gecko-tank-9!")

	vals := url.Values{
		"firstName": {"Dale"},
		"lastName":  {"Hoffman"},
		"phone":     {"925-671-9106"},
		"password":  {"gecko-tank-9!"},
	}
	rec := testutil.NewRecorder()
	authRouter(h).ServeHTTP(rec, deleteAccountRequest(user, vals))
	rec.AssertRedirect(t, "/home?msg=Your+account+has+been+deleted.")

	if _, err := store.GetByID(ctx, user.ID); err == nil {
		t.Error("account still exists after deletion")
	}
}

func TestLogout_Redirects(t *testing.T) {
	h, _, _ := newTestHandler(t)

	rec := testutil.NewRecorder()
	req := formRequest("/logout", url.Values{})
	req = testutil.WithAdmin(req, testutil.Admin())
	authRouter(h).ServeHTTP(rec, req)
	rec.AssertRedirect(t, "/admin/login")
}
