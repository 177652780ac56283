package contact

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	errorsfeature "github.com/hoffmansreptiles/reptilecms/internal/app/features/errors"
	contactstore "github.com/hoffmansreptiles/reptilecms/internal/app/store/contactpage"
	messagestore "github.com/hoffmansreptiles/reptilecms/internal/app/store/messages"
	"github.com/hoffmansreptiles/reptilecms/internal/app/system/mailer"
	"github.com/hoffmansreptiles/reptilecms/internal/domain/models"
	"github.com/hoffmansreptiles/reptilecms/internal/testutil"
	"go.uber.org/zap"
)

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

func newTestHandler(t *testing.T) (*Handler, *recordingSender, *messagestore.Store, *contactstore.Store) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	logger := zap.NewNop()
	errLog := errorsfeature.NewErrorLogger(logger)
	sender := &recordingSender{}

	h := NewHandler(db, sender, "owner@example.com", errLog, logger)
	return h, sender, messagestore.New(db), contactstore.New(db)
}

func adminRouter(h *Handler) http.Handler {
	r := chi.NewRouter()
	h.MountAdmin(r)
	return r
}

func formRequest(method, target string, vals url.Values) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(vals.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req = testutil.WithAdmin(req, testutil.Admin())
	return testutil.WithCSRFToken(req)
}

func sendRequest(vals url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/send", strings.NewReader(vals.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return testutil.WithCSRFToken(req)
}

func TestIndex_RendersDetails(t *testing.T) {
	testutil.MustBootTemplates(t)
	h, _, _, store := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if err := store.SetInfo(ctx, "Visit Us", "Come say hi to the geckos"); err != nil {
		t.Fatalf("SetInfo() error = %v", err)
	}

	req := testutil.NewRequest(http.MethodGet, "/")
	req = testutil.WithCSRFToken(req)
	rec := testutil.NewRecorder()
	Routes(h).ServeHTTP(rec, req)

	rec.AssertStatus(t, http.StatusOK)
	rec.AssertContains(t, "Come say hi to the geckos")
}

func TestSend_PersistsMessageAndNotifiesOwner(t *testing.T) {
	h, sender, messages, _ := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	vals := url.Values{
		"fullName": {"Jane Doe"},
		"email":    {"jane@example.com"},
		"message":  {"Do you have ball pythons in stock?"},
	}
	rec := testutil.NewRecorder()
	Routes(h).ServeHTTP(rec, sendRequest(vals))
	rec.AssertRedirect(t, "/contact/success")

	list, err := messages.List(ctx, 0, 0)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("len(messages) = %d, want 1", len(list))
	}
	msg := list[0]
	if msg.FullName != "Jane Doe" || msg.Email != "jane@example.com" {
		t.Errorf("stored message = %+v", msg)
	}
	if msg.Message != "Do you have ball pythons in stock?" {
		t.Errorf("message body = %q", msg.Message)
	}

	// Owner notification plus auto-reply to the sender.
	if len(sender.sent) != 2 {
		t.Fatalf("sent %d emails, want 2", len(sender.sent))
	}
	if sender.sent[0].To != "owner@example.com" {
		t.Errorf("notification went to %q", sender.sent[0].To)
	}
	if !strings.Contains(sender.sent[0].TextBody, "ball pythons") {
		t.Errorf("notification body missing message text: %q", sender.sent[0].TextBody)
	}
	if sender.sent[1].To != "jane@example.com" {
		t.Errorf("auto-reply went to %q", sender.sent[1].To)
	}
}

func TestSend_NoEmailSkipsAutoReply(t *testing.T) {
	h, sender, _, _ := newTestHandler(t)

	vals := url.Values{
		"fullName": {"Walk-in Customer"},
		"message":  {"What are your hours?"},
	}
	rec := testutil.NewRecorder()
	Routes(h).ServeHTTP(rec, sendRequest(vals))
	rec.AssertRedirect(t, "/contact/success")

	if len(sender.sent) != 1 {
		t.Fatalf("sent %d emails, want 1", len(sender.sent))
	}
	if sender.sent[0].To != "owner@example.com" {
		t.Errorf("notification went to %q", sender.sent[0].To)
	}
}

func TestSend_StripsMarkupFromInputs(t *testing.T) {
	h, _, messages, _ := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	vals := url.Values{
		"fullName": {"<b>Jane</b>"},
		"message":  {"<script>alert(1)</script>Hello"},
	}
	rec := testutil.NewRecorder()
	Routes(h).ServeHTTP(rec, sendRequest(vals))
	rec.AssertRedirect(t, "/contact/success")

	list, _ := messages.List(ctx, 0, 0)
	if len(list) != 1 {
		t.Fatalf("len(messages) = %d, want 1", len(list))
	}
	if list[0].FullName != "Jane" {
		t.Errorf("fullName = %q, want markup stripped", list[0].FullName)
	}
	if strings.Contains(list[0].Message, "<script>") {
		t.Errorf("message kept script tag: %q", list[0].Message)
	}
}

func TestSend_MissingFieldsRedirectBack(t *testing.T) {
	h, sender, messages, _ := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	rec := testutil.NewRecorder()
	Routes(h).ServeHTTP(rec, sendRequest(url.Values{"fullName": {"Jane"}}))
	rec.AssertRedirect(t, "/contact?msg=Please+fill+in+your+name+and+a+message.")

	list, _ := messages.List(ctx, 0, 0)
	if len(list) != 0 {
		t.Errorf("len(messages) = %d, want 0", len(list))
	}
	if len(sender.sent) != 0 {
		t.Errorf("sent %d emails, want 0", len(sender.sent))
	}
}

func TestSend_MailFailureKeepsSavedMessage(t *testing.T) {
	h, sender, messages, _ := newTestHandler(t)
	sender.fail = true
	ctx, cancel := testutil.TestContext()
	defer cancel()

	vals := url.Values{
		"fullName": {"Jane Doe"},
		"message":  {"Hello there"},
	}
	rec := testutil.NewRecorder()
	Routes(h).ServeHTTP(rec, sendRequest(vals))
	rec.AssertRedirect(t, "/contact?msg=Your+message+was+saved%2C+but+we+could+not+send+it+right+now.")

	list, _ := messages.List(ctx, 0, 0)
	if len(list) != 1 {
		t.Errorf("len(messages) = %d, want 1", len(list))
	}
}

func TestUpdateDetails_BlankKeepsAndClearErases(t *testing.T) {
	h, _, _, store := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	seed := models.ContactDetails{
		Address: "2829 Park Blvd",
		Phone:   "(925) 671-9106",
		Email:   "info@example.com",
	}
	if err := store.SetDetails(ctx, seed); err != nil {
		t.Fatalf("SetDetails() error = %v", err)
	}

	vals := url.Values{
		"address":     {""},
		"phone":       {"(925) 555-0000"},
		"email":       {""},
		"email_clear": {"1"},
	}
	rec := testutil.NewRecorder()
	adminRouter(h).ServeHTTP(rec, formRequest(http.MethodPut, "/contact/details", vals))
	rec.AssertRedirect(t, "/admin/edit/contact?msg=Contact+details+updated#details")

	page, err := store.Get(ctx)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if page.Details.Address != "2829 Park Blvd" {
		t.Errorf("blank address erased stored value: got %q", page.Details.Address)
	}
	if page.Details.Phone != "(925) 555-0000" {
		t.Errorf("phone = %q", page.Details.Phone)
	}
	if page.Details.Email != "" {
		t.Errorf("cleared email still set: %q", page.Details.Email)
	}
}

func TestUpdateDetails_SanitizesMapEmbed(t *testing.T) {
	h, _, _, store := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	vals := url.Values{
		"mapEmbed": {`<script>alert(1)</script><p>2829 Park Blvd</p>`},
	}
	rec := testutil.NewRecorder()
	adminRouter(h).ServeHTTP(rec, formRequest(http.MethodPut, "/contact/details", vals))
	rec.AssertStatus(t, http.StatusSeeOther)

	page, err := store.Get(ctx)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if strings.Contains(page.Details.MapEmbed, "<script>") {
		t.Errorf("map embed kept script tag: %q", page.Details.MapEmbed)
	}
	if !strings.Contains(page.Details.MapEmbed, "2829 Park Blvd") {
		t.Errorf("map embed lost safe markup: %q", page.Details.MapEmbed)
	}
}

func TestPublish_Redirects(t *testing.T) {
	h, _, _, _ := newTestHandler(t)

	rec := testutil.NewRecorder()
	adminRouter(h).ServeHTTP(rec, formRequest(http.MethodPost, "/contact/publish", url.Values{}))
	rec.AssertRedirect(t, "/admin/edit/contact?msg=Contact+page+published")
}
