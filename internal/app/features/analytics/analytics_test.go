package analytics

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	errorsfeature "github.com/hoffmansreptiles/reptilecms/internal/app/features/errors"
	analyticsstore "github.com/hoffmansreptiles/reptilecms/internal/app/store/analytics"
	"github.com/hoffmansreptiles/reptilecms/internal/testutil"
	"go.uber.org/zap"
)

func newTestHandler(t *testing.T) (*Handler, *analyticsstore.Store) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	logger := zap.NewNop()
	h := NewHandler(db, errorsfeature.NewErrorLogger(logger), logger)
	return h, analyticsstore.New(db)
}

func adminRouter(h *Handler) http.Handler {
	r := chi.NewRouter()
	h.MountAdmin(r)
	return r
}

func TestShow_RendersPageShell(t *testing.T) {
	testutil.MustBootTemplates(t)
	h, _ := newTestHandler(t)

	req := testutil.NewAuthenticatedRequest(http.MethodGet, "/analytics", testutil.Admin())
	req = testutil.WithCSRFToken(req)
	rec := testutil.NewRecorder()
	adminRouter(h).ServeHTTP(rec, req)

	rec.AssertStatus(t, http.StatusOK)
	rec.AssertContains(t, `id="analytics-root"`)
	rec.AssertContains(t, `id="weeks-table"`)
	rec.AssertContains(t, "/static/js/analytics.js")
}

func TestData_ReturnsCounters(t *testing.T) {
	h, store := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	now := time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		if err := store.RecordView(ctx, "Leopard Gecko", now); err != nil {
			t.Fatalf("RecordView() error = %v", err)
		}
	}
	if err := store.RecordView(ctx, "Ball Python", now.Add(24*time.Hour)); err != nil {
		t.Fatalf("RecordView() error = %v", err)
	}

	req := testutil.NewAuthenticatedRequest(http.MethodGet, "/analytics/data", testutil.Admin())
	rec := testutil.NewRecorder()
	adminRouter(h).ServeHTTP(rec, req)
	rec.AssertStatus(t, http.StatusOK)

	var data struct {
		TotalViews int64 `json:"total_views"`
		Weeks      []struct {
			Year  int   `json:"year"`
			Week  int   `json:"week"`
			Count int64 `json:"count"`
		} `json:"weeks"`
		Clicks []struct {
			Name   string `json:"name"`
			Clicks int64  `json:"clicks"`
		} `json:"clicks"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &data); err != nil {
		t.Fatalf("decode response: %v", err)
	}

	if data.TotalViews != 4 {
		t.Errorf("total_views = %d, want 4", data.TotalViews)
	}
	if len(data.Weeks) != 1 || data.Weeks[0].Count != 4 {
		t.Errorf("weeks = %+v, want one bucket with 4 views", data.Weeks)
	}
	if len(data.Clicks) != 2 {
		t.Fatalf("clicks = %+v, want 2 records", data.Clicks)
	}
	for _, c := range data.Clicks {
		switch c.Name {
		case "Leopard Gecko":
			if c.Clicks != 3 {
				t.Errorf("Leopard Gecko clicks = %d, want 3", c.Clicks)
			}
		case "Ball Python":
			if c.Clicks != 1 {
				t.Errorf("Ball Python clicks = %d, want 1", c.Clicks)
			}
		default:
			t.Errorf("unexpected click record %q", c.Name)
		}
	}
}
