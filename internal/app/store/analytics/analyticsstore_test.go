package analyticsstore

import (
	"testing"
	"time"

	"github.com/hoffmansreptiles/reptilecms/internal/testutil"
)

func TestStore_Get_CreatesZeroedDocument(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	page, err := store.Get(ctx)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if page.ID.IsZero() {
		t.Error("Get() should assign an ID to the created document")
	}
	if page.TotalViews != 0 {
		t.Errorf("total views = %d, want 0", page.TotalViews)
	}
	if len(page.Weeks) != 0 || len(page.Clicks) != 0 {
		t.Errorf("fresh document should have no buckets: weeks=%d clicks=%d",
			len(page.Weeks), len(page.Clicks))
	}

	again, err := store.Get(ctx)
	if err != nil {
		t.Fatalf("Get() second call error = %v", err)
	}
	if again.ID != page.ID {
		t.Errorf("Get() second call ID = %v, want %v", again.ID, page.ID)
	}
}

func TestStore_RecordView(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	now := time.Date(2025, 3, 10, 15, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		if err := store.RecordView(ctx, "Green Iguana", now); err != nil {
			t.Fatalf("RecordView() error = %v", err)
		}
	}
	if err := store.RecordView(ctx, "Ball Python", now); err != nil {
		t.Fatalf("RecordView() error = %v", err)
	}

	page, err := store.Get(ctx)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if page.TotalViews != 4 {
		t.Errorf("total views = %d, want 4", page.TotalViews)
	}

	if len(page.Weeks) != 1 {
		t.Fatalf("weeks len = %d, want 1", len(page.Weeks))
	}
	year, week := WeekKeyOf(now)
	if page.Weeks[0].Year != year || page.Weeks[0].Week != week {
		t.Errorf("bucket = (%d, %d), want (%d, %d)",
			page.Weeks[0].Year, page.Weeks[0].Week, year, week)
	}
	if page.Weeks[0].Count != 4 {
		t.Errorf("bucket count = %d, want 4", page.Weeks[0].Count)
	}

	if len(page.Clicks) != 2 {
		t.Fatalf("clicks len = %d, want 2", len(page.Clicks))
	}
	byName := map[string]int64{}
	for _, c := range page.Clicks {
		byName[c.Name] = c.Clicks
	}
	if byName["Green Iguana"] != 3 {
		t.Errorf("Green Iguana clicks = %d, want 3", byName["Green Iguana"])
	}
	if byName["Ball Python"] != 1 {
		t.Errorf("Ball Python clicks = %d, want 1", byName["Ball Python"])
	}
}

func TestStore_RecordView_NewWeekOpensNewBucket(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	weekOne := time.Date(2025, 1, 3, 0, 0, 0, 0, time.UTC)
	weekTwo := time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)
	if err := store.RecordView(ctx, "Leopard Gecko", weekOne); err != nil {
		t.Fatalf("RecordView() error = %v", err)
	}
	if err := store.RecordView(ctx, "Leopard Gecko", weekTwo); err != nil {
		t.Fatalf("RecordView() error = %v", err)
	}

	page, err := store.Get(ctx)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if len(page.Weeks) != 2 {
		t.Fatalf("weeks len = %d, want 2", len(page.Weeks))
	}
	// Buckets append in arrival order and each holds one view.
	if page.Weeks[0].Week != 1 || page.Weeks[1].Week != 2 {
		t.Errorf("bucket weeks = %d, %d, want 1, 2", page.Weeks[0].Week, page.Weeks[1].Week)
	}
	for _, b := range page.Weeks {
		if b.Count != 1 {
			t.Errorf("bucket (%d, %d) count = %d, want 1", b.Year, b.Week, b.Count)
		}
	}
	if len(page.Clicks) != 1 || page.Clicks[0].Clicks != 2 {
		t.Errorf("clicks = %+v, want one record with 2 clicks", page.Clicks)
	}
}

func TestStore_RecordView_NameMatchIsCaseSensitive(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	now := time.Now().UTC()
	if err := store.RecordView(ctx, "Red Tegu", now); err != nil {
		t.Fatalf("RecordView() error = %v", err)
	}
	if err := store.RecordView(ctx, "red tegu", now); err != nil {
		t.Fatalf("RecordView() error = %v", err)
	}

	page, err := store.Get(ctx)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if len(page.Clicks) != 2 {
		t.Errorf("clicks len = %d, want 2 distinct records", len(page.Clicks))
	}
}
