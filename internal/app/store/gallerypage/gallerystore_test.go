package gallerystore

import (
	"testing"

	"github.com/hoffmansreptiles/reptilecms/internal/domain/models"
	"github.com/hoffmansreptiles/reptilecms/internal/testutil"
)

func TestStore_Get_CreatesDefaults(t *testing.T) {
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
	if page.HeroTitle == "" {
		t.Error("Get() default hero title should not be empty")
	}
	if page.PublishedAt != nil {
		t.Error("Get() fresh document should not have published_at set")
	}

	again, err := store.Get(ctx)
	if err != nil {
		t.Fatalf("Get() second call error = %v", err)
	}
	if again.ID != page.ID {
		t.Errorf("Get() second call ID = %v, want %v", again.ID, page.ID)
	}
}

func TestStore_Sections(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	// Setters on a collection that has never been read must still work.
	if err := store.SetHeroImage(ctx, "/uploads/new-hero.jpg"); err != nil {
		t.Fatalf("SetHeroImage() error = %v", err)
	}
	if err := store.SetHeroText(ctx, "Gallery", "Come look"); err != nil {
		t.Fatalf("SetHeroText() error = %v", err)
	}
	if err := store.SetInfo(ctx, "Photos", "Some of our animals"); err != nil {
		t.Fatalf("SetInfo() error = %v", err)
	}
	if err := store.SetFooter(ctx, models.SectionFooter{Title: "Visit Us"}); err != nil {
		t.Fatalf("SetFooter() error = %v", err)
	}

	page, err := store.Get(ctx)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if page.HeroURL != "/uploads/new-hero.jpg" {
		t.Errorf("hero url = %q, want %q", page.HeroURL, "/uploads/new-hero.jpg")
	}
	if page.HeroTitle != "Gallery" || page.HeroSubtitle != "Come look" {
		t.Errorf("hero text = %q/%q, want Gallery/Come look", page.HeroTitle, page.HeroSubtitle)
	}
	if page.Info.Title != "Photos" || page.Info.Text != "Some of our animals" {
		t.Errorf("info = %q/%q", page.Info.Title, page.Info.Text)
	}
	if page.Footer.Title != "Visit Us" {
		t.Errorf("footer title = %q, want Visit Us", page.Footer.Title)
	}
}

func TestStore_Images(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	for _, url := range []string{"/uploads/a.jpg", "/uploads/b.jpg", "/uploads/c.jpg"} {
		if err := store.AddImage(ctx, url); err != nil {
			t.Fatalf("AddImage(%q) error = %v", url, err)
		}
	}

	page, err := store.Get(ctx)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if len(page.Images) != 3 {
		t.Fatalf("images len = %d, want 3", len(page.Images))
	}

	if err := store.ReplaceImage(ctx, 1, "/uploads/b2.jpg"); err != nil {
		t.Fatalf("ReplaceImage() error = %v", err)
	}
	page, _ = store.Get(ctx)
	if page.Images[1] != "/uploads/b2.jpg" {
		t.Errorf("images[1] = %q, want /uploads/b2.jpg", page.Images[1])
	}
	if page.Images[0] != "/uploads/a.jpg" || page.Images[2] != "/uploads/c.jpg" {
		t.Error("ReplaceImage() disturbed neighboring images")
	}

	if err := store.ReplaceImage(ctx, 3, "/uploads/x.jpg"); err != ErrImageNotFound {
		t.Errorf("ReplaceImage(out of range) error = %v, want ErrImageNotFound", err)
	}

	if err := store.RemoveImage(ctx, 0); err != nil {
		t.Fatalf("RemoveImage() error = %v", err)
	}
	page, _ = store.Get(ctx)
	if len(page.Images) != 2 {
		t.Fatalf("images len after remove = %d, want 2", len(page.Images))
	}
	if page.Images[0] != "/uploads/b2.jpg" {
		t.Errorf("images[0] after remove = %q, want /uploads/b2.jpg", page.Images[0])
	}

	if err := store.RemoveImage(ctx, -1); err != ErrImageNotFound {
		t.Errorf("RemoveImage(-1) error = %v, want ErrImageNotFound", err)
	}
	if err := store.RemoveImage(ctx, 2); err != ErrImageNotFound {
		t.Errorf("RemoveImage(out of range) error = %v, want ErrImageNotFound", err)
	}
}

func TestStore_Publish_SetsPublishedAt(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	before, err := store.Get(ctx)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if before.PublishedAt != nil {
		t.Fatal("fresh document should not be published")
	}

	if err := store.Publish(ctx); err != nil {
		t.Fatalf("Publish() error = %v", err)
	}

	after, err := store.Get(ctx)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if after.PublishedAt == nil {
		t.Fatal("Publish() should set published_at")
	}
	if after.UpdatedAt.Before(before.UpdatedAt) {
		t.Error("Publish() should not move updated_at backwards")
	}
}
