package messagestore

import (
	"testing"
	"time"

	"github.com/hoffmansreptiles/reptilecms/internal/testutil"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

func TestStore_CreateAndList(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	first, err := store.Create(ctx, "Jordan Smith", "jordan@example.com", "Do you have tegus in stock?")
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if first.ID.IsZero() {
		t.Error("Create() should assign an ID")
	}
	if first.CreatedAt.IsZero() {
		t.Error("Create() should stamp created_at")
	}

	time.Sleep(5 * time.Millisecond)
	second, err := store.Create(ctx, "Casey Lee", "casey@example.com", "What are your hours?")
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	msgs, err := store.List(ctx, 0, 0)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(msgs) != 2 {
		t.Fatalf("List() len = %d, want 2", len(msgs))
	}
	// Newest first.
	if msgs[0].ID != second.ID {
		t.Errorf("List()[0].ID = %v, want newest %v", msgs[0].ID, second.ID)
	}
	if msgs[1].FullName != "Jordan Smith" {
		t.Errorf("List()[1].FullName = %q, want Jordan Smith", msgs[1].FullName)
	}
}

func TestStore_List_Empty(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	msgs, err := store.List(ctx, 0, 0)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(msgs) != 0 {
		t.Errorf("List() len = %d, want 0", len(msgs))
	}
}

func TestStore_List_Pagination(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	for i := 0; i < 5; i++ {
		if _, err := store.Create(ctx, "Sender", "sender@example.com", "msg"); err != nil {
			t.Fatalf("Create() error = %v", err)
		}
	}

	first, err := store.List(ctx, 2, 1)
	if err != nil {
		t.Fatalf("List(page 1) error = %v", err)
	}
	if len(first) != 2 {
		t.Errorf("List(page 1) len = %d, want 2", len(first))
	}

	last, err := store.List(ctx, 2, 3)
	if err != nil {
		t.Fatalf("List(page 3) error = %v", err)
	}
	if len(last) != 1 {
		t.Errorf("List(page 3) len = %d, want 1", len(last))
	}

	beyond, err := store.List(ctx, 2, 4)
	if err != nil {
		t.Fatalf("List(page 4) error = %v", err)
	}
	if len(beyond) != 0 {
		t.Errorf("List(page 4) len = %d, want 0", len(beyond))
	}

	n, err := store.Count(ctx)
	if err != nil {
		t.Fatalf("Count() error = %v", err)
	}
	if n != 5 {
		t.Errorf("Count() = %d, want 5", n)
	}
}

func TestStore_Delete(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	msg, err := store.Create(ctx, "Jordan Smith", "jordan@example.com", "hello")
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if err := store.Delete(ctx, msg.ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if err := store.Delete(ctx, msg.ID); err != mongo.ErrNoDocuments {
		t.Errorf("Delete() second call error = %v, want mongo.ErrNoDocuments", err)
	}
	if err := store.Delete(ctx, primitive.NewObjectID()); err != mongo.ErrNoDocuments {
		t.Errorf("Delete() unknown ID error = %v, want mongo.ErrNoDocuments", err)
	}
}

func TestStore_DeleteAll(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	for i := 0; i < 3; i++ {
		if _, err := store.Create(ctx, "Sender", "sender@example.com", "msg"); err != nil {
			t.Fatalf("Create() error = %v", err)
		}
	}

	n, err := store.DeleteAll(ctx)
	if err != nil {
		t.Fatalf("DeleteAll() error = %v", err)
	}
	if n != 3 {
		t.Errorf("DeleteAll() = %d, want 3", n)
	}

	msgs, err := store.List(ctx, 0, 0)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(msgs) != 0 {
		t.Errorf("List() after DeleteAll len = %d, want 0", len(msgs))
	}
}
