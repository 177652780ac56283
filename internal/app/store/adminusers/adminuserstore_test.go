package adminuserstore

import (
	"testing"
	"time"

	"github.com/hoffmansreptiles/reptilecms/internal/domain/models"
	"github.com/hoffmansreptiles/reptilecms/internal/testutil"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

func newTestAccount() models.AdminUser {
	return models.AdminUser{
		FirstName:    "Dale",
		LastName:     "Hoffman",
		Phone:        "925-555-0100",
		Email:        "dale@example.com",
		PasswordHash: "$2a$12$notarealhashnotarealhashnotarealhashnotarealha",
	}
}

func TestStore_Create(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	u, token, err := store.Create(ctx, newTestAccount())
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if u.ID.IsZero() {
		t.Error("Create() should assign an ID")
	}
	if u.EmailVerified {
		t.Error("Create() account should start unverified")
	}
	if len(token) != 64 {
		t.Errorf("Create() token len = %d, want 64 hex chars", len(token))
	}
	if u.VerifyToken != token {
		t.Error("Create() should store the returned token on the account")
	}
	if u.VerifyTokenExpiresAt == nil || !u.VerifyTokenExpiresAt.After(time.Now()) {
		t.Error("Create() verify token should expire in the future")
	}

	got, err := store.GetByEmail(ctx, "dale@example.com")
	if err != nil {
		t.Fatalf("GetByEmail() error = %v", err)
	}
	if got.ID != u.ID {
		t.Errorf("GetByEmail() ID = %v, want %v", got.ID, u.ID)
	}
}

func TestStore_Create_DuplicateEmail(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if _, _, err := store.Create(ctx, newTestAccount()); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if _, _, err := store.Create(ctx, newTestAccount()); err != ErrDuplicateEmail {
		t.Errorf("Create() duplicate error = %v, want ErrDuplicateEmail", err)
	}
}

func TestStore_GetByID(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	u, _, err := store.Create(ctx, newTestAccount())
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	got, err := store.GetByID(ctx, u.ID)
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if got.Email != u.Email {
		t.Errorf("GetByID() email = %q, want %q", got.Email, u.Email)
	}

	if _, err := store.GetByID(ctx, primitive.NewObjectID()); err != mongo.ErrNoDocuments {
		t.Errorf("GetByID() unknown error = %v, want mongo.ErrNoDocuments", err)
	}
}

func TestStore_RedeemVerifyToken(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	u, token, err := store.Create(ctx, newTestAccount())
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	verified, err := store.RedeemVerifyToken(ctx, token)
	if err != nil {
		t.Fatalf("RedeemVerifyToken() error = %v", err)
	}
	if verified.ID != u.ID {
		t.Errorf("RedeemVerifyToken() ID = %v, want %v", verified.ID, u.ID)
	}
	if !verified.EmailVerified {
		t.Error("RedeemVerifyToken() should report the account verified")
	}

	got, err := store.GetByID(ctx, u.ID)
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if !got.EmailVerified {
		t.Error("account should be verified after redemption")
	}
	if got.VerifyToken != "" || got.VerifyTokenExpiresAt != nil {
		t.Error("redemption should clear the verify token")
	}

	// The link is single-use.
	if _, err := store.RedeemVerifyToken(ctx, token); err != ErrTokenInvalid {
		t.Errorf("RedeemVerifyToken() second use error = %v, want ErrTokenInvalid", err)
	}
}

func TestStore_RedeemVerifyToken_Invalid(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if _, err := store.RedeemVerifyToken(ctx, ""); err != ErrTokenInvalid {
		t.Errorf("RedeemVerifyToken(\"\") error = %v, want ErrTokenInvalid", err)
	}
	if _, err := store.RedeemVerifyToken(ctx, "deadbeef"); err != ErrTokenInvalid {
		t.Errorf("RedeemVerifyToken(unknown) error = %v, want ErrTokenInvalid", err)
	}
}

func TestStore_RedeemVerifyToken_Expired(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	u, token, err := store.Create(ctx, newTestAccount())
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	// Backdate the expiry past the cutoff.
	expired := time.Now().UTC().Add(-time.Minute)
	_, err = db.Collection("admin_users").UpdateOne(ctx,
		bson.M{"_id": u.ID},
		bson.M{"$set": bson.M{"verify_token_expires_at": expired}})
	if err != nil {
		t.Fatalf("backdating expiry: %v", err)
	}

	if _, err := store.RedeemVerifyToken(ctx, token); err != ErrTokenInvalid {
		t.Errorf("RedeemVerifyToken(expired) error = %v, want ErrTokenInvalid", err)
	}
}

func TestStore_ResetTokenFlow(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	u, _, err := store.Create(ctx, newTestAccount())
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	holder, token, err := store.IssueResetToken(ctx, u.Email)
	if err != nil {
		t.Fatalf("IssueResetToken() error = %v", err)
	}
	if holder.ID != u.ID {
		t.Errorf("IssueResetToken() ID = %v, want %v", holder.ID, u.ID)
	}
	if len(token) != 64 {
		t.Errorf("IssueResetToken() token len = %d, want 64 hex chars", len(token))
	}

	got, err := store.GetByResetToken(ctx, token)
	if err != nil {
		t.Fatalf("GetByResetToken() error = %v", err)
	}
	if got.ID != u.ID {
		t.Errorf("GetByResetToken() ID = %v, want %v", got.ID, u.ID)
	}

	if _, err := store.RedeemResetToken(ctx, token, "new-hash"); err != nil {
		t.Fatalf("RedeemResetToken() error = %v", err)
	}

	after, err := store.GetByID(ctx, u.ID)
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if after.PasswordHash != "new-hash" {
		t.Errorf("password hash = %q, want new-hash", after.PasswordHash)
	}
	if after.ResetToken != "" || after.ResetTokenExpiresAt != nil {
		t.Error("redemption should clear the reset token")
	}

	// The link is single-use.
	if _, err := store.RedeemResetToken(ctx, token, "another"); err != ErrTokenInvalid {
		t.Errorf("RedeemResetToken() second use error = %v, want ErrTokenInvalid", err)
	}
	if _, err := store.GetByResetToken(ctx, token); err != ErrTokenInvalid {
		t.Errorf("GetByResetToken() after redemption error = %v, want ErrTokenInvalid", err)
	}
}

func TestStore_IssueResetToken_ReplacesOutstanding(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	u, _, err := store.Create(ctx, newTestAccount())
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	_, firstToken, err := store.IssueResetToken(ctx, u.Email)
	if err != nil {
		t.Fatalf("IssueResetToken() error = %v", err)
	}
	_, secondToken, err := store.IssueResetToken(ctx, u.Email)
	if err != nil {
		t.Fatalf("IssueResetToken() second call error = %v", err)
	}
	if firstToken == secondToken {
		t.Fatal("a second request should mint a fresh token")
	}

	if _, err := store.GetByResetToken(ctx, firstToken); err != ErrTokenInvalid {
		t.Errorf("GetByResetToken(replaced) error = %v, want ErrTokenInvalid", err)
	}
	if _, err := store.GetByResetToken(ctx, secondToken); err != nil {
		t.Errorf("GetByResetToken(current) error = %v", err)
	}
}

func TestStore_IssueResetToken_UnknownEmail(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if _, _, err := store.IssueResetToken(ctx, "nobody@example.com"); err != mongo.ErrNoDocuments {
		t.Errorf("IssueResetToken(unknown) error = %v, want mongo.ErrNoDocuments", err)
	}
}

func TestStore_DeleteAndCount(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	u, _, err := store.Create(ctx, newTestAccount())
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	n, err := store.Count(ctx)
	if err != nil {
		t.Fatalf("Count() error = %v", err)
	}
	if n != 1 {
		t.Errorf("Count() = %d, want 1", n)
	}

	deleted, err := store.Delete(ctx, u.ID)
	if err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if deleted != 1 {
		t.Errorf("Delete() = %d, want 1", deleted)
	}

	deleted, err = store.Delete(ctx, u.ID)
	if err != nil {
		t.Fatalf("Delete() second call error = %v", err)
	}
	if deleted != 0 {
		t.Errorf("Delete() second call = %d, want 0", deleted)
	}

	n, err = store.Count(ctx)
	if err != nil {
		t.Fatalf("Count() error = %v", err)
	}
	if n != 0 {
		t.Errorf("Count() after delete = %d, want 0", n)
	}
}
